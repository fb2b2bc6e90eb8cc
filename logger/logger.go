/*
 * Copyright (C) 2026 The Quadlet-Go Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package logger provides the generator's leveled logging, backed by
// /dev/kmsg with a permanent fallback to stderr on first write failure.
// Callers use the package-level Debugf/Noticef/Errorf functions; tests
// substitute a mock with MockLogger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/coreos/go-systemd/journal"
)

// Logger is the leveled logging surface the rest of the repository
// depends on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	mu      sync.Mutex
	current Logger = newKmsgLogger()
)

// SetLogger replaces the package-level logger and returns the previous
// one, in the style of snapd's logger.SetLogger.
func SetLogger(l Logger) Logger {
	mu.Lock()
	defer mu.Unlock()
	old := current
	current = l
	return old
}

// MockLogger installs a logger that records calls for a test and
// returns a restore function.
func MockLogger() (restore func()) {
	old := SetLogger(&recordingLogger{})
	return func() { SetLogger(old) }
}

func get() Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func Debugf(format string, args ...interface{})  { get().Debugf(format, args...) }
func Noticef(format string, args ...interface{}) { get().Noticef(format, args...) }
func Errorf(format string, args ...interface{})  { get().Errorf(format, args...) }

// debuggable is implemented by loggers whose effective level can be
// raised at runtime; the kmsg-backed default logger is the only one
// today.
type debuggable interface {
	SetDebug(bool)
}

// SetDebug raises or lowers the effective level of the installed
// logger, if it supports that; it's a silent no-op against a logger
// that doesn't (e.g. a test's MockLogger).
func SetDebug(v bool) {
	if d, ok := get().(debuggable); ok {
		d.SetDebug(v)
	}
}

type recordingLogger struct {
	mu   sync.Mutex
	logs []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{})  { r.record("DEBUG", format, args) }
func (r *recordingLogger) Noticef(format string, args ...interface{}) { r.record("NOTICE", format, args) }
func (r *recordingLogger) Errorf(format string, args ...interface{})  { r.record("ERROR", format, args) }

func (r *recordingLogger) record(level, format string, args []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, level+": "+fmt.Sprintf(format, args...))
}

// kmsgLogger writes to /dev/kmsg, falling back permanently to stderr
// after the first write failure -- there is deliberately no retry.
type kmsgLogger struct {
	mu       sync.Mutex
	w        io.WriteCloser
	disabled atomic.Bool
	debug    atomic.Bool
	pid      int
	openFn   func() (io.WriteCloser, error)
	journal  bool
}

func newKmsgLogger() *kmsgLogger {
	return &kmsgLogger{
		pid:     os.Getpid(),
		openFn:  func() (io.WriteCloser, error) { return os.OpenFile("/dev/kmsg", os.O_WRONLY, 0) },
		journal: journal.Enabled(),
	}
}

// SetDebug raises or lowers the effective level; the -v/--verbose CLI
// flag calls this.
func (l *kmsgLogger) SetDebug(v bool) { l.debug.Store(v) }

func (l *kmsgLogger) Debugf(format string, args ...interface{}) {
	if !l.debug.Load() {
		return
	}
	l.write("DEBUG", format, args)
}

func (l *kmsgLogger) Noticef(format string, args ...interface{}) {
	l.write("NOTICE", format, args)
}

func (l *kmsgLogger) Errorf(format string, args ...interface{}) {
	l.write("ERROR", format, args)
}

func (l *kmsgLogger) write(level, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)

	if l.journal {
		pri := journal.PriInfo
		if level == "ERROR" {
			pri = journal.PriErr
		}
		journal.Send(msg, pri, map[string]string{"SYSLOG_IDENTIFIER": "quadlet-generator"})
	}

	line := fmt.Sprintf("quadlet-generator[%d]: %s - %s\n", l.pid, level, msg)

	if l.disabled.Load() {
		fmt.Fprint(os.Stderr, line)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disabled.Load() {
		fmt.Fprint(os.Stderr, line)
		return
	}
	if l.w == nil {
		w, err := l.openFn()
		if err != nil {
			l.disabled.Store(true)
			fmt.Fprint(os.Stderr, line)
			return
		}
		l.w = w
	}
	if _, err := io.WriteString(l.w, line); err != nil {
		l.disabled.Store(true)
		fmt.Fprint(os.Stderr, line)
	}
}
