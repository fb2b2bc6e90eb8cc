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

// Command quadlet-generator implements systemd's generator calling
// convention: it scans the configured search directories for
// .container/.kube/.network/.volume unit files and emits the
// corresponding .service units into the first output directory systemd
// passes it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/quadlet-go/quadlet/dirs"
	"github.com/quadlet-go/quadlet/logger"
	"github.com/quadlet-go/quadlet/osutil"
	"github.com/quadlet-go/quadlet/quadlet"
	"github.com/quadlet-go/quadlet/unit"
)

// version is overridden at release-build time via -ldflags.
var version = "dev"

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"enable debug logging"`
	Version bool `long:"version" description:"print the version and exit"`
	User    bool `long:"user" description:"scan user-mode search directories"`

	Positional struct {
		OutputDirs []string `positional-arg-name:"output-dir"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	if _, err := parser.ParseArgs(argv[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if opts.Version {
		fmt.Println(version)
		return 0
	}

	if opts.Verbose {
		logger.SetDebug(true)
	}

	userMode := opts.User || strings.Contains(filepath.Base(argv[0]), "user")

	if len(opts.Positional.OutputDirs) == 0 {
		fmt.Fprintln(os.Stderr, "quadlet-generator: missing output directory argument")
		return 1
	}
	outputDir := opts.Positional.OutputDirs[0]

	if !osutil.IsWritableDir(filepath.Dir(outputDir)) {
		logger.Errorf("output directory's parent is not writable: %s", outputDir)
	}

	units := loadUnits(userMode)

	sink := &osutil.DirSink{Dir: outputDir}

	quadlet.Run(units, userMode, sink, unitLogger{})
	return 0
}

// loadUnits walks every configured search directory and parses every
// recognized unit file it finds, in search-path priority order,
// merging in any "<unit>.d/*.conf" drop-in overrides found alongside
// it; the orchestrator de-duplicates by filename.
func loadUnits(userMode bool) []quadlet.SourceUnit {
	var out []quadlet.SourceUnit
	for _, dir := range dirs.UnitDirs(userMode) {
		for _, file := range dirs.ListUnitFiles(dir) {
			data, err := os.ReadFile(file)
			if err != nil {
				logger.Errorf("reading %s: %v", file, err)
				continue
			}
			parsed, err := unit.ParseNamed(string(data), file)
			if err != nil {
				logger.Errorf("parsing %s: %v", file, err)
				continue
			}

			overrides, err := dirs.DropInOverrides(dir, filepath.Base(file))
			if err != nil {
				logger.Errorf("listing drop-ins for %s: %v", file, err)
			}
			for _, dropIn := range overrides {
				dropInData, err := os.ReadFile(dropIn)
				if err != nil {
					logger.Errorf("reading %s: %v", dropIn, err)
					continue
				}
				parsedDropIn, err := unit.ParseNamed(string(dropInData), dropIn)
				if err != nil {
					logger.Errorf("parsing %s: %v", dropIn, err)
					continue
				}
				parsed.MergeFrom(parsedDropIn)
			}

			out = append(out, quadlet.SourceUnit{Path: file, Data: parsed})
		}
	}
	return out
}

// unitLogger adapts the package-level logger functions to the
// quadlet.Logger interface the orchestrator expects.
type unitLogger struct{}

func (unitLogger) Debugf(format string, args ...interface{})  { logger.Debugf(format, args...) }
func (unitLogger) Noticef(format string, args ...interface{}) { logger.Noticef(format, args...) }
func (unitLogger) Errorf(format string, args ...interface{})  { logger.Errorf(format, args...) }
