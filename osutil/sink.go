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

package osutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSink writes generated service units into Dir, the systemd
// generator output directory passed on argv, and implements the
// wants-symlink step for default-target enablement.
type DirSink struct {
	Dir string
}

// Write atomically writes content to <Dir>/<name>.
func (s *DirSink) Write(name, content string) error {
	if err := EnsureDir(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", s.Dir, err)
	}
	return AtomicWriteFile(filepath.Join(s.Dir, name), []byte(content), 0644)
}

// EnableDefault symlinks <Dir>/<name> into
// <Dir>/default.target.wants/<name>, mirroring `systemctl enable`'s
// effect without a separate invocation.
func (s *DirSink) EnableDefault(name string) error {
	wantsDir := filepath.Join(s.Dir, "default.target.wants")
	if err := EnsureDir(wantsDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", wantsDir, err)
	}
	link := filepath.Join(wantsDir, name)
	target := filepath.Join("..", name)

	if existing, err := os.Readlink(link); err == nil {
		if existing == target {
			return nil
		}
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing stale symlink %s: %w", link, err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("symlinking %s -> %s: %w", link, target, err)
	}
	return nil
}
