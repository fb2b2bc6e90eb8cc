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

// Package dirs assembles the list of directories the generator scans for
// declarative unit files, and resolves the drop-in-aware set of files
// within them. All paths are resolved relative to a package-level root
// directory that test code can repoint with SetRootDir, in the style of
// snapd's dirs package.
package dirs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var rootDir = "/"

// SetRootDir repoints every path this package computes at a new root,
// for use by tests that want real path-assembly logic without touching
// the live filesystem. Passing "" resets to "/".
func SetRootDir(dir string) {
	if dir == "" {
		dir = "/"
	}
	rootDir = dir
}

// RootDir returns the current root directory.
func RootDir() string {
	return rootDir
}

func under(p string) string {
	return filepath.Join(rootDir, p)
}

// SystemUnitDirs returns the default system-mode search path, in
// priority order (administrator overrides before distribution-shipped
// units).
func SystemUnitDirs() []string {
	return []string{
		under("/etc/containers/systemd"),
		under("/usr/share/containers/systemd"),
	}
}

// UserUnitDir returns the default user-mode search directory, honoring
// XDG_CONFIG_HOME with the conventional fallback.
func UserUnitDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "containers/systemd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = under("/root")
	}
	return filepath.Join(home, ".config/containers/systemd")
}

// UnitDirs returns the search path to use for this run: the
// QUADLET_UNIT_DIRS environment variable, if set, entirely replaces the
// default list (it does not append to it); otherwise the system or user
// default list is used depending on userMode.
func UnitDirs(userMode bool) []string {
	if override := os.Getenv("QUADLET_UNIT_DIRS"); override != "" {
		return strings.Split(override, ":")
	}
	if userMode {
		return []string{UserUnitDir()}
	}
	return SystemUnitDirs()
}

// unitExtensions lists the extensions the generator recognizes when
// walking a search directory.
var unitExtensions = []string{".container", ".kube", ".network", ".volume"}

// ListUnitFiles returns the unit files directly inside dir (no
// recursion), skipping directories that don't exist or can't be read
// rather than treating either as fatal. Entries are returned in
// directory-read order; callers that need a stable order should sort.
func ListUnitFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range unitExtensions {
			if strings.HasSuffix(e.Name(), ext) {
				out = append(out, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	return out
}

// DropInOverrides returns the drop-in config snippets for unit
// (e.g. "web.container") found as "<dir>/web.container.d/*.conf",
// matched with doublestar so the pattern stays declarative instead of a
// hand-rolled filepath.Match loop.
func DropInOverrides(dir, unitFile string) ([]string, error) {
	dropInDir := filepath.Join(dir, unitFile+".d")
	entries, err := os.ReadDir(dropInDir)
	if err != nil {
		return nil, nil
	}
	var out []string
	for _, e := range entries {
		ok, err := doublestar.Match("*.conf", e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, filepath.Join(dropInDir, e.Name()))
		}
	}
	return out, nil
}
