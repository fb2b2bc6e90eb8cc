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

package unit

import (
	"os"
	"path"
	"strings"
)

// StartsWithSpecifier reports whether p's first path component is a
// two-byte systemd specifier such as "%t" or "%h" -- but not the literal
// escape "%%". Specifier-prefixed paths are never rebased.
func StartsWithSpecifier(p string) bool {
	first := p
	if idx := strings.IndexByte(p, '/'); idx >= 0 {
		first = p[:idx]
	}
	if len(first) != 2 || first[0] != '%' {
		return false
	}
	return first != "%%"
}

// Cleaned lexically normalizes p without touching the filesystem: "."
// components are dropped, ".." pops the previous component when one is
// available (and is kept, for relative paths, when none is), and a
// trailing slash present in the input is preserved. Symlinks are never
// resolved.
func Cleaned(p string) string {
	if p == "" {
		return ""
	}
	c := path.Clean(p)
	if c == "." {
		return ""
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") && c != "/" {
		c += "/"
	}
	return c
}

// AbsoluteFrom rebases p onto newRoot unless p is already absolute or
// begins with a systemd specifier, in which case it is only lexically
// cleaned. An empty newRoot falls back to the process's current
// directory.
func AbsoluteFrom(p, newRoot string) string {
	if !StartsWithSpecifier(p) && !path.IsAbs(p) {
		if newRoot != "" {
			return Cleaned(path.Join(newRoot, p))
		}
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "/"
		}
		return Cleaned(path.Join(cwd, p))
	}
	return Cleaned(p)
}

// AbsoluteFromUnit rebases p onto the directory containing unitFilePath.
// An empty unitFilePath behaves like AbsoluteFrom with an empty root.
func AbsoluteFromUnit(p, unitFilePath string) string {
	dir := ""
	if unitFilePath != "" {
		dir = path.Dir(unitFilePath)
	}
	if dir == "" || dir == "." {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		}
	}
	return AbsoluteFrom(p, dir)
}

// SplitTemplate splits a unit stem at its first '@', returning the
// template base and the instance name. isTemplate is false when stem
// contains no '@'.
func SplitTemplate(stem string) (base, instance string, isTemplate bool) {
	idx := strings.IndexByte(stem, '@')
	if idx < 0 {
		return stem, "", false
	}
	return stem[:idx], stem[idx+1:], true
}

// ReplaceExtension swaps file's extension for newExt and wraps the base
// name with extraPrefix/extraSuffix, e.g. ReplaceExtension("web.container",
// ".service", "", "-network") -> "web-network.service".
func ReplaceExtension(file, newExt, extraPrefix, extraSuffix string) string {
	dir := path.Dir(file)
	base := path.Base(file)
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	name := extraPrefix + base + extraSuffix + newExt
	if dir == "." {
		return name
	}
	return path.Join(dir, name)
}
