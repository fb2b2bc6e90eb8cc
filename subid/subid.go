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

// Package subid reads the subordinate-id databases conventionally found
// at /etc/subuid and /etc/subgid, each a newline-separated list of
// "name:start:length" records.
package subid

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/quadlet-go/quadlet/quadlet"
)

// subuidPath and subgidPath are vars, not consts, purely so this
// package's own tests can point them at a temp file; nothing exported
// lets a caller override them.
var (
	subuidPath = "/etc/subuid"
	subgidPath = "/etc/subgid"
)

// LookupHostSubuid returns the id ranges /etc/subuid grants to name, or
// an empty set if the file can't be opened or name has no entries --
// neither case is an error the caller needs to act on beyond falling
// back to an unmapped range.
func LookupHostSubuid(name string) *quadlet.IdRanges {
	return lookup(subuidPath, name)
}

// LookupHostSubgid returns the id ranges /etc/subgid grants to name.
//
// The original implementation this was ported from read /etc/subgid for
// both the uid and gid lookups -- a copy-paste defect. This
// implementation intentionally reads the correct, distinct file for
// each.
func LookupHostSubgid(name string) *quadlet.IdRanges {
	return lookup(subgidPath, name)
}

func lookup(path, name string) *quadlet.IdRanges {
	f, err := os.Open(path)
	if err != nil {
		return quadlet.NewIdRanges()
	}
	defer f.Close()

	out := quadlet.NewIdRanges()
	prefix := name + ":"

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || !strings.HasPrefix(line, prefix) {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) != 3 {
			continue
		}
		start, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			continue
		}
		length, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}
		out.Add(uint32(start), uint32(length))
	}
	return out
}
