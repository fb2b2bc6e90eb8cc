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

package quadlet

import (
	"fmt"
	"math"
	"sort"

	"github.com/quadlet-go/quadlet/unit"
)

// Command accumulates an argv-style invocation of the container runtime.
type Command struct {
	Args []string
}

// NewCommand starts a new command with binary as argv[0].
func NewCommand(binary string) *Command {
	return &Command{Args: []string{binary}}
}

// Add appends a single argument.
func (c *Command) Add(arg string) {
	c.Args = append(c.Args, arg)
}

// AddAll appends every argument in args.
func (c *Command) AddAll(args ...string) {
	c.Args = append(c.Args, args...)
}

// AddBool emits flag bare when b is true, or "flag=false" when it is
// false -- the convention used by the handful of runtime flags where
// both states are meaningful on the command line.
func (c *Command) AddBool(flag string, b bool) {
	if b {
		c.Add(flag)
	} else {
		c.Add(flag + "=false")
	}
}

// AddKeys emits one "prefix" "k=v" pair per map entry, in ascending key
// order, so the emitted argv is deterministic for a given map.
func (c *Command) AddKeys(prefix string, kv map[string]string) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Add(prefix)
		c.Add(k + "=" + kv[k])
	}
}

// AddIDMap emits a single "prefix" "container:host:count" pair, skipping
// entirely when count is zero.
func (c *Command) AddIDMap(prefix string, containerID, hostID, count uint32) {
	if count == 0 {
		return
	}
	c.Add(prefix)
	c.Add(fmt.Sprintf("%d:%d:%d", containerID, hostID, count))
}

// AddIDMaps plans and emits a full user-namespace id-map covering
// [0, MaxUint32) that honors the requested containerID->hostID pair,
// identity-maps everything below remapStart, and packs whatever is left
// onto available (or the entire id space, if available is nil).
//
// See SPEC_FULL.md §4.7 for the planning algorithm this implements.
func (c *Command) AddIDMaps(prefix string, containerID, hostID, remapStart uint32, available *IdRanges) {
	unmapped := NewIdRange(0, remapStart)
	mapped := NewIdRange(0, math.MaxUint32)

	var avail *IdRanges
	if available != nil {
		avail = available.Clone()
	} else {
		avail = NewIdRange(0, math.MaxUint32)
	}

	c.AddIDMap(prefix, containerID, hostID, 1)
	mapped.Remove(containerID, 1)
	unmapped.Remove(containerID, 1)
	unmapped.Remove(hostID, 1)
	avail.Remove(hostID, 1)

	for _, r := range unmapped.Iter() {
		c.AddIDMap(prefix, r.Start, r.Start, r.Length)
		mapped.Remove(r.Start, r.Length)
		avail.Remove(r.Start, r.Length)
	}

	availIter := avail.Iter()
	ai := 0
	for _, cur := range mapped.Iter() {
		cursor := cur.Start
		remaining := cur.Length
		for remaining > 0 && ai < len(availIter) {
			a := availIter[ai]
			if a.Length == 0 {
				ai++
				continue
			}
			n := a.Length
			if remaining < n {
				n = remaining
			}
			c.AddIDMap(prefix, cursor, a.Start, n)
			cursor += n
			remaining -= n
			a.Start += n
			a.Length -= n
			availIter[ai] = a
			if a.Length == 0 {
				ai++
			}
		}
	}
}

// ToEscapedString serializes the command into a single systemd-quoted
// line suitable for an ExecStart= field.
func (c *Command) ToEscapedString() string {
	return unit.QuoteWords(c.Args)
}
