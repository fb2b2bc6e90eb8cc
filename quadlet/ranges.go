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
	"math"
	"strconv"
	"strings"
)

// IdMap is a single [Start, Start+Length) interval of a uint32 id space.
type IdMap struct {
	Start, Length uint32
}

type idInterval struct {
	start, end uint32 // half-open
}

// IdRanges is a disjoint union of half-open intervals over [0, MaxUint32).
// Overlapping or touching inserts are merged automatically.
type IdRanges struct {
	intervals []idInterval
}

// NewIdRanges returns an empty set.
func NewIdRanges() *IdRanges {
	return &IdRanges{}
}

// NewIdRange returns a set containing a single [start, start+length) run.
func NewIdRange(start, length uint32) *IdRanges {
	r := NewIdRanges()
	r.Add(start, length)
	return r
}

// Clone returns an independent copy.
func (r *IdRanges) Clone() *IdRanges {
	c := &IdRanges{intervals: make([]idInterval, len(r.intervals))}
	copy(c.intervals, r.intervals)
	return c
}

// IsEmpty reports whether the set contains no ids.
func (r *IdRanges) IsEmpty() bool {
	return len(r.intervals) == 0
}

// Add inserts [start, start+length), clamping so the result never spans
// past math.MaxUint32. A zero length, or a start of math.MaxUint32, is a
// no-op.
func (r *IdRanges) Add(start, length uint32) {
	if length == 0 || start == math.MaxUint32 {
		return
	}
	maxLen := uint32(math.MaxUint32) - start
	if length > maxLen {
		length = maxLen
	}
	r.insert(start, start+length)
}

func (r *IdRanges) insert(start, end uint32) {
	newStart, newEnd := start, end
	var out []idInterval
	i := 0
	n := len(r.intervals)
	for i < n && r.intervals[i].end < newStart {
		out = append(out, r.intervals[i])
		i++
	}
	for i < n && r.intervals[i].start <= newEnd {
		if r.intervals[i].start < newStart {
			newStart = r.intervals[i].start
		}
		if r.intervals[i].end > newEnd {
			newEnd = r.intervals[i].end
		}
		i++
	}
	out = append(out, idInterval{newStart, newEnd})
	for i < n {
		out = append(out, r.intervals[i])
		i++
	}
	r.intervals = out
}

// Remove deletes [start, start+length) from the set, splitting intervals
// as needed.
func (r *IdRanges) Remove(start, length uint32) {
	if length == 0 {
		return
	}
	end := uint64(start) + uint64(length)
	if end > math.MaxUint32 {
		end = math.MaxUint32
	}
	var out []idInterval
	for _, iv := range r.intervals {
		if uint64(iv.end) <= uint64(start) || uint64(iv.start) >= end {
			out = append(out, iv)
			continue
		}
		if uint64(iv.start) < uint64(start) {
			out = append(out, idInterval{iv.start, start})
		}
		if uint64(iv.end) > end {
			out = append(out, idInterval{uint32(end), iv.end})
		}
	}
	r.intervals = out
}

// Iter returns the intervals in ascending order.
func (r *IdRanges) Iter() []IdMap {
	out := make([]IdMap, len(r.intervals))
	for i, iv := range r.intervals {
		out[i] = IdMap{Start: iv.start, Length: iv.end - iv.start}
	}
	return out
}

// ParseIdRanges parses a comma-separated list of "N" (meaning
// [N, MaxUint32)) or "N-M" (inclusive) elements. Unparseable numbers
// default to 0 rather than erroring, matching the tolerant parser this
// is ported from; a malformed element therefore tends to produce a wide
// range instead of being rejected.
func ParseIdRanges(s string) *IdRanges {
	r := NewIdRanges()
	for _, part := range strings.Split(s, ",") {
		var start, end uint64
		if idx := strings.IndexByte(part, '-'); idx >= 0 {
			start = parseUint32Tolerant(part[:idx])
			end = parseUint32Tolerant(part[idx+1:])
		} else {
			start = parseUint32Tolerant(part)
			end = math.MaxUint32
		}
		if end < start {
			continue
		}
		length := (end - start)
		if length > math.MaxUint32-1 {
			length = math.MaxUint32
		} else {
			length++
		}
		r.Add(uint32(start), uint32(length))
	}
	return r
}

func parseUint32Tolerant(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return v
}
