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
	"github.com/quadlet-go/quadlet/unit"
)

// Kind identifies which translator a source unit's extension selects.
type Kind int

const (
	KindContainer Kind = iota
	KindKube
	KindNetwork
	KindVolume
)

// preamble deep-copies src, rejects unknown keys in primarySection
// against allowed, renames primarySection to xSection, and appends the
// boilerplate every output unit carries. It returns the partially-built
// output; the caller's translator continues mutating it.
func preamble(src *unit.UnitData, primarySection, xSection string, allowed map[string]bool) (*unit.UnitData, error) {
	for _, key := range src.Keys(primarySection) {
		if !allowed[key] {
			return nil, &UnsupportedKey{Section: primarySection, Key: key}
		}
	}

	out := src.Clone()
	out.Append("Unit", "SourcePath", src.Path)
	out.Append("Unit", "RequiresMountsFor", "%t/containers")
	out.RenameSection(primarySection, xSection)
	return out, nil
}

// outputStem computes the output filename (without directory) for file,
// honoring the -network/-volume suffixes those two kinds require.
func outputStem(file string, kind Kind) string {
	switch kind {
	case KindNetwork:
		return unit.ReplaceExtension(file, ".service", "", "-network")
	case KindVolume:
		return unit.ReplaceExtension(file, ".service", "", "-volume")
	default:
		return unit.ReplaceExtension(file, ".service", "", "")
	}
}
