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
	"path"
	"strings"

	"github.com/quadlet-go/quadlet/unit"
)

// SourceUnit pairs a parsed document with the path it came from, as
// handed to the orchestrator by the directory-search layer.
type SourceUnit struct {
	Path string
	Data *unit.UnitData
}

// Sink receives each generated service unit's final name and text. It
// is also asked, separately, to enable a unit for the default target by
// creating (or documented-equivalent-copying) a wants-symlink.
type Sink interface {
	Write(name, content string) error
	EnableDefault(name string) error
}

// Logger is the minimal leveled logging surface the orchestrator needs;
// any logger.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

func kindForExt(ext string) (Kind, bool) {
	switch ext {
	case ".container":
		return KindContainer, true
	case ".kube":
		return KindKube, true
	case ".network":
		return KindNetwork, true
	case ".volume":
		return KindVolume, true
	default:
		return 0, false
	}
}

// Run de-duplicates units by filename across the search-path priority
// order (first occurrence wins), translates each recognized unit, and
// hands every successful conversion to sink. A ConversionError never
// aborts the batch -- it is logged and the next unit is processed.
func Run(units []SourceUnit, userMode bool, sink Sink, log Logger) {
	seen := map[string]bool{}

	for _, su := range units {
		base := path.Base(su.Path)
		if seen[base] {
			log.Debugf("skipping %s: shadowed by a higher-priority directory", su.Path)
			continue
		}
		seen[base] = true

		ext := path.Ext(su.Path)
		kind, ok := kindForExt(ext)
		if !ok {
			log.Debugf("skipping %s: unrecognized extension", su.Path)
			continue
		}

		out, err := translate(su, kind, userMode)
		if err != nil {
			log.Errorf("%s: %v", su.Path, err)
			continue
		}

		name := outputStem(base, kind)
		if err := sink.Write(name, out.String()); err != nil {
			log.Errorf("%s: writing %s: %v", su.Path, name, err)
			continue
		}

		if wantsDefaultTarget(su.Data) {
			if err := sink.EnableDefault(name); err != nil {
				log.Errorf("%s: enabling %s: %v", su.Path, name, err)
			}
		}
	}
}

func translate(su SourceUnit, kind Kind, userMode bool) (*unit.UnitData, error) {
	switch kind {
	case KindContainer:
		return TranslateContainer(su.Data, userMode)
	case KindKube:
		return TranslateKube(su.Data, userMode)
	case KindNetwork:
		return TranslateNetwork(su.Data, userMode)
	case KindVolume:
		return TranslateVolume(su.Data, userMode)
	default:
		panic("unreachable kind")
	}
}

// wantsDefaultTarget reports whether the source unit carries an
// [Install] WantedBy= entry naming any ".target" unit, the marker this
// generator uses to decide whether to call Sink.EnableDefault. The
// named target is not used: the sink always links into
// default.target.wants/.
func wantsDefaultTarget(src *unit.UnitData) bool {
	for _, w := range src.LookupAllStrv(InstallSectionName, "WantedBy") {
		if strings.HasSuffix(w, ".target") {
			return true
		}
	}
	return false
}
