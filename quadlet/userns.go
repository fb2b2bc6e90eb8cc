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
	"strconv"
	"strings"

	"github.com/quadlet-go/quadlet/unit"
)

// handleLogDriver emits --log-driver <value> when LogDriver= is set.
// Only Container translation uses it; TranslateKube handles LogDriver=
// itself and falls back to config.DefaultLogDriver.
func handleLogDriver(src *unit.UnitData, section string, podman *Command) {
	if driver, ok := src.LookupLast(section, "LogDriver"); ok {
		podman.AddAll("--log-driver", driver)
	}
}

// handleUserNS emits --userns <value> when UserNS= is set to a
// non-empty value.
func handleUserNS(src *unit.UnitData, section string, podman *Command) {
	if userns, ok := src.LookupLast(section, "UserNS"); ok && userns != "" {
		podman.AddAll("--userns", userns)
	}
}

// handleUserRemap translates RemapUsers=/RemapUid=/RemapGid= into the
// matching --uidmap=/--gidmap=/--userns= arguments. UserNS= takes
// precedence: when it is set, every Remap key is ignored outright.
// isUser gates RemapUsers=keep-id, which only makes sense against a
// user-mode podman; supportManual gates RemapUsers=manual, which the
// Kube path never accepted.
func handleUserRemap(src *unit.UnitData, section string, podman *Command, isUser, supportManual bool) error {
	if _, ok := src.LookupLast(section, "UserNS"); ok {
		return nil
	}

	uidMaps := src.LookupAllStrv(section, "RemapUid")
	gidMaps := src.LookupAllStrv(section, "RemapGid")
	remapUsers, hasRemap := src.LookupLast(section, "RemapUsers")
	if !hasRemap {
		if len(uidMaps) > 0 {
			return &InvalidRemapUsers{Value: "RemapUid set without RemapUsers"}
		}
		if len(gidMaps) > 0 {
			return &InvalidRemapUsers{Value: "RemapGid set without RemapUsers"}
		}
		return nil
	}

	switch remapUsers {
	case "manual":
		if !supportManual {
			return &InvalidRemapUsers{Value: "RemapUsers=manual is not supported"}
		}
		for _, m := range uidMaps {
			podman.Add("--uidmap=" + m)
		}
		for _, m := range gidMaps {
			podman.Add("--gidmap=" + m)
		}
	case "auto":
		var autoOpts []string
		for _, m := range uidMaps {
			autoOpts = append(autoOpts, "uidmapping="+m)
		}
		for _, m := range gidMaps {
			autoOpts = append(autoOpts, "gidmapping="+m)
		}
		if sizeStr, ok := src.LookupLast(section, "RemapUidSize"); ok {
			size, _ := strconv.ParseUint(sizeStr, 10, 32)
			if size > 0 {
				autoOpts = append(autoOpts, fmt.Sprintf("size=%d", size))
			}
		}
		if len(autoOpts) == 0 {
			podman.Add("--userns=auto")
		} else {
			podman.Add("--userns=auto:" + strings.Join(autoOpts, ","))
		}
	case "keep-id":
		if !isUser {
			return &InvalidRemapUsers{Value: "RemapUsers=keep-id is unsupported for system units"}
		}
		var keepIDOpts []string
		if len(uidMaps) > 0 {
			if len(uidMaps) > 1 {
				return &InvalidRemapUsers{Value: "RemapUsers=keep-id supports only a single value for UID mapping"}
			}
			keepIDOpts = append(keepIDOpts, "uid="+uidMaps[0])
		}
		if len(gidMaps) > 0 {
			if len(gidMaps) > 1 {
				return &InvalidRemapUsers{Value: "RemapUsers=keep-id supports only a single value for GID mapping"}
			}
			keepIDOpts = append(keepIDOpts, "gid="+gidMaps[0])
		}
		if len(keepIDOpts) == 0 {
			podman.Add("--userns=keep-id")
		} else {
			podman.Add("--userns=keep-id:" + strings.Join(keepIDOpts, ","))
		}
	default:
		return &InvalidRemapUsers{Value: fmt.Sprintf("unsupported RemapUsers option %q", remapUsers)}
	}
	return nil
}
