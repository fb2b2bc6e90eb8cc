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
	"path"
	"strconv"
	"strings"

	"github.com/quadlet-go/quadlet/config"
	"github.com/quadlet-go/quadlet/unit"
)

// TranslateVolume converts a parsed .volume unit into its service unit.
// userMode is accepted for parity with the other translators; see
// TranslateContainer's note.
func TranslateVolume(src *unit.UnitData, userMode bool) (*unit.UnitData, error) {
	_ = userMode
	out, err := preamble(src, VolumeSection, XVolumeSection, supportedVolumeKeys)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(path.Base(src.Path), path.Ext(src.Path))
	name := "systemd-" + stem

	podman := NewCommand(config.PodmanBinary())
	podman.AddAll("volume", "create", "--ignore")

	var opts []string
	if src.HasKey(VolumeSection, "User") {
		uidStr, _ := src.LookupLast(VolumeSection, "User")
		uid, _ := strconv.ParseUint(uidStr, 10, 32)
		opts = append(opts, fmt.Sprintf("uid=%d", uid))
	}
	if src.HasKey(VolumeSection, "Group") {
		gidStr, _ := src.LookupLast(VolumeSection, "Group")
		gid, _ := strconv.ParseUint(gidStr, 10, 32)
		opts = append(opts, fmt.Sprintf("gid=%d", gid))
	}

	if copyVal, ok := src.LookupBool(VolumeSection, "Copy"); ok {
		if copyVal {
			podman.AddAll("--opt", "copy")
		} else {
			podman.AddAll("--opt", "nocopy")
		}
	}

	device, hasDevice := src.LookupLast(VolumeSection, "Device")
	devValid := hasDevice && device != ""
	if devValid {
		podman.Add("--opt")
		podman.Add("device=" + device)
	}

	if volType, ok := src.LookupLast(VolumeSection, "Type"); ok && volType != "" {
		if !devValid {
			return nil, &InvalidDeviceType{Value: "key Type can't be used without Device"}
		}
		podman.Add("--opt")
		podman.Add("type=" + volType)
	}

	if options, ok := src.LookupLast(VolumeSection, "Options"); ok && options != "" {
		if !devValid {
			return nil, &InvalidDeviceOptions{Value: "key Options can't be used without Device"}
		}
		opts = append(opts, options)
	}

	if len(opts) > 0 {
		podman.Add("--opt")
		podman.Add("o=" + strings.Join(opts, ","))
	}

	podman.AddKeys("--label", src.LookupAllKeyVal(VolumeSection, "Label"))
	podman.Add(name)

	out.Set(ServiceSectionName, "Type", "oneshot")
	out.Set(ServiceSectionName, "RemainAfterExit", "yes")
	out.Set(ServiceSectionName, "ExecCondition", "/bin/bash -c \"! "+config.PodmanBinary()+" volume exists "+name+"\"")
	out.Set(ServiceSectionName, "ExecStart", podman.ToEscapedString())

	return out, nil
}
