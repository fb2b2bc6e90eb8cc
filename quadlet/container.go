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
	"os"
	"path"
	"strings"

	"github.com/quadlet-go/quadlet/config"
	"github.com/quadlet-go/quadlet/unit"
)

// resolveMountSource applies the Volume=/Mount= source-resolution rule:
// a ".volume"-suffixed reference becomes a "systemd-<stem>" volume name
// with a Requires=/After= edge on "<stem>-volume.service"; a
// dot-relative path is rebased onto the unit's own directory; an
// absolute path gains a RequiresMountsFor= entry; anything else
// (including specifiers) passes through unchanged.
func resolveMountSource(raw, unitPath string, out *unit.UnitData) string {
	switch {
	case strings.HasSuffix(raw, ".volume"):
		stem := strings.TrimSuffix(path.Base(raw), ".volume")
		svc := stem + "-volume.service"
		out.Append(UnitSectionName, "Requires", svc)
		out.Append(UnitSectionName, "After", svc)
		return "systemd-" + stem
	case strings.HasPrefix(raw, "."):
		return unit.AbsoluteFromUnit(raw, unitPath)
	case path.IsAbs(raw):
		out.Append(UnitSectionName, "RequiresMountsFor", raw)
		return raw
	default:
		return raw
	}
}

// resolveNetworkRef applies the Network= source-resolution rule: a
// ".network"-suffixed reference becomes "systemd-<stem>" with a
// Requires=/After= edge on "<stem>-network.service"; anything else
// passes through unchanged (including a trailing ":opts" suffix).
func resolveNetworkRef(raw string, out *unit.UnitData) string {
	name, opts := raw, ""
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		name, opts = raw[:idx], raw[idx:]
	}
	if !strings.HasSuffix(name, ".network") {
		return raw
	}
	stem := strings.TrimSuffix(path.Base(name), ".network")
	svc := stem + "-network.service"
	out.Append(UnitSectionName, "Requires", svc)
	out.Append(UnitSectionName, "After", svc)
	return "systemd-" + stem + opts
}

// normalizePublish validates and normalizes one PublishPort= value,
// stripping a literal "0.0.0.0" host-ip part and rejecting any
// non-IP, non-port-range field.
func normalizePublish(raw string) (string, error) {
	parts := SplitPublish(raw)
	for i, p := range parts {
		if p == "" {
			continue
		}
		if p == "0.0.0.0" {
			parts[i] = ""
			continue
		}
		if strings.ContainsAny(p, ".[]") {
			// an IPv4 or bracketed IPv6 literal; left as-is.
			continue
		}
		if !IsPortRange(p) {
			return "", &InvalidPublishedPort{Value: raw}
		}
	}
	out := strings.Join(parts, ":")
	for strings.HasPrefix(out, ":") {
		out = out[1:]
	}
	return out, nil
}

// TranslateContainer converts a parsed .container unit into its service
// unit, or a *ConversionError describing the first rule violated.
// userMode only changes RemapUsers=keep-id handling -- systemd
// specifiers such as %t already resolve to the right runtime directory
// in both system and user scope.
func TranslateContainer(src *unit.UnitData, userMode bool) (*unit.UnitData, error) {
	out, err := preamble(src, ContainerSection, XContainerSection, supportedContainerKeys)
	if err != nil {
		return nil, err
	}

	image, hasImage := src.LookupLast(ContainerSection, "Image")
	rootfs, hasRootfs := src.LookupLast(ContainerSection, "Rootfs")
	if hasImage == hasRootfs {
		return nil, &InvalidImageOrRootfs{Path: src.Path}
	}

	podman := NewCommand(config.PodmanBinary())
	podman.Add("run")

	name, hasName := src.LookupLast(ContainerSection, "ContainerName")
	if !hasName || name == "" {
		name = "systemd-%N"
	}
	podman.Add("--name=" + name)
	podman.AddAll("--cidfile=%t/%N.cid", "--replace", "--rm")

	handleLogDriver(src, ContainerSection, podman)

	// groups are delegated to the container runtime.
	out.Set(ServiceSectionName, "Delegate", "yes")
	podman.Add("--cgroups=split")

	if runInit, ok := src.LookupBool(ContainerSection, "RunInit"); ok {
		podman.AddBool("--init", runInit)
	}

	svcType, _ := src.LookupLast(ServiceSectionName, "Type")
	if svcType == "" || svcType == "notify" {
		podman.Add("-d")
	}

	killMode, hasKillMode := src.LookupLast(ServiceSectionName, "KillMode")
	if !hasKillMode || killMode == "" {
		killMode = "mixed"
	}
	if killMode != "mixed" && killMode != "control-group" {
		return nil, &InvalidKillMode{Value: killMode}
	}
	out.Set(ServiceSectionName, "KillMode", killMode)

	notify, _ := src.LookupBool(ContainerSection, "Notify")
	switch svcType {
	case "oneshot":
		out.Set(ServiceSectionName, "Type", "oneshot")
	case "", "notify":
		out.Set(ServiceSectionName, "Type", "notify")
		out.Set(ServiceSectionName, "NotifyAccess", "all")
		if notify {
			podman.Add("--sdnotify=container")
		} else {
			podman.Add("--sdnotify=conmon")
		}
	default:
		return nil, &InvalidServiceType{Value: svcType}
	}

	if _, ok := src.LookupLast(ServiceSectionName, "SyslogIdentifier"); !ok {
		out.Set(ServiceSectionName, "SyslogIdentifier", "%N")
	}

	if noNewPrivileges, _ := src.LookupBool(ContainerSection, "NoNewPrivileges"); noNewPrivileges {
		podman.Add("--security-opt=no-new-privileges")
	}

	volumes, err := src.LookupAllArgs(ContainerSection, "Volume")
	if err != nil {
		return nil, err
	}
	for _, v := range volumes {
		parts := strings.SplitN(v, ":", 3)
		parts[0] = resolveMountSource(parts[0], src.Path, out)
		podman.Add("-v")
		podman.Add(strings.Join(parts, ":"))
	}

	for _, v := range src.LookupAllValues(ContainerSection, "Mount") {
		raw, uerr := v.Unquoted()
		if uerr != nil {
			return nil, uerr
		}
		fields := strings.Split(raw, ",")
		for i, f := range fields {
			kv := strings.SplitN(f, "=", 2)
			if len(kv) == 2 && (kv[0] == "source" || kv[0] == "src") {
				fields[i] = kv[0] + "=" + resolveMountSource(kv[1], src.Path, out)
			}
		}
		podman.Add("--mount")
		podman.Add(strings.Join(fields, ","))
	}

	networks, err := src.LookupAllArgs(ContainerSection, "Network")
	if err != nil {
		return nil, err
	}
	for _, n := range networks {
		podman.Add("--network")
		podman.Add(resolveNetworkRef(n, out))
	}

	exposedPorts, err := src.LookupAll(ContainerSection, "ExposeHostPort")
	if err != nil {
		return nil, err
	}
	for _, p := range exposedPorts {
		p = strings.TrimSpace(p)
		if !IsPortRange(p) {
			return nil, &InvalidPortFormat{Value: p}
		}
		podman.Add("--expose=" + p)
	}

	publishes, err := src.LookupAllArgs(ContainerSection, "PublishPort")
	if err != nil {
		return nil, err
	}
	for _, p := range publishes {
		normalized, perr := normalizePublish(p)
		if perr != nil {
			return nil, perr
		}
		podman.Add("--publish")
		podman.Add(normalized)
	}

	if ip, ok := src.LookupLast(ContainerSection, "IP"); ok && ip != "" {
		podman.AddAll("--ip", ip)
	}
	if ip6, ok := src.LookupLast(ContainerSection, "IP6"); ok && ip6 != "" {
		podman.AddAll("--ip6", ip6)
	}

	podman.AddKeys("--label", src.LookupAllKeyVal(ContainerSection, "Label"))
	podman.AddKeys("--annotation", src.LookupAllKeyVal(ContainerSection, "Annotation"))

	envs, err := src.LookupAllArgs(ContainerSection, "Environment")
	if err != nil {
		return nil, err
	}
	for _, e := range envs {
		podman.Add("--env")
		podman.Add(e)
	}
	for _, f := range src.LookupAllStrv(ContainerSection, "EnvironmentFile") {
		podman.Add("--env-file")
		podman.Add(unit.AbsoluteFromUnit(f, src.Path))
	}
	if hostEnv, _ := src.LookupBool(ContainerSection, "EnvironmentHost"); hostEnv {
		podman.Add("--env-host")
	}

	for _, s := range src.LookupAllStrv(ContainerSection, "Secret") {
		podman.Add("--secret")
		podman.Add(s)
	}

	for _, d := range src.LookupAllStrv(ContainerSection, "AddDevice") {
		optional := strings.HasPrefix(d, "-")
		dev := strings.TrimPrefix(d, "-")
		devPath := dev
		if idx := strings.IndexByte(dev, ':'); idx >= 0 {
			devPath = dev[:idx]
		}
		if optional {
			if _, serr := os.Stat(devPath); serr != nil {
				continue
			}
		}
		podman.Add("--device")
		podman.Add(dev)
	}

	for _, cap0 := range src.LookupAllStrv(ContainerSection, "AddCapability") {
		podman.Add("--cap-add")
		podman.Add(strings.ToLower(cap0))
	}
	for _, cap0 := range src.LookupAllStrv(ContainerSection, "DropCapability") {
		podman.Add("--cap-drop")
		podman.Add(strings.ToLower(cap0))
	}

	for _, key := range []string{"SecurityLabelDisable", "SecurityLabelType", "SecurityLabelLevel", "SecurityLabelFileType"} {
		v, ok := src.LookupLast(ContainerSection, key)
		if !ok || v == "" {
			continue
		}
		switch key {
		case "SecurityLabelDisable":
			if b, _ := src.LookupBool(ContainerSection, key); b {
				podman.Add("--security-opt")
				podman.Add("label=disable")
			}
		case "SecurityLabelType":
			podman.Add("--security-opt")
			podman.Add("label=type:" + v)
		case "SecurityLabelLevel":
			podman.Add("--security-opt")
			podman.Add("label=level:" + v)
		case "SecurityLabelFileType":
			podman.Add("--security-opt")
			podman.Add("label=filetype:" + v)
		}
	}

	if prof, ok := src.LookupLast(ContainerSection, "SeccompProfile"); ok && prof != "" {
		podman.Add("--security-opt")
		podman.Add("seccomp=" + prof)
	}

	readOnly, hasReadOnly := src.LookupBool(ContainerSection, "ReadOnly")
	if hasReadOnly {
		podman.AddBool("--read-only", readOnly)
	}
	volatileTmp, _ := src.LookupBool(ContainerSection, "VolatileTmp")
	if volatileTmp {
		if readOnly {
			podman.Add("--tmpfs")
			podman.Add("/tmp:rw,size=755,mode=1777")
		} else {
			podman.Add("--tmpfs")
			podman.Add("/tmp")
		}
	}

	if u, ok := src.LookupLast(ContainerSection, "User"); ok && u != "" {
		podman.Add("--user")
		podman.Add(u)
	}
	if g, ok := src.LookupLast(ContainerSection, "Group"); ok && g != "" {
		podman.Add("--group-add")
		podman.Add(g)
	}

	if err := handleUserRemap(src, ContainerSection, podman, userMode, true); err != nil {
		return nil, err
	}
	handleUserNS(src, ContainerSection, podman)

	if tz, ok := src.LookupLast(ContainerSection, "Timezone"); ok && tz != "" {
		podman.Add("--tz")
		podman.Add(tz)
	}

	podmanArgs, err := src.LookupAllArgs(ContainerSection, "PodmanArgs")
	if err != nil {
		return nil, err
	}
	podman.AddAll(podmanArgs...)

	if hasImage {
		podman.Add(image)
	} else {
		podman.Add("--rootfs")
		podman.Add(rootfs)
	}

	execWords, err := src.LookupAllArgs(ContainerSection, "Exec")
	if err != nil {
		return nil, err
	}
	podman.AddAll(execWords...)

	out.Set(ServiceSectionName, "Environment", "PODMAN_SYSTEMD_UNIT=%n")
	out.Set(ServiceSectionName, "ExecStop", config.PodmanBinary()+" rm -v -f --ignore --cidfile=%t/%N.cid")
	out.Set(ServiceSectionName, "ExecStopPost", config.PodmanBinary()+" rm -v -f --ignore --cidfile=%t/%N.cid")
	out.Set(ServiceSectionName, "ExecStart", podman.ToEscapedString())

	return out, nil
}
