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
	"github.com/quadlet-go/quadlet/config"
	"github.com/quadlet-go/quadlet/unit"
)

// TranslateKube converts a parsed .kube unit into its service unit.
// userMode gates RemapUsers=keep-id; see TranslateContainer's note.
func TranslateKube(src *unit.UnitData, userMode bool) (*unit.UnitData, error) {
	out, err := preamble(src, KubeSection, XKubeSection, supportedKubeKeys)
	if err != nil {
		return nil, err
	}

	yamlPath, hasYaml := src.LookupLast(KubeSection, "Yaml")
	if !hasYaml || yamlPath == "" {
		return nil, &YamlMissing{Path: src.Path}
	}
	yamlPath = unit.AbsoluteFromUnit(yamlPath, src.Path)

	if kind, name, derr := describeKubeYaml(yamlPath); derr == nil && kind != "" {
		desc := kind
		if name != "" {
			desc += " " + name
		}
		out.Set(UnitSectionName, "Description", desc)
	}

	podman := NewCommand(config.PodmanBinary())
	podman.AddAll("kube", "play", "--replace", "--service-container=true")

	if cm, ok := src.LookupLast(KubeSection, "ConfigMap"); ok && cm != "" {
		podman.Add("--configmap")
		podman.Add(unit.AbsoluteFromUnit(cm, src.Path))
	}

	networks, err := src.LookupAllArgs(KubeSection, "Network")
	if err != nil {
		return nil, err
	}
	for _, n := range networks {
		podman.Add("--network")
		podman.Add(resolveNetworkRef(n, out))
	}

	publishes, err := src.LookupAllArgs(KubeSection, "PublishPort")
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

	if err := handleUserRemap(src, KubeSection, podman, userMode, false); err != nil {
		return nil, err
	}
	handleUserNS(src, KubeSection, podman)

	logDriver, hasLogDriver := src.LookupLast(KubeSection, "LogDriver")
	if !hasLogDriver || logDriver == "" {
		logDriver = config.DefaultLogDriver
	}
	podman.Add("--log-driver")
	podman.Add(logDriver)

	podman.Add(yamlPath)

	out.Set(ServiceSectionName, "Environment", "PODMAN_SYSTEMD_UNIT=%n")
	out.Set(ServiceSectionName, "Type", "notify")
	out.Set(ServiceSectionName, "NotifyAccess", "all")
	out.Set(ServiceSectionName, "ExecStopPost", config.PodmanBinary()+" kube down "+yamlPath)
	out.Set(ServiceSectionName, "ExecStart", podman.ToEscapedString())

	return out, nil
}
