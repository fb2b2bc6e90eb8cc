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

	"gopkg.in/yaml.v3"
)

// kubeDescriptor is the friendly identification this generator extracts
// from a Yaml= target for the generated unit's Description=; the path is
// always passed through to `kube play` regardless of what
// describeKubeYaml finds.
type kubeDescriptor struct {
	Kind string `yaml:"kind"`
	Meta struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
}

// describeKubeYaml reads and parses yamlPath well enough to report its
// Kubernetes kind and object name. Any failure to read or parse is
// returned as-is; TranslateKube then leaves Description= unset and
// carries on.
func describeKubeYaml(yamlPath string) (kind, name string, err error) {
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return "", "", err
	}
	var d kubeDescriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return "", "", err
	}
	return d.Kind, d.Meta.Name, nil
}
