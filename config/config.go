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

// Package config holds the handful of process-wide settings the
// generator takes from the environment. PodmanBinary reads the PODMAN
// variable on every call, and the translators call it directly each time
// they build a command; the value is not cached for the run.
package config

import "os"

const (
	// DefaultPodmanBinary is used when the PODMAN environment variable
	// is unset.
	DefaultPodmanBinary = "/usr/bin/podman"

	// DefaultLogDriver is applied to .kube units that don't set
	// LogDriver= explicitly. .container units get no --log-driver flag
	// unless they set LogDriver= themselves.
	//
	// TODO: switch to "passthrough" once we can rely on a podman new
	// enough to default to it itself.
	DefaultLogDriver = "journald"
)

// PodmanBinary returns the runtime binary to invoke, honoring the PODMAN
// environment variable override.
func PodmanBinary() string {
	if p := os.Getenv("PODMAN"); p != "" {
		return p
	}
	return DefaultPodmanBinary
}
