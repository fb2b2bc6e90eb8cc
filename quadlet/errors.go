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

import "fmt"

// UnsupportedKey is returned when a unit file sets a key this generator
// doesn't recognize in the given section.
type UnsupportedKey struct {
	Section, Key string
}

func (e *UnsupportedKey) Error() string {
	return fmt.Sprintf("unsupported key %q in section [%s]", e.Key, e.Section)
}

// InvalidImageOrRootfs is returned when neither Image= nor Rootfs= (or
// both) are set on a .container unit.
type InvalidImageOrRootfs struct {
	Path string
}

func (e *InvalidImageOrRootfs) Error() string {
	return fmt.Sprintf("%s: exactly one of Image= or Rootfs= must be set", e.Path)
}

// InvalidKillMode is returned for a Service KillMode= this generator
// refuses to pass through unmodified.
type InvalidKillMode struct {
	Value string
}

func (e *InvalidKillMode) Error() string {
	return fmt.Sprintf("invalid KillMode %q: only \"mixed\" and \"control-group\" are supported", e.Value)
}

// InvalidServiceType is returned for a Service Type= incompatible with
// Notify=.
type InvalidServiceType struct {
	Value string
}

func (e *InvalidServiceType) Error() string {
	return fmt.Sprintf("invalid Type %q for Notify=: only \"notify\" and \"oneshot\" make sense here", e.Value)
}

// InvalidTmpfs is returned for a malformed Tmpfs= destination.
type InvalidTmpfs struct {
	Value string
}

func (e *InvalidTmpfs) Error() string {
	return fmt.Sprintf("invalid tmpfs mount %q", e.Value)
}

// InvalidPortFormat is returned when an ExposeHostPort= value isn't a
// valid port or port range.
type InvalidPortFormat struct {
	Value string
}

func (e *InvalidPortFormat) Error() string {
	return fmt.Sprintf("invalid port format %q", e.Value)
}

// InvalidPublishedPort is returned when a colon-separated field of a
// PublishPort= value is neither an IP literal nor a valid port or port
// range.
type InvalidPublishedPort struct {
	Value string
}

func (e *InvalidPublishedPort) Error() string {
	return fmt.Sprintf("invalid published port %q", e.Value)
}

// InvalidSubnet is returned when a .network unit has more Gateway= or
// IPRange= entries than Subnet= entries. Subnet= values are not parsed
// as CIDRs.
type InvalidSubnet struct {
	Value string
	Err   error
}

func (e *InvalidSubnet) Error() string {
	return fmt.Sprintf("invalid subnet %q: %v", e.Value, e.Err)
}

func (e *InvalidSubnet) Unwrap() error { return e.Err }

// InvalidRemapUsers is returned for a RemapUsers=/RemapUid=/RemapGid=
// combination the generator rejects: an unrecognized RemapUsers= value,
// RemapUid=/RemapGid= set without RemapUsers=, RemapUsers=manual on a
// unit kind that doesn't support it, or RemapUsers=keep-id used outside
// user mode or with more than one uid/gid value.
type InvalidRemapUsers struct {
	Value string
}

func (e *InvalidRemapUsers) Error() string {
	return fmt.Sprintf("invalid RemapUsers configuration: %s", e.Value)
}

// InvalidDeviceType is returned when a Volume Type= is set without a
// Device=.
type InvalidDeviceType struct {
	Value string
}

func (e *InvalidDeviceType) Error() string {
	return e.Value
}

// InvalidDeviceOptions is returned when a Volume Options= is set
// without a Device=.
type InvalidDeviceOptions struct {
	Value string
}

func (e *InvalidDeviceOptions) Error() string {
	return e.Value
}

// YamlMissing is returned when a .kube unit omits the required Yaml=
// key.
type YamlMissing struct {
	Path string
}

func (e *YamlMissing) Error() string {
	return fmt.Sprintf("%s: [Kube] section requires Yaml=", e.Path)
}
