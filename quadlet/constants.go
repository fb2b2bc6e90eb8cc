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

// Package quadlet translates declarative container/kube/network/volume
// unit files into systemd service units that drive podman.
package quadlet

const (
	ContainerSection  = "Container"
	KubeSection       = "Kube"
	NetworkSection    = "Network"
	VolumeSection     = "Volume"
	XContainerSection = "X-Container"
	XKubeSection      = "X-Kube"
	XNetworkSection   = "X-Network"
	XVolumeSection    = "X-Volume"

	UnitSectionName    = "Unit"
	ServiceSectionName = "Service"
	InstallSectionName = "Install"
)

func stringSet(keys []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

var supportedContainerKeys = stringSet([]string{
	"AddCapability",
	"AddDevice",
	"Annotation",
	"ContainerName",
	"DropCapability",
	"Environment",
	"EnvironmentFile",
	"EnvironmentHost",
	"Exec",
	"ExposeHostPort",
	"Group",
	"Image",
	"IP",
	"IP6",
	"Label",
	"LogDriver",
	"Mount",
	"Network",
	"NoNewPrivileges",
	"Notify",
	"PodmanArgs",
	"PublishPort",
	"ReadOnly",
	"RemapGid",
	"RemapUid",
	"RemapUidSize",
	"RemapUsers",
	"Rootfs",
	"RunInit",
	"SeccompProfile",
	"SecurityLabelDisable",
	"SecurityLabelFileType",
	"SecurityLabelLevel",
	"SecurityLabelType",
	"Secret",
	"Timezone",
	"User",
	"UserNS",
	"VolatileTmp",
	"Volume",
})

var supportedKubeKeys = stringSet([]string{
	"ConfigMap",
	"LogDriver",
	"Network",
	"PublishPort",
	"RemapGid",
	"RemapUid",
	"RemapUidSize",
	"RemapUsers",
	"UserNS",
	"Yaml",
})

var supportedNetworkKeys = stringSet([]string{
	"DisableDNS",
	"Driver",
	"Gateway",
	"Internal",
	"IPAMDriver",
	"IPRange",
	"IPv6",
	"Label",
	"Options",
	"Subnet",
})

var supportedVolumeKeys = stringSet([]string{
	"Copy",
	"Device",
	"Group",
	"Label",
	"Options",
	"Type",
	"User",
})
