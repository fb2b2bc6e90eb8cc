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

	"github.com/quadlet-go/quadlet/config"
	"github.com/quadlet-go/quadlet/unit"
)

// TranslateNetwork converts a parsed .network unit into its service
// unit. userMode is accepted for parity with the other translators; see
// TranslateContainer's note.
func TranslateNetwork(src *unit.UnitData, userMode bool) (*unit.UnitData, error) {
	_ = userMode
	out, err := preamble(src, NetworkSection, XNetworkSection, supportedNetworkKeys)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(path.Base(src.Path), path.Ext(src.Path))
	name := "systemd-" + stem

	subnets, err := src.LookupAllArgs(NetworkSection, "Subnet")
	if err != nil {
		return nil, err
	}
	gateways, err := src.LookupAllArgs(NetworkSection, "Gateway")
	if err != nil {
		return nil, err
	}
	ipRanges, err := src.LookupAllArgs(NetworkSection, "IPRange")
	if err != nil {
		return nil, err
	}
	if len(gateways) > len(subnets) || len(ipRanges) > len(subnets) {
		return nil, &InvalidSubnet{Value: strings.Join(subnets, ",")}
	}

	podman := NewCommand(config.PodmanBinary())
	podman.AddAll("network", "create", "--ignore")

	if driver, ok := src.LookupLast(NetworkSection, "Driver"); ok && driver != "" {
		podman.Add("--driver")
		podman.Add(driver)
	}
	for _, s := range subnets {
		podman.Add("--subnet")
		podman.Add(s)
	}
	for _, g := range gateways {
		podman.Add("--gateway")
		podman.Add(g)
	}
	for _, r := range ipRanges {
		podman.Add("--ip-range")
		podman.Add(r)
	}
	if internal, ok := src.LookupBool(NetworkSection, "Internal"); ok && internal {
		podman.Add("--internal")
	}
	if ipv6, ok := src.LookupBool(NetworkSection, "IPv6"); ok && ipv6 {
		podman.Add("--ipv6")
	}
	if dnsDisable, ok := src.LookupBool(NetworkSection, "DisableDNS"); ok && dnsDisable {
		podman.Add("--disable-dns")
	}
	if driver, ok := src.LookupLast(NetworkSection, "IPAMDriver"); ok && driver != "" {
		podman.Add("--ipam-driver")
		podman.Add(driver)
	}
	podman.AddKeys("--opt", src.LookupAllKeyVal(NetworkSection, "Options"))
	podman.AddKeys("--label", src.LookupAllKeyVal(NetworkSection, "Label"))
	podman.Add(name)

	out.Set(ServiceSectionName, "Type", "oneshot")
	out.Set(ServiceSectionName, "RemainAfterExit", "yes")
	out.Set(ServiceSectionName, "ExecCondition", "/bin/bash -c \"! "+config.PodmanBinary()+" network exists "+name+"\"")
	out.Set(ServiceSectionName, "ExecStart", podman.ToEscapedString())
	out.Set(ServiceSectionName, "ExecStop", config.PodmanBinary()+" network rm "+name)

	return out, nil
}
