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

package quadlet_test

import (
	"strings"

	. "gopkg.in/check.v1"

	"github.com/quadlet-go/quadlet/quadlet"
)

type NetworkSuite struct{}

var _ = Suite(&NetworkSuite{})

func (s *NetworkSuite) TestOneshotWithExecCondition(c *C) {
	src := parseNamed(c, "app.network", "[Network]\nSubnet=10.89.0.0/24\n")
	out, err := quadlet.TranslateNetwork(src, false)
	c.Assert(err, IsNil)

	svcType, _ := out.LookupLast("Service", "Type")
	c.Check(svcType, Equals, "oneshot")
	remain, _ := out.LookupLast("Service", "RemainAfterExit")
	c.Check(remain, Equals, "yes")

	cond, ok := out.LookupLast("Service", "ExecCondition")
	c.Assert(ok, Equals, true)
	c.Check(strings.Contains(cond, "network exists systemd-app"), Equals, true)
}

// TestMismatchedRangesIsAnError mirrors end-to-end scenario 5: more
// Gateway=/IPRange= entries than Subnet= entries is rejected.
func (s *NetworkSuite) TestMismatchedRangesIsAnError(c *C) {
	src := parseNamed(c, "app.network",
		"[Network]\nSubnet=10.89.0.0/24\nGateway=10.89.0.1\nGateway=10.90.0.1\n")
	_, err := quadlet.TranslateNetwork(src, false)
	c.Assert(err, FitsTypeOf, &quadlet.InvalidSubnet{})
}
