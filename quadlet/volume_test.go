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

type VolumeSuite struct{}

var _ = Suite(&VolumeSuite{})

func (s *VolumeSuite) TestMinimalVolume(c *C) {
	src := parseNamed(c, "data.volume", "[Volume]\n")
	out, err := quadlet.TranslateVolume(src, false)
	c.Assert(err, IsNil)

	cond, ok := out.LookupLast("Service", "ExecCondition")
	c.Assert(ok, Equals, true)
	c.Check(strings.Contains(cond, "volume exists systemd-data"), Equals, true)
}

func (s *VolumeSuite) TestOptionsWithoutDeviceIsAnError(c *C) {
	src := parseNamed(c, "data.volume", "[Volume]\nOptions=noatime\n")
	_, err := quadlet.TranslateVolume(src, false)
	c.Assert(err, FitsTypeOf, &quadlet.InvalidDeviceOptions{})
}

func (s *VolumeSuite) TestTypeWithoutDeviceIsAnError(c *C) {
	src := parseNamed(c, "data.volume", "[Volume]\nType=ext4\n")
	_, err := quadlet.TranslateVolume(src, false)
	c.Assert(err, FitsTypeOf, &quadlet.InvalidDeviceType{})
}

func (s *VolumeSuite) TestDeviceTypeOptionsAndOwnership(c *C) {
	src := parseNamed(c, "data.volume",
		"[Volume]\nDevice=/dev/sdb1\nType=ext4\nOptions=noatime\nUser=1000\nGroup=1000\nCopy=yes\n")
	out, err := quadlet.TranslateVolume(src, false)
	c.Assert(err, IsNil)

	execStart, _ := out.LookupLast("Service", "ExecStart")
	c.Check(strings.Contains(execStart, "device=/dev/sdb1"), Equals, true)
	c.Check(strings.Contains(execStart, "type=ext4"), Equals, true)
	c.Check(strings.Contains(execStart, "o=uid=1000,gid=1000,noatime"), Equals, true)
	c.Check(strings.Contains(execStart, "copy"), Equals, true)
}
