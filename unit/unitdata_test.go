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

package unit_test

import (
	. "gopkg.in/check.v1"

	"github.com/quadlet-go/quadlet/unit"
)

type UnitDataSuite struct{}

var _ = Suite(&UnitDataSuite{})

func (s *UnitDataSuite) TestAppendCreatesSection(c *C) {
	u := unit.New()
	u.Append("Container", "Image", "nginx")
	c.Check(u.HasSection("Container"), Equals, true)
	c.Check(u.HasKey("Container", "Image"), Equals, true)
}

func (s *UnitDataSuite) TestPrependKeepsExistingOrder(c *C) {
	u := unit.New()
	u.Append("A", "X", "1")
	u.Append("A", "Y", "2")
	u.Prepend("A", "Z", "0")
	args, err := u.LookupAllArgs("A", "Z")
	c.Assert(err, IsNil)
	c.Check(args, DeepEquals, []string{"0"})
	c.Check(u.String(), Equals, "[A]\nZ=0\nX=1\nY=2\n")
}

func (s *UnitDataSuite) TestSetReplacesLastOccurrence(c *C) {
	u := unit.New()
	u.Append("A", "X", "1")
	u.Append("A", "X", "2")
	u.Set("A", "X", "3")
	c.Check(u.String(), Equals, "[A]\nX=1\nX=3\n")
}

func (s *UnitDataSuite) TestSetAppendsWhenAbsent(c *C) {
	u := unit.New()
	u.Set("A", "X", "1")
	v, ok := u.LookupLast("A", "X")
	c.Assert(ok, Equals, true)
	c.Check(v, Equals, "1")
}

func (s *UnitDataSuite) TestRemoveEntriesAndSection(c *C) {
	u := unit.New()
	u.Append("A", "X", "1")
	u.Append("A", "Y", "2")
	u.RemoveEntries("A", "X")
	c.Check(u.HasKey("A", "X"), Equals, false)
	c.Check(u.HasKey("A", "Y"), Equals, true)
	u.RemoveSection("A")
	c.Check(u.HasSection("A"), Equals, false)
}

func (s *UnitDataSuite) TestMergeFromAppendsInDocumentOrder(c *C) {
	a := unit.New()
	a.Append("A", "X", "1")
	b := unit.New()
	b.Append("A", "Y", "2")
	b.Append("B", "Z", "3")
	a.MergeFrom(b)
	c.Check(a.String(), Equals, "[A]\nX=1\nY=2\n\n[B]\nZ=3\n")
}

func (s *UnitDataSuite) TestLookupAllKeyVal(c *C) {
	u := unit.New()
	u.Append("A", "Label", "foo=bar baz=qux noval")
	got := u.LookupAllKeyVal("A", "Label")
	c.Check(got, DeepEquals, map[string]string{"foo": "bar", "baz": "qux", "noval": ""})
}

func (s *UnitDataSuite) TestLookupAllDoesNotWordSplit(c *C) {
	u := unit.New()
	u.Append("A", "Port", " 80-90 ")
	u.Append("A", "Port", "8080 8443")
	got, err := u.LookupAll("A", "Port")
	c.Assert(err, IsNil)
	c.Check(got, DeepEquals, []string{" 80-90 ", "8080 8443"})
}

func (s *UnitDataSuite) TestLookupBool(c *C) {
	u := unit.New()
	u.Append("A", "Flag", "yes")
	v, ok := u.LookupBool("A", "Flag")
	c.Assert(ok, Equals, true)
	c.Check(v, Equals, true)

	_, ok = u.LookupBool("A", "Missing")
	c.Check(ok, Equals, false)
}

func (s *UnitDataSuite) TestCloneIsIndependent(c *C) {
	u := unit.New()
	u.Append("A", "X", "1")
	clone := u.Clone()
	clone.Append("A", "Y", "2")
	c.Check(u.HasKey("A", "Y"), Equals, false)
	c.Check(clone.HasKey("A", "Y"), Equals, true)
}
