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

type ParserSuite struct{}

var _ = Suite(&ParserSuite{})

func (s *ParserSuite) TestParsesBasicSections(c *C) {
	u, err := unit.Parse("[Container]\nImage=nginx\n")
	c.Assert(err, IsNil)
	v, ok := u.LookupLast("Container", "Image")
	c.Assert(ok, Equals, true)
	c.Check(v, Equals, "nginx")
}

func (s *ParserSuite) TestIgnoresCommentsAndBlankLines(c *C) {
	u, err := unit.Parse("# leading comment\n\n[Container]\n; another comment\nImage=nginx\n\n")
	c.Assert(err, IsNil)
	c.Check(u.HasSection("Container"), Equals, true)
	v, _ := u.LookupLast("Container", "Image")
	c.Check(v, Equals, "nginx")
}

func (s *ParserSuite) TestRepeatedSectionsMerge(c *C) {
	u, err := unit.Parse("[A]\nX=1\n[B]\nY=2\n[A]\nZ=3\n")
	c.Assert(err, IsNil)
	args, err := u.LookupAllArgs("A", "X")
	c.Assert(err, IsNil)
	c.Check(args, DeepEquals, []string{"1"})
	z, ok := u.LookupLast("A", "Z")
	c.Assert(ok, Equals, true)
	c.Check(z, Equals, "3")
}

func (s *ParserSuite) TestContentOutsideSectionIsAnError(c *C) {
	_, err := unit.Parse("Key=value\n")
	c.Assert(err, NotNil)
	pe, ok := err.(*unit.ParseError)
	c.Assert(ok, Equals, true)
	c.Check(pe.Msg, Equals, "Expected comment or section")
}

func (s *ParserSuite) TestEmptySectionNameIsAnError(c *C) {
	_, err := unit.Parse("[]\nKey=value\n")
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestInvalidKeyIsAnError(c *C) {
	_, err := unit.Parse("[A]\nBad Key=value\n")
	c.Assert(err, NotNil)
}

func (s *ParserSuite) TestLineContinuation(c *C) {
	u, err := unit.Parse("[Section]\nKey=foo \\\n# ignored\nbar\n")
	c.Assert(err, IsNil)
	v, ok := u.LookupLast("Section", "Key")
	c.Assert(ok, Equals, true)
	c.Check(v, Equals, "foo  bar")
}

func (s *ParserSuite) TestLineContinuationEndsBeforeNewSection(c *C) {
	u, err := unit.Parse("[A]\nKey=foo \\\n[B]\nX=1\n")
	c.Assert(err, IsNil)
	v, ok := u.LookupLast("A", "Key")
	c.Assert(ok, Equals, true)
	c.Check(v, Equals, "foo")
	c.Check(u.HasSection("B"), Equals, true)
}

func (s *ParserSuite) TestRoundTripOfCanonicalDocument(c *C) {
	doc := "[Container]\nImage=nginx\nEnvironment=FOO=bar\n"
	u, err := unit.Parse(doc)
	c.Assert(err, IsNil)
	c.Check(u.String(), Equals, doc)
}

func (s *ParserSuite) TestLookupAllValuesResetSemantics(c *C) {
	u, err := unit.Parse("[A]\nX=1\nX=2\nX=\nX=3\n")
	c.Assert(err, IsNil)
	values := u.LookupAllValues("A", "X")
	c.Assert(values, HasLen, 1)
	c.Check(values[0].Raw, Equals, "3")
}

func (s *ParserSuite) TestRenameSectionRoundTripIsIdentityOnContent(c *C) {
	u, err := unit.Parse("[A]\nX=1\n[B]\nY=2\n")
	c.Assert(err, IsNil)
	u.RenameSection("A", "B")
	u.RenameSection("B", "A")
	x, _ := u.LookupLast("A", "X")
	y, _ := u.LookupLast("A", "Y")
	c.Check(x, Equals, "1")
	c.Check(y, Equals, "2")
}
