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

type PathSuite struct{}

var _ = Suite(&PathSuite{})

func (s *PathSuite) TestStartsWithSpecifier(c *C) {
	cases := map[string]bool{
		"%t/foo":       true,
		"%h":           true,
		"%%":           false,
		"%%/foo":       false,
		"/abs/path":    false,
		"%abc/todo.txt": false,
		"":             false,
	}
	for in, want := range cases {
		c.Check(unit.StartsWithSpecifier(in), Equals, want, Commentf("in %q", in))
	}
}

func (s *PathSuite) TestCleaned(c *C) {
	cases := map[string]string{
		"":                 "",
		".":                "",
		"..":                "..",
		"/foo/bar/baz.js":   "/foo/bar/baz.js",
		"/foo/bar/baz/":     "/foo/bar/baz/",
		"dev.txt":           "dev.txt",
		"../todo.txt":       "../todo.txt",
		"a/b/../../../xyz":  "../xyz",
		"/a/b/../../../xyz": "/xyz",
	}
	for in, want := range cases {
		c.Check(unit.Cleaned(in), Equals, want, Commentf("in %q", in))
	}
}

func (s *PathSuite) TestAbsoluteFromWithAbsoluteTarget(c *C) {
	root := "/x/y/z"
	cases := map[string]string{
		"":                "/x/y/z",
		"/":               "/",
		".":               "/x/y/z",
		"..":              "/x/y",
		"/foo/bar/baz.js": "/foo/bar/baz.js",
		"dev.txt":         "/x/y/z/dev.txt",
		"../todo.txt":     "/x/y/todo.txt",
		"./b/c":           "/x/y/z/b/c",
	}
	for in, want := range cases {
		c.Check(unit.AbsoluteFrom(in, root), Equals, want, Commentf("in %q", in))
	}
}

func (s *PathSuite) TestAbsoluteFromLeavesSpecifiersAlone(c *C) {
	c.Check(unit.AbsoluteFrom("%t/foo", "/x/y/z"), Equals, "%t/foo")
}

func (s *PathSuite) TestAbsoluteFromUnit(c *C) {
	c.Check(unit.AbsoluteFromUnit("data", "/etc/containers/systemd/web.container"), Equals, "/etc/containers/systemd/data")
	c.Check(unit.AbsoluteFromUnit("/abs", "/etc/containers/systemd/web.container"), Equals, "/abs")
}

func (s *PathSuite) TestSplitTemplate(c *C) {
	base, instance, isTemplate := unit.SplitTemplate("web@1")
	c.Check(base, Equals, "web")
	c.Check(instance, Equals, "1")
	c.Check(isTemplate, Equals, true)

	base, instance, isTemplate = unit.SplitTemplate("web")
	c.Check(base, Equals, "web")
	c.Check(instance, Equals, "")
	c.Check(isTemplate, Equals, false)
}

func (s *PathSuite) TestReplaceExtension(c *C) {
	c.Check(unit.ReplaceExtension("web.container", ".service", "", ""), Equals, "web.service")
	c.Check(unit.ReplaceExtension("data.volume", ".service", "", "-volume"), Equals, "data-volume.service")
	c.Check(unit.ReplaceExtension("dir/app.network", ".service", "", "-network"), Equals, "dir/app-network.service")
}
