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
	"os"
	"path/filepath"
	"strings"

	. "gopkg.in/check.v1"

	"github.com/quadlet-go/quadlet/quadlet"
)

type KubeSuite struct{}

var _ = Suite(&KubeSuite{})

func (s *KubeSuite) TestRequiresYaml(c *C) {
	src := parseNamed(c, "app.kube", "[Kube]\nNetwork=bridge\n")
	_, err := quadlet.TranslateKube(src, false)
	c.Assert(err, FitsTypeOf, &quadlet.YamlMissing{})
}

func (s *KubeSuite) TestMinimalKubePlay(c *C) {
	dir := c.MkDir()
	yamlPath := filepath.Join(dir, "app.yaml")
	c.Assert(os.WriteFile(yamlPath, []byte("kind: Pod\nmetadata:\n  name: app\n"), 0644), IsNil)

	src := parseNamed(c, filepath.Join(dir, "app.kube"), "[Kube]\nYaml=app.yaml\n")
	out, err := quadlet.TranslateKube(src, false)
	c.Assert(err, IsNil)

	execStart, ok := out.LookupLast("Service", "ExecStart")
	c.Assert(ok, Equals, true)
	c.Check(strings.Contains(execStart, "kube play"), Equals, true)
	c.Check(strings.Contains(execStart, yamlPath), Equals, true)

	desc, ok := out.LookupLast("Unit", "Description")
	c.Assert(ok, Equals, true)
	c.Check(desc, Equals, "Pod app")

	stopPost, ok := out.LookupLast("Service", "ExecStopPost")
	c.Assert(ok, Equals, true)
	c.Check(strings.Contains(stopPost, "kube down"), Equals, true)
}

func (s *KubeSuite) TestRemapUsersManualIsUnsupportedForKube(c *C) {
	dir := c.MkDir()
	yamlPath := filepath.Join(dir, "app.yaml")
	c.Assert(os.WriteFile(yamlPath, []byte("kind: Pod\n"), 0644), IsNil)

	src := parseNamed(c, filepath.Join(dir, "app.kube"), "[Kube]\nYaml=app.yaml\nRemapUsers=manual\n")
	_, err := quadlet.TranslateKube(src, false)
	c.Assert(err, FitsTypeOf, &quadlet.InvalidRemapUsers{})
}
