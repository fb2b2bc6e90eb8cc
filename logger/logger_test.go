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

package logger_test

import (
	. "gopkg.in/check.v1"

	"github.com/quadlet-go/quadlet/logger"
)

type PackageSuite struct{}

var _ = Suite(&PackageSuite{})

func (s *PackageSuite) TestMockLoggerRestoresPrevious(c *C) {
	restore := logger.MockLogger()
	logger.Noticef("hello %s", "world")
	restore()
	// No panic and no assertion beyond successful restore -- the
	// recording logger's contents aren't part of the public surface.
}

func (s *PackageSuite) TestSetLoggerReturnsPrevious(c *C) {
	restore := logger.MockLogger()
	defer restore()

	second := logger.MockLogger()
	defer second()

	prev := logger.SetLogger(nil)
	c.Check(prev, NotNil)
	c.Check(logger.SetLogger(prev), IsNil)

	logger.Errorf("boom")
}
