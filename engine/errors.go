// NEOcad parametric engine
// Copyright (C) the NEOcad project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package engine

import (
	"github.com/alphaladdin/NEOcad2-sub001/util"
)

const (
	// ErrNotRegistered is returned when an operation names a parameter
	// that this engine doesn't know about.
	ErrNotRegistered = util.Error("parameter is not registered")

	// ErrDuplicateName is returned when registering a parameter whose
	// name is already taken in this engine. Names are the formula
	// namespace, they must be unique per engine.
	ErrDuplicateName = util.Error("parameter name is already registered")

	// ErrDuplicateID is returned when registering a parameter whose id is
	// already taken in this engine.
	ErrDuplicateID = util.Error("parameter id is already registered")

	// ErrCircular is returned when a formula would create a dependency
	// cycle. The formula is rolled back entirely.
	ErrCircular = util.Error("formula would create a circular dependency")

	// ErrReentrant is returned when an evaluation re-enters a parameter
	// that is already being evaluated. That single attempt is aborted.
	ErrReentrant = util.Error("parameter is already being evaluated")
)
