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

package param

import (
	"fmt"
	"strings"
)

// Unit is the unit tag of a parameter value. Units are labels only, the
// engine does not convert between them.
type Unit int

const (
	// UnitNone means the value carries no unit.
	UnitNone Unit = iota

	// UnitMillimeter is the default length unit.
	UnitMillimeter

	// UnitCentimeter is a length unit.
	UnitCentimeter

	// UnitMeter is a length unit.
	UnitMeter

	// UnitInch is a length unit.
	UnitInch

	// UnitFoot is a length unit.
	UnitFoot

	// UnitDegree is the default angle unit.
	UnitDegree

	// UnitRadian is an angle unit.
	UnitRadian
)

var unitNames = map[Unit]string{
	UnitNone:       "",
	UnitMillimeter: "mm",
	UnitCentimeter: "cm",
	UnitMeter:      "m",
	UnitInch:       "in",
	UnitFoot:       "ft",
	UnitDegree:     "deg",
	UnitRadian:     "rad",
}

// String returns the short name of this unit. UnitNone is the empty string.
func (obj Unit) String() string {
	if s, exists := unitNames[obj]; exists {
		return s
	}
	return fmt.Sprintf("unit(%d)", int(obj))
}

// ParseUnit maps a unit name back to the Unit. Matching is case-insensitive,
// and the empty string parses as UnitNone.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(s)
	for u, name := range unitNames {
		if name == s {
			return u, nil
		}
	}
	return UnitNone, fmt.Errorf("unknown unit: `%s`", s)
}

// DefaultUnit returns the unit a parameter of the given kind gets when none
// was specified: mm for lengths, deg for angles, none for everything else.
func DefaultUnit(kind Kind) Unit {
	switch kind {
	case KindLength:
		return UnitMillimeter
	case KindAngle:
		return UnitDegree
	default:
		return UnitNone
	}
}
