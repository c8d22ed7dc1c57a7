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

// Kind is the semantic type tag of a parameter. It is used for display and
// validation purposes only, the formula evaluator is otherwise type-agnostic.
type Kind int

const (
	// KindNumber is a plain dimensionless number. It's the zero value so
	// that an unspecified kind defaults to it.
	KindNumber Kind = iota

	// KindLength is a linear dimension.
	KindLength

	// KindAngle is an angular dimension.
	KindAngle

	// KindArea is a surface area.
	KindArea

	// KindVolume is a volume.
	KindVolume

	// KindInteger is a whole number. Formula results commit rounded.
	KindInteger

	// KindBoolean is a true/false flag.
	KindBoolean

	// KindString is a free-form text value.
	KindString

	// KindVector3 is a three component vector.
	KindVector3

	// KindMaterial is a material assignment.
	KindMaterial

	// KindReference is a reference to another element.
	KindReference
)

// kindNames is the canonical lower-case name of each kind. The reverse
// direction is built from this table so the two can't drift apart.
var kindNames = map[Kind]string{
	KindNumber:    "number",
	KindLength:    "length",
	KindAngle:     "angle",
	KindArea:      "area",
	KindVolume:    "volume",
	KindInteger:   "integer",
	KindBoolean:   "boolean",
	KindString:    "string",
	KindVector3:   "vector3",
	KindMaterial:  "material",
	KindReference: "reference",
}

// String returns the canonical name of this kind.
func (obj Kind) String() string {
	if s, exists := kindNames[obj]; exists {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(obj))
}

// ParseKind maps a kind name back to the Kind. Matching is case-insensitive.
// The empty string parses as KindNumber.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindNumber, nil
	}
	s = strings.ToLower(s)
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNumber, fmt.Errorf("unknown kind: `%s`", s)
}
