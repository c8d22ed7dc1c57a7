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

	"github.com/alphaladdin/NEOcad2-sub001/util/errwrap"
)

// Record is the serialized form of a parameter. A list of records is
// order-independent: importers must apply formulas in a second pass, after
// every parameter from the same export exists, so that forward references
// resolve.
type Record struct {
	ID          string      `json:"id" yaml:"id,omitempty"`
	Name        string      `json:"name" yaml:"name"`
	Value       interface{} `json:"value" yaml:"value"`
	Kind        string      `json:"kind" yaml:"kind,omitempty"`
	Unit        string      `json:"unit" yaml:"unit,omitempty"`
	Formula     string      `json:"formula" yaml:"formula,omitempty"`
	ReadOnly    bool        `json:"isReadOnly" yaml:"readonly,omitempty"`
	Description string      `json:"description" yaml:"description,omitempty"`
	Group       string      `json:"group" yaml:"group,omitempty"`
}

// Record returns the serialized form of this parameter.
func (obj *Parameter) Record() Record {
	var raw interface{}
	if v := obj.Value(); v != nil {
		raw = v.Value()
	}
	return Record{
		ID:          obj.ID,
		Name:        obj.Name,
		Value:       raw,
		Kind:        obj.Kind.String(),
		Unit:        obj.Unit.String(),
		Formula:     obj.Formula,
		ReadOnly:    obj.ReadOnly,
		Description: obj.Description,
		Group:       obj.Group,
	}
}

// FromRecord builds a standalone parameter from its serialized form. The
// value is coerced to the declared kind, since decoders don't distinguish
// between whole floats and integers. The formula is carried along verbatim
// and becomes live at registration time.
func FromRecord(r Record) (*Parameter, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("record is missing a name")
	}
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return nil, errwrap.Wrapf(err, "record `%s`", r.Name)
	}
	unit, err := ParseUnit(r.Unit)
	if err != nil {
		return nil, errwrap.Wrapf(err, "record `%s`", r.Name)
	}
	if unit == UnitNone {
		unit = DefaultUnit(kind)
	}
	var value Value
	if r.Value != nil {
		v, err := ValueOf(r.Value)
		if err != nil {
			return nil, errwrap.Wrapf(err, "record `%s`", r.Name)
		}
		value = Coerce(v, kind)
	}
	p := New(r.Name, value, kind, unit, &Meta{
		Formula:     r.Formula,
		ReadOnly:    r.ReadOnly,
		Description: r.Description,
		Group:       r.Group,
	})
	p.ID = r.ID
	return p, nil
}
