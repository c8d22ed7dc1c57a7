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

// Package param implements the parameter data model. A parameter is a named,
// typed, unit-tagged value cell, optionally driven by a formula. Dependency
// edges between parameters are not stored here, the engine owns those in its
// graph so that no reference cycles exist between cells.
package param

import (
	"fmt"

	"github.com/alphaladdin/NEOcad2-sub001/util"
)

const (
	// ErrReadOnly is returned when a direct set hits a read-only parameter.
	ErrReadOnly = util.Error("parameter is read-only")

	// ErrFormulaDriven is returned when a direct set hits a parameter that
	// is driven by a formula. Formula parameters only change by evaluation.
	ErrFormulaDriven = util.Error("parameter is formula driven")
)

// Meta is the set of optional properties used when creating a parameter.
type Meta struct {
	// Formula is an optional expression string. It is stored on creation,
	// but only becomes live once the parameter is registered with an
	// engine, which resolves and validates it.
	Formula string

	// ReadOnly blocks direct sets. A formula implies this effectively, but
	// the flag is independent of formula presence.
	ReadOnly bool

	// Description is free-form display text.
	Description string

	// Group is a display grouping label.
	Group string
}

// Parameter is a single value cell. The ID is assigned by the engine at
// registration time if it is empty. The Formula field is managed by the
// engine's SetFormula, writing it directly bypasses dependency tracking.
type Parameter struct {
	ID   string
	Name string
	Kind Kind
	Unit Unit

	// Formula is the expression this parameter is computed from. Empty
	// means the parameter is a plain value cell.
	Formula string

	// ReadOnly blocks direct sets independently of Formula.
	ReadOnly bool

	Description string
	Group       string

	value Value
}

// New creates a standalone parameter. It is inert until registered with an
// engine. A nil meta is valid and means no formula and no flags.
func New(name string, value Value, kind Kind, unit Unit, meta *Meta) *Parameter {
	if meta == nil {
		meta = &Meta{}
	}
	return &Parameter{
		Name:        name,
		Kind:        kind,
		Unit:        unit,
		Formula:     meta.Formula,
		ReadOnly:    meta.ReadOnly,
		Description: meta.Description,
		Group:       meta.Group,
		value:       value,
	}
}

// String returns the canonical display form of this parameter.
func (obj *Parameter) String() string {
	return fmt.Sprintf("%s[%s]", obj.Kind, obj.Name)
}

// Value returns the current value of this parameter. It may be nil if the
// parameter was created without one and has not been evaluated yet.
func (obj *Parameter) Value() Value {
	return obj.value
}

// SetValue commits a direct external set. It fails if the parameter is
// read-only or formula driven, in which case the prior value is retained.
// It never triggers propagation, that is the engine's job.
func (obj *Parameter) SetValue(v Value) error {
	if obj.Formula != "" {
		return ErrFormulaDriven
	}
	if obj.ReadOnly {
		return ErrReadOnly
	}
	obj.value = v
	return nil
}

// UpdateFromFormula commits an evaluation result. It bypasses the read-only
// and formula checks. Only the engine's evaluator should call this.
func (obj *Parameter) UpdateFromFormula(v Value) {
	obj.value = v
}
