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
	"math"
	"strconv"
)

// ValueKind identifies the dynamic type of a Value.
type ValueKind int

const (
	// ValueKindBool is the kind of BoolValue.
	ValueKindBool ValueKind = iota

	// ValueKindStr is the kind of StrValue.
	ValueKindStr

	// ValueKindInt is the kind of IntValue.
	ValueKindInt

	// ValueKindFloat is the kind of FloatValue.
	ValueKindFloat
)

// String returns a short name for this value kind.
func (obj ValueKind) String() string {
	switch obj {
	case ValueKindBool:
		return "bool"
	case ValueKindStr:
		return "str"
	case ValueKindInt:
		return "int"
	case ValueKindFloat:
		return "float"
	}
	return fmt.Sprintf("valuekind(%d)", int(obj))
}

// Value represents an interface to get values out of each parameter value
// type. Calling an accessor of the wrong kind panics, callers are expected to
// switch on ValueKind first.
type Value interface {
	fmt.Stringer // String() string (for display purposes)

	// ValueKind returns the dynamic kind of this value.
	ValueKind() ValueKind

	// Cmp returns an error if the two values aren't equal.
	Cmp(Value) error

	// Copy returns a copy of this value.
	Copy() Value

	// Value returns the raw interface{} form of this value.
	Value() interface{}

	Bool() bool
	Str() string
	Int() int64
	Float() float64
}

// ValueOf takes a raw Go value, as produced by a JSON or YAML decode, and
// returns the equivalent internal representation. This is also very useful
// for writing tests.
func ValueOf(i interface{}) (Value, error) {
	switch v := i.(type) {
	case bool:
		return &BoolValue{V: v}, nil
	case string:
		return &StrValue{V: v}, nil
	case int:
		return &IntValue{V: int64(v)}, nil
	case int64:
		return &IntValue{V: v}, nil
	case int32:
		return &IntValue{V: int64(v)}, nil
	case float64:
		return &FloatValue{V: v}, nil
	case float32:
		return &FloatValue{V: float64(v)}, nil
	case Value:
		return v, nil // pass through
	}
	return nil, fmt.Errorf("unsupported value type: %T", i)
}

// Coerce adjusts a value to fit the semantic kind of the parameter it is
// being committed to. Integer parameters round to the nearest whole number.
// Every other kind takes the value unchanged, the evaluator stays
// type-agnostic.
func Coerce(v Value, kind Kind) Value {
	if kind != KindInteger {
		return v
	}
	switch v.ValueKind() {
	case ValueKindFloat:
		return &IntValue{V: int64(math.Round(v.Float()))}
	case ValueKindInt:
		return v
	}
	return v
}

// BoolValue represents a boolean value.
type BoolValue struct {
	V bool
}

// String returns a visual representation of this value.
func (obj *BoolValue) String() string {
	return strconv.FormatBool(obj.V)
}

// ValueKind returns the dynamic kind of this value.
func (obj *BoolValue) ValueKind() ValueKind { return ValueKindBool }

// Cmp returns an error if this value isn't the same as the argument.
func (obj *BoolValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.ValueKind() != val.ValueKind() {
		return fmt.Errorf("cannot cmp %s to %s", obj.ValueKind(), val.ValueKind())
	}
	if obj.V != val.Bool() {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *BoolValue) Copy() Value {
	return &BoolValue{V: obj.V}
}

// Value returns the raw value of this expression.
func (obj *BoolValue) Value() interface{} {
	return obj.V
}

// Bool represents the value of this type as a bool if it is one.
func (obj *BoolValue) Bool() bool {
	return obj.V
}

// Str panics, this is not a str.
func (obj *BoolValue) Str() string {
	panic("not a str")
}

// Int panics, this is not an int.
func (obj *BoolValue) Int() int64 {
	panic("not an int")
}

// Float panics, this is not a float.
func (obj *BoolValue) Float() float64 {
	panic("not a float")
}

// StrValue represents a string value.
type StrValue struct {
	V string
}

// String returns a visual representation of this value.
func (obj *StrValue) String() string {
	return strconv.Quote(obj.V)
}

// ValueKind returns the dynamic kind of this value.
func (obj *StrValue) ValueKind() ValueKind { return ValueKindStr }

// Cmp returns an error if this value isn't the same as the argument.
func (obj *StrValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.ValueKind() != val.ValueKind() {
		return fmt.Errorf("cannot cmp %s to %s", obj.ValueKind(), val.ValueKind())
	}
	if obj.V != val.Str() {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *StrValue) Copy() Value {
	return &StrValue{V: obj.V}
}

// Value returns the raw value of this expression.
func (obj *StrValue) Value() interface{} {
	return obj.V
}

// Bool panics, this is not a bool.
func (obj *StrValue) Bool() bool {
	panic("not a bool")
}

// Str represents the value of this type as a string if it is one.
func (obj *StrValue) Str() string {
	return obj.V
}

// Int panics, this is not an int.
func (obj *StrValue) Int() int64 {
	panic("not an int")
}

// Float panics, this is not a float.
func (obj *StrValue) Float() float64 {
	panic("not a float")
}

// IntValue represents an integer value.
type IntValue struct {
	V int64
}

// String returns a visual representation of this value.
func (obj *IntValue) String() string {
	return strconv.FormatInt(obj.V, 10)
}

// ValueKind returns the dynamic kind of this value.
func (obj *IntValue) ValueKind() ValueKind { return ValueKindInt }

// Cmp returns an error if this value isn't the same as the argument.
func (obj *IntValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.ValueKind() != val.ValueKind() {
		return fmt.Errorf("cannot cmp %s to %s", obj.ValueKind(), val.ValueKind())
	}
	if obj.V != val.Int() {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *IntValue) Copy() Value {
	return &IntValue{V: obj.V}
}

// Value returns the raw value of this expression.
func (obj *IntValue) Value() interface{} {
	return obj.V
}

// Bool panics, this is not a bool.
func (obj *IntValue) Bool() bool {
	panic("not a bool")
}

// Str panics, this is not a str.
func (obj *IntValue) Str() string {
	panic("not a str")
}

// Int represents the value of this type as an integer if it is one.
func (obj *IntValue) Int() int64 {
	return obj.V
}

// Float panics, this is not a float.
func (obj *IntValue) Float() float64 {
	panic("not a float")
}

// FloatValue represents a floating point value.
type FloatValue struct {
	V float64
}

// String returns a visual representation of this value.
func (obj *FloatValue) String() string {
	return strconv.FormatFloat(obj.V, 'g', -1, 64)
}

// ValueKind returns the dynamic kind of this value.
func (obj *FloatValue) ValueKind() ValueKind { return ValueKindFloat }

// Cmp returns an error if this value isn't the same as the argument.
func (obj *FloatValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.ValueKind() != val.ValueKind() {
		return fmt.Errorf("cannot cmp %s to %s", obj.ValueKind(), val.ValueKind())
	}
	if obj.V != val.Float() {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *FloatValue) Copy() Value {
	return &FloatValue{V: obj.V}
}

// Value returns the raw value of this expression.
func (obj *FloatValue) Value() interface{} {
	return obj.V
}

// Bool panics, this is not a bool.
func (obj *FloatValue) Bool() bool {
	panic("not a bool")
}

// Str panics, this is not a str.
func (obj *FloatValue) Str() string {
	panic("not a str")
}

// Int panics, this is not an int.
func (obj *FloatValue) Int() int64 {
	panic("not an int")
}

// Float represents the value of this type as a float if it is one.
func (obj *FloatValue) Float() float64 {
	return obj.V
}
