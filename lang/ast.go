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

package lang

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr represents a node in the parsed formula.
type Expr interface {
	fmt.Stringer

	// Apply is a general purpose iterator method that runs a function on
	// this node and on every child node, depth-first.
	Apply(fn func(Expr) error) error
}

// ExprNum is a numeric literal. Whole literals are tagged as integers so that
// integer arithmetic stays exact.
type ExprNum struct {
	Float float64
	Int   int64
	IsInt bool
}

// String returns a short representation of this expression.
func (obj *ExprNum) String() string {
	if obj.IsInt {
		return strconv.FormatInt(obj.Int, 10)
	}
	return strconv.FormatFloat(obj.Float, 'g', -1, 64)
}

// Apply runs a function on this node.
func (obj *ExprNum) Apply(fn func(Expr) error) error { return fn(obj) }

// ExprStr is a string literal. It exists for equality comparisons and as a
// ternary result, there is no string arithmetic.
type ExprStr struct {
	V string
}

// String returns a short representation of this expression.
func (obj *ExprStr) String() string { return strconv.Quote(obj.V) }

// Apply runs a function on this node.
func (obj *ExprStr) Apply(fn func(Expr) error) error { return fn(obj) }

// ExprVar is an identifier, bound from the evaluation scope by name, or one
// of the built-in constants.
type ExprVar struct {
	Name string
}

// String returns a short representation of this expression.
func (obj *ExprVar) String() string { return obj.Name }

// Apply runs a function on this node.
func (obj *ExprVar) Apply(fn func(Expr) error) error { return fn(obj) }

// ExprUnary is a prefix operator expression, `-` or `!`.
type ExprUnary struct {
	Op string
	X  Expr
}

// String returns a short representation of this expression.
func (obj *ExprUnary) String() string {
	return fmt.Sprintf("%s%s", obj.Op, obj.X)
}

// Apply runs a function on this node and on the operand.
func (obj *ExprUnary) Apply(fn func(Expr) error) error {
	if err := obj.X.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// ExprBinary is an infix operator expression.
type ExprBinary struct {
	Op   string
	X, Y Expr
}

// String returns a short representation of this expression.
func (obj *ExprBinary) String() string {
	return fmt.Sprintf("(%s %s %s)", obj.X, obj.Op, obj.Y)
}

// Apply runs a function on this node and on both operands.
func (obj *ExprBinary) Apply(fn func(Expr) error) error {
	if err := obj.X.Apply(fn); err != nil {
		return err
	}
	if err := obj.Y.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// ExprCond is a ternary conditional, cond ? a : b.
type ExprCond struct {
	Cond Expr
	Then Expr
	Else Expr
}

// String returns a short representation of this expression.
func (obj *ExprCond) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", obj.Cond, obj.Then, obj.Else)
}

// Apply runs a function on this node and on all three branches.
func (obj *ExprCond) Apply(fn func(Expr) error) error {
	if err := obj.Cond.Apply(fn); err != nil {
		return err
	}
	if err := obj.Then.Apply(fn); err != nil {
		return err
	}
	if err := obj.Else.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// ExprCall is a function call from the fixed allow-list. The name is stored
// lower-cased, lookup is case-insensitive.
type ExprCall struct {
	Name string
	Args []Expr
}

// String returns a short representation of this expression.
func (obj *ExprCall) String() string {
	args := []string{}
	for _, a := range obj.Args {
		args = append(args, a.String())
	}
	return fmt.Sprintf("%s(%s)", obj.Name, strings.Join(args, ", "))
}

// Apply runs a function on this node and on every argument.
func (obj *ExprCall) Apply(fn func(Expr) error) error {
	for _, a := range obj.Args {
		if err := a.Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}
