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
	"math"
	"strings"

	"github.com/alphaladdin/NEOcad2-sub001/param"
)

// Eval parses and evaluates a formula against a name to value binding scope.
// Any failure, an undefined identifier, bad operand types, division by zero,
// a domain error inside a function, comes back as an error and the caller is
// expected to leave its previous value untouched.
func Eval(formula string, scope map[string]param.Value) (param.Value, error) {
	expr, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return EvalExpr(expr, scope)
}

// EvalExpr evaluates an already parsed formula. Engines that cache their
// parse trees use this entry point.
func EvalExpr(expr Expr, scope map[string]param.Value) (param.Value, error) {
	ev := &evaluator{scope: scope}
	return ev.eval(expr)
}

type evaluator struct {
	scope map[string]param.Value
}

func (obj *evaluator) eval(expr Expr) (param.Value, error) {
	switch node := expr.(type) {
	case *ExprNum:
		if node.IsInt {
			return &param.IntValue{V: node.Int}, nil
		}
		return &param.FloatValue{V: node.Float}, nil

	case *ExprStr:
		return &param.StrValue{V: node.V}, nil

	case *ExprVar:
		if v, exists := obj.scope[node.Name]; exists {
			if v == nil {
				return nil, fmt.Errorf("identifier `%s` has no value", node.Name)
			}
			return v, nil
		}
		if c, exists := constants[strings.ToLower(node.Name)]; exists {
			return &param.FloatValue{V: c}, nil
		}
		return nil, fmt.Errorf("undefined identifier `%s`", node.Name)

	case *ExprUnary:
		return obj.evalUnary(node)

	case *ExprBinary:
		return obj.evalBinary(node)

	case *ExprCond:
		cond, err := obj.eval(node.Cond)
		if err != nil {
			return nil, err
		}
		if cond.ValueKind() != param.ValueKindBool {
			return nil, fmt.Errorf("ternary condition is not a bool: %s", cond)
		}
		if cond.Bool() {
			return obj.eval(node.Then)
		}
		return obj.eval(node.Else)

	case *ExprCall:
		f, err := Lookup(node.Name)
		if err != nil {
			return nil, err
		}
		if f.Arity >= 0 && len(node.Args) != f.Arity {
			return nil, fmt.Errorf("%s expects %d args, got %d", f.Name, f.Arity, len(node.Args))
		}
		if f.Arity < 0 && len(node.Args) == 0 {
			return nil, fmt.Errorf("%s expects at least one arg", f.Name)
		}
		args := make([]param.Value, len(node.Args))
		for i, a := range node.Args {
			v, err := obj.eval(a)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return f.F(args)
	}
	return nil, fmt.Errorf("unexpected expression node: %T", expr)
}

func (obj *evaluator) evalUnary(node *ExprUnary) (param.Value, error) {
	x, err := obj.eval(node.X)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case "-":
		switch x.ValueKind() {
		case param.ValueKindInt:
			return &param.IntValue{V: -x.Int()}, nil
		case param.ValueKindFloat:
			return &param.FloatValue{V: -x.Float()}, nil
		}
		return nil, fmt.Errorf("cannot negate %s", x)

	case "!":
		if x.ValueKind() != param.ValueKindBool {
			return nil, fmt.Errorf("cannot logically negate %s", x)
		}
		return &param.BoolValue{V: !x.Bool()}, nil
	}
	return nil, fmt.Errorf("unexpected unary op: %s", node.Op)
}

func (obj *evaluator) evalBinary(node *ExprBinary) (param.Value, error) {
	// short-circuit the logical operators before evaluating the rhs
	if node.Op == "&&" || node.Op == "||" {
		x, err := obj.eval(node.X)
		if err != nil {
			return nil, err
		}
		if x.ValueKind() != param.ValueKindBool {
			return nil, fmt.Errorf("`%s` needs bool operands, got %s", node.Op, x)
		}
		if node.Op == "&&" && !x.Bool() {
			return &param.BoolValue{V: false}, nil
		}
		if node.Op == "||" && x.Bool() {
			return &param.BoolValue{V: true}, nil
		}
		y, err := obj.eval(node.Y)
		if err != nil {
			return nil, err
		}
		if y.ValueKind() != param.ValueKindBool {
			return nil, fmt.Errorf("`%s` needs bool operands, got %s", node.Op, y)
		}
		return &param.BoolValue{V: y.Bool()}, nil
	}

	x, err := obj.eval(node.X)
	if err != nil {
		return nil, err
	}
	y, err := obj.eval(node.Y)
	if err != nil {
		return nil, err
	}

	switch node.Op {
	case "+", "-", "*":
		return evalArith(node.Op, x, y)

	case "/":
		// division always yields a float
		fx, err := floatOf(x)
		if err != nil {
			return nil, err
		}
		fy, err := floatOf(y)
		if err != nil {
			return nil, err
		}
		if fy == 0 {
			return nil, fmt.Errorf("can't divide by zero")
		}
		return &param.FloatValue{V: fx / fy}, nil

	case "^":
		return evalPower(x, y)

	case "<", ">", "<=", ">=":
		fx, err := floatOf(x)
		if err != nil {
			return nil, err
		}
		fy, err := floatOf(y)
		if err != nil {
			return nil, err
		}
		var out bool
		switch node.Op {
		case "<":
			out = fx < fy
		case ">":
			out = fx > fy
		case "<=":
			out = fx <= fy
		case ">=":
			out = fx >= fy
		}
		return &param.BoolValue{V: out}, nil

	case "==", "!=":
		eq, err := valuesEqual(x, y)
		if err != nil {
			return nil, err
		}
		if node.Op == "!=" {
			eq = !eq
		}
		return &param.BoolValue{V: eq}, nil
	}
	return nil, fmt.Errorf("unexpected binary op: %s", node.Op)
}

// evalArith handles + - * with exact integer arithmetic when both sides are
// integers, and float arithmetic otherwise. Strings don't do arithmetic.
func evalArith(op string, x, y param.Value) (param.Value, error) {
	if x.ValueKind() == param.ValueKindInt && y.ValueKind() == param.ValueKindInt {
		a, b := x.Int(), y.Int()
		switch op {
		case "+":
			return &param.IntValue{V: a + b}, nil
		case "-":
			return &param.IntValue{V: a - b}, nil
		case "*":
			return &param.IntValue{V: a * b}, nil
		}
	}
	fx, err := floatOf(x)
	if err != nil {
		return nil, err
	}
	fy, err := floatOf(y)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return &param.FloatValue{V: fx + fy}, nil
	case "-":
		return &param.FloatValue{V: fx - fy}, nil
	case "*":
		return &param.FloatValue{V: fx * fy}, nil
	}
	return nil, fmt.Errorf("unexpected arithmetic op: %s", op)
}

// evalPower is right-side `^`. Two integers with a non-negative exponent stay
// integer, everything else goes through floats.
func evalPower(x, y param.Value) (param.Value, error) {
	if x.ValueKind() == param.ValueKindInt && y.ValueKind() == param.ValueKindInt && y.Int() >= 0 {
		out := math.Pow(float64(x.Int()), float64(y.Int()))
		return &param.IntValue{V: int64(out)}, nil
	}
	fx, err := floatOf(x)
	if err != nil {
		return nil, err
	}
	fy, err := floatOf(y)
	if err != nil {
		return nil, err
	}
	out := math.Pow(fx, fy)
	if math.IsNaN(out) {
		return nil, fmt.Errorf("power result is not a number")
	}
	return &param.FloatValue{V: out}, nil
}

// valuesEqual implements the `==` semantics: numbers compare numerically
// across int and float, strings and bools compare by value, and comparing
// across those three families is an error.
func valuesEqual(x, y param.Value) (bool, error) {
	xk, yk := x.ValueKind(), y.ValueKind()
	xNum := xk == param.ValueKindInt || xk == param.ValueKindFloat
	yNum := yk == param.ValueKindInt || yk == param.ValueKindFloat
	if xNum && yNum {
		fx, err := floatOf(x)
		if err != nil {
			return false, err
		}
		fy, err := floatOf(y)
		if err != nil {
			return false, err
		}
		return fx == fy, nil
	}
	if xk == param.ValueKindStr && yk == param.ValueKindStr {
		return x.Str() == y.Str(), nil
	}
	if xk == param.ValueKindBool && yk == param.ValueKindBool {
		return x.Bool() == y.Bool(), nil
	}
	return false, fmt.Errorf("cannot compare %s to %s", x, y)
}
