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
	"sort"
	"strings"

	"github.com/alphaladdin/NEOcad2-sub001/param"
)

// Func is a function from the fixed allow-list. Nothing outside this list is
// callable from a formula.
type Func struct {
	// Name is the canonical lower-case name.
	Name string

	// Arity is the required argument count, or -1 for variadic with at
	// least one argument.
	Arity int

	// F implements the function.
	F func([]param.Value) (param.Value, error)
}

// registeredFuncs is the fixed function allow-list, keyed by lower-case name.
var registeredFuncs = make(map[string]*Func)

// constants are the built-in named constants, also part of the allow-list.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// register adds a function to the allow-list. It panics on duplicates, this
// can only happen from a programming error in this package.
func register(name string, arity int, f func([]float64) (float64, error)) {
	if _, exists := registeredFuncs[name]; exists {
		panic(fmt.Sprintf("a func named %s is already registered", name))
	}
	registeredFuncs[name] = &Func{
		Name:  name,
		Arity: arity,
		F: func(args []param.Value) (param.Value, error) {
			floats := make([]float64, len(args))
			for i, a := range args {
				x, err := floatOf(a)
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %s", name, i+1, err)
				}
				floats[i] = x
			}
			out, err := f(floats)
			if err != nil {
				return nil, err
			}
			return &param.FloatValue{V: out}, nil
		},
	}
}

// IsFunc reports whether name (any case) is on the function allow-list.
func IsFunc(name string) bool {
	_, exists := registeredFuncs[strings.ToLower(name)]
	return exists
}

// IsConst reports whether name (any case) is a built-in constant.
func IsConst(name string) bool {
	_, exists := constants[strings.ToLower(name)]
	return exists
}

// IsReserved reports whether name is claimed by the language: a function or a
// constant. Reserved identifiers are never parameter dependencies.
func IsReserved(name string) bool {
	return IsFunc(name) || IsConst(name)
}

// Lookup returns the named function from the allow-list.
func Lookup(name string) (*Func, error) {
	f, exists := registeredFuncs[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("unknown function `%s`", name)
	}
	return f, nil
}

// FuncNames returns the sorted allow-list, for docs and error messages.
func FuncNames() []string {
	var names []string
	for name := range registeredFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// floatOf converts a numeric value to a float64, erroring on anything else.
func floatOf(v param.Value) (float64, error) {
	switch v.ValueKind() {
	case param.ValueKindFloat:
		return v.Float(), nil
	case param.ValueKindInt:
		return float64(v.Int()), nil
	}
	return 0, fmt.Errorf("not a number: %s", v)
}

func init() {
	register("abs", 1, func(a []float64) (float64, error) {
		return math.Abs(a[0]), nil
	})
	register("sqrt", 1, func(a []float64) (float64, error) {
		if a[0] < 0 {
			return 0, fmt.Errorf("sqrt of negative number")
		}
		return math.Sqrt(a[0]), nil
	})
	register("sin", 1, func(a []float64) (float64, error) {
		return math.Sin(a[0]), nil
	})
	register("cos", 1, func(a []float64) (float64, error) {
		return math.Cos(a[0]), nil
	})
	register("tan", 1, func(a []float64) (float64, error) {
		return math.Tan(a[0]), nil
	})
	register("asin", 1, func(a []float64) (float64, error) {
		if a[0] < -1 || a[0] > 1 {
			return 0, fmt.Errorf("asin out of domain")
		}
		return math.Asin(a[0]), nil
	})
	register("acos", 1, func(a []float64) (float64, error) {
		if a[0] < -1 || a[0] > 1 {
			return 0, fmt.Errorf("acos out of domain")
		}
		return math.Acos(a[0]), nil
	})
	register("atan", 1, func(a []float64) (float64, error) {
		return math.Atan(a[0]), nil
	})
	register("log", 1, func(a []float64) (float64, error) { // base 10
		if a[0] <= 0 {
			return 0, fmt.Errorf("log of non-positive number")
		}
		return math.Log10(a[0]), nil
	})
	register("ln", 1, func(a []float64) (float64, error) { // natural
		if a[0] <= 0 {
			return 0, fmt.Errorf("ln of non-positive number")
		}
		return math.Log(a[0]), nil
	})
	register("exp", 1, func(a []float64) (float64, error) {
		return math.Exp(a[0]), nil
	})
	register("pow", 2, func(a []float64) (float64, error) {
		return math.Pow(a[0], a[1]), nil
	})
	register("min", -1, func(a []float64) (float64, error) {
		out := a[0]
		for _, x := range a[1:] {
			out = math.Min(out, x)
		}
		return out, nil
	})
	register("max", -1, func(a []float64) (float64, error) {
		out := a[0]
		for _, x := range a[1:] {
			out = math.Max(out, x)
		}
		return out, nil
	})
	register("round", 1, func(a []float64) (float64, error) {
		return math.Round(a[0]), nil
	})
	register("floor", 1, func(a []float64) (float64, error) {
		return math.Floor(a[0]), nil
	})
	register("ceil", 1, func(a []float64) (float64, error) {
		return math.Ceil(a[0]), nil
	})
}
