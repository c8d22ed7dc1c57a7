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
	"math"
	"testing"

	"github.com/alphaladdin/NEOcad2-sub001/param"

	"github.com/davecgh/go-spew/spew"
)

func TestEval1(t *testing.T) {
	type test struct { // an individual test
		name    string
		formula string
		scope   map[string]param.Value
		exp     param.Value
		fail    bool
	}
	testCases := []test{
		{
			name:    "integer literal",
			formula: "42",
			exp:     &param.IntValue{V: 42},
		},
		{
			name:    "float literal",
			formula: "4.2",
			exp:     &param.FloatValue{V: 4.2},
		},
		{
			name:    "leading equals",
			formula: "= 1 + 2",
			exp:     &param.IntValue{V: 3},
		},
		{
			name:    "precedence",
			formula: "1 + 2 * 3",
			exp:     &param.IntValue{V: 7},
		},
		{
			name:    "parens",
			formula: "(1 + 2) * 3",
			exp:     &param.IntValue{V: 9},
		},
		{
			name:    "division is float",
			formula: "7 / 2",
			exp:     &param.FloatValue{V: 3.5},
		},
		{
			name:    "division by zero",
			formula: "1 / 0",
			fail:    true,
		},
		{
			name:    "unary minus",
			formula: "-3 + 5",
			exp:     &param.IntValue{V: 2},
		},
		{
			name:    "power",
			formula: "2 ^ 10",
			exp:     &param.IntValue{V: 1024},
		},
		{
			name:    "power is right associative",
			formula: "2 ^ 3 ^ 2",
			exp:     &param.IntValue{V: 512},
		},
		{
			name:    "scope binding",
			formula: "Width * Height",
			scope: map[string]param.Value{
				"Width":  &param.FloatValue{V: 1000},
				"Height": &param.FloatValue{V: 2000},
			},
			exp: &param.FloatValue{V: 2000000},
		},
		{
			name:    "area formula",
			formula: "(Width * Height) / 1000000",
			scope: map[string]param.Value{
				"Width":  &param.FloatValue{V: 1000},
				"Height": &param.FloatValue{V: 2000},
			},
			exp: &param.FloatValue{V: 2},
		},
		{
			name:    "undefined identifier",
			formula: "Width * 2",
			fail:    true,
		},
		{
			name:    "comparison",
			formula: "3 > 2",
			exp:     &param.BoolValue{V: true},
		},
		{
			name:    "comparison le",
			formula: "2 <= 2",
			exp:     &param.BoolValue{V: true},
		},
		{
			name:    "equality across int and float",
			formula: "1 == 1.0",
			exp:     &param.BoolValue{V: true},
		},
		{
			name:    "triple equals",
			formula: `Style === "modern"`,
			scope: map[string]param.Value{
				"Style": &param.StrValue{V: "modern"},
			},
			exp: &param.BoolValue{V: true},
		},
		{
			name:    "string inequality",
			formula: `"a" != "b"`,
			exp:     &param.BoolValue{V: true},
		},
		{
			name:    "string arithmetic is an error",
			formula: `"a" + "b"`,
			fail:    true,
		},
		{
			name:    "ternary true",
			formula: `IsLoadBearing ? 300 : 100`,
			scope: map[string]param.Value{
				"IsLoadBearing": &param.BoolValue{V: true},
			},
			exp: &param.IntValue{V: 300},
		},
		{
			name:    "ternary false",
			formula: `IsLoadBearing ? 300 : 100`,
			scope: map[string]param.Value{
				"IsLoadBearing": &param.BoolValue{V: false},
			},
			exp: &param.IntValue{V: 100},
		},
		{
			name:    "nested ternary",
			formula: `x > 10 ? "big" : x > 5 ? "mid" : "small"`,
			scope: map[string]param.Value{
				"x": &param.IntValue{V: 7},
			},
			exp: &param.StrValue{V: "mid"},
		},
		{
			name:    "ternary condition must be bool",
			formula: "1 ? 2 : 3",
			fail:    true,
		},
		{
			name:    "logical and short circuits",
			formula: "false && (1 / 0 == 1)",
			scope: map[string]param.Value{
				"false": &param.BoolValue{V: false},
			},
			exp: &param.BoolValue{V: false},
		},
		{
			name:    "logical or",
			formula: "a || b",
			scope: map[string]param.Value{
				"a": &param.BoolValue{V: false},
				"b": &param.BoolValue{V: true},
			},
			exp: &param.BoolValue{V: true},
		},
		{
			name:    "not",
			formula: "!a",
			scope: map[string]param.Value{
				"a": &param.BoolValue{V: false},
			},
			exp: &param.BoolValue{V: true},
		},
		{
			name:    "sqrt",
			formula: "sqrt(16)",
			exp:     &param.FloatValue{V: 4},
		},
		{
			name:    "sqrt of negative",
			formula: "sqrt(-1)",
			fail:    true,
		},
		{
			name:    "case insensitive function",
			formula: "SQRT(9)",
			exp:     &param.FloatValue{V: 3},
		},
		{
			name:    "min max variadic",
			formula: "max(1, min(5, 3), 2)",
			exp:     &param.FloatValue{V: 3},
		},
		{
			name:    "pow function",
			formula: "pow(2, 8)",
			exp:     &param.FloatValue{V: 256},
		},
		{
			name:    "rounding family",
			formula: "round(2.5) + floor(2.9) + ceil(2.1)",
			exp:     &param.FloatValue{V: 8},
		},
		{
			name:    "pi constant",
			formula: "cos(pi)",
			exp:     &param.FloatValue{V: -1},
		},
		{
			name:    "e constant",
			formula: "ln(e)",
			exp:     &param.FloatValue{V: 1},
		},
		{
			name:    "scope shadows nothing reserved",
			formula: "pi * r ^ 2",
			scope: map[string]param.Value{
				"r": &param.FloatValue{V: 2},
			},
			exp: &param.FloatValue{V: 4 * math.Pi},
		},
		{
			name:    "wrong arity",
			formula: "sqrt(1, 2)",
			fail:    true,
		},
		{
			name:    "unknown function",
			formula: "frobnicate(1)",
			fail:    true,
		},
		{
			name:    "empty formula",
			formula: "",
			fail:    true,
		},
		{
			name:    "dangling operator",
			formula: "1 +",
			fail:    true,
		},
		{
			name:    "unterminated string",
			formula: `"abc`,
			fail:    true,
		},
	}
	names := []string{}
	for index, tc := range testCases { // run all the tests
		if tc.name == "" {
			t.Errorf("test #%d: not named", index)
			continue
		}
		for _, name := range names {
			if tc.name == name {
				t.Fatalf("test #%d: duplicate sub test name of: %s", index, tc.name)
			}
		}
		names = append(names, tc.name)
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eval(tc.formula, tc.scope)
			if tc.fail {
				if err == nil {
					t.Errorf("expected an error, got: %s", spew.Sdump(got))
				}
				return
			}
			if err != nil {
				t.Errorf("eval failed: %+v", err)
				return
			}
			if err := tc.exp.Cmp(got); err != nil {
				t.Errorf("expected: %s, got: %s (%+v)", tc.exp, got, err)
			}
		})
	}
}

func TestEvalFloatFuzz1(t *testing.T) {
	// trig results carry float noise, compare with a tolerance
	got, err := Eval("sin(pi / 2)", nil)
	if err != nil {
		t.Errorf("eval failed: %+v", err)
		return
	}
	if math.Abs(got.Float()-1.0) > 1e-9 {
		t.Errorf("expected ~1, got: %s", got)
	}
}

func TestParse1(t *testing.T) {
	// the parse tree pretty printer doubles as a shape check
	type test struct {
		name    string
		formula string
		exp     string
	}
	testCases := []test{
		{
			name:    "precedence shape",
			formula: "1 + 2 * 3",
			exp:     "(1 + (2 * 3))",
		},
		{
			name:    "comparison binds looser",
			formula: "a + 1 > b * 2",
			exp:     "((a + 1) > (b * 2))",
		},
		{
			name:    "ternary shape",
			formula: "a > 1 ? b : c",
			exp:     "((a > 1) ? b : c)",
		},
		{
			name:    "call shape",
			formula: "MAX(a, b)",
			exp:     "max(a, b)",
		},
		{
			name:    "unary binds tight",
			formula: "-a + b",
			exp:     "(-a + b)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := Parse(tc.formula)
			if err != nil {
				t.Errorf("parse failed: %+v", err)
				return
			}
			if got := expr.String(); got != tc.exp {
				t.Errorf("expected: %s, got: %s", tc.exp, got)
			}
		})
	}
}
