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

// Parse turns a formula string into an AST. The optional leading `=` is
// stripped first. An empty formula is an error.
func Parse(formula string) (Expr, error) {
	input := StripEquals(formula)
	if input == "" {
		return nil, fmt.Errorf("empty formula")
	}
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected %s at offset %d", tok, tok.pos)
	}
	return expr, nil
}

// parser is a small recursive-descent parser over the token stream. The
// precedence chain runs, low to high: ternary, ||, &&, equality, comparison,
// additive, multiplicative, unary, power, primary. Power is right
// associative, everything else binds left.
type parser struct {
	tokens []token
	pos    int
}

func (obj *parser) peek() token {
	return obj.tokens[obj.pos]
}

func (obj *parser) next() token {
	tok := obj.tokens[obj.pos]
	if tok.typ != tokenEOF {
		obj.pos++
	}
	return tok
}

// acceptOp consumes the next token if it is one of the given operators, and
// returns which one, or the empty string.
func (obj *parser) acceptOp(ops ...string) string {
	tok := obj.peek()
	if tok.typ != tokenOp {
		return ""
	}
	for _, op := range ops {
		if tok.str == op {
			obj.next()
			return op
		}
	}
	return ""
}

func (obj *parser) expectOp(op string) error {
	tok := obj.peek()
	if tok.typ != tokenOp || tok.str != op {
		return fmt.Errorf("expected `%s`, got %s at offset %d", op, tok, tok.pos)
	}
	obj.next()
	return nil
}

func (obj *parser) parseTernary() (Expr, error) {
	cond, err := obj.parseOr()
	if err != nil {
		return nil, err
	}
	if obj.acceptOp("?") == "" {
		return cond, nil
	}
	then, err := obj.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := obj.expectOp(":"); err != nil {
		return nil, err
	}
	els, err := obj.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ExprCond{Cond: cond, Then: then, Else: els}, nil
}

func (obj *parser) parseOr() (Expr, error) {
	x, err := obj.parseAnd()
	if err != nil {
		return nil, err
	}
	for obj.acceptOp("||") != "" {
		y, err := obj.parseAnd()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: "||", X: x, Y: y}
	}
	return x, nil
}

func (obj *parser) parseAnd() (Expr, error) {
	x, err := obj.parseEquality()
	if err != nil {
		return nil, err
	}
	for obj.acceptOp("&&") != "" {
		y, err := obj.parseEquality()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: "&&", X: x, Y: y}
	}
	return x, nil
}

func (obj *parser) parseEquality() (Expr, error) {
	x, err := obj.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		op := obj.acceptOp("==", "!=")
		if op == "" {
			return x, nil
		}
		y, err := obj.parseComparison()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: op, X: x, Y: y}
	}
}

func (obj *parser) parseComparison() (Expr, error) {
	x, err := obj.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op := obj.acceptOp("<=", ">=", "<", ">")
		if op == "" {
			return x, nil
		}
		y, err := obj.parseAdditive()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: op, X: x, Y: y}
	}
}

func (obj *parser) parseAdditive() (Expr, error) {
	x, err := obj.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op := obj.acceptOp("+", "-")
		if op == "" {
			return x, nil
		}
		y, err := obj.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: op, X: x, Y: y}
	}
}

func (obj *parser) parseMultiplicative() (Expr, error) {
	x, err := obj.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := obj.acceptOp("*", "/")
		if op == "" {
			return x, nil
		}
		y, err := obj.parseUnary()
		if err != nil {
			return nil, err
		}
		x = &ExprBinary{Op: op, X: x, Y: y}
	}
}

func (obj *parser) parseUnary() (Expr, error) {
	if op := obj.acceptOp("-", "!"); op != "" {
		x, err := obj.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ExprUnary{Op: op, X: x}, nil
	}
	return obj.parsePower()
}

func (obj *parser) parsePower() (Expr, error) {
	x, err := obj.parsePrimary()
	if err != nil {
		return nil, err
	}
	if obj.acceptOp("^") == "" {
		return x, nil
	}
	// right associative: 2^3^2 is 2^(3^2)
	y, err := obj.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ExprBinary{Op: "^", X: x, Y: y}, nil
}

func (obj *parser) parsePrimary() (Expr, error) {
	tok := obj.peek()
	switch tok.typ {
	case tokenNumber:
		obj.next()
		if i, err := strconv.ParseInt(tok.str, 10, 64); err == nil {
			return &ExprNum{Int: i, IsInt: true}, nil
		}
		f, err := strconv.ParseFloat(tok.str, 64)
		if err != nil {
			// the lexer already validated this
			return nil, fmt.Errorf("invalid number `%s` at offset %d", tok.str, tok.pos)
		}
		return &ExprNum{Float: f}, nil

	case tokenString:
		obj.next()
		return &ExprStr{V: tok.str}, nil

	case tokenIdent:
		obj.next()
		if obj.acceptOp("(") == "" {
			return &ExprVar{Name: tok.str}, nil
		}
		// function call, names are case-insensitive
		name := strings.ToLower(tok.str)
		if !IsFunc(name) {
			return nil, fmt.Errorf("unknown function `%s` at offset %d", tok.str, tok.pos)
		}
		var args []Expr
		if tok := obj.peek(); !(tok.typ == tokenOp && tok.str == ")") {
			for {
				arg, err := obj.parseTernary()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if obj.acceptOp(",") == "" {
					break
				}
			}
		}
		if err := obj.expectOp(")"); err != nil {
			return nil, err
		}
		return &ExprCall{Name: name, Args: args}, nil

	case tokenOp:
		if tok.str == "(" {
			obj.next()
			x, err := obj.parseTernary()
			if err != nil {
				return nil, err
			}
			if err := obj.expectOp(")"); err != nil {
				return nil, err
			}
			return x, nil
		}
	}
	return nil, fmt.Errorf("unexpected %s at offset %d", tok, tok.pos)
}
