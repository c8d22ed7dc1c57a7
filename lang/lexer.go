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

// Package lang implements the small formula language used by parameters. The
// grammar is intentionally fixed and minimal: arithmetic, comparisons,
// logical operators, ternary conditionals, string-literal equality and a
// short allow-list of math functions. It is not a scripting engine.
package lang

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenString
	tokenIdent
	tokenOp // operators and punctuation
)

func (obj tokenType) String() string {
	switch obj {
	case tokenEOF:
		return "eof"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenIdent:
		return "ident"
	case tokenOp:
		return "op"
	}
	return fmt.Sprintf("token(%d)", int(obj))
}

type token struct {
	typ tokenType
	str string
	pos int // byte offset into the formula, for error messages
}

func (obj token) String() string {
	if obj.typ == tokenEOF {
		return "<eof>"
	}
	return fmt.Sprintf("%s(%s)", obj.typ, obj.str)
}

// StripEquals removes the optional leading `=` marker of a formula, which
// some authoring front-ends prepend in the spreadsheet tradition.
func StripEquals(formula string) string {
	s := strings.TrimSpace(formula)
	if strings.HasPrefix(s, "=") && !strings.HasPrefix(s, "==") {
		return strings.TrimSpace(s[1:])
	}
	return s
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lex scans the formula into tokens. The leading `=` must already have been
// stripped by the caller.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue

		case isDigit(c) || (c == '.' && i+1 < len(input) && isDigit(input[i+1])):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			if i < len(input) && input[i] == '.' {
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
				j := i + 1
				if j < len(input) && (input[j] == '+' || input[j] == '-') {
					j++
				}
				if j < len(input) && isDigit(input[j]) {
					i = j
					for i < len(input) && isDigit(input[i]) {
						i++
					}
				}
			}
			str := input[start:i]
			if _, err := strconv.ParseFloat(str, 64); err != nil {
				return nil, fmt.Errorf("invalid number `%s` at offset %d", str, start)
			}
			tokens = append(tokens, token{typ: tokenNumber, str: str, pos: start})

		case isIdentStart(c):
			start := i
			for i < len(input) && isIdentPart(input[i]) {
				i++
			}
			tokens = append(tokens, token{typ: tokenIdent, str: input[start:i], pos: start})

		case c == '"':
			start := i
			i++ // opening quote
			var sb strings.Builder
			closed := false
			for i < len(input) {
				if input[i] == '\\' && i+1 < len(input) && (input[i+1] == '"' || input[i+1] == '\\') {
					sb.WriteByte(input[i+1])
					i += 2
					continue
				}
				if input[i] == '"' {
					closed = true
					i++
					break
				}
				sb.WriteByte(input[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated string at offset %d", start)
			}
			tokens = append(tokens, token{typ: tokenString, str: sb.String(), pos: start})

		default:
			// longest match first, `===` is accepted as value equality
			ops := []string{"===", "==", "!=", "<=", ">=", "&&", "||", "+", "-", "*", "/", "^", "<", ">", "!", "?", ":", "(", ")", ","}
			matched := ""
			for _, op := range ops {
				if strings.HasPrefix(input[i:], op) {
					matched = op
					break
				}
			}
			if matched == "" {
				return nil, fmt.Errorf("unexpected character `%c` at offset %d", c, i)
			}
			str := matched
			if str == "===" {
				str = "=="
			}
			tokens = append(tokens, token{typ: tokenOp, str: str, pos: i})
			i += len(matched)
		}
	}
	tokens = append(tokens, token{typ: tokenEOF, pos: len(input)})
	return tokens, nil
}
