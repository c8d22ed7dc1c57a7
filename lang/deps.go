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

// ExtractDeps parses a formula and returns the ordered set of distinct
// identifiers it references, in order of first appearance. Function names and
// the built-in constants are excluded: they are claimed by the language and
// can never be parameter dependencies. It errors if the formula does not
// parse, resolving the returned names is the engine's job.
func ExtractDeps(formula string) ([]string, error) {
	expr, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return ExtractExprDeps(expr), nil
}

// ExtractExprDeps is ExtractDeps for an already parsed formula.
func ExtractExprDeps(expr Expr) []string {
	var names []string
	seen := make(map[string]struct{})
	fn := func(e Expr) error {
		v, ok := e.(*ExprVar)
		if !ok {
			return nil
		}
		if IsReserved(v.Name) {
			return nil
		}
		if _, exists := seen[v.Name]; exists {
			return nil
		}
		seen[v.Name] = struct{}{}
		names = append(names, v.Name)
		return nil
	}
	expr.Apply(fn) // can't error, fn never does
	return names
}
