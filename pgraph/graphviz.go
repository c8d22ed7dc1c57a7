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

package pgraph

import (
	"fmt"
	"strconv"
)

// Graphviz outputs the graph in graphviz format, for diagnostics and
// visualization. The optional labels map overrides the displayed name of a
// vertex, which lets the engine show parameter names instead of ids. Output
// ordering is deterministic.
// https://en.wikipedia.org/wiki/DOT_%28graph_description_language%29
func (obj *Graph) Graphviz(labels map[Vertex]string) (out string) {
	//digraph g {
	//	label="kitchen-wall";
	//	"a" [label="Width"];
	//	"b" [label="Area"];
	//	"b" -> "a";
	//}
	label := func(v Vertex) string {
		if s, exists := labels[v]; exists {
			return s
		}
		return string(v)
	}

	out += fmt.Sprintf("digraph %s {\n", strconv.Quote(obj.Name))
	out += fmt.Sprintf("\tlabel=%s;\n", strconv.Quote(obj.Name))
	str := ""
	for _, v1 := range obj.VerticesSorted() {
		out += fmt.Sprintf("\t%s [label=%s];\n", strconv.Quote(string(v1)), strconv.Quote(label(v1)))
		for _, v2 := range obj.OutgoingVertices(v1) {
			// use str for clearer output ordering
			str += fmt.Sprintf("\t%s -> %s;\n", strconv.Quote(string(v1)), strconv.Quote(string(v2)))
		}
	}
	out += str
	out += "}\n"
	return
}
