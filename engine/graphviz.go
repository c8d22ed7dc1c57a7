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

package engine

import (
	"sort"

	"github.com/alphaladdin/NEOcad2-sub001/pgraph"
)

// DependencyGraph returns the node names and the dependency edges, each edge
// as a [dependent, dependency] pair, for diagnostics and visualization. Both
// lists are ordered by name.
func (obj *Engine) DependencyGraph() (nodes []string, edges [][2]string) {
	for _, p := range obj.Parameters() {
		nodes = append(nodes, p.Name)
		var deps []string
		for _, dep := range obj.graph.OutgoingVertices(pgraph.Vertex(p.ID)) {
			deps = append(deps, obj.params[string(dep)].Name)
		}
		sort.Strings(deps)
		for _, dep := range deps {
			edges = append(edges, [2]string{p.Name, dep})
		}
	}
	return nodes, edges
}

// Graphviz returns the dependency graph in graphviz dot format, with
// parameter names as labels.
func (obj *Engine) Graphviz() string {
	labels := make(map[pgraph.Vertex]string)
	for id, p := range obj.params {
		labels[pgraph.Vertex(id)] = p.Name
	}
	return obj.graph.Graphviz(labels)
}
