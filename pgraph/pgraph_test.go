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
	"reflect"
	"strings"
	"testing"
)

func TestCount1(t *testing.T) {
	g := NewGraph("test")

	if i := g.NumVertices(); i != 0 {
		t.Errorf("should have 0 vertices instead of: %d", i)
	}

	if i := g.NumEdges(); i != 0 {
		t.Errorf("should have 0 edges instead of: %d", i)
	}

	g.AddEdge("a", "b")

	if i := g.NumVertices(); i != 2 {
		t.Errorf("should have 2 vertices instead of: %d", i)
	}

	if i := g.NumEdges(); i != 1 {
		t.Errorf("should have 1 edges instead of: %d", i)
	}
}

func TestAddVertex1(t *testing.T) {
	g := NewGraph("test")
	g.AddVertex("a")
	g.AddVertex("a") // duplicate is a no-op

	if i := g.NumVertices(); i != 1 {
		t.Errorf("should have 1 vertices instead of: %d", i)
	}
	if !g.HasVertex("a") {
		t.Errorf("should have vertex a")
	}
	if g.HasVertex("b") {
		t.Errorf("should not have vertex b")
	}
}

func TestDeleteVertex1(t *testing.T) {
	g := NewGraph("test")
	g.AddEdge("a", "b") // a depends on b
	g.AddEdge("c", "b")
	g.AddEdge("b", "d")

	g.DeleteVertex("b")

	if i := g.NumVertices(); i != 3 {
		t.Errorf("should have 3 vertices instead of: %d", i)
	}
	// no dangling edges may survive removal
	if i := g.NumEdges(); i != 0 {
		t.Errorf("should have 0 edges instead of: %d", i)
	}
	if out := g.OutgoingVertices("a"); len(out) != 0 {
		t.Errorf("vertex a should have no dependencies, got: %v", out)
	}
	if in := g.IncomingVertices("d"); len(in) != 0 {
		t.Errorf("vertex d should have no dependents, got: %v", in)
	}
}

func TestDeleteOutgoingEdges1(t *testing.T) {
	g := NewGraph("test")
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("d", "a") // d depends on a, must survive

	g.DeleteOutgoingEdges("a")

	if out := g.OutgoingVertices("a"); len(out) != 0 {
		t.Errorf("vertex a should have no dependencies, got: %v", out)
	}
	if !g.HasEdge("d", "a") {
		t.Errorf("the d -> a edge should have survived")
	}
	if in := g.IncomingVertices("b"); len(in) != 0 {
		t.Errorf("vertex b should have no dependents, got: %v", in)
	}
}

func TestTopologicalSort1(t *testing.T) {
	// a depends on b and c, both depend on d
	g := NewGraph("test")
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")

	order, err := g.TopologicalSort()
	if err != nil {
		t.Errorf("topological sort failed: %+v", err)
		return
	}
	if i := len(order); i != 4 {
		t.Errorf("should have 4 vertices instead of: %d", i)
		return
	}
	index := make(map[Vertex]int)
	for i, v := range order {
		index[v] = i
	}
	// every vertex must come after all of its dependencies
	pairs := [][2]Vertex{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}
	for _, p := range pairs {
		if index[p[0]] < index[p[1]] {
			t.Errorf("%s sorted before its dependency %s: %v", p[0], p[1], order)
		}
	}
}

func TestTopologicalSort2(t *testing.T) {
	g := NewGraph("test")
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a") // cycle

	if _, err := g.TopologicalSort(); err == nil {
		t.Errorf("topological sort should have failed on a cycle")
	}
}

func TestCycleFrom1(t *testing.T) {
	type test struct { // an individual test
		name  string
		edges [][2]Vertex
		start Vertex
		cycle bool
	}
	testCases := []test{
		{
			name:  "empty",
			edges: nil,
			start: "a",
			cycle: false,
		},
		{
			name:  "chain",
			edges: [][2]Vertex{{"a", "b"}, {"b", "c"}},
			start: "a",
			cycle: false,
		},
		{
			name:  "self loop",
			edges: [][2]Vertex{{"a", "a"}},
			start: "a",
			cycle: true,
		},
		{
			name:  "two cycle",
			edges: [][2]Vertex{{"a", "b"}, {"b", "a"}},
			start: "a",
			cycle: true,
		},
		{
			name:  "diamond is not a cycle",
			edges: [][2]Vertex{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			start: "a",
			cycle: false,
		},
		{
			name:  "cycle not reachable from start",
			edges: [][2]Vertex{{"a", "b"}, {"c", "d"}, {"d", "c"}},
			start: "a",
			cycle: false,
		},
		{
			name:  "deep cycle",
			edges: [][2]Vertex{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "b"}},
			start: "a",
			cycle: true,
		},
	}
	for index, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGraph("test")
			g.AddVertex(tc.start)
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1])
			}
			if got := g.CycleFrom(tc.start); got != tc.cycle {
				t.Errorf("test #%d: expected cycle %t, got %t", index, tc.cycle, got)
			}
		})
	}
}

func TestAffectedSubgraph1(t *testing.T) {
	// d -> c -> a, d -> c -> b (c depends on a and b, d depends on c)
	g := NewGraph("test")
	g.AddEdge("c", "a")
	g.AddEdge("c", "b")
	g.AddEdge("d", "c")

	out, err := g.AffectedSubgraph("a")
	if err != nil {
		t.Errorf("affected subgraph failed: %+v", err)
		return
	}
	expected := []Vertex{"c", "d"} // dependency-first
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("expected: %v, got: %v", expected, out)
	}

	// a leaf has no dependents
	out, err = g.AffectedSubgraph("d")
	if err != nil {
		t.Errorf("affected subgraph failed: %+v", err)
		return
	}
	if len(out) != 0 {
		t.Errorf("expected no affected vertices, got: %v", out)
	}
}

func TestAffectedSubgraph2(t *testing.T) {
	// diamond: c and b depend on a, d depends on both; d must appear once
	g := NewGraph("test")
	g.AddEdge("b", "a")
	g.AddEdge("c", "a")
	g.AddEdge("d", "b")
	g.AddEdge("d", "c")

	out, err := g.AffectedSubgraph("a")
	if err != nil {
		t.Errorf("affected subgraph failed: %+v", err)
		return
	}
	if i := len(out); i != 3 {
		t.Errorf("should have 3 vertices instead of: %d (%v)", i, out)
		return
	}
	if out[len(out)-1] != "d" {
		t.Errorf("d should sort last: %v", out)
	}
}

func TestGraphviz1(t *testing.T) {
	g := NewGraph("test")
	g.AddEdge("x1", "x2")
	str := g.Graphviz(map[Vertex]string{"x1": "Area"})

	if !strings.HasPrefix(str, "digraph \"test\" {") {
		t.Errorf("unexpected graphviz header: %s", str)
	}
	if !strings.Contains(str, "\"x1\" [label=\"Area\"];") {
		t.Errorf("missing labelled node: %s", str)
	}
	if !strings.Contains(str, "\"x1\" -> \"x2\";") {
		t.Errorf("missing edge: %s", str)
	}
}
