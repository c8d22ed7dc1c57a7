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

// Package pgraph represents the internal "parameter graph" that we use. It is
// a directed graph over opaque vertex handles. An edge v1 -> v2 means that v1
// depends on v2: outgoing edges point at dependencies, incoming edges come
// from dependents. The engine owns one graph per parameter set, adjacency is
// never embedded in the parameters themselves.
package pgraph

import (
	"fmt"
	"sort"
)

// Vertex is an opaque handle into the graph. The engine uses parameter ids.
type Vertex string

// Graph is the graph structure in this library. The zero value is not usable,
// build one with NewGraph.
type Graph struct {
	Name string

	adjacency map[Vertex]map[Vertex]struct{} // vertex -> its dependencies
	reverse   map[Vertex]map[Vertex]struct{} // vertex -> its dependents
}

// NewGraph builds a new graph.
func NewGraph(name string) *Graph {
	return &Graph{
		Name:      name,
		adjacency: make(map[Vertex]map[Vertex]struct{}),
		reverse:   make(map[Vertex]map[Vertex]struct{}),
	}
}

// String makes the graph pretty print.
func (obj *Graph) String() string {
	return fmt.Sprintf("Vertices(%d), Edges(%d)", obj.NumVertices(), obj.NumEdges())
}

// AddVertex uses variadic input to add all listed vertices to the graph.
// Adding a vertex that already exists is a no-op.
func (obj *Graph) AddVertex(xv ...Vertex) {
	for _, v := range xv {
		if _, exists := obj.adjacency[v]; !exists {
			obj.adjacency[v] = make(map[Vertex]struct{})
		}
		if _, exists := obj.reverse[v]; !exists {
			obj.reverse[v] = make(map[Vertex]struct{})
		}
	}
}

// DeleteVertex deletes a particular vertex from the graph, cleaning up every
// edge that pointed at it from either direction. No dangling edges survive.
func (obj *Graph) DeleteVertex(v Vertex) {
	for dep := range obj.adjacency[v] {
		delete(obj.reverse[dep], v)
	}
	for dependent := range obj.reverse[v] {
		delete(obj.adjacency[dependent], v)
	}
	delete(obj.adjacency, v)
	delete(obj.reverse, v)
}

// AddEdge adds a directed edge to the graph from v1 to v2, meaning v1 depends
// on v2. Both vertices are added if they aren't already present.
func (obj *Graph) AddEdge(v1, v2 Vertex) {
	obj.AddVertex(v1, v2)
	obj.adjacency[v1][v2] = struct{}{}
	obj.reverse[v2][v1] = struct{}{}
}

// DeleteEdge deletes the edge from v1 to v2 if it exists.
func (obj *Graph) DeleteEdge(v1, v2 Vertex) {
	if _, exists := obj.adjacency[v1]; exists {
		delete(obj.adjacency[v1], v2)
	}
	if _, exists := obj.reverse[v2]; exists {
		delete(obj.reverse[v2], v1)
	}
}

// DeleteOutgoingEdges removes every dependency edge of v, leaving edges from
// its dependents intact. Used before re-parsing a formula.
func (obj *Graph) DeleteOutgoingEdges(v Vertex) {
	for dep := range obj.adjacency[v] {
		delete(obj.reverse[dep], v)
	}
	if _, exists := obj.adjacency[v]; exists {
		obj.adjacency[v] = make(map[Vertex]struct{})
	}
}

// HasVertex returns if the input vertex exists in the graph.
func (obj *Graph) HasVertex(v Vertex) bool {
	_, exists := obj.adjacency[v]
	return exists
}

// HasEdge returns if the edge from v1 to v2 exists in the graph.
func (obj *Graph) HasEdge(v1, v2 Vertex) bool {
	_, exists := obj.adjacency[v1][v2]
	return exists
}

// NumVertices returns the number of vertices in the graph.
func (obj *Graph) NumVertices() int {
	return len(obj.adjacency)
}

// NumEdges returns the number of edges in the graph.
func (obj *Graph) NumEdges() int {
	count := 0
	for k := range obj.adjacency {
		count += len(obj.adjacency[k])
	}
	return count
}

// VerticesSorted returns a sorted slice of all vertices in the graph. The
// order is sorted to avoid the non-determinism in the map type.
func (obj *Graph) VerticesSorted() []Vertex {
	var vertices []Vertex
	for k := range obj.adjacency {
		vertices = append(vertices, k)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })
	return vertices
}

// OutgoingVertices returns the sorted set of vertices that v points to, which
// are the dependencies of v.
func (obj *Graph) OutgoingVertices(v Vertex) []Vertex {
	var s []Vertex
	for k := range obj.adjacency[v] {
		s = append(s, k)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// IncomingVertices returns the sorted set of vertices that point to v, which
// are the dependents of v.
func (obj *Graph) IncomingVertices(v Vertex) []Vertex {
	var s []Vertex
	for k := range obj.reverse[v] {
		s = append(s, k)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// TopologicalSort returns the vertices in dependency-first order: every
// vertex appears after all of its dependencies. It errors if the graph is not
// a DAG. Based on Kahn's algorithm.
func (obj *Graph) TopologicalSort() ([]Vertex, error) {
	var L []Vertex                    // empty list that will contain the sorted elements
	var S []Vertex                    // set of all nodes with no dependencies
	remaining := make(map[Vertex]int) // amount of unprocessed dependencies

	for _, v := range obj.VerticesSorted() { // deterministic starting set
		if d := len(obj.adjacency[v]); d == 0 {
			S = append(S, v)
		} else {
			remaining[v] = d
		}
	}

	for len(S) > 0 {
		last := len(S) - 1 // remove a node v from S
		v := S[last]
		S = S[:last]
		L = append(L, v) // add v to tail of L
		for _, n := range obj.IncomingVertices(v) {
			// consume one dependency edge of each dependent
			if remaining[n] > 0 {
				remaining[n]--
				if remaining[n] == 0 { // n has no other pending deps
					S = append(S, n)
				}
			}
		}
	}

	if len(L) != obj.NumVertices() {
		return nil, fmt.Errorf("not a dag")
	}

	return L, nil
}

// CycleFrom reports whether a cycle is reachable from the start vertex by
// following dependency edges. It runs a DFS with a visited set and a
// recursion stack: revisiting a vertex that is still on the current stack
// means a dependency chain returned to its origin.
func (obj *Graph) CycleFrom(start Vertex) bool {
	visited := make(map[Vertex]struct{})
	stack := make(map[Vertex]struct{})

	var dfs func(v Vertex) bool
	dfs = func(v Vertex) bool {
		visited[v] = struct{}{}
		stack[v] = struct{}{}
		for dep := range obj.adjacency[v] {
			if _, on := stack[dep]; on {
				return true
			}
			if _, seen := visited[dep]; seen {
				continue
			}
			if dfs(dep) {
				return true
			}
		}
		delete(stack, v)
		return false
	}

	return dfs(start)
}

// AffectedSubgraph returns every vertex transitively dependent on start, in
// dependency-first order, excluding start itself. The caller can evaluate
// each returned vertex exactly once: diamond shapes don't repeat. It errors
// if the graph is not a DAG, which the engine's invariants rule out.
func (obj *Graph) AffectedSubgraph(start Vertex) ([]Vertex, error) {
	// collect transitive dependents with an explicit stack dfs
	affected := make(map[Vertex]struct{})
	s := []Vertex{start}
	for len(s) > 0 {
		v := s[len(s)-1]
		s = s[:len(s)-1]
		for dependent := range obj.reverse[v] {
			if _, exists := affected[dependent]; exists {
				continue
			}
			affected[dependent] = struct{}{}
			s = append(s, dependent)
		}
	}

	order, err := obj.TopologicalSort()
	if err != nil {
		return nil, err
	}
	var out []Vertex
	for _, v := range order {
		if _, exists := affected[v]; exists && v != start {
			out = append(out, v)
		}
	}
	return out, nil
}
