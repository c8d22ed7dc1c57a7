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

// Package engine implements the parametric dependency engine. It owns a flat
// table of parameters, the dependency graph between them, and the machinery
// to apply formulas (extract, cycle-check, commit) and to propagate value
// changes to every transitive dependent in dependency order.
//
// The engine is single-threaded and synchronous: every operation runs to
// completion before returning, and a multi-threaded host must serialize all
// calls itself. Errors are handled locally in the fail-soft style an
// interactive authoring tool needs: a bad formula is logged and rolled back,
// it never crashes the rest of the graph. Each engine is fully independent,
// there are no process-wide registries, so one engine per owning element
// keeps parameter names scoped to that element.
package engine

import (
	"fmt"
	"sort"

	"github.com/alphaladdin/NEOcad2-sub001/lang"
	"github.com/alphaladdin/NEOcad2-sub001/param"
	"github.com/alphaladdin/NEOcad2-sub001/pgraph"
	"github.com/alphaladdin/NEOcad2-sub001/util/errwrap"

	"github.com/google/uuid"
)

// Engine is the owner of a parameter set and its dependency graph.
type Engine struct {
	// Name is a label for this engine, usually the owning element.
	Name string

	// Debug enables additional log messages.
	Debug bool

	// Logf is the logging function. Nil means stay silent. All the
	// fail-soft error paths report through here.
	Logf func(format string, v ...interface{})

	params map[string]*param.Parameter // id -> parameter
	names  map[string]string           // name -> id
	graph  *pgraph.Graph

	// evaluating guards against re-entrant evaluation of a single
	// parameter. It is a set rather than a field on the parameter, so an
	// iterative rewrite of propagation can't leave stale flags behind.
	evaluating map[string]struct{}
}

// New builds a new empty engine.
func New(name string) *Engine {
	return &Engine{
		Name:       name,
		params:     make(map[string]*param.Parameter),
		names:      make(map[string]string),
		graph:      pgraph.NewGraph(name),
		evaluating: make(map[string]struct{}),
	}
}

func (obj *Engine) logf(format string, v ...interface{}) {
	if obj.Logf == nil {
		return
	}
	obj.Logf(format, v...)
}

// String makes the engine pretty print.
func (obj *Engine) String() string {
	return fmt.Sprintf("engine[%s]: %s", obj.Name, obj.graph)
}

// Len returns the number of registered parameters.
func (obj *Engine) Len() int {
	return len(obj.params)
}

// Register adds a parameter to this engine, indexing it by id and name. An
// empty id gets a fresh one assigned. If the parameter carries a formula, it
// is applied immediately: dependencies resolved, cycle-checked and evaluated.
// A formula that fails to apply does not undo the registration, the error
// comes back and the parameter stays as a plain value cell.
func (obj *Engine) Register(p *param.Parameter) error {
	if p == nil {
		return fmt.Errorf("nil parameter")
	}
	if p.Name == "" {
		return fmt.Errorf("parameter has no name")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, exists := obj.params[p.ID]; exists {
		return errwrap.Wrapf(ErrDuplicateID, "register `%s`", p.Name)
	}
	if _, exists := obj.names[p.Name]; exists {
		return errwrap.Wrapf(ErrDuplicateName, "register `%s`", p.Name)
	}

	obj.params[p.ID] = p
	obj.names[p.Name] = p.ID
	obj.graph.AddVertex(pgraph.Vertex(p.ID))
	if obj.Debug {
		obj.logf("registered %s", p)
	}

	if p.Formula == "" {
		return nil
	}
	// the formula becomes live now that the parameter has a home
	formula := p.Formula
	p.Formula = ""
	return obj.SetFormula(p, formula)
}

// CreateParameter builds, registers and returns a parameter in one call. If
// meta carries a formula it is applied immediately.
func (obj *Engine) CreateParameter(name string, value param.Value, kind param.Kind, unit param.Unit, meta *param.Meta) (*param.Parameter, error) {
	p := param.New(name, value, kind, unit, meta)
	if err := obj.Register(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Unregister removes a parameter from this engine. Every edge touching it is
// removed first, from both directions, so no dangling edges survive.
// Dependents that referenced it keep their formulas, which now fail at
// evaluation time with an undefined identifier.
func (obj *Engine) Unregister(p *param.Parameter) error {
	if p == nil {
		return fmt.Errorf("nil parameter")
	}
	return obj.UnregisterByID(p.ID)
}

// UnregisterByID is Unregister by parameter id.
func (obj *Engine) UnregisterByID(id string) error {
	p, exists := obj.params[id]
	if !exists {
		return ErrNotRegistered
	}
	obj.graph.DeleteVertex(pgraph.Vertex(id))
	delete(obj.names, p.Name)
	delete(obj.params, id)
	delete(obj.evaluating, id)
	if obj.Debug {
		obj.logf("unregistered %s", p)
	}
	return nil
}

// Get returns a parameter by id.
func (obj *Engine) Get(id string) (*param.Parameter, bool) {
	p, exists := obj.params[id]
	return p, exists
}

// GetByName returns a parameter by name.
func (obj *Engine) GetByName(name string) (*param.Parameter, bool) {
	id, exists := obj.names[name]
	if !exists {
		return nil, false
	}
	return obj.params[id], true
}

// Parameters returns all registered parameters, sorted by name so that
// output is deterministic.
func (obj *Engine) Parameters() []*param.Parameter {
	var out []*param.Parameter
	for _, p := range obj.params {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Update is the direct external set. It refuses formula-driven and read-only
// parameters: those log and no-op, the prior value is retained. On success
// the new value is committed and propagated to every transitive dependent.
func (obj *Engine) Update(p *param.Parameter, v param.Value) error {
	if err := obj.owns(p); err != nil {
		return err
	}
	if p.Formula != "" {
		obj.logf("update %s: %s", p, param.ErrFormulaDriven)
		return param.ErrFormulaDriven
	}
	if err := p.SetValue(v); err != nil {
		obj.logf("update %s: %s", p, err)
		return err
	}
	if obj.Debug {
		obj.logf("update %s = %s", p, v)
	}
	return obj.PropagateFrom(p)
}

// SetFormula replaces the formula of a parameter. The procedure is: clear the
// old dependency edges, extract the referenced names, resolve them against
// this engine (unresolved names are logged and skipped, they fail later at
// evaluation time if actually used), commit the edges speculatively, and
// cycle-check from here. A cycle rolls everything back: the formula is
// cleared, the edges removed, and the prior value kept. On success the
// formula is stored, the parameter evaluated, and its dependents updated.
// An empty formula simply clears, turning this back into a plain value cell.
func (obj *Engine) SetFormula(p *param.Parameter, formula string) error {
	if err := obj.owns(p); err != nil {
		return err
	}
	v := pgraph.Vertex(p.ID)
	obj.graph.DeleteOutgoingEdges(v)
	p.Formula = ""

	if lang.StripEquals(formula) == "" {
		return nil
	}

	deps, err := lang.ExtractDeps(formula)
	if err != nil {
		obj.logf("formula %s: parse: %s", p, err)
		return errwrap.Wrapf(err, "formula `%s`", p.Name)
	}

	for _, name := range deps {
		id, exists := obj.names[name]
		if !exists {
			// not an edge, maybe it arrives later
			obj.logf("formula %s: unresolved dependency `%s`", p, name)
			continue
		}
		obj.graph.AddEdge(v, pgraph.Vertex(id))
	}

	if obj.graph.CycleFrom(v) {
		obj.graph.DeleteOutgoingEdges(v)
		obj.logf("formula %s: %s", p, ErrCircular)
		return errwrap.Wrapf(ErrCircular, "formula `%s`", p.Name)
	}

	p.Formula = formula
	if obj.Debug {
		obj.logf("formula %s = `%s` (deps: %d)", p, formula, len(deps))
	}
	err = obj.Evaluate(p)
	// existing dependents may reference this parameter
	return errwrap.Append(err, obj.PropagateFrom(p))
}

// Evaluate computes the formula of a single parameter and commits the result.
// It is a no-op for plain value cells. A failed evaluation, an undefined
// identifier, bad types, division by zero, leaves the previous value in
// place: stale but not corrupted. Re-entering a parameter that is already
// evaluating aborts this attempt only, which catches dynamic cycles that the
// static check cannot see.
func (obj *Engine) Evaluate(p *param.Parameter) error {
	if err := obj.owns(p); err != nil {
		return err
	}
	if p.Formula == "" {
		return nil
	}
	if _, busy := obj.evaluating[p.ID]; busy {
		obj.logf("evaluate %s: %s", p, ErrReentrant)
		return errwrap.Wrapf(ErrReentrant, "evaluate `%s`", p.Name)
	}
	obj.evaluating[p.ID] = struct{}{}
	defer delete(obj.evaluating, p.ID)

	scope := make(map[string]param.Value)
	for _, depID := range obj.graph.OutgoingVertices(pgraph.Vertex(p.ID)) {
		d := obj.params[string(depID)]
		scope[d.Name] = d.Value()
	}

	result, err := lang.Eval(p.Formula, scope)
	if err != nil {
		obj.logf("evaluate %s: %s", p, err)
		return errwrap.Wrapf(err, "evaluate `%s`", p.Name)
	}
	p.UpdateFromFormula(param.Coerce(result, p.Kind))
	if obj.Debug {
		obj.logf("evaluate %s = %s", p, p.Value())
	}
	return nil
}

// PropagateFrom re-evaluates every parameter transitively dependent on p, in
// dependency order, each exactly once. When it returns, every dependent value
// is consistent with its formula and its dependencies' current values, the
// graph is at a fixed point. Individual evaluation failures are logged and
// accumulated, they don't stop the remaining dependents from updating.
func (obj *Engine) PropagateFrom(p *param.Parameter) error {
	if err := obj.owns(p); err != nil {
		return err
	}
	affected, err := obj.graph.AffectedSubgraph(pgraph.Vertex(p.ID))
	if err != nil {
		// acyclic invariant violated, this is a programming error
		return errwrap.Wrapf(err, "propagate `%s`", p.Name)
	}
	var reterr error
	for _, id := range affected {
		d := obj.params[string(id)]
		if d.Formula == "" {
			// plain cells are never mutated by propagation
			continue
		}
		reterr = errwrap.Append(reterr, obj.Evaluate(d))
	}
	return reterr
}

// EvaluateAll evaluates every formula-driven parameter, dependency-first over
// the whole graph. It is used after bulk import, and it is idempotent: a
// second run on an unchanged graph recomputes identical values.
func (obj *Engine) EvaluateAll() error {
	order, err := obj.graph.TopologicalSort()
	if err != nil {
		return errwrap.Wrapf(err, "evaluate all")
	}
	var reterr error
	for _, id := range order {
		p := obj.params[string(id)]
		if p.Formula == "" {
			continue
		}
		reterr = errwrap.Append(reterr, obj.Evaluate(p))
	}
	return reterr
}

// Export returns the serialized records of every parameter, sorted by name.
// The list can be imported into a fresh engine to reproduce the set,
// whatever the record order, since formulas apply in a second pass.
func (obj *Engine) Export() []param.Record {
	var out []param.Record
	for _, p := range obj.Parameters() {
		out = append(out, p.Record())
	}
	return out
}

// Import loads a list of serialized records. Pass one registers every
// parameter with its raw value, holding the formulas back. Pass two applies
// the formulas by name, so records may freely forward-reference parameters
// that appear later in the list. A final full evaluation settles the graph.
// Broken records or formulas are logged and skipped, the rest still load.
func (obj *Engine) Import(records []param.Record) error {
	var reterr error
	var names []string                 // names with a formula, in record order
	formulas := make(map[string]string) // name -> held back formula
	for _, r := range records {
		p, err := param.FromRecord(r)
		if err != nil {
			obj.logf("import: %s", err)
			reterr = errwrap.Append(reterr, err)
			continue
		}
		if p.Formula != "" {
			names = append(names, p.Name)
			formulas[p.Name] = p.Formula
			p.Formula = "" // held back until everything exists
		}
		if err := obj.Register(p); err != nil {
			obj.logf("import `%s`: %s", r.Name, err)
			reterr = errwrap.Append(reterr, err)
			continue
		}
	}
	for _, name := range names {
		p, exists := obj.GetByName(name)
		if !exists {
			continue // registration failed above
		}
		if err := obj.SetFormula(p, formulas[name]); err != nil {
			reterr = errwrap.Append(reterr, err)
		}
	}
	return errwrap.Append(reterr, obj.EvaluateAll())
}

// owns checks that p is the registered parameter for its id in this engine,
// which also catches parameters that belong to a different engine.
func (obj *Engine) owns(p *param.Parameter) error {
	if p == nil {
		return fmt.Errorf("nil parameter")
	}
	if q, exists := obj.params[p.ID]; !exists || q != p {
		return errwrap.Wrapf(ErrNotRegistered, "parameter `%s`", p.Name)
	}
	return nil
}
