// Package env implements the two global, disjoint name-to-Value
// mappings the evaluator threads through every recursive exec call:
// Variables (bound by :=) and Functions (bound by fun). Grounded on
// original_source/bprog/src/variables.rs (a HashMap<String, Value> with
// last-write-wins set/get) and spec §3/§9 ("Two environments").
package env

import "github.com/bprog-lang/bprog/internal/value"

// Variables maps variable names to Values, bound by :=. Last write
// wins; there is no scoping or shadowing beyond global replacement.
type Variables struct {
	m map[string]value.Value
}

// NewVariables returns an empty Variables environment.
func NewVariables() *Variables {
	return &Variables{m: make(map[string]value.Value)}
}

// Get returns a deep clone of the bound value, so that mutating the
// pushed copy never writes back into the environment (spec §3
// ownership: "copy-on-read semantics").
func (v *Variables) Get(name string) (value.Value, bool) {
	stored, ok := v.m[name]
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// Set binds name to val, replacing any prior entry.
func (v *Variables) Set(name string, val value.Value) {
	v.m[name] = val
}

// Has reports whether name is bound, without cloning its value.
func (v *Variables) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Names returns the bound variable names in undefined order, for
// introspection (e.g. the `bprog env` debug subcommand).
func (v *Variables) Names() []string {
	out := make([]string, 0, len(v.m))
	for name := range v.m {
		out = append(out, name)
	}
	return out
}

// Functions maps function names to their Block bodies, bound by fun.
// Kept separate from Variables (see spec §9 "Two environments"): fun
// expects a Block on the stack, := does not, and unifying the two would
// make a Block bound via := auto-invocable on lookup.
type Functions struct {
	m map[string]value.Block
}

// NewFunctions returns an empty Functions environment.
func NewFunctions() *Functions {
	return &Functions{m: make(map[string]value.Block)}
}

// Get returns a deep clone of the bound Block body.
func (f *Functions) Get(name string) (value.Block, bool) {
	stored, ok := f.m[name]
	if !ok {
		return value.Block{}, false
	}
	return stored.Clone().(value.Block), true
}

// Set binds name to body, replacing any prior entry.
func (f *Functions) Set(name string, body value.Block) {
	f.m[name] = body
}

// Has reports whether name is bound.
func (f *Functions) Has(name string) bool {
	_, ok := f.m[name]
	return ok
}

// Names returns the bound function names in undefined order.
func (f *Functions) Names() []string {
	out := make([]string, 0, len(f.m))
	for name := range f.m {
		out = append(out, name)
	}
	return out
}
