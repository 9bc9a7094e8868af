package env

import (
	"testing"

	"github.com/bprog-lang/bprog/internal/value"
)

func TestGetReturnsBoundValue(t *testing.T) {
	vars := NewVariables()
	vars.Set("x", value.Int{V: 42})

	got, ok := vars.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if !value.Equal(got, value.Int{V: 42}) {
		t.Errorf("Get(x) = %v, want 42", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	vars := NewVariables()
	vars.Set("x", value.Int{V: 1})
	vars.Set("x", value.Int{V: 2})

	got, _ := vars.Get("x")
	if !value.Equal(got, value.Int{V: 2}) {
		t.Errorf("Get(x) = %v, want 2", got)
	}
}

func TestGetIsCopyOnRead(t *testing.T) {
	vars := NewVariables()
	vars.Set("xs", value.List{V: []value.Value{value.Int{V: 1}}})

	got, _ := vars.Get("xs")
	list := got.(value.List)
	list.V[0] = value.Int{V: 99}

	again, _ := vars.Get("xs")
	if value.Equal(again.(value.List).V[0], value.Int{V: 99}) {
		t.Errorf("mutating a read value wrote back into Variables")
	}
}

func TestVariablesAndFunctionsAreDisjoint(t *testing.T) {
	vars := NewVariables()
	funcs := NewFunctions()

	vars.Set("square", value.Int{V: 1})
	funcs.Set("square", value.Block{Tokens: []string{"dup", "*"}})

	if !vars.Has("square") || !funcs.Has("square") {
		t.Fatal("expected both namespaces to hold independent bindings for the same name")
	}
	v, _ := vars.Get("square")
	if _, ok := v.(value.Int); !ok {
		t.Errorf("Variables.Get(square) should stay an Int, got %T", v)
	}
}
