package value

import (
	"strings"

	"github.com/bprog-lang/bprog/internal/rterr"
)

// Equal implements ==. Defined within the same case for Int, Float,
// Boolean, String, List (element-wise), and also for Symbol (by name)
// and Block (token by token); any cross-type pair is false, never an
// error (spec §3).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x.V == y.V
	case Float:
		y, ok := b.(Float)
		return ok && x.V == y.V
	case Bool:
		y, ok := b.(Bool)
		return ok && x.V == y.V
	case String:
		y, ok := b.(String)
		return ok && x.V == y.V
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.V == y.V
	case List:
		y, ok := b.(List)
		if !ok || len(x.V) != len(y.V) {
			return false
		}
		for i := range x.V {
			if !Equal(x.V[i], y.V[i]) {
				return false
			}
		}
		return true
	case Block:
		y, ok := b.(Block)
		if !ok || len(x.Tokens) != len(y.Tokens) {
			return false
		}
		for i := range x.Tokens {
			if x.Tokens[i] != y.Tokens[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Less implements <. Defined within the same case for Int, Float,
// Boolean (false < true), String (lexicographic), List (lexicographic
// element comparison). Cross-type ordering is a runtime error.
func Less(a, b Value) (bool, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			return x.V < y.V, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			return x.V < y.V, nil
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			return !x.V && y.V, nil
		}
	case String:
		if y, ok := b.(String); ok {
			return x.V < y.V, nil
		}
	case List:
		if y, ok := b.(List); ok {
			return lessLists(x.V, y.V)
		}
	}
	return false, orderingError("<", a, b)
}

func lessLists(x, y []Value) (bool, error) {
	for i := 0; i < len(x) && i < len(y); i++ {
		if Equal(x[i], y[i]) {
			continue
		}
		less, err := Less(x[i], y[i])
		if err != nil {
			return false, err
		}
		return less, nil
	}
	return len(x) < len(y), nil
}

func orderingError(op string, a, b Value) error {
	if a.Kind() != b.Kind() {
		return rterr.WithOperands(rterr.TypeMismatch,
			"operator "+op+" has no ordering across "+a.Kind()+" and "+b.Kind(),
			a.Display(nil), b.Display(nil))
	}
	return rterr.WithOperands(rterr.TypeMismatch,
		"operator "+op+" is not defined for "+strings.ToLower(a.Kind())+" values",
		a.Display(nil), b.Display(nil))
}
