package value

import "github.com/bprog-lang/bprog/internal/rterr"

// And implements &&: both operands must be Boolean.
func And(a, b Value) (Value, error) {
	x, ok1 := a.(Bool)
	y, ok2 := b.(Bool)
	if !ok1 || !ok2 {
		return nil, typeMismatch("&&", "two Boolean", a, b)
	}
	return Bool{V: x.V && y.V}, nil
}

// Or implements ||: both operands must be Boolean.
func Or(a, b Value) (Value, error) {
	x, ok1 := a.(Bool)
	y, ok2 := b.(Bool)
	if !ok1 || !ok2 {
		return nil, typeMismatch("||", "two Boolean", a, b)
	}
	return Bool{V: x.V || y.V}, nil
}

// Not implements not: the operand must be Boolean.
func Not(a Value) (Value, error) {
	x, ok := a.(Bool)
	if !ok {
		return nil, rterr.WithOperands(rterr.TypeMismatch,
			"operator not requires a Boolean operand", a.Display(nil))
	}
	return Bool{V: !x.V}, nil
}
