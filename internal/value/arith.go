package value

import (
	"math"

	"github.com/bprog-lang/bprog/internal/rterr"
)

// Add implements +. Int/Float add numerically; String/List concatenate
// in stack order (a is bottom, b is top: a then b). Mixed-type and any
// other variant is a type error. Grounded on original_source/bprog's
// operations/arithmetic.rs and types.rs `impl Add for Value`.
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			return Int{V: x.V + y.V}, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			return Float{V: x.V + y.V}, nil
		}
	case String:
		if y, ok := b.(String); ok {
			return String{V: x.V + y.V}, nil
		}
	case List:
		if y, ok := b.(List); ok {
			out := make([]Value, 0, len(x.V)+len(y.V))
			out = append(out, x.V...)
			out = append(out, y.V...)
			return List{V: out}, nil
		}
	}
	return nil, typeMismatch("+", "Int, Float, String or List", a, b)
}

// Sub implements -. Int/Float only.
func Sub(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			return Int{V: x.V - y.V}, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			return Float{V: x.V - y.V}, nil
		}
	}
	return nil, typeMismatch("-", "matching Int or Float", a, b)
}

// Mul implements *. Int/Float only.
func Mul(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			return Int{V: x.V * y.V}, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			return Float{V: x.V * y.V}, nil
		}
	}
	return nil, typeMismatch("*", "matching Int or Float", a, b)
}

// Div implements /. Int division errors on a zero divisor; float
// division errors on a zero divisor or either operand being NaN.
func Div(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			if y.V == 0 {
				return nil, rterr.New(rterr.ArithmeticDomain, "division by zero")
			}
			return Int{V: x.V / y.V}, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			if math.IsNaN(x.V) || math.IsNaN(y.V) {
				return nil, rterr.New(rterr.ArithmeticDomain, "division with NaN operand")
			}
			if y.V == 0 {
				return nil, rterr.New(rterr.ArithmeticDomain, "division by zero")
			}
			return Float{V: x.V / y.V}, nil
		}
	}
	return nil, typeMismatch("/", "matching Int or Float", a, b)
}

// IntDiv implements div: truncating integer division. Int operands
// divide directly; Float operands are cast to Int first (spec §4.3).
func IntDiv(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			if y.V == 0 {
				return nil, rterr.New(rterr.ArithmeticDomain, "integer division by zero")
			}
			return Int{V: x.V / y.V}, nil
		}
	case Float:
		if y, ok := b.(Float); ok {
			yi := int64(y.V)
			if yi == 0 {
				return nil, rterr.New(rterr.ArithmeticDomain, "integer division by zero")
			}
			return Int{V: int64(x.V) / yi}, nil
		}
	}
	return nil, typeMismatch("div", "matching Int or Float", a, b)
}

func typeMismatch(op, want string, a, b Value) error {
	return rterr.WithOperands(rterr.TypeMismatch,
		"operator "+op+" requires "+want+" operands",
		a.Display(nil), b.Display(nil))
}
