package value

import (
	"testing"

	"github.com/bprog-lang/bprog/internal/rterr"
)

func TestAddSameVariant(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want Value
	}{
		{"int", Int{V: 1}, Int{V: 2}, Int{V: 3}},
		{"float", Float{V: 1.5}, Float{V: 2.5}, Float{V: 4}},
		{"string concatenates in stack order", String{V: "hello "}, String{V: "world"}, String{V: "hello world"}},
		{"list concatenates", List{V: []Value{Int{V: 1}}}, List{V: []Value{Int{V: 2}}}, List{V: []Value{Int{V: 1}, Int{V: 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Add: unexpected error %v", err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddMixedTypeIsTypeMismatch(t *testing.T) {
	_, err := Add(Int{V: 1}, String{V: "x"})
	assertKind(t, err, rterr.TypeMismatch)
}

func TestDivByZero(t *testing.T) {
	_, err := Div(Int{V: 1}, Int{V: 0})
	assertKind(t, err, rterr.ArithmeticDomain)
}

func TestDivFloatNaN(t *testing.T) {
	_, err := Div(Float{V: 1}, Float{V: nan()})
	assertKind(t, err, rterr.ArithmeticDomain)
}

func nan() float64 {
	var f float64
	return f / f
}

func TestIntDivOperandOrder(t *testing.T) {
	// 7 div 2 -> 3, not 0 (op pops b then a, computes a op b)
	got, err := IntDiv(Int{V: 7}, Int{V: 2})
	if err != nil {
		t.Fatalf("IntDiv: unexpected error %v", err)
	}
	if !Equal(got, Int{V: 3}) {
		t.Errorf("IntDiv(7, 2) = %v, want 3", got)
	}
}

func TestEqualCrossTypeIsFalseNotError(t *testing.T) {
	if Equal(Int{V: 1}, String{V: "1"}) {
		t.Errorf("cross-type Equal should be false")
	}
}

func TestLessCrossTypeIsError(t *testing.T) {
	_, err := Less(Int{V: 1}, String{V: "1"})
	assertKind(t, err, rterr.TypeMismatch)
}

func TestComparisonTotalityWithinType(t *testing.T) {
	a, b := Int{V: 3}, Int{V: 5}
	lt, err := Less(a, b)
	if err != nil {
		t.Fatal(err)
	}
	gt, err := Less(b, a)
	if err != nil {
		t.Fatal(err)
	}
	eq := Equal(a, b)
	count := 0
	for _, v := range []bool{lt, gt, eq} {
		if v {
			count++
		}
	}
	if count != 1 {
		t.Errorf("exactly one of <, >, == should hold, got lt=%v gt=%v eq=%v", lt, gt, eq)
	}
}

func TestHeadTailEmptySequence(t *testing.T) {
	_, err := Head(List{V: nil})
	assertKind(t, err, rterr.EmptySequence)

	_, err = Tail(List{V: nil})
	assertKind(t, err, rterr.EmptySequence)
}

func TestHeadTailList(t *testing.T) {
	l := List{V: []Value{Int{V: 1}, Int{V: 2}}}
	head, err := Head(l)
	if err != nil || !Equal(head, Int{V: 1}) {
		t.Fatalf("Head(%v) = %v, %v", l, head, err)
	}
	tail, err := Tail(l)
	if err != nil || !Equal(tail, List{V: []Value{Int{V: 2}}}) {
		t.Fatalf("Tail(%v) = %v, %v", l, tail, err)
	}
}

func TestConsAndAppend(t *testing.T) {
	l := List{V: []Value{Int{V: 2}}}
	consed, err := Cons(l, Int{V: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(consed, List{V: []Value{Int{V: 1}, Int{V: 2}}}) {
		t.Errorf("Cons = %v", consed)
	}

	appended, err := Append(List{V: []Value{Int{V: 1}}}, List{V: []Value{Int{V: 2}}})
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(appended, List{V: []Value{Int{V: 1}, Int{V: 2}}}) {
		t.Errorf("Append = %v", appended)
	}
}

func TestWords(t *testing.T) {
	got, err := Words(String{V: "the quick  fox"})
	if err != nil {
		t.Fatal(err)
	}
	want := List{V: []Value{String{V: "the"}, String{V: "quick"}, String{V: "fox"}}}
	if !Equal(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestParseIntegerReplacesTopWithParsedValue(t *testing.T) {
	// Pins the intended semantics (spec's documented bug: one source
	// revision discarded the parsed value and pushed the string back).
	got, err := ParseInt(String{V: "42"})
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, Int{V: 42}) {
		t.Errorf("ParseInt(\"42\") = %v, want Int{42}", got)
	}
}

func TestParseIntegerFailure(t *testing.T) {
	_, err := ParseInt(String{V: "not a number"})
	assertKind(t, err, rterr.ParseFailure)
}

func TestParseFloat(t *testing.T) {
	got, err := ParseFloat(String{V: "3.5"})
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, Float{V: 3.5}) {
		t.Errorf("ParseFloat(\"3.5\") = %v, want Float{3.5}", got)
	}
}

func TestParseLiteralOrdering(t *testing.T) {
	tests := []struct {
		tok  string
		want Value
	}{
		{"42", Int{V: 42}},
		{"42.0", Float{V: 42.0}},
		{"true", Bool{V: true}},
		{"false", Bool{V: false}},
		{"foo", Symbol{V: "foo"}},
	}
	for _, tt := range tests {
		got := ParseLiteral(tt.tok)
		if !Equal(got, tt.want) || got.Kind() != tt.want.Kind() {
			t.Errorf("ParseLiteral(%q) = %v (%s), want %v (%s)", tt.tok, got, got.Kind(), tt.want, tt.want.Kind())
		}
	}
}

func TestDisplayString(t *testing.T) {
	got := String{V: "hello world"}.Display(nil)
	want := `" hello world "`
	if got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}
}

func TestDisplayList(t *testing.T) {
	got := List{V: []Value{Int{V: 2}, Int{V: 4}, Int{V: 6}}}.Display(nil)
	want := "[ 2 4 6 ]"
	if got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}
}

func TestCloneIsDeepCopy(t *testing.T) {
	l := List{V: []Value{Int{V: 1}}}
	cloned := l.Clone().(List)
	cloned.V[0] = Int{V: 99}
	if Equal(l.V[0], Int{V: 99}) {
		t.Errorf("mutating a clone wrote back into the original")
	}
}

func assertKind(t *testing.T, err error, want rterr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s, got nil", want)
	}
	re, ok := err.(*rterr.Error)
	if !ok {
		t.Fatalf("expected *rterr.Error, got %T (%v)", err, err)
	}
	if re.Kind != want {
		t.Errorf("error kind = %s, want %s", re.Kind, want)
	}
}
