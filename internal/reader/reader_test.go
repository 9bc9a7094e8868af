package reader

import (
	"testing"

	"github.com/bprog-lang/bprog/internal/token"
	"github.com/bprog-lang/bprog/internal/value"
)

func TestReadStringJoinsWithSingleSpace(t *testing.T) {
	it := token.NewIter(token.Tokenize(`hello world " rest`))
	got := ReadString(it)
	if got.V != "hello world" {
		t.Errorf("ReadString = %q, want %q", got.V, "hello world")
	}
	rest, ok := it.Next()
	if !ok || rest != "rest" {
		t.Errorf("iterator left at %q, %v, want \"rest\", true", rest, ok)
	}
}

func TestReadStringUnterminatedIsBestEffort(t *testing.T) {
	it := token.NewIter(token.Tokenize(`hello world`))
	got := ReadString(it)
	if got.V != "hello world" {
		t.Errorf("ReadString = %q, want best-effort %q", got.V, "hello world")
	}
	if !it.Done() {
		t.Error("expected iterator exhausted")
	}
}

func TestReadListNested(t *testing.T) {
	it := token.NewIter(token.Tokenize(`1 [ 2 3 ] true ]`))
	got := ReadList(it)
	want := value.List{V: []value.Value{
		value.Int{V: 1},
		value.List{V: []value.Value{value.Int{V: 2}, value.Int{V: 3}}},
		value.Bool{V: true},
	}}
	if !value.Equal(got, want) {
		t.Errorf("ReadList = %v, want %v", got, want)
	}
}

func TestReadListWithStringAndBlock(t *testing.T) {
	it := token.NewIter(token.Tokenize(`" a b " { dup * } ]`))
	got := ReadList(it)
	want := value.List{V: []value.Value{
		value.String{V: "a b"},
		value.Block{Tokens: []string{"dup", "*"}},
	}}
	if !value.Equal(got, want) {
		t.Errorf("ReadList = %v, want %v", got, want)
	}
}

func TestReadBlockTracksNestedDepth(t *testing.T) {
	// caller already consumed the opening "{"
	it := token.NewIter(token.Tokenize(`1 { 2 } 3 } rest`))
	got := ReadBlock(it)
	want := []string{"1", "{", "2", "}", "3"}
	if len(got.Tokens) != len(want) {
		t.Fatalf("ReadBlock tokens = %v, want %v", got.Tokens, want)
	}
	for i := range want {
		if got.Tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got.Tokens[i], want[i])
		}
	}
	next, ok := it.Next()
	if !ok || next != "rest" {
		t.Errorf("iterator left at %q, %v, want \"rest\", true", next, ok)
	}
}

func TestReadBlockRoundTripsThroughDisplay(t *testing.T) {
	it := token.NewIter(token.Tokenize(`dup { 1 + } exec }`))
	block := ReadBlock(it)

	// Display + re-tokenize + ReadBlock (skipping the leading "{")
	// should reconstruct the same token vector (spec §6).
	displayed := block.Display(nil)
	retokenized := token.Tokenize(displayed)
	if retokenized[0] != "{" {
		t.Fatalf("displayed form %q should start with {", displayed)
	}
	it2 := token.NewIter(retokenized[1:])
	reparsed := ReadBlock(it2)
	if !value.Equal(reparsed, block) {
		t.Errorf("round-trip mismatch: got %v, want %v", reparsed, block)
	}
}
