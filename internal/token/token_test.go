package token

import "testing"

func TestTokenizeTreatsNewlinesAsSpaces(t *testing.T) {
	got := Tokenize("1 2\n+\t3")
	want := []string{"1", "2", "+", "3"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIterAdvancesForward(t *testing.T) {
	it := NewIter([]string{"a", "b"})
	tok, ok := it.Next()
	if !ok || tok != "a" {
		t.Fatalf("Next = %q, %v", tok, ok)
	}
	peek, ok := it.Peek()
	if !ok || peek != "b" {
		t.Fatalf("Peek = %q, %v", peek, ok)
	}
	tok, ok = it.Next()
	if !ok || tok != "b" {
		t.Fatalf("Next = %q, %v", tok, ok)
	}
	if !it.Done() {
		t.Error("expected iterator to be done")
	}
	if _, ok := it.Next(); ok {
		t.Error("expected Next to report false at end of input")
	}
}
