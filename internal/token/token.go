// Package token implements the thin driver-side tokenizer (spec §1
// names this out of scope: "The file/stdin driver that selects source,
// splits whitespace") and the shared forward iterator the Reader and
// Evaluator walk in lockstep (spec §9: "pass the iterator by exclusive
// mutable reference; never duplicate it").
package token

import "strings"

// Tokenize splits src on whitespace runs. Newlines are treated
// identically to spaces (spec §6); no other lexical rule applies: there
// are no comments, no numeric-literal suffixes, and no operator
// grouping without spaces ("1+2" is one token, not three).
func Tokenize(src string) []string {
	return strings.Fields(src)
}

// Iter is a forward-only cursor over a token slice, shared by the
// Evaluator and every Reader sub-parser it calls into. It is always
// passed by pointer; copying an Iter would let two callers advance the
// same logical position independently, breaking the lookahead the
// Reader sub-parsers depend on.
type Iter struct {
	tokens []string
	pos    int
}

// NewIter returns an Iter positioned at the start of tokens.
func NewIter(tokens []string) *Iter {
	return &Iter{tokens: tokens}
}

// Next returns the next token and advances the cursor, or ("", false)
// at end of input.
func (it *Iter) Next() (string, bool) {
	if it.pos >= len(it.tokens) {
		return "", false
	}
	tok := it.tokens[it.pos]
	it.pos++
	return tok, true
}

// Peek returns the next token without advancing, or ("", false) at end
// of input.
func (it *Iter) Peek() (string, bool) {
	if it.pos >= len(it.tokens) {
		return "", false
	}
	return it.tokens[it.pos], true
}

// Done reports whether the iterator has no tokens left.
func (it *Iter) Done() bool { return it.pos >= len(it.tokens) }
