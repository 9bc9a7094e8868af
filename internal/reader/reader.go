// Package reader implements the structural sub-parsers that recover
// nested literal shape (quoted strings, lists, blocks) from the flat
// token stream the Evaluator walks (spec §4.1). All three sub-parsers
// share one forward iterator with the Evaluator; none of them ever
// copies it (spec §9).
package reader

import (
	"strings"

	"github.com/bprog-lang/bprog/internal/token"
	"github.com/bprog-lang/bprog/internal/value"
)

// ReadString consumes tokens from it until (and consuming) a token
// equal exactly to `"`, joins the consumed tokens with a single ASCII
// space and wraps the result in a value.String. Running out of tokens
// before the closing quote yields a best-effort String built from
// whatever was consumed; no error is raised (spec §4.1 "Failure").
func ReadString(it *token.Iter) value.String {
	var parts []string
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		if tok == `"` {
			break
		}
		parts = append(parts, tok)
	}
	return value.String{V: strings.TrimSpace(strings.Join(parts, " "))}
}

// ReadList consumes tokens until (and consuming) a `]`, recursively
// dispatching `"`, `[` and `{` to the matching sub-parser and
// converting every other token by the literal-conversion rule (spec
// §4.2). Running out of tokens before the closing `]` yields a
// best-effort List built from whatever was parsed so far.
func ReadList(it *token.Iter) value.List {
	var elems []value.Value
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		switch tok {
		case "]":
			return value.List{V: elems}
		case `"`:
			elems = append(elems, ReadString(it))
		case "[":
			elems = append(elems, ReadList(it))
		case "{":
			elems = append(elems, ReadBlock(it))
		default:
			elems = append(elems, value.ParseLiteral(tok))
		}
	}
	return value.List{V: elems}
}

// ReadBlock consumes tokens, tracking a nesting depth initialized to 1
// (the opening `{` was already consumed by the caller). Every `{`
// increments depth and is appended to the token vector; every `}`
// decrements depth — when depth reaches 0 that `}` is not appended and
// ReadBlock returns; otherwise it is appended. All other tokens are
// appended verbatim, preserving the block's source so it can be
// re-executed later (spec §4.1).
func ReadBlock(it *token.Iter) value.Block {
	depth := 1
	var tokens []string
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		switch tok {
		case "{":
			depth++
			tokens = append(tokens, tok)
		case "}":
			depth--
			if depth == 0 {
				return value.Block{Tokens: tokens}
			}
			tokens = append(tokens, tok)
		default:
			tokens = append(tokens, tok)
		}
	}
	return value.Block{Tokens: tokens}
}
