// Package eval implements the token-walking evaluator: the same
// recursive-descent shape as the Reader (internal/reader), sharing its
// iterator, but dispatching on variables, functions and the fixed
// operator table instead of balancing brackets. Grounded on
// internal/interp's tree-walking Eval(node) entry point, adapted from
// an AST walk to a token-stream walk per original_source/bprog's
// types.rs Value::exec match.
package eval

import (
	"bufio"
	"io"

	"github.com/bprog-lang/bprog/internal/env"
	"github.com/bprog-lang/bprog/internal/ops"
	"github.com/bprog-lang/bprog/internal/reader"
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/token"
	"github.com/bprog-lang/bprog/internal/value"
)

// Evaluator bundles the shared Stack and the two Envs, plus the I/O
// handles print/println/read need. One Evaluator serves one top-level
// session; Exec may recurse into it for function bodies and
// control-flow branches.
type Evaluator struct {
	Stack     *stack.Stack
	Variables *env.Variables
	Functions *env.Functions
	IO        ops.IO
}

// New builds an Evaluator with fresh, empty Stack and Envs.
func New(out io.Writer, in *bufio.Reader) *Evaluator {
	return &Evaluator{
		Stack:     stack.New(),
		Variables: env.NewVariables(),
		Functions: env.NewFunctions(),
		IO:        ops.IO{Out: out, In: in},
	}
}

// Exec evaluates the source text as one Block: tokenize, then walk.
func (e *Evaluator) Exec(src string) error {
	return e.ExecTokens(token.Tokenize(src))
}

// ExecTokens walks a fixed token sequence against the shared Stack and
// Envs. This is the recursive entry point: function bodies and
// control-flow branches reenter here with a Block's stored tokens.
func (e *Evaluator) ExecTokens(tokens []string) error {
	it := token.NewIter(tokens)
	for {
		tok, ok := it.Next()
		if !ok {
			return nil
		}
		if err := e.dispatch(tok, it); err != nil {
			return err
		}
	}
}

// ExecBlock runs the tokens stored in a Block value.
func (e *Evaluator) ExecBlock(b value.Block) error {
	return e.ExecTokens(b.Tokens)
}

// dispatch applies the precedence in spec: variable, then function,
// then the fixed operator table (with the Reader invoked for [, {, "),
// then literal conversion. A user variable or function shadows a
// same-named operator; this is the intended extensibility model.
func (e *Evaluator) dispatch(tok string, it *token.Iter) error {
	if v, ok := e.Variables.Get(tok); ok {
		e.Stack.Push(v)
		return nil
	}
	if body, ok := e.Functions.Get(tok); ok {
		return e.ExecBlock(body)
	}

	switch tok {
	case "+":
		return ops.Add(e.Stack)
	case "-":
		return ops.Sub(e.Stack)
	case "*":
		return ops.Mul(e.Stack)
	case "/":
		return ops.Div(e.Stack)
	case "div":
		return ops.IntDiv(e.Stack)
	case "<":
		return ops.Lt(e.Stack)
	case ">":
		return ops.Gt(e.Stack)
	case "==":
		return ops.Eq(e.Stack)
	case "&&":
		return ops.And(e.Stack)
	case "||":
		return ops.Or(e.Stack)
	case "not":
		return ops.Not(e.Stack)
	case "dup":
		return ops.Dup(e.Stack)
	case "swap":
		return ops.Swap(e.Stack)
	case "pop":
		return ops.Pop(e.Stack)
	case "words":
		return ops.Words(e.Stack)
	case "print":
		return ops.Print(e.Stack, e.IO, e.Variables)
	case "println":
		return ops.Println(e.Stack, e.IO, e.Variables)
	case "read":
		return ops.Read(e.Stack, e.IO)
	case "parseInteger":
		return ops.ParseInteger(e.Stack)
	case "parseFloat":
		return ops.ParseFloatOp(e.Stack)
	case "head":
		return ops.Head(e.Stack)
	case "tail":
		return ops.Tail(e.Stack)
	case "empty":
		return ops.Empty(e.Stack)
	case "length":
		return ops.Length(e.Stack)
	case "cons":
		return ops.Cons(e.Stack)
	case "append":
		return ops.Append(e.Stack)
	case "[":
		e.Stack.Push(reader.ReadList(it))
		return nil
	case "{":
		e.Stack.Push(reader.ReadBlock(it))
		return nil
	case "\"":
		e.Stack.Push(reader.ReadString(it))
		return nil
	case "if":
		return e.execIf()
	case "times":
		return e.execTimes()
	case "loop":
		return e.execLoop()
	case "each":
		return e.execEach()
	case "map":
		return e.execMap()
	case "foldl":
		return e.execFoldl()
	case ":=":
		return e.execAssign()
	case "fun":
		return e.execFun()
	case "exec":
		return e.execExec()
	default:
		e.Stack.Push(value.ParseLiteral(tok))
		return nil
	}
}

// branch returns the executable form of a value already popped off the
// stack: a Block runs its stored tokens; any other Value is a one-token
// branch whose only effect is to push itself back. See DESIGN.md for
// why branches are read by popping the stack rather than by fresh
// iterator lookahead past the control-flow keyword.
func (e *Evaluator) branch(v value.Value) error {
	if b, ok := v.(value.Block); ok {
		return e.ExecBlock(b)
	}
	e.Stack.Push(v)
	return nil
}

