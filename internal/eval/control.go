package eval

import (
	"github.com/bprog-lang/bprog/internal/rterr"
	"github.com/bprog-lang/bprog/internal/value"
)

// Control-flow operators here do not perform fresh token-iterator
// lookahead past themselves. By the time the generic dispatch loop
// (eval.go's dispatch) reaches a control-flow keyword, any preceding
// `{...}` literal has already been read by the Reader and pushed onto
// the Stack as a Block — the evaluator has no way to "un-push" it and
// re-read it from the iterator, and in every worked scenario the
// keyword is the last token of its expression, so a fresh
// iterator.Next() would immediately see end-of-input. Instead, each
// operator here pops its branch(es) off the Stack, most-recently-pushed
// first. See DESIGN.md for the scenario-by-scenario trace that pins
// this down against the documented examples (spec.md §8 scenarios 3,
// 4, 7, 8).

func (e *Evaluator) popBranch() (value.Value, error) {
	return e.Stack.Pop()
}

// execIf: stack holds ..., cond, trueBranch, falseBranch (falseBranch
// on top). Pops falseBranch, trueBranch, then the Boolean condition.
func (e *Evaluator) execIf() error {
	falseBranch, err := e.popBranch()
	if err != nil {
		return err
	}
	trueBranch, err := e.popBranch()
	if err != nil {
		return err
	}
	cond, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "if requires a Boolean condition", cond.Display(nil))
	}
	if b.V {
		return e.branch(trueBranch)
	}
	return e.branch(falseBranch)
}

// execTimes: stack holds ..., n, body (body on top). Pops body, pops
// Int n, runs body n times. A decrement-then-test loop, so n<=0 still
// runs the body once — documented quirk, preserved deliberately
// (spec.md §9 Open Questions).
func (e *Evaluator) execTimes() error {
	body, err := e.popBranch()
	if err != nil {
		return err
	}
	nVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	n, ok := nVal.(value.Int)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "times requires an Int count", nVal.Display(nil))
	}
	count := n.V
	for {
		if err := e.branch(body); err != nil {
			return err
		}
		count--
		if count <= 0 {
			return nil
		}
	}
}

// execLoop: stack holds ..., cond, body (body on top, since it was
// pushed second, after the condition block in source order). Repeatedly
// executes cond, pops a Boolean; true terminates, false runs body and
// repeats.
func (e *Evaluator) execLoop() error {
	bodyBranch, err := e.popBranch()
	if err != nil {
		return err
	}
	condBranch, err := e.popBranch()
	if err != nil {
		return err
	}
	for {
		if err := e.branch(condBranch); err != nil {
			return err
		}
		done, err := e.Stack.Pop()
		if err != nil {
			return err
		}
		b, ok := done.(value.Bool)
		if !ok {
			return rterr.WithOperands(rterr.TypeMismatch, "loop condition must leave a Boolean", done.Display(nil))
		}
		if b.V {
			return nil
		}
		if err := e.branch(bodyBranch); err != nil {
			return err
		}
	}
}

// execEach: stack holds ..., list, branch (branch on top). For each
// element left to right, pushes it and executes branch; leaves no
// extra result besides whatever the branch itself produces.
func (e *Evaluator) execEach() error {
	branch, err := e.popBranch()
	if err != nil {
		return err
	}
	listVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	list, ok := listVal.(value.List)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "each requires a List", listVal.Display(nil))
	}
	for _, elem := range list.V {
		e.Stack.Push(elem)
		if err := e.branch(branch); err != nil {
			return err
		}
	}
	return nil
}

// execMap: stack holds ..., list, branch (branch on top). For each
// element, pushes it, executes branch, pops one result; pushes the
// resulting List of the same length.
func (e *Evaluator) execMap() error {
	branch, err := e.popBranch()
	if err != nil {
		return err
	}
	listVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	list, ok := listVal.(value.List)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "map requires a List", listVal.Display(nil))
	}
	results := make([]value.Value, 0, len(list.V))
	for _, elem := range list.V {
		e.Stack.Push(elem)
		if err := e.branch(branch); err != nil {
			return err
		}
		result, err := e.Stack.Pop()
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	e.Stack.Push(value.List{V: results})
	return nil
}

// execFoldl: stack holds ..., list, accumulator, branch (branch on
// top, accumulator pushed after list so it pops first). For each
// element left to right: pushes accumulator, pushes element, runs
// branch, pops the new accumulator; finally pushes it.
func (e *Evaluator) execFoldl() error {
	branch, err := e.popBranch()
	if err != nil {
		return err
	}
	accVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	listVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	list, ok := listVal.(value.List)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "foldl requires a List", listVal.Display(nil))
	}
	acc := accVal
	for _, elem := range list.V {
		e.Stack.Push(acc)
		e.Stack.Push(elem)
		if err := e.branch(branch); err != nil {
			return err
		}
		acc, err = e.Stack.Pop()
		if err != nil {
			return err
		}
	}
	e.Stack.Push(acc)
	return nil
}

// execAssign: `:=` pops a value, pops a name; the name must be a
// Symbol. Writes into Variables.
func (e *Evaluator) execAssign() error {
	val, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	nameVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	name, ok := nameVal.(value.Symbol)
	if !ok {
		return rterr.WithOperands(rterr.InvalidBindingTarget, ":= requires a Symbol name", nameVal.Display(nil))
	}
	e.Variables.Set(name.V, val)
	return nil
}

// execFun: `fun` pops a block, pops a name; the name must be a Symbol.
// Writes into Functions, kept separate from Variables (DESIGN.md, "Two
// environments").
func (e *Evaluator) execFun() error {
	bodyVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	body, ok := bodyVal.(value.Block)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "fun requires a Block body", bodyVal.Display(nil))
	}
	nameVal, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	name, ok := nameVal.(value.Symbol)
	if !ok {
		return rterr.WithOperands(rterr.InvalidBindingTarget, "fun requires a Symbol name", nameVal.Display(nil))
	}
	e.Functions.Set(name.V, body)
	return nil
}

// execExec: pops a Block and runs it immediately against the current
// Stack and Envs, as if its tokens had appeared inline.
func (e *Evaluator) execExec() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, ok := v.(value.Block)
	if !ok {
		return rterr.WithOperands(rterr.TypeMismatch, "exec requires a Block", v.Display(nil))
	}
	return e.ExecBlock(b)
}
