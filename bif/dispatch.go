package bif

import (
	"j5.nz/ertgcore/runtimectx"
	"j5.nz/ertgcore/term"
)

// CodeLookup is what a CodeServer resolves a callable MFA to: either a
// user-code address or a ready-to-invoke BIF (§6 "FoundBeamCode(addr) |
// FoundBif(fn_ptr) | NotFound"). NotFound is represented by both fields
// being zero/nil — callers treat that as `undef`.
type CodeLookup struct {
	HasCode  bool
	CodeAddr uint32
	Fn       Fn
}

// maxBifArgs bounds how many arguments FindAndCallBif will copy into its
// local buffer (§4.3 step 2, §9 "copy-on-call").
const maxBifArgs = 3

// FindAndCallBif implements §4.3's find_and_call_bif end to end: resolve
// the target, load its (possibly register-tagged) arguments into a local
// fixed-size array, invoke, and route the result — storing into dst on
// success, or honoring fail_label as a local branch on exception while
// still surfacing the exception to the caller (§4.3 step 4, §7).
//
// gc, when non-nil, is invoked once and the call retried if the BIF
// fails with the `system_limit` exception a heap-exhausted allocation
// produces — this is the "GC-capable" path §4.3 calls out for length/1,
// generalized to every BIF here rather than special-cased to one,
// since the retry mechanism itself is the same regardless of which BIF
// triggered it.
func FindAndCallBif(vm VM, ctx *runtimectx.Context, proc Process, failLabel term.LTerm, target Target, args []term.LTerm, dst term.LTerm, gc func() error) error {
	fn, resolveExc := Resolve(proc.HeapCap(), vm.AtomTable(), target)
	if resolveExc != nil {
		return routeException(ctx, failLabel, resolveExc)
	}

	if len(args) > maxBifArgs {
		panic("bif: a BIF may receive at most 3 arguments")
	}
	var loaded [maxBifArgs]term.LTerm
	h := proc.HeapCap()
	for i, a := range args {
		loaded[i] = ctx.Load(a, h)
	}
	callArgs := loaded[:len(args)]

	result, exc := fn(vm, proc, callArgs)
	if exc != nil && gc != nil && isSystemLimit(exc) {
		if gcErr := gc(); gcErr == nil {
			result, exc = fn(vm, proc, callArgs)
		}
	}
	if exc != nil {
		return routeException(ctx, failLabel, exc)
	}

	if dst != term.Nil() {
		ctx.StoreValue(result, dst, h)
	}
	return nil
}

func isSystemLimit(exc *Exception) bool {
	return exc.Class == ClassError && exc.Reason == term.MakeAtom(term.AtomSystemLimit)
}

// routeException implements §4.3 step 4's Err(Exception) branch: if
// fail_label is a CP, jump there (suppressing the exception as a local
// branch) but still propagate the error — the interpreter above this
// level is the one that inspects whether ip was redirected.
func routeException(ctx *runtimectx.Context, failLabel term.LTerm, exc *Exception) error {
	if failLabel.IsCP() {
		ctx.Jump(failLabel)
	}
	return exc
}

// invoker adapts a resolved Fn bound to a VM/Process pair into the
// runtimectx.BifInvocation interface CallMFA consumes.
type invoker struct {
	vm   VM
	proc Process
	fn   Fn
}

func (i invoker) Invoke(args []term.LTerm) (term.LTerm, error) {
	v, exc := i.fn(i.vm, i.proc, args)
	if exc != nil {
		return 0, exc
	}
	return v, nil
}

// ForCallMFA adapts a CodeLookup (as a CodeServer would resolve it) into
// the runtimectx.LookupResult that Context.CallMFA expects, binding the
// VM/Process pair a BIF branch would need to invoke against.
func ForCallMFA(vm VM, proc Process, lr CodeLookup) runtimectx.LookupResult {
	if lr.HasCode {
		return runtimectx.LookupResult{HasCode: true, CodeAddr: lr.CodeAddr}
	}
	return runtimectx.LookupResult{Bif: invoker{vm: vm, proc: proc, fn: lr.Fn}}
}
