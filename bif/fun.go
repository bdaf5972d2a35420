package bif

import (
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
)

// MakeFun implements erlang:make_fun/3: builds a captureless export fun
// naming (module, function, arity). An Export box is the right shape
// for this (header + MFArity, §3.5) — there are no free variables to
// capture, so this does not allocate a Closure (see boxed/closure.go).
func MakeFun(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 3); exc != nil {
		return 0, exc
	}
	if !args[0].IsAtom() || !args[1].IsAtom() || !args[2].IsSmall() {
		return 0, badarg()
	}
	m := mfa.MFA{Module: args[0], Function: args[1], Arity: int(args[2].GetSmallSigned())}
	t, err := boxed.NewExport(proc.HeapCap(), m)
	if err != nil {
		return 0, systemLimit()
	}
	return t, nil
}
