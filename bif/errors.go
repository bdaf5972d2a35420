package bif

import (
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/term"
)

// Error1 implements erlang:error/1: Exception(Error, args[0]) verbatim
// (§4.3, §8).
func Error1(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	return 0, &Exception{Class: ClassError, Reason: args[0]}
}

// Error2 implements erlang:error/2: Exception(Error, {args[0], args[1]})
// with the reason allocated as a 2-tuple on the process heap (§4.3, §8).
func Error2(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	tup, err := boxed.NewTuple(proc.HeapCap(), []term.LTerm{args[0], args[1]})
	if err != nil {
		return 0, systemLimit()
	}
	return 0, &Exception{Class: ClassError, Reason: tup}
}

// badfunOf builds the badfun(args) reason §4.3 specifies for nif_error,
// read literally as a tagged tuple {badfun, args...} — §9 flags this as
// possibly not matching reference module/function reporting; implemented
// as specified, not guessed beyond it (see DESIGN.md).
func badfunOf(proc Process, args []term.LTerm) *Exception {
	elems := append([]term.LTerm{term.MakeAtom(term.AtomBadfun)}, args...)
	tup, err := boxed.NewTuple(proc.HeapCap(), elems)
	if err != nil {
		return systemLimit()
	}
	return &Exception{Class: ClassError, Reason: tup}
}

// NifError1 implements erlang:nif_error/1.
func NifError1(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	return 0, badfunOf(proc, args)
}

// NifError2 implements erlang:nif_error/2.
func NifError2(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	return 0, badfunOf(proc, args)
}
