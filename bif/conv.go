package bif

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/list"
	"j5.nz/ertgcore/term"
)

func stringToCharList(h heap.Heap, s string) (term.LTerm, *Exception) {
	elems := make([]term.LTerm, len(s))
	for i := 0; i < len(s); i++ {
		elems[i] = term.MakeSmall(int64(s[i]))
	}
	t, err := list.FromSlice(h, elems, term.Nil())
	if err != nil {
		return 0, systemLimit()
	}
	return t, nil
}

// AtomToList implements erlang:atom_to_list/1.
func AtomToList(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	if !args[0].IsAtom() {
		return 0, badarg()
	}
	entry, err := vm.AtomTable().Lookup(args[0])
	if err != nil {
		return 0, badarg()
	}
	return stringToCharList(proc.HeapCap(), string(entry.Name))
}

// IntegerToList implements erlang:integer_to_list/1.
func IntegerToList(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	h := proc.HeapCap()
	v, ok := asBig(h, args[0])
	if !ok {
		return 0, badarg()
	}
	return stringToCharList(h, v.String())
}
