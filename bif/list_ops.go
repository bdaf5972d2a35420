package bif

import (
	"math/big"

	"j5.nz/ertgcore/compare"
	"j5.nz/ertgcore/list"
	"j5.nz/ertgcore/term"
)

// Hd implements erlang:hd/1.
func Hd(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	if !args[0].IsCons() {
		return 0, badarg()
	}
	cell, err := list.Get(proc.HeapCap(), args[0])
	if err != nil {
		return 0, badarg()
	}
	return cell.Head, nil
}

// Tl implements erlang:tl/1.
func Tl(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	if !args[0].IsCons() {
		return 0, badarg()
	}
	cell, err := list.Get(proc.HeapCap(), args[0])
	if err != nil {
		return 0, badarg()
	}
	return cell.Tail, nil
}

// Concat implements erlang:'++'/2: appends a proper list onto args[1].
func Concat(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	h := proc.HeapCap()
	elems, tail, err := list.ToSlice(h, args[0])
	if err != nil || !tail.IsNil() {
		return 0, badarg()
	}
	result, err := list.FromSlice(h, elems, args[1])
	if err != nil {
		return 0, systemLimit()
	}
	return result, nil
}

// Length implements erlang:length/1. A list long enough that its length
// no longer fits a SMALL promotes the count to a BIGINTEGER box, the one
// allocation on this path — giving this BIF a genuine use for the gc
// retry hook FindAndCallBif offers (§4.3: "length/1 ... GC-capable").
func Length(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	h := proc.HeapCap()
	n := big.NewInt(0)
	one := big.NewInt(1)
	l := args[0]
	for l.IsCons() {
		cell, err := list.Get(h, l)
		if err != nil {
			return 0, badarg()
		}
		n.Add(n, one)
		l = cell.Tail
	}
	if !l.IsNil() {
		return 0, badarg()
	}
	return fromBig(h, n)
}

// ListsMember implements lists:member/2.
func ListsMember(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	h := proc.HeapCap()
	needle, l := args[0], args[1]
	for l.IsCons() {
		cell, err := list.Get(h, l)
		if err != nil {
			return 0, badarg()
		}
		if compare.Cmp(h, needle, cell.Head, true, vm.AtomTable()) == 0 {
			return term.MakeBool(true), nil
		}
		l = cell.Tail
	}
	return term.MakeBool(false), nil
}
