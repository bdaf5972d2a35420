package bif

import (
	"j5.nz/ertgcore/compare"
	"j5.nz/ertgcore/term"
)

// cmp runs the two-argument comparator BIFs share, per §8 scenario 2's
// exact/non-exact distinction: ordering operators and ==//= coerce
// across numeric types (exact=false); =:=/=/= do not (exact=true).
func cmp(vm VM, proc Process, args []term.LTerm, exact bool) (int, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	return compare.Cmp(proc.HeapCap(), args[0], args[1], exact, vm.AtomTable()), nil
}

// Less implements erlang:'<'/2.
func Less(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c < 0), nil
}

// Greater implements erlang:'>'/2.
func Greater(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c > 0), nil
}

// LessOrEqual implements erlang:'=<'/2.
func LessOrEqual(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c <= 0), nil
}

// GreaterOrEqual implements erlang:'>='/2.
func GreaterOrEqual(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c >= 0), nil
}

// Equal implements erlang:'=='/2 (non-exact: 1 == 1.0 is true).
func Equal(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c == 0), nil
}

// NotEqual implements erlang:'/='/2.
func NotEqual(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, false)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c != 0), nil
}

// ExactEqual implements erlang:'=:='/2 (exact: 1 =:= 1.0 is false).
func ExactEqual(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, true)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c == 0), nil
}

// ExactNotEqual implements erlang:'=/='/2.
func ExactNotEqual(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	c, exc := cmp(vm, proc, args, true)
	if exc != nil {
		return 0, exc
	}
	return term.MakeBool(c != 0), nil
}
