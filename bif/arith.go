package bif

import (
	"math/big"

	"j5.nz/ertgcore/term"
)

// Add implements erlang:'+'/2.
func Add(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	return numericBinOp(proc.HeapCap(), args[0], args[1],
		func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) },
		func(x, y float64) float64 { return x + y })
}

// Sub implements erlang:'-'/2.
func Sub(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	return numericBinOp(proc.HeapCap(), args[0], args[1],
		func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) },
		func(x, y float64) float64 { return x - y })
}

// Mul implements erlang:'*'/2.
func Mul(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 2); exc != nil {
		return 0, exc
	}
	return numericBinOp(proc.HeapCap(), args[0], args[1],
		func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) },
		func(x, y float64) float64 { return x * y })
}
