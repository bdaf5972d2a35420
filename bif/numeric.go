package bif

import (
	"math/big"

	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// smallBits is the number of bits a SMALL term's payload carries (64
// total minus the 3-bit primary tag). Arithmetic results outside this
// signed range must be promoted to a BIGINTEGER box instead (§4.5, §8
// scenario 1).
const smallBits = 61

var smallMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), smallBits-1), big.NewInt(1))
var smallMin = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), smallBits-1))

func badarg() *Exception      { return &Exception{Class: ClassError, Reason: term.MakeAtom(term.AtomBadarg)} }
func badarity() *Exception    { return &Exception{Class: ClassError, Reason: term.MakeAtom(term.AtomBadarity)} }
func systemLimit() *Exception { return &Exception{Class: ClassError, Reason: term.MakeAtom(term.AtomSystemLimit)} }

// assertArity implements §8's "every invocation with args.len() ≠
// declared arity fails with badarity before the BIF body runs".
func assertArity(args []term.LTerm, n int) *Exception {
	if len(args) != n {
		return badarity()
	}
	return nil
}

func isFloatTerm(h heap.Heap, t term.LTerm) bool {
	if !t.IsBoxed() {
		return false
	}
	bt, err := boxed.BoxTypeOf(h, t)
	return err == nil && bt == term.BoxFloat
}

func isNumeric(h heap.Heap, t term.LTerm) bool {
	if t.IsSmall() {
		return true
	}
	if !t.IsBoxed() {
		return false
	}
	bt, err := boxed.BoxTypeOf(h, t)
	return err == nil && (bt == term.BoxBigInteger || bt == term.BoxFloat)
}

func asFloat(h heap.Heap, t term.LTerm) (float64, bool) {
	if t.IsSmall() {
		return float64(t.GetSmallSigned()), true
	}
	if fl, err := boxed.AsFloat(h, t); err == nil {
		return fl.Value, true
	}
	if bi, err := boxed.AsBigInt(h, t); err == nil {
		f := new(big.Float).SetInt(bi.Value)
		v, _ := f.Float64()
		return v, true
	}
	return 0, false
}

func asBig(h heap.Heap, t term.LTerm) (*big.Int, bool) {
	if t.IsSmall() {
		return big.NewInt(t.GetSmallSigned()), true
	}
	if bi, err := boxed.AsBigInt(h, t); err == nil {
		return bi.Value, true
	}
	return nil, false
}

// fromBig demotes a computed integer back to SMALL when it fits,
// otherwise allocates a BIGINTEGER box (§4.5, §8 scenario 1: "promotes
// to a bignum whose cmp_terms with [the exact value] is Equal").
func fromBig(h heap.Heap, v *big.Int) (term.LTerm, *Exception) {
	if v.Cmp(smallMin) >= 0 && v.Cmp(smallMax) <= 0 {
		return term.MakeSmall(v.Int64()), nil
	}
	t, err := boxed.NewBigInt(h, v)
	if err != nil {
		return 0, systemLimit()
	}
	return t, nil
}

// numericBinOp implements the shared promotion rule behind erlang's
// +/2, -/2 and */2: a float operand forces float64 arithmetic; otherwise
// the operands are treated as arbitrary-precision integers and the
// result is demoted to SMALL when it fits.
func numericBinOp(h heap.Heap, a, b term.LTerm, intOp func(x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) (term.LTerm, *Exception) {
	if !isNumeric(h, a) || !isNumeric(h, b) {
		return 0, badarg()
	}
	if isFloatTerm(h, a) || isFloatTerm(h, b) {
		x, _ := asFloat(h, a)
		y, _ := asFloat(h, b)
		t, err := boxed.NewFloat(h, floatOp(x, y))
		if err != nil {
			return 0, systemLimit()
		}
		return t, nil
	}
	x, _ := asBig(h, a)
	y, _ := asBig(h, b)
	return fromBig(h, intOp(x, y))
}
