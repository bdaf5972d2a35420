package compare

import (
	"math/big"

	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

func isFloatTerm(h heap.Heap, t term.LTerm) bool {
	if !t.IsBoxed() {
		return false
	}
	bt, err := boxed.BoxTypeOf(h, t)
	return err == nil && bt == term.BoxFloat
}

// isNumericTerm reports whether t is a SMALL or a boxed FLOAT/BIGINTEGER
// — the three representations step's numeric pre-check must recognize
// regardless of which primary tag each side carries, since a SMALL and
// a boxed FLOAT never share a primary tag but must still compare as
// numbers (§4.4, §8 scenario 1).
func isNumericTerm(h heap.Heap, t term.LTerm) bool {
	if t.IsSmall() {
		return true
	}
	if !t.IsBoxed() {
		return false
	}
	bt, err := boxed.BoxTypeOf(h, t)
	return err == nil && (bt == term.BoxFloat || bt == term.BoxBigInteger)
}

func floatOf(h heap.Heap, t term.LTerm) (float64, bool) {
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

func bigOf(h heap.Heap, t term.LTerm) (*big.Int, bool) {
	if t.IsSmall() {
		return big.NewInt(t.GetSmallSigned()), true
	}
	if bi, err := boxed.AsBigInt(h, t); err == nil {
		return bi.Value, true
	}
	return nil, false
}

// cmpF64Naive compares two floats assuming neither is NaN or
// infinite — the caller is responsible for rejecting those before a
// value ever reaches Cmp (§9 Open Question: carried, not re-solved
// here).
func cmpF64Naive(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpNumbers compares two numeric terms (SMALL, BIGINTEGER, or FLOAT, in
// any combination of representations) under both comparison modes
// (§4.4, §8 scenario 1).
//
// Non-exact (`==`, `<`, …) coerces freely: value alone decides, so
// `1 == 1.0` is Equal.
//
// Exact (`=:=`, `=/=`) still orders by value first, but a value tie
// between two different representations is not Equal — Erlang's
// standard order of terms says a float compares less than an
// integer of the same value, so `1 =:= 1.0` resolves to "integer
// greater than float" rather than falling through to class order
// (which would wrongly report them Equal, since both are numbers).
func cmpNumbers(h heap.Heap, a, b term.LTerm, exact bool) int {
	aFloat, bFloat := isFloatTerm(h, a), isFloatTerm(h, b)
	sameRepr := aFloat == bFloat
	if !exact || sameRepr {
		if aFloat || bFloat {
			af, _ := floatOf(h, a)
			bf, _ := floatOf(h, b)
			return cmpF64Naive(af, bf)
		}
		ab, _ := bigOf(h, a)
		bb, _ := bigOf(h, b)
		return ab.Cmp(bb)
	}

	af, _ := floatOf(h, a)
	bf, _ := floatOf(h, b)
	if c := cmpF64Naive(af, bf); c != 0 {
		return c
	}
	if aFloat {
		return -1
	}
	return 1
}
