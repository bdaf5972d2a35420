package boxed

import (
	"math/big"

	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// BigInt is the arbitrary-precision integer box. Grounded on the
// original's Bignum, which stores a num::bigint::BigInt payload behind
// a BOXTYPETAG_BIGINTEGER header; math/big.Int is the standard-library
// equivalent and needs no third-party dependency (see DESIGN.md).
type BigInt struct {
	header term.LTerm
	Value  *big.Int
}

func (b *BigInt) boxHeader() term.LTerm { return b.header }

// NewBigInt allocates a bignum box holding v.
func NewBigInt(h heap.Heap, v *big.Int) (term.LTerm, error) {
	addr, err := h.Alloc(1)
	if err != nil {
		return 0, err
	}
	obj := &BigInt{header: term.MakeHeader(term.BoxBigInteger, 1), Value: new(big.Int).Set(v)}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsBigInt recovers the bignum payload behind t, or ErrNotA if t's
// header does not carry BoxBigInteger.
func AsBigInt(h heap.Heap, t term.LTerm) (*BigInt, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*BigInt)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxBigInteger, Got: obj.boxHeader().HeaderBoxType()}
	}
	return b, nil
}
