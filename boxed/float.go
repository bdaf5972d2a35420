package boxed

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// Float is the header + 64-bit IEEE-754 box (§4.5).
type Float struct {
	header term.LTerm
	Value  float64
}

func (f *Float) boxHeader() term.LTerm { return f.header }

// NewFloat allocates a float box holding v.
func NewFloat(h heap.Heap, v float64) (term.LTerm, error) {
	addr, err := h.Alloc(1)
	if err != nil {
		return 0, err
	}
	obj := &Float{header: term.MakeHeader(term.BoxFloat, 1), Value: v}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsFloat recovers the float payload behind t.
func AsFloat(h heap.Heap, t term.LTerm) (*Float, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	fl, ok := obj.(*Float)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxFloat, Got: obj.boxHeader().HeaderBoxType()}
	}
	return fl, nil
}
