package boxed

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// Tuple is the header-encodes-arity box: the header's arity field is
// the tuple arity and `arity` words follow (§3.2, §4.5).
type Tuple struct {
	header term.LTerm
	Elems  []term.LTerm
}

func (tu *Tuple) boxHeader() term.LTerm { return tu.header }

// NewTuple allocates a tuple box holding elems. A zero-length tuple
// should use term.EmptyTuple() instead — it is a fixed constant, not a
// heap allocation (§3.1).
func NewTuple(h heap.Heap, elems []term.LTerm) (term.LTerm, error) {
	addr, err := h.Alloc(len(elems) + 1)
	if err != nil {
		return 0, err
	}
	cp := make([]term.LTerm, len(elems))
	copy(cp, elems)
	obj := &Tuple{header: term.MakeHeader(term.BoxTuple, uint32(len(elems))), Elems: cp}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsTuple recovers the tuple payload behind t.
func AsTuple(h heap.Heap, t term.LTerm) (*Tuple, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	tu, ok := obj.(*Tuple)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxTuple, Got: obj.boxHeader().HeaderBoxType()}
	}
	return tu, nil
}

// Arity returns the tuple's element count as declared by its header.
func (tu *Tuple) Arity() int { return int(tu.header.HeaderArity()) }
