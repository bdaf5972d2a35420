package boxed

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// Binary is the heap-resident binary sub-kind. §4.5 notes that refc/
// procbin sub-kinds exist but are "not detailed here"; this core only
// needs the plain heap-binary shape to make binary-typed BIFs and the
// comparator's binary branch exercisable.
type Binary struct {
	header term.LTerm
	Data   []byte
}

func (b *Binary) boxHeader() term.LTerm { return b.header }

// NewBinary allocates a binary box holding a copy of data. A
// zero-length binary should use term.EmptyBinary() instead (§3.1).
func NewBinary(h heap.Heap, data []byte) (term.LTerm, error) {
	words := (len(data) + 7) / 8
	addr, err := h.Alloc(words + 1)
	if err != nil {
		return 0, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	obj := &Binary{header: term.MakeHeader(term.BoxBinary, uint32(words)), Data: cp}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsBinary recovers the binary payload behind t.
func AsBinary(h heap.Heap, t term.LTerm) (*Binary, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*Binary)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxBinary, Got: obj.boxHeader().HeaderBoxType()}
	}
	return b, nil
}
