// Package list implements CONS cell construction and traversal (§3.1,
// §4.1, §4.5). A CONS term's handle addresses a two-word (head, tail)
// cell the same way a BOXED term's handle addresses a header-prefixed
// object in package boxed — except a cons cell carries no header, since
// the CONS primary tag itself is enough to identify it.
package list

import (
	"fmt"

	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// ErrDangling mirrors boxed.ErrDangling for the CONS tag.
var ErrDangling = fmt.Errorf("list: handle does not resolve to a live cons cell")

// Cons allocates a single (head, tail) cell and returns it as a CONS term.
func Cons(h heap.Heap, head, tail term.LTerm) (term.LTerm, error) {
	addr, err := h.Alloc(2)
	if err != nil {
		return 0, err
	}
	h.Put(addr, &term.ConsCell{Head: head, Tail: tail})
	return term.MakeConsHandle(uint64(addr)), nil
}

// Get recovers the cell behind a CONS term.
func Get(h heap.Heap, t term.LTerm) (*term.ConsCell, error) {
	raw, ok := h.Get(heap.Addr(t.GetConsHandle()))
	if !ok {
		return nil, ErrDangling
	}
	cell, ok := raw.(*term.ConsCell)
	if !ok {
		return nil, ErrDangling
	}
	return cell, nil
}

// FromSlice builds a list from elems onto tail, consing right-to-left so
// elems[0] ends up as the head of the result.
func FromSlice(h heap.Heap, elems []term.LTerm, tail term.LTerm) (term.LTerm, error) {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		var err error
		result, err = Cons(h, elems[i], result)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// ToSlice walks a proper or improper list, returning its elements in
// order and the final tail (term.Nil() for a proper list).
func ToSlice(h heap.Heap, t term.LTerm) ([]term.LTerm, term.LTerm, error) {
	var elems []term.LTerm
	for t.IsCons() {
		cell, err := Get(h, t)
		if err != nil {
			return nil, 0, err
		}
		elems = append(elems, cell.Head)
		t = cell.Tail
	}
	return elems, t, nil
}
