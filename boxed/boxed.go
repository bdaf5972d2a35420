// Package boxed implements the header-prefixed heap objects a BOXED
// term points at: bignums, floats, tuples, binaries, closures, exports,
// and external pid/port/ref (§3.2, §4.5). Every constructor takes a
// heap.Heap capability and returns a term.LTerm; every accessor verifies
// the box-type tag stored in the object's header and returns a typed
// error rather than reinterpreting payload bits.
package boxed

import (
	"fmt"

	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// object is implemented by every payload struct this package stores
// behind a heap.Addr; boxHeader lets generic code (compare, Is) read the
// box-type tag without a type switch over every concrete struct.
type object interface {
	boxHeader() term.LTerm
}

// ErrNotA is returned by an As* accessor when the boxed object behind a
// term does not carry the expected box-type tag — a typed analogue of
// the original's BoxedIsNotABigint / BoxedIsNotAnExport / … family.
type ErrNotA struct {
	Want term.BoxType
	Got  term.BoxType
}

func (e *ErrNotA) Error() string {
	return fmt.Sprintf("boxed: expected %s, got %s", e.Want, e.Got)
}

// ErrDangling is returned when a BOXED term's handle does not resolve to
// any live object in the given heap — a corrupted term or a term read
// against the wrong process's heap.
var ErrDangling = fmt.Errorf("boxed: handle does not resolve to a live object")

func lookup(h heap.Heap, t term.LTerm) (object, error) {
	raw, ok := h.Get(heap.Addr(t.GetBoxHandle()))
	if !ok {
		return nil, ErrDangling
	}
	obj, ok := raw.(object)
	if !ok {
		return nil, ErrDangling
	}
	return obj, nil
}

// Is reports whether t is a BOXED term whose header carries box type bt.
func Is(h heap.Heap, t term.LTerm, bt term.BoxType) bool {
	if !t.IsBoxed() {
		return false
	}
	obj, err := lookup(h, t)
	if err != nil {
		return false
	}
	return obj.boxHeader().HeaderBoxType() == bt
}

// BoxTypeOf returns the box-type tag of a boxed term, for callers (the
// comparator) that need to switch on it directly.
func BoxTypeOf(h heap.Heap, t term.LTerm) (term.BoxType, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return 0, err
	}
	return obj.boxHeader().HeaderBoxType(), nil
}

// IsFun reports whether t is callable as a fun: either a captureless
// Export (erlang:make_fun/3) or a Closure carrying free variables
// (§3.5). is_function/1 in the original accepts either shape.
func IsFun(h heap.Heap, t term.LTerm) bool {
	return Is(h, t, term.BoxExport) || Is(h, t, term.BoxClosure)
}
