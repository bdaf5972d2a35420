package boxed

import (
	"github.com/google/uuid"

	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// External is the shared payload shape of external pid/port/ref boxes:
// header + node term + id words (§3.2, §4.5). The "node term" is
// represented as a uuid.UUID identifying the owning node, rather than
// an opaque atom/creation pair, so that this in-process core can assign
// a stable, comparable node identity (see vmcore.VM.Node) without
// needing anything from the distribution transport, which is out of
// scope (§1).
type External struct {
	header term.LTerm
	Kind   term.BoxType // BoxExternalPid | BoxExternalPort | BoxExternalRef
	Node   uuid.UUID
	ID     [3]uint32
}

func (e *External) boxHeader() term.LTerm { return e.header }

func newExternal(h heap.Heap, kind term.BoxType, node uuid.UUID, id [3]uint32) (term.LTerm, error) {
	addr, err := h.Alloc(1)
	if err != nil {
		return 0, err
	}
	obj := &External{header: term.MakeHeader(kind, 1), Kind: kind, Node: node, ID: id}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// NewExternalPid allocates an external pid box for a process owned by
// the given node.
func NewExternalPid(h heap.Heap, node uuid.UUID, id [3]uint32) (term.LTerm, error) {
	return newExternal(h, term.BoxExternalPid, node, id)
}

// NewExternalPort allocates an external port box.
func NewExternalPort(h heap.Heap, node uuid.UUID, id [3]uint32) (term.LTerm, error) {
	return newExternal(h, term.BoxExternalPort, node, id)
}

// NewExternalRef allocates an external reference box.
func NewExternalRef(h heap.Heap, node uuid.UUID, id [3]uint32) (term.LTerm, error) {
	return newExternal(h, term.BoxExternalRef, node, id)
}

// AsExternal recovers the payload behind an external pid/port/ref term,
// verifying its header matches one of the three external box types.
func AsExternal(h heap.Heap, t term.LTerm) (*External, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	e, ok := obj.(*External)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxExternalPid, Got: obj.boxHeader().HeaderBoxType()}
	}
	return e, nil
}
