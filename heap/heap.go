// Package heap defines the process-heap capability the execution core
// consumes but never implements for production use (§1: heap allocator
// internals and garbage collection belong to an external collaborator).
// Addr is a handle assigned by a Heap implementation, not a raw pointer:
// Go's garbage collector does not allow a live object reference to be
// smuggled through a plain integer (see DESIGN.md's `heap` entry), so
// BOXED/CONS terms carry an opaque Addr that only
// the owning Heap knows how to dereference.
package heap

import (
	"errors"
	"fmt"

	"j5.nz/ertgcore/term"
)

// Addr is an opaque per-heap allocation handle. The zero value never
// denotes a live allocation.
type Addr uint64

// ErrHeapFull is returned by Alloc when the heap cannot satisfy a
// request. §7: typically triggers GC and a retry; see AllocWithRetry.
var ErrHeapFull = errors.New("heap: allocation failed, heap is full")

// Heap is the capability a process's boxed/cons constructors and the
// register machine's Y-slots are built on.
type Heap interface {
	// Alloc reserves a fresh allocation sized for `words` machine words
	// and returns a handle to it. The caller (boxed.New*) immediately
	// calls Put to populate it.
	Alloc(words int) (Addr, error)

	// Put stores obj as the payload behind addr. obj is always one of
	// this module's own boxed payload structs or *term.ConsCell.
	Put(addr Addr, obj any)

	// Get retrieves the payload previously stored at addr.
	Get(addr Addr) (any, bool)

	// GetY reads a Y (stack-frame-relative) slot.
	GetY(i int) (term.LTerm, error)

	// SetY writes a Y (stack-frame-relative) slot.
	SetY(i int, v term.LTerm) error

	// FrameSize reports the number of addressable Y slots in the
	// current frame.
	FrameSize() int
}

// ErrYOutOfRange is returned by GetY/SetY for an out-of-bounds index.
type ErrYOutOfRange struct {
	Index, FrameSize int
}

func (e *ErrYOutOfRange) Error() string {
	return fmt.Sprintf("heap: y[%d] out of range (frame size %d)", e.Index, e.FrameSize)
}
