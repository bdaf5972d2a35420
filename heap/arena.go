package heap

import "j5.nz/ertgcore/term"

// Arena is a reference Heap implementation: a bump allocator over a
// fixed-capacity object table plus a flat Y-register slice. It exists so
// the rest of this module can be exercised and tested without a real
// garbage collector, exactly as §1 scopes GC/allocator internals to an
// external collaborator — Arena is deliberately not that collaborator,
// it never grows, relocates, or reclaims.
//
// Grounded on the teacher's own bump allocator (tinyrange-rtg's
// VM.alloc/ensureMemory in std/compiler/backend_vm.go), adapted from a
// byte-addressed flat buffer to a handle-addressed object table since
// this core's boxed payloads are typed Go values, not raw bytes.
type Arena struct {
	objects  []any
	cap      int
	yregs    []term.LTerm
	frameLen int
}

// NewArena builds an Arena with room for `capacity` boxed/cons
// allocations and `frameSize` Y-register slots.
func NewArena(capacity, frameSize int) *Arena {
	return &Arena{
		objects:  make([]any, 0, capacity),
		cap:      capacity,
		yregs:    make([]term.LTerm, frameSize),
		frameLen: frameSize,
	}
}

func (a *Arena) Alloc(words int) (Addr, error) {
	if len(a.objects) >= a.cap {
		return 0, ErrHeapFull
	}
	a.objects = append(a.objects, nil)
	// Addr 0 is reserved as "no allocation"; real handles start at 1.
	return Addr(len(a.objects)), nil
}

func (a *Arena) Put(addr Addr, obj any) {
	a.objects[addr-1] = obj
}

func (a *Arena) Get(addr Addr) (any, bool) {
	if addr == 0 || int(addr) > len(a.objects) {
		return nil, false
	}
	return a.objects[addr-1], true
}

func (a *Arena) GetY(i int) (term.LTerm, error) {
	if i < 0 || i >= a.frameLen {
		return term.LTerm(0), &ErrYOutOfRange{Index: i, FrameSize: a.frameLen}
	}
	return a.yregs[i], nil
}

func (a *Arena) SetY(i int, v term.LTerm) error {
	if i < 0 || i >= a.frameLen {
		return &ErrYOutOfRange{Index: i, FrameSize: a.frameLen}
	}
	a.yregs[i] = v
	return nil
}

func (a *Arena) FrameSize() int { return a.frameLen }
