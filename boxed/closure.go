package boxed

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// Closure is the header + (module, index, uniq, num_free, free_vars[])
// box for a fun capturing free variables (§4.5). erlang:make_fun/3 takes
// only a bare (module, function, arity) triple with nothing to capture,
// so it builds an Export instead (see bif.MakeFun); Closure backs the
// richer fun literals a loader would emit, which this core does not load.
type Closure struct {
	header   term.LTerm
	Module   uint32
	Index    uint32
	Uniq     uint32
	FreeVars []term.LTerm
}

func (c *Closure) boxHeader() term.LTerm { return c.header }

// NewClosure allocates a closure box over the given free variables.
func NewClosure(h heap.Heap, module, index, uniq uint32, free []term.LTerm) (term.LTerm, error) {
	addr, err := h.Alloc(len(free) + 4)
	if err != nil {
		return 0, err
	}
	cp := make([]term.LTerm, len(free))
	copy(cp, free)
	obj := &Closure{
		header:   term.MakeHeader(term.BoxClosure, uint32(len(free))),
		Module:   module,
		Index:    index,
		Uniq:     uniq,
		FreeVars: cp,
	}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsClosure recovers the closure payload behind t.
func AsClosure(h heap.Heap, t term.LTerm) (*Closure, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	c, ok := obj.(*Closure)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxClosure, Got: obj.boxHeader().HeaderBoxType()}
	}
	return c, nil
}
