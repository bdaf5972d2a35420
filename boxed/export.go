package boxed

import (
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
)

// Export is the header + MFArity box (§3.5, §4.5). It and Import share
// the same payload shape in the original (Export "mirrors" Import for
// erlang:make_fun/3); this module stores both as Export and lets
// bif.Resolve distinguish "is this resolvable as a BIF" by trying the
// BIF table lookup rather than carrying a separate box type.
type Export struct {
	header term.LTerm
	MFA    mfa.MFA
}

func (e *Export) boxHeader() term.LTerm { return e.header }

// NewExport allocates an export box naming the given callable.
func NewExport(h heap.Heap, m mfa.MFA) (term.LTerm, error) {
	addr, err := h.Alloc(1)
	if err != nil {
		return 0, err
	}
	obj := &Export{header: term.MakeHeader(term.BoxExport, 1), MFA: m}
	h.Put(addr, obj)
	return term.MakeBoxedHandle(uint64(addr)), nil
}

// AsExport recovers the export payload behind t.
func AsExport(h heap.Heap, t term.LTerm) (*Export, error) {
	obj, err := lookup(h, t)
	if err != nil {
		return nil, err
	}
	e, ok := obj.(*Export)
	if !ok {
		return nil, &ErrNotA{Want: term.BoxExport, Got: obj.boxHeader().HeaderBoxType()}
	}
	return e, nil
}
