package term

import "fmt"

// ErrWrongTag is the panic value (carrying the offending term and the
// expected tag) when a primary-tag accessor is used against a term of the
// wrong primary tag. Accessors panic rather than return this error because a
// mistagged accessor call is always an interpreter bug or a corrupted
// term, never a recoverable runtime condition (§7 "Fatal").
type ErrWrongTag struct {
	Term     LTerm
	Expected Primary
}

func (e *ErrWrongTag) Error() string {
	return fmt.Sprintf("term: expected %s, got %s (%s)", e.Expected, e.Term.Primary(), e.Term)
}

func expect(t LTerm, want Primary) {
	if t.Primary() != want {
		panic(&ErrWrongTag{Term: t, Expected: want})
	}
}

// signExtend sign-extends a SMALL payload back to a full int64 once the
// primary tag bits have been stripped off.
func signExtend(payload uint64) int64 {
	const bits = 64 - primaryTagBits
	shift := uint(64 - bits)
	return int64(payload<<shift) >> shift
}

// GetSmallSigned returns the signed integer carried by a SMALL term.
func (t LTerm) GetSmallSigned() int64 {
	expect(t, TagSmall)
	return signExtend(t.payload())
}

// GetAtomIndex returns the atom table index carried by an ATOM term.
func (t LTerm) GetAtomIndex() uint32 {
	expect(t, TagAtom)
	return uint32(t.payload())
}

// GetConsHandle returns the heap handle carried by a CONS term.
func (t LTerm) GetConsHandle() uint64 {
	expect(t, TagCons)
	return t.payload()
}

// GetBoxHandle returns the heap handle carried by a BOXED term.
func (t LTerm) GetBoxHandle() uint64 {
	expect(t, TagBoxed)
	return t.payload()
}

// GetCPAddr returns the code address carried by a continuation-pointer
// term. Panics if t is not a CP (the loader and jump/set_cp are the only
// code permitted to construct or consume these).
func (t LTerm) GetCPAddr() uint32 {
	if !t.IsCP() {
		panic(fmt.Sprintf("term: GetCPAddr on non-CP term %s", t))
	}
	return uint32(t.GetSpecialValue())
}

// GetLocalPidID returns the raw identifier of a local pid term.
func (t LTerm) GetLocalPidID() uint32 {
	expect(t, TagLocalPid)
	return uint32(t.payload())
}

// GetLocalPortID returns the raw identifier of a local port term.
func (t LTerm) GetLocalPortID() uint32 {
	expect(t, TagLocalPort)
	return uint32(t.payload())
}

// RegisterIndex returns the index carried by a RegX/RegY/RegFP term.
// Panics if t is not a register reference.
func (t LTerm) RegisterIndex() uint16 {
	if !t.IsRegister() {
		panic(fmt.Sprintf("term: RegisterIndex on non-register term %s", t))
	}
	return uint16(t.GetSpecialValue())
}

// Raw returns the bit pattern of t. Used only for raw-word equality
// against the fixed CONST terms (Nil, EmptyTuple, EmptyBinary) and by
// the comparator's local-pid/local-port fast paths.
func (t LTerm) Raw() uint64 { return uint64(t) }
