package term

// IsAtom reports whether t is an ATOM-tagged term.
func (t LTerm) IsAtom() bool { return t.Primary() == TagAtom }

// IsSmall reports whether t is a SMALL-tagged immediate integer.
func (t LTerm) IsSmall() bool { return t.Primary() == TagSmall }

// IsCons reports whether t points at a two-word cons cell.
func (t LTerm) IsCons() bool { return t.Primary() == TagCons }

// IsBoxed reports whether t points at a header-prefixed boxed object.
// Continuation pointers are also BOXED-adjacent in the original encoding
// but are represented here as SPECIAL/CP terms instead (see IsCP), so
// IsBoxed and IsCP are mutually exclusive in this encoding.
func (t LTerm) IsBoxed() bool { return t.Primary() == TagBoxed }

// IsLocalPid reports whether t is a local process identifier.
func (t LTerm) IsLocalPid() bool { return t.Primary() == TagLocalPid }

// IsLocalPort reports whether t is a local port identifier.
func (t LTerm) IsLocalPort() bool { return t.Primary() == TagLocalPort }

// IsHeader reports whether t is a HEADER word. A HEADER must never be
// found anywhere except the first word of a boxed object.
func (t LTerm) IsHeader() bool { return t.Primary() == TagHeader }

// IsSpecial reports whether t is a SPECIAL term (a register reference,
// opcode, catch label, continuation pointer, or one of the fixed
// constants).
func (t LTerm) IsSpecial() bool { return t.Primary() == TagSpecial }

// IsNonValue reports whether t is the distinguished "uninitialized
// register" value.
func (t LTerm) IsNonValue() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialConst && t.GetSpecialValue() == constNonValue
}

// IsValue reports !IsNonValue(t).
func (t LTerm) IsValue() bool { return !t.IsNonValue() }

// IsNil reports whether t is the empty list.
func (t LTerm) IsNil() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialConst && t.GetSpecialValue() == constNil
}

// IsRegX reports whether t is a reference to an X register.
func (t LTerm) IsRegX() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialRegX
}

// IsRegY reports whether t is a reference to a Y (stack) slot.
func (t LTerm) IsRegY() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialRegY
}

// IsRegFP reports whether t is a reference to a float register.
func (t LTerm) IsRegFP() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialRegFP
}

// IsRegister reports whether t is any of RegX, RegY or RegFP. Register
// references must never be stored as a value: §4.2 requires this check
// at every store site.
func (t LTerm) IsRegister() bool { return t.IsRegX() || t.IsRegY() || t.IsRegFP() }

// IsCP reports whether t is a continuation pointer.
func (t LTerm) IsCP() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialCP
}

// IsCatch reports whether t is a catch-frame label.
func (t LTerm) IsCatch() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialCatch
}

// IsOpcode reports whether t is a raw fetched opcode.
func (t LTerm) IsOpcode() bool {
	return t.Primary() == TagSpecial && t.GetSpecialTag() == SpecialOpcode
}

// IsBool reports whether t is the atom true or false.
func (t LTerm) IsBool() bool {
	return t == MakeAtom(AtomTrue) || t == MakeAtom(AtomFalse)
}

// IsList reports whether t is nil or a cons cell — the two shapes a
// proper or improper list tail may take.
func (t LTerm) IsList() bool { return t.IsNil() || t.IsCons() }

// Box-kind predicates (is_binary, is_float, is_big_int, is_tuple,
// is_export, is_fun, is_external_*, is_flat_map, is_hash_map) require
// reading the header word out of a boxed object, which needs a Heap.
// They live in package boxed, which owns that capability; see
// boxed.Is(heap, t, boxType) and boxed.IsFun(heap, t).
