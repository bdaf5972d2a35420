package term

import "fmt"

// BoxType enumerates the box-type tag embedded in a HEADER word. A HEADER
// term is only ever valid sitting at the start of a boxed object; it must
// never be read back out of a register or compared as a value (§3.1).
type BoxType uint8

const (
	BoxTuple BoxType = iota
	BoxBigInteger
	BoxFloat
	BoxBinary
	BoxClosure
	BoxExport
	BoxExternalPid
	BoxExternalPort
	BoxExternalRef
)

func (b BoxType) String() string {
	switch b {
	case BoxTuple:
		return "TUPLE"
	case BoxBigInteger:
		return "BIGINTEGER"
	case BoxFloat:
		return "FLOAT"
	case BoxBinary:
		return "BINARY"
	case BoxClosure:
		return "CLOSURE"
	case BoxExport:
		return "EXPORT"
	case BoxExternalPid:
		return "EXTERNALPID"
	case BoxExternalPort:
		return "EXTERNALPORT"
	case BoxExternalRef:
		return "EXTERNALREF"
	default:
		return fmt.Sprintf("BoxType(%d)", uint8(b))
	}
}

const (
	boxTypeBits  = 4
	boxTypeShift = primaryTagBits
	boxTypeMask  = (1 << boxTypeBits) - 1
)

// MakeHeader builds a HEADER word encoding a box-type tag and a payload
// arity (the number of typed words that follow the header).
func MakeHeader(bt BoxType, arity uint32) LTerm {
	payload := (uint64(arity) << boxTypeBits) | uint64(bt)
	return withTag(TagHeader, payload)
}

func (t LTerm) headerBoxType() BoxType {
	return BoxType(t.payload() & boxTypeMask)
}

func (t LTerm) headerArity() uint32 {
	return uint32(t.payload() >> boxTypeBits)
}

// HeaderBoxType returns the box-type tag of a HEADER term. Panics if t is
// not primary-tagged HEADER.
func (t LTerm) HeaderBoxType() BoxType {
	if t.Primary() != TagHeader {
		panic(fmt.Sprintf("term: HeaderBoxType on non-header term %s", t))
	}
	return t.headerBoxType()
}

// HeaderArity returns the declared payload arity of a HEADER term.
func (t LTerm) HeaderArity() uint32 {
	if t.Primary() != TagHeader {
		panic(fmt.Sprintf("term: HeaderArity on non-header term %s", t))
	}
	return t.headerArity()
}
