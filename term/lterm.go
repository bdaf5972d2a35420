// Package term implements the tagged-word value representation shared by
// every process in the runtime: a single machine word (LTerm) whose low
// bits discriminate a primary tag, with the remaining bits carrying either
// an immediate value or a handle into a process heap.
//
// LTerm intentionally stays a plain uint64 newtype rather than a tagged
// union (interface{} or a struct-with-kind). A sum type would double the
// memory footprint of every register and cons cell and would force an
// interface dispatch on every term touched by the interpreter's hot path.
// All bit manipulation is centralized in this file, accessors.go and
// header.go; no
// other package should construct an LTerm by hand.
package term

import "fmt"

// LTerm is a single tagged machine word. The zero value is not a valid
// term (see NonValue for the canonical "no value" word).
type LTerm uint64

// Primary tag occupies the low primaryTagBits bits of every LTerm.
const (
	primaryTagBits = 3
	primaryTagMask = (1 << primaryTagBits) - 1
)

// Primary holds one of the eight primary tag values below.
type Primary uint8

const (
	TagBoxed Primary = iota
	TagCons
	TagSmall
	TagAtom
	TagLocalPid
	TagLocalPort
	TagHeader
	TagSpecial
)

func (p Primary) String() string {
	switch p {
	case TagBoxed:
		return "BOXED"
	case TagCons:
		return "CONS"
	case TagSmall:
		return "SMALL"
	case TagAtom:
		return "ATOM"
	case TagLocalPid:
		return "LOCALPID"
	case TagLocalPort:
		return "LOCALPORT"
	case TagHeader:
		return "HEADER"
	case TagSpecial:
		return "SPECIAL"
	default:
		return fmt.Sprintf("Primary(%d)", uint8(p))
	}
}

// Primary returns the primary tag of t. Decoding is total: every bit
// pattern maps to exactly one of the eight values above.
func (t LTerm) Primary() Primary {
	return Primary(uint64(t) & primaryTagMask)
}

func (t LTerm) payload() uint64 {
	return uint64(t) >> primaryTagBits
}

func withTag(p Primary, payload uint64) LTerm {
	return LTerm((payload << primaryTagBits) | uint64(p))
}

// SpecialTag occupies the 3 bits directly above the primary tag when
// Primary() == TagSpecial.
const (
	specialTagBits  = 3
	specialTagShift = primaryTagBits
	specialTagMask  = (1 << specialTagBits) - 1
)

// SpecialTag distinguishes operand-reference terms (registers, opcodes,
// continuation pointers) from ordinary constant terms.
type SpecialTag uint8

const (
	SpecialConst SpecialTag = iota
	SpecialRegX
	SpecialRegY
	SpecialRegFP
	SpecialOpcode
	SpecialCatch
	SpecialCP
)

func (s SpecialTag) String() string {
	switch s {
	case SpecialConst:
		return "CONST"
	case SpecialRegX:
		return "REGX"
	case SpecialRegY:
		return "REGY"
	case SpecialRegFP:
		return "REGFP"
	case SpecialOpcode:
		return "OPCODE"
	case SpecialCatch:
		return "CATCH"
	case SpecialCP:
		return "CP"
	default:
		return fmt.Sprintf("SpecialTag(%d)", uint8(s))
	}
}

// Fixed CONST sub-values distinguishing nil, non-value, empty tuple and
// empty binary. These are raw-word constants: equality to them never
// touches a heap.
const (
	constNil uint64 = iota
	constNonValue
	constEmptyTuple
	constEmptyBinary
)

func makeSpecial(tag SpecialTag, value uint64) LTerm {
	return withTag(TagSpecial, (value<<specialTagBits)|uint64(tag))
}

// GetSpecialTag returns the sub-tag of a SPECIAL term. Panics if t is not
// primary-tagged SPECIAL.
func (t LTerm) GetSpecialTag() SpecialTag {
	if t.Primary() != TagSpecial {
		panic(fmt.Sprintf("term: GetSpecialTag on non-special term %s", t))
	}
	return SpecialTag(t.payload() & specialTagMask)
}

// GetSpecialValue returns the payload carried above the special sub-tag
// (a register index, opcode value, or constant discriminator).
func (t LTerm) GetSpecialValue() uint64 {
	if t.Primary() != TagSpecial {
		panic(fmt.Sprintf("term: GetSpecialValue on non-special term %s", t))
	}
	return t.payload() >> specialTagBits
}

// --- Constructors ---------------------------------------------------------

// Nil is the empty list constant `[]`.
func Nil() LTerm { return makeSpecial(SpecialConst, constNil) }

// NonValue is the value that a freshly-created register holds before
// anything is stored into it. It is distinct from Nil so that
// "uninitialized" and "empty list" are never confused.
func NonValue() LTerm { return makeSpecial(SpecialConst, constNonValue) }

// EmptyTuple is the zero-arity tuple constant `{}`.
func EmptyTuple() LTerm { return makeSpecial(SpecialConst, constEmptyTuple) }

// EmptyBinary is the zero-length binary constant `<<>>`.
func EmptyBinary() LTerm { return makeSpecial(SpecialConst, constEmptyBinary) }

// MakeAtom wraps an index into the global atom table.
func MakeAtom(index uint32) LTerm { return withTag(TagAtom, uint64(index)) }

// MakeSmall wraps a signed integer that fits in the available payload
// bits. Values outside that range belong in a bignum box instead.
func MakeSmall(v int64) LTerm { return withTag(TagSmall, uint64(v)&((1<<(64-primaryTagBits))-1)) }

// MakeConsHandle wraps a heap-assigned handle to a two-word (head, tail)
// cell.
func MakeConsHandle(h uint64) LTerm { return withTag(TagCons, h) }

// MakeBoxedHandle wraps a heap-assigned handle to a header-prefixed
// boxed object.
func MakeBoxedHandle(h uint64) LTerm { return withTag(TagBoxed, h) }

// MakeLocalPid wraps a locally-scheduled process identifier.
func MakeLocalPid(id uint32) LTerm { return withTag(TagLocalPid, uint64(id)) }

// MakeLocalPort wraps a locally-owned port identifier.
func MakeLocalPort(id uint32) LTerm { return withTag(TagLocalPort, uint64(id)) }

// MakeCP wraps a continuation pointer: a single-slot return address.
// cp.IsCP() holds for the result.
func MakeCP(addr uint32) LTerm { return makeSpecial(SpecialCP, uint64(addr)) }

// MakeRegX wraps a source/destination reference to X register i.
func MakeRegX(i uint16) LTerm { return makeSpecial(SpecialRegX, uint64(i)) }

// MakeRegY wraps a source/destination reference to Y (stack) slot i.
func MakeRegY(i uint16) LTerm { return makeSpecial(SpecialRegY, uint64(i)) }

// MakeRegFP wraps a source/destination reference to float register i.
func MakeRegFP(i uint16) LTerm { return makeSpecial(SpecialRegFP, uint64(i)) }

// MakeOpcode wraps a raw opcode value fetched from the instruction stream.
func MakeOpcode(op uint32) LTerm { return makeSpecial(SpecialOpcode, uint64(op)) }

// MakeCatch wraps a catch-frame label.
func MakeCatch(label uint32) LTerm { return makeSpecial(SpecialCatch, uint64(label)) }

// MakeBool returns the atom `true` or `false`. AtomTrue/AtomFalse are
// fixed, well-known atom indices reserved by the atom table bootstrap.
func MakeBool(v bool) LTerm {
	if v {
		return MakeAtom(AtomTrue)
	}
	return MakeAtom(AtomFalse)
}

// Well-known atom indices every atom table must reserve at exactly these
// slots before any user code is loaded. AtomTable implementations are an
// external collaborator (§6); this core only relies on the contract that
// these indices exist and name the atoms below. Beyond true/false (which
// the original spec names directly), this core reserves a handful more:
// exception-reason atoms the bif package must be able to produce without
// ever calling Intern, since the AtomTable capability this core consumes
// (§6) only exposes Lookup, not interning — that is the loader's job, and
// the loader is an external collaborator this core does not implement.
const (
	AtomTrue        uint32 = 0
	AtomFalse       uint32 = 1
	AtomBadarg      uint32 = 2
	AtomBadarity    uint32 = 3
	AtomBadfun      uint32 = 4
	AtomUndef       uint32 = 5
	AtomSystemLimit uint32 = 6
)

func (t LTerm) String() string {
	switch t.Primary() {
	case TagSmall:
		return fmt.Sprintf("%d", t.GetSmallSigned())
	case TagAtom:
		return fmt.Sprintf("Atom(%d)", t.GetAtomIndex())
	case TagCons:
		return fmt.Sprintf("Cons(%d)", t.payload())
	case TagBoxed:
		return fmt.Sprintf("Boxed(%d)", t.payload())
	case TagLocalPid:
		return fmt.Sprintf("LocalPid(%d)", t.payload())
	case TagLocalPort:
		return fmt.Sprintf("LocalPort(%d)", t.payload())
	case TagHeader:
		return fmt.Sprintf("Header(type=%d,arity=%d)", t.headerBoxType(), t.headerArity())
	case TagSpecial:
		switch t.GetSpecialTag() {
		case SpecialConst:
			switch t.GetSpecialValue() {
			case constNil:
				return "[]"
			case constNonValue:
				return "NON_VALUE"
			case constEmptyTuple:
				return "{}"
			case constEmptyBinary:
				return "<<>>"
			}
		case SpecialRegX:
			return fmt.Sprintf("X%d", t.GetSpecialValue())
		case SpecialRegY:
			return fmt.Sprintf("Y%d", t.GetSpecialValue())
		case SpecialRegFP:
			return fmt.Sprintf("FP%d", t.GetSpecialValue())
		case SpecialCP:
			return fmt.Sprintf("CP(%d)", t.GetSpecialValue())
		case SpecialOpcode:
			return fmt.Sprintf("Opcode(%d)", t.GetSpecialValue())
		case SpecialCatch:
			return fmt.Sprintf("Catch(%d)", t.GetSpecialValue())
		}
	}
	return fmt.Sprintf("LTerm(0x%x)", uint64(t))
}
