package compare

import (
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// termClass is a total order over term classes, used only once two
// terms' primary tags (or, for boxes, box types) differ and no
// promotion rule applies. Mirrors the standard Erlang term order:
// number < atom < reference < fun < port < pid < tuple < nil < list <
// binary. Maps are omitted — this core's boxed package implements no
// map box type (see DESIGN.md).
type termClass int

const (
	classNumber termClass = iota
	classAtom
	classRef
	classFun
	classPort
	classPid
	classTuple
	classNil
	classList
	classBinary
)

// classifyTerm assigns t its term class. h is only consulted for BOXED
// terms, to read the header's box type.
func classifyTerm(h heap.Heap, t term.LTerm) termClass {
	switch {
	case t.IsSmall():
		return classNumber
	case t.IsAtom():
		return classAtom
	case t.IsLocalPort():
		return classPort
	case t.IsLocalPid():
		return classPid
	case t.IsNil():
		return classNil
	case t.IsCons():
		return classList
	case t.IsBoxed():
		bt, err := boxed.BoxTypeOf(h, t)
		if err != nil {
			return classNumber
		}
		switch bt {
		case term.BoxBigInteger, term.BoxFloat:
			return classNumber
		case term.BoxBinary:
			return classBinary
		case term.BoxClosure, term.BoxExport:
			return classFun
		case term.BoxExternalPid:
			return classPid
		case term.BoxExternalPort:
			return classPort
		case term.BoxExternalRef:
			return classRef
		case term.BoxTuple:
			return classTuple
		}
	}
	return classNumber
}

// cmpClassOrder compares a and b purely by term class, for terms whose
// primary tags (or box types) differ enough that no value-level
// comparison applies.
func cmpClassOrder(h heap.Heap, a, b term.LTerm) int {
	ca, cb := classifyTerm(h, a), classifyTerm(h, b)
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	default:
		return 0
	}
}
