// Package compare implements the polymorphic total order over terms:
// Cmp returns -1/0/1 the way Erlang's term comparison does, with an
// `exact` flag switching between the arithmetic-coercing `==`/`<`/…
// family and the type-strict `=:=`/`=/=` family (§4.4).
//
// Comparison of cons lists is driven by an explicit work stack rather
// than native recursion, so a pathologically deep list cannot blow the
// goroutine's stack (§4.4, §8). Tuple elements are not put on that work
// stack: each differing element pair is compared by a nested Cmp call,
// so native stack depth grows with tuple nesting depth.
package compare

import (
	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/list"
	"j5.nz/ertgcore/term"
)

// frame is a pending (a, b) pair to compare once the term ahead of it
// on the work stack has concluded Equal — the original's
// ContinueCompare, collapsed to one shape since its AnyType and Cons
// variants both resume through step (§4.4).
type frame struct {
	a, b term.LTerm
}

// Cmp compares a and b and returns -1, 0, or 1. h resolves BOXED/CONS
// handles; tab resolves ATOM terms to their names. When exact is
// false, small/bignum/float operands coerce across numeric kinds
// before comparing (`1 == 1.0`); when exact is true they do not (`1
// =:= 1.0` is never Equal).
func Cmp(h heap.Heap, a, b term.LTerm, exact bool, tab atomtable.AtomTable) int {
	stack := make([]frame, 0, 8)
	curA, curB := a, b

	for {
		st := step(h, curA, curB, exact, tab)
		if st.concluded {
			if st.value != 0 || len(stack) == 0 {
				return st.value
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			curA, curB = top.a, top.b
			continue
		}
		stack = append(stack, frame{a: st.resumeA, b: st.resumeB})
		curA, curB = st.nextA, st.nextB
	}
}

// stepResult is either a concluded comparison, or instructions to
// compare (nextA, nextB) first and, once that concludes Equal, resume
// by comparing (resumeA, resumeB) — the original's EqResult.
type stepResult struct {
	concluded bool
	value     int

	nextA, nextB     term.LTerm
	resumeA, resumeB term.LTerm
}

func concluded(v int) stepResult { return stepResult{concluded: true, value: v} }

func nested(nextA, nextB, resumeA, resumeB term.LTerm) stepResult {
	return stepResult{nextA: nextA, nextB: nextB, resumeA: resumeA, resumeB: resumeB}
}

// step is the original's cmp_terms_any_type: branch on a/b's shape
// without assuming their types match, concluding a result or handing
// back a nested pair to compare first.
func step(h heap.Heap, a, b term.LTerm, exact bool, tab atomtable.AtomTable) stepResult {
	if a.IsAtom() && b.IsAtom() {
		return concluded(cmpAtoms(a, b, tab))
	}

	aSmall, bSmall := a.IsSmall(), b.IsSmall()
	if aSmall && bSmall {
		return concluded(cmpInt64(a.GetSmallSigned(), b.GetSmallSigned()))
	}

	// A SMALL and a boxed FLOAT/BIGINTEGER never share a primary tag,
	// so this has to run before stepPrimary's same-tag dispatch — and
	// before stepPrimary falls back to class order, which would bucket
	// every numeric shape into one class and wrongly call them Equal.
	if isNumericTerm(h, a) && isNumericTerm(h, b) {
		return concluded(cmpNumbers(h, a, b, exact))
	}

	return stepPrimary(h, a, b, exact, tab)
}

// cmpAtoms orders atoms by length then lexicographically by name — the
// original's cmp_atoms.
func cmpAtoms(a, b term.LTerm, tab atomtable.AtomTable) int {
	ea, err := tab.Lookup(a)
	if err != nil {
		panic("compare: atom lookup failed for " + a.String())
	}
	eb, err := tab.Lookup(b)
	if err != nil {
		panic("compare: atom lookup failed for " + b.String())
	}
	if ea.Len != eb.Len {
		return cmpInt(ea.Len, eb.Len)
	}
	return cmpString(string(ea.Name), string(eb.Name))
}

// stepPrimary is the original's cmp_terms_primary: dispatch on primary
// tag, falling back to class order when the tags differ.
func stepPrimary(h heap.Heap, a, b term.LTerm, exact bool, tab atomtable.AtomTable) stepResult {
	if a.Primary() != b.Primary() {
		return concluded(cmpClassOrder(h, a, b))
	}

	switch a.Primary() {
	case term.TagBoxed:
		return stepBoxed(h, a, b, exact, tab)
	case term.TagCons:
		if !b.IsCons() {
			return concluded(cmpClassOrder(h, a, b))
		}
		return stepCons(h, a, b)
	default:
		return concluded(cmpImmediate(a, b))
	}
}

// stepCons walks two cons chains cell by cell while their heads
// compare byte-identical (the original's cmp_cons), so a long
// structurally-shared prefix never recurses. It returns Equal directly
// when both chains reach the same tail word, or a nested pair
// (diverging heads, or a final non-cons tail pair) to compare next.
func stepCons(h heap.Heap, a, b term.LTerm) stepResult {
	for {
		ca, err := list.Get(h, a)
		if err != nil {
			return concluded(0)
		}
		cb, err := list.Get(h, b)
		if err != nil {
			return concluded(0)
		}

		if ca.Head != cb.Head {
			return nested(ca.Head, cb.Head, ca.Tail, cb.Tail)
		}

		atl, btl := ca.Tail, cb.Tail
		if atl == btl {
			return concluded(0)
		}
		if !atl.IsCons() || !btl.IsCons() {
			return nested(atl, btl, atl, btl)
		}
		a, b = atl, btl
	}
}

// cmpImmediate handles everything left once primary tags match and
// neither side is BOXED or CONS: local pid/port and the SPECIAL
// sub-family (registers never reach here in practice, but compare by
// raw value like any other immediate would).
func cmpImmediate(a, b term.LTerm) int {
	if a == b {
		return 0
	}
	return cmpUint64(a.Raw(), b.Raw())
}

// stepBoxed dispatches two BOXED terms by their header's box type,
// falling back to class order when the box types differ. Numeric boxes
// (bignum, float) never reach here still needing a numeric comparison:
// step's isNumericTerm pre-check already resolved any pairing where
// both sides are numbers, boxed or not, before stepPrimary ever calls
// into this function.
func stepBoxed(h heap.Heap, a, b term.LTerm, exact bool, tab atomtable.AtomTable) stepResult {
	ta, erra := boxed.BoxTypeOf(h, a)
	tb, errb := boxed.BoxTypeOf(h, b)
	if erra != nil || errb != nil {
		return concluded(cmpClassOrder(h, a, b))
	}

	if ta != tb {
		return concluded(cmpClassOrder(h, a, b))
	}

	switch ta {
	case term.BoxTuple:
		return stepTuple(h, a, b, exact, tab)
	case term.BoxExport:
		return concluded(cmpExports(h, a, b, tab))
	case term.BoxClosure:
		return concluded(cmpClosures(h, a, b))
	case term.BoxExternalPid, term.BoxExternalPort, term.BoxExternalRef:
		return concluded(cmpExternal(h, a, b))
	case term.BoxBinary:
		return concluded(cmpBinaries(h, a, b))
	default:
		return concluded(0)
	}
}

// stepTuple compares arity first, then each element pairwise via a
// direct recursive Cmp call. Unlike cons lists, tuples are not expected
// to nest tens of thousands deep in practice, so this does not need
// the work-stack treatment stepCons gets; Cmp's own internal loop still
// keeps any one element's comparison iterative.
func stepTuple(h heap.Heap, a, b term.LTerm, exact bool, tab atomtable.AtomTable) stepResult {
	ta, _ := boxed.AsTuple(h, a)
	tb, _ := boxed.AsTuple(h, b)
	if ta.Arity() != tb.Arity() {
		return concluded(cmpInt(ta.Arity(), tb.Arity()))
	}
	for i, ea := range ta.Elems {
		eb := tb.Elems[i]
		if ea == eb {
			continue
		}
		if c := Cmp(h, ea, eb, exact, tab); c != 0 {
			return concluded(c)
		}
	}
	return concluded(0)
}

func cmpExports(h heap.Heap, a, b term.LTerm, tab atomtable.AtomTable) int {
	ea, _ := boxed.AsExport(h, a)
	eb, _ := boxed.AsExport(h, b)
	if c := cmpAtoms(ea.MFA.Module, eb.MFA.Module, tab); c != 0 {
		return c
	}
	if c := cmpAtoms(ea.MFA.Function, eb.MFA.Function, tab); c != 0 {
		return c
	}
	return cmpInt(ea.MFA.Arity, eb.MFA.Arity)
}

func cmpClosures(h heap.Heap, a, b term.LTerm) int {
	ca, _ := boxed.AsClosure(h, a)
	cb, _ := boxed.AsClosure(h, b)
	if c := cmpUint32(ca.Module, cb.Module); c != 0 {
		return c
	}
	if c := cmpUint32(ca.Index, cb.Index); c != 0 {
		return c
	}
	if c := cmpUint32(ca.Uniq, cb.Uniq); c != 0 {
		return c
	}
	return cmpInt(len(ca.FreeVars), len(cb.FreeVars))
}

func cmpExternal(h heap.Heap, a, b term.LTerm) int {
	ea, _ := boxed.AsExternal(h, a)
	eb, _ := boxed.AsExternal(h, b)
	if c := cmpString(ea.Node.String(), eb.Node.String()); c != 0 {
		return c
	}
	for i := range ea.ID {
		if c := cmpUint32(ea.ID[i], eb.ID[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpBinaries(h heap.Heap, a, b term.LTerm) int {
	ba, _ := boxed.AsBinary(h, a)
	bb, _ := boxed.AsBinary(h, b)
	n := len(ba.Data)
	if len(bb.Data) < n {
		n = len(bb.Data)
	}
	for i := 0; i < n; i++ {
		if ba.Data[i] != bb.Data[i] {
			return cmpInt(int(ba.Data[i]), int(bb.Data[i]))
		}
	}
	return cmpInt(len(ba.Data), len(bb.Data))
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
