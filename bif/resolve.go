package bif

import (
	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
)

// Resolve turns a call Target into an invokable Fn, implementing §4.3
// step 1's four target kinds. Resolution failure for a target naming an
// actual import term materializes the original's badfun error as a
// 1-tuple {import-term} on the process heap; a bare MFA that names no
// known BIF (TargetImportPointer/TargetMFArity) has no term to wrap, so
// it surfaces as the `undef` atom instead (see DESIGN.md).
func Resolve(h heap.Heap, tab atomtable.AtomTable, target Target) (Fn, *Exception) {
	switch target.Kind {
	case TargetBifFnPointer:
		return target.Fn, nil

	case TargetImportTerm:
		exp, err := boxed.AsExport(h, target.Import)
		if err != nil {
			return nil, badfunTerm(h, target.Import)
		}
		fn, ok := lookupTable(tab, exp.MFA)
		if !ok {
			return nil, badfunTerm(h, target.Import)
		}
		return fn, nil

	case TargetImportPointer, TargetMFArity:
		fn, ok := lookupTable(tab, target.MFA)
		if !ok {
			return nil, &Exception{Class: ClassError, Reason: term.MakeAtom(term.AtomUndef)}
		}
		return fn, nil

	default:
		return nil, &Exception{Class: ClassError, Reason: term.MakeAtom(term.AtomUndef)}
	}
}

func badfunTerm(h heap.Heap, importTerm term.LTerm) *Exception {
	tup, err := boxed.NewTuple(h, []term.LTerm{importTerm})
	if err != nil {
		return systemLimit()
	}
	return &Exception{Class: ClassError, Reason: tup}
}

func lookupTable(tab atomtable.AtomTable, m mfa.MFA) (Fn, bool) {
	modName, err := atomName(tab, m.Module)
	if err != nil {
		return nil, false
	}
	funName, err := atomName(tab, m.Function)
	if err != nil {
		return nil, false
	}
	for _, e := range Table {
		if e.Module == modName && e.Function == funName && e.Arity == m.Arity {
			return e.Fn, true
		}
	}
	return nil, false
}

func atomName(tab atomtable.AtomTable, t term.LTerm) (string, error) {
	entry, err := tab.Lookup(t)
	if err != nil {
		return "", err
	}
	return string(entry.Name), nil
}
