package bif

import (
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
)

// TargetKind discriminates the four ways a call site may name a callable
// (§4.3 step 1).
type TargetKind int

const (
	// TargetImportTerm names a boxed Export/Import term on the process
	// heap that must be unboxed before resolution.
	TargetImportTerm TargetKind = iota
	// TargetImportPointer names an already-resolved MFA, bypassing the
	// heap unboxing step an ImportTerm needs (the original's "direct
	// pointer into a loaded module's import table").
	TargetImportPointer
	// TargetMFArity names a literal MFA known at compile time.
	TargetMFArity
	// TargetBifFnPointer already carries the resolved Fn.
	TargetBifFnPointer
)

// Target is a call site's description of what it wants to call.
type Target struct {
	Kind TargetKind

	// Import is populated for TargetImportTerm: the boxed term to unbox.
	Import term.LTerm

	// MFA is populated for TargetImportPointer and TargetMFArity.
	MFA mfa.MFA

	// Fn is populated for TargetBifFnPointer.
	Fn Fn
}
