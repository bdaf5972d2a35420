// Package mfa defines the module-function-arity triple used throughout
// the runtime to name a callable, independently of whether it resolves
// to a BIF function pointer or a user code address. Kept as its own
// package (mirroring the original's separate emulator::mfa module) so
// both bif and boxed can depend on it without depending on each other.
package mfa

import (
	"strconv"

	"j5.nz/ertgcore/term"
)

// MFA identifies a callable by module atom, function atom, and arity.
type MFA struct {
	Module   term.LTerm
	Function term.LTerm
	Arity    int
}

func (m MFA) String() string {
	return m.Module.String() + ":" + m.Function.String() + "/" + strconv.Itoa(m.Arity)
}
