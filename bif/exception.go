package bif

import (
	"fmt"

	"j5.nz/ertgcore/term"
)

// Class is the exception kind §7 names: a language-level throw carries
// one of these plus a reason term.
type Class int

const (
	ClassError Class = iota
	ClassThrow
	ClassExit
)

func (c Class) String() string {
	switch c {
	case ClassError:
		return "error"
	case ClassThrow:
		return "throw"
	case ClassExit:
		return "exit"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Exception is a BIF's error result: a class and a reason term, built by
// allocating the reason on the process heap (§4.3, §7).
type Exception struct {
	Class  Class
	Reason term.LTerm
}

func (e *Exception) Error() string {
	return fmt.Sprintf("%s: %s", e.Class, e.Reason)
}
