// Package bif implements the BIF table, call-target resolution, and
// dispatch path (§3.4, §3.5, §4.3): the mechanism by which an opcode or
// an interpreter loop invokes one of the runtime's built-in functions.
package bif

import (
	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/runtimectx"
	"j5.nz/ertgcore/term"
)

// VM is the slice of vmcore.VM a BIF may touch (§6: "the core reads
// nothing from it except what BIFs need: process table for spawn,
// scheduler hooks"). Defined here rather than depending on package
// vmcore directly, because vmcore's CodeServer already depends on bif
// for its BIF-fallthrough table — vmcore importing bif and bif importing
// vmcore would be a cycle. *vmcore.VM satisfies this interface
// structurally; see DESIGN.md.
type VM interface {
	// SpawnPid creates a new process at the given entry address and
	// returns its pid. Backs erlang:spawn/3 (§1 excludes the mailbox;
	// this only creates the process record).
	SpawnPid(entry uint32) (term.LTerm, error)

	// IsProcessAlive backs erlang:is_process_alive/1.
	IsProcessAlive(pid term.LTerm) bool

	// AtomTable exposes the read-only atom lookup capability BIFs need
	// to resolve atom_to_list/1 and to compare MFA module/function names.
	AtomTable() atomtable.AtomTable
}

// Process is the slice of vmcore.Process a BIF may touch.
type Process interface {
	// PidTerm backs erlang:self/0.
	PidTerm() term.LTerm

	// HeapCap is the process heap BIFs allocate exception reasons and
	// constructed terms on.
	HeapCap() heap.Heap

	// CtxPtr is the process's register machine, for BIFs (none, in this
	// core's concrete set) that need direct register access beyond the
	// already-loaded args slice.
	CtxPtr() *runtimectx.Context
}
