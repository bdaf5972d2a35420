// Package atomtable implements the process-wide atom interning table
// (§6, §5): an append-mostly store whose readers never block on writers
// mid-comparison. Only the bytecode loader is meant to append new atoms
// (§5); this core only relies on the Lookup contract.
package atomtable

import (
	"fmt"
	"sync"
	"sync/atomic"

	"j5.nz/ertgcore/term"
)

// AtomEntry describes one interned atom.
type AtomEntry struct {
	Name []byte
	Len  int
}

// AtomTable is the capability the comparator and BIFs consume.
type AtomTable interface {
	Lookup(a term.LTerm) (*AtomEntry, error)
}

// ErrNoSuchAtom is returned when an ATOM term's index has no entry.
var ErrNoSuchAtom = fmt.Errorf("atomtable: no such atom")

// snapshot is the immutable slice readers see; Table swaps the pointer
// under mu on append so a reader holding a snapshot never observes a
// table mutating mid-comparison (§5).
type snapshot struct {
	entries []*AtomEntry
	byName  map[string]uint32
}

// Table is the reference AtomTable implementation: append-mostly,
// lock-free reads of an immutable suffix.
type Table struct {
	mu   sync.Mutex
	snap atomic.Pointer[snapshot]
}

// bootstrapAtoms lists the names that must land at the term.Atom* indices,
// in that exact order — true and false per §6/§4.1, the rest so the bif
// package can build exception reasons (badarg, badarity, badfun, undef,
// system_limit) from well-known indices instead of needing to intern.
var bootstrapAtoms = []string{"true", "false", "badarg", "badarity", "badfun", "undef", "system_limit"}

// NewTable builds a Table pre-seeded with bootstrapAtoms at exactly the
// indices their term.Atom* constants name.
func NewTable() *Table {
	t := &Table{}
	t.snap.Store(&snapshot{entries: nil, byName: map[string]uint32{}})
	for i, name := range bootstrapAtoms {
		if idx := t.intern(name); idx != uint32(i) {
			panic(fmt.Sprintf("atomtable: bootstrap order must assign %q = %d, got %d", name, i, idx))
		}
	}
	if term.AtomSystemLimit != uint32(len(bootstrapAtoms)-1) {
		panic("atomtable: bootstrapAtoms out of sync with term.Atom* constants")
	}
	return t
}

// Lookup resolves an ATOM term to its entry. Safe to call concurrently
// with Intern; observes a consistent snapshot for the duration of the
// call.
func (t *Table) Lookup(a term.LTerm) (*AtomEntry, error) {
	if !a.IsAtom() {
		return nil, fmt.Errorf("atomtable: Lookup on non-atom term %s", a)
	}
	snap := t.snap.Load()
	idx := a.GetAtomIndex()
	if int(idx) >= len(snap.entries) {
		return nil, ErrNoSuchAtom
	}
	return snap.entries[idx], nil
}

// Intern returns the atom term for name, appending a new entry if name
// has not been seen before. Only the loader (an external collaborator)
// is expected to call this in production; the reference Table exposes
// it directly since this core ships no loader.
func (t *Table) Intern(name string) term.LTerm {
	return term.MakeAtom(t.intern(name))
}

func (t *Table) intern(name string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.snap.Load()
	if idx, ok := cur.byName[name]; ok {
		return idx
	}

	entries := make([]*AtomEntry, len(cur.entries), len(cur.entries)+1)
	copy(entries, cur.entries)
	byName := make(map[string]uint32, len(cur.byName)+1)
	for k, v := range cur.byName {
		byName[k] = v
	}

	idx := uint32(len(entries))
	entries = append(entries, &AtomEntry{Name: []byte(name), Len: len(name)})
	byName[name] = idx

	t.snap.Store(&snapshot{entries: entries, byName: byName})
	return idx
}
