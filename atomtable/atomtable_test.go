package atomtable_test

import (
	"errors"
	"testing"

	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/term"
)

func TestBootstrapReservesTrueFalse(t *testing.T) {
	tab := atomtable.NewTable()
	trueEntry, err := tab.Lookup(term.MakeAtom(term.AtomTrue))
	if err != nil {
		t.Fatalf("Lookup(true): %v", err)
	}
	if string(trueEntry.Name) != "true" {
		t.Fatalf("atom 0 = %q, want true", trueEntry.Name)
	}
	falseEntry, err := tab.Lookup(term.MakeAtom(term.AtomFalse))
	if err != nil {
		t.Fatalf("Lookup(false): %v", err)
	}
	if string(falseEntry.Name) != "false" {
		t.Fatalf("atom 1 = %q, want false", falseEntry.Name)
	}
}

func TestInternIsIdempotent(t *testing.T) {
	tab := atomtable.NewTable()
	a1 := tab.Intern("hello")
	a2 := tab.Intern("hello")
	if a1 != a2 {
		t.Fatalf("Intern(\"hello\") returned different terms: %s vs %s", a1, a2)
	}
}

func TestLookupUnknownIndex(t *testing.T) {
	tab := atomtable.NewTable()
	_, err := tab.Lookup(term.MakeAtom(9999))
	if !errors.Is(err, atomtable.ErrNoSuchAtom) {
		t.Fatalf("Lookup(9999) err = %v, want ErrNoSuchAtom", err)
	}
}

func TestLookupStableDuringConcurrentIntern(t *testing.T) {
	tab := atomtable.NewTable()
	a := tab.Intern("stable")
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			tab.Intern("new-" + string(rune('a'+i%26)))
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		e, err := tab.Lookup(a)
		if err != nil || string(e.Name) != "stable" {
			t.Fatalf("Lookup during concurrent Intern: %v, %v", e, err)
		}
	}
	<-done
}
