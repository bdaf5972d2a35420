package list_test

import (
	"errors"
	"testing"

	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/list"
	"j5.nz/ertgcore/term"
)

func TestFromSliceToSliceRoundTrip(t *testing.T) {
	h := heap.NewArena(16, 0)
	elems := []term.LTerm{term.MakeSmall(1), term.MakeSmall(2), term.MakeSmall(3)}
	l, err := list.FromSlice(h, elems, term.Nil())
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if !l.IsCons() {
		t.Fatalf("FromSlice result is not CONS: %s", l)
	}
	got, tail, err := list.ToSlice(h, l)
	if err != nil {
		t.Fatalf("ToSlice: %v", err)
	}
	if !tail.IsNil() {
		t.Fatalf("tail = %s, want []", tail)
	}
	if len(got) != 3 || got[0].GetSmallSigned() != 1 || got[2].GetSmallSigned() != 3 {
		t.Fatalf("ToSlice = %v, want [1 2 3]", got)
	}
}

func TestImproperListTail(t *testing.T) {
	h := heap.NewArena(16, 0)
	l, err := list.FromSlice(h, []term.LTerm{term.MakeSmall(1)}, term.MakeSmall(99))
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	got, tail, err := list.ToSlice(h, l)
	if err != nil {
		t.Fatalf("ToSlice: %v", err)
	}
	if len(got) != 1 || got[0].GetSmallSigned() != 1 {
		t.Fatalf("ToSlice elems = %v, want [1]", got)
	}
	if tail.GetSmallSigned() != 99 {
		t.Fatalf("tail = %s, want 99", tail)
	}
}

func TestGetDanglingHandle(t *testing.T) {
	h := heap.NewArena(4, 0)
	bogus := term.MakeConsHandle(99)
	if _, err := list.Get(h, bogus); !errors.Is(err, list.ErrDangling) {
		t.Fatalf("Get(bogus) err = %v, want ErrDangling", err)
	}
}
