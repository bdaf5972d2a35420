package boxed_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"

	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
)

func TestTupleRoundTrip(t *testing.T) {
	h := heap.NewArena(16, 0)
	elems := []term.LTerm{term.MakeSmall(1), term.MakeSmall(2), term.MakeAtom(3)}
	tm, err := boxed.NewTuple(h, elems)
	if err != nil {
		t.Fatalf("NewTuple: %v", err)
	}
	if !tm.IsBoxed() {
		t.Fatalf("NewTuple result is not BOXED: %s", tm)
	}
	if !boxed.Is(h, tm, term.BoxTuple) {
		t.Fatal("Is(tuple) = false")
	}
	tu, err := boxed.AsTuple(h, tm)
	if err != nil {
		t.Fatalf("AsTuple: %v", err)
	}
	if tu.Arity() != 3 {
		t.Fatalf("Arity() = %d, want 3", tu.Arity())
	}
	if tu.Elems[1].GetSmallSigned() != 2 {
		t.Fatalf("Elems[1] = %v, want 2", tu.Elems[1])
	}
}

func TestAccessorWrongBoxTypeReturnsTypedError(t *testing.T) {
	h := heap.NewArena(16, 0)
	tm, err := boxed.NewFloat(h, 3.5)
	if err != nil {
		t.Fatalf("NewFloat: %v", err)
	}
	_, err = boxed.AsTuple(h, tm)
	var notA *boxed.ErrNotA
	if !errors.As(err, &notA) {
		t.Fatalf("AsTuple on a float box: err = %v, want *ErrNotA", err)
	}
	if notA.Want != term.BoxTuple || notA.Got != term.BoxFloat {
		t.Fatalf("ErrNotA = %+v, want Want=TUPLE Got=FLOAT", notA)
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	h := heap.NewArena(4, 0)
	v := new(big.Int).Lsh(big.NewInt(1), 100)
	tm, err := boxed.NewBigInt(h, v)
	if err != nil {
		t.Fatalf("NewBigInt: %v", err)
	}
	bi, err := boxed.AsBigInt(h, tm)
	if err != nil {
		t.Fatalf("AsBigInt: %v", err)
	}
	if bi.Value.Cmp(v) != 0 {
		t.Fatalf("AsBigInt().Value = %v, want %v", bi.Value, v)
	}
}

func TestExternalPidRoundTrip(t *testing.T) {
	h := heap.NewArena(4, 0)
	node := uuid.New()
	tm, err := boxed.NewExternalPid(h, node, [3]uint32{1, 2, 3})
	if err != nil {
		t.Fatalf("NewExternalPid: %v", err)
	}
	ext, err := boxed.AsExternal(h, tm)
	if err != nil {
		t.Fatalf("AsExternal: %v", err)
	}
	if ext.Node != node || ext.Kind != term.BoxExternalPid {
		t.Fatalf("AsExternal() = %+v, want node=%v kind=EXTERNALPID", ext, node)
	}
}

func TestIsFunAcceptsExportAndClosureOnly(t *testing.T) {
	h := heap.NewArena(16, 0)
	exp, err := boxed.NewExport(h, mfa.MFA{Module: term.MakeAtom(1), Function: term.MakeAtom(2), Arity: 0})
	if err != nil {
		t.Fatalf("NewExport: %v", err)
	}
	clo, err := boxed.NewClosure(h, 1, 0, 0, nil)
	if err != nil {
		t.Fatalf("NewClosure: %v", err)
	}
	tup, err := boxed.NewTuple(h, nil)
	if err != nil {
		t.Fatalf("NewTuple: %v", err)
	}

	if !boxed.IsFun(h, exp) {
		t.Fatal("IsFun(export) = false")
	}
	if !boxed.IsFun(h, clo) {
		t.Fatal("IsFun(closure) = false")
	}
	if boxed.IsFun(h, tup) {
		t.Fatal("IsFun(tuple) = true")
	}
}

func TestDanglingHandleErrors(t *testing.T) {
	h := heap.NewArena(4, 0)
	bogus := term.MakeBoxedHandle(99)
	if _, err := boxed.AsTuple(h, bogus); !errors.Is(err, boxed.ErrDangling) {
		t.Fatalf("AsTuple(bogus) err = %v, want ErrDangling", err)
	}
}
