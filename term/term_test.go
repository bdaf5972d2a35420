package term_test

import (
	"testing"

	"j5.nz/ertgcore/term"
)

func TestImmediateRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		make func() term.LTerm
		prim term.Primary
	}{
		{"nil", term.Nil, term.TagSpecial},
		{"non_value", term.NonValue, term.TagSpecial},
		{"empty_tuple", term.EmptyTuple, term.TagSpecial},
		{"empty_binary", term.EmptyBinary, term.TagSpecial},
		{"atom", func() term.LTerm { return term.MakeAtom(42) }, term.TagAtom},
		{"small_pos", func() term.LTerm { return term.MakeSmall(1234) }, term.TagSmall},
		{"small_neg", func() term.LTerm { return term.MakeSmall(-1234) }, term.TagSmall},
		{"small_zero", func() term.LTerm { return term.MakeSmall(0) }, term.TagSmall},
		{"local_pid", func() term.LTerm { return term.MakeLocalPid(7) }, term.TagLocalPid},
		{"local_port", func() term.LTerm { return term.MakeLocalPort(7) }, term.TagLocalPort},
		{"regx", func() term.LTerm { return term.MakeRegX(3) }, term.TagSpecial},
		{"regy", func() term.LTerm { return term.MakeRegY(3) }, term.TagSpecial},
		{"regfp", func() term.LTerm { return term.MakeRegFP(3) }, term.TagSpecial},
		{"cp", func() term.LTerm { return term.MakeCP(99) }, term.TagSpecial},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.make()
			if v.Primary() != c.prim {
				t.Fatalf("Primary() = %s, want %s", v.Primary(), c.prim)
			}
		})
	}
}

func TestSmallSignedRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 1234567, -1234567, 1<<40 - 1, -(1 << 40)}
	for _, v := range values {
		got := term.MakeSmall(v).GetSmallSigned()
		if got != v {
			t.Errorf("MakeSmall(%d).GetSmallSigned() = %d", v, got)
		}
	}
}

func TestNonValueDistinctFromNil(t *testing.T) {
	if term.NonValue() == term.Nil() {
		t.Fatal("NonValue() must not equal Nil()")
	}
	if !term.NonValue().IsNonValue() {
		t.Fatal("NonValue().IsNonValue() = false")
	}
	if term.Nil().IsNonValue() {
		t.Fatal("Nil().IsNonValue() = true")
	}
}

func TestIsValue(t *testing.T) {
	if term.NonValue().IsValue() {
		t.Fatal("NonValue().IsValue() = true, want false")
	}
	if !term.Nil().IsValue() {
		t.Fatal("Nil().IsValue() = false, want true")
	}
	if !term.MakeSmall(0).IsValue() {
		t.Fatal("MakeSmall(0).IsValue() = false, want true")
	}
}

func TestEmptyContainersAreRawConstants(t *testing.T) {
	if term.EmptyTuple().Raw() != term.EmptyTuple().Raw() {
		t.Fatal("EmptyTuple() not stable")
	}
	if term.EmptyTuple() == term.EmptyBinary() {
		t.Fatal("EmptyTuple() must differ from EmptyBinary()")
	}
	if term.Nil() == term.EmptyTuple() {
		t.Fatal("Nil() must differ from EmptyTuple()")
	}
}

func TestRegisterPredicates(t *testing.T) {
	rx := term.MakeRegX(5)
	if !rx.IsRegister() || !rx.IsRegX() || rx.IsRegY() || rx.IsRegFP() {
		t.Fatalf("RegX predicates wrong for %s", rx)
	}
	if rx.RegisterIndex() != 5 {
		t.Fatalf("RegisterIndex() = %d, want 5", rx.RegisterIndex())
	}
	if term.MakeSmall(5).IsRegister() {
		t.Fatal("a SMALL term must never report IsRegister")
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := term.MakeHeader(term.BoxTuple, 3)
	if h.HeaderBoxType() != term.BoxTuple {
		t.Fatalf("HeaderBoxType() = %s, want TUPLE", h.HeaderBoxType())
	}
	if h.HeaderArity() != 3 {
		t.Fatalf("HeaderArity() = %d, want 3", h.HeaderArity())
	}
}

func TestWrongTagAccessorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when calling GetSmallSigned on a non-SMALL term")
		}
	}()
	term.MakeAtom(1).GetSmallSigned()
}

func TestBoolAtoms(t *testing.T) {
	if !term.MakeBool(true).IsBool() || !term.MakeBool(false).IsBool() {
		t.Fatal("MakeBool results must satisfy IsBool")
	}
	if term.MakeBool(true) == term.MakeBool(false) {
		t.Fatal("true and false must be distinct atoms")
	}
	if term.MakeSmall(1).IsBool() {
		t.Fatal("a SMALL term must never satisfy IsBool")
	}
}
