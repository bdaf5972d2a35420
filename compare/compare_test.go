package compare_test

import (
	"math/big"
	"testing"

	"github.com/google/uuid"

	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/compare"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/list"
	"j5.nz/ertgcore/term"
)

func newEnv(t *testing.T) (*heap.Arena, *atomtable.Table) {
	t.Helper()
	return heap.NewArena(4096, 0), atomtable.NewTable()
}

func TestCmpSmallVsSmall(t *testing.T) {
	h, tab := newEnv(t)
	if c := compare.Cmp(h, term.MakeSmall(1), term.MakeSmall(2), true, tab); c >= 0 {
		t.Fatalf("1 vs 2 = %d, want negative", c)
	}
	if c := compare.Cmp(h, term.MakeSmall(5), term.MakeSmall(5), true, tab); c != 0 {
		t.Fatalf("5 vs 5 = %d, want 0", c)
	}
}

func TestCmpAtomsByLengthThenBytes(t *testing.T) {
	h, tab := newEnv(t)
	ab := tab.Intern("ab")
	abc := tab.Intern("abc")
	ad := tab.Intern("ad")

	if c := compare.Cmp(h, ab, abc, true, tab); c >= 0 {
		t.Fatalf("ab vs abc = %d, want negative (shorter sorts first)", c)
	}
	if c := compare.Cmp(h, ab, ad, true, tab); c >= 0 {
		t.Fatalf("ab vs ad = %d, want negative", c)
	}
}

func TestCmpNonExactCoercesFloatAndSmall(t *testing.T) {
	h, tab := newEnv(t)
	one := term.MakeSmall(1)
	oneF, err := boxed.NewFloat(h, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, one, oneF, false, tab); c != 0 {
		t.Fatalf("1 == 1.0 (non-exact) = %d, want 0", c)
	}
	if c := compare.Cmp(h, one, oneF, true, tab); c == 0 {
		t.Fatalf("1 =:= 1.0 (exact) = 0, want nonzero")
	}
}

func TestCmpSmallVsBigIntCoercesByValue(t *testing.T) {
	h, tab := newEnv(t)
	three := term.MakeSmall(3)
	bigThree, err := boxed.NewBigInt(h, big.NewInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, three, bigThree, false, tab); c != 0 {
		t.Fatalf("3 == bignum(3) (non-exact) = %d, want 0", c)
	}
	if c := compare.Cmp(h, three, bigThree, true, tab); c != 0 {
		t.Fatalf("3 =:= bignum(3) (exact) = %d, want 0 (both integer representations)", c)
	}

	four := term.MakeSmall(4)
	if c := compare.Cmp(h, four, bigThree, true, tab); c <= 0 {
		t.Fatalf("4 vs bignum(3) = %d, want positive", c)
	}
}

func TestCmpClassOrderNumberBeforeAtom(t *testing.T) {
	h, tab := newEnv(t)
	foo := tab.Intern("foo")
	if c := compare.Cmp(h, term.MakeSmall(100), foo, true, tab); c >= 0 {
		t.Fatalf("100 vs atom(foo) = %d, want negative (numbers sort before atoms)", c)
	}
}

func TestCmpConsListsElementwise(t *testing.T) {
	h, tab := newEnv(t)
	a, err := list.FromSlice(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(2)}, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	b, err := list.FromSlice(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(3)}, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, a, b, true, tab); c >= 0 {
		t.Fatalf("[1,2] vs [1,3] = %d, want negative", c)
	}
	if c := compare.Cmp(h, a, a, true, tab); c != 0 {
		t.Fatalf("[1,2] vs itself = %d, want 0", c)
	}
}

func TestCmpConsListsDifferentLength(t *testing.T) {
	h, tab := newEnv(t)
	short, err := list.FromSlice(h, []term.LTerm{term.MakeSmall(1)}, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	long, err := list.FromSlice(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(2)}, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, short, long, true, tab); c >= 0 {
		t.Fatalf("[1] vs [1,2] = %d, want negative (nil sorts before cons)", c)
	}
}

func TestCmpTuplesByArityThenElements(t *testing.T) {
	h, tab := newEnv(t)
	t2, err := boxed.NewTuple(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(2)})
	if err != nil {
		t.Fatal(err)
	}
	t3, err := boxed.NewTuple(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(2), term.MakeSmall(3)})
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, t2, t3, true, tab); c >= 0 {
		t.Fatalf("{1,2} vs {1,2,3} = %d, want negative", c)
	}

	t2b, err := boxed.NewTuple(h, []term.LTerm{term.MakeSmall(1), term.MakeSmall(5)})
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, t2, t2b, true, tab); c >= 0 {
		t.Fatalf("{1,2} vs {1,5} = %d, want negative", c)
	}
}

func TestCmpBinaries(t *testing.T) {
	h, tab := newEnv(t)
	a, err := boxed.NewBinary(h, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := boxed.NewBinary(h, []byte("ac"))
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, a, b, true, tab); c >= 0 {
		t.Fatalf("<<ab>> vs <<ac>> = %d, want negative", c)
	}
	if c := compare.Cmp(h, a, a, true, tab); c != 0 {
		t.Fatalf("<<ab>> vs itself = %d, want 0", c)
	}
}

func TestCmpExternalPidsByNodeThenID(t *testing.T) {
	h, tab := newEnv(t)
	nodeA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	nodeB := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	p1, err := boxed.NewExternalPid(h, nodeA, [3]uint32{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := boxed.NewExternalPid(h, nodeB, [3]uint32{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, p1, p2, true, tab); c == 0 {
		t.Fatal("pids on different nodes compared equal")
	}
	if c := compare.Cmp(h, p1, p1, true, tab); c != 0 {
		t.Fatalf("pid vs itself = %d, want 0", c)
	}
}

func TestCmpDeepConsListDoesNotOverflowStack(t *testing.T) {
	h := heap.NewArena(100000, 0)
	tab := atomtable.NewTable()

	const depth = 20000
	elems := make([]term.LTerm, depth)
	for i := range elems {
		elems[i] = term.MakeSmall(int64(i))
	}
	a, err := list.FromSlice(h, elems, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	b, err := list.FromSlice(h, elems, term.Nil())
	if err != nil {
		t.Fatal(err)
	}

	if c := compare.Cmp(h, a, b, true, tab); c != 0 {
		t.Fatalf("deep identical lists compared %d, want 0", c)
	}

	elems[depth-1] = term.MakeSmall(999999)
	c2, err := list.FromSlice(h, elems, term.Nil())
	if err != nil {
		t.Fatal(err)
	}
	if c := compare.Cmp(h, a, c2, true, tab); c >= 0 {
		t.Fatalf("deep lists differing only at the tail = %d, want negative", c)
	}
}
