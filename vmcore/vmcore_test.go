package vmcore_test

import (
	"testing"

	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/bif"
	"j5.nz/ertgcore/config"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/term"
	"j5.nz/ertgcore/vmcore"
)

func newVM(t *testing.T) (*vmcore.VM, *atomtable.Table) {
	t.Helper()
	atoms := atomtable.NewTable()
	code := vmcore.NewStaticCodeServer(atoms)
	vm := vmcore.New(atoms, code, config.Default(), nil)
	return vm, atoms
}

func TestSpawnAssignsDistinctPids(t *testing.T) {
	vm, _ := newVM(t)
	p1, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Pid == p2.Pid {
		t.Fatal("two spawns returned the same pid")
	}
	if !p1.Pid.IsLocalPid() || !p2.Pid.IsLocalPid() {
		t.Fatal("spawned pids are not LOCALPID terms")
	}
}

func TestIsProcessAliveTracksKill(t *testing.T) {
	vm, _ := newVM(t)
	proc, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	if !vm.IsProcessAlive(proc.Pid) {
		t.Fatal("freshly spawned process reports not alive")
	}
	vm.Kill(proc.Pid)
	if vm.IsProcessAlive(proc.Pid) {
		t.Fatal("killed process still reports alive")
	}
}

func TestIsProcessAliveFalseForUnknownPid(t *testing.T) {
	vm, _ := newVM(t)
	if vm.IsProcessAlive(term.MakeLocalPid(999)) {
		t.Fatal("unknown pid reported alive")
	}
}

func TestVMSatisfiesBifVMCapability(t *testing.T) {
	vm, _ := newVM(t)
	var _ bif.VM = vm
}

func TestProcessSatisfiesBifProcessCapability(t *testing.T) {
	vm, _ := newVM(t)
	proc, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	var _ bif.Process = proc
}

func TestStaticCodeServerFallsThroughToBif(t *testing.T) {
	atoms := atomtable.NewTable()
	erlang := atoms.Intern("erlang")
	self := atoms.Intern("self")
	code := vmcore.NewStaticCodeServer(atoms)

	lr, err := code.LookupMFA(mfa.MFA{Module: erlang, Function: self, Arity: 0})
	if err != nil {
		t.Fatalf("LookupMFA(erlang:self/0): %v", err)
	}
	if lr.HasCode {
		t.Fatal("erlang:self/0 resolved as user code, want a BIF")
	}
	if lr.Fn == nil {
		t.Fatal("erlang:self/0 resolved to a nil Fn")
	}
}

func TestStaticCodeServerUserCodeTakesPrecedence(t *testing.T) {
	atoms := atomtable.NewTable()
	mymod := atoms.Intern("mymod")
	myfun := atoms.Intern("myfun")
	code := vmcore.NewStaticCodeServer(atoms)
	m := mfa.MFA{Module: mymod, Function: myfun, Arity: 1}
	code.Code[m] = 42

	lr, err := code.LookupMFA(m)
	if err != nil {
		t.Fatal(err)
	}
	if !lr.HasCode || lr.CodeAddr != 42 {
		t.Fatalf("LookupMFA(mymod:myfun/1) = %+v, want user code at 42", lr)
	}
}

func TestStaticCodeServerUndef(t *testing.T) {
	atoms := atomtable.NewTable()
	nope := atoms.Intern("nope")
	code := vmcore.NewStaticCodeServer(atoms)

	_, err := code.LookupMFA(mfa.MFA{Module: nope, Function: nope, Arity: 7})
	if err != vmcore.ErrUndef {
		t.Fatalf("LookupMFA(undefined) err = %v, want ErrUndef", err)
	}
}

func TestEndToEndSpawnSelfIsProcessAliveViaBif(t *testing.T) {
	vm, _ := newVM(t)
	proc, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	result, exc := bif.Self(vm, proc, nil)
	if exc != nil {
		t.Fatalf("erlang:self/0: %v", exc)
	}
	if result != proc.Pid {
		t.Fatalf("erlang:self/0 = %s, want %s", result, proc.Pid)
	}

	alive, exc := bif.IsProcessAlive(vm, proc, []term.LTerm{proc.Pid})
	if exc != nil {
		t.Fatalf("erlang:is_process_alive/1: %v", exc)
	}
	if !alive.IsBool() || alive != term.MakeBool(true) {
		t.Fatalf("erlang:is_process_alive/1 = %s, want true", alive)
	}
}

func TestCallMFAThroughForCallMFAInvokesBif(t *testing.T) {
	vm, _ := newVM(t)
	proc, err := vm.Spawn(0)
	if err != nil {
		t.Fatal(err)
	}
	lr, err := vm.Code.LookupMFA(mfa.MFA{
		Module:   vm.Atoms.(*atomtable.Table).Intern("erlang"),
		Function: vm.Atoms.(*atomtable.Table).Intern("self"),
		Arity:    0,
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := proc.CtxPtr()
	if err := ctx.CallMFA(bif.ForCallMFA(vm, proc, lr), nil, false); err != nil {
		t.Fatal(err)
	}
	if ctx.GetX(0) != proc.Pid {
		t.Fatalf("X0 = %s after self/0, want %s", ctx.GetX(0), proc.Pid)
	}
}
