// Package vmcore assembles the capabilities this execution core needs
// from its surroundings (§6): a process table, pid allocation, and code
// resolution. It is explicitly not a scheduler — nothing here decides
// when a process runs, preempts it, or ever touches more than one
// process's state at a time beyond the table lookup spawn/self/
// is_process_alive need (§1: scheduler time-slicing policy is out of
// scope).
package vmcore

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"j5.nz/ertgcore/atomtable"
	"j5.nz/ertgcore/bif"
	"j5.nz/ertgcore/config"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/mfa"
	"j5.nz/ertgcore/runtimectx"
	"j5.nz/ertgcore/term"
)

// CodeServer resolves a callable MFA to either a user-code address or a
// BIF, the same FoundBeamCode/FoundBif/NotFound shape §6 describes.
// Defined here rather than consumed from package bif, since the
// reference implementation (StaticCodeServer, in this file) needs
// bif.Table for its fallthrough and bif.CodeLookup for its return
// shape; bif itself never imports vmcore (see DESIGN.md).
type CodeServer interface {
	LookupMFA(m mfa.MFA) (bif.CodeLookup, error)
}

// ErrUndef is returned by a CodeServer when no code or BIF answers to
// the given MFA.
var ErrUndef = fmt.Errorf("vmcore: undef")

// Process is one scheduled unit of execution: a pid, its register
// machine, and the heap it owns. Mailbox, monitors and links are out of
// scope (§1) — Alive is the only lifecycle state this core tracks, and
// only because erlang:is_process_alive/1 needs to read it.
type Process struct {
	Pid   term.LTerm
	Ctx   *runtimectx.Context
	Heap  heap.Heap
	Alive bool
}

// PidTerm satisfies bif.Process.
func (p *Process) PidTerm() term.LTerm { return p.Pid }

// HeapCap satisfies bif.Process.
func (p *Process) HeapCap() heap.Heap { return p.Heap }

// CtxPtr satisfies bif.Process.
func (p *Process) CtxPtr() *runtimectx.Context { return p.Ctx }

// VM is the thin aggregate §6 describes: "the core reads nothing from
// it except what BIFs need: process table for spawn, scheduler hooks".
// It owns no scheduling loop; Spawn only ever creates a process record
// and an ip-initialized Context.
type VM struct {
	Atoms atomtable.AtomTable
	Code  CodeServer
	Node  uuid.UUID
	cfg   *config.Config

	mu      sync.Mutex
	procs   map[uint32]*Process
	nextPid uint32
	logger  *slog.Logger
}

// New builds a VM over the given atom table, code server, and config.
// A random node identity is assigned so external pid/port/ref terms
// this VM constructs compare distinctly from another VM's (§4.5).
func New(atoms atomtable.AtomTable, code CodeServer, cfg *config.Config, logger *slog.Logger) *VM {
	if logger == nil {
		logger = slog.Default()
	}
	return &VM{
		Atoms:  atoms,
		Code:   code,
		Node:   uuid.New(),
		cfg:    cfg,
		procs:  make(map[uint32]*Process),
		logger: logger,
	}
}

// AtomTable satisfies bif.VM.
func (vm *VM) AtomTable() atomtable.AtomTable { return vm.Atoms }

// newHeapFor is the process heap a freshly spawned process gets. This
// core ships heap.Arena as its only Heap implementation (§1: a real
// allocator/GC is an external collaborator); a production VM would
// inject a different Heap constructor here.
func newHeapFor(cfg *config.Config) heap.Heap {
	return heap.NewArena(4096, 64)
}

// Spawn creates a new process at entry and registers it in the process
// table, backing erlang:spawn/3 in full (§1 explicitly excludes the
// mailbox/monitor machinery this creates nothing for).
func (vm *VM) Spawn(entry uint32) (*Process, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.nextPid++
	pid := term.MakeLocalPid(vm.nextPid)
	h := newHeapFor(vm.cfg)
	proc := &Process{
		Pid:   pid,
		Ctx:   runtimectx.NewContext(nil, entry, vm.cfg),
		Heap:  h,
		Alive: true,
	}
	vm.procs[vm.nextPid] = proc
	vm.logger.Debug("vmcore: spawned process", slog.Uint64("pid", uint64(vm.nextPid)), slog.Uint64("entry", uint64(entry)))
	return proc, nil
}

// SpawnPid satisfies bif.VM: spawn, returning only the pid a BIF needs.
func (vm *VM) SpawnPid(entry uint32) (term.LTerm, error) {
	proc, err := vm.Spawn(entry)
	if err != nil {
		return 0, err
	}
	return proc.Pid, nil
}

// Self returns proc's pid term, mirroring bif.Process.PidTerm for
// direct (non-BIF) callers such as tests.
func (vm *VM) Self(proc *Process) term.LTerm { return proc.PidTerm() }

// IsProcessAlive satisfies bif.VM and backs erlang:is_process_alive/1.
func (vm *VM) IsProcessAlive(pid term.LTerm) bool {
	if !pid.IsLocalPid() {
		return false
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	proc, ok := vm.procs[pid.GetLocalPidID()]
	return ok && proc.Alive
}

// Kill marks pid as no longer alive. Not part of any capability
// interface — exposed for tests that want to exercise
// IsProcessAlive's false branch without a real scheduler tearing a
// process down.
func (vm *VM) Kill(pid term.LTerm) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if proc, ok := vm.procs[pid.GetLocalPidID()]; ok {
		proc.Alive = false
	}
}

// StaticCodeServer is the reference CodeServer (§6): a fixed map of
// user-code addresses plus bif.Table fallthrough, adequate for tests
// and for a real bytecode loader to supersede.
type StaticCodeServer struct {
	Atoms atomtable.AtomTable
	Code  map[mfa.MFA]uint32
}

// NewStaticCodeServer builds an empty StaticCodeServer over the given
// atom table (needed to resolve bif.Table's string-keyed entries
// against an incoming MFA's atom terms).
func NewStaticCodeServer(atoms atomtable.AtomTable) *StaticCodeServer {
	return &StaticCodeServer{Atoms: atoms, Code: make(map[mfa.MFA]uint32)}
}

// LookupMFA resolves m against the loaded-code map first, then falls
// through to the BIF table.
func (s *StaticCodeServer) LookupMFA(m mfa.MFA) (bif.CodeLookup, error) {
	if addr, ok := s.Code[m]; ok {
		return bif.CodeLookup{HasCode: true, CodeAddr: addr}, nil
	}
	fn, exc := bif.Resolve(nil, s.Atoms, bif.Target{Kind: bif.TargetMFArity, MFA: m})
	if exc != nil {
		return bif.CodeLookup{}, ErrUndef
	}
	return bif.CodeLookup{Fn: fn}, nil
}
