// Package runtimectx implements the per-process register machine (§3.3,
// §4.2): the X/FP register files, the single-slot continuation pointer,
// the reduction budget, and the operand load/store primitives every
// opcode and BIF call goes through. A Context never reaches across
// processes — everything it touches belongs to the one process it was
// swapped in for.
package runtimectx

import (
	"fmt"

	"j5.nz/ertgcore/boxed"
	"j5.nz/ertgcore/config"
	"j5.nz/ertgcore/heap"
	"j5.nz/ertgcore/term"
)

// MaxX bounds the X register file. The original has no fixed compile-time
// bound (a Vec sized at module load); this core picks a generous static
// array so Context stays a value type with no heap allocation of its own.
const MaxX = 256

// MaxFP bounds the float register file.
const MaxFP = 16

// Context is the "swapped in" state of one process: current instruction
// pointer, return address, register files, and the reduction counter that
// limits how long it may run before the scheduler (external, §5) must
// reclaim it.
type Context struct {
	IP, CP     uint32
	Live       int
	Regs       [MaxX]term.LTerm
	FPRegs     [MaxFP]float64
	Reductions int

	code []term.LTerm
	cfg  *config.Config
}

// NewContext builds a Context positioned at entry within code, with all X
// registers initialized to NonValue (§4.1: a freshly created register
// holds the distinguished uninitialized value, never a zero word).
func NewContext(code []term.LTerm, entry uint32, cfg *config.Config) *Context {
	c := &Context{IP: entry, code: code, cfg: cfg}
	for i := range c.Regs {
		c.Regs[i] = term.NonValue()
	}
	c.SwapIn()
	return c
}

// GetX reads X register i directly, with no load/resolve semantics.
func (c *Context) GetX(i int) term.LTerm { return c.Regs[i] }

// SetX writes X register i directly. Storing a register reference as a
// value is always an interpreter bug (§4.2 "debug check"); this core
// makes that check unconditional rather than debug-only, since a
// mis-tagged register store is a fatal, never-recoverable condition
// either way (§7).
func (c *Context) SetX(i int, v term.LTerm) {
	if v.IsRegister() {
		panic(fmt.Sprintf("runtimectx: refusing to store register reference %s into X%d", v, i))
	}
	c.Regs[i] = v
}

// GetFP reads FP register i directly. Unlike X/Y registers, FP
// registers hold a raw float64, never an LTerm — the original keeps
// them untagged for the same reason (§4.2: float arithmetic opcodes
// operate on fpregs without boxing on every step).
func (c *Context) GetFP(i int) float64 { return c.FPRegs[i] }

// SetFP writes FP register i directly.
func (c *Context) SetFP(i int, v float64) { c.FPRegs[i] = v }

// Load resolves a source operand: register-tagged terms are read from
// their register file (Y registers by frame-relative index on the
// process heap); anything else passes through unchanged (§4.2).
func (c *Context) Load(src term.LTerm, h heap.Heap) term.LTerm {
	if !src.IsSpecial() {
		return src
	}
	switch src.GetSpecialTag() {
	case term.SpecialRegX:
		return c.GetX(int(src.RegisterIndex()))
	case term.SpecialRegY:
		v, err := h.GetY(int(src.RegisterIndex()))
		if err != nil {
			panic(fmt.Sprintf("runtimectx: %v", err))
		}
		return v
	case term.SpecialRegFP:
		v, err := boxed.NewFloat(h, c.GetFP(int(src.RegisterIndex())))
		if err != nil {
			panic(fmt.Sprintf("runtimectx: %v", err))
		}
		return v
	default:
		return src
	}
}

// StoreValue writes a resolved value to a destination operand. dst must
// be register-tagged; anything else is a fatal interpreter bug (§4.2,
// §7 "Fatal / internal invariant violation").
func (c *Context) StoreValue(val, dst term.LTerm, h heap.Heap) {
	if val.IsRegister() {
		panic(fmt.Sprintf("runtimectx: refusing to store register reference %s as a value", val))
	}
	if !dst.IsSpecial() {
		panic(fmt.Sprintf("runtimectx: store destination %s is not a register", dst))
	}
	switch dst.GetSpecialTag() {
	case term.SpecialRegX:
		c.SetX(int(dst.RegisterIndex()), val)
	case term.SpecialRegY:
		if err := h.SetY(int(dst.RegisterIndex()), val); err != nil {
			panic(fmt.Sprintf("runtimectx: %v", err))
		}
	case term.SpecialRegFP:
		c.SetFP(int(dst.RegisterIndex()), floatOf(h, val))
	default:
		panic(fmt.Sprintf("runtimectx: store destination %s is not a value-bearing register", dst))
	}
}

// floatOf coerces val to the float64 an FP register store expects: a
// boxed float unboxes directly, a SMALL promotes the way every other
// numeric opcode in this core promotes small-to-float (§4.5). Anything
// else reaching here is a fatal interpreter bug — a store destination
// typed as FP never receives a non-numeric operand.
func floatOf(h heap.Heap, val term.LTerm) float64 {
	if fl, err := boxed.AsFloat(h, val); err == nil {
		return fl.Value
	}
	if val.IsSmall() {
		return float64(val.GetSmallSigned())
	}
	panic(fmt.Sprintf("runtimectx: value %s stored into an FP register is not numeric", val))
}

// StoreSrc is load-then-store in one step: StoreValue(Load(src, h), dst, h).
func (c *Context) StoreSrc(src, dst term.LTerm, h heap.Heap) {
	c.StoreValue(c.Load(src, h), dst, h)
}

// Fetch consumes one word from the instruction stream and advances IP.
func (c *Context) Fetch() term.LTerm {
	w := c.code[c.IP]
	c.IP++
	return w
}

// FetchTerm is an alias for Fetch kept for call-site clarity: the fetched
// word is interpreted as a literal term rather than a raw opcode.
func (c *Context) FetchTerm() term.LTerm { return c.Fetch() }

// FetchSlice consumes n words as a slice aliasing the loaded code memory
// and advances IP past them. The slice is only valid for the lifetime of
// the loaded module (§4.2).
func (c *Context) FetchSlice(n int) []term.LTerm {
	s := c.code[c.IP : c.IP+uint32(n)]
	c.IP += uint32(n)
	return s
}

// FetchOpcode fetches like Fetch but charges FetchOpcodeCost reductions,
// the one suspension point every opcode passes through (§5).
func (c *Context) FetchOpcode() term.LTerm {
	c.Reductions -= c.cfg.Reductions.FetchOpcodeCost
	return c.Fetch()
}

// Jump sets IP from a continuation-pointer term.
func (c *Context) Jump(cp term.LTerm) {
	if !cp.IsCP() {
		panic(fmt.Sprintf("runtimectx: jump target %s is not a CP", cp))
	}
	c.IP = cp.GetCPAddr()
}

// JumpPtr sets IP to a raw code address.
func (c *Context) JumpPtr(addr uint32) { c.IP = addr }

// SetCP records a return address in the single-slot continuation.
func (c *Context) SetCP(addr uint32) { c.CP = addr }

// ClearCP clears the continuation slot.
func (c *Context) ClearCP() { c.CP = 0 }

// SwapIn resets the reduction budget to the configured default. Called
// whenever the external scheduler picks this process to run (§5).
func (c *Context) SwapIn() { c.Reductions = c.cfg.Reductions.Default }

// SwapOut documents the persistence-of-registers contract: nothing in
// Context needs to be saved elsewhere between time slices, since the
// whole register file lives here and the scheduler simply stops calling
// into this process until it is swapped in again.
func (c *Context) SwapOut() {}

// BifInvocation is the minimal capability CallMFA needs to invoke an
// already-resolved BIF. It is defined here, rather than as a dependency
// on the bif package, because bif itself depends on runtimectx to load
// and store a BIF's arguments and result — importing bif back from here
// would be a cycle. The bif package's ForCallMFA builds an adapter value
// satisfying this interface once a call target has been resolved, bound to
// the VM/Process pair the call needs (see DESIGN.md).
type BifInvocation interface {
	Invoke(args []term.LTerm) (term.LTerm, error)
}

// LookupResult is what CodeServer.LookupMFA resolves a callable target
// to: either a user-code address (FoundBeamCode) or an invocation-ready
// BIF (FoundBif). The zero value (HasCode=false, Bif=nil) is never valid.
type LookupResult struct {
	HasCode  bool
	CodeAddr uint32
	Bif      BifInvocation
}

// CallMFA performs §4.2's call_mfa: for user code, optionally saves CP
// and jumps; for a BIF, invokes it and places the result in X0. The
// caller decides saveCP per call site (tail call vs call-expecting-return)
// per §9's Open Question, resolved here as an explicit, mandatory
// argument rather than a default (see DESIGN.md).
func (c *Context) CallMFA(lr LookupResult, args []term.LTerm, saveCP bool) error {
	if lr.HasCode {
		if saveCP {
			c.SetCP(c.IP)
		}
		c.JumpPtr(lr.CodeAddr)
		return nil
	}
	v, err := lr.Bif.Invoke(args)
	if err != nil {
		return err
	}
	c.SetX(0, v)
	return nil
}
