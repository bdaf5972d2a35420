package bif

import "j5.nz/ertgcore/term"

// Fn is the shape every BIF implements: given the VM/Process capability
// slices it needs and its already-loaded arguments, it returns a result
// term or an exception. Every Fn asserts its own arity first (§8).
type Fn func(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception)

// Entry is one row of the static BIF table (§3.4).
type Entry struct {
	Module, Function string
	Arity            int
	Fn               Fn
}

// Table is the static, global BIF table, built once at init() (§3.4
// "static and global"). §3.4 allows "linear or perfect-hashed scan";
// this implements a linear scan over Table, which §3.4 itself notes is
// adequate at the size a hand-maintained BIF table reaches (see
// DESIGN.md).
var Table []Entry

func register(module, function string, arity int, fn Fn) {
	Table = append(Table, Entry{Module: module, Function: function, Arity: arity, Fn: fn})
}

func init() {
	register("erlang", "+", 2, Add)
	register("erlang", "-", 2, Sub)
	register("erlang", "*", 2, Mul)
	register("erlang", "++", 2, Concat)
	register("erlang", "/=", 2, NotEqual)
	register("erlang", "<", 2, Less)
	register("erlang", "=/=", 2, ExactNotEqual)
	register("erlang", "=:=", 2, ExactEqual)
	register("erlang", "=<", 2, LessOrEqual)
	register("erlang", "==", 2, Equal)
	register("erlang", ">", 2, Greater)
	register("erlang", ">=", 2, GreaterOrEqual)
	register("erlang", "atom_to_list", 1, AtomToList)
	register("erlang", "error", 1, Error1)
	register("erlang", "error", 2, Error2)
	register("erlang", "hd", 1, Hd)
	register("erlang", "integer_to_list", 1, IntegerToList)
	register("erlang", "is_boolean", 1, IsBoolean)
	register("erlang", "is_process_alive", 1, IsProcessAlive)
	register("erlang", "length", 1, Length)
	register("erlang", "make_fun", 3, MakeFun)
	register("lists", "member", 2, ListsMember)
	register("erlang", "nif_error", 1, NifError1)
	register("erlang", "nif_error", 2, NifError2)
	register("erlang", "self", 0, Self)
	register("erlang", "spawn", 3, Spawn)
	register("erlang", "tl", 1, Tl)
}
