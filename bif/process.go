package bif

import "j5.nz/ertgcore/term"

// IsBoolean implements erlang:is_boolean/1.
func IsBoolean(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	return term.MakeBool(args[0].IsBool()), nil
}

// IsProcessAlive implements erlang:is_process_alive/1.
func IsProcessAlive(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 1); exc != nil {
		return 0, exc
	}
	if !args[0].IsLocalPid() {
		return 0, badarg()
	}
	return term.MakeBool(vm.IsProcessAlive(args[0])), nil
}

// Self implements erlang:self/0.
func Self(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 0); exc != nil {
		return 0, exc
	}
	return proc.PidTerm(), nil
}

// Spawn implements erlang:spawn/3. This core owns no bytecode loader
// (§1), so it cannot resolve (module, function) to a code address; it
// validates the shape of the call and spawns at the VM's single known
// entry point, leaving real module/function resolution to an external
// loader (see DESIGN.md).
func Spawn(vm VM, proc Process, args []term.LTerm) (term.LTerm, *Exception) {
	if exc := assertArity(args, 3); exc != nil {
		return 0, exc
	}
	if !args[0].IsAtom() || !args[1].IsAtom() || !args[2].IsList() {
		return 0, badarg()
	}
	pid, err := vm.SpawnPid(0)
	if err != nil {
		return 0, systemLimit()
	}
	return pid, nil
}
