package vm

import "github.com/forgelang/forge/internal/resolver"

// call and ret implement procedure invocation with a call stack of saved
// return program counters. Procedures share the single flat variable
// store, so a call frame is nothing but a return address.
func (vm *VM) call(rng resolver.ProcRange) error {
	if rng.Start > rng.End {
		return nil // empty procedure body: calling it is a no-op
	}
	vm.callStack = append(vm.callStack, vm.pc)
	vm.pc = rng.Start
	return nil
}

// ret returns from the innermost active call. Reaching a procedure's
// closing end outside of any call (which a well-formed program never does,
// since controlDef always jumps straight past it) falls through and lets
// the PC continue naturally.
func (vm *VM) ret() error {
	n := len(vm.callStack)
	if n == 0 {
		return nil
	}
	addr := vm.callStack[n-1]
	vm.callStack = vm.callStack[:n-1]
	vm.pc = addr
	return nil
}
