package vm

import "github.com/forgelang/forge/internal/value"

// registerCoreBuiltins wires the variable-store words, the universal `str`
// coercion, and the memory-primitive stubs.
func (vm *VM) registerCoreBuiltins() {
	vm.builtins["store"] = (*VM).wordStore
	vm.builtins["load"] = (*VM).wordLoad
	vm.builtins["str"] = (*VM).wordStr
	vm.builtins["exit"] = (*VM).wordExit

	stub := (*VM).memoryStub
	vm.builtins["alloc"] = stub
	vm.builtins["free"] = stub
	vm.builtins["read"] = stub
	vm.builtins["write"] = stub
}

// wordStore implements "VAL NAME store": pop name (must be Str), pop value,
// bind in the flat variable store.
func (vm *VM) wordStore() error {
	name, err := vm.pop()
	if err != nil {
		return err
	}
	if !name.IsStr() {
		return vm.typeError("store", "Str", name.Kind.String())
	}
	val, err := vm.pop()
	if err != nil {
		return err
	}
	vm.vars[name.AsStr()] = val
	return nil
}

// wordLoad implements "NAME load": pop name, push its bound value, erroring
// if unbound.
func (vm *VM) wordLoad() error {
	name, err := vm.pop()
	if err != nil {
		return err
	}
	if !name.IsStr() {
		return vm.typeError("load", "Str", name.Kind.String())
	}
	v, ok := vm.vars[name.AsStr()]
	if !ok {
		return vm.nameError("unbound name %q", name.AsStr())
	}
	vm.push(v)
	return nil
}

// wordStr coerces any popped Value to its printed form.
func (vm *VM) wordStr() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	vm.push(value.Str(v.String()))
	return nil
}

// wordExit stops the current evaluation at the next dispatch boundary. The
// REPL checks Halted after each line to decide whether to keep prompting;
// in file mode it simply ends the program early with a zero exit code.
func (vm *VM) wordExit() error {
	vm.halted = true
	return nil
}

// memoryStub backs alloc/free/read/write: nameable and resolvable (so
// programs that reference them fail at call time, not at resolve time), but
// never operable.
func (vm *VM) memoryStub() error {
	return vm.nameError("memory primitive %q is not supported by this evaluator", vm.curTok.Literal)
}
