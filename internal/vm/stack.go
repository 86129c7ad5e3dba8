package vm

import "github.com/forgelang/forge/internal/value"

// push/pop/peek are the primitive stack operations; dup/swap/drop/over/rot
// are the stack-shuffling words, each built on top of them and each
// underflow-checked against its own arity.

func (vm *VM) push(v value.Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() (value.Value, error) {
	if len(vm.stack) == 0 {
		return value.None(), vm.stackError("stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

func (vm *VM) peek() (value.Value, error) {
	if len(vm.stack) == 0 {
		return value.None(), vm.stackError("stack underflow")
	}
	return vm.stack[len(vm.stack)-1], nil
}

// peekN returns the value n slots from the top (0 = top) without popping.
func (vm *VM) peekN(n int) (value.Value, error) {
	if n < 0 || n >= len(vm.stack) {
		return value.None(), vm.stackError("stack underflow")
	}
	return vm.stack[len(vm.stack)-1-n], nil
}

func (vm *VM) wordDup() error {
	v, err := vm.peek()
	if err != nil {
		return err
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordSwap() error {
	if len(vm.stack) < 2 {
		return vm.stackError("stack underflow")
	}
	n := len(vm.stack)
	vm.stack[n-1], vm.stack[n-2] = vm.stack[n-2], vm.stack[n-1]
	return nil
}

func (vm *VM) wordDrop() error {
	_, err := vm.pop()
	return err
}

func (vm *VM) wordOver() error {
	v, err := vm.peekN(1)
	if err != nil {
		return err
	}
	vm.push(v)
	return nil
}

func (vm *VM) wordRot() error {
	if len(vm.stack) < 3 {
		return vm.stackError("stack underflow")
	}
	n := len(vm.stack)
	vm.stack[n-3], vm.stack[n-2], vm.stack[n-1] = vm.stack[n-2], vm.stack[n-1], vm.stack[n-3]
	return nil
}
