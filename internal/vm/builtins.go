package vm

// registerBuiltins wires every built-in word into vm.builtins, split
// across category files (stack, arithmetic, collections, strings, math,
// I/O) rather than one flat registration blob.
func (vm *VM) registerBuiltins() {
	vm.registerStackBuiltins()
	vm.registerCoreBuiltins()
	vm.registerArithBuiltins()
	vm.registerCollectionBuiltins()
	vm.registerStringBuiltins()
	vm.registerMathBuiltins()
	vm.registerIOBuiltins()
}

func (vm *VM) registerStackBuiltins() {
	vm.builtins["dup"] = (*VM).wordDup
	vm.builtins["swap"] = (*VM).wordSwap
	vm.builtins["drop"] = (*VM).wordDrop
	vm.builtins["over"] = (*VM).wordOver
	vm.builtins["rot"] = (*VM).wordRot
}

func (vm *VM) registerArithBuiltins() {
	vm.builtins["add"] = (*VM).wordAdd
	vm.builtins["sub"] = (*VM).wordSub
	vm.builtins["mul"] = (*VM).wordMul
	vm.builtins["div"] = (*VM).wordDiv
	vm.builtins["mod"] = (*VM).wordMod
	vm.builtins["eq"] = (*VM).wordEq
	vm.builtins["gt"] = (*VM).wordGt
	vm.builtins["lt"] = (*VM).wordLt
}
