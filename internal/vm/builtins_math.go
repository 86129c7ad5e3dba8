package vm

import (
	"math"

	"github.com/forgelang/forge/internal/value"
)

// registerMathBuiltins wires the math and boolean-connective words that
// sit on top of the core arithmetic in ops.go.
func (vm *VM) registerMathBuiltins() {
	vm.builtins["abs"] = (*VM).wordAbs
	vm.builtins["min"] = (*VM).wordMin
	vm.builtins["max"] = (*VM).wordMax
	vm.builtins["pow"] = (*VM).wordPow
	vm.builtins["sqrt"] = (*VM).wordSqrt
	vm.builtins["neg"] = (*VM).wordNeg
	vm.builtins["type_of"] = (*VM).wordTypeOf
	vm.builtins["and"] = (*VM).wordAnd
	vm.builtins["or"] = (*VM).wordOr
	vm.builtins["not"] = (*VM).wordNot
}

func (vm *VM) popNumber(context string) (value.Value, error) {
	v, err := vm.pop()
	if err != nil {
		return value.None(), err
	}
	if !v.IsNumber() {
		return value.None(), vm.typeError(context, "Number", v.Kind.String())
	}
	return v, nil
}

func (vm *VM) wordAbs() error {
	v, err := vm.popNumber("abs")
	if err != nil {
		return err
	}
	if v.IsInt() {
		n := v.AsInt()
		if n < 0 {
			n = -n
		}
		vm.push(value.Int(n))
		return nil
	}
	vm.push(value.Float(math.Abs(v.AsFloat())))
	return nil
}

func (vm *VM) wordMin() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	less, cmpErr := value.Less(left, right)
	if cmpErr != nil {
		return vm.typeError("min", "two numbers", left.Kind.String()+", "+right.Kind.String())
	}
	if less {
		vm.push(left)
	} else {
		vm.push(right)
	}
	return nil
}

func (vm *VM) wordMax() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	less, cmpErr := value.Less(left, right)
	if cmpErr != nil {
		return vm.typeError("max", "two numbers", left.Kind.String()+", "+right.Kind.String())
	}
	if less {
		vm.push(right)
	} else {
		vm.push(left)
	}
	return nil
}

// wordPow computes base^exp, staying in Int when both operands are Int and
// the exponent is non-negative; otherwise promotes to Float via math.Pow.
func (vm *VM) wordPow() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	if !left.IsNumber() || !right.IsNumber() {
		return vm.typeError("pow", "Number, Number", left.Kind.String()+", "+right.Kind.String())
	}
	if left.IsInt() && right.IsInt() && right.AsInt() >= 0 {
		result := int64(1)
		base := left.AsInt()
		for i := int64(0); i < right.AsInt(); i++ {
			result *= base
		}
		vm.push(value.Int(result))
		return nil
	}
	vm.push(value.Float(math.Pow(left.AsFloat(), right.AsFloat())))
	return nil
}

func (vm *VM) wordSqrt() error {
	v, err := vm.popNumber("sqrt")
	if err != nil {
		return err
	}
	vm.push(value.Float(math.Sqrt(v.AsFloat())))
	return nil
}

func (vm *VM) wordNeg() error {
	v, err := vm.popNumber("neg")
	if err != nil {
		return err
	}
	if v.IsInt() {
		vm.push(value.Int(-v.AsInt()))
		return nil
	}
	vm.push(value.Float(-v.AsFloat()))
	return nil
}

func (vm *VM) wordTypeOf() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	vm.push(value.Str(v.Kind.String()))
	return nil
}

// and/or/not are plain truthy-combining words, not control flow: by the
// time the operator token is reached in a postfix stream, both operands
// have already been evaluated, so there is nothing left to short-circuit.
func (vm *VM) wordAnd() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	vm.push(value.Bool(left.Truthy() && right.Truthy()))
	return nil
}

func (vm *VM) wordOr() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	vm.push(value.Bool(left.Truthy() || right.Truthy()))
	return nil
}

func (vm *VM) wordNot() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	vm.push(value.Bool(!v.Truthy()))
	return nil
}
