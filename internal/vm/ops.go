package vm

import (
	"math"

	"github.com/forgelang/forge/internal/value"
)

// Arithmetic and comparison words. Numeric coercion is centralized in
// arith: both operands stay Int only when both are Int, otherwise both
// promote to Float.

// popTwo pops right-operand then left-operand, so "a b op" computes
// a op b.
func (vm *VM) popTwo() (left, right value.Value, err error) {
	right, err = vm.pop()
	if err != nil {
		return
	}
	left, err = vm.pop()
	return
}

func (vm *VM) wordAdd() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	if left.IsStr() && right.IsStr() {
		vm.push(value.Str(left.AsStr() + right.AsStr()))
		return nil
	}
	return vm.arith(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
}

func (vm *VM) wordSub() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	return vm.arith(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

func (vm *VM) wordMul() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	return vm.arith(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

func (vm *VM) wordDiv() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	if !left.IsNumber() || !right.IsNumber() {
		return vm.typeError("div", "Number, Number", left.Kind.String()+", "+right.Kind.String())
	}
	if left.IsInt() && right.IsInt() {
		if right.AsInt() == 0 {
			return vm.arithError("division by zero")
		}
		vm.push(value.Int(left.AsInt() / right.AsInt())) // truncates toward zero, per Go int division
		return nil
	}
	if right.AsFloat() == 0 {
		return vm.arithError("division by zero")
	}
	vm.push(value.Float(left.AsFloat() / right.AsFloat()))
	return nil
}

func (vm *VM) wordMod() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	if !left.IsNumber() || !right.IsNumber() {
		return vm.typeError("mod", "Number, Number", left.Kind.String()+", "+right.Kind.String())
	}
	if left.IsInt() && right.IsInt() {
		if right.AsInt() == 0 {
			return vm.arithError("modulo by zero")
		}
		vm.push(value.Int(left.AsInt() % right.AsInt())) // Go's % takes the sign of the dividend
		return nil
	}
	if right.AsFloat() == 0 {
		return vm.arithError("modulo by zero")
	}
	vm.push(value.Float(math.Mod(left.AsFloat(), right.AsFloat()))) // math.Mod also takes the sign of the dividend
	return nil
}

// arith promotes both operands to Float unless both are Int, then applies
// the matching op.
func (vm *VM) arith(left, right value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) error {
	if !left.IsNumber() || !right.IsNumber() {
		return vm.typeError("arithmetic", "Number, Number", left.Kind.String()+", "+right.Kind.String())
	}
	if left.IsInt() && right.IsInt() {
		vm.push(value.Int(intOp(left.AsInt(), right.AsInt())))
		return nil
	}
	vm.push(value.Float(floatOp(left.AsFloat(), right.AsFloat())))
	return nil
}

func (vm *VM) wordEq() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	vm.push(value.Bool(value.Equal(left, right)))
	return nil
}

func (vm *VM) wordGt() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	less, cmpErr := value.Less(right, left)
	if cmpErr != nil {
		return vm.typeError("gt", "two numbers or two strings", left.Kind.String()+", "+right.Kind.String())
	}
	vm.push(value.Bool(less))
	return nil
}

func (vm *VM) wordLt() error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	less, cmpErr := value.Less(left, right)
	if cmpErr != nil {
		return vm.typeError("lt", "two numbers or two strings", left.Kind.String()+", "+right.Kind.String())
	}
	vm.push(value.Bool(less))
	return nil
}
