package vm

import (
	"github.com/forgelang/forge/internal/token"
	"github.com/forgelang/forge/internal/value"
)

// exec is the PC-driven dispatch loop: fetch the token at PC, advance PC,
// act on it. Literals push themselves; control-flow keywords move the PC
// through the resolver's jump table; any other word dispatches by name.
func (vm *VM) exec() error {
	toks := vm.program.Tokens
	for vm.pc < len(toks) {
		tok := toks[vm.pc]
		vm.curTok = tok
		vm.pc++

		if tok.Kind == token.EOF {
			break
		}

		switch tok.Kind {
		case token.Int:
			vm.push(value.Int(tok.IntVal))
			continue
		case token.Float:
			vm.push(value.Float(tok.FloatVal))
			continue
		case token.String:
			vm.push(value.Str(tok.Literal))
			continue
		}

		// tok.Kind == token.Word past this point.
		var err error
		switch tok.Literal {
		case token.KwIf:
			err = vm.controlIf()
		case token.KwElse:
			err = vm.controlElse()
		case token.KwWhile:
			err = vm.controlWhile()
		case token.KwFor:
			err = vm.controlFor()
		case token.KwTimes:
			err = vm.controlTimes()
		case token.KwDef:
			err = vm.controlDef()
		case token.KwEnd:
			err = vm.controlEnd()
		default:
			err = vm.dispatchWord(tok.Literal)
		}
		if err != nil {
			return err
		}
		if vm.halted {
			break
		}
	}
	return nil
}

// dispatchWord resolves a bareword to a built-in first, then a user
// procedure.
func (vm *VM) dispatchWord(name string) error {
	if fn, ok := vm.builtins[name]; ok {
		return fn(vm)
	}
	if rng, ok := vm.program.Procedures[name]; ok {
		return vm.call(rng)
	}
	return vm.nameError("unknown word %q", name)
}

// controlIf pops the condition and jumps to the true branch, the false
// branch (if an else exists), or past the whole construct.
func (vm *VM) controlIf() error {
	openerIdx := vm.pc - 1
	cond, err := vm.pop()
	if err != nil {
		return err
	}
	entry := vm.program.Jumps[openerIdx]
	if cond.Truthy() {
		return nil // fall straight into the true branch at opener+1
	}
	if entry.Else != 0 {
		vm.pc = entry.Else + 1
		return nil
	}
	vm.pc = entry.End + 1
	return nil
}

// controlElse is only ever reached by falling off the end of a true
// branch; it always means "skip the false branch".
func (vm *VM) controlElse() error {
	elseIdx := vm.pc - 1
	openerIdx := vm.program.Owners[elseIdx]
	entry := vm.program.Jumps[openerIdx]
	vm.pc = entry.End + 1
	return nil
}

// controlWhile pops nothing: looping is governed entirely by the condition
// each `end` finds on top of the stack, so the body always executes at
// least once and while simply falls through into it.
func (vm *VM) controlWhile() error {
	vm.loops = append(vm.loops, loopFrame{kind: loopWhile, openerIdx: vm.pc - 1})
	return nil
}

func (vm *VM) controlFor() error {
	openerIdx := vm.pc - 1
	hi, err := vm.pop()
	if err != nil {
		return err
	}
	lo, err := vm.pop()
	if err != nil {
		return err
	}
	if !lo.IsInt() || !hi.IsInt() {
		return vm.typeError("for", "Integer, Integer", lo.Kind.String()+", "+hi.Kind.String())
	}
	entry := vm.program.Jumps[openerIdx]
	if lo.AsInt() > hi.AsInt() {
		vm.pc = entry.End + 1
		return nil
	}
	vm.loops = append(vm.loops, loopFrame{kind: loopFor, openerIdx: openerIdx, hi: hi.AsInt(), cur: lo.AsInt()})
	vm.push(value.Int(lo.AsInt()))
	return nil
}

func (vm *VM) controlTimes() error {
	openerIdx := vm.pc - 1
	n, err := vm.pop()
	if err != nil {
		return err
	}
	if !n.IsInt() {
		return vm.typeError("times", "Integer", n.Kind.String())
	}
	entry := vm.program.Jumps[openerIdx]
	if n.AsInt() <= 0 {
		vm.pc = entry.End + 1
		return nil
	}
	vm.loops = append(vm.loops, loopFrame{kind: loopTimes, openerIdx: openerIdx, remaining: n.AsInt()})
	return nil
}

// controlDef skips straight past the procedure body; it only runs when
// execution is not already inside a call to it.
func (vm *VM) controlDef() error {
	openerIdx := vm.pc - 1
	entry := vm.program.Jumps[openerIdx]
	vm.pc = entry.End + 1
	return nil
}

// controlEnd closes whatever construct opened at Owners[thisIndex]: a
// no-op for if, a loop-or-exit decision for while/for/times, and a return
// for a procedure call.
func (vm *VM) controlEnd() error {
	endIdx := vm.pc - 1
	openerIdx, ok := vm.program.Owners[endIdx]
	if !ok {
		return nil
	}
	opener := vm.program.Tokens[openerIdx]

	switch opener.Literal {
	case token.KwIf:
		return nil
	case token.KwDef:
		return vm.ret()
	case token.KwWhile:
		return vm.endWhile()
	case token.KwFor:
		return vm.endFor()
	case token.KwTimes:
		return vm.endTimes()
	}
	return nil
}

func (vm *VM) endWhile() error {
	cond, err := vm.pop()
	if err != nil {
		return err
	}
	n := len(vm.loops)
	frame := vm.loops[n-1]
	if cond.Truthy() {
		vm.pc = frame.openerIdx + 1
		return nil
	}
	vm.loops = vm.loops[:n-1]
	return nil
}

func (vm *VM) endFor() error {
	// The current index sits on top of the stack for the body to use; the
	// construct discards it here regardless of what the body left behind.
	if _, err := vm.pop(); err != nil {
		return err
	}
	n := len(vm.loops)
	frame := &vm.loops[n-1]
	frame.cur++
	if frame.cur <= frame.hi {
		vm.push(value.Int(frame.cur))
		vm.pc = frame.openerIdx + 1
		return nil
	}
	vm.loops = vm.loops[:n-1]
	return nil
}

func (vm *VM) endTimes() error {
	n := len(vm.loops)
	frame := &vm.loops[n-1]
	frame.remaining--
	if frame.remaining > 0 {
		vm.pc = frame.openerIdx + 1
		return nil
	}
	vm.loops = vm.loops[:n-1]
	return nil
}
