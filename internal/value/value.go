// Package value implements Forge's runtime value model: a tagged union of
// scalars plus shared-mutable container types.
//
// A Value is a Kind tag plus an opaque Data payload, read through Is*/As*
// accessors. Scalars have value semantics; List and Dict are pointer
// handles, so copies of a Value alias the same underlying container.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type tag of a Value.
type Kind byte

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStr
	KindList
	KindDict
	KindTuple
)

var kindNames = [...]string{
	KindNone:  "none",
	KindInt:   "int",
	KindFloat: "float",
	KindBool:  "bool",
	KindStr:   "str",
	KindList:  "list",
	KindDict:  "dict",
	KindTuple: "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is Forge's runtime value: a type tag plus an opaque payload.
type Value struct {
	Kind Kind
	Data interface{}
}

// None is the unit value: the result of a missing dict key, and the zero
// Value.
func None() Value { return Value{Kind: KindNone} }

func Int(i int64) Value     { return Value{Kind: KindInt, Data: i} }
func Float(f float64) Value { return Value{Kind: KindFloat, Data: f} }
func Bool(b bool) Value     { return Value{Kind: KindBool, Data: b} }
func Str(s string) Value    { return Value{Kind: KindStr, Data: s} }
func ListVal(l *List) Value { return Value{Kind: KindList, Data: l} }
func DictVal(d *Dict) Value { return Value{Kind: KindDict, Data: d} }
func TupleVal(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{Kind: KindTuple, Data: cp}
}

func (v Value) IsNone() bool  { return v.Kind == KindNone }
func (v Value) IsInt() bool   { return v.Kind == KindInt }
func (v Value) IsFloat() bool { return v.Kind == KindFloat }
func (v Value) IsBool() bool  { return v.Kind == KindBool }
func (v Value) IsStr() bool   { return v.Kind == KindStr }
func (v Value) IsList() bool  { return v.Kind == KindList }
func (v Value) IsDict() bool  { return v.Kind == KindDict }
func (v Value) IsTuple() bool { return v.Kind == KindTuple }
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func (v Value) AsInt() int64 {
	if v.Kind == KindInt {
		return v.Data.(int64)
	}
	return 0
}

func (v Value) AsFloat() float64 {
	switch v.Kind {
	case KindFloat:
		return v.Data.(float64)
	case KindInt:
		return float64(v.Data.(int64))
	default:
		return 0
	}
}

func (v Value) AsBool() bool {
	if v.Kind == KindBool {
		return v.Data.(bool)
	}
	return false
}

func (v Value) AsStr() string {
	if v.Kind == KindStr {
		return v.Data.(string)
	}
	return ""
}

func (v Value) AsList() *List {
	if v.Kind == KindList {
		if l, ok := v.Data.(*List); ok {
			return l
		}
	}
	return nil
}

func (v Value) AsDict() *Dict {
	if v.Kind == KindDict {
		if d, ok := v.Data.(*Dict); ok {
			return d
		}
	}
	return nil
}

func (v Value) AsTuple() []Value {
	if v.Kind == KindTuple {
		if t, ok := v.Data.([]Value); ok {
			return t
		}
	}
	return nil
}

// Truthy implements the truth test used by if/while: Bool uses its value,
// numbers are truthy iff nonzero, Str and containers iff nonempty, None is
// always false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.AsBool()
	case KindInt:
		return v.AsInt() != 0
	case KindFloat:
		return v.AsFloat() != 0
	case KindStr:
		return v.AsStr() != ""
	case KindList:
		return v.AsList().Len() > 0
	case KindDict:
		return v.AsDict().Len() > 0
	case KindTuple:
		return len(v.AsTuple()) > 0
	case KindNone:
		return false
	default:
		return false
	}
}

// String renders v in its printed form. Str values are quoted only when
// nested inside a container.
func (v Value) String() string {
	return v.format(false)
}

func (v Value) format(quoteStr bool) string {
	switch v.Kind {
	case KindNone:
		return "none"
	case KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case KindFloat:
		return formatFloat(v.AsFloat())
	case KindStr:
		if quoteStr {
			return strconv.Quote(v.AsStr())
		}
		return v.AsStr()
	case KindList:
		return v.AsList().format()
	case KindDict:
		return v.AsDict().format()
	case KindTuple:
		return formatTuple(v.AsTuple())
	default:
		return "?"
	}
}

// formatFloat always renders a decimal point: FormatFloat's 'g' verb omits
// it both for integral values ("3") and for integral exponent-form
// mantissas ("1e+20"), so both get a ".0" spliced in.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

func formatTuple(elems []Value) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.format(true))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal implements structural equality for the eq word: Int<->Float compare
// numerically, Str only equals Str, containers recurse element-wise.
func Equal(a, b Value) bool {
	switch {
	case a.IsInt() && b.IsInt():
		return a.AsInt() == b.AsInt()
	case a.IsNumber() && b.IsNumber():
		return a.AsFloat() == b.AsFloat()
	case a.Kind != b.Kind:
		return false
	}
	switch a.Kind {
	case KindNone:
		return true
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindStr:
		return a.AsStr() == b.AsStr()
	case KindList:
		return a.AsList().equal(b.AsList())
	case KindDict:
		return a.AsDict().equal(b.AsDict())
	case KindTuple:
		at, bt := a.AsTuple(), b.AsTuple()
		if len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less implements the gt/lt ordering contract: defined only on two numerics
// or two strings (lexicographic).
func Less(a, b Value) (bool, error) {
	switch {
	case a.IsInt() && b.IsInt():
		return a.AsInt() < b.AsInt(), nil
	case a.IsNumber() && b.IsNumber():
		return a.AsFloat() < b.AsFloat(), nil
	case a.IsStr() && b.IsStr():
		return a.AsStr() < b.AsStr(), nil
	default:
		return false, fmt.Errorf("cannot compare %s and %s", a.Kind, b.Kind)
	}
}
