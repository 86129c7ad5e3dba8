package vm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forgelang/forge/internal/value"
)

// registerStringBuiltins wires the str_* word family. Upper/lower/
// capitalize go through golang.org/x/text/cases rather than
// strings.ToUpper/ToLower: cases.Upper/Lower apply the full Unicode casing
// algorithm (handling cases like German ß) instead of the simple
// rune-by-rune stdlib mapping.
var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func (vm *VM) registerStringBuiltins() {
	vm.builtins["str_upper"] = (*VM).wordStrUpper
	vm.builtins["str_lower"] = (*VM).wordStrLower
	vm.builtins["str_capitalize"] = (*VM).wordStrCapitalize
	vm.builtins["str_strip"] = (*VM).wordStrStrip
	vm.builtins["str_find"] = (*VM).wordStrFind
	vm.builtins["str_replace"] = (*VM).wordStrReplace
	vm.builtins["str_split"] = (*VM).wordStrSplit
	vm.builtins["str_split_on"] = (*VM).wordStrSplitOn
	vm.builtins["str_join"] = (*VM).wordStrJoin
	vm.builtins["str_startswith"] = (*VM).wordStrStartswith
	vm.builtins["str_endswith"] = (*VM).wordStrEndswith
	vm.builtins["str_isdigit"] = (*VM).wordStrIsdigit
	vm.builtins["str_isalpha"] = (*VM).wordStrIsalpha
}

func (vm *VM) popStr(context string) (string, error) {
	v, err := vm.pop()
	if err != nil {
		return "", err
	}
	if !v.IsStr() {
		return "", vm.typeError(context, "Str", v.Kind.String())
	}
	return v.AsStr(), nil
}

func (vm *VM) wordStrUpper() error {
	s, err := vm.popStr("str_upper")
	if err != nil {
		return err
	}
	vm.push(value.Str(upperCaser.String(s)))
	return nil
}

func (vm *VM) wordStrLower() error {
	s, err := vm.popStr("str_lower")
	if err != nil {
		return err
	}
	vm.push(value.Str(lowerCaser.String(s)))
	return nil
}

// wordStrCapitalize upper-cases the first scalar and lower-cases the rest,
// matching the common "Capitalize" contract (distinct from Title, which
// would upper-case every word).
func (vm *VM) wordStrCapitalize() error {
	s, err := vm.popStr("str_capitalize")
	if err != nil {
		return err
	}
	if s == "" {
		vm.push(value.Str(""))
		return nil
	}
	r, size := utf8.DecodeRuneInString(s)
	vm.push(value.Str(upperCaser.String(string(r)) + lowerCaser.String(s[size:])))
	return nil
}

func (vm *VM) wordStrStrip() error {
	s, err := vm.popStr("str_strip")
	if err != nil {
		return err
	}
	vm.push(value.Str(strings.TrimSpace(s)))
	return nil
}

// runeIndex finds needle's scalar (not byte) offset within haystack, or -1.
func runeIndex(haystack, needle string) int {
	byteIdx := strings.Index(haystack, needle)
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(haystack[:byteIdx])
}

func (vm *VM) wordStrFind() error {
	needle, err := vm.popStr("str_find")
	if err != nil {
		return err
	}
	haystack, err := vm.popStr("str_find")
	if err != nil {
		return err
	}
	vm.push(value.Int(int64(runeIndex(haystack, needle))))
	return nil
}

func (vm *VM) wordStrReplace() error {
	repl, err := vm.popStr("str_replace")
	if err != nil {
		return err
	}
	needle, err := vm.popStr("str_replace")
	if err != nil {
		return err
	}
	haystack, err := vm.popStr("str_replace")
	if err != nil {
		return err
	}
	vm.push(value.Str(strings.ReplaceAll(haystack, needle, repl)))
	return nil
}

// wordStrSplit splits on runs of Unicode whitespace, the zero-argument
// convention most languages give a parameterless "split".
func (vm *VM) wordStrSplit() error {
	s, err := vm.popStr("str_split")
	if err != nil {
		return err
	}
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	elems := make([]value.Value, len(fields))
	for i, f := range fields {
		elems[i] = value.Str(f)
	}
	vm.push(value.ListVal(value.NewList(elems...)))
	return nil
}

func (vm *VM) wordStrSplitOn() error {
	sep, err := vm.popStr("str_split_on")
	if err != nil {
		return err
	}
	s, err := vm.popStr("str_split_on")
	if err != nil {
		return err
	}
	parts := strings.Split(s, sep)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str(p)
	}
	vm.push(value.ListVal(value.NewList(elems...)))
	return nil
}

// wordStrJoin pops the separator first, then the List.
func (vm *VM) wordStrJoin() error {
	sep, err := vm.popStr("str_join")
	if err != nil {
		return err
	}
	l, err := vm.popList("str_join")
	if err != nil {
		return err
	}
	parts := make([]string, l.Len())
	for i := 0; i < l.Len(); i++ {
		e, _ := l.Get(i)
		if !e.IsStr() {
			return vm.typeError("str_join", "a List of Str", e.Kind.String())
		}
		parts[i] = e.AsStr()
	}
	vm.push(value.Str(strings.Join(parts, sep)))
	return nil
}

func (vm *VM) wordStrStartswith() error {
	prefix, err := vm.popStr("str_startswith")
	if err != nil {
		return err
	}
	s, err := vm.popStr("str_startswith")
	if err != nil {
		return err
	}
	vm.push(value.Bool(strings.HasPrefix(s, prefix)))
	return nil
}

func (vm *VM) wordStrEndswith() error {
	suffix, err := vm.popStr("str_endswith")
	if err != nil {
		return err
	}
	s, err := vm.popStr("str_endswith")
	if err != nil {
		return err
	}
	vm.push(value.Bool(strings.HasSuffix(s, suffix)))
	return nil
}

func (vm *VM) wordStrIsdigit() error {
	s, err := vm.popStr("str_isdigit")
	if err != nil {
		return err
	}
	vm.push(value.Bool(isAllFunc(s, unicode.IsDigit)))
	return nil
}

func (vm *VM) wordStrIsalpha() error {
	s, err := vm.popStr("str_isalpha")
	if err != nil {
		return err
	}
	vm.push(value.Bool(isAllFunc(s, unicode.IsLetter)))
	return nil
}

func isAllFunc(s string, f func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !f(r) {
			return false
		}
	}
	return true
}
