package value

import (
	"fmt"
	"sort"
	"strings"
)

// List is a shared-mutable ordered sequence of Value. Every Value carrying
// a *List aliases the same backing storage: two stack slots or variable
// bindings that hold the same *List observe each other's mutations.
type List struct {
	elems []Value
}

// NewList constructs a List containing elems, in order.
func NewList(elems ...Value) *List {
	l := &List{elems: make([]Value, len(elems))}
	copy(l.elems, elems)
	return l
}

func (l *List) Len() int { return len(l.elems) }

func (l *List) Append(v Value) { l.elems = append(l.elems, v) }

func (l *List) Extend(other *List) {
	l.elems = append(l.elems, other.elems...)
}

func (l *List) Get(i int) (Value, error) {
	if i < 0 || i >= len(l.elems) {
		return None(), fmt.Errorf("list index %d out of range (len %d)", i, len(l.elems))
	}
	return l.elems[i], nil
}

func (l *List) Set(i int, v Value) error {
	if i < 0 || i >= len(l.elems) {
		return fmt.Errorf("list index %d out of range (len %d)", i, len(l.elems))
	}
	l.elems[i] = v
	return nil
}

func (l *List) Insert(i int, v Value) error {
	if i < 0 || i > len(l.elems) {
		return fmt.Errorf("list index %d out of range (len %d)", i, len(l.elems))
	}
	l.elems = append(l.elems, None())
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = v
	return nil
}

func (l *List) Pop(i int) (Value, error) {
	if i < 0 || i >= len(l.elems) {
		return None(), fmt.Errorf("list index %d out of range (len %d)", i, len(l.elems))
	}
	v := l.elems[i]
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	return v, nil
}

func (l *List) Remove(i int) error {
	_, err := l.Pop(i)
	return err
}

func (l *List) Clear() { l.elems = l.elems[:0] }

// Copy returns a new, independent List with the same elements (a shallow
// copy: nested containers keep their own sharing semantics).
func (l *List) Copy() *List {
	return NewList(l.elems...)
}

func (l *List) Slice(lo, hi int) (*List, error) {
	if lo < 0 || hi > len(l.elems) || lo > hi {
		return nil, fmt.Errorf("list slice [%d:%d] out of range (len %d)", lo, hi, len(l.elems))
	}
	return NewList(l.elems[lo:hi]...), nil
}

func (l *List) Index(v Value) int {
	for i, e := range l.elems {
		if Equal(e, v) {
			return i
		}
	}
	return -1
}

func (l *List) Contains(v Value) bool { return l.Index(v) >= 0 }

func (l *List) Count(v Value) int {
	n := 0
	for _, e := range l.elems {
		if Equal(e, v) {
			n++
		}
	}
	return n
}

func (l *List) Reverse() {
	for i, j := 0, len(l.elems)-1; i < j; i, j = i+1, j-1 {
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}
}

// Sort orders elements in place using Less; it errors if any adjacent pair
// is not comparable (mixed, non-numeric/non-string types).
func (l *List) Sort() error {
	var sortErr error
	sort.SliceStable(l.elems, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := Less(l.elems[i], l.elems[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less
	})
	return sortErr
}

func (l *List) Sum() (Value, error) {
	var isFloat bool
	var fsum float64
	var isum int64
	for _, e := range l.elems {
		if !e.IsNumber() {
			return None(), fmt.Errorf("list_sum: non-numeric element %s", e.Kind)
		}
		if e.IsFloat() {
			isFloat = true
		}
		fsum += e.AsFloat()
		isum += e.AsInt()
	}
	if isFloat {
		return Float(fsum), nil
	}
	return Int(isum), nil
}

func (l *List) extremum(wantMax bool) (Value, error) {
	if len(l.elems) == 0 {
		return None(), fmt.Errorf("empty list")
	}
	best := l.elems[0]
	for _, e := range l.elems[1:] {
		less, err := Less(e, best)
		if err != nil {
			return None(), err
		}
		if wantMax && !less || !wantMax && less {
			best = e
		}
	}
	return best, nil
}

func (l *List) Max() (Value, error) { return l.extremum(true) }
func (l *List) Min() (Value, error) { return l.extremum(false) }

func (l *List) equal(other *List) bool {
	if other == nil || len(l.elems) != len(other.elems) {
		return false
	}
	for i := range l.elems {
		if !Equal(l.elems[i], other.elems[i]) {
			return false
		}
	}
	return true
}

func (l *List) format() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.format(true))
	}
	sb.WriteByte(']')
	return sb.String()
}
