package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Int(0), false},
		{Int(1), true},
		{Str(""), false},
		{Str("x"), true},
		{Bool(false), false},
		{None(), false},
		{ListVal(NewList()), false},
		{ListVal(NewList(Int(1))), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%v.Truthy() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualNumericCoercion(t *testing.T) {
	if !Equal(Int(2), Float(2.0)) {
		t.Error("2 should equal 2.0")
	}
	if Equal(Str("2"), Int(2)) {
		t.Error("str should never equal int")
	}
}

func TestListAliasing(t *testing.T) {
	l := NewList(Int(1), Int(2))
	v1 := ListVal(l)
	v2 := v1 // aliases the same *List
	v1.AsList().Append(Int(3))
	if v2.AsList().Len() != 3 {
		t.Fatalf("expected alias to observe mutation, got len %d", v2.AsList().Len())
	}
}

func TestListFormatQuotesStrings(t *testing.T) {
	l := NewList(Str("a"), Int(1))
	if got, want := l.format(), `["a", 1]`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDictInsertionOrderAndItems(t *testing.T) {
	d := NewDict()
	d.Set("b", Int(2))
	d.Set("a", Int(1))
	keys := d.Keys()
	if k0, _ := keys.Get(0); k0.AsStr() != "b" {
		t.Fatalf("expected first key 'b', got %v", k0)
	}
	items := d.Items()
	first, _ := items.Get(0)
	tup := first.AsTuple()
	if tup[0].AsStr() != "b" || tup[1].AsInt() != 2 {
		t.Fatalf("got %v", tup)
	}
}

func TestDictGetMissingIsNone(t *testing.T) {
	d := NewDict()
	if !d.Get("missing").IsNone() {
		t.Fatal("expected None for missing key")
	}
}

func TestDictPopMissingErrors(t *testing.T) {
	d := NewDict()
	if _, err := d.Pop("missing"); err == nil {
		t.Fatal("expected error popping missing key")
	}
}

func TestListSortAndIdempotence(t *testing.T) {
	l := NewList(Int(3), Int(1), Int(2))
	if err := l.Sort(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{1, 2, 3}
	for i, w := range want {
		v, _ := l.Get(i)
		if v.AsInt() != w {
			t.Errorf("index %d: got %d, want %d", i, v.AsInt(), w)
		}
	}
	snapshot := l.format()
	if err := l.Sort(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.format() != snapshot {
		t.Fatal("sorting an already-sorted list should be idempotent")
	}
}

func TestFloatPrintsWithDecimalPoint(t *testing.T) {
	if got := Float(3).String(); got != "3.0" {
		t.Errorf("got %q, want 3.0", got)
	}
	if got := Float(1e20).String(); got != "1.0e+20" {
		t.Errorf("got %q, want 1.0e+20", got)
	}
	if got := Float(1.5e20).String(); got != "1.5e+20" {
		t.Errorf("got %q, want 1.5e+20", got)
	}
}
