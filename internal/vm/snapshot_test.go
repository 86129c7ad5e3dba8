package vm

import (
	"bytes"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune obsolete snapshots left by renamed or
// removed test cases.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// runForSnapshot runs src against a fresh VM and returns everything it wrote
// to Out, failing the test on an unexpected runtime error so a snapshot
// never silently captures an error path instead of real output.
func runForSnapshot(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(src); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return buf.String()
}

// TestPrintFormatSnapshots locks down the print format for every container
// shape: nested lists, dicts with insertion order, and tuples from
// dict_items.
func TestPrintFormatSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"ints_and_floats", `1 2 add print 1 2.5 add print`},
		{"bool_result", `1 2 gt print 2 1 gt print`},
		{"nested_list", `1 2 3 3 list "a" "b" 2 list 2 list print`},
		{"dict_insertion_order", `"z" 1 "a" 2 2 dict print`},
		{"dict_items_as_tuples", `"k1" "v1" "k2" "v2" 2 dict dict_items print`},
		{"string_quoting_in_list", `"hello" 1 2 list print`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			out := runForSnapshot(t, c.src)
			snaps.MatchSnapshot(t, c.name, out)
		})
	}
}
