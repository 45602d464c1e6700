package infer

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", false, KindBool},
		{"string", "s", KindString},
		{"float64", 1.5, KindNumber},
		{"int", 3, KindNumber},
		{"json.Number", json.Number("9"), KindNumber},
		{"generic map", map[string]any{}, KindObject},
		{"typed map", map[string]bool{}, KindObject},
		{"generic slice", []any{}, KindArray},
		{"typed slice", []int{1}, KindArray},
		{"int-keyed map", map[int]string{}, KindUnrepresentable},
		{"struct", struct{}{}, KindUnrepresentable},
		{"func", func() {}, KindUnrepresentable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := kindOf(tc.in); got != tc.want {
				t.Fatalf("kindOf = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNumberIsWhole(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{3, true},
		{uint8(7), true},
		{3.0, true},
		{3.5, false},
		{json.Number("42"), true},
		{json.Number("42.0"), true},
		{json.Number("42.5"), false},
		{json.Number("1e3"), true},
		{json.Number("9223372036854775808"), true}, // beyond int64
	}
	for _, tc := range cases {
		if got := numberIsWhole(tc.in); got != tc.want {
			t.Fatalf("numberIsWhole(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestObjectEntries_SortedByKey(t *testing.T) {
	es := objectEntries(map[string]any{"b": 1, "a": 2, "c": 3})
	if len(es) != 3 || es[0].key != "a" || es[1].key != "b" || es[2].key != "c" {
		t.Fatalf("entries not sorted: %+v", es)
	}
}

func TestFallbackTypeName(t *testing.T) {
	if got := fallbackTypeName(make(chan int)); got != "chan" {
		t.Fatalf("fallbackTypeName = %q", got)
	}
}
