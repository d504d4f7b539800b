package core

import (
	"reflect"
	"testing"
)

func TestStringArg(t *testing.T) {
	args := map[string]any{"name": "billing", "empty": "", "num": 3}
	if got := StringArg(args, "name", "fallback"); got != "billing" {
		t.Errorf("StringArg = %q", got)
	}
	if got := StringArg(args, "empty", "fallback"); got != "fallback" {
		t.Errorf("empty string must fall back, got %q", got)
	}
	if got := StringArg(args, "num", "fallback"); got != "fallback" {
		t.Errorf("mistyped value must fall back, got %q", got)
	}
}

func TestIntArg(t *testing.T) {
	args := map[string]any{"a": 4, "b": int64(5), "c": 6.0, "d": "x"}
	for key, want := range map[string]int{"a": 4, "b": 5, "c": 6, "d": -1, "missing": -1} {
		if got := IntArg(args, key, -1); got != want {
			t.Errorf("IntArg(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestMapArgNilSafe(t *testing.T) {
	m := MapArg(map[string]any{"x": 1}, "missing")
	if m != nil {
		t.Errorf("missing key must yield nil map, got %v", m)
	}
	if _, ok := m["anything"]; ok {
		t.Error("reading a nil map must be safe and empty")
	}
}

func TestStringsArg(t *testing.T) {
	args := map[string]any{
		"typed": []string{"a", "b"},
		"mixed": []any{"a", 1, "b"},
	}
	if got := StringsArg(args, "typed"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("typed = %v", got)
	}
	if got := StringsArg(args, "mixed"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("mixed must drop non-strings, got %v", got)
	}
	if got := StringsArg(args, "missing"); got != nil {
		t.Errorf("missing = %v", got)
	}
}

func TestFloatsArg(t *testing.T) {
	args := map[string]any{
		"typed": []float64{1.5, 2},
		"mixed": []any{1.5, 2, "x"},
	}
	if got := FloatsArg(args, "typed"); !reflect.DeepEqual(got, []float64{1.5, 2}) {
		t.Errorf("typed = %v", got)
	}
	if got := FloatsArg(args, "mixed"); !reflect.DeepEqual(got, []float64{1.5, 2}) {
		t.Errorf("mixed must keep numerics only, got %v", got)
	}
}
