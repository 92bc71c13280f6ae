package normalization

import (
	"encoding/json"
	"testing"
)

func TestInt64DualEncodingsAgree(t *testing.T) {
	cases := []struct {
		name  string
		plain any
		comp  any
		want  int64
	}{
		{"small", int64(3), map[string]any{"low": int64(3), "high": int64(0)}, 3},
		{"float-low-high", float64(42), map[string]any{"low": float64(42), "high": float64(0)}, 42},
		{"above-32-bits", int64(1) << 33, map[string]any{"low": 0, "high": 2}, 1 << 33},
		{"negative", int64(-1), map[string]any{"low": -1, "high": -1}, -1},
		{"typed-map", int64(7), map[string]int64{"low": 7, "high": 0}, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := Int64(tc.plain)
			if !ok || p != tc.want {
				t.Fatalf("plain: want=%d got=%d ok=%v", tc.want, p, ok)
			}
			c, ok := Int64(tc.comp)
			if !ok || c != tc.want {
				t.Fatalf("composite: want=%d got=%d ok=%v", tc.want, c, ok)
			}
		})
	}
}

func TestInt64Rejects(t *testing.T) {
	for _, v := range []any{nil, "abc", 2.5, map[string]any{"low": 1}, []any{1}, true} {
		if _, ok := Int64(v); ok {
			t.Fatalf("Int64(%#v): expected rejection", v)
		}
	}
	if got, ok := Int64(json.Number("12")); !ok || got != 12 {
		t.Fatalf("json.Number: want=12 got=%d ok=%v", got, ok)
	}
	if got, ok := Int64(" 5 "); !ok || got != 5 {
		t.Fatalf("numeric string: want=5 got=%d ok=%v", got, ok)
	}
}

func TestStringsRequiresAllStrings(t *testing.T) {
	if got, ok := Strings([]any{"a", "b"}); !ok || len(got) != 2 || got[1] != "b" {
		t.Fatalf("Strings([]any): unexpected %v ok=%v", got, ok)
	}
	if _, ok := Strings([]any{"a", 1}); ok {
		t.Fatal("mixed slice must be rejected")
	}
	if _, ok := Strings("a,b"); ok {
		t.Fatal("plain string must be rejected")
	}
}

func TestBoolWords(t *testing.T) {
	cases := map[any]bool{"Mandatory": true, "optional": false, int64(1): true, false: false}
	for in, want := range cases {
		got, ok := Bool(in)
		if !ok || got != want {
			t.Fatalf("Bool(%#v): want=%v got=%v ok=%v", in, want, got, ok)
		}
	}
	if _, ok := Bool("maybe"); ok {
		t.Fatal("unknown word must not parse")
	}
}

func TestVector(t *testing.T) {
	if n, ok := Vector([]any{0.1, 0.2, int64(0)}); !ok || n != 3 {
		t.Fatalf("Vector: want 3 got=%d ok=%v", n, ok)
	}
	for _, v := range []any{nil, []any{}, []any{"x"}, "0.1,0.2"} {
		if _, ok := Vector(v); ok {
			t.Fatalf("Vector(%#v): expected rejection", v)
		}
	}
}
