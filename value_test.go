package canopy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromIntNarrowing(t *testing.T) {
	if v := FromInt(7); v.Kind != KindInt32 {
		t.Errorf("got %v want int32", v.Kind)
	}
	if v := FromInt(math.MinInt32); v.Kind != KindInt32 {
		t.Errorf("got %v want int32", v.Kind)
	}
	if v := FromInt(math.MaxInt32 + 1); v.Kind != KindInt64 {
		t.Errorf("got %v want int64", v.Kind)
	}
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		in   any
		kind Kind
	}{
		{true, KindBool},
		{int8(1), KindInt8},
		{uint8(1), KindInt16},
		{uint16(1), KindInt32},
		{int64(1), KindInt64},
		{uint(1), KindInt64},
		{float32(1), KindFloat32},
		{1.5, KindFloat64},
		{"x", KindString},
		{[]any{1, 2}, KindList},
		{map[string]any{"k": 1}, KindSection},
		{struct{}{}, KindString},
	}
	for _, c := range cases {
		v := FromAny(c.in)
		if v == nil || v.Kind != c.kind {
			t.Errorf("FromAny(%v) got %v want %v", c.in, v, c.kind)
		}
	}
	if FromAny(nil) != nil {
		t.Error("FromAny(nil) should be nil")
	}
	orig := FromInt(3)
	if FromAny(orig) != orig {
		t.Error("FromAny should pass *Value through")
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{FromBool(true), "true"},
		{FromInt(42), "42"},
		{FromFloat64(1.5), "1.5"},
		{FromChar('q'), "q"},
		{FromString("s"), "s"},
		{FromList([]*Value{FromInt(1), FromString("a")}), "[1, a]"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := c.v.Text(); got != c.want {
			t.Errorf("got %q want %q", got, c.want)
		}
	}
}

func TestInterface(t *testing.T) {
	cfg := New()
	cfg.Set("n", FromInt(1))
	cfg.Set("sub.s", FromString("x"))
	cfg.Set("list", FromList([]*Value{FromBool(true), FromFloat64(2.5)}))
	got := cfg.Get("").Interface()
	want := map[string]any{
		"n":    int32(1),
		"sub":  map[string]any{"s": "x"},
		"list": []any{true, 2.5},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	cfg := New()
	cfg.Set("sub.k", FromInt(1))
	cfg.Set("list", FromList([]*Value{FromInt(2)}))

	clone := cfg.Get("").Clone()
	if clone.Section.Root() != nil {
		t.Error("clone should be detached")
	}
	// deep: mutation does not leak either way
	clone.Section.Set("sub.k", FromInt(99))
	if got := cfg.GetInt("sub.k"); got != 1 {
		t.Errorf("original mutated: %d", got)
	}
	lv := cfg.Get("list").Clone()
	lv.List[0] = FromInt(88)
	if got := cfg.GetIntList("list"); got[0] != 2 {
		t.Errorf("original list mutated: %d", got[0])
	}
}

func TestAsNumericNilSafe(t *testing.T) {
	var v *Value
	if v.AsInt64() != 0 || v.AsFloat64() != 0 {
		t.Error("nil receiver should yield zero")
	}
	if FromString("5").AsInt64() != 0 {
		t.Error("text should not convert")
	}
	if FromFloat64(2.9).AsInt64() != 2 {
		t.Error("float should truncate")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %v want %v", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindInt8.IsInteger() || !KindInt64.IsInteger() || KindFloat64.IsInteger() {
		t.Error("IsInteger wrong")
	}
	if !KindFloat32.IsFloat() || KindInt32.IsFloat() {
		t.Error("IsFloat wrong")
	}
	if !KindChar.IsScalar() || KindList.IsScalar() || KindSection.IsScalar() {
		t.Error("IsScalar wrong")
	}
}
