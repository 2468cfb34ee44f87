package canopy

import (
	"reflect"
	"testing"
)

func scalarConfig() *Configuration {
	cfg := New()
	cfg.Set("b", FromBool(true))
	cfg.Set("i", FromInt(7))
	cfg.Set("wide", FromInt64(1<<40))
	cfg.Set("f", FromFloat64(3.9))
	cfg.Set("c", FromChar('x'))
	cfg.Set("s", FromString("hello"))
	cfg.Set("numtext", FromString("42"))
	cfg.Set("nums", FromList([]*Value{FromInt(1), FromInt(2)}))
	return cfg
}

func TestGetBool(t *testing.T) {
	cfg := scalarConfig()
	if !cfg.GetBool("b") {
		t.Error("b should be true")
	}
	// no coercion from text or numbers
	if cfg.GetBool("s") || cfg.GetBool("i") {
		t.Error("GetBool coerced a non-bool")
	}
	if cfg.GetBool("missing") {
		t.Error("missing should yield false")
	}
	if !cfg.GetBoolOr("missing", true) {
		t.Error("fallback not used")
	}
	if !cfg.IsBool("b") || cfg.IsBool("i") {
		t.Error("IsBool kind check wrong")
	}
}

func TestGetInt(t *testing.T) {
	cfg := scalarConfig()
	if got := cfg.GetInt("i"); got != 7 {
		t.Errorf("got %d want 7", got)
	}
	// floats cast with truncation
	if got := cfg.GetInt("f"); got != 3 {
		t.Errorf("got %d want 3", got)
	}
	// numeric accessors never parse text
	if got := cfg.GetInt("numtext"); got != 0 {
		t.Errorf("got %d want 0", got)
	}
	if got := cfg.GetIntOr("numtext", 9); got != 9 {
		t.Errorf("got %d want 9", got)
	}
	if got := cfg.GetIntOr("missing", 9); got != 9 {
		t.Errorf("got %d want 9", got)
	}
	if got := cfg.GetInt64("wide"); got != 1<<40 {
		t.Errorf("got %d want %d", got, int64(1)<<40)
	}
	if got := cfg.GetInt8("i"); got != 7 {
		t.Errorf("got %d want 7", got)
	}
}

func TestIsIntKinds(t *testing.T) {
	cfg := scalarConfig()
	if !cfg.IsInt32("i") || cfg.IsInt64("i") {
		t.Error("small int should be int32")
	}
	if !cfg.IsInt64("wide") || cfg.IsInt32("wide") {
		t.Error("wide int should be int64")
	}
	if !cfg.IsInt("i") || !cfg.IsInt("wide") {
		t.Error("IsInt should accept any integer kind")
	}
	if cfg.IsInt("f") {
		t.Error("IsInt accepted a float")
	}
}

func TestGetFloat(t *testing.T) {
	cfg := scalarConfig()
	if got := cfg.GetFloat64("f"); got != 3.9 {
		t.Errorf("got %v want 3.9", got)
	}
	// integers widen to float
	if got := cfg.GetFloat64("i"); got != 7.0 {
		t.Errorf("got %v want 7", got)
	}
	if got := cfg.GetFloat64("s"); got != 0 {
		t.Errorf("got %v want 0", got)
	}
	if got := cfg.GetFloat32Or("missing", 1.5); got != 1.5 {
		t.Errorf("got %v want 1.5", got)
	}
}

func TestGetChar(t *testing.T) {
	cfg := scalarConfig()
	if got := cfg.GetChar("c"); got != 'x' {
		t.Errorf("got %q want 'x'", got)
	}
	// scalar char accessor is exact, no coercion from 1-char strings
	cfg.Set("one", FromString("y"))
	if got := cfg.GetChar("one"); got != 0 {
		t.Errorf("got %q want 0", got)
	}
	if got := cfg.GetCharOr("one", 'z'); got != 'z' {
		t.Errorf("got %q want 'z'", got)
	}
}

func TestGetString(t *testing.T) {
	cfg := scalarConfig()
	cases := []struct {
		path string
		want string
	}{
		{"s", "hello"},
		{"i", "7"},
		{"b", "true"},
		{"f", "3.9"},
		{"c", "x"},
		{"nums", "[1, 2]"},
		{"missing", ""},
	}
	for _, c := range cases {
		if got := cfg.GetString(c.path); got != c.want {
			t.Errorf("GetString(%q) got %q want %q", c.path, got, c.want)
		}
	}
	if !cfg.IsString("s") || cfg.IsString("i") {
		t.Error("IsString requires an actual string kind")
	}
	if got := cfg.GetStringOr("missing", "d"); got != "d" {
		t.Errorf("got %q want %q", got, "d")
	}
}

func TestGetList(t *testing.T) {
	cfg := scalarConfig()
	list := cfg.GetList("nums")
	if len(list) != 2 {
		t.Fatalf("got %d elements want 2", len(list))
	}
	// snapshot: mutating the result leaves the stored list alone
	list[0] = FromInt(99)
	if got := cfg.GetList("nums")[0].AsInt64(); got != 1 {
		t.Errorf("stored list mutated through snapshot: %d", got)
	}
	if got := cfg.GetList("missing"); got == nil || len(got) != 0 {
		t.Errorf("missing list should be empty non-nil, got %v", got)
	}
	if got := cfg.GetList("s"); len(got) != 0 {
		t.Errorf("non-list should yield empty, got %v", got)
	}
	if got := cfg.GetListOr("missing", nil); got != nil {
		t.Errorf("fallback not used: %v", got)
	}
}

func TestGetSection(t *testing.T) {
	cfg := New()
	cfg.Set("db.host", FromString("localhost"))
	sec := cfg.GetSection("db")
	if sec == nil {
		t.Fatal("no db section")
	}
	if got := sec.GetString("host"); got != "localhost" {
		t.Errorf("got %q want localhost", got)
	}
	if cfg.GetSection("db.host") != nil {
		t.Error("scalar resolved as section")
	}
	if cfg.GetSection("missing") != nil {
		t.Error("missing resolved as section")
	}
}

func TestGetWith(t *testing.T) {
	cfg := New()
	cfg.AddDefault("k", FromInt(5))
	// GetWith bypasses configured defaults
	if v := cfg.GetWith("k", FromInt(9)); v.AsInt64() != 9 {
		t.Errorf("got %d want 9", v.AsInt64())
	}
	cfg.Set("k", FromInt(1))
	if v := cfg.GetWith("k", FromInt(9)); v.AsInt64() != 1 {
		t.Errorf("got %d want 1", v.AsInt64())
	}
}

func TestValuesSnapshot(t *testing.T) {
	cfg := New()
	cfg.Set("a", FromInt(1))
	cfg.Set("sub.b", FromInt(2))
	got := cfg.Values(true)
	paths := make([]string, len(got))
	for i, kv := range got {
		paths[i] = kv.Path
	}
	want := []string{"a", "sub", "sub.b"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("got %v want %v", paths, want)
	}
	if got[2].Value.AsInt64() != 2 {
		t.Errorf("got %v want 2", got[2].Value)
	}
}
