package canopy

import (
	"reflect"
	"testing"
)

func listConfig(elts ...*Value) *Configuration {
	cfg := New()
	cfg.Set("list", FromList(elts))
	return cfg
}

func TestGetIntList(t *testing.T) {
	// element coercion parses text, and failures drop silently
	cfg := listConfig(FromString("1"), FromString("x"), FromInt(3), FromFloat64(4.7), FromChar('A'))
	want := []int{1, 3, 4, 65}
	if got := cfg.GetIntList("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetInt64List(t *testing.T) {
	cfg := listConfig(FromInt64(1<<40), FromString("12"))
	want := []int64{1 << 40, 12}
	if got := cfg.GetInt64List("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetBoolList(t *testing.T) {
	cfg := listConfig(FromBool(true), FromString("false"), FromString("yes"), FromInt(1))
	want := []bool{true, false}
	if got := cfg.GetBoolList("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetFloat64List(t *testing.T) {
	cfg := listConfig(FromFloat64(1.5), FromString("2.5"), FromString("x"), FromInt(3))
	want := []float64{1.5, 2.5, 3}
	if got := cfg.GetFloat64List("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetCharList(t *testing.T) {
	cfg := listConfig(FromChar('a'), FromString("b"), FromString("bc"), FromInt32(99))
	want := []rune{'a', 'b', 99}
	if got := cfg.GetCharList("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetStringList(t *testing.T) {
	// scalars stringify, aggregates drop
	cfg := listConfig(FromInt(1), FromBool(true), FromString("a"), FromMapping(nil), FromList(nil))
	want := []string{"1", "true", "a"}
	if got := cfg.GetStringList("list"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGetSectionList(t *testing.T) {
	cfg := listConfig(
		FromMapping([]KeyVal{{Path: "host", Value: FromString("a")}}),
		FromInt(1),
		FromMapping([]KeyVal{{Path: "host", Value: FromString("b")}}),
	)
	secs := cfg.GetSectionList("list")
	if len(secs) != 2 {
		t.Fatalf("got %d sections want 2", len(secs))
	}
	if got := secs[0].GetString("host"); got != "a" {
		t.Errorf("got %q want a", got)
	}
	if got := secs[1].GetString("host"); got != "b" {
		t.Errorf("got %q want b", got)
	}
	if secs[0].Root() != nil || secs[0].Parent() != nil {
		t.Error("list sections should be detached")
	}
}

func TestListMissing(t *testing.T) {
	cfg := New()
	if got := cfg.GetIntList("nope"); got == nil || len(got) != 0 {
		t.Errorf("got %v want empty non-nil", got)
	}
	cfg.Set("scalar", FromInt(1))
	if got := cfg.GetStringList("scalar"); len(got) != 0 {
		t.Errorf("got %v want empty", got)
	}
}
