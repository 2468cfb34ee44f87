package canopy

import (
	"errors"
	"testing"
)

func TestSetComments(t *testing.T) {
	cfg := New()
	cfg.Set("k", FromInt(1))
	if err := cfg.SetComments("k", CommentLines("first", "", "second")); err != nil {
		t.Fatal(err)
	}
	got := cfg.Comments("k")
	if len(got) != 3 {
		t.Fatalf("got %d lines want 3", len(got))
	}
	if got[0] == nil || *got[0] != "first" {
		t.Errorf("got %v want first", got[0])
	}
	// the empty input line is a blank separator, carried as nil
	if got[1] != nil {
		t.Errorf("got %q want nil separator", *got[1])
	}
	if got[2] == nil || *got[2] != "second" {
		t.Errorf("got %v want second", got[2])
	}
}

func TestCommentsSnapshot(t *testing.T) {
	cfg := New()
	cfg.Set("k", FromInt(1))
	cfg.SetComments("k", CommentLines("note"))
	snap := cfg.Comments("k")
	*snap[0] = "tampered"
	if got := cfg.Comments("k"); *got[0] != "note" {
		t.Errorf("stored comments mutated through snapshot: %q", *got[0])
	}
}

func TestInlineComments(t *testing.T) {
	cfg := New()
	cfg.Set("k", FromInt(1))
	cfg.SetInlineComments("k", CommentLines("right here"))
	got := cfg.InlineComments("k")
	if len(got) != 1 || got[0] == nil || *got[0] != "right here" {
		t.Errorf("got %v", got)
	}
	cfg.SetInlineComments("k", nil)
	if cfg.InlineComments("k") != nil {
		t.Error("nil should clear inline comments")
	}
}

func TestCommentsUnresolvable(t *testing.T) {
	cfg := New()
	// soft no-op on paths that do not resolve
	if err := cfg.SetComments("nothing.here", CommentLines("x")); err != nil {
		t.Errorf("got %v want nil", err)
	}
	if cfg.Comments("nothing.here") != nil {
		t.Error("comments appeared on an unresolvable path")
	}
	if err := cfg.SetComments("", CommentLines("x")); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got %v want ErrEmptyPath", err)
	}
}

func TestCommentsOnAbsentKey(t *testing.T) {
	cfg := New()
	cfg.CreateSection("sec")
	// the leaf need not hold a value, only its section must resolve
	cfg.SetComments("sec.pending", CommentLines("for later"))
	got := cfg.Comments("sec.pending")
	if len(got) != 1 || *got[0] != "for later" {
		t.Errorf("got %v", got)
	}
}

func TestCommentLines(t *testing.T) {
	got := CommentLines("a", "", "#", "b")
	if len(got) != 4 {
		t.Fatalf("got %d want 4", len(got))
	}
	if got[0] == nil || *got[0] != "a" {
		t.Errorf("got %v want a", got[0])
	}
	// "" is a blank separator, "#" an empty comment line
	if got[1] != nil {
		t.Errorf("got %q want nil separator", *got[1])
	}
	if got[2] == nil || *got[2] != "" {
		t.Errorf("got %v want empty comment", got[2])
	}
	if got[3] == nil || *got[3] != "b" {
		t.Errorf("got %v want b", got[3])
	}
}
