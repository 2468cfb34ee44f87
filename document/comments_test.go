package document

import (
	"reflect"
	"testing"
)

func strp(s string) *string { return &s }

func TestRenderCommentBlock(t *testing.T) {
	lines := []*string{strp("a"), nil, strp(""), strp("b")}
	if got := renderCommentBlock(lines); got != "# a\n\n#\n# b" {
		t.Errorf("got %q", got)
	}
	if got := renderCommentBlock(nil); got != "" {
		t.Errorf("got %q want empty", got)
	}
}

func TestParseCommentBlock(t *testing.T) {
	got := parseCommentBlock("# a\n\n#\n# b")
	want := []*string{strp("a"), nil, strp(""), strp("b")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	if parseCommentBlock("") != nil {
		t.Error("empty text should parse to nil")
	}
}

func TestParseCommentLine(t *testing.T) {
	cases := []struct {
		in   string
		want *string
	}{
		{"# text", strp("text")},
		{"#text", strp("text")},
		{"#", strp("")},
		{"#  two spaces", strp(" two spaces")},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		got := parseCommentLine(c.in)
		if (got == nil) != (c.want == nil) {
			t.Errorf("parseCommentLine(%q) got %v want %v", c.in, got, c.want)
			continue
		}
		if got != nil && *got != *c.want {
			t.Errorf("parseCommentLine(%q) got %q want %q", c.in, *got, *c.want)
		}
	}
}

func TestRenderInlineComment(t *testing.T) {
	// inline positions flatten: no room for blank separators
	lines := []*string{strp("a"), nil, strp("b")}
	if got := renderInlineComment(lines); got != "# a # b" {
		t.Errorf("got %q", got)
	}
}

func TestSplitHeader(t *testing.T) {
	header, body := splitHeader("# h1\n# h2\n\nkey: 1\n")
	if len(header) != 2 || *header[0] != "h1" || *header[1] != "h2" {
		t.Errorf("got header %v", header)
	}
	if body != "key: 1\n" {
		t.Errorf("got body %q", body)
	}

	// no blank separator, no header
	header, body = splitHeader("# h\nkey: 1\n")
	if header != nil || body != "# h\nkey: 1\n" {
		t.Errorf("got %v %q", header, body)
	}

	// indented comment-looking lines are content, not header
	header, _ = splitHeader("  # block scalar line\nkey: 1\n")
	if header != nil {
		t.Errorf("got header %v want none", header)
	}
}

func TestSplitFooter(t *testing.T) {
	footer, body := splitFooter("key: 1\n\n# f1\n# f2\n")
	if len(footer) != 2 || *footer[0] != "f1" || *footer[1] != "f2" {
		t.Errorf("got footer %v", footer)
	}
	// the blank separator stays on the body side
	if body != "key: 1\n\n" {
		t.Errorf("got body %q", body)
	}

	footer, body = splitFooter("key: 1\n")
	if footer != nil || body != "key: 1\n" {
		t.Errorf("got %v %q", footer, body)
	}
}
