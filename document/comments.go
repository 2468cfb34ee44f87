package document

import "strings"

// Comment sequences cross the engine boundary as newline-joined strings:
// a nil entry renders as a blank line, an empty string as a bare "#", and
// text as "# text". Parsing inverts the rendering.

func renderCommentBlock(lines []*string) string {
	if len(lines) == 0 {
		return ""
	}
	parts := make([]string, len(lines))
	for i, ln := range lines {
		switch {
		case ln == nil:
			parts[i] = ""
		case *ln == "":
			parts[i] = "#"
		default:
			parts[i] = "# " + *ln
		}
	}
	return strings.Join(parts, "\n")
}

// renderInlineComment flattens an inline sequence onto one line; inline
// positions have no room for blank separators, so nil entries are skipped.
func renderInlineComment(lines []*string) string {
	var parts []string
	for _, ln := range lines {
		if ln == nil {
			continue
		}
		if *ln == "" {
			parts = append(parts, "#")
			continue
		}
		parts = append(parts, "# "+*ln)
	}
	return strings.Join(parts, " ")
}

func parseCommentBlock(text string) []*string {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	res := make([]*string, 0, len(raw))
	for _, ln := range raw {
		res = append(res, parseCommentLine(ln))
	}
	return res
}

func parseInlineComment(text string) []*string {
	if text == "" {
		return nil
	}
	return []*string{parseCommentLine(text)}
}

// parseCommentLine strips the comment marker and one following space.
// A blank line maps to nil, a bare marker to the empty comment.
func parseCommentLine(ln string) *string {
	ln = strings.TrimRight(ln, "\r")
	if strings.TrimSpace(ln) == "" {
		return nil
	}
	ln = strings.TrimLeft(ln, " \t")
	ln = strings.TrimPrefix(ln, "#")
	ln = strings.TrimPrefix(ln, " ")
	return &ln
}
