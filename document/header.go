package document

import "strings"

// Header and footer are document-level comment runs. On load, a leading
// run of comment lines delimited from the first key's own comments by a
// blank line is reinterpreted as the header; the split scans backward from
// the first blank line of the leading run. Trailing comment lines after
// the last content line form the footer. On save the header is re-emitted
// above the first key with the blank separator re-inserted, and the footer
// after the last line.

// splitHeader removes the header run from text, returning the header
// comment lines and the remaining document text.
func splitHeader(text string) ([]*string, string) {
	lines := strings.SplitAfter(text, "\n")
	blank := -1
	end := 0
	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			if blank < 0 {
				blank = i
			}
			end = i + 1
			continue
		}
		// column-0 comments only: indented comment-looking lines can be
		// block scalar content
		if !strings.HasPrefix(ln, "#") {
			break
		}
		if blank >= 0 {
			break
		}
		end = i + 1
	}
	if blank < 0 || blank == 0 {
		return nil, text
	}
	header := make([]*string, 0, blank)
	for _, ln := range lines[:blank] {
		header = append(header, parseCommentLine(ln))
	}
	return header, strings.Join(lines[end:], "")
}

// splitFooter removes trailing comment lines from text, returning them
// and the remaining document text. Blank lines between the last content
// line and the footer are dropped.
func splitFooter(text string) ([]*string, string) {
	lines := strings.SplitAfter(text, "\n")
	start := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if !strings.HasPrefix(lines[i], "#") {
			break
		}
		start = i
	}
	if start == len(lines) {
		return nil, text
	}
	var footer []*string
	for _, ln := range lines[start:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		footer = append(footer, parseCommentLine(ln))
	}
	return footer, strings.Join(lines[:start], "")
}

// renderHeader renders the header run plus its blank separator line.
func renderHeader(lines []*string) string {
	if len(lines) == 0 {
		return ""
	}
	return renderCommentBlock(lines) + "\n\n"
}

func renderFooter(lines []*string) string {
	if len(lines) == 0 {
		return ""
	}
	return renderCommentBlock(lines) + "\n"
}
