package canopy

// Comment sequences use []*string: a nil entry is a blank separator line,
// an empty string an empty comment line. Both are distinct from "no
// comment", which is a nil or empty sequence.
//
// Comments are keyed by the current resolved leaf key inside its section,
// not by identity: renaming or moving a key loses its comments.

// Comments returns a defensive snapshot of the block comments above the
// key at path. No defaults-overlay semantics apply to comments.
func (s *Section) Comments(path string) []*string {
	sec, leaf, ok := s.commentSite(path)
	if !ok {
		return nil
	}
	return copyCommentLines(sec.blockComments[leaf])
}

// InlineComments returns a defensive snapshot of the comments on the same
// line as the key at path.
func (s *Section) InlineComments(path string) []*string {
	sec, leaf, ok := s.commentSite(path)
	if !ok {
		return nil
	}
	return copyCommentLines(sec.inlineComments[leaf])
}

// SetComments replaces the block comments for path outright; nil clears.
func (s *Section) SetComments(path string, lines []*string) error {
	if path == "" {
		return ErrEmptyPath
	}
	sec, leaf, ok := s.commentSite(path)
	if !ok {
		return nil
	}
	if lines == nil {
		delete(sec.blockComments, leaf)
		return nil
	}
	sec.blockComments[leaf] = copyCommentLines(lines)
	return nil
}

// SetInlineComments replaces the inline comments for path outright; nil
// clears.
func (s *Section) SetInlineComments(path string, lines []*string) error {
	if path == "" {
		return ErrEmptyPath
	}
	sec, leaf, ok := s.commentSite(path)
	if !ok {
		return nil
	}
	if lines == nil {
		delete(sec.inlineComments, leaf)
		return nil
	}
	sec.inlineComments[leaf] = copyCommentLines(lines)
	return nil
}

func (s *Section) commentSite(path string) (*Section, string, bool) {
	if path == "" {
		return nil, "", false
	}
	return s.resolveRead(path)
}

// CommentLines builds a comment sequence from plain strings. "" maps to a
// blank separator line entry and a bare "#" to an empty comment line, so
// both model states are expressible; any other string is comment text.
func CommentLines(lines ...string) []*string {
	res := make([]*string, len(lines))
	for i, ln := range lines {
		switch ln {
		case "":
			// blank separator, stays nil
		case "#":
			v := ""
			res[i] = &v
		default:
			v := ln
			res[i] = &v
		}
	}
	return res
}

func copyCommentLines(lines []*string) []*string {
	if lines == nil {
		return nil
	}
	res := make([]*string, len(lines))
	for i, ln := range lines {
		if ln == nil {
			continue
		}
		v := *ln
		res[i] = &v
	}
	return res
}
