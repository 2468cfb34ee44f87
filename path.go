package canopy

import "strings"

// splitPath splits p on sep. Empty segments are kept: "a..b" addresses the
// key "" inside section "a".
func splitPath(p string, sep rune) []string {
	return strings.Split(p, string(sep))
}

// joinPath joins a section path and a relative path with sep, handling the
// root section's empty path.
func joinPath(base, rel string, sep rune) string {
	if base == "" {
		return rel
	}
	if rel == "" {
		return base
	}
	return base + string(sep) + rel
}

// resolveRead walks path from s without creating anything. It returns the
// section owning the final segment and that leaf key. ok is false when an
// intermediate segment is missing or holds a non-section value.
func (s *Section) resolveRead(path string) (sec *Section, leaf string, ok bool) {
	segs := splitPath(path, s.separator())
	cur := s
	for _, seg := range segs[:len(segs)-1] {
		v, present := cur.values[seg]
		if !present || v == nil || v.Kind != KindSection {
			return nil, "", false
		}
		cur = v.Section
	}
	return cur, segs[len(segs)-1], true
}

// resolveSet walks path from s, creating genuinely missing intermediate
// sections. ok is false when an intermediate segment holds a non-section
// value: the existing value is left alone and the caller treats the path
// as unreachable.
func (s *Section) resolveSet(path string) (sec *Section, leaf string, ok bool) {
	segs := splitPath(path, s.separator())
	cur := s
	for _, seg := range segs[:len(segs)-1] {
		v, present := cur.values[seg]
		if present {
			if v == nil || v.Kind != KindSection {
				return nil, "", false
			}
			cur = v.Section
			continue
		}
		cur = cur.newChild(seg)
	}
	return cur, segs[len(segs)-1], true
}

// resolveWrite walks path from s, creating missing intermediate sections.
// An intermediate segment holding a non-section value is destructively
// replaced by a fresh section. Only CreateSection resolves this way.
func (s *Section) resolveWrite(path string) (sec *Section, leaf string) {
	segs := splitPath(path, s.separator())
	cur := s
	for _, seg := range segs[:len(segs)-1] {
		if v, present := cur.values[seg]; present && v != nil && v.Kind == KindSection {
			cur = v.Section
			continue
		}
		cur = cur.newChild(seg)
	}
	return cur, segs[len(segs)-1]
}
