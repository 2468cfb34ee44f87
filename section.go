package canopy

import (
	"fmt"
	"maps"
	"slices"
)

// Section is a node in the configuration tree. It owns an insertion-ordered
// mapping from local key to Value, plus per-key comment side tables.
//
// A Section is created either as the root of a Configuration or through
// CreateSection; it is never constructed by plain value assignment. A
// Section removed from its parent's mapping is orphaned: Root and Parent
// report unavailable from then on.
type Section struct {
	// cfg is set only on the embedded section of a Configuration. Root
	// lookups climb the parent chain and read it off the top, so that
	// detaching a subtree's head orphans the whole subtree at once.
	cfg    *Configuration
	parent *Section
	name   string
	path   string

	keys   []string
	values map[string]*Value

	blockComments  map[string][]*string
	inlineComments map[string][]*string
}

// KeyVal is one entry of a Values enumeration.
type KeyVal struct {
	Path  string
	Value *Value
}

func newSectionBody() Section {
	return Section{
		values:         map[string]*Value{},
		blockComments:  map[string][]*string{},
		inlineComments: map[string][]*string{},
	}
}

func newDetachedSection() *Section {
	s := newSectionBody()
	return &s
}

// Root returns the owning Configuration, or nil when the section has been
// orphaned or was never attached to one.
func (s *Section) Root() *Configuration {
	top := s
	for top.parent != nil {
		top = top.parent
	}
	return top.cfg
}

// Parent returns the enclosing section, nil for roots and orphans.
func (s *Section) Parent() *Section {
	return s.parent
}

// Name returns the section's local key, "" for a root.
func (s *Section) Name() string {
	return s.name
}

// Path returns the fully-qualified path from the root, "" for a root. The
// path is fixed at creation time and goes stale if the section is orphaned.
func (s *Section) Path() string {
	return s.path
}

func (s *Section) separator() rune {
	if cfg := s.Root(); cfg != nil {
		return cfg.opts.PathSeparator
	}
	return '.'
}

func (s *Section) describe() string {
	return fmt.Sprintf("Section[path=%q, keys=%d]", s.path, len(s.keys))
}

// newChild installs a fresh empty section at key, replacing whatever was
// there.
func (s *Section) newChild(key string) *Section {
	child := newDetachedSection()
	child.parent = s
	child.name = key
	child.path = joinPath(s.path, key, s.separator())
	s.put(key, sectionValue(child))
	return child
}

// put stores v at key, registering the key on first use and orphaning any
// section value previously stored there.
func (s *Section) put(key string, v *Value) {
	if old, ok := s.values[key]; ok {
		if old != nil && old.Kind == KindSection && old.Section != nil {
			old.Section.parent = nil
		}
	} else {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// remove deletes key along with its comments, orphaning any section value.
func (s *Section) remove(key string) {
	old, ok := s.values[key]
	if !ok {
		return
	}
	if old != nil && old.Kind == KindSection && old.Section != nil {
		old.Section.parent = nil
	}
	delete(s.values, key)
	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	delete(s.blockComments, key)
	delete(s.inlineComments, key)
}

// find resolves path to the actual stored value, never consulting defaults.
// An empty path yields the section itself.
func (s *Section) find(path string) (*Value, bool) {
	if path == "" {
		return sectionValue(s), true
	}
	sec, leaf, ok := s.resolveRead(path)
	if !ok {
		return nil, false
	}
	v, present := sec.values[leaf]
	return v, present
}

// Get resolves path and returns the stored value; when the path is absent
// it consults the defaults overlay. Returns nil when neither has it. An
// empty path returns the section itself as a section-kind value.
func (s *Section) Get(path string) *Value {
	if v, ok := s.find(path); ok {
		return v
	}
	return s.getDefault(path)
}

// GetWith is Get with a caller-supplied fallback that deliberately bypasses
// the configured defaults: an absent path yields fallback even when the
// defaults overlay could satisfy it.
func (s *Section) GetWith(path string, fallback *Value) *Value {
	if v, ok := s.find(path); ok {
		return v
	}
	return fallback
}

// Set stores v at path, creating missing intermediate sections and
// overwriting the leaf unconditionally. An intermediate segment holding a
// non-section value makes the path unreachable: the write is dropped and
// the existing value stays; destructive replacement is reserved for
// CreateSection. Storing nil removes the key, its comments, and orphans
// any section previously there; removal never creates intermediate
// sections. Section-kind values are rejected: sections are created with
// CreateSection only.
func (s *Section) Set(path string, v *Value) error {
	if path == "" {
		return ErrEmptyPath
	}
	if v != nil && v.Kind == KindSection {
		return ErrSectionValue
	}
	if v == nil {
		sec, leaf, ok := s.resolveRead(path)
		if !ok {
			return nil
		}
		sec.remove(leaf)
		return nil
	}
	sec, leaf, ok := s.resolveSet(path)
	if !ok {
		return nil
	}
	sec.put(leaf, v)
	return nil
}

// SetAny is Set with a plain Go value, converted via FromAny. Maps are
// rejected the same way section values are; use CreateSectionFrom.
func (s *Section) SetAny(path string, v any) error {
	return s.Set(path, FromAny(v))
}

// CreateSection installs a fresh empty section at path, creating missing
// intermediate sections and destructively replacing any existing value at
// the final segment.
func (s *Section) CreateSection(path string) (*Section, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	sec, leaf := s.resolveWrite(path)
	return sec.newChild(leaf), nil
}

// CreateSectionFrom creates a section at path seeded recursively from m:
// nested maps become nested sections, everything else converts via FromAny.
func (s *Section) CreateSectionFrom(path string, m map[string]any) (*Section, error) {
	sec, err := s.CreateSection(path)
	if err != nil {
		return nil, err
	}
	sec.seed(m)
	return sec, nil
}

func (s *Section) seed(m map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		switch x := m[key].(type) {
		case map[string]any:
			s.newChild(key).seed(x)
		default:
			if v := FromAny(x); v != nil {
				s.put(key, v)
			}
		}
	}
}

// Contains reports whether path resolves to a value. With ignoreDefaults
// false, a path satisfied only by the defaults overlay also counts.
func (s *Section) Contains(path string, ignoreDefaults bool) bool {
	if _, ok := s.find(path); ok {
		return true
	}
	if ignoreDefaults {
		return false
	}
	return s.getDefault(path) != nil
}

// IsSet reports whether an actual, non-default value is present at path.
// When the CopyDefaults option is enabled it behaves like Contains with
// defaults considered; iteration-copy mode and set-detection are coupled
// and downstream serialization depends on that coupling.
func (s *Section) IsSet(path string) bool {
	if cfg := s.Root(); cfg != nil && cfg.opts.CopyDefaults {
		return s.Contains(path, false)
	}
	return s.Contains(path, true)
}

// Keys enumerates key paths relative to s in insertion order, recursing
// into subsections when deep is set. When the CopyDefaults option is
// enabled, keys from the defaults overlay are merged in first with actual
// keys overlaid. The result is a snapshot.
func (s *Section) Keys(deep bool) []string {
	var res []string
	seen := map[string]bool{}
	if dsec := s.defaultsShadow(); dsec != nil {
		dsec.collectKeys(&res, seen, "", deep)
	}
	s.collectKeys(&res, seen, "", deep)
	return res
}

// Values enumerates path/value pairs the way Keys enumerates paths. On a
// path collision with the defaults overlay the actual value wins while the
// default's position is kept. The result is a snapshot.
func (s *Section) Values(deep bool) []KeyVal {
	var res []KeyVal
	index := map[string]int{}
	if dsec := s.defaultsShadow(); dsec != nil {
		dsec.collectValues(&res, index, "", deep)
	}
	s.collectValues(&res, index, "", deep)
	return res
}

// Pairs enumerates the section's local entries in insertion order. Unlike
// Keys and Values, the KeyVal paths are literal local keys with no path
// interpretation, so keys containing the separator rune enumerate intact.
// The defaults overlay merges the same way Values merges it.
func (s *Section) Pairs() []KeyVal {
	var res []KeyVal
	index := map[string]int{}
	if dsec := s.defaultsShadow(); dsec != nil {
		dsec.appendPairs(&res, index)
	}
	s.appendPairs(&res, index)
	return res
}

func (s *Section) appendPairs(res *[]KeyVal, index map[string]int) {
	for _, key := range s.keys {
		v := s.values[key]
		if i, ok := index[key]; ok {
			(*res)[i].Value = v
		} else {
			index[key] = len(*res)
			*res = append(*res, KeyVal{Path: key, Value: v})
		}
	}
}

// defaultsShadow returns the section at s's path inside the defaults
// configuration, when iteration-copy mode asks for defaults to be merged.
func (s *Section) defaultsShadow() *Section {
	cfg := s.Root()
	if cfg == nil || !cfg.opts.CopyDefaults || cfg.defaults == nil {
		return nil
	}
	return cfg.defaults.sectionAt(s.path)
}

// sectionAt resolves path to a section without creating anything.
func (s *Section) sectionAt(path string) *Section {
	if path == "" {
		return s
	}
	v, ok := s.find(path)
	if !ok || v == nil || v.Kind != KindSection {
		return nil
	}
	return v.Section
}

func (s *Section) collectKeys(res *[]string, seen map[string]bool, prefix string, deep bool) {
	sep := s.separator()
	for _, key := range s.keys {
		p := joinPath(prefix, key, sep)
		if !seen[p] {
			seen[p] = true
			*res = append(*res, p)
		}
		if deep {
			if v := s.values[key]; v != nil && v.Kind == KindSection && v.Section != nil {
				v.Section.collectKeys(res, seen, p, deep)
			}
		}
	}
}

func (s *Section) collectValues(res *[]KeyVal, index map[string]int, prefix string, deep bool) {
	sep := s.separator()
	for _, key := range s.keys {
		p := joinPath(prefix, key, sep)
		v := s.values[key]
		if i, ok := index[p]; ok {
			(*res)[i].Value = v
		} else {
			index[p] = len(*res)
			*res = append(*res, KeyVal{Path: p, Value: v})
		}
		if deep && v != nil && v.Kind == KindSection && v.Section != nil {
			v.Section.collectValues(res, index, p, deep)
		}
	}
}
