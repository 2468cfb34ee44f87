package canopy

// getDefault resolves path against the defaults configuration, relative to
// this section's fully-qualified path. Nil when no defaults are configured
// or the path is absent there. Only the no-fallback accessors consult it.
func (s *Section) getDefault(path string) *Value {
	cfg := s.Root()
	if cfg == nil || cfg.defaults == nil {
		return nil
	}
	full := joinPath(s.path, path, s.separator())
	if full == "" {
		return nil
	}
	return cfg.defaults.Get(full)
}

// AddDefault registers a default value for path, relative to this section.
// The first registration on a configuration without defaults lazily
// allocates an anonymous defaults configuration owned by it. Registration
// through an orphaned section is undefined and fails fast.
func (s *Section) AddDefault(path string, v *Value) error {
	if path == "" {
		return ErrEmptyPath
	}
	cfg := s.Root()
	if cfg == nil {
		panic("canopy: AddDefault on orphaned section")
	}
	return cfg.addDefault(joinPath(s.path, path, s.separator()), v)
}

// AddDefaults registers every entry of m as a default, keys interpreted as
// paths relative to this section. Nested maps register their scalar leaves.
func (s *Section) AddDefaults(m map[string]any) error {
	cfg := s.Root()
	if cfg == nil {
		panic("canopy: AddDefaults on orphaned section")
	}
	tmp := NewWith(cfg.opts)
	tmp.seed(m)
	for _, kv := range tmp.Values(true) {
		if kv.Value != nil && kv.Value.Kind == KindSection {
			continue
		}
		if err := s.AddDefault(kv.Path, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Configuration) addDefault(fullPath string, v *Value) error {
	if c.defaults == nil {
		c.defaults = NewWith(c.opts)
		c.ownsDefaults = true
	}
	if v == nil {
		return c.defaults.Set(fullPath, nil)
	}
	return c.defaults.Set(fullPath, v)
}
