package canopy

// Options carries the per-configuration knobs: path addressing, document
// engine limits, comment handling, and the header/footer comment lines.
type Options struct {
	// PathSeparator is the rune separating path segments. Cosmetic only:
	// it never appears in the persisted form.
	PathSeparator rune

	// Indent is the emitted indent width.
	Indent int

	// CopyDefaults merges defaults-overlay keys into Keys/Values
	// enumeration and makes IsSet defaults-aware. See Section.IsSet.
	CopyDefaults bool

	// ParseComments controls whether comments are captured on load and
	// re-emitted on save.
	ParseComments bool

	// MaxAliases bounds the number of alias nodes accepted during parse,
	// limiting amplification from repeated-reference constructs.
	MaxAliases int

	// MaxDocumentSize bounds the input size in bytes during parse.
	MaxDocumentSize int

	// Header and Footer are document-level comment lines emitted before
	// the first key and after the last one. A nil entry is a blank line,
	// an empty string an empty comment line.
	Header []*string
	Footer []*string
}

// DefaultOptions returns the options a fresh Configuration starts with.
func DefaultOptions() Options {
	return Options{
		PathSeparator:   '.',
		Indent:          2,
		ParseComments:   true,
		MaxAliases:      100,
		MaxDocumentSize: 32 << 20,
	}
}

func (o Options) normalized() Options {
	if o.PathSeparator == 0 {
		o.PathSeparator = '.'
	}
	if o.Indent <= 0 {
		o.Indent = 2
	}
	if o.MaxAliases <= 0 {
		o.MaxAliases = 100
	}
	if o.MaxDocumentSize <= 0 {
		o.MaxDocumentSize = 32 << 20
	}
	return o
}

// Configuration is the root section of a tree. It additionally owns the
// Options and an optional reference to a defaults Configuration.
type Configuration struct {
	Section

	opts Options

	// defaults is shared unless ownsDefaults is set, which happens only
	// for the anonymous configuration allocated by AddDefault.
	defaults     *Configuration
	ownsDefaults bool
}

// New creates an empty Configuration with default options.
func New() *Configuration {
	return NewWith(DefaultOptions())
}

// NewWith creates an empty Configuration with the given options.
func NewWith(opts Options) *Configuration {
	cfg := &Configuration{opts: opts.normalized()}
	cfg.Section = newSectionBody()
	cfg.Section.cfg = cfg
	return cfg
}

// Options returns the mutable options record.
func (c *Configuration) Options() *Options {
	return &c.opts
}

// Defaults returns the current defaults Configuration, nil when unset.
func (c *Configuration) Defaults() *Configuration {
	return c.defaults
}

// SetDefaults replaces the defaults reference wholesale. The reference is
// shared: the receiver takes no ownership of d.
func (c *Configuration) SetDefaults(d *Configuration) {
	c.defaults = d
	c.ownsDefaults = false
}

// SetHeader replaces the document header comment lines.
func (c *Configuration) SetHeader(lines []*string) {
	c.opts.Header = copyCommentLines(lines)
}

// Header returns a snapshot of the document header comment lines.
func (c *Configuration) Header() []*string {
	return copyCommentLines(c.opts.Header)
}

// SetFooter replaces the document footer comment lines.
func (c *Configuration) SetFooter(lines []*string) {
	c.opts.Footer = copyCommentLines(lines)
}

// Footer returns a snapshot of the document footer comment lines.
func (c *Configuration) Footer() []*string {
	return copyCommentLines(c.opts.Footer)
}
