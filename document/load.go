package document

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/canopy-config/canopy"
	"github.com/canopy-config/canopy/debug"
	"github.com/canopy-config/canopy/serial"
)

// Option configures loading and saving.
type Option func(*settings)

type settings struct {
	reg  *serial.Registry
	opts *canopy.Options
}

// WithRegistry supplies the registry used to decode typed objects. Without
// one, any type-tagged mapping outside a list fails the load.
func WithRegistry(reg *serial.Registry) Option {
	return func(s *settings) { s.reg = reg }
}

// WithOptions sets the Options of the loaded configuration, including the
// engine limits enforced during parse.
func WithOptions(opts canopy.Options) Option {
	return func(s *settings) { o := opts; s.opts = &o }
}

func applyOptions(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadString parses text into a fresh Configuration.
func LoadString(text string, opts ...Option) (*canopy.Configuration, error) {
	set := applyOptions(opts)
	var cfg *canopy.Configuration
	if set.opts != nil {
		cfg = canopy.NewWith(*set.opts)
	} else {
		cfg = canopy.New()
	}
	if err := loadInto(cfg, text, set.reg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load parses everything from r into a fresh Configuration.
func Load(r io.Reader, opts ...Option) (*canopy.Configuration, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadString(string(d), opts...)
}

// LoadFile parses the file at path into a fresh Configuration.
func LoadFile(path string, opts ...Option) (*canopy.Configuration, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadString(string(d), opts...)
}

// LoadFileOrEmpty is a best-effort bootstrap entry point: structural and
// I/O errors are logged and swallowed, yielding a blank Configuration.
// This is deliberate for callers that treat a broken config as absent; it
// is not the default load path.
func LoadFileOrEmpty(path string, opts ...Option) *canopy.Configuration {
	cfg, err := LoadFile(path, opts...)
	if err == nil {
		return cfg
	}
	slog.Warn("loading empty configuration", "path", path, "error", err)
	set := applyOptions(opts)
	if set.opts != nil {
		return canopy.NewWith(*set.opts)
	}
	return canopy.New()
}

func loadInto(cfg *canopy.Configuration, text string, reg *serial.Registry) error {
	opts := cfg.Options()
	body := text
	var header, footer []*string
	if opts.ParseComments {
		header, body = splitHeader(body)
		footer, body = splitFooter(body)
	}
	root, err := parseDocument([]byte(body), opts)
	if err != nil {
		return err
	}
	if debug.Load() {
		debug.Logf("load: %d bytes, header %d lines, footer %d lines\n",
			len(text), len(header), len(footer))
	}
	if root == nil {
		// comments-only document: the footer scan will have claimed the
		// run, but with no keys it reads as a header
		if header == nil && len(footer) > 0 && strings.TrimSpace(body) == "" {
			header, footer = footer, nil
		}
		opts.Header = header
		opts.Footer = footer
		return nil
	}
	if err := FromNode(root, &cfg.Section, reg, opts.ParseComments); err != nil {
		return err
	}
	opts.Header = header
	opts.Footer = footer
	return nil
}

// SaveString renders cfg to text. An empty configuration with no header or
// footer yields the empty string, not an empty-mapping marker.
func SaveString(cfg *canopy.Configuration) (string, error) {
	if cfg == nil {
		return "", ErrNilConfiguration
	}
	opts := cfg.Options()
	withComments := opts.ParseComments
	var header, footer []*string
	if withComments {
		header = opts.Header
		footer = opts.Footer
	}
	root := ToNode(&cfg.Section, withComments)
	if len(root.Content) == 0 {
		return renderHeader(header) + renderFooter(footer), nil
	}
	body, err := emitDocument(root, opts)
	if err != nil {
		return "", err
	}
	if debug.Save() {
		debug.Logf("save: %d keys, %d bytes\n", len(root.Content)/2, len(body))
	}
	return renderHeader(header) + body + renderFooter(footer), nil
}

// Save renders cfg to w.
func Save(w io.Writer, cfg *canopy.Configuration) error {
	text, err := SaveString(cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// SaveFile renders cfg into the file at path, creating or truncating it.
func SaveFile(path string, cfg *canopy.Configuration) error {
	text, err := SaveString(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
