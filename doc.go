// Package canopy provides an in-memory, hierarchically path-addressed
// configuration store with overridable default values and per-key comment
// preservation.
//
// # Overview
//
// A Configuration is the root of a tree of Sections. Each Section owns an
// insertion-ordered mapping from local key to Value, and keys are addressed
// across sections with delimiter-separated paths:
//
//	cfg := canopy.New()
//	cfg.Set("server.port", canopy.FromInt(25565))
//	cfg.GetSection("server").GetInt("port") // 25565
//
// Intermediate sections are created lazily by writes and never by reads.
// The path delimiter is configurable per Configuration and is cosmetic
// only: it does not affect the persisted representation.
//
// # Values
//
// Value is a tagged union over the closed set of storable kinds: boolean,
// the integer family, the floating-point family, character, text, ordered
// list, nested section, and opaque typed object. A nil *Value denotes
// absence; setting nil removes a key. Section-kind values are only produced
// by CreateSection, keeping the tree structurally consistent.
//
// # Defaults
//
// A Configuration can reference a second Configuration as its defaults.
// The no-fallback accessors read through to it when a key is locally
// absent; the explicit-fallback accessors deliberately bypass it. Defaults
// are either set wholesale with SetDefaults or built incrementally with
// AddDefault, which lazily allocates an anonymous defaults configuration.
//
// # Comments
//
// Each key carries two independent comment sequences: block comments above
// the key and inline comments on its line. A nil entry is a blank line, an
// empty string an empty comment line. Comments survive the document
// round-trip in package document.
//
// # Concurrency
//
// The structure is not safe for concurrent mutation. Callers needing
// concurrent access must serialize externally.
package canopy
