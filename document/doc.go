// Package document translates between the configuration tree of package
// canopy and the generic document-node tree of the text-format engine,
// preserving per-key comments in both directions.
//
// # Round-trip
//
// ToNode walks a section's local mapping in insertion order into a mapping
// node; FromNode inverts it. Block comments ride on key nodes. Inline
// comments ride on the value node for scalar values and on the key node
// for sections, lists and typed objects, since those span multiple lines.
//
// A mapping node carrying the reserved type-tag key "==" decodes through a
// serial.Registry into an opaque typed object; a mapping without it is a
// plain section.
//
// # Header and footer
//
// A run of leading comment lines separated from the first key's own
// comments by a blank line is the document header; trailing comment lines
// are the footer. Both live on the configuration's Options, not in the
// per-key comment store, and are re-emitted around the document on save.
// An empty configuration with no header or footer saves to the empty
// string.
//
// # Load and save
//
// LoadString and SaveString are the core entry points; reader/writer and
// file wrappers funnel through them. LoadFileOrEmpty is a best-effort
// bootstrap variant that logs and swallows structural errors.
package document
