// Package serial maps type aliases to constructor functions for
// round-tripping opaque typed objects through configuration documents.
//
// A document mapping carrying the reserved key "==" names the alias of a
// registered type; the document round-trip resolves the alias against a
// Registry and invokes the registered Factory with the remaining fields.
// Absence of the key means "plain mapping", not "typed object".
//
// The Registry is an ordinary value with caller-controlled lifetime. There
// is no package-level registration.
package serial
