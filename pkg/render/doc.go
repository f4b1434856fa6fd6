// Package render turns vdom trees into HTML.
//
// Attribute output is sorted by key so rendered markup is deterministic
// and safe to assert on in tests. Text nodes are escaped; raw nodes are
// written verbatim and must be sanitized upstream.
package render
