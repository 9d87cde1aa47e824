// Package domain contains the core domain models for the compilation
// database generator: build targets, compilation contexts, and the
// command entries that make up the emitted database.
package domain

import (
	"strings"
	"unique"
)

// Label identifies a buildable target, e.g. "//lib:foo" or "@zlib//:z".
// Labels are interned via the unique package since the same label is
// referenced from every edge that points at it.
type Label struct {
	h unique.Handle[string]
}

// NewLabel creates a Label from its string form.
func NewLabel(s string) Label {
	return Label{h: unique.Make(s)}
}

// String returns the label's string form.
func (l Label) String() string {
	var zero unique.Handle[string]
	if l.h == zero {
		return ""
	}
	return l.h.Value()
}

// IsExternal reports whether the label belongs to another repository
// than the invocation workspace (canonical form "@repo//pkg:name").
func (l Label) IsExternal() bool {
	return strings.HasPrefix(l.String(), "@")
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	l.h = unique.Make(string(text))
	return nil
}
