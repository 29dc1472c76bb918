// Package source reads HTML documents and the Signum metadata declared in their
// head.
package source

import (
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

// Record holds the Signum metadata read from one document.
// An empty string means the field was absent. A meta tag with empty content is
// treated the same as a missing tag.
type Record struct {
	// Level is the provenance level code (e.g. "H-AE").
	Level string `json:"level,omitempty"`

	// Version is the Signum standard version the document declares.
	Version string `json:"version,omitempty"`

	// Timestamp is when the provenance claim was made.
	Timestamp string `json:"timestamp,omitempty"`

	// Tool names the tool or tools involved, optionally semicolon-delimited.
	Tool string `json:"tool,omitempty"`

	// Asserter identifies who makes the claim (handle:, uri: or free text).
	Asserter string `json:"asserter,omitempty"`

	// History is an opaque reference to the document's provenance history.
	History string `json:"history,omitempty"`
}

// Get returns the value of a field by its unprefixed name.
func (r Record) Get(field string) string {
	switch field {
	case vocab.FieldLevel:
		return r.Level
	case vocab.FieldVersion:
		return r.Version
	case vocab.FieldTimestamp:
		return r.Timestamp
	case vocab.FieldTool:
		return r.Tool
	case vocab.FieldAsserter:
		return r.Asserter
	case vocab.FieldHistory:
		return r.History
	}
	return ""
}

// Has reports whether a field is present.
func (r Record) Has(field string) bool {
	return r.Get(field) != ""
}

// LevelCode returns the level as a vocabulary type. It may be unknown.
func (r Record) LevelCode() vocab.Level {
	return vocab.Level(r.Level)
}

// IsEmpty reports whether no Signum field is present at all.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// set assigns a field by its unprefixed name.
func (r *Record) set(field, value string) {
	switch field {
	case vocab.FieldLevel:
		r.Level = value
	case vocab.FieldVersion:
		r.Version = value
	case vocab.FieldTimestamp:
		r.Timestamp = value
	case vocab.FieldTool:
		r.Tool = value
	case vocab.FieldAsserter:
		r.Asserter = value
	case vocab.FieldHistory:
		r.History = value
	}
}
