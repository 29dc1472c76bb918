// Package validation decides whether Signum metadata is complete enough to render.
// It checks that mandatory fields are present and that the level code belongs to
// the known vocabulary.
package validation

import (
	"fmt"
	"strings"

	"github.com/c360studio/signum/source"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

// Result contains the outcome of validating one metadata record.
type Result struct {
	Valid bool `json:"valid"`

	// MissingFields lists every absent mandatory field by its full meta name,
	// in vocabulary order.
	MissingFields []string `json:"missing_fields,omitempty"`

	// InvalidLevel holds the level value when it is present but unknown.
	InvalidLevel string `json:"invalid_level,omitempty"`
}

// Err converts an invalid result into a typed error. It returns nil for a valid
// result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if len(r.MissingFields) > 0 {
		return &MissingFieldsError{Fields: r.MissingFields}
	}
	return &InvalidLevelError{Value: r.InvalidLevel}
}

// Validator checks metadata records for render eligibility.
type Validator struct {
	prefix string
}

// NewValidator creates a validator that reports fields with the given meta
// prefix. An empty prefix selects "signum:".
func NewValidator(prefix string) *Validator {
	if prefix == "" {
		prefix = vocab.MetaPrefix
	}
	return &Validator{prefix: prefix}
}

// Check validates rec. Missing fields are all collected before the level is
// considered; the level is only checked once every mandatory field is present.
func (v *Validator) Check(rec source.Record) Result {
	var missing []string
	for _, field := range vocab.MandatoryFields() {
		if !rec.Has(field) {
			missing = append(missing, v.prefix+field)
		}
	}
	if len(missing) > 0 {
		return Result{MissingFields: missing}
	}

	if !rec.LevelCode().IsValid() {
		return Result{InvalidLevel: rec.Level}
	}

	return Result{Valid: true}
}

// Validate is a convenience wrapper returning Check(rec).Err().
func (v *Validator) Validate(rec source.Record) error {
	return v.Check(rec).Err()
}

// Validate checks rec using the default prefix.
func Validate(rec source.Record) error {
	return NewValidator("").Validate(rec)
}

// FormatMissing renders a field list for diagnostics.
func FormatMissing(fields []string) string {
	return strings.Join(fields, ", ")
}

// Describe returns a one-line operator message for an invalid result.
func (r Result) Describe() string {
	switch {
	case r.Valid:
		return "metadata valid"
	case len(r.MissingFields) > 0:
		return fmt.Sprintf("mandatory metadata missing (%s)", FormatMissing(r.MissingFields))
	default:
		return fmt.Sprintf("invalid level value %q", r.InvalidLevel)
	}
}
