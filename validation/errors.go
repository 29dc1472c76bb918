package validation

import (
	"errors"
	"fmt"
)

// Validation errors, matched with errors.Is.
var (
	// ErrMissingMetadata is returned when one or more mandatory fields are absent.
	ErrMissingMetadata = errors.New("mandatory metadata missing")

	// ErrInvalidLevel is returned when the level code is not in the vocabulary.
	ErrInvalidLevel = errors.New("invalid level")
)

// MissingFieldsError names every missing mandatory field.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s (%s)", ErrMissingMetadata, FormatMissing(e.Fields))
}

// Is matches ErrMissingMetadata.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingMetadata
}

// InvalidLevelError names the offending level value.
type InvalidLevelError struct {
	Value string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("%s %q", ErrInvalidLevel, e.Value)
}

// Is matches ErrInvalidLevel.
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}
