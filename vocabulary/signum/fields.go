package signum

// MetaPrefix is prepended to every field name to form the meta tag name.
const MetaPrefix = "signum:"

// Metadata field names, without prefix.
const (
	FieldLevel     = "level"
	FieldVersion   = "version"
	FieldTimestamp = "timestamp"
	FieldTool      = "tool"
	FieldAsserter  = "asserter"
	FieldHistory   = "history"
)

var fields = [...]string{
	FieldLevel,
	FieldVersion,
	FieldTimestamp,
	FieldTool,
	FieldAsserter,
	FieldHistory,
}

var mandatoryFields = [...]string{
	FieldLevel,
	FieldVersion,
	FieldTimestamp,
	FieldAsserter,
}

// Fields returns every metadata field in the order it is read.
func Fields() []string {
	out := make([]string, len(fields))
	copy(out, fields[:])
	return out
}

// MandatoryFields returns the fields that must be present before a label
// renders, in the order they are reported when missing.
func MandatoryFields() []string {
	out := make([]string, len(mandatoryFields))
	copy(out, mandatoryFields[:])
	return out
}

// IsMandatory reports whether a field blocks rendering when absent.
func IsMandatory(field string) bool {
	for _, f := range mandatoryFields {
		if f == field {
			return true
		}
	}
	return false
}

// MetaName returns the full meta tag name for a field using the default prefix.
func MetaName(field string) string {
	return MetaPrefix + field
}
