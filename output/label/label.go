// Package label formats the tooltip and accessible label text for a Signum
// indicator.
package label

import (
	"fmt"
	"strings"

	"github.com/c360studio/signum/source"
)

// LineBreak separates tooltip lines. It is an HTML character reference so the
// tooltip stays on one logical line inside an attribute.
const LineBreak = "&#10;"

// UnknownLevel is shown when a record's level is not in the vocabulary.
// Validated records never hit this.
const UnknownLevel = "Unknown Level"

// Tooltip is the ordered list of tooltip lines.
type Tooltip struct {
	Lines []string
}

// Text joins the lines with LineBreak.
func (t Tooltip) Text() string {
	return strings.Join(t.Lines, LineBreak)
}

// String implements fmt.Stringer.
func (t Tooltip) String() string {
	return t.Text()
}

// Label bundles the two strings derived from a record.
type Label struct {
	Tooltip    Tooltip
	Accessible string
}

// Format builds the tooltip and accessible label for a validated record.
func Format(rec source.Record) Label {
	return Label{
		Tooltip:    FormatTooltip(rec),
		Accessible: AccessibleLabel(rec),
	}
}

// FormatTooltip builds the tooltip lines in fixed order: level and standard
// version, asserter, timestamp, tools, history. Only the first line is always
// present.
func FormatTooltip(rec source.Record) Tooltip {
	version := rec.Version
	if version == "" {
		version = "N/A"
	}
	lines := []string{fmt.Sprintf("%s (Standard v%s)", levelName(rec), version)}

	if rec.Asserter != "" {
		lines = append(lines, "Asserted by: "+DisplayAsserter(rec.Asserter))
	}

	if rec.Timestamp != "" {
		lines = append(lines, "Timestamp: "+rec.Timestamp)
	}

	if rec.Tool != "" {
		if tools := SplitTools(rec.Tool); len(tools) > 0 {
			lines = append(lines, "Tool(s): "+strings.Join(tools, ", "))
		}
	}

	if rec.History != "" {
		lines = append(lines, "History: "+rec.History)
	}

	return Tooltip{Lines: lines}
}

// AccessibleLabel returns the screen-reader label for the indicator.
func AccessibleLabel(rec source.Record) string {
	return fmt.Sprintf("Signum Label: %s (Version %s)", levelName(rec), rec.Version)
}

// DisplayAsserter prettifies known asserter forms.
//
//	handle:<platform>:<handle>  ->  "<handle> on <platform>"
//	uri:<uri>                   ->  "<uri>"
//
// Anything else, including a handle: value with extra colons, is returned as is.
func DisplayAsserter(raw string) string {
	switch {
	case strings.HasPrefix(raw, "handle:"):
		parts := strings.Split(raw, ":")
		if len(parts) == 3 {
			return parts[2] + " on " + parts[1]
		}
	case strings.HasPrefix(raw, "uri:"):
		return raw[len("uri:"):]
	}
	return raw
}

// SplitTools turns a tool value into a list of tool names. Semicolon-delimited
// values are split, trimmed and stripped of empty entries. A value without
// semicolons is a single tool name.
func SplitTools(raw string) []string {
	if !strings.Contains(raw, ";") {
		if raw == "" {
			return nil
		}
		return []string{raw}
	}

	var tools []string
	for _, t := range strings.Split(raw, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tools = append(tools, t)
		}
	}
	return tools
}

func levelName(rec source.Record) string {
	if name, ok := rec.LevelCode().Name(); ok {
		return name
	}
	return UnknownLevel
}
