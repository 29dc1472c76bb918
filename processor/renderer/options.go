package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Defaults for Options.
const (
	DefaultPlaceholder = "[data-signum-placeholder]"
	DefaultBaseClass   = "signum-label"
	DefaultClassPrefix = "signum"
	DefaultElement     = "span"
)

var (
	elementRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	classRe   = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)
)

// voidElements cannot have children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// unfitSlots are elements whose content model does not keep an inline element
// through a parse of the serialized output. The parser moves it out of the slot
// or reads it back as text.
var unfitSlots = map[string]bool{
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true,
	"colgroup": true, "select": true, "optgroup": true, "option": true,
	"script": true, "style": true, "xmp": true, "iframe": true, "noembed": true,
	"noframes": true, "noscript": true, "plaintext": true, "textarea": true,
	"title": true, "html": true, "head": true, "frameset": true,
}

// phrasingElements may be used as the indicator besides custom elements.
// Block elements would close an enclosing <p> slot when the output is parsed.
var phrasingElements = map[string]bool{
	"abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true, "code": true,
	"data": true, "dfn": true, "em": true, "i": true, "kbd": true, "mark": true,
	"q": true, "s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
}

// Options configures a Renderer.
type Options struct {
	// Placeholder is the CSS selector identifying slots.
	Placeholder string `yaml:"placeholder"`

	// BaseClass is added to every indicator.
	BaseClass string `yaml:"base_class"`

	// ClassPrefix forms the level class "<prefix>-<level>".
	ClassPrefix string `yaml:"class_prefix"`

	// Element is the indicator tag name.
	Element string `yaml:"element"`
}

// DefaultOptions returns the standard Signum options.
func DefaultOptions() Options {
	return Options{
		Placeholder: DefaultPlaceholder,
		BaseClass:   DefaultBaseClass,
		ClassPrefix: DefaultClassPrefix,
		Element:     DefaultElement,
	}
}

// Validate checks that the options produce well-formed markup.
func (o Options) Validate() error {
	if o.Placeholder == "" {
		return fmt.Errorf("placeholder selector is required")
	}
	if _, err := cascadia.Compile(o.Placeholder); err != nil {
		return fmt.Errorf("invalid placeholder selector %q: %w", o.Placeholder, err)
	}
	if !classRe.MatchString(o.BaseClass) {
		return fmt.Errorf("invalid base class %q", o.BaseClass)
	}
	if !classRe.MatchString(o.ClassPrefix) {
		return fmt.Errorf("invalid class prefix %q", o.ClassPrefix)
	}
	if !elementRe.MatchString(o.Element) {
		return fmt.Errorf("invalid element name %q", o.Element)
	}
	if voidElements[o.Element] {
		return fmt.Errorf("element %q is a void element", o.Element)
	}
	if !phrasingElements[o.Element] && !strings.Contains(o.Element, "-") {
		return fmt.Errorf("element %q is not a phrasing or custom element", o.Element)
	}
	return nil
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Placeholder == "" {
		o.Placeholder = d.Placeholder
	}
	if o.BaseClass == "" {
		o.BaseClass = d.BaseClass
	}
	if o.ClassPrefix == "" {
		o.ClassPrefix = d.ClassPrefix
	}
	if o.Element == "" {
		o.Element = d.Element
	}
	return o
}
