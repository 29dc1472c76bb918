package renderer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/c360studio/signum/output/label"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

// Fixed accessibility attributes of an indicator.
const (
	RoleImage = "img"
	Focusable = "0"
)

// Attribute names written on an indicator.
const (
	AttrClass    = "class"
	AttrTooltip  = "data-tooltip"
	AttrLabel    = "aria-label"
	AttrRole     = "role"
	AttrTabIndex = "tabindex"
)

// Indicator is the element placed into each slot.
type Indicator struct {
	Element  string
	Classes  []string
	Tooltip  label.Tooltip
	Label    string
	Role     string
	TabIndex string
}

// NewIndicator builds the indicator for level using the formatted label.
func NewIndicator(level vocab.Level, lbl label.Label, opts Options) Indicator {
	opts = opts.withDefaults()
	return Indicator{
		Element:  opts.Element,
		Classes:  []string{opts.BaseClass, level.ClassName(opts.ClassPrefix)},
		Tooltip:  lbl.Tooltip,
		Label:    lbl.Accessible,
		Role:     RoleImage,
		TabIndex: Focusable,
	}
}

// TooltipValue returns the tooltip attribute value with real line breaks
// between lines. Serialization writes each break as label.LineBreak.
func (i Indicator) TooltipValue() string {
	return strings.Join(i.Tooltip.Lines, "\n")
}

// Attrs returns the indicator attributes in output order.
func (i Indicator) Attrs() []html.Attribute {
	return []html.Attribute{
		{Key: AttrClass, Val: strings.Join(i.Classes, " ")},
		{Key: AttrTooltip, Val: i.TooltipValue()},
		{Key: AttrLabel, Val: i.Label},
		{Key: AttrRole, Val: i.Role},
		{Key: AttrTabIndex, Val: i.TabIndex},
	}
}

// Node returns a fresh element ready to append to a slot.
func (i Indicator) Node() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(i.Element)),
		Data:     i.Element,
		Attr:     i.Attrs(),
	}
}
