package renderer

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/c360studio/signum/source"
)

// Result reports what a render pass touched.
type Result struct {
	// Slots is the number of placeholders found.
	Slots int

	// Rendered is the number of slots that received an indicator.
	Rendered int

	// Skipped lists the tag names of slots that cannot hold an indicator and
	// were left alone.
	Skipped []string
}

// Renderer populates placeholder slots.
type Renderer struct {
	opts  Options
	slots cascadia.Selector
}

// New creates a renderer. Zero fields in opts take their defaults.
func New(opts Options) (*Renderer, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := cascadia.Compile(opts.Placeholder)
	if err != nil {
		return nil, fmt.Errorf("compile placeholder selector: %w", err)
	}

	return &Renderer{opts: opts, slots: m}, nil
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Slots returns every placeholder slot in document order.
func (r *Renderer) Slots(doc *source.Document) *goquery.Selection {
	return doc.FindMatcher(r.slots)
}

// Usable returns the number of slots in doc that can hold an indicator.
func (r *Renderer) Usable(doc *source.Document) int {
	usable := 0
	r.Slots(doc).Each(func(_ int, slot *goquery.Selection) {
		if CanHold(slot.Get(0)) {
			usable++
		}
	})
	return usable
}

// CanHold reports whether an indicator appended to slot survives serializing
// and reparsing the document in place. Void elements, table structure, select
// content, raw text elements and foreign (SVG, MathML) elements cannot.
func CanHold(slot *html.Node) bool {
	if slot.Type != html.ElementNode || slot.Namespace != "" {
		return false
	}
	return !voidElements[slot.Data] && !unfitSlots[slot.Data]
}

// Render replaces the content of every slot with ind. A document without slots
// is left untouched.
func (r *Renderer) Render(doc *source.Document, ind Indicator) Result {
	slots := r.Slots(doc)

	res := Result{Slots: slots.Length()}
	if res.Slots == 0 {
		return res
	}

	slots.Each(func(_ int, slot *goquery.Selection) {
		n := slot.Get(0)
		if !CanHold(n) {
			res.Skipped = append(res.Skipped, n.Data)
			return
		}

		slot.Empty()
		n.AppendChild(ind.Node())
		res.Rendered++
	})

	return res
}
