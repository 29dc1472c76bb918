package source

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	vocab "github.com/c360studio/signum/vocabulary/signum"
)

var metaMatcher = cascadia.MustCompile("meta[name]")

// Reader looks up Signum meta tags in a document.
type Reader struct {
	doc    *Document
	prefix string
}

// NewReader creates a reader for doc. An empty prefix selects the default
// "signum:" prefix.
func NewReader(doc *Document, prefix string) *Reader {
	if prefix == "" {
		prefix = vocab.MetaPrefix
	}
	return &Reader{doc: doc, prefix: prefix}
}

// Lookup returns the content of the first meta tag named prefix+field, in
// document order. The second return value is false when no such tag exists or
// the tag has no content attribute.
func (r *Reader) Lookup(field string) (string, bool) {
	name := r.prefix + field

	var (
		value string
		found bool
	)
	r.doc.FindMatcher(metaMatcher).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("name", "") != name {
			return true
		}
		value, found = s.Attr("content")
		return false
	})
	return value, found
}

// Read builds a fresh Record from the document.
func (r *Reader) Read() Record {
	var rec Record
	for _, field := range vocab.Fields() {
		if value, ok := r.Lookup(field); ok {
			rec.set(field, value)
		}
	}
	return rec
}

// Prefix returns the meta name prefix in use.
func (r *Reader) Prefix() string {
	return r.prefix
}
