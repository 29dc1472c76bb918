package source

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return FromNode(root), nil
}

// ParseBytes parses an in-memory HTML document.
func ParseBytes(content []byte) (*Document, error) {
	return Parse(bytes.NewReader(content))
}

// LoadFile reads and parses an HTML file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// FromNode wraps an existing node tree. The tree is shared, not copied.
func FromNode(root *html.Node) *Document {
	return &Document{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// FindMatcher returns every element matching m, in document order.
func (d *Document) FindMatcher(m goquery.Matcher) *goquery.Selection {
	return d.doc.FindMatcher(m)
}

// Render serializes the document as HTML. Leaf elements whose attribute values
// contain line breaks or tabs are written with those characters as numeric
// character references (a tooltip line break becomes "&#10;"). The tree is
// restored before Render returns, so Render must not run concurrently with
// another Render or a mutation of the same document.
func (d *Document) Render(w io.Writer) error {
	restore := encodeControlAttrs(d.root)
	defer restore()
	return html.Render(w, d.root)
}

// Bytes serializes the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentHash returns the hex SHA-256 of content.
func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
