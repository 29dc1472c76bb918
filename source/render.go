package source

import (
	"strings"

	"golang.org/x/net/html"
)

// attrReplacer escapes what html.EscapeString leaves alone.
var attrReplacer = strings.NewReplacer(
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
	"\x00", "&#xFFFD;",
)

// voidElements have no end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// EscapeAttr escapes s for use inside a double-quoted attribute value. Markup
// characters and control characters are replaced by character references, so
// escaping a multi-line value equals escaping each line and joining the results
// with "&#10;".
func EscapeAttr(s string) string {
	return attrReplacer.Replace(html.EscapeString(s))
}

// encodeControlAttrs swaps every leaf element carrying a control character in
// an attribute for a raw node holding its explicitly escaped markup. x/net/html
// writes such characters literally. The returned func puts the elements back.
func encodeControlAttrs(root *html.Node) func() {
	var targets []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if needsRawEncoding(n) {
			targets = append(targets, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	raws := make([]*html.Node, len(targets))
	for i, n := range targets {
		raw := &html.Node{Type: html.RawNode, Data: leafMarkup(n)}
		n.Parent.InsertBefore(raw, n)
		n.Parent.RemoveChild(n)
		raws[i] = raw
	}

	return func() {
		for i, raw := range raws {
			raw.Parent.InsertBefore(targets[i], raw)
			raw.Parent.RemoveChild(raw)
		}
	}
}

func needsRawEncoding(n *html.Node) bool {
	if n.Type != html.ElementNode || n.FirstChild != nil || n.Parent == nil || n.Namespace != "" {
		return false
	}
	found := false
	for _, a := range n.Attr {
		if a.Namespace != "" {
			return false
		}
		if strings.ContainsAny(a.Val, "\n\r\t\x00") {
			found = true
		}
	}
	return found
}

// leafMarkup serializes a childless element.
func leafMarkup(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(EscapeAttr(a.Val))
		sb.WriteString(`"`)
	}
	if voidElements[n.Data] {
		// Same form html.Render writes.
		sb.WriteString("/>")
		return sb.String()
	}
	sb.WriteString("></")
	sb.WriteString(n.Data)
	sb.WriteString(">")
	return sb.String()
}
