package annotator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/signum/processor/renderer"
	"github.com/c360studio/signum/source"
)

func rendererOptions(placeholder string) renderer.Options {
	o := renderer.DefaultOptions()
	o.Placeholder = placeholder
	return o
}

func mustDoc(t *testing.T, html string) *source.Document {
	t.Helper()
	doc, err := source.ParseBytes([]byte(html))
	require.NoError(t, err)
	return doc
}
