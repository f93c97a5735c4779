package htmltomarkdown_test

import (
	"testing"

	"github.com/selmap/selmap"
	"github.com/selmap/selmap/extract"
	"github.com/selmap/selmap/goquery"
	"github.com/selmap/selmap/htmltomarkdown"
	"github.com/selmap/selmap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Normalizer implements selmap.Normalizer at compile time.
var _ selmap.Normalizer = (*htmltomarkdown.Normalizer)(nil)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("renders matched elements as markdown", func(t *testing.T) {
		t.Parallel()

		html := `<div id="doc"><h1>Title</h1><p>Body with <strong>bold</strong> text.</p></div>`
		doc, err := goquery.NewParser().Parse(html)
		require.NoError(t, err)

		els, err := doc.Query("#doc")
		require.NoError(t, err)
		require.Len(t, els, 1)

		md := htmltomarkdown.NewNormalizer().Normalize(els[0])

		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("preserves links", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<p>See <a href="https://example.com">the docs</a>.</p>`)
		require.NoError(t, err)

		els, err := doc.Query("p")
		require.NoError(t, err)
		require.Len(t, els, 1)

		md := htmltomarkdown.NewNormalizer().Normalize(els[0])

		assert.Contains(t, md, "[the docs](https://example.com)")
	})

	t.Run("falls back to inner text for elements without markup access", func(t *testing.T) {
		t.Parallel()

		el := &mock.Element{
			TagFn:  func() string { return "p" },
			AttrFn: func(string) (string, bool) { return "", false },
			TextFn: func() string { return "plain text" },
		}

		md := htmltomarkdown.NewNormalizer().Normalize(el)

		assert.Equal(t, "plain text", md)
	})
}

func TestNormalizer_WithExtractor(t *testing.T) {
	t.Parallel()

	html := `<article><h2>Section</h2><p>First</p></article><aside><p>Ignored</p></aside>`

	e := extract.New(goquery.NewParser(), extract.WithNormalizer(htmltomarkdown.NewNormalizer()))
	results, err := e.Extract(map[string]string{"body": "article"}, html)

	require.NoError(t, err)
	assert.Contains(t, results["body"].String(), "## Section")
	assert.Contains(t, results["body"].String(), "First")
	assert.NotContains(t, results["body"].String(), "Ignored")
}
