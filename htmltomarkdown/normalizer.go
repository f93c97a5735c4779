// Package htmltomarkdown provides a Normalizer that renders matched
// elements as Markdown instead of plain text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/selmap/selmap"
)

// Ensure Normalizer implements selmap.Normalizer at compile time.
var _ selmap.Normalizer = (*Normalizer)(nil)

// htmlElement is implemented by elements that can render their own
// markup, such as the goquery-backed element.
type htmlElement interface {
	HTML() (string, error)
}

// Normalizer converts matched elements to Markdown. Elements that cannot
// provide their markup, and markup that fails to convert, fall back to
// the plain-text policy.
type Normalizer struct {
	conv     *converter.Converter
	fallback selmap.TextNormalizer
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Normalizer{conv: conv}
}

// Normalize renders the element's outer HTML as Markdown.
func (n *Normalizer) Normalize(el selmap.Element) string {
	h, ok := el.(htmlElement)
	if !ok {
		return n.fallback.Normalize(el)
	}

	raw, err := h.HTML()
	if err != nil {
		return n.fallback.Normalize(el)
	}

	md, err := n.conv.ConvertString(raw)
	if err != nil {
		return n.fallback.Normalize(el)
	}

	return strings.TrimSpace(md)
}
