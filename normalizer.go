package selmap

import "strings"

// Normalizer converts a matched element into its representative text.
// It is the fine-grained extension point of the extraction loop: replacing
// it changes per-element text extraction without touching the batch logic.
type Normalizer interface {
	Normalize(el Element) string
}

// NormalizerFunc adapts a function to the Normalizer interface.
type NormalizerFunc func(Element) string

// Normalize calls f(el).
func (f NormalizerFunc) Normalize(el Element) string { return f(el) }

// Ensure TextNormalizer implements Normalizer at compile time.
var _ Normalizer = TextNormalizer{}

// TextNormalizer is the default per-element text policy: img elements and
// image-type inputs yield their alt attribute, other inputs yield their
// value attribute, and everything else yields the element's full inner
// text. Absent attributes yield an empty string.
type TextNormalizer struct{}

// Normalize applies the default text policy to el.
func (TextNormalizer) Normalize(el Element) string {
	switch el.Tag() {
	case "img":
		alt, _ := el.Attr("alt")
		return alt
	case "input":
		if typ, _ := el.Attr("type"); strings.EqualFold(typ, "image") {
			alt, _ := el.Attr("alt")
			return alt
		}
		val, _ := el.Attr("value")
		return val
	}
	return el.Text()
}
