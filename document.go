package selmap

// Element is a handle to a single matched HTML element.
type Element interface {
	// Tag returns the element's tag name (lowercase).
	Tag() string

	// Attr returns the value of the named attribute.
	// The second return reports whether the attribute is present.
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the element and its
	// descendants.
	Text() string
}

// Document is a parsed HTML document that can be queried with CSS
// selectors.
type Document interface {
	// Query returns all elements matching the CSS selector, in document
	// order. Returns EINVALID if the selector is malformed.
	Query(selector string) ([]Element, error)
}

// Parser parses raw HTML into a queryable Document.
// Implementations hide the underlying DOM library.
type Parser interface {
	Parse(html string) (Document, error)
}

// Matcher produces the normalized texts for one selector against a parsed
// document. It is the coarse extension point around the query+normalize
// step: implementations can change how matches are obtained or
// post-processed before results are joined into values.
type Matcher interface {
	Match(doc Document, selector string) ([]string, error)
}
