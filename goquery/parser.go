// Package goquery implements the selmap DOM capability on top of
// PuerkitoBio/goquery and cascadia.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/selmap/selmap"
	"golang.org/x/net/html"
)

// Ensure implementations satisfy the domain interfaces at compile time.
var (
	_ selmap.Parser   = (*Parser)(nil)
	_ selmap.Document = (*Document)(nil)
	_ selmap.Element  = (*Element)(nil)
)

// Parser parses HTML into a queryable document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a Document.
func (p *Parser) Parse(rawHTML string) (selmap.Document, error) {
	if rawHTML == "" {
		return nil, selmap.Errorf(selmap.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, selmap.Errorf(selmap.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Query returns all elements matching the CSS selector, in document order.
// The selector is compiled with cascadia up front so a malformed selector
// returns EINVALID instead of the panic goquery's Find would raise.
func (d *Document) Query(selector string) ([]selmap.Element, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, selmap.Errorf(selmap.EINVALID, "invalid selector %q: %v", selector, err)
	}

	var els []selmap.Element
	d.doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		els = append(els, &Element{sel: sel})
	})
	return els, nil
}

// Element wraps a single matched node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return e.sel.Nodes[0].Data
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the concatenated text content of the element and its
// descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML renders the element's outer HTML. Normalizers that need markup
// rather than text (e.g. htmltomarkdown) upgrade to this method via a
// type assertion.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	for _, node := range e.sel.Nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
