package mock

import "github.com/selmap/selmap"

var _ selmap.Parser = (*Parser)(nil)

// Parser is a mock implementation of selmap.Parser.
type Parser struct {
	ParseFn func(html string) (selmap.Document, error)
}

func (p *Parser) Parse(html string) (selmap.Document, error) {
	return p.ParseFn(html)
}
