package mock

import "github.com/selmap/selmap"

var _ selmap.Document = (*Document)(nil)

// Document is a mock implementation of selmap.Document.
type Document struct {
	QueryFn func(selector string) ([]selmap.Element, error)
}

func (d *Document) Query(selector string) ([]selmap.Element, error) {
	return d.QueryFn(selector)
}
