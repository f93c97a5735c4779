package mock

import "github.com/selmap/selmap"

var _ selmap.Element = (*Element)(nil)

// Element is a mock implementation of selmap.Element.
type Element struct {
	TagFn  func() string
	AttrFn func(name string) (string, bool)
	TextFn func() string
}

func (e *Element) Tag() string {
	return e.TagFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}
