package mock

import "github.com/selmap/selmap"

var _ selmap.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of selmap.Matcher.
type Matcher struct {
	MatchFn func(doc selmap.Document, selector string) ([]string, error)
}

func (m *Matcher) Match(doc selmap.Document, selector string) ([]string, error) {
	return m.MatchFn(doc, selector)
}
