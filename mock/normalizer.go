package mock

import "github.com/selmap/selmap"

var _ selmap.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of selmap.Normalizer.
type Normalizer struct {
	NormalizeFn func(el selmap.Element) string
}

func (n *Normalizer) Normalize(el selmap.Element) string {
	return n.NormalizeFn(el)
}
