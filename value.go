package selmap

import (
	"encoding/json"
	"sort"
	"strings"
)

// Value holds the outcome of one named selector in an extraction batch.
// Exactly one form is populated: joined text (Joined is true), an ordered
// sequence of per-match texts, or a per-selector error.
type Value struct {
	// Text is the joined text of all matches when a separator is
	// configured.
	Text string `json:"text,omitempty"`

	// Parts holds the per-match texts, in document order, when no
	// separator is configured. A single match still yields a one-element
	// sequence.
	Parts []string `json:"parts,omitempty"`

	// Joined reports whether Text is the populated form.
	Joined bool `json:"joined,omitempty"`

	// Err is the per-selector failure, nil on success.
	Err error `json:"-"`
}

// String renders the value for display. Failed values render as
// "ERROR: <message>"; sequence values are joined with newlines.
func (v Value) String() string {
	if v.Err != nil {
		return "ERROR: " + ErrorMessage(v.Err)
	}
	if v.Joined {
		return v.Text
	}
	return strings.Join(v.Parts, "\n")
}

// MarshalJSON encodes the value in its populated form: the error marker
// string on failure, the joined string in joined mode, and an array of
// per-match strings otherwise.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Err != nil {
		return json.Marshal(v.String())
	}
	if v.Joined {
		return json.Marshal(v.Text)
	}
	parts := v.Parts
	if parts == nil {
		parts = []string{}
	}
	return json.Marshal(parts)
}

// Results maps each name of an extraction batch to its Value.
type Results map[string]Value

// Names returns the result names in ascending lexicographic order, the
// same order the batch was processed in.
func (r Results) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
