// Package extract implements the batch extraction loop: a set of named CSS
// selectors is evaluated against one HTML document, every match is
// normalized to text, and the results are collected per name with
// per-selector failure capture.
package extract

import (
	"sort"
	"strings"

	"github.com/selmap/selmap"
)

// Extractor runs extraction batches against a Parser.
//
// An Extractor is built once and reused across any number of Extract
// calls. It is not safe for concurrent use: the last-error and
// last-results caches are overwritten on every call, so concurrent
// callers need one Extractor each or external locking.
type Extractor struct {
	parser     selmap.Parser
	matcher    selmap.Matcher
	normalizer selmap.Normalizer

	sep    string
	join   bool
	strict bool

	lastErr     error
	lastResults selmap.Results
}

// Option configures an Extractor at construction time.
type Option func(*Extractor)

// WithSeparator sets the string used to join multi-match results into one
// string per name. The default separator is "\n".
func WithSeparator(sep string) Option {
	return func(e *Extractor) {
		e.sep = sep
		e.join = true
	}
}

// WithoutSeparator disables joining: every result is kept as an ordered
// sequence of per-match texts, even when there is exactly one match.
func WithoutSeparator() Option {
	return func(e *Extractor) {
		e.join = false
	}
}

// WithStrict makes zero matches for a selector a failure for that name.
// By default unmatched selectors yield an empty result.
func WithStrict() Option {
	return func(e *Extractor) {
		e.strict = true
	}
}

// WithNormalizer replaces the per-element text policy used by the default
// matcher. It has no effect when WithMatcher is also supplied.
func WithNormalizer(n selmap.Normalizer) Option {
	return func(e *Extractor) {
		e.normalizer = n
	}
}

// WithMatcher replaces the whole query+normalize step.
func WithMatcher(m selmap.Matcher) Option {
	return func(e *Extractor) {
		e.matcher = m
	}
}

// New creates an Extractor that parses documents with the given parser.
func New(parser selmap.Parser, opts ...Option) *Extractor {
	e := &Extractor{
		parser:     parser,
		normalizer: selmap.TextNormalizer{},
		sep:        "\n",
		join:       true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.matcher == nil {
		e.matcher = NewMatcher(e.normalizer)
	}
	return e
}

// NewMatcher returns the default query+normalize step: query the document
// for the selector, then normalize each matched element with n. It is
// exported so decorators can wrap it before passing it to WithMatcher.
func NewMatcher(n selmap.Normalizer) selmap.Matcher {
	return &normalizeMatcher{normalizer: n}
}

// Separator returns the configured join separator. The second return is
// false when joining is disabled.
func (e *Extractor) Separator() (string, bool) {
	if !e.join {
		return "", false
	}
	return e.sep, true
}

// SetSeparator sets the join separator and enables joining for subsequent
// calls.
func (e *Extractor) SetSeparator(sep string) {
	e.sep = sep
	e.join = true
}

// ClearSeparator disables joining for subsequent calls: results become
// ordered sequences of per-match texts.
func (e *Extractor) ClearSeparator() {
	e.join = false
}

// IgnoreNotFound reports whether selectors with zero matches are
// tolerated.
func (e *Extractor) IgnoreNotFound() bool {
	return !e.strict
}

// SetIgnoreNotFound controls whether selectors with zero matches are
// tolerated on subsequent calls.
func (e *Extractor) SetIgnoreNotFound(v bool) {
	e.strict = !v
}

// Err returns the error of the most recent call, nil when it succeeded.
// When several selectors fail within one call only the lexicographically
// last failure is retained here; the per-name detail is in LastResults.
func (e *Extractor) Err() error {
	return e.lastErr
}

// LastResults returns the full result set of the most recent call,
// including any failed names. It is nil before the first call and after a
// call that failed validation before any extraction work.
func (e *Extractor) LastResults() selmap.Results {
	return e.lastResults
}

// Extract evaluates every selector in selectors against html and returns
// the results keyed by name. Names are processed in ascending
// lexicographic order. Per-selector failures do not abort the batch: the
// failed name carries its error in the returned Value, Err reports the
// last failure in name order, and Extract returns (nil, Err()); the
// partial results remain available via LastResults.
//
// The input map is not modified.
func (e *Extractor) Extract(selectors map[string]string, html string) (selmap.Results, error) {
	return e.extract(selectors, html, nil)
}

// ExtractTo runs the same batch as Extract and then pushes each final
// Value into target by calling the method named after its key. Keys map
// to method names by exporting the first rune and camel-casing snake_case
// ("author_name" dispatches to AuthorName); each method must take a
// single argument assignable from selmap.Value. Every key is resolved
// against target before any parsing or querying happens, so a target that
// cannot receive all results causes no extraction work at all.
//
// Dispatch happens only after the whole batch has been processed, and it
// includes failed names: their methods receive the error-carrying Value.
func (e *Extractor) ExtractTo(selectors map[string]string, html string, target any) (selmap.Results, error) {
	if target == nil {
		e.lastErr = selmap.Errorf(selmap.EINVALID, "extraction target required")
		e.lastResults = nil
		return nil, e.lastErr
	}
	return e.extract(selectors, html, target)
}

func (e *Extractor) extract(selectors map[string]string, html string, target any) (selmap.Results, error) {
	e.lastErr = nil
	e.lastResults = nil

	if len(selectors) == 0 {
		e.lastErr = selmap.Errorf(selmap.EINVALID, "selector map required")
		return nil, e.lastErr
	}
	if html == "" {
		e.lastErr = selmap.Errorf(selmap.EINVALID, "HTML input required")
		return nil, e.lastErr
	}

	names := make([]string, 0, len(selectors))
	for name := range selectors {
		names = append(names, name)
	}
	sort.Strings(names)

	var sink *targetSink
	if target != nil {
		s, err := newTargetSink(target, names)
		if err != nil {
			e.lastErr = err
			return nil, err
		}
		sink = s
	}

	doc, err := e.parser.Parse(html)
	if err != nil {
		e.lastErr = err
		return nil, err
	}

	results := make(selmap.Results, len(selectors))
	failed := false
	for _, name := range names {
		v := e.one(doc, selectors[name])
		if v.Err != nil {
			failed = true
			e.lastErr = selmap.Errorf(selmap.ErrorCode(v.Err), "[%s]: %s", name, selmap.ErrorMessage(v.Err))
		}
		results[name] = v
	}

	if sink != nil {
		sink.push(results)
	}

	e.lastResults = results
	if failed {
		return nil, e.lastErr
	}
	return results, nil
}

// one evaluates a single selector against the parsed document.
func (e *Extractor) one(doc selmap.Document, selector string) selmap.Value {
	texts, err := e.matcher.Match(doc, selector)
	if err != nil {
		return selmap.Value{Err: err}
	}
	if len(texts) == 0 && e.strict {
		return selmap.Value{Err: selmap.Errorf(selmap.ENOTFOUND, "NOT FOUND")}
	}
	if !e.join {
		return selmap.Value{Parts: texts}
	}
	return selmap.Value{Text: strings.Join(texts, e.sep), Joined: true}
}

type normalizeMatcher struct {
	normalizer selmap.Normalizer
}

func (m *normalizeMatcher) Match(doc selmap.Document, selector string) ([]string, error) {
	els, err := doc.Query(selector)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		texts = append(texts, m.normalizer.Normalize(el))
	}
	return texts, nil
}
