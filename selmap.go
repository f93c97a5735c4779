// Package selmap extracts named text fragments from HTML documents using
// CSS selectors. A caller supplies a mapping of name to selector and an
// HTML document; the extractor evaluates every selector, normalizes the
// matched elements to text, and returns the results keyed by name, with
// per-selector failures captured without aborting the batch.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/). The
// batch loop itself lives in extract/.
package selmap
