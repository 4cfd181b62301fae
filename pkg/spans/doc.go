// Package spans models a paragraph of richly formatted inline content as an
// immutable tree of text runs and embedded placeholders, and provides the
// algorithms the text pipeline is built on: flattening the tree to plain
// text, mapping flat-text offsets back to spans, structurally diffing two
// trees to grade how much re-layout a change requires, and streaming the
// tree into an external paragraph builder.
//
// Span trees are built once and never mutated. Edits are expressed by
// building a new tree and comparing it against the old one with [Compare].
// Because every operation is a read-only walk, sharing subtrees across trees
// and reading one tree from multiple goroutines are both safe.
//
// Offsets throughout this package are UTF-16 code units, matching the
// addressing scheme of the paragraph builders the tree is streamed into.
// Text payloads remain ordinary Go strings; the conversion happens at the
// query boundary.
package spans
