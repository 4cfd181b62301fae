package spans

// Comparison grades how much work a change between two span trees demands
// of the rendering pipeline. Severities are ordered:
// [ComparisonLayout] > [ComparisonMetadata] > [ComparisonIdentical].
type Comparison int

const (
	// ComparisonIdentical means nothing observable changed.
	ComparisonIdentical Comparison = iota
	// ComparisonMetadata means only metadata changed (for example the
	// gesture recognizer, or paint-level style properties): no relayout,
	// at most a repaint or a semantics update.
	ComparisonMetadata
	// ComparisonLayout means the change affects glyph layout; the
	// paragraph must be rebuilt and relaid out.
	ComparisonLayout
)

func (c Comparison) String() string {
	switch c {
	case ComparisonIdentical:
		return "identical"
	case ComparisonMetadata:
		return "metadata"
	case ComparisonLayout:
		return "layout"
	}
	return "unknown"
}

// Compare structurally diffs two span trees and returns the highest severity
// found. The comparison short-circuits: once a layout-level difference is
// certain, deeper subtrees are not visited. Reference-identical trees are
// identical by definition.
//
// Any difference in a placeholder's alignment policy or baseline is treated
// as layout-affecting.
func Compare(a, b Span) Comparison {
	if a == b {
		return ComparisonIdentical
	}
	switch a := a.(type) {
	case *TextSpan:
		t, ok := b.(*TextSpan)
		if !ok {
			return ComparisonLayout
		}
		return compareText(a, t)
	case *PlaceholderSpan:
		p, ok := b.(*PlaceholderSpan)
		if !ok {
			return ComparisonLayout
		}
		return comparePlaceholder(a, p)
	}
	return ComparisonLayout
}

func compareText(a, b *TextSpan) Comparison {
	if a.Text != b.Text || len(a.Children) != len(b.Children) ||
		(a.Style == nil) != (b.Style == nil) {
		return ComparisonLayout
	}
	result := ComparisonIdentical
	if a.Recognizer != b.Recognizer {
		result = ComparisonMetadata
	}
	if a.Style != nil {
		if c := a.Style.Compare(b.Style); c > result {
			result = c
		}
		if result == ComparisonLayout {
			return result
		}
	}
	// Child lists are the same length here; diff them pairwise. Severity
	// only ever escalates, so stop as soon as a child reports layout.
	for i := range a.Children {
		if c := Compare(a.Children[i], b.Children[i]); c > result {
			result = c
		}
		if result == ComparisonLayout {
			return result
		}
	}
	return result
}

func comparePlaceholder(a, b *PlaceholderSpan) Comparison {
	if a.Alignment != b.Alignment || a.Baseline != b.Baseline ||
		(a.Style == nil) != (b.Style == nil) {
		return ComparisonLayout
	}
	if a.Style != nil {
		return a.Style.Compare(b.Style)
	}
	return ComparisonIdentical
}
