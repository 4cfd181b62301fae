package spans

import "unicode/utf16"

// Style is the opaque styling value attached to a span. The tree treats it
// as an external collaborator: it is never inspected beyond equality and the
// three-way layout comparison consumed by [Compare].
type Style interface {
	// Equal reports whether the two styles render identically.
	Equal(other Style) bool
	// Compare grades the difference against other: [ComparisonIdentical]
	// when nothing changed, [ComparisonMetadata] when only paint-level
	// properties changed, [ComparisonLayout] when glyph layout is affected.
	Compare(other Style) Comparison
}

// Span is one immutable node in an inline-content tree: either a [TextSpan]
// or a [PlaceholderSpan]. Nodes are compared by pointer identity where the
// algorithms need reference equality, so spans should be built once and
// shared rather than copied.
type Span interface {
	// Walk visits this span and its descendants in pre-order. See [Walk].
	Walk(visitor Visitor) bool

	spanVariant()
}

// TextSpan is a run of text with an optional style and an ordered list of
// child spans. A TextSpan may carry text, children, or both; one with
// neither is a valid empty node that flattens to nothing and is never
// matched by position queries.
type TextSpan struct {
	// Style applies to this span's text and, through the paragraph
	// builder's scope nesting, to its children. Nil means "inherit".
	Style Style
	// Text is this span's own run of text, rendered before any children.
	// Empty means the span carries no text of its own.
	Text string
	// Children are rendered after Text, in order. A nil entry in a
	// non-nil Children list is an invariant violation; see [Validate].
	Children []Span
	// Recognizer is an optional gesture recognizer handle. It is compared
	// by identity, never by content, so callers must supply a pointer
	// value. The tree never takes ownership: disposing the recognizer is
	// the caller's responsibility.
	Recognizer any
	// Label optionally overrides Text when flattening for accessibility.
	Label string
}

// PlaceholderSpan is a leaf reserving inline space for embedded content that
// is measured and laid out externally. It carries no text; its size comes
// from the placeholder-dimensions sequence supplied to [Build], consumed one
// entry per placeholder in pre-order.
type PlaceholderSpan struct {
	// Style is recorded for comparison purposes; the paragraph builder
	// receives the placeholder itself without a style scope.
	Style Style
	// Alignment positions the placeholder relative to the surrounding text.
	Alignment PlaceholderAlignment
	// Baseline identifies which baseline Alignment is measured against.
	// It is only meaningful for the baseline-relative alignments.
	Baseline TextBaseline
}

// PlaceholderAlignment positions an inline placeholder within its line.
type PlaceholderAlignment int

const (
	// AlignBaseline aligns the placeholder's own baseline with the text
	// baseline.
	AlignBaseline PlaceholderAlignment = iota
	// AlignAboveBaseline sits the placeholder's bottom edge on the baseline.
	AlignAboveBaseline
	// AlignBelowBaseline hangs the placeholder's top edge from the baseline.
	AlignBelowBaseline
	// AlignTop aligns the placeholder's top edge with the top of the line.
	AlignTop
	// AlignMiddle centers the placeholder vertically within the line.
	AlignMiddle
)

// RelativeToBaseline reports whether the alignment is measured against a
// text baseline and therefore requires a [TextBaseline].
func (a PlaceholderAlignment) RelativeToBaseline() bool {
	switch a {
	case AlignBaseline, AlignAboveBaseline, AlignBelowBaseline:
		return true
	}
	return false
}

func (a PlaceholderAlignment) String() string {
	switch a {
	case AlignBaseline:
		return "baseline"
	case AlignAboveBaseline:
		return "aboveBaseline"
	case AlignBelowBaseline:
		return "belowBaseline"
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	}
	return "unknown"
}

// TextBaseline selects which horizontal line glyphs are aligned to.
type TextBaseline int

const (
	// BaselineAlphabetic is the baseline Latin-script glyphs sit on.
	BaselineAlphabetic TextBaseline = iota
	// BaselineIdeographic is the bottom of ideographic glyph boxes.
	BaselineIdeographic
)

func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineIdeographic:
		return "ideographic"
	}
	return "unknown"
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Text creates a leaf span with the given text.
func Text(text string) *TextSpan {
	return &TextSpan{Text: text}
}

// Group creates a span whose content is the provided children, in order.
func Group(children ...Span) *TextSpan {
	return &TextSpan{Children: children}
}

// Placeholder creates a placeholder span with the given alignment policy.
// The baseline is only consulted when alignment is baseline-relative.
func Placeholder(alignment PlaceholderAlignment, baseline TextBaseline) *PlaceholderSpan {
	return &PlaceholderSpan{Alignment: alignment, Baseline: baseline}
}

// WithStyle returns a copy with the given style.
func (s *TextSpan) WithStyle(style Style) *TextSpan {
	c := *s
	c.Style = style
	return &c
}

// WithChildren returns a copy with the given child spans.
func (s *TextSpan) WithChildren(children ...Span) *TextSpan {
	c := *s
	c.Children = children
	return &c
}

// WithRecognizer returns a copy carrying the given gesture recognizer
// handle. The handle must be a pointer value; it is compared by identity.
func (s *TextSpan) WithRecognizer(recognizer any) *TextSpan {
	c := *s
	c.Recognizer = recognizer
	return &c
}

// WithLabel returns a copy with the given accessible label. The label
// replaces the span's text when flattening with IncludeLabels set.
func (s *TextSpan) WithLabel(label string) *TextSpan {
	c := *s
	c.Label = label
	return &c
}

// WithStyle returns a copy with the given style.
func (p *PlaceholderSpan) WithStyle(style Style) *PlaceholderSpan {
	c := *p
	c.Style = style
	return &c
}

func (s *TextSpan) spanVariant()        {}
func (p *PlaceholderSpan) spanVariant() {}

// length returns the span's own text length in UTF-16 code units.
func (s *TextSpan) length() int {
	n := 0
	for _, r := range s.Text {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

// codeUnits returns the span's own text as UTF-16 code units.
func (s *TextSpan) codeUnits() []uint16 {
	return utf16.Encode([]rune(s.Text))
}

// Equal reports deep structural equality of two spans: same variant, equal
// styles, equal payloads, identical recognizers, and recursively equal
// children. Reference-identical spans are always equal.
func Equal(a, b Span) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *TextSpan:
		t, ok := b.(*TextSpan)
		if !ok || t == nil || a == nil {
			return a == nil && b == nil
		}
		if a.Text != t.Text || a.Label != t.Label || a.Recognizer != t.Recognizer {
			return false
		}
		if !styleEqual(a.Style, t.Style) {
			return false
		}
		if len(a.Children) != len(t.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], t.Children[i]) {
				return false
			}
		}
		return true
	case *PlaceholderSpan:
		p, ok := b.(*PlaceholderSpan)
		if !ok || p == nil || a == nil {
			return a == nil && b == nil
		}
		return a.Alignment == p.Alignment && a.Baseline == p.Baseline && styleEqual(a.Style, p.Style)
	}
	return false
}

func styleEqual(a, b Style) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
