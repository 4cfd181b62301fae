package spans

import "fmt"

// PlaceholderDimensions is the externally measured size of one placeholder's
// embedded content. [Build] consumes one entry per placeholder span, in walk
// order.
type PlaceholderDimensions struct {
	// Size is the measured width and height of the embedded content.
	Size Size
	// BaselineOffset is the distance from the content's top edge to its
	// baseline. Only consulted when the placeholder's alignment is
	// baseline-relative.
	BaselineOffset float64
}

// ParagraphBuilder receives the ordered instruction stream produced by
// [Build]. The builder is owned by the caller; the tree never disposes it.
// Style scopes are strictly nested: every PushStyle is matched by a later
// Pop, and scopes never interleave.
type ParagraphBuilder interface {
	// PushStyle opens a style scope. Everything added until the matching
	// Pop renders with style, with font metrics scaled by textScale.
	PushStyle(style Style, textScale float64)
	// AddText appends a run of text under the current style scope.
	AddText(text string)
	// AddPlaceholder reserves an inline slot of the given dimensions,
	// positioned by the placeholder's alignment policy.
	AddPlaceholder(dims PlaceholderDimensions, alignment PlaceholderAlignment, baseline TextBaseline)
	// Pop closes the most recently opened style scope.
	Pop()
}

// Build streams the tree into builder as a single linear pass: entering a
// text span with a style pushes a scope, its text is added, its children
// are built in order, and the scope is popped on the way out. A placeholder
// is a leaf emission with no scope push, consuming the next entry of dims.
//
// The number of placeholder spans in the tree must equal len(dims); a
// mismatch is a caller contract violation and panics. When [DebugMode] is
// set, Build also validates the tree structure first.
func Build(root Span, builder ParagraphBuilder, textScale float64, dims []PlaceholderDimensions) {
	if DebugMode {
		if err := Validate(root); err != nil {
			panic(err)
		}
	}
	if n := PlaceholderCount(root); n != len(dims) {
		panic(fmt.Sprintf("spans: %d placeholder dimensions supplied for %d placeholder spans", len(dims), n))
	}
	next := &Accumulator{}
	buildSpan(root, builder, textScale, dims, next)
}

func buildSpan(s Span, builder ParagraphBuilder, textScale float64, dims []PlaceholderDimensions, next *Accumulator) {
	switch s := s.(type) {
	case *TextSpan:
		pushed := false
		if s.Style != nil {
			builder.PushStyle(s.Style, textScale)
			pushed = true
		}
		if s.Text != "" {
			builder.AddText(s.Text)
		}
		for _, child := range s.Children {
			buildSpan(child, builder, textScale, dims, next)
		}
		if pushed {
			builder.Pop()
		}
	case *PlaceholderSpan:
		d := dims[next.Value()]
		next.Add(1)
		builder.AddPlaceholder(d, s.Alignment, s.Baseline)
	}
}
