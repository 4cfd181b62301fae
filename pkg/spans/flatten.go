package spans

import "strings"

// PlaceholderRune is the object replacement character emitted in flattened
// text for each placeholder span when placeholders are included.
const PlaceholderRune = '￼'

// PlainTextOptions controls the flattening policy of [PlainText].
type PlainTextOptions struct {
	// IncludeLabels substitutes a span's accessible label for its text
	// wherever one is present.
	IncludeLabels bool
	// IncludePlaceholders emits one [PlaceholderRune] per placeholder
	// span. When false, placeholders flatten to nothing.
	IncludePlaceholders bool
}

// PlainText projects the tree onto a single plain-text string, ignoring all
// styling. Concatenation follows walk order. The projection is pure:
// flattening the same tree twice yields identical strings.
func PlainText(root Span, opts PlainTextOptions) string {
	var b strings.Builder
	Walk(root, func(s Span) bool {
		switch s := s.(type) {
		case *TextSpan:
			if opts.IncludeLabels && s.Label != "" {
				b.WriteString(s.Label)
			} else {
				b.WriteString(s.Text)
			}
		case *PlaceholderSpan:
			if opts.IncludePlaceholders {
				b.WriteRune(PlaceholderRune)
			}
		}
		return true
	})
	return b.String()
}
