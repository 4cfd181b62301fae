package spans

import (
	"fmt"

	"github.com/go-drift/richtext/pkg/errors"
)

// DebugMode controls whether [Build] validates tree structure before
// emitting. Trees are hot-path objects rebuilt on every edit, so validation
// is opt-in rather than performed on construction.
var DebugMode = false

// SetDebugMode enables or disables eager structural validation.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Validate checks the structural invariants of the tree: every entry of a
// present child list must be a present span. A violation is a developer
// contract error, reported with the flattened text of the offending subtree
// so the broken content can be located; it is never silently repaired.
func Validate(root Span) error {
	t, ok := root.(*TextSpan)
	if !ok {
		return nil
	}
	for _, child := range t.Children {
		if absentSpan(child) {
			err := &errors.RichTextError{
				Op:   "spans.Validate",
				Kind: errors.KindStructure,
				Err:  fmt.Errorf("child list of span %q contains a nil span", diagnosticText(t)),
			}
			errors.Report(err)
			return err
		}
		if err := Validate(child); err != nil {
			return err
		}
	}
	return nil
}

// diagnosticText flattens the offending subtree for the error message,
// skipping the absent entries [PlainText] would fault on.
func diagnosticText(s Span) string {
	switch s := s.(type) {
	case *TextSpan:
		out := s.Text
		for _, child := range s.Children {
			if !absentSpan(child) {
				out += diagnosticText(child)
			}
		}
		return out
	case *PlaceholderSpan:
		return string(PlaceholderRune)
	}
	return ""
}

// absentSpan reports whether s is missing, including a typed nil pointer
// stored in the interface.
func absentSpan(s Span) bool {
	switch s := s.(type) {
	case nil:
		return true
	case *TextSpan:
		return s == nil
	case *PlaceholderSpan:
		return s == nil
	}
	return false
}
