// Package style provides the concrete span styling value consumed by the
// span-tree algorithms. The spans package treats styles as opaque values; the
// definitions here supply the equality and three-way layout comparison it
// relies on, plus zero-value inheritance for assembling style cascades.
package style

import (
	"math"

	"github.com/go-drift/richtext/pkg/spans"
)

// explicitZero is a sentinel for explicitly setting a float64 field to zero
// when the plain zero value means "unset" or "inherit." It is small enough
// (~5e-324) to be visually indistinguishable from zero in any rendering
// context. Users should prefer the No* methods (e.g. NoLetterSpacing)
// rather than using this constant directly.
const explicitZero float64 = math.SmallestNonzeroFloat64

// noBackgroundColor is a sentinel Color that explicitly clears an inherited
// background. Its value (0x00000001, alpha 0) is visually indistinguishable
// from fully transparent. Users should call SpanStyle.NoBackground rather
// than using this constant directly.
const noBackgroundColor Color = 1

// noDecorationColor is a sentinel Color that explicitly clears an inherited
// decoration color, causing the decoration to use the span's text color
// instead. Users should call SpanStyle.NoDecorationColor rather than using
// this constant directly.
const noDecorationColor Color = 1

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// FontStyle represents normal or italic text styles. The zero value means
// "inherit from parent."
type FontStyle int

const (
	fontStyleUnset FontStyle = 0 // zero value = inherit

	// FontStyleNormal explicitly selects upright text.
	FontStyleNormal FontStyle = 1

	// FontStyleItalic selects italic text.
	FontStyleItalic FontStyle = 2
)

// TextDecoration selects a single text decoration line. Like [FontStyle] and
// [TextDecorationStyle], the zero value means "inherit from parent."
type TextDecoration int

const (
	textDecorationUnset TextDecoration = 0 // zero value = inherit

	// TextDecorationNone explicitly removes decoration, overriding any
	// value inherited from a parent span.
	TextDecorationNone TextDecoration = 1

	// TextDecorationUnderline draws a line below the text baseline.
	TextDecorationUnderline TextDecoration = 2

	// TextDecorationOverline draws a line above the text.
	TextDecorationOverline TextDecoration = 3

	// TextDecorationLineThrough draws a line through the middle of the text.
	TextDecorationLineThrough TextDecoration = 4
)

// TextDecorationStyle controls the appearance of decoration lines.
type TextDecorationStyle int

const (
	textDecorationStyleUnset TextDecorationStyle = 0 // zero value = inherit

	// TextDecorationStyleSolid draws a single continuous line.
	TextDecorationStyleSolid TextDecorationStyle = 1

	// TextDecorationStyleDouble draws two parallel lines.
	TextDecorationStyleDouble TextDecorationStyle = 2

	// TextDecorationStyleDotted draws a dotted line.
	TextDecorationStyleDotted TextDecorationStyle = 3

	// TextDecorationStyleDashed draws a dashed line.
	TextDecorationStyleDashed TextDecorationStyle = 4

	// TextDecorationStyleWavy draws a sinusoidal wave.
	TextDecorationStyleWavy TextDecorationStyle = 5
)

// SpanStyle describes the visual style for a text span. Zero-valued fields
// inherit from the parent span's resolved style through [SpanStyle.Merge].
// Non-zero fields override the parent. Two patterns allow children to reset
// inherited values:
//
//   - 1-based enums ([FontStyle], [TextDecorationStyle], [TextDecoration]):
//     0 = inherit, 1+ = explicit values (e.g. [TextDecorationNone] = 1).
//   - No* methods ([SpanStyle.NoLetterSpacing], [SpanStyle.NoWordSpacing],
//     [SpanStyle.NoHeight], [SpanStyle.NoBackground],
//     [SpanStyle.NoDecorationColor]) for resetting inherited values.
//
// SpanStyle implements [spans.Style] by value.
type SpanStyle struct {
	Color           Color
	FontFamily      string
	FontSize        float64
	FontWeight      FontWeight
	FontStyle       FontStyle
	LetterSpacing   float64
	WordSpacing     float64
	Height          float64
	Decoration      TextDecoration
	DecorationColor Color
	DecorationStyle TextDecorationStyle
	BackgroundColor Color
}

// Merge copies parent field values into s for any field that is zero-valued
// in s. Non-zero fields in s are left untouched (child overrides parent).
func (s SpanStyle) Merge(parent SpanStyle) SpanStyle {
	if s.Color == 0 {
		s.Color = parent.Color
	}
	if s.FontFamily == "" {
		s.FontFamily = parent.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = parent.FontSize
	}
	if s.FontWeight == 0 {
		s.FontWeight = parent.FontWeight
	}
	if s.FontStyle == 0 {
		s.FontStyle = parent.FontStyle
	}
	if s.LetterSpacing == 0 {
		s.LetterSpacing = parent.LetterSpacing
	}
	if s.WordSpacing == 0 {
		s.WordSpacing = parent.WordSpacing
	}
	if s.Height == 0 {
		s.Height = parent.Height
	}
	if s.Decoration == 0 {
		s.Decoration = parent.Decoration
	}
	if s.DecorationColor == 0 {
		s.DecorationColor = parent.DecorationColor
	}
	if s.DecorationStyle == 0 {
		s.DecorationStyle = parent.DecorationStyle
	}
	if s.BackgroundColor == 0 {
		s.BackgroundColor = parent.BackgroundColor
	}
	return s
}

// Scaled returns a copy with the font size multiplied by factor, for
// paragraph builders that apply a global text scale. Unset sizes stay unset.
func (s SpanStyle) Scaled(factor float64) SpanStyle {
	if s.FontSize > 0 && factor > 0 {
		s.FontSize *= factor
	}
	return s
}

// Bold returns a copy with FontWeight set to FontWeightBold.
func (s SpanStyle) Bold() SpanStyle {
	s.FontWeight = FontWeightBold
	return s
}

// Italic returns a copy with FontStyle set to FontStyleItalic.
func (s SpanStyle) Italic() SpanStyle {
	s.FontStyle = FontStyleItalic
	return s
}

// Weight returns a copy with the specified font weight.
func (s SpanStyle) Weight(w FontWeight) SpanStyle {
	s.FontWeight = w
	return s
}

// Size returns a copy with the specified font size.
func (s SpanStyle) Size(size float64) SpanStyle {
	s.FontSize = size
	return s
}

// Family returns a copy with the specified font family.
func (s SpanStyle) Family(name string) SpanStyle {
	s.FontFamily = name
	return s
}

// Underline returns a copy with an underline decoration. If no
// DecorationColor is set on this span or any ancestor, the decoration line
// uses the span's text color.
func (s SpanStyle) Underline() SpanStyle {
	s.Decoration = TextDecorationUnderline
	return s
}

// Overline returns a copy with an overline decoration.
func (s SpanStyle) Overline() SpanStyle {
	s.Decoration = TextDecorationOverline
	return s
}

// Strikethrough returns a copy with a line-through decoration.
func (s SpanStyle) Strikethrough() SpanStyle {
	s.Decoration = TextDecorationLineThrough
	return s
}

// NoDecoration returns a copy with decoration explicitly set to none. This
// allows a child span to remove a decoration inherited from a parent.
func (s SpanStyle) NoDecoration() SpanStyle {
	s.Decoration = TextDecorationNone
	return s
}

// NoDecorationColor returns a copy that explicitly clears the decoration
// color, overriding any value inherited from a parent span.
func (s SpanStyle) NoDecorationColor() SpanStyle {
	s.DecorationColor = noDecorationColor
	return s
}

// NoLetterSpacing returns a copy that explicitly resets letter spacing to
// zero, overriding any value inherited from a parent span.
func (s SpanStyle) NoLetterSpacing() SpanStyle {
	s.LetterSpacing = explicitZero
	return s
}

// NoWordSpacing returns a copy that explicitly resets word spacing to zero,
// overriding any value inherited from a parent span.
func (s SpanStyle) NoWordSpacing() SpanStyle {
	s.WordSpacing = explicitZero
	return s
}

// NoHeight returns a copy that explicitly resets the line height multiplier
// to zero, overriding any value inherited from a parent span.
func (s SpanStyle) NoHeight() SpanStyle {
	s.Height = explicitZero
	return s
}

// NoBackground returns a copy that explicitly clears background color,
// overriding any value inherited from a parent span.
func (s SpanStyle) NoBackground() SpanStyle {
	s.BackgroundColor = noBackgroundColor
	return s
}

// Equal implements [spans.Style]. Styles of a different concrete type are
// never equal.
func (s SpanStyle) Equal(other spans.Style) bool {
	o, ok := other.(SpanStyle)
	return ok && s == o
}

// Compare implements [spans.Style]: it grades the difference against other.
// Changes to font family, size, weight, slant, spacing or line height move
// glyphs and are layout-level; color and decoration changes repaint the same
// glyph geometry and are metadata-level. A different concrete style type is
// always a layout-level change.
func (s SpanStyle) Compare(other spans.Style) spans.Comparison {
	o, ok := other.(SpanStyle)
	if !ok {
		return spans.ComparisonLayout
	}
	if s == o {
		return spans.ComparisonIdentical
	}
	if s.FontFamily != o.FontFamily ||
		s.FontSize != o.FontSize ||
		s.FontWeight != o.FontWeight ||
		s.FontStyle != o.FontStyle ||
		s.LetterSpacing != o.LetterSpacing ||
		s.WordSpacing != o.WordSpacing ||
		s.Height != o.Height {
		return spans.ComparisonLayout
	}
	return spans.ComparisonMetadata
}

var _ spans.Style = SpanStyle{}
