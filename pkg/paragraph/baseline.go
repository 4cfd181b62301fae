package paragraph

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/richtext/pkg/spans"
)

// BaselineOffset returns the distance from the top of a line box to the
// requested baseline, given the line's font metrics. The ideographic
// baseline sits at the bottom of the em box, below the alphabetic one.
func BaselineOffset(m font.Metrics, baseline spans.TextBaseline) float64 {
	ascent := fixedToFloat(m.Ascent)
	if baseline == spans.BaselineIdeographic {
		return ascent + fixedToFloat(m.Descent)
	}
	return ascent
}

// PlaceholderTop returns the vertical offset from the top of a line box to
// the top edge of a placeholder, resolving the placeholder's alignment
// policy against the line's font metrics and height.
func PlaceholderTop(dims spans.PlaceholderDimensions, alignment spans.PlaceholderAlignment, baseline spans.TextBaseline, m font.Metrics, lineHeight float64) float64 {
	switch alignment {
	case spans.AlignBaseline:
		return BaselineOffset(m, baseline) - dims.BaselineOffset
	case spans.AlignAboveBaseline:
		return BaselineOffset(m, baseline) - dims.Size.Height
	case spans.AlignBelowBaseline:
		return BaselineOffset(m, baseline)
	case spans.AlignTop:
		return 0
	case spans.AlignMiddle:
		return (lineHeight - dims.Size.Height) / 2
	}
	return 0
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
