package spans

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
)

// WordRangeAt returns the UTF-16 range [start, end) of the word containing
// offset in the tree's text-only projection, using Unicode word boundaries.
// This is what double-tap selection asks of the position mapper. Offsets
// inside placeholder-only regions or out of range return false.
func WordRangeAt(root Span, offset int) (start, end int, ok bool) {
	text := PlainText(root, PlainTextOptions{})
	byteOff, ok := byteOffset(text, offset)
	if !ok {
		return 0, 0, false
	}
	iter := words.FromString(text)
	for iter.Next() {
		if byteOff >= iter.Start() && byteOff < iter.End() {
			return utf16Offset(text, iter.Start()), utf16Offset(text, iter.End()), true
		}
	}
	return 0, 0, false
}

// GraphemeRangeAt returns the UTF-16 range [start, end) of the grapheme
// cluster containing offset in the tree's text-only projection. Cursor
// movement uses this to step over multi-unit clusters (surrogate pairs,
// combining marks) as single user-perceived characters.
func GraphemeRangeAt(root Span, offset int) (start, end int, ok bool) {
	text := PlainText(root, PlainTextOptions{})
	byteOff, ok := byteOffset(text, offset)
	if !ok {
		return 0, 0, false
	}
	iter := graphemes.FromString(text)
	for iter.Next() {
		if byteOff >= iter.Start() && byteOff < iter.End() {
			return utf16Offset(text, iter.Start()), utf16Offset(text, iter.End()), true
		}
	}
	return 0, 0, false
}

// byteOffset converts a UTF-16 code-unit offset into a byte offset in text.
// Offsets landing inside a surrogate pair resolve to the pair's rune.
func byteOffset(text string, offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	units := 0
	for i, r := range text {
		w := 1
		if r > 0xFFFF {
			w = 2
		}
		if offset < units+w {
			return i, true
		}
		units += w
	}
	if offset == units {
		// Offset at end of text converts cleanly but lies inside no
		// word, so the callers above will report false.
		return len(text), true
	}
	return 0, false
}

// utf16Offset converts a byte offset in text into a UTF-16 code-unit offset.
func utf16Offset(text string, byteOff int) int {
	units := 0
	for i, r := range text {
		if i >= byteOff {
			break
		}
		units++
		if r > 0xFFFF {
			units++
		}
	}
	return units
}
