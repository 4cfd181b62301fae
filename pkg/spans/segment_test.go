package spans

import "testing"

func TestWordRangeAt(t *testing.T) {
	tree := Group(Text("hello "), Text("wor"), Text("ld"))
	start, end, ok := WordRangeAt(tree, 8)
	if !ok {
		t.Fatal("expected a word at offset 8")
	}
	if start != 6 || end != 11 {
		t.Errorf("expected [6, 11), got [%d, %d)", start, end)
	}
	start, end, ok = WordRangeAt(tree, 0)
	if !ok || start != 0 || end != 5 {
		t.Errorf("expected [0, 5), got [%d, %d) ok=%v", start, end, ok)
	}
}

func TestWordRangeAt_OutOfRange(t *testing.T) {
	tree := Text("hi")
	if _, _, ok := WordRangeAt(tree, -1); ok {
		t.Error("expected no word at a negative offset")
	}
	if _, _, ok := WordRangeAt(tree, 2); ok {
		t.Error("expected no word at the end offset")
	}
	if _, _, ok := WordRangeAt(tree, 10); ok {
		t.Error("expected no word past the end")
	}
}

func TestWordRangeAt_SpansPlaceholderGap(t *testing.T) {
	// Placeholders are absent from the text-only projection, so the
	// word range is computed over the joined text.
	tree := Group(Text("ab"), Placeholder(AlignMiddle, BaselineAlphabetic), Text("cd"))
	start, end, ok := WordRangeAt(tree, 1)
	if !ok || start != 0 || end != 4 {
		t.Errorf("expected [0, 4), got [%d, %d) ok=%v", start, end, ok)
	}
}

func TestGraphemeRangeAt_Surrogates(t *testing.T) {
	// The emoji occupies UTF-16 offsets [1, 3); both of its code units
	// resolve to the same cluster.
	tree := Text("a\U0001F600b")
	for _, offset := range []int{1, 2} {
		start, end, ok := GraphemeRangeAt(tree, offset)
		if !ok {
			t.Fatalf("offset %d: expected a cluster", offset)
		}
		if start != 1 || end != 3 {
			t.Errorf("offset %d: expected [1, 3), got [%d, %d)", offset, start, end)
		}
	}
	start, end, ok := GraphemeRangeAt(tree, 3)
	if !ok || start != 3 || end != 4 {
		t.Errorf("expected [3, 4), got [%d, %d) ok=%v", start, end, ok)
	}
}

func TestGraphemeRangeAt_CombiningMark(t *testing.T) {
	// "e" followed by U+0301 forms one user-perceived character.
	tree := Text("xéy")
	start, end, ok := GraphemeRangeAt(tree, 1)
	if !ok || start != 1 || end != 3 {
		t.Errorf("expected [1, 3), got [%d, %d) ok=%v", start, end, ok)
	}
}
