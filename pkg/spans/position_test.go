package spans

import "testing"

func TestCodeUnitAt_NestedTree(t *testing.T) {
	tree := &TextSpan{Text: "ab", Children: []Span{Text("cd")}}
	cases := []struct {
		index int
		want  rune
		ok    bool
	}{
		{0, 'a', true},
		{1, 'b', true},
		{2, 'c', true},
		{3, 'd', true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		got, ok := CodeUnitAt(tree, c.index)
		if ok != c.ok {
			t.Errorf("index %d: expected ok=%v, got %v", c.index, c.ok, ok)
			continue
		}
		if ok && rune(got) != c.want {
			t.Errorf("index %d: expected %q, got %q", c.index, c.want, rune(got))
		}
	}
}

func TestCodeUnitAt_MatchesFlattenedText(t *testing.T) {
	tree := Group(Text("he"), Group(Text("ll"), Text("o")))
	flat := PlainText(tree, PlainTextOptions{})
	for i, r := range flat {
		got, ok := CodeUnitAt(tree, i)
		if !ok {
			t.Fatalf("index %d: expected a code unit", i)
		}
		if rune(got) != r {
			t.Errorf("index %d: expected %q, got %q", i, r, rune(got))
		}
	}
	if _, ok := CodeUnitAt(tree, len(flat)); ok {
		t.Error("expected index past end to be absent")
	}
}

func TestCodeUnitAt_SurrogatePair(t *testing.T) {
	// U+1D11E (musical G clef) occupies two UTF-16 code units.
	tree := Text("a\U0001D11Eb")
	unit, ok := CodeUnitAt(tree, 1)
	if !ok || unit != 0xD834 {
		t.Errorf("expected high surrogate 0xD834, got 0x%04X ok=%v", unit, ok)
	}
	unit, ok = CodeUnitAt(tree, 2)
	if !ok || unit != 0xDD1E {
		t.Errorf("expected low surrogate 0xDD1E, got 0x%04X ok=%v", unit, ok)
	}
	unit, ok = CodeUnitAt(tree, 3)
	if !ok || rune(unit) != 'b' {
		t.Errorf("expected 'b' at index 3, got %q ok=%v", rune(unit), ok)
	}
	if _, ok := CodeUnitAt(tree, 4); ok {
		t.Error("expected index 4 to be absent")
	}
}

func TestCodeUnitAt_PlaceholdersConsumeNoOffset(t *testing.T) {
	// Placeholders are not part of the text-addressable range: in
	// "a", placeholder, "b" the unit at index 1 is 'b'.
	tree := &TextSpan{Children: []Span{
		Text("a"),
		Placeholder(AlignMiddle, BaselineAlphabetic),
		Text("b"),
	}}
	got, ok := CodeUnitAt(tree, 1)
	if !ok || rune(got) != 'b' {
		t.Errorf("expected 'b' at index 1, got %q ok=%v", rune(got), ok)
	}
	if _, ok := CodeUnitAt(tree, 2); ok {
		t.Error("expected index 2 to be absent")
	}
}

func TestSpanForOffset_Interior(t *testing.T) {
	inner := Text("cd")
	tree := &TextSpan{Text: "ab", Children: []Span{inner}}
	got, ok := SpanForOffset(tree, 1, AffinityDownstream)
	if !ok || got != tree {
		t.Errorf("expected outer span for offset 1, got %v", got)
	}
	got, ok = SpanForOffset(tree, 3, AffinityDownstream)
	if !ok || got != inner {
		t.Errorf("expected inner span for offset 3, got %v", got)
	}
}

func TestSpanForOffset_BoundaryAffinity(t *testing.T) {
	// Offset 2 is the junction between "ab" and "cd". Downstream
	// affinity binds it to the run that follows, upstream to the run
	// that precedes.
	inner := Text("cd")
	tree := &TextSpan{Text: "ab", Children: []Span{inner}}
	got, ok := SpanForOffset(tree, 2, AffinityDownstream)
	if !ok || got != inner {
		t.Errorf("expected %q under downstream affinity, got %+v", "cd", got)
	}
	got, ok = SpanForOffset(tree, 2, AffinityUpstream)
	if !ok || got != tree {
		t.Errorf("expected %q under upstream affinity, got %+v", "ab", got)
	}
}

func TestSpanForOffset_EndsOfRange(t *testing.T) {
	tree := Text("ab")
	if _, ok := SpanForOffset(tree, 0, AffinityUpstream); ok {
		t.Error("expected offset 0 with upstream affinity to match nothing")
	}
	got, ok := SpanForOffset(tree, 0, AffinityDownstream)
	if !ok || got != tree {
		t.Error("expected offset 0 with downstream affinity to match the first run")
	}
	got, ok = SpanForOffset(tree, 2, AffinityUpstream)
	if !ok || got != tree {
		t.Error("expected offset 2 with upstream affinity to match the last run")
	}
	if _, ok := SpanForOffset(tree, 2, AffinityDownstream); ok {
		t.Error("expected offset 2 with downstream affinity to match nothing")
	}
	if _, ok := SpanForOffset(tree, 5, AffinityDownstream); ok {
		t.Error("expected out-of-range offset to match nothing")
	}
}

func TestSpanForOffset_PlaceholdersDoNotAdvance(t *testing.T) {
	b := Text("b")
	tree := Group(Text("a"), Placeholder(AlignMiddle, BaselineAlphabetic), b)
	got, ok := SpanForOffset(tree, 1, AffinityDownstream)
	if !ok || got != b {
		t.Errorf("expected the run after the placeholder, got %+v", got)
	}
}

func TestSpanForOffset_SkipsZeroLengthSpans(t *testing.T) {
	a := Text("a")
	tree := Group((&TextSpan{}).WithLabel("marker"), a)
	got, ok := SpanForOffset(tree, 0, AffinityDownstream)
	if !ok || got != a {
		t.Errorf("expected the label-only span to own no offsets, got %+v", got)
	}
}
