package spans

import "testing"

func TestText(t *testing.T) {
	s := Text("hello")
	if s.Text != "hello" {
		t.Errorf("expected text %q, got %q", "hello", s.Text)
	}
	if s.Style != nil || s.Children != nil || s.Recognizer != nil || s.Label != "" {
		t.Errorf("expected bare span, got %+v", s)
	}
}

func TestGroup(t *testing.T) {
	s := Group(Text("a"), Text("b"))
	if len(s.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(s.Children))
	}
	if s.Text != "" {
		t.Errorf("expected no text, got %q", s.Text)
	}
}

func TestWith_CopiesDoNotMutateOriginal(t *testing.T) {
	original := Text("x")
	styled := original.WithStyle(stubStyle{ID: 1})
	if original.Style != nil {
		t.Error("WithStyle mutated the original span")
	}
	if styled.Style == nil {
		t.Error("WithStyle did not set the style on the copy")
	}
	labeled := original.WithLabel("ex")
	if original.Label != "" {
		t.Error("WithLabel mutated the original span")
	}
	if labeled.Label != "ex" {
		t.Errorf("expected label %q, got %q", "ex", labeled.Label)
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder(AlignBelowBaseline, BaselineIdeographic)
	if p.Alignment != AlignBelowBaseline || p.Baseline != BaselineIdeographic {
		t.Errorf("unexpected placeholder %+v", p)
	}
}

func TestPlaceholderAlignment_RelativeToBaseline(t *testing.T) {
	relative := []PlaceholderAlignment{AlignBaseline, AlignAboveBaseline, AlignBelowBaseline}
	for _, a := range relative {
		if !a.RelativeToBaseline() {
			t.Errorf("expected %s to be baseline-relative", a)
		}
	}
	for _, a := range []PlaceholderAlignment{AlignTop, AlignMiddle} {
		if a.RelativeToBaseline() {
			t.Errorf("expected %s not to be baseline-relative", a)
		}
	}
}

func TestSpanLength_CountsUTF16Units(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"ab", 2},
		{"é", 1},
		{"\U0001F600", 2}, // emoji outside the BMP
		{"a\U0001D11Eb", 4},
	}
	for _, c := range cases {
		if got := Text(c.text).length(); got != c.want {
			t.Errorf("%q: expected length %d, got %d", c.text, c.want, got)
		}
	}
}

func TestStructuralSharing(t *testing.T) {
	// The same child instance may appear under different parents; all
	// operations are read-only so both trees see consistent results.
	shared := Text("shared")
	a := Group(Text("a"), shared)
	b := Group(shared, Text("b"))
	if got := PlainText(a, PlainTextOptions{}); got != "ashared" {
		t.Errorf("expected %q, got %q", "ashared", got)
	}
	if got := PlainText(b, PlainTextOptions{}); got != "sharedb" {
		t.Errorf("expected %q, got %q", "sharedb", got)
	}
	if got, ok := SpanForOffset(b, 0, AffinityDownstream); !ok || got != shared {
		t.Errorf("expected the shared span, got %+v", got)
	}
}
