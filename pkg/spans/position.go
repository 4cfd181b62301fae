package spans

// TextAffinity resolves which of two adjacent text runs owns an offset that
// falls exactly on the boundary between them.
type TextAffinity int

const (
	// AffinityDownstream associates a boundary offset with the run that
	// follows it. This is the zero value and the usual cursor behavior.
	AffinityDownstream TextAffinity = iota
	// AffinityUpstream associates a boundary offset with the run that
	// precedes it.
	AffinityUpstream
)

func (a TextAffinity) String() string {
	switch a {
	case AffinityDownstream:
		return "downstream"
	case AffinityUpstream:
		return "upstream"
	}
	return "unknown"
}

// SpanForOffset returns the text span whose flattened range contains offset,
// measured in UTF-16 code units over the tree's text-only projection.
// Placeholder spans do not advance the offset; they are not part of the
// addressable range for this query.
//
// A span covering [start, start+len) matches when offset lies strictly
// inside the range, when offset == start under downstream affinity, or when
// offset == start+len under upstream affinity. The first matching span in
// walk order wins and the walk stops early. The second return is false when
// no span matches (offset out of range, or inside a placeholder-only region).
func SpanForOffset(root Span, offset int, affinity TextAffinity) (*TextSpan, bool) {
	var found *TextSpan
	acc := &Accumulator{}
	Walk(root, func(s Span) bool {
		t, ok := s.(*TextSpan)
		if !ok {
			return true
		}
		start := acc.Value()
		end := start + t.length()
		if end == start {
			// Zero-length spans (label-only nodes) own no offsets.
			return true
		}
		if (offset == start && affinity == AffinityDownstream) ||
			(start < offset && offset < end) ||
			(offset == end && affinity == AffinityUpstream) {
			found = t
			return false
		}
		acc.Add(end - start)
		return true
	})
	return found, found != nil
}

// CodeUnitAt returns the UTF-16 code unit at index in the tree's text-only
// projection. Placeholder spans consume no offset budget: in a tree
// flattening to "a", placeholder, "b", index 1 is 'b'. Negative indices and
// indices past the end return false, never a fault.
func CodeUnitAt(root Span, index int) (uint16, bool) {
	if index < 0 {
		return 0, false
	}
	var unit uint16
	found := false
	acc := &Accumulator{}
	Walk(root, func(s Span) bool {
		t, ok := s.(*TextSpan)
		if !ok {
			return true
		}
		units := t.codeUnits()
		if local := index - acc.Value(); local < len(units) {
			unit = units[local]
			found = true
			return false
		}
		acc.Add(len(units))
		return true
	})
	return unit, found
}
