package spans

// Visitor inspects one span during a walk. Returning false stops the walk
// immediately; this early return is the only cancellation primitive the
// package needs, since no walk can block.
type Visitor func(Span) bool

// Walk traverses root depth-first, pre-order, left-to-right, invoking
// visitor for every span that carries visitable content: a [TextSpan] is
// visited once for its own text or label (spans with neither are skipped,
// though their children are still walked), and a [PlaceholderSpan] is
// visited once as a unit. Walk returns false if the visitor stopped the
// walk, true if it ran to completion.
//
// Walk is the sole traversal primitive; the flattener, the position mapper
// and the placeholder counter are all expressed in terms of it, threading
// any running state through the closure with an [Accumulator].
func Walk(root Span, visitor Visitor) bool {
	if root == nil {
		return true
	}
	return root.Walk(visitor)
}

// Walk implements [Span].
func (s *TextSpan) Walk(visitor Visitor) bool {
	if s.Text != "" || s.Label != "" {
		if !visitor(s) {
			return false
		}
	}
	for _, child := range s.Children {
		if !child.Walk(visitor) {
			return false
		}
	}
	return true
}

// Walk implements [Span]. A placeholder is a leaf; the visitor sees it once.
func (p *PlaceholderSpan) Walk(visitor Visitor) bool {
	return visitor(p)
}

// Accumulator threads a mutable running total through an otherwise
// side-effect-free walk. Each call to an algorithm owns its own Accumulator;
// they are never shared across concurrent walks.
type Accumulator struct {
	value int
}

// Value returns the current total.
func (a *Accumulator) Value() int {
	return a.value
}

// Add increases the total by n.
func (a *Accumulator) Add(n int) {
	a.value += n
}

// PlaceholderCount returns the number of placeholder spans in the tree, in
// other words the number of placeholder dimensions [Build] will consume.
func PlaceholderCount(root Span) int {
	acc := &Accumulator{}
	Walk(root, func(s Span) bool {
		if _, ok := s.(*PlaceholderSpan); ok {
			acc.Add(1)
		}
		return true
	})
	return acc.Value()
}
