// Package paragraph provides the builder side of span-tree emission: a
// recording paragraph builder whose instruction stream can be inspected or
// replayed, and baseline arithmetic for positioning inline placeholders.
package paragraph

import (
	"fmt"
	"strings"

	"github.com/go-drift/richtext/pkg/spans"
)

// Op is one recorded paragraph-builder instruction.
type Op interface {
	replay(builder spans.ParagraphBuilder)
	opString() string
}

// OpPushStyle opens a style scope.
type OpPushStyle struct {
	Style     spans.Style
	TextScale float64
}

// OpAddText appends a run of text under the current scope.
type OpAddText struct {
	Text string
}

// OpAddPlaceholder reserves an inline slot.
type OpAddPlaceholder struct {
	Dims      spans.PlaceholderDimensions
	Alignment spans.PlaceholderAlignment
	Baseline  spans.TextBaseline
}

// OpPop closes the most recent style scope.
type OpPop struct{}

func (o OpPushStyle) replay(b spans.ParagraphBuilder) { b.PushStyle(o.Style, o.TextScale) }
func (o OpAddText) replay(b spans.ParagraphBuilder)   { b.AddText(o.Text) }
func (o OpAddPlaceholder) replay(b spans.ParagraphBuilder) {
	b.AddPlaceholder(o.Dims, o.Alignment, o.Baseline)
}
func (o OpPop) replay(b spans.ParagraphBuilder) { b.Pop() }

func (o OpPushStyle) opString() string {
	return fmt.Sprintf("pushStyle(%v, scale=%g)", o.Style, o.TextScale)
}
func (o OpAddText) opString() string {
	return fmt.Sprintf("addText(%q)", o.Text)
}
func (o OpAddPlaceholder) opString() string {
	return fmt.Sprintf("addPlaceholder(%gx%g, %s, %s)",
		o.Dims.Size.Width, o.Dims.Size.Height, o.Alignment, o.Baseline)
}
func (o OpPop) opString() string {
	return "pop()"
}

// InstructionList is an immutable list of recorded builder instructions.
// It can be replayed onto any [spans.ParagraphBuilder] implementation.
type InstructionList struct {
	ops []Op
}

// Replay re-emits the recorded instructions onto the provided builder.
func (l *InstructionList) Replay(builder spans.ParagraphBuilder) {
	for _, op := range l.ops {
		op.replay(builder)
	}
}

// Ops returns a copy of the recorded instructions.
func (l *InstructionList) Ops() []Op {
	out := make([]Op, len(l.ops))
	copy(out, l.ops)
	return out
}

// Len returns the number of recorded instructions.
func (l *InstructionList) Len() int {
	return len(l.ops)
}

// String renders the instruction stream one instruction per line, in order.
func (l *InstructionList) String() string {
	var b strings.Builder
	for _, op := range l.ops {
		b.WriteString(op.opString())
		b.WriteByte('\n')
	}
	return b.String()
}

// Recorder is a [spans.ParagraphBuilder] that records the instruction stream
// instead of shaping text. Use it to capture, inspect or forward the exact
// sequence a span tree emits.
type Recorder struct {
	ops   []Op
	depth int
}

// PushStyle implements [spans.ParagraphBuilder].
func (r *Recorder) PushStyle(style spans.Style, textScale float64) {
	r.ops = append(r.ops, OpPushStyle{Style: style, TextScale: textScale})
	r.depth++
}

// AddText implements [spans.ParagraphBuilder].
func (r *Recorder) AddText(text string) {
	r.ops = append(r.ops, OpAddText{Text: text})
}

// AddPlaceholder implements [spans.ParagraphBuilder].
func (r *Recorder) AddPlaceholder(dims spans.PlaceholderDimensions, alignment spans.PlaceholderAlignment, baseline spans.TextBaseline) {
	r.ops = append(r.ops, OpAddPlaceholder{Dims: dims, Alignment: alignment, Baseline: baseline})
}

// Pop implements [spans.ParagraphBuilder]. Popping with no open scope is a
// caller contract violation and panics.
func (r *Recorder) Pop() {
	if r.depth == 0 {
		panic("paragraph: Pop without matching PushStyle")
	}
	r.ops = append(r.ops, OpPop{})
	r.depth--
}

// Depth returns the number of currently open style scopes.
func (r *Recorder) Depth() int {
	return r.depth
}

// Finish returns the recorded instructions as an immutable list and resets
// the recorder for reuse. Finishing with open style scopes is a caller
// contract violation and panics.
func (r *Recorder) Finish() *InstructionList {
	if r.depth != 0 {
		panic(fmt.Sprintf("paragraph: Finish with %d unclosed style scopes", r.depth))
	}
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	r.ops = r.ops[:0]
	return &InstructionList{ops: ops}
}
