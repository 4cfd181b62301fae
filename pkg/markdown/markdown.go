// Package markdown builds span trees from inline markdown, so content
// authored as markdown can flow straight into the paragraph pipeline.
// Block structure beyond paragraphs and headings is out of scope; this is
// about inline emphasis, code, links and images.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/go-drift/richtext/pkg/spans"
	"github.com/go-drift/richtext/pkg/style"
)

// Options controls how markdown constructs map onto spans.
type Options struct {
	// CodeFamily is the font family applied to code spans. Empty means
	// "monospace".
	CodeFamily string
	// LinkColor colors link spans. Zero leaves the inherited color.
	LinkColor style.Color
	// Recognizer, when set, is called once per link with the link
	// destination; the returned handle is attached to the link's span and
	// compared by identity. The caller owns the handle's lifecycle.
	Recognizer func(destination string) any
	// HeadingScale multiplies the base font size for headings, applied
	// once per level above one. Zero means headings render bold only.
	HeadingScale float64
	// BaseSize is the font size HeadingScale multiplies. Only consulted
	// when HeadingScale is non-zero.
	BaseSize float64
}

// Parse converts markdown source into a span tree. Paragraphs and headings
// become child groups separated by blank lines; inline emphasis, code
// spans, links and images become styled spans and placeholders.
func Parse(source []byte, opts Options) *spans.TextSpan {
	if opts.CodeFamily == "" {
		opts.CodeFamily = "monospace"
	}
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(source))

	var blocks []spans.Span
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if len(blocks) > 0 {
			blocks = append(blocks, spans.Text("\n\n"))
		}
		blocks = append(blocks, blockSpan(block, source, opts))
	}
	return spans.Group(blocks...)
}

func blockSpan(block ast.Node, source []byte, opts Options) spans.Span {
	children := inlineSpans(block, source, opts)
	switch block := block.(type) {
	case *ast.Heading:
		st := style.SpanStyle{}.Bold()
		if opts.HeadingScale > 0 && opts.BaseSize > 0 {
			size := opts.BaseSize
			for level := block.Level; level < 6; level++ {
				size *= opts.HeadingScale
			}
			st = st.Size(size)
		}
		return spans.Group(children...).WithStyle(st)
	default:
		return spans.Group(children...)
	}
}

func inlineSpans(parent ast.Node, source []byte, opts Options) []spans.Span {
	var out []spans.Span
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		if s := inlineSpan(node, source, opts); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func inlineSpan(node ast.Node, source []byte, opts Options) spans.Span {
	switch node := node.(type) {
	case *ast.Text:
		text := string(node.Segment.Value(source))
		if node.HardLineBreak() {
			text += "\n"
		} else if node.SoftLineBreak() {
			text += " "
		}
		if text == "" {
			return nil
		}
		return spans.Text(text)
	case *ast.Emphasis:
		st := style.SpanStyle{}.Italic()
		if node.Level >= 2 {
			st = style.SpanStyle{}.Bold()
		}
		return spans.Group(inlineSpans(node, source, opts)...).WithStyle(st)
	case *ast.CodeSpan:
		return spans.Text(codeText(node, source)).
			WithStyle(style.SpanStyle{}.Family(opts.CodeFamily))
	case *ast.Link:
		link := spans.Group(inlineSpans(node, source, opts)...).
			WithStyle(linkStyle(opts))
		if opts.Recognizer != nil {
			link = link.WithRecognizer(opts.Recognizer(string(node.Destination)))
		}
		return link
	case *ast.AutoLink:
		url := string(node.URL(source))
		link := spans.Text(url).WithStyle(linkStyle(opts))
		if opts.Recognizer != nil {
			link = link.WithRecognizer(opts.Recognizer(url))
		}
		return link
	case *ast.Image:
		// Inline images are embedded content measured elsewhere; reserve
		// a baseline-aligned slot and keep the alt text as the label.
		placeholder := spans.Placeholder(spans.AlignBaseline, spans.BaselineAlphabetic)
		alt := string(node.Text(source))
		if alt == "" {
			return placeholder
		}
		return spans.Group(placeholder).WithLabel(alt)
	default:
		if children := inlineSpans(node, source, opts); len(children) > 0 {
			return spans.Group(children...)
		}
		return nil
	}
}

func linkStyle(opts Options) style.SpanStyle {
	st := style.SpanStyle{}.Underline()
	st.Color = opts.LinkColor
	return st
}

func codeText(node *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
