// Command richtext inspects markdown content through the span-tree pipeline:
// it flattens files to plain text, prints the paragraph-builder instruction
// stream a file would emit, and grades the relayout severity between two
// versions of a file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/go-drift/richtext/cmd/richtext/internal/config"
	"github.com/go-drift/richtext/pkg/errors"
	"github.com/go-drift/richtext/pkg/markdown"
	"github.com/go-drift/richtext/pkg/paragraph"
	"github.com/go-drift/richtext/pkg/spans"
)

// CLI defines the command-line interface for richtext.
var CLI struct {
	Config string `help:"Directory containing richtext.yaml." default:"." type:"path"`

	Flatten FlattenCmd `cmd:"" help:"Print the flattened plain text of a markdown file."`
	Emit    EmitCmd    `cmd:"" help:"Print the paragraph-builder instruction stream of a markdown file."`
	Diff    DiffCmd    `cmd:"" help:"Grade how much relayout the change between two files requires."`
}

// FlattenCmd prints a file's plain-text projection.
type FlattenCmd struct {
	File         string `arg:"" help:"Markdown file." type:"existingfile"`
	Labels       bool   `help:"Substitute accessible labels for span text."`
	Placeholders bool   `help:"Emit one U+FFFC per embedded placeholder."`
}

func (c *FlattenCmd) Run(cfg *config.Resolved) error {
	root, err := parseFile(c.File, cfg)
	if err != nil {
		return err
	}
	fmt.Println(spans.PlainText(root, spans.PlainTextOptions{
		IncludeLabels:       c.Labels,
		IncludePlaceholders: c.Placeholders,
	}))
	return nil
}

// EmitCmd prints a file's builder instruction stream.
type EmitCmd struct {
	File  string  `arg:"" help:"Markdown file." type:"existingfile"`
	Scale float64 `help:"Text scale factor. Overrides richtext.yaml." default:"0"`
}

func (c *EmitCmd) Run(cfg *config.Resolved) error {
	root, err := parseFile(c.File, cfg)
	if err != nil {
		return err
	}
	scale := cfg.TextScale
	if c.Scale > 0 {
		scale = c.Scale
	}
	dims := make([]spans.PlaceholderDimensions, spans.PlaceholderCount(root))
	for i := range dims {
		dims[i] = spans.PlaceholderDimensions{
			Size: spans.Size{Width: cfg.PlaceholderWidth, Height: cfg.PlaceholderHeight},
		}
	}
	rec := &paragraph.Recorder{}
	spans.Build(root, rec, scale, dims)
	fmt.Print(rec.Finish().String())
	return nil
}

// DiffCmd compares two files structurally.
type DiffCmd struct {
	Old string `arg:"" help:"Old markdown file." type:"existingfile"`
	New string `arg:"" help:"New markdown file." type:"existingfile"`
}

func (c *DiffCmd) Run(cfg *config.Resolved) error {
	oldRoot, err := parseFile(c.Old, cfg)
	if err != nil {
		return err
	}
	newRoot, err := parseFile(c.New, cfg)
	if err != nil {
		return err
	}
	fmt.Println(spans.Compare(oldRoot, newRoot))
	return nil
}

func parseFile(path string, cfg *config.Resolved) (*spans.TextSpan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.RichTextError{
			Op:   "cli.parseFile",
			Kind: errors.KindParse,
			Err:  err,
		}
	}
	return markdown.Parse(data, markdown.Options{CodeFamily: cfg.CodeFamily}), nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("richtext"),
		kong.Description("Inspect markdown content through the span-tree pipeline."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	cfg, err := config.Resolve(CLI.Config)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
