// Package spantest provides golden-file snapshot testing for the paragraph
// instruction streams emitted by span trees.
package spantest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/go-drift/richtext/pkg/paragraph"
	"github.com/go-drift/richtext/pkg/spans"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the paragraph-builder instruction stream a span tree
// emits, in a stable serializable form.
type Snapshot struct {
	Instructions []Instruction `json:"instructions"`
}

// Instruction is one serialized builder instruction.
type Instruction struct {
	Op             string  `json:"op"`
	Style          string  `json:"style,omitempty"`
	TextScale      float64 `json:"textScale,omitempty"`
	Text           string  `json:"text,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Height         float64 `json:"height,omitempty"`
	BaselineOffset float64 `json:"baselineOffset,omitempty"`
	Alignment      string  `json:"alignment,omitempty"`
	Baseline       string  `json:"baseline,omitempty"`
}

// Capture builds root into a recording paragraph builder and serializes the
// resulting instruction stream.
func Capture(root spans.Span, textScale float64, dims []spans.PlaceholderDimensions) *Snapshot {
	rec := &paragraph.Recorder{}
	spans.Build(root, rec, textScale, dims)
	list := rec.Finish()

	snap := &Snapshot{}
	for _, op := range list.Ops() {
		switch op := op.(type) {
		case paragraph.OpPushStyle:
			snap.Instructions = append(snap.Instructions, Instruction{
				Op:        "pushStyle",
				Style:     fmt.Sprintf("%+v", op.Style),
				TextScale: op.TextScale,
			})
		case paragraph.OpAddText:
			snap.Instructions = append(snap.Instructions, Instruction{
				Op:   "addText",
				Text: op.Text,
			})
		case paragraph.OpAddPlaceholder:
			snap.Instructions = append(snap.Instructions, Instruction{
				Op:             "addPlaceholder",
				Width:          op.Dims.Size.Width,
				Height:         op.Dims.Size.Height,
				BaselineOffset: op.Dims.BaselineOffset,
				Alignment:      op.Alignment.String(),
				Baseline:       op.Baseline.String(),
			})
		case paragraph.OpPop:
			snap.Instructions = append(snap.Instructions, Instruction{Op: "pop"})
		}
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// RICHTEXT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("RICHTEXT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: RICHTEXT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: RICHTEXT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// unifiedDiff produces a line-oriented diff of expected vs actual.
func unifiedDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
