package spans

import (
	"strings"
	"testing"

	"github.com/go-drift/richtext/pkg/errors"
)

import stderrors "errors"

// quietHandler swallows reported errors during tests.
type quietHandler struct{}

func (quietHandler) HandleError(*errors.RichTextError) {}
func (quietHandler) HandlePanic(*errors.PanicError)    {}

func TestValidate_ValidTree(t *testing.T) {
	tree := Group(
		Text("a").WithStyle(stubStyle{ID: 1}),
		Placeholder(AlignMiddle, BaselineAlphabetic),
		Group(Text("b")),
	)
	if err := Validate(tree); err != nil {
		t.Errorf("expected valid tree, got %v", err)
	}
}

func TestValidate_EmptySpanIsValid(t *testing.T) {
	if err := Validate(&TextSpan{}); err != nil {
		t.Errorf("expected empty span to be valid, got %v", err)
	}
}

func TestValidate_NilChild(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	tree := &TextSpan{Text: "ab", Children: []Span{Text("cd"), nil}}
	err := Validate(tree)
	if err != nil {
		if !strings.Contains(err.Error(), "abcd") {
			t.Errorf("expected error to identify the subtree text, got %v", err)
		}
	} else {
		t.Fatal("expected an error for a nil child")
	}
	var rte *errors.RichTextError
	if !stderrors.As(err, &rte) || rte.Kind != errors.KindStructure {
		t.Errorf("expected a structure error, got %v", err)
	}
}

func TestValidate_TypedNilChild(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	var missing *TextSpan
	tree := &TextSpan{Text: "x", Children: []Span{missing}}
	if err := Validate(tree); err == nil {
		t.Error("expected an error for a typed nil child")
	}
}

func TestValidate_NestedNilChild(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	tree := Group(Text("a"), &TextSpan{Text: "b", Children: []Span{nil}})
	err := Validate(tree)
	if err == nil {
		t.Fatal("expected an error for a nested nil child")
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("expected error to single out the offending subtree, got %v", err)
	}
}
