// Package errors provides structured error handling for the richtext module.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStructure indicates a span-tree structural invariant violation.
	KindStructure
	// KindContract indicates a caller contract violation, such as a
	// placeholder-dimension count mismatch.
	KindContract
	// KindParse indicates a content parsing failure.
	KindParse
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindContract:
		return "contract"
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// RichTextError represents a structured error in the richtext module.
type RichTextError struct {
	// Op is the operation that failed (e.g., "spans.Validate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RichTextError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RichTextError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "spans.Build").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the richtext module.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RichTextError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
