// Package errors provides structured error handling for looplist.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnsupported indicates an operation the list deliberately does not offer.
	KindUnsupported
	// KindPrecondition indicates a caller broke a documented precondition.
	KindPrecondition
	// KindLayout indicates window maintenance could not complete.
	KindLayout
	// KindAdapter indicates the data adapter misbehaved.
	KindAdapter
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindPrecondition:
		return "precondition"
	case KindLayout:
		return "layout"
	case KindAdapter:
		return "adapter"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupported is returned by operations a circular list cannot define,
	// such as single selection.
	ErrUnsupported = stderrors.New("unsupported operation")
	// ErrEmptyAdapter is raised when index arithmetic is asked to wrap
	// against an empty data set.
	ErrEmptyAdapter = stderrors.New("item count must be positive")
	// ErrHandleReleased is returned when a pool handle is released twice.
	ErrHandleReleased = stderrors.New("handle already released")
	// ErrUnknownHandle is returned for a handle the pool never issued.
	ErrUnknownHandle = stderrors.New("unknown handle")
	// ErrNilElement is reported when an adapter produces no element.
	ErrNilElement = stderrors.New("adapter returned nil element")
	// ErrFillLimit is reported when a fill pass stops making progress.
	ErrFillLimit = stderrors.New("fill pass exceeded element limit")
)

// LoopError represents a structured error raised by the looping list.
type LoopError struct {
	// Op is the operation that failed (e.g., "loop.SetSelection").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Index is the data index involved, or -1 when not applicable.
	Index int
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a LoopError without an associated index.
func New(op string, kind ErrorKind, err error) *LoopError {
	return &LoopError{Op: op, Kind: kind, Err: err, Index: -1}
}

func (e *LoopError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s [%s] index=%d: %v", e.Op, e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoopError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "loop.View.HandlePointer").
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

// IsKind reports whether err is, or wraps, a LoopError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var loopErr *LoopError
	if stderrors.As(err, &loopErr) {
		return loopErr.Kind == kind
	}
	return false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the list.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoopError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
