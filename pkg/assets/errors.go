package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when a file exists but could not be read
	ErrIO = errors.New("i/o error")
	// ErrParse is returned for malformed JSON or documents that do not match the expected schema
	ErrParse = errors.New("parse error")
	// ErrWrongVariant is returned when asking a "multipart" blockstates file for its variants (or vice versa)
	ErrWrongVariant = errors.New("wrong blockstates variant")
	// ErrNotFound is returned when a resource identifier does not resolve to an existing file
	ErrNotFound = errors.New("resource not found")
	// ErrCyclicInheritance is returned when model parents form a loop
	ErrCyclicInheritance = errors.New("cyclic model inheritance")
	// ErrInheritanceTooDeep is returned when a parent chain is longer than MaxInheritanceDepth
	ErrInheritanceTooDeep = errors.New("model inheritance too deep")
	// ErrUnresolvedTextureVariable is returned when a "#variable" has no definition in the model chain
	ErrUnresolvedTextureVariable = errors.New("unresolved texture variable")
)

// Error is the error type returned by this package. Kind is one of the Err*
// sentinels above, so callers can use `errors.Is(err, assets.ErrNotFound)`.
type Error struct {
	Kind error
	// Path is the file (or resource location) the error relates to, if any
	Path   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's kind
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func newError(kind error, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func newErrorf(kind error, path string, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Path: path, Detail: fmt.Sprintf(format, a...)}
}

// IsNotFound is a shorthand for errors.Is(err, ErrNotFound)
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
