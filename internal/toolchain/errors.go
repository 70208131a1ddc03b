package toolchain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification; matched with errors.Is.
var (
	ErrSubprocess = errors.New("subprocess error")
	ErrEncoding   = errors.New("encoding error")
)

// ErrorKind is a coarse-grained categorization for resolution failures.
type ErrorKind string

const (
	// KindSubprocess: the manager could not be spawned or exited non-zero.
	KindSubprocess ErrorKind = "subprocess"
	// KindEncoding: the manager's stdout was not valid UTF-8.
	KindEncoding ErrorKind = "encoding"
)

var errInvalidUTF8 = errors.New("output is not valid UTF-8")

// Error wraps an underlying failure with the operation and a kind.
type Error struct {
	Op     string
	Kind   ErrorKind
	Stderr string // Optional: trimmed stderr of the child
	Hint   string // Optional: how to install a missing manager
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	if e.Stderr != "" {
		base += ": " + e.Stderr
	}
	if e.Hint != "" {
		base += fmt.Sprintf(" (install with: %s)", e.Hint)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the kind sentinels so callers can use errors.Is(err, ErrEncoding).
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrSubprocess:
		return e.Kind == KindSubprocess
	case ErrEncoding:
		return e.Kind == KindEncoding
	}
	return false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}
