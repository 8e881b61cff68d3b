// Package fault distinguishes input-integrity violations from recoverable
// failures. An Invariant error means the input was never well-formed (a maze
// without a start cell, a grid symbol outside the legal set) and the run must
// stop without producing partial output. Recoverable failures, such as an
// unreadable source or an unwritable destination, stay ordinary errors.
package fault

import (
	"errors"
	"fmt"
)

// Invariant is the fatal error tier. It is never retried or downgraded.
type Invariant struct {
	msg string
}

// Error implements the error interface.
func (e *Invariant) Error() string {
	return e.msg
}

// Invariantf creates a fatal invariant error with a formatted message.
func Invariantf(format string, args ...any) error {
	return &Invariant{msg: fmt.Sprintf(format, args...)}
}

// IsInvariant reports whether err is, or wraps, a fatal invariant error.
func IsInvariant(err error) bool {
	var inv *Invariant
	return errors.As(err, &inv)
}
