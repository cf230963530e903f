package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantError marks a violated internal invariant: out-of-range grid
// access, stepping an uninitialized cell, an impossible neighbour count.
// It is raised with panic and must not be recovered except to restore the
// terminal before the process dies.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Invariantf panics with an *InvariantError for op.
func Invariantf(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Err: errors.Errorf(format, args...)})
}

// AsInvariant reports whether a recovered panic value is an invariant
// violation.
func AsInvariant(r any) (*InvariantError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var ie *InvariantError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
