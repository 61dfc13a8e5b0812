// Package errs wraps the cockroachdb/errors primitives the rest of the code
// relies on: Wrap preserves a stack trace, Mark attaches a sentinel that
// errors.Is can branch on without losing the cause.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
