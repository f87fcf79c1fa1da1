// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"
	"fmt"
)

// Error is the concrete type of errors reported by this package.
//
// Errors from a Tokener, including the parsers built on it, carry the input
// position at which they were detected. Errors from a reader or writer carry
// the message of the underlying error, which is available via errors.Unwrap.
type Error struct {
	Message string
	Pos     *Position // nil if the error has no input position

	err error
}

func (e *Error) Error() string {
	if e.Pos != nil {
		return e.Message + " at " + e.Pos.String()
	}
	return e.Message
}

// Unwrap reports the underlying cause of e, if any.
func (e *Error) Unwrap() error { return e.err }

// ErrNoText may be returned by the JSONText method of a Literal to report that
// it has no JSON representation.
var ErrNoText = errors.New("no JSON text")

const nonFinite = "JSON does not allow non-finite numbers."

func errorf(msg string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(msg, args...)}
}

// wrapError returns an *Error whose message is that of err.
func wrapError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Message: err.Error(), err: err}
}

// recoverError is deferred by exported methods whose implementation signals
// failure by panicking with an *Error. Any other panic is propagated.
func recoverError(errp *error) {
	if x := recover(); x != nil {
		e, ok := x.(*Error)
		if !ok {
			panic(x)
		}
		*errp = e
	}
}
