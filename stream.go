// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"io"
)

// A Handler handles the values parsed from an input stream. If Value reports
// an error, parsing stops and that error is returned to the caller.
type Handler interface {
	// Value reports a complete top-level value, whose text begins at pos.
	Value(v Value, pos Position) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(pos Position)
}

// HandlerFunc is a Handler that calls itself for each value and ignores the
// end of input.
type HandlerFunc func(v Value, pos Position) error

// Value implements the corresponding method of Handler.
func (f HandlerFunc) Value(v Value, pos Position) error { return f(v, pos) }

// EndOfInput implements the corresponding method of Handler.
func (HandlerFunc) EndOfInput(Position) {}

// Stream is a parser that consumes a sequence of values from its input and
// delivers each in turn to a Handler. Values may be separated by whitespace,
// which is required only where the end of an unquoted token would otherwise
// be ambiguous.
type Stream struct {
	t *Tokener
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream { return &Stream{t: NewTokener(r)} }

// NewStreamWithTokener constructs a new Stream that consumes input from t.
func NewStreamWithTokener(t *Tokener) *Stream { return &Stream{t: t} }

type handlerError struct{ error }

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *Error:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses the input stream and delivers values to h until either an
// error occurs or the input is exhausted. In case of a syntax error, the
// returned error has type [*Error]. An error reported by h is returned
// unchanged.
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	for s.parseNext(h) {
	}
	return nil
}

// ParseOne parses a single value from the input stream and delivers it to h.
// If no values remain, ParseOne calls h.EndOfInput and returns io.EOF.
// Otherwise errors are reported as for Parse.
func (s *Stream) ParseOne(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if !s.parseNext(h) {
		return io.EOF
	}
	return nil
}

// parseNext parses the next value and delivers it to h. It reports false
// after delivering the end of input.
func (s *Stream) parseNext(h Handler) bool {
	if s.t.clean() == 0 {
		h.EndOfInput(s.t.Position())
		return false
	}
	s.t.back()
	pos := s.t.Position()
	v := s.t.value()
	if err := h.Value(v, pos); err != nil {
		panic(handlerError{err})
	}
	return true
}

// ReadAll parses all the values from r and returns them in order.
func ReadAll(r io.Reader) ([]Value, error) {
	var vs []Value
	err := NewStream(r).Parse(HandlerFunc(func(v Value, _ Position) error {
		vs = append(vs, v)
		return nil
	}))
	return vs, err
}
