package main

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrNoInput   = errors.New("no input provided: specify a file or pipe text to stdin")
	ErrKeyCase   = errors.New("unknown key case")
	ErrNegIndent = errors.New("indent must not be negative")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeOutput  ErrorType = "output"
)

// AppError is an error reported by ljfmt, tagged with the stage that failed.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error { return e.Err }

// Is reports whether target is an *AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newError(typ ErrorType, msg string, err error) *AppError {
	return &AppError{Type: typ, Message: msg, Err: err}
}

// userMessage returns the text of err as shown to the user.
func userMessage(err error) string {
	var ae *AppError
	if !errors.As(err, &ae) {
		return fmt.Sprintf("Error: %v", err)
	}
	var label string
	switch ae.Type {
	case ErrorTypeInput:
		label = "Input error"
	case ErrorTypeConfig:
		label = "Configuration error"
	case ErrorTypeParsing:
		label = "Parse error"
	case ErrorTypeOutput:
		label = "Output error"
	default:
		label = "Error"
	}
	if ae.Err != nil {
		return fmt.Sprintf("%s: %s: %v", label, ae.Message, ae.Err)
	}
	return fmt.Sprintf("%s: %s", label, ae.Message)
}
