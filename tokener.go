// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

// A Tokener reads characters and lenient JSON values from an input stream.
//
// A Tokener tracks the position of the most recently consumed character and
// allows exactly one character to be pushed back with Back. End of input is
// reported as the zero rune; an embedded NUL character also ends the input.
//
// A Tokener does not consume input past the end of a value it returns, so the
// same Tokener may be used to read several concatenated values.
type Tokener struct {
	r *bufio.Reader

	prev    rune // the last character returned
	usePrev bool // the next read returns prev again
	eof     bool

	index, char, line int

	// Input read while record is set is saved so SkipTo can replay it.
	pending []rune
	record  []rune
	saving  bool
}

// NewTokener constructs a new Tokener that consumes input from r.
func NewTokener(r io.Reader) *Tokener {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokener{r: br, char: 1, line: 1}
}

// Position reports the current input position of t.
func (t *Tokener) Position() Position {
	return Position{Index: t.index, Line: t.line, Char: t.char}
}

// SyntaxError returns an error with the given message, reported at the
// current position of t.
func (t *Tokener) SyntaxError(msg string) *Error {
	pos := t.Position()
	return &Error{Message: msg, Pos: &pos}
}

func (t *Tokener) fail(msg string, args ...any) {
	panic(t.SyntaxError(fmt.Sprintf(msg, args...)))
}

// read returns the next character from the input, or 0 at end of input.
func (t *Tokener) read() rune {
	var c rune
	if len(t.pending) != 0 {
		c, t.pending = t.pending[0], t.pending[1:]
	} else if r, _, err := t.r.ReadRune(); err == nil {
		c = r
	} else if err != io.EOF {
		panic(wrapError(err))
	}
	if t.saving {
		t.record = append(t.record, c)
	}
	return c
}

func (t *Tokener) next() rune {
	if t.usePrev {
		t.usePrev = false
		t.index++
		t.char++
		return t.prev
	}
	c := t.read()
	if c == 0 {
		t.eof = true
	}
	t.index++
	if t.prev == '\r' {
		t.line++
		if c == '\n' {
			t.char = 0
		} else {
			t.char = 1
		}
	} else if c == '\n' {
		t.line++
		t.char = 0
	} else {
		t.char++
	}
	t.prev = c
	return c
}

func (t *Tokener) back() {
	if t.usePrev || t.index <= 0 {
		panic(errorf("Stepping back two steps is not supported"))
	}
	t.index--
	t.char--
	t.usePrev = true
	t.eof = false
}

func (t *Tokener) nextN(n int) string {
	if n < 0 {
		t.fail("Negative substring length %d", n)
	} else if n == 0 {
		return ""
	}
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = t.next()
		if t.End() {
			t.fail("Substring bounds error")
		}
	}
	return string(buf)
}

func (t *Tokener) clean() rune {
	for {
		if c := t.next(); c == 0 || c > ' ' {
			return c
		}
	}
}

// str reads the body of a string delimited by quote, whose opening quote has
// already been consumed.
func (t *Tokener) str(quote rune) string {
	var raw strings.Builder
	for {
		c := t.next()
		switch c {
		case 0, '\n', '\r':
			t.fail("Unterminated string")
		case '\\':
			switch e := t.next(); e {
			case 'b', 't', 'n', 'f', 'r', '"', '\'', '\\', '/':
				raw.WriteRune('\\')
				raw.WriteRune(e)
			case 'u':
				hex := t.nextN(4)
				for _, h := range hex {
					if DehexChar(h) < 0 {
						t.fail("Illegal escape.")
					}
				}
				raw.WriteString(`\u`)
				raw.WriteString(hex)
			default:
				t.fail("Illegal escape.")
			}
		case quote:
			dec, err := escape.Unquote(mem.S(raw.String()))
			if err != nil {
				t.fail("Illegal escape.")
			}
			return string(dec)
		default:
			raw.WriteRune(c)
		}
	}
}

// Next returns the next character of the input, or 0 at end of input.
func (t *Tokener) Next() (_ rune, err error) {
	defer recoverError(&err)
	return t.next(), nil
}

// NextChar consumes the next character and reports an error if it is not
// want.
func (t *Tokener) NextChar(want rune) (_ rune, err error) {
	defer recoverError(&err)
	if c := t.next(); c != want {
		t.fail("Expected '%c' and instead saw '%c'", want, c)
	}
	return want, nil
}

// NextN consumes and returns the next n characters of the input. It reports
// an error if fewer than n characters remain.
func (t *Tokener) NextN(n int) (_ string, err error) {
	defer recoverError(&err)
	return t.nextN(n), nil
}

// NextClean returns the next character of the input that is not whitespace,
// or 0 at end of input. Comments are not recognized.
func (t *Tokener) NextClean() (_ rune, err error) {
	defer recoverError(&err)
	return t.clean(), nil
}

// Back pushes back the most recently returned character, so that the next
// read returns it again. Only one character may be pushed back at a time.
func (t *Tokener) Back() (err error) {
	defer recoverError(&err)
	t.back()
	return nil
}

// End reports whether the end of input has been reached and no character is
// pushed back.
func (t *Tokener) End() bool { return t.eof && !t.usePrev }

// More reports whether any input remains to be read.
func (t *Tokener) More() (_ bool, err error) {
	defer recoverError(&err)
	t.next()
	if t.End() {
		return false, nil
	}
	t.back()
	return true, nil
}

// SkipTo advances past the input until the character to is found, and
// returns it without consuming it. If to does not occur in the rest of the
// input, SkipTo returns 0 and the position of t is not changed.
func (t *Tokener) SkipTo(to rune) (_ rune, err error) {
	defer recoverError(&err)
	index, char, line := t.index, t.char, t.line
	prev, usePrev, eof := t.prev, t.usePrev, t.eof

	t.saving, t.record = true, t.record[:0]
	defer func() { t.saving = false }()
	for {
		c := t.next()
		if c == 0 {
			t.pending = append(slices.Clone(t.record), t.pending...)
			t.index, t.char, t.line = index, char, line
			t.prev, t.usePrev, t.eof = prev, usePrev, eof
			return 0, nil
		} else if c == to {
			t.saving = false
			t.back()
			return c, nil
		}
	}
}

// NextString reads a string whose opening quote has already been consumed,
// up to and including the closing quote. The result is unescaped.
func (t *Tokener) NextString(quote rune) (_ string, err error) {
	defer recoverError(&err)
	return t.str(quote), nil
}

// NextTo reads characters up to but not including the first occurrence of
// any of the characters in delims, a line break, or the end of input. The
// result is trimmed of surrounding whitespace.
func (t *Tokener) NextTo(delims string) (_ string, err error) {
	defer recoverError(&err)
	var sb strings.Builder
	for {
		c := t.next()
		if c == 0 || c == '\n' || c == '\r' || strings.ContainsRune(delims, c) {
			if c != 0 {
				t.back()
			}
			return trimSpace(sb.String()), nil
		}
		sb.WriteRune(c)
	}
}

// NextValue reads the next value from the input. The value may be an object,
// an array, a quoted string, or an unquoted token whose type is inferred by
// StringToValue.
func (t *Tokener) NextValue() (_ Value, err error) {
	defer recoverError(&err)
	return t.value(), nil
}

// DehexChar returns the value of the hexadecimal digit c, or -1 if c is not
// a hexadecimal digit.
func DehexChar(c rune) int {
	if c < 0 || c > '\u007f' {
		return -1
	}
	return escape.DehexByte(byte(c))
}

// trimSpace removes leading and trailing control characters and spaces.
func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
