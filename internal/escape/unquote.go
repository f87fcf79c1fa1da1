// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Besides the
// standard JSON escapes, \' is accepted for strings delimited by single
// quotes. A \u escape for the high half of a surrogate pair is combined with
// an immediately following low half; an unpaired half decodes as the Unicode
// replacement rune. Unquote reports an error for an unknown or incomplete
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\'', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)
			u := rune(v)
			if utf16.IsSurrogate(u) && src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if w, err := parseHex(src.SliceFrom(2).SliceTo(4)); err == nil {
					if c := utf16.DecodeRune(u, rune(w)); c != utf8.RuneError {
						u = c
						src = src.SliceFrom(6)
					}
				}
			}
			putRune(u)
		default:
			return nil, fmt.Errorf("invalid escape %q", r)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		d := DehexByte(data.At(i))
		if d < 0 {
			return 0, fmt.Errorf("invalid hex digit %q", data.At(i))
		}
		v = v<<4 | int64(d)
	}
	return v, nil
}

// DehexByte returns the value of the hexadecimal digit b, or -1 if b is not
// a hexadecimal digit.
func DehexByte(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return -1
}
