// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// needsUnicodeEscape reports whether r must be written as a \u escape even
// though it is a valid non-control rune.
func needsUnicodeEscape(r rune) bool {
	return (r >= '\u007f' && r <= '\u00a0') || (r >= '\u2000' && r <= '\u20ff')
}

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The result does not include the enclosing quotation marks.
//
// In addition to the escapes JSON requires, Quote escapes the DEL and C1
// control range (U+007F to U+00A0), the general punctuation and related blocks
// (U+2000 to U+20FF), and writes "</" as "<\/" so the output can be embedded
// in an HTML script element.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putU := func(r rune) {
		putByte('\\', 'u',
			hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
	}

	var prev rune
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == '\\' || r == '"':
			putByte('\\', byte(r))
		case r == '/' && prev == '<':
			putByte('\\', '/')
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				putByte('\\', b)
			} else {
				putU(r)
			}
		case needsUnicodeEscape(r):
			putU(r)
		case r < utf8.RuneSelf:
			putByte(byte(r))
		case r == utf8.RuneError && n <= 1:
			putU(utf8.RuneError) // invalid encoding
		default:
			buf = mem.Append(buf, src.SliceTo(n))
		}
		if n == 0 {
			n = 1
		}
		prev = r
		src = src.SliceFrom(n)
	}
	return buf
}
