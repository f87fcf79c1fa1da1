// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
//
// Besides the escapes JSON requires, Quote writes the characters U+007F to
// U+00A0 and U+2000 to U+20FF as \u escapes, and writes "</" as "<\/" so that
// the result can be embedded in an HTML script element.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value enclosed in double or single quotation
// marks. The quotation marks are removed, and escape sequences are replaced
// with their unescaped equivalents.
func Unquote(src string) (string, error) {
	if len(src) < 2 || (src[0] != '"' && src[0] != '\'') || src[len(src)-1] != src[0] {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
