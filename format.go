// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// NumberToString returns the JSON text of the number n, which may be an Int,
// a Float, or any Go integer or floating-point value.
//
// Integers are written in decimal. A floating-point value whose magnitude is
// at least 1e-3 and less than 1e7 is written as the shortest decimal that
// parses to the same value, without a trailing ".0". Other floating-point
// values are written in scientific notation, for example "3.0E71" or
// "1.2345E-8".
//
// NumberToString reports an error if n is nil, NaN, or infinite.
func NumberToString(n any) (string, error) {
	switch t := n.(type) {
	case nil:
		return "", errorf("Null pointer")
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	}
	v, err := Wrap(n)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case Int:
		return strconv.FormatInt(int64(t), 10), nil
	case Float:
		return formatFloat(float64(t)), nil
	}
	return "", errorf("Value of type %T is not a number", n)
}

// DoubleToString returns the JSON text of f as NumberToString does, except
// that NaN and infinite values are written as "null".
func DoubleToString(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	return formatFloat(f)
}

func formatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Scientific notation, with at least one fractional digit and no plus
	// sign or leading zeroes in the exponent.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

// ValueToString returns the JSON text of v, after conversion by Wrap.
//
// If v is a Literal, the result is its JSON text. It is an error for a
// Literal to report ErrNoText.
func ValueToString(v any) (string, error) {
	val, err := Wrap(v)
	if err != nil {
		return "", err
	}
	if raw, ok := val.(Raw); ok {
		text, err := raw.JSONText()
		if errors.Is(err, ErrNoText) {
			return "", errorf("Bad value from toJSONString: null")
		} else if err != nil {
			return "", wrapError(err)
		}
		return text, nil
	}
	var buf strings.Builder
	if err := encodeValue(&buf, val, 0, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// encodeValue writes the JSON text of v to buf. If factor > 0, containers
// with more than one element are broken across lines, and indent is the
// number of spaces preceding the current nesting level.
func encodeValue(buf *strings.Builder, v Value, factor, indent int) error {
	switch t := v.(type) {
	case *Object:
		return t.encode(buf, factor, indent)
	case *Array:
		return t.encode(buf, factor, indent)
	case Raw:
		text, err := t.JSONText()
		if errors.Is(err, ErrNoText) {
			buf.WriteString(Quote(fmt.Sprint(t.Literal)))
		} else if err != nil {
			return wrapError(err)
		} else {
			buf.WriteString(text)
		}
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case Int:
		buf.WriteString(strconv.FormatInt(int64(t), 10))
	case Float:
		if math.IsInf(float64(t), 0) || math.IsNaN(float64(t)) {
			return errorf(nonFinite)
		}
		buf.WriteString(formatFloat(float64(t)))
	case String:
		buf.WriteString(Quote(string(t)))
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeIndent(buf *strings.Builder, n int) {
	for range n {
		buf.WriteByte(' ')
	}
}

func (o *Object) encode(buf *strings.Builder, factor, indent int) error {
	buf.WriteByte('{')
	if len(o.keys) == 1 {
		key := o.keys[0]
		buf.WriteString(Quote(key))
		buf.WriteByte(':')
		if factor > 0 {
			buf.WriteByte(' ')
		}
		if err := encodeValue(buf, o.vals[key], factor, indent); err != nil {
			return err
		}
	} else if len(o.keys) > 1 {
		inner := indent + factor
		for i, key := range o.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if factor > 0 {
				buf.WriteByte('\n')
			}
			writeIndent(buf, inner)
			buf.WriteString(Quote(key))
			buf.WriteByte(':')
			if factor > 0 {
				buf.WriteByte(' ')
			}
			if err := encodeValue(buf, o.vals[key], factor, inner); err != nil {
				return err
			}
		}
		if factor > 0 {
			buf.WriteByte('\n')
		}
		writeIndent(buf, indent)
	}
	buf.WriteByte('}')
	return nil
}

func (a *Array) encode(buf *strings.Builder, factor, indent int) error {
	buf.WriteByte('[')
	if len(a.vals) == 1 {
		if err := encodeValue(buf, a.vals[0], factor, indent); err != nil {
			return err
		}
	} else if len(a.vals) > 1 {
		inner := indent + factor
		for i, v := range a.vals {
			if i > 0 {
				buf.WriteByte(',')
			}
			if factor > 0 {
				buf.WriteByte('\n')
			}
			writeIndent(buf, inner)
			if err := encodeValue(buf, v, factor, inner); err != nil {
				return err
			}
		}
		if factor > 0 {
			buf.WriteByte('\n')
		}
		writeIndent(buf, indent)
	}
	buf.WriteByte(']')
	return nil
}

// writeText writes s to w, reporting a failure as an *Error.
func writeText(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return wrapError(err)
	}
	return nil
}
