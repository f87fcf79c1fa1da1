// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"strings"
)

// valueDelims are the characters that end an unquoted token.
const valueDelims = ",:]}/\\\"[{;=#"

// ReadObject reads an object from t. The object must begin with "{" after
// optional whitespace. Input after the closing "}" is not consumed.
//
// The syntax accepted is more lenient than JSON: keys and values may be
// unquoted, strings may be quoted with single quotation marks, a key may be
// separated from its value by "=" or "=>" as well as ":", members may be
// separated by ";" as well as ",", and a trailing separator is allowed.
// It is an error for the object to contain the same key more than once.
func ReadObject(t *Tokener) (_ *Object, err error) {
	defer recoverError(&err)
	return t.object(), nil
}

// ReadArray reads an array from t. The array must begin with "[" after
// optional whitespace. Input after the closing "]" is not consumed.
//
// As with ReadObject, the syntax accepted is more lenient than JSON. Elements
// may be separated by ";" as well as ",", and an element omitted between two
// separators, or before the first separator, is Null.
func ReadArray(t *Tokener) (_ *Array, err error) {
	defer recoverError(&err)
	return t.array(), nil
}

// value parses a single value of any type.
func (t *Tokener) value() Value {
	c := t.clean()
	switch c {
	case '"', '\'':
		return String(t.str(c))
	case '{':
		t.back()
		return t.object()
	case '[':
		t.back()
		return t.array()
	}
	return StringToValue(t.token(c))
}

// token accumulates an unquoted token beginning with c, up to the next
// delimiter or control character, including the end of input.
func (t *Tokener) token(c rune) string {
	var sb strings.Builder
	for c >= ' ' && !strings.ContainsRune(valueDelims, c) {
		sb.WriteRune(c)
		c = t.next()
	}
	t.back()

	s := trimSpace(sb.String())
	if s == "" {
		t.fail("Missing value")
	}
	return s
}

// key parses an object key. Unquoted keys keep their text verbatim, so
// that {1.0: x} has the key "1.0" rather than a re-encoded number.
func (t *Tokener) key() string {
	c := t.clean()
	switch c {
	case '"', '\'':
		return t.str(c)
	case '{', '[':
		t.back()
		return keyString(t.value())
	}
	return t.token(c)
}

// object parses an object.
// Postcondition: the closing brace has been consumed.
func (t *Tokener) object() *Object {
	if t.clean() != '{' {
		t.fail("A JSONObject text must begin with '{'")
	}
	obj := NewObject()
	for {
		switch t.clean() {
		case 0:
			t.fail("A JSONObject text must end with '}'")
		case '}':
			return obj
		default:
			t.back()
		}
		key := t.key()

		// The key is followed by ":", "=", or "=>".
		if c := t.clean(); c == '=' {
			if t.next() != '>' {
				t.back()
			}
		} else if c != ':' {
			t.fail("Expected a ':' after a key")
		}

		v := t.value()
		if obj.Has(key) {
			panic(errorf("Duplicate key \"%s\"", key))
		}
		obj.set(key, v)

		// Check whether we have more members or are done.
		switch t.clean() {
		case ';', ',':
			if t.clean() == '}' {
				return obj
			}
			t.back()
		case '}':
			return obj
		default:
			t.fail("Expected a ',' or '}'")
		}
	}
}

// array parses an array.
// Postcondition: the closing bracket has been consumed.
func (t *Tokener) array() *Array {
	if t.clean() != '[' {
		t.fail("A JSONArray text must start with '['")
	}
	arr := NewArray()
	if t.clean() == ']' {
		return arr
	}
	t.back()
	for {
		if c := t.clean(); c == ',' || c == ';' {
			t.back()
			arr.vals = append(arr.vals, Null)
		} else {
			t.back()
			arr.vals = append(arr.vals, t.value())
		}

		switch t.clean() {
		case ',', ';':
			if t.clean() == ']' {
				return arr
			}
			t.back()
		case ']':
			return arr
		default:
			t.fail("Expected a ',' or ']'")
		}
	}
}

// keyString returns the text of v for use as an object key.
func keyString(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	var buf strings.Builder
	_ = encodeValue(&buf, v, 0, 0) // parsed values do not fail
	return buf.String()
}

// MustParseObject is as ParseObject, but panics if parsing fails.
func MustParseObject(s string) *Object {
	obj, err := ParseObject(s)
	if err != nil {
		panic(err)
	}
	return obj
}

// MustParseArray is as ParseArray, but panics if parsing fails.
func MustParseArray(s string) *Array {
	arr, err := ParseArray(s)
	if err != nil {
		panic(err)
	}
	return arr
}
