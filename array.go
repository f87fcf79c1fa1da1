// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"bytes"
	"io"
	"math"
	"reflect"
	"slices"
	"strings"
)

// An Array is an ordered sequence of values. The zero value is an empty array
// ready for use.
type Array struct {
	vals []Value
}

// NewArray constructs a new empty array.
func NewArray() *Array { return new(Array) }

// ArrayOf constructs an array of the given values, each converted by Wrap.
func ArrayOf(vs ...any) (*Array, error) {
	arr := &Array{vals: make([]Value, 0, len(vs))}
	for _, v := range vs {
		if err := arr.Append(v); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// NewArrayFrom constructs an array from v, which must be a string containing
// the text of an array, or a slice or array whose elements are converted by
// Wrap.
func NewArrayFrom(v any) (*Array, error) {
	switch t := v.(type) {
	case string:
		return ParseArray(t)
	case *Array:
		return t.Clone(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		w, err := wrapReflect(rv)
		if err != nil {
			return nil, err
		}
		return w.(*Array), nil
	}
	return nil, errorf("JSONArray initial value should be a string or collection or array.")
}

// ParseArray parses an array from the lenient JSON text in s.
func ParseArray(s string) (*Array, error) { return ReadArray(NewTokener(strings.NewReader(s))) }

// Kind implements part of the Value interface.
func (a *Array) Kind() Kind { return ArrayKind }

func (*Array) isValue() {}

// Len reports the number of elements in a.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vals)
}

// Values returns a slice of the elements of a. The slice is a copy, but
// container elements are shared with a.
func (a *Array) Values() []Value { return slices.Clone(a.vals) }

// Get returns the value at offset i, or an error if i is out of range.
func (a *Array) Get(i int) (Value, error) {
	if i < 0 || i >= len(a.vals) {
		return nil, a.indexError(i, "not found.")
	}
	return a.vals[i], nil
}

// Opt returns the value at offset i, or nil if i is out of range.
func (a *Array) Opt(i int) Value {
	if i < 0 || i >= len(a.vals) {
		return nil
	}
	return a.vals[i]
}

// IsNull reports whether i is out of range or the value at offset i is Null.
func (a *Array) IsNull(i int) bool {
	v := a.Opt(i)
	return v == nil || v == Null
}

func (a *Array) indexError(i int, msg string) *Error {
	return errorf("JSONArray[%d] %s", i, msg)
}

// GetBool returns the value at offset i as a Boolean. A Bool or a String
// equal to "true" or "false" in any case is accepted.
func (a *Array) GetBool(i int) (bool, error) {
	v, err := a.Get(i)
	if err != nil {
		return false, err
	} else if b, ok := toBool(v); ok {
		return b, nil
	}
	return false, a.indexError(i, "is not a boolean.")
}

// GetInt returns the value at offset i as an int with 32-bit range.
func (a *Array) GetInt(i int) (int, error) {
	v, err := a.Get(i)
	if err != nil {
		return 0, err
	} else if z, ok := toInt(v); ok {
		return z, nil
	}
	return 0, a.indexError(i, "is not a number.")
}

// GetInt64 returns the value at offset i as an int64.
func (a *Array) GetInt64(i int) (int64, error) {
	v, err := a.Get(i)
	if err != nil {
		return 0, err
	} else if z, ok := toInt64(v); ok {
		return z, nil
	}
	return 0, a.indexError(i, "is not a number.")
}

// GetFloat64 returns the value at offset i as a float64.
func (a *Array) GetFloat64(i int) (float64, error) {
	v, err := a.Get(i)
	if err != nil {
		return 0, err
	} else if f, ok := toFloat(v); ok {
		return f, nil
	}
	return 0, a.indexError(i, "is not a number.")
}

// GetString returns the value at offset i, which must be a String.
func (a *Array) GetString(i int) (string, error) {
	v, err := a.Get(i)
	if err != nil {
		return "", err
	} else if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", a.indexError(i, "not a string.")
}

// GetObject returns the value at offset i, which must be an object.
func (a *Array) GetObject(i int) (*Object, error) {
	v, err := a.Get(i)
	if err != nil {
		return nil, err
	} else if obj, ok := v.(*Object); ok {
		return obj, nil
	}
	return nil, a.indexError(i, "is not a JSONObject.")
}

// GetArray returns the value at offset i, which must be an array.
func (a *Array) GetArray(i int) (*Array, error) {
	v, err := a.Get(i)
	if err != nil {
		return nil, err
	} else if arr, ok := v.(*Array); ok {
		return arr, nil
	}
	return nil, a.indexError(i, "is not a JSONArray.")
}

// OptBool is as GetBool, but returns false on failure.
func (a *Array) OptBool(i int) bool { return a.OptBoolOr(i, false) }

// OptBoolOr is as GetBool, but returns def on failure.
func (a *Array) OptBoolOr(i int, def bool) bool {
	if b, ok := toBool(a.Opt(i)); ok {
		return b
	}
	return def
}

// OptInt is as GetInt, but returns 0 on failure.
func (a *Array) OptInt(i int) int { return a.OptIntOr(i, 0) }

// OptIntOr is as GetInt, but returns def on failure.
func (a *Array) OptIntOr(i, def int) int {
	if z, ok := toInt(a.Opt(i)); ok {
		return z
	}
	return def
}

// OptInt64 is as GetInt64, but returns 0 on failure.
func (a *Array) OptInt64(i int) int64 { return a.OptInt64Or(i, 0) }

// OptInt64Or is as GetInt64, but returns def on failure.
func (a *Array) OptInt64Or(i int, def int64) int64 {
	if z, ok := toInt64(a.Opt(i)); ok {
		return z
	}
	return def
}

// OptFloat64 is as GetFloat64, but returns NaN on failure.
func (a *Array) OptFloat64(i int) float64 { return a.OptFloat64Or(i, math.NaN()) }

// OptFloat64Or is as GetFloat64, but returns def on failure.
func (a *Array) OptFloat64Or(i int, def float64) float64 {
	if f, ok := toFloat(a.Opt(i)); ok {
		return f
	}
	return def
}

// OptString is as GetString, but returns "" on failure.
func (a *Array) OptString(i int) string { return a.OptStringOr(i, "") }

// OptStringOr is as GetString, but returns def on failure.
func (a *Array) OptStringOr(i int, def string) string {
	if s, ok := a.Opt(i).(String); ok {
		return string(s)
	}
	return def
}

// OptObject returns the value at offset i if it is an object, otherwise nil.
func (a *Array) OptObject(i int) *Object { obj, _ := a.Opt(i).(*Object); return obj }

// OptArray returns the value at offset i if it is an array, otherwise nil.
func (a *Array) OptArray(i int) *Array { arr, _ := a.Opt(i).(*Array); return arr }

// Append adds v, converted by Wrap, to the end of a. A nil v adds Null.
func (a *Array) Append(v any) error {
	val, err := Wrap(v)
	if err != nil {
		return err
	}
	a.vals = append(a.vals, val)
	return nil
}

// Put sets the value at offset i to v, converted by Wrap. If i is beyond the
// end of a, the array is extended and the elements between the old end and i
// are set to Null. A negative offset is an error.
func (a *Array) Put(i int, v any) error {
	if i < 0 {
		return a.indexError(i, "not found.")
	}
	val, err := Wrap(v)
	if err != nil {
		return err
	}
	if i < len(a.vals) {
		a.vals[i] = val
		return nil
	}
	for len(a.vals) < i {
		a.vals = append(a.vals, Null)
	}
	a.vals = append(a.vals, val)
	return nil
}

// Remove removes and returns the value at offset i, or returns nil if i is
// out of range.
func (a *Array) Remove(i int) Value {
	v := a.Opt(i)
	if v != nil {
		a.vals = slices.Delete(a.vals, i, i+1)
	}
	return v
}

// Join returns the JSON text of the elements of a, separated by sep.
func (a *Array) Join(sep string) (string, error) {
	var buf strings.Builder
	for i, v := range a.vals {
		if i > 0 {
			buf.WriteString(sep)
		}
		if err := encodeValue(&buf, v, 0, 0); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// ToObject returns an object whose keys are given by names, which must all be
// strings, and whose values are the corresponding elements of a. Names past
// the end of a are omitted. ToObject returns nil if names or a is empty.
func (a *Array) ToObject(names *Array) (*Object, error) {
	if names.Len() == 0 || a.Len() == 0 {
		return nil, nil
	}
	out := NewObject()
	for i := range names.vals {
		key, err := names.GetString(i)
		if err != nil {
			return nil, err
		}
		if v := a.Opt(i); v != nil {
			out.set(key, v)
		}
	}
	return out, nil
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	out := &Array{vals: make([]Value, len(a.vals))}
	for i, v := range a.vals {
		out.vals[i] = cloneValue(v)
	}
	return out
}

// Equal reports whether a and b have equal elements in the same order.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.EqualFunc(a.vals, b.vals, valueEqual)
}

// String returns the compact JSON text of a. If a contains a Literal that
// reports an error, String returns "".
func (a *Array) String() string {
	s, err := a.Indent(0)
	if err != nil {
		return ""
	}
	return s
}

// Indent returns the JSON text of a, with nested elements indented by n
// spaces per level. If n == 0 the text is compact.
func (a *Array) Indent(n int) (string, error) {
	var buf strings.Builder
	if err := a.encode(&buf, n, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode writes the JSON text of a to w, indented as by Indent.
func (a *Array) Encode(w io.Writer, indent int) error {
	s, err := a.Indent(indent)
	if err != nil {
		return err
	}
	return writeText(w, s)
}

// MarshalJSON implements the json.Marshaler interface.
func (a *Array) MarshalJSON() ([]byte, error) {
	s, err := a.Indent(0)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts the
// same lenient syntax as ParseArray, but only trailing whitespace may follow
// the array.
func (a *Array) UnmarshalJSON(data []byte) error {
	t := NewTokener(bytes.NewReader(data))
	p, err := ReadArray(t)
	if err != nil {
		return err
	}
	if c, err := t.NextClean(); err != nil {
		return err
	} else if c != 0 {
		return t.SyntaxError("Unexpected text after array")
	}
	*a = *p
	return nil
}

func cloneValue(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case *Array:
		return t.Clone()
	}
	return v
}

func valueEqual(v, w Value) bool {
	switch t := v.(type) {
	case *Object:
		u, ok := w.(*Object)
		return ok && t.Equal(u)
	case *Array:
		u, ok := w.(*Array)
		return ok && t.Equal(u)
	case Raw:
		u, ok := w.(Raw)
		if !ok {
			return false
		}
		s, serr := t.JSONText()
		r, rerr := u.JSONText()
		return serr == nil && rerr == nil && s == r
	}
	return v == w
}
