// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"bytes"
	"io"
	"math"
	"slices"
	"sort"
	"strings"
)

// An Object is a collection of key-value members with unique keys. Members
// are kept in the order their keys were first added, and methods that list
// keys report them in that order. The zero value is an empty object ready
// for use.
//
// Put replaces the value of an existing key. Parsing text that repeats a key
// is an error.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject constructs a new empty object.
func NewObject() *Object { return &Object{vals: make(map[string]Value)} }

// ObjectFromMap constructs an object from the contents of m, converting each
// value with Wrap. Keys are added in lexicographic order. Keys whose values
// are nil are skipped.
func ObjectFromMap(m map[string]any) (*Object, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	obj := NewObject()
	for _, key := range keys {
		if err := obj.Put(key, m[key]); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// ParseObject parses an object from the lenient JSON text in s.
func ParseObject(s string) (*Object, error) { return ReadObject(NewTokener(strings.NewReader(s))) }

// Kind implements part of the Value interface.
func (o *Object) Kind() Kind { return ObjectKind }

func (*Object) isValue() {}

// Subset returns a copy of the members of o whose keys are among names.
// Names that are not present in o are ignored.
func (o *Object) Subset(names ...string) *Object {
	out := NewObject()
	for _, name := range names {
		if v, ok := o.vals[name]; ok && !out.Has(name) {
			out.set(name, cloneValue(v))
		}
	}
	return out
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys of o in order of insertion.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Names returns an array of the keys of o, or nil if o is empty.
func (o *Object) Names() *Array {
	if len(o.keys) == 0 {
		return nil
	}
	arr := &Array{vals: make([]Value, len(o.keys))}
	for i, key := range o.keys {
		arr.vals[i] = String(key)
	}
	return arr
}

// Has reports whether o has a member with the given key.
func (o *Object) Has(key string) bool { _, ok := o.vals[key]; return ok }

// IsNull reports whether key is missing from o or has the value Null.
func (o *Object) IsNull(key string) bool {
	v, ok := o.vals[key]
	return !ok || v == Null
}

// Get returns the value of key, or an error if key is not present.
func (o *Object) Get(key string) (Value, error) {
	if v, ok := o.vals[key]; ok {
		return v, nil
	}
	return nil, o.keyError(key, "not found.")
}

// Opt returns the value of key, or nil if key is not present.
func (o *Object) Opt(key string) Value { return o.vals[key] }

func (o *Object) keyError(key, msg string) *Error {
	return errorf("JSONObject[%s] %s", Quote(key), msg)
}

// GetBool returns the value of key as a Boolean. A Bool or a String equal to
// "true" or "false" in any case is accepted.
func (o *Object) GetBool(key string) (bool, error) {
	v, err := o.Get(key)
	if err != nil {
		return false, err
	} else if b, ok := toBool(v); ok {
		return b, nil
	}
	return false, o.keyError(key, "is not a Boolean.")
}

// GetInt returns the value of key as an int with 32-bit range. A number or a
// String containing a decimal integer is accepted. Wider integers wrap and
// fractions are truncated.
func (o *Object) GetInt(key string) (int, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	} else if z, ok := toInt(v); ok {
		return z, nil
	}
	return 0, o.keyError(key, "is not an int.")
}

// GetInt64 returns the value of key as an int64. A number or a String
// containing a decimal integer is accepted.
func (o *Object) GetInt64(key string) (int64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	} else if z, ok := toInt64(v); ok {
		return z, nil
	}
	return 0, o.keyError(key, "is not a long.")
}

// GetFloat64 returns the value of key as a float64. A number or a String
// containing a number is accepted.
func (o *Object) GetFloat64(key string) (float64, error) {
	v, err := o.Get(key)
	if err != nil {
		return 0, err
	} else if f, ok := toFloat(v); ok {
		return f, nil
	}
	return 0, o.keyError(key, "is not a number.")
}

// GetString returns the value of key, which must be a String.
func (o *Object) GetString(key string) (string, error) {
	v, err := o.Get(key)
	if err != nil {
		return "", err
	} else if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", o.keyError(key, "not a string.")
}

// GetObject returns the value of key, which must be an object.
func (o *Object) GetObject(key string) (*Object, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	} else if obj, ok := v.(*Object); ok {
		return obj, nil
	}
	return nil, o.keyError(key, "is not a JSONObject.")
}

// GetArray returns the value of key, which must be an array.
func (o *Object) GetArray(key string) (*Array, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	} else if arr, ok := v.(*Array); ok {
		return arr, nil
	}
	return nil, o.keyError(key, "is not a JSONArray.")
}

// OptBool is as GetBool, but returns false if the value is missing or cannot
// be converted.
func (o *Object) OptBool(key string) bool { return o.OptBoolOr(key, false) }

// OptBoolOr is as GetBool, but returns def if the value is missing or cannot
// be converted.
func (o *Object) OptBoolOr(key string, def bool) bool {
	if b, ok := toBool(o.vals[key]); ok {
		return b
	}
	return def
}

// OptInt is as GetInt, but returns 0 if the value is missing or cannot be
// converted.
func (o *Object) OptInt(key string) int { return o.OptIntOr(key, 0) }

// OptIntOr is as GetInt, but returns def if the value is missing or cannot
// be converted.
func (o *Object) OptIntOr(key string, def int) int {
	if z, ok := toInt(o.vals[key]); ok {
		return z
	}
	return def
}

// OptInt64 is as GetInt64, but returns 0 if the value is missing or cannot
// be converted.
func (o *Object) OptInt64(key string) int64 { return o.OptInt64Or(key, 0) }

// OptInt64Or is as GetInt64, but returns def if the value is missing or
// cannot be converted.
func (o *Object) OptInt64Or(key string, def int64) int64 {
	if z, ok := toInt64(o.vals[key]); ok {
		return z
	}
	return def
}

// OptFloat64 is as GetFloat64, but returns NaN if the value is missing or
// cannot be converted.
func (o *Object) OptFloat64(key string) float64 { return o.OptFloat64Or(key, math.NaN()) }

// OptFloat64Or is as GetFloat64, but returns def if the value is missing or
// cannot be converted.
func (o *Object) OptFloat64Or(key string, def float64) float64 {
	if f, ok := toFloat(o.vals[key]); ok {
		return f
	}
	return def
}

// OptString is as GetString, but returns "" if the value is missing or is
// not a String.
func (o *Object) OptString(key string) string { return o.OptStringOr(key, "") }

// OptStringOr is as GetString, but returns def if the value is missing or is
// not a String.
func (o *Object) OptStringOr(key, def string) string {
	if s, ok := o.vals[key].(String); ok {
		return string(s)
	}
	return def
}

// OptObject returns the value of key if it is an object, otherwise nil.
func (o *Object) OptObject(key string) *Object { obj, _ := o.vals[key].(*Object); return obj }

// OptArray returns the value of key if it is an array, otherwise nil.
func (o *Object) OptArray(key string) *Array { arr, _ := o.vals[key].(*Array); return arr }

func (o *Object) set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// isNil reports whether v is nil or a nil container.
func isNil(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Object:
		return t == nil
	case *Array:
		return t == nil
	}
	return false
}

// Put sets the value of key to v, converted by Wrap. If key is already
// present its value is replaced and its position is unchanged. If v is nil,
// key is removed instead; to store a null value, use Null.
//
// Put reports an error without modifying o if v is a NaN or infinite number.
func (o *Object) Put(key string, v any) error {
	if isNil(v) {
		o.Remove(key)
		return nil
	}
	val, err := Wrap(v)
	if err != nil {
		return err
	}
	o.set(key, val)
	return nil
}

// PutOnce is as Put, but does nothing if key is already present or v is nil.
func (o *Object) PutOnce(key string, v any) error {
	if isNil(v) || o.Has(key) {
		return nil
	}
	return o.Put(key, v)
}

// PutOpt is as Put, but does nothing if v is nil.
func (o *Object) PutOpt(key string, v any) error {
	if isNil(v) {
		return nil
	}
	return o.Put(key, v)
}

// Append adds v, converted by Wrap, to the array that is the value of key.
// If key is not present, it is set to a new array containing only v. It is
// an error if key is present and its value is not an array.
func (o *Object) Append(key string, v any) error {
	val, err := Wrap(v)
	if err != nil {
		return err
	}
	switch t := o.vals[key].(type) {
	case nil:
		o.set(key, &Array{vals: []Value{val}})
	case *Array:
		t.vals = append(t.vals, val)
	default:
		return errorf("JSONObject[%s] is not a JSONArray.", key)
	}
	return nil
}

// Accumulate is a synonym for Append.
func (o *Object) Accumulate(key string, v any) error { return o.Append(key, v) }

// Increment adds one to the numeric value of key, preserving its type. If key
// is not present, it is set to the integer 1. It is an error if key has a
// value that is not a number.
func (o *Object) Increment(key string) error {
	switch t := o.vals[key].(type) {
	case nil:
		o.set(key, Int(1))
	case Int:
		o.vals[key] = t + 1
	case Float:
		o.vals[key] = t + 1
	default:
		return errorf("Unable to increment [%s].", Quote(key))
	}
	return nil
}

// Remove removes key from o and returns its value, or nil if key was not
// present.
func (o *Object) Remove(key string) Value {
	v, ok := o.vals[key]
	if !ok {
		return nil
	}
	delete(o.vals, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return v
}

// ToArray returns an array of the values of o for the keys given by names,
// which must all be strings. Keys not present in o produce Null. ToArray
// returns nil if names is nil or empty.
func (o *Object) ToArray(names *Array) (*Array, error) {
	if names.Len() == 0 {
		return nil, nil
	}
	out := &Array{vals: make([]Value, 0, names.Len())}
	for i := range names.vals {
		key, err := names.GetString(i)
		if err != nil {
			return nil, err
		}
		v, ok := o.vals[key]
		if !ok {
			v = Null
		}
		out.vals = append(out.vals, v)
	}
	return out, nil
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{
		keys: slices.Clone(o.keys),
		vals: make(map[string]Value, len(o.vals)),
	}
	for key, v := range o.vals {
		out.vals[key] = cloneValue(v)
	}
	return out
}

// Equal reports whether o and p have the same keys with equal values. The
// order of members is not significant.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o == p
	} else if len(o.vals) != len(p.vals) {
		return false
	}
	for key, v := range o.vals {
		w, ok := p.vals[key]
		if !ok || !valueEqual(v, w) {
			return false
		}
	}
	return true
}

// String returns the compact JSON text of o. If o contains a Literal that
// reports an error, String returns "".
func (o *Object) String() string {
	s, err := o.Indent(0)
	if err != nil {
		return ""
	}
	return s
}

// Indent returns the JSON text of o, with nested members indented by n spaces
// per level. If n == 0 the text is compact.
func (o *Object) Indent(n int) (string, error) {
	var buf strings.Builder
	if err := o.encode(&buf, n, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode writes the JSON text of o to w, indented as by Indent.
func (o *Object) Encode(w io.Writer, indent int) error {
	s, err := o.Indent(indent)
	if err != nil {
		return err
	}
	return writeText(w, s)
}

// MarshalJSON implements the json.Marshaler interface.
func (o *Object) MarshalJSON() ([]byte, error) {
	s, err := o.Indent(0)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts the
// same lenient syntax as ParseObject, but only trailing whitespace may follow
// the object.
func (o *Object) UnmarshalJSON(data []byte) error {
	t := NewTokener(bytes.NewReader(data))
	p, err := ReadObject(t)
	if err != nil {
		return err
	}
	if c, err := t.NextClean(); err != nil {
		return err
	} else if c != 0 {
		return t.SyntaxError("Unexpected text after object")
	}
	*o = *p
	return nil
}
