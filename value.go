// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// A Value is a JSON value. The concrete type of a Value is one of Bool, Int,
// Float, String, *Array, *Object, Raw, or the type of Null.
type Value interface {
	// Kind reports which variant of JSON value this is.
	Kind() Kind

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // the constant null
	BoolKind               // true or false
	IntKind                // integral number
	FloatKind              // floating-point number
	StringKind             // string
	ArrayKind              // array
	ObjectKind             // object
	RawKind                // self-rendering literal
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	IntKind:    "int",
	FloatKind:  "float",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
	RawKind:    "raw",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

type null struct{}

func (null) Kind() Kind     { return NullKind }
func (null) isValue()       {}
func (null) String() string { return "null" }

// Null is the JSON null value. It is a real value that can be stored in a
// container, and is distinct from a missing key.
var Null Value = null{}

// Bool is a JSON Boolean value.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (Bool) isValue()   {}

// Int is a JSON number with an exact 64-bit integral value.
type Int int64

func (Int) Kind() Kind { return IntKind }
func (Int) isValue()   {}

// Float is a JSON number with a 64-bit floating-point value.
type Float float64

func (Float) Kind() Kind { return FloatKind }
func (Float) isValue()   {}

// String is a JSON string value.
type String string

func (String) Kind() Kind { return StringKind }
func (String) isValue()   {}

// A Literal is a value that renders its own JSON text. The text is written
// verbatim and is not checked.
//
// A Literal that has no text may return ErrNoText. Any other error is
// reported to the caller that renders the value.
type Literal interface {
	JSONText() (string, error)
}

// Raw is a Value that renders as the text of its Literal.
type Raw struct{ Literal }

func (Raw) Kind() Kind { return RawKind }
func (Raw) isValue()   {}

// Wrap converts a Go value into a Value.
//
// A nil input becomes Null. Values of this package, Go Booleans, numbers and
// strings, and json.Number values are converted directly. A Literal becomes a
// Raw. Maps with string keys become objects, and slices and arrays become
// arrays, converting each element in turn. A fmt.Stringer or error becomes a
// String of its text, and any other value becomes a String of its fmt
// representation.
//
// Wrap reports an error for a NaN or infinite floating-point number.
func Wrap(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null, nil
	case *Object:
		if t == nil {
			return Null, nil
		}
		return t, nil
	case *Array:
		if t == nil {
			return Null, nil
		}
		return t, nil
	case Float:
		return checkFloat(float64(t))
	case Value:
		return t, nil
	case Literal:
		return Raw{t}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Int(t), nil
	case int16:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint:
		return wrapUint(uint64(t)), nil
	case uint8:
		return Int(t), nil
	case uint16:
		return Int(t), nil
	case uint32:
		return Int(t), nil
	case uint64:
		return wrapUint(t), nil
	case float32:
		if math.IsInf(float64(t), 0) || math.IsNaN(float64(t)) {
			return nil, errorf(nonFinite)
		}
		// Use the shortest decimal form of the float32, not its float64
		// expansion.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(t), 'g', -1, 32), 64)
		return Float(f), nil
	case float64:
		return checkFloat(t)
	case json.Number:
		return StringToValue(string(t)), nil
	case map[string]any:
		return ObjectFromMap(t)
	case []any:
		return ArrayOf(t...)
	case fmt.Stringer:
		return String(t.String()), nil
	case error:
		return String(t.Error()), nil
	}
	return wrapReflect(reflect.ValueOf(v))
}

func checkFloat(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, errorf(nonFinite)
	}
	return Float(f), nil
}

func wrapUint(u uint64) Value {
	if u > math.MaxInt64 {
		return String(strconv.FormatUint(u, 10))
	}
	return Int(u)
}

// wrapReflect handles maps, slices, arrays, and pointers whose static type is
// not known to Wrap.
func wrapReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null, nil
		}
		return Wrap(rv.Elem().Interface())

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		obj := NewObject()
		for _, k := range keys {
			if err := obj.Put(k.String(), rv.MapIndex(k).Interface()); err != nil {
				return nil, err
			}
		}
		return obj, nil

	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			if err := arr.Append(rv.Index(i).Interface()); err != nil {
				return nil, err
			}
		}
		return arr, nil

	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return wrapUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return checkFloat(rv.Float())
	}
	return String(fmt.Sprint(rv.Interface())), nil
}
