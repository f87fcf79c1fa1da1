// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/creachadair/ljson"
	"github.com/google/go-cmp/cmp"
)

const accessorInput = `{
  trueKey: true, falseKey: false, trueStr: "TRUE", falseStr: "false",
  intKey: 42, longKey: 9223372036854775807, wideKey: 2147483648,
  floatKey: 98.6, negFloat: -3.9, hugeFloat: 1e30, intStr: "42", floatStr: "98.6",
  str: "hello", nullKey: null, obj: {x: 1}, arr: [1, 2]
}`

func TestObjectGet(t *testing.T) {
	obj := ljson.MustParseObject(accessorInput)
	tests := []struct {
		name string
		get  func() (any, error)
		want any
		err  string
	}{
		{"Get", func() (any, error) { return obj.Get("nullKey") }, ljson.Null, ""},
		{"Get", func() (any, error) { return obj.Get("missing") }, nil, `JSONObject["missing"] not found.`},

		{"GetBool", func() (any, error) { return obj.GetBool("trueKey") }, true, ""},
		{"GetBool", func() (any, error) { return obj.GetBool("falseKey") }, false, ""},
		{"GetBool", func() (any, error) { return obj.GetBool("trueStr") }, true, ""},
		{"GetBool", func() (any, error) { return obj.GetBool("falseStr") }, false, ""},
		{"GetBool", func() (any, error) { return obj.GetBool("str") }, false, `JSONObject["str"] is not a Boolean.`},
		{"GetBool", func() (any, error) { return obj.GetBool("missing") }, false, `JSONObject["missing"] not found.`},

		{"GetInt", func() (any, error) { return obj.GetInt("intKey") }, 42, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("longKey") }, -1, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("wideKey") }, -2147483648, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("floatKey") }, 98, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("negFloat") }, -3, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("hugeFloat") }, math.MaxInt32, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("intStr") }, 42, ""},
		{"GetInt", func() (any, error) { return obj.GetInt("floatStr") }, 0, `JSONObject["floatStr"] is not an int.`},
		{"GetInt", func() (any, error) { return obj.GetInt("nullKey") }, 0, `JSONObject["nullKey"] is not an int.`},

		{"GetInt64", func() (any, error) { return obj.GetInt64("longKey") }, int64(math.MaxInt64), ""},
		{"GetInt64", func() (any, error) { return obj.GetInt64("wideKey") }, int64(2147483648), ""},
		{"GetInt64", func() (any, error) { return obj.GetInt64("floatKey") }, int64(98), ""},
		{"GetInt64", func() (any, error) { return obj.GetInt64("intStr") }, int64(42), ""},
		{"GetInt64", func() (any, error) { return obj.GetInt64("str") }, int64(0), `JSONObject["str"] is not a long.`},

		{"GetFloat64", func() (any, error) { return obj.GetFloat64("floatKey") }, 98.6, ""},
		{"GetFloat64", func() (any, error) { return obj.GetFloat64("intKey") }, 42.0, ""},
		{"GetFloat64", func() (any, error) { return obj.GetFloat64("floatStr") }, 98.6, ""},
		{"GetFloat64", func() (any, error) { return obj.GetFloat64("trueKey") }, 0.0, `JSONObject["trueKey"] is not a number.`},

		{"GetString", func() (any, error) { return obj.GetString("str") }, "hello", ""},
		{"GetString", func() (any, error) { return obj.GetString("intStr") }, "42", ""},
		{"GetString", func() (any, error) { return obj.GetString("intKey") }, "", `JSONObject["intKey"] not a string.`},
		{"GetString", func() (any, error) { return obj.GetString("nullKey") }, "", `JSONObject["nullKey"] not a string.`},
	}
	for _, test := range tests {
		got, err := test.get()
		if errText(err) != orNil(test.err) {
			t.Errorf("%s: got error %v, want %q", test.name, err, test.err)
			continue
		}
		if err == nil {
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("%s: result (-want, +got):\n%s", test.name, diff)
			}
		}
	}

	if _, err := obj.GetObject("obj"); err != nil {
		t.Errorf("GetObject(obj): unexpected error: %v", err)
	}
	if _, err := obj.GetObject("arr"); errText(err) != `JSONObject["arr"] is not a JSONObject.` {
		t.Errorf("GetObject(arr): got error %v", err)
	}
	if _, err := obj.GetArray("arr"); err != nil {
		t.Errorf("GetArray(arr): unexpected error: %v", err)
	}
	if _, err := obj.GetArray("str"); errText(err) != `JSONObject["str"] is not a JSONArray.` {
		t.Errorf("GetArray(str): got error %v", err)
	}
}

func orNil(s string) string {
	if s == "" {
		return "<nil>"
	}
	return s
}

func TestObjectOpt(t *testing.T) {
	obj := ljson.MustParseObject(accessorInput)

	if obj.OptBool("missing") || !obj.OptBoolOr("missing", true) || !obj.OptBool("trueStr") {
		t.Error("OptBool: wrong result")
	}
	if got := obj.OptInt("str"); got != 0 {
		t.Errorf("OptInt(str): got %d, want 0", got)
	}
	if got := obj.OptIntOr("str", 7); got != 7 {
		t.Errorf("OptIntOr(str, 7): got %d, want 7", got)
	}
	if got := obj.OptInt64("longKey"); got != math.MaxInt64 {
		t.Errorf("OptInt64(longKey): got %d", got)
	}
	if got := obj.OptInt64Or("missing", -5); got != -5 {
		t.Errorf("OptInt64Or(missing, -5): got %d", got)
	}
	if got := obj.OptFloat64("missing"); !math.IsNaN(got) {
		t.Errorf("OptFloat64(missing): got %v, want NaN", got)
	}
	if got := obj.OptFloat64Or("floatStr", 1); got != 98.6 {
		t.Errorf("OptFloat64Or(floatStr): got %v, want 98.6", got)
	}
	if got := obj.OptString("intKey"); got != "" {
		t.Errorf("OptString(intKey): got %q, want empty", got)
	}
	if got := obj.OptStringOr("missing", "def"); got != "def" {
		t.Errorf("OptStringOr(missing): got %q, want def", got)
	}
	if obj.OptObject("arr") != nil || obj.OptObject("obj") == nil {
		t.Error("OptObject: wrong result")
	}
	if obj.OptArray("obj") != nil || obj.OptArray("arr") == nil {
		t.Error("OptArray: wrong result")
	}
	if obj.Opt("missing") != nil {
		t.Error("Opt(missing): got non-nil")
	}

	for key, want := range map[string]bool{"nullKey": true, "missing": true, "str": false} {
		if got := obj.IsNull(key); got != want {
			t.Errorf("IsNull(%q): got %v, want %v", key, got, want)
		}
	}
	if !obj.Has("nullKey") || obj.Has("missing") {
		t.Error("Has: wrong result")
	}
}

func TestObjectPut(t *testing.T) {
	obj := ljson.NewObject()
	mustNoErr(t, obj.Put("a", 1))
	mustNoErr(t, obj.Put("b", "two"))
	mustNoErr(t, obj.Put("a", 3.5))
	checkText(t, obj, `{"a":3.5,"b":"two"}`)

	// A nil value removes the key, but Null is stored.
	mustNoErr(t, obj.Put("a", nil))
	mustNoErr(t, obj.Put("c", ljson.Null))
	checkText(t, obj, `{"b":"two","c":null}`)

	// Non-finite values are rejected without modifying the object.
	for _, v := range []any{math.NaN(), math.Inf(1), float32(math.Inf(-1)), ljson.Float(math.NaN())} {
		if err := obj.Put("b", v); errText(err) != "JSON does not allow non-finite numbers." {
			t.Errorf("Put(b, %v): got error %v", v, err)
		}
	}
	checkText(t, obj, `{"b":"two","c":null}`)

	// PutOnce and PutOpt do nothing for nil, and PutOnce does not replace.
	mustNoErr(t, obj.PutOnce("b", "three"))
	mustNoErr(t, obj.PutOnce("d", nil))
	mustNoErr(t, obj.PutOnce("e", []int{1, 2}))
	mustNoErr(t, obj.PutOpt("c", nil))
	mustNoErr(t, obj.PutOpt("f", map[string]int{"y": 2, "x": 1}))
	checkText(t, obj, `{"b":"two","c":null,"e":[1,2],"f":{"x":1,"y":2}}`)

	if got, want := obj.Keys(), []string{"b", "c", "e", "f"}; !cmp.Equal(got, want) {
		t.Errorf("Keys: got %q, want %q", got, want)
	}
	if got := obj.Remove("c"); got != ljson.Null {
		t.Errorf("Remove(c): got %v, want null", got)
	}
	if got := obj.Remove("nonesuch"); got != nil {
		t.Errorf("Remove(nonesuch): got %v, want nil", got)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
}

func TestObjectAppend(t *testing.T) {
	obj := ljson.NewObject()
	for _, name := range []string{"Curly", "Larry", "Moe"} {
		mustNoErr(t, obj.Accumulate("stooge", name))
	}
	stooges, err := obj.GetArray("stooge")
	if err != nil {
		t.Fatalf("GetArray: %v", err)
	}
	mustNoErr(t, obj.Append("stoogearray", stooges))
	mustNoErr(t, obj.Put("map", map[string]any{}))
	mustNoErr(t, obj.Put("coll", []any{}))
	checkText(t, obj, `{"stooge":["Curly","Larry","Moe"],"stoogearray":[["Curly","Larry","Moe"]],"map":{},"coll":[]}`)

	mustNoErr(t, obj.Put("s", "x"))
	if err := obj.Append("s", 1); errText(err) != "JSONObject[s] is not a JSONArray." {
		t.Errorf("Append(s): got error %v", err)
	}
	if err := obj.Append("t", math.Inf(1)); err == nil || obj.Has("t") {
		t.Errorf("Append(t, Inf): got %v, has=%v", err, obj.Has("t"))
	}
}

func TestObjectIncrement(t *testing.T) {
	obj := ljson.MustParseObject(`{f: 1.5, s: "x", n: null}`)
	mustNoErr(t, obj.Increment("i"))
	mustNoErr(t, obj.Increment("i"))
	mustNoErr(t, obj.Increment("f"))
	checkText(t, obj, `{"f":2.5,"s":"x","n":null,"i":2}`)

	if v := obj.Opt("i"); v.Kind() != ljson.IntKind {
		t.Errorf("Increment(i): got kind %v, want int", v.Kind())
	}
	if v := obj.Opt("f"); v.Kind() != ljson.FloatKind {
		t.Errorf("Increment(f): got kind %v, want float", v.Kind())
	}
	for _, key := range []string{"s", "n"} {
		want := `Unable to increment ["` + key + `"].`
		if err := obj.Increment(key); errText(err) != want {
			t.Errorf("Increment(%q): got error %v, want %q", key, err, want)
		}
	}
}

func TestObjectNames(t *testing.T) {
	if got := ljson.NewObject().Names(); got != nil {
		t.Errorf("Names of empty object: got %v, want nil", got)
	}
	obj := ljson.MustParseObject(`{a: 1, b: x}`)
	names := obj.Names()
	if got := names.String(); got != `["a","b"]` {
		t.Errorf("Names: got %#q", got)
	}
	mustNoErr(t, names.Append("c"))
	arr, err := obj.ToArray(names)
	if err != nil {
		t.Fatalf("ToArray: %v", err)
	}
	if got := arr.String(); got != `[1,"x",null]` {
		t.Errorf("ToArray: got %#q", got)
	}
	if arr, err := obj.ToArray(nil); arr != nil || err != nil {
		t.Errorf("ToArray(nil): got %v, %v", arr, err)
	}
	if _, err := obj.ToArray(ljson.MustParseArray("[1]")); errText(err) != "JSONArray[0] not a string." {
		t.Errorf("ToArray([1]): got error %v", err)
	}
}

func TestObjectSubset(t *testing.T) {
	obj := ljson.MustParseObject(`{abc: "ABC", abcd: {x: 1}, abcde: 3}`)
	sub := obj.Subset("abc", "abc", "abcd", "nonesuch")
	checkText(t, sub, `{"abc":"ABC","abcd":{"x":1}}`)

	// The subset does not share containers with its source.
	inner, _ := sub.GetObject("abcd")
	mustNoErr(t, inner.Put("y", 2))
	checkText(t, obj, `{"abc":"ABC","abcd":{"x":1},"abcde":3}`)
}

func TestObjectFromMap(t *testing.T) {
	obj, err := ljson.ObjectFromMap(map[string]any{
		"b": 1,
		"a": nil,
		"c": []any{true, "x", nil},
		"d": map[string]any{"z": 2.5},
		"e": json.Number("17"),
		"f": uint64(math.MaxUint64),
	})
	if err != nil {
		t.Fatalf("ObjectFromMap: %v", err)
	}
	checkText(t, obj, `{"b":1,"c":[true,"x",null],"d":{"z":2.5},"e":17,"f":"18446744073709551615"}`)

	if _, err := ljson.ObjectFromMap(map[string]any{"x": math.NaN()}); err == nil {
		t.Error("ObjectFromMap with NaN: got nil, want error")
	}
}

func TestObjectCloneEqual(t *testing.T) {
	obj := ljson.MustParseObject(`{a: [1, {b: 2}], c: "d"}`)
	cp := obj.Clone()
	if !obj.Equal(cp) {
		t.Fatalf("Clone is not equal: %v, %v", obj, cp)
	}
	arr, _ := cp.GetArray("a")
	inner, _ := arr.GetObject(1)
	mustNoErr(t, inner.Put("b", 3))
	if obj.Equal(cp) {
		t.Errorf("Objects equal after modifying clone: %v, %v", obj, cp)
	}

	// Member order does not affect equality.
	p := ljson.MustParseObject(`{x: 1, y: 2}`)
	q := ljson.MustParseObject(`{y: 2, x: 1}`)
	if !p.Equal(q) {
		t.Errorf("Equal(%v, %v): got false, want true", p, q)
	}
	if p.Equal(ljson.MustParseObject(`{x: 1, y: "2"}`)) {
		t.Error("Equal with different value types: got true, want false")
	}
}

func TestObjectJSON(t *testing.T) {
	obj := ljson.MustParseObject(`{a: 1, b: [x]}`)
	data, err := json.Marshal(map[string]any{"o": obj})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(data); got != `{"o":{"a":1,"b":["x"]}}` {
		t.Errorf("Marshal: got %#q", got)
	}

	var cp ljson.Object
	if err := cp.UnmarshalJSON([]byte(`{a: 1, b: [x]}`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !cp.Equal(obj) {
		t.Errorf("UnmarshalJSON: got %v, want %v", &cp, obj)
	}

	var bad ljson.Object
	if err := bad.UnmarshalJSON([]byte(`{a: 1} junk`)); err == nil {
		t.Errorf("UnmarshalJSON with trailing text: got %v, want error", &bad)
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func checkText(t *testing.T, v interface{ Indent(int) (string, error) }, want string) {
	t.Helper()
	got, err := v.Indent(0)
	if err != nil {
		t.Errorf("Indent: unexpected error: %v", err)
	} else if got != want {
		t.Errorf("Text:\ngot  %#q\nwant %#q", got, want)
	}
}
