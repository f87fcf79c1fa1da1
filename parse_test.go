// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson_test

import (
	"strings"
	"testing"

	"github.com/creachadair/ljson"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// checkStandard reports an error if text is not standard JSON.
func checkStandard(t *testing.T, text string) {
	t.Helper()
	v, err := hujson.Parse([]byte(text))
	if err != nil {
		t.Errorf("Output %#q is not valid JSON: %v", text, err)
	} else if !v.IsStandard() {
		t.Errorf("Output %#q is not standard JSON", text)
	}
}

func TestParseArray(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"[]", "[]"},
		{" [ ] ", "[]"},
		{"[001122334455]", "[1122334455]"},
		{"[666e666]", `["666e666"]`},
		{"[00.10]", "[0.1]"},
		{"[1e7, 1e-4, 30.70, 30e70, -0.0]", "[1.0E7,1.0E-4,30.7,3.0E71,-0]"},
		{"[123,,{};]", "[123,null,{}]"},
		{"[,]", "[null]"},
		{"[,,1]", "[null,null,1]"},
		{"[1,]", "[1]"},
		{"[[!,@;*]]", `[["!","@","*"]]`},
		{"[a b, 'c d' ]", `["a b","c d"]`},
		{`["</script>", " "]`, `["<\/script>","\u2028"]`},
		{`[true, false, null, True]`, `[true,false,null,"True"]`},
	}
	for _, test := range tests {
		arr, err := ljson.ParseArray(test.input)
		if err != nil {
			t.Errorf("ParseArray(%#q): unexpected error: %v", test.input, err)
			continue
		}
		got := arr.String()
		if got != test.want {
			t.Errorf("ParseArray(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		checkStandard(t, got)
	}
}

func TestParseObject(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"{}", "{}"},
		{`{"a":1}`, `{"a":1}`},
		{"{a:b}", `{"a":"b"}`},
		{`{'a'='b';"c"=>1,}`, `{"a":"b","c":1}`},
		{`{1: 2, true: 3, null: 4, 1.5: 5}`, `{"1":2,"true":3,"null":4,"1.5":5}`},
		{`{1.0: x, 1e2: y, -0: z}`, `{"1.0":"x","1e2":"y","-0":"z"}`},
		{`{"k" : "aA\t"}`, `{"k":"aA\t"}`},
		{`{"a":[1, 2.5, true, false, null, "x"], b: {c: {}}}`,
			`{"a":[1,2.5,true,false,null,"x"],"b":{"c":{}}}`},
		{"{\n  z: 1,\n  y: 2,\n  x: 3\n}", `{"z":1,"y":2,"x":3}`},
		{`{"a":1} trailing junk`, `{"a":1}`},
	}
	for _, test := range tests {
		obj, err := ljson.ParseObject(test.input)
		if err != nil {
			t.Errorf("ParseObject(%#q): unexpected error: %v", test.input, err)
			continue
		}
		got := obj.String()
		if got != test.want {
			t.Errorf("ParseObject(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		checkStandard(t, got)
	}
}

func TestParseErrors(t *testing.T) {
	parseObject := func(s string) error { _, err := ljson.ParseObject(s); return err }
	parseArray := func(s string) error { _, err := ljson.ParseArray(s); return err }
	tests := []struct {
		parse func(string) error
		input string
		want  string
	}{
		{parseObject, "abc", "A JSONObject text must begin with '{' at 1 [character 2 line 1]"},
		{parseObject, "", "A JSONObject text must begin with '{' at 1 [character 2 line 1]"},
		{parseObject, "{", "A JSONObject text must end with '}' at 2 [character 3 line 1]"},
		{parseObject, `{"123":34`, "Expected a ',' or '}' at 10 [character 11 line 1]"},
		{parseObject, `{"123",34}`, "Expected a ':' after a key at 7 [character 8 line 1]"},
		{parseObject, `{"koda": true, "koda": true}`, `Duplicate key "koda"`},
		{parseObject, `{"a":}`, "Missing value at 5 [character 6 line 1]"},
		{parseArray, "abc", "A JSONArray text must start with '[' at 1 [character 2 line 1]"},
		{parseArray, "[)", "Expected a ',' or ']' at 3 [character 4 line 1]"},
		{parseArray, "[\n\r\n\r}", "Missing value at 5 [character 0 line 4]"},
		{parseArray, "[1 2", "Expected a ',' or ']' at 5 [character 6 line 1]"},
		{parseArray, "[{]", "Missing value at 2 [character 3 line 1]"},
	}
	for _, test := range tests {
		if got := errText(test.parse(test.input)); got != test.want {
			t.Errorf("Input %#q: got error %q, want %q", test.input, got, test.want)
		}
	}
}

func TestConcatenated(t *testing.T) {
	tok := ljson.NewTokener(strings.NewReader(`{"a":1}{"b":[2]} [3]`))
	var got []string
	for range 2 {
		obj, err := ljson.ReadObject(tok)
		if err != nil {
			t.Fatalf("ReadObject: %v", err)
		}
		got = append(got, obj.String())
	}
	arr, err := ljson.ReadArray(tok)
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	got = append(got, arr.String())
	if diff := cmp.Diff([]string{`{"a":1}`, `{"b":[2]}`, `[3]`}, got); diff != "" {
		t.Errorf("Values (-want, +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	const input = `{
  name: 'Lenny', age: 0042, ratio: 00.10, ok: true, none: null,
  tags: [a,,'b c'], nested: {deep: [{x: -1.25e-9}, []]},
  "quoted \"key\"": "tab\there", big: 123456789012345678901234567890.
}`
	obj, err := ljson.ParseObject(input)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	for _, indent := range []int{0, 1, 4} {
		text, err := obj.Indent(indent)
		if err != nil {
			t.Fatalf("Indent(%d): %v", indent, err)
		}
		checkStandard(t, text)
		again, err := ljson.ParseObject(text)
		if err != nil {
			t.Fatalf("ParseObject(%#q): %v", text, err)
		}
		if diff := cmp.Diff(obj, again); diff != "" {
			t.Errorf("Round trip with indent %d (-want, +got):\n%s", indent, diff)
		}
		if again.String() != obj.String() {
			t.Errorf("Rendering is not stable:\n%s\n%s", obj, again)
		}
	}
	if got, want := obj.OptString("big"), ""; got != want {
		t.Errorf("OptString(big): got %q, want %q", got, want)
	}
	if got, want := obj.String(), `{"name":"Lenny","age":42,"ratio":0.1,"ok":true,"none":null,`+
		`"tags":["a",null,"b c"],"nested":{"deep":[{"x":-1.25E-9},[]]},`+
		`"quoted \"key\"":"tab\there","big":1.2345678901234568E29}`; got != want {
		t.Errorf("String:\ngot  %#q\nwant %#q", got, want)
	}
}

func TestMustParse(t *testing.T) {
	if got := ljson.MustParseObject("{a:1}").OptInt("a"); got != 1 {
		t.Errorf("MustParseObject: got a=%d, want 1", got)
	}
	if got := ljson.MustParseArray("[1,2]").Len(); got != 2 {
		t.Errorf("MustParseArray: got length %d, want 2", got)
	}
	v := mtest.MustPanic(t, func() { ljson.MustParseObject("[]") })
	if err, ok := v.(*ljson.Error); !ok || err.Pos == nil {
		t.Errorf("MustParseObject panic: got %v, want *Error with position", v)
	}
	mtest.MustPanic(t, func() { ljson.MustParseArray("{}") })
}
