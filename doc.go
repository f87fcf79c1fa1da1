// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ljson implements a lenient JSON parser, a tree of JSON values with
// typed accessors, and an incremental JSON writer.
//
// # Parsing
//
// ParseObject and ParseArray construct a value tree from text. The parser
// accepts standard JSON, and also a more forgiving syntax that allows
// unquoted keys and values, single-quoted strings, "=" or "=>" between keys
// and values, ";" between members, trailing separators, and omitted array
// elements:
//
//	obj, err := ljson.ParseObject(`{name: 'Lenny', tags: [a,,c];}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Unquoted tokens are classified by StringToValue: true, false, and null are
// constants, decimal numbers become Int or Float, and anything else is a
// String.
//
// To read from a stream, or to read several concatenated values, construct a
// Tokener and call ReadObject, ReadArray, or its NextValue method. Parsing
// stops at the end of a value, so the next call picks up where the last one
// left off. A Stream does this for every value of its input, passing each to
// a Handler.
//
// # Values
//
// The Object and Array types have accessors that convert their contents on
// request. For example, GetInt accepts the number 5, the float 5.8, or the
// string "5", while GetString accepts only a String:
//
//	n, err := obj.GetInt("count")
//	name := obj.OptStringOr("name", "anonymous")
//
// # Writing
//
// The String, Indent, and Encode methods of Object and Array render a tree as
// JSON text. A Writer renders JSON text directly from a sequence of calls,
// without building a tree; a Stringer is a Writer that collects the text in
// memory.
//
// # Errors
//
// Errors reported by this package have concrete type *Error. Errors detected
// while parsing include the input position, for example:
//
//	Expected a ',' or '}' at 10 [character 11 line 1]
package ljson
