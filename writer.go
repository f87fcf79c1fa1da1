// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"io"
	"strings"

	"github.com/creachadair/mds/stack"
)

// maxDepth is the maximum nesting depth of objects and arrays in a Writer.
const maxDepth = 200

type writeState byte

const (
	stateInit   writeState = iota // nothing written
	stateKey                      // in an object, expecting a key
	stateMember                   // in an object, expecting the value of a key
	stateArray                    // in an array, expecting a value
	stateDone                     // a complete value has been written
)

// A frame records an open container of a Writer.
type frame struct {
	array bool
	keys  map[string]bool // keys written so far, for objects
}

// A Writer writes JSON text incrementally to an io.Writer, without building
// a tree of values.
//
// The methods of a Writer must be called in an order that describes a single
// JSON object or array. For example, to write {"name":"Lenny","tags":[1,2]}:
//
//	w := ljson.NewWriter(out)
//	w.Object().
//	   Key("name").Value("Lenny").
//	   Key("tags").Array().Value(1).Value(2).EndArray().
//	   EndObject()
//	if err := w.Err(); err != nil {
//	   log.Fatalf("Write failed: %v", err)
//	}
//
// Each method returns the Writer to allow chaining. The first error stops
// all further output and is reported by Err. Objects and arrays may be nested
// up to 200 levels deep, and keys must be unique within an object.
type Writer struct {
	w     io.Writer
	state writeState
	comma bool // a comma precedes the next key or array element
	stk   *stack.Stack[frame]
	err   error
}

// NewWriter constructs a new Writer that writes its output to w.
func NewWriter(w io.Writer) *Writer {
	jw := new(Writer)
	jw.init(w)
	return jw
}

func (w *Writer) init(out io.Writer) {
	w.w = out
	w.state = stateInit
	w.stk = stack.New[frame]()
}

// Err reports the first error encountered by w, or nil.
func (w *Writer) Err() error { return w.err }

func (w *Writer) do(f func()) *Writer {
	if w.err == nil {
		func() {
			defer recoverError(&w.err)
			f()
		}()
	}
	return w
}

func (w *Writer) write(s string) {
	if _, err := io.WriteString(w.w, s); err != nil {
		panic(wrapError(err))
	}
}

// open begins a new object or array.
func (w *Writer) open(array bool) {
	switch w.state {
	case stateInit, stateMember, stateArray:
	default:
		if array {
			panic(errorf("Misplaced array."))
		}
		panic(errorf("Misplaced object."))
	}
	if w.stk.Len() >= maxDepth {
		panic(errorf("Nesting too deep."))
	}
	if w.comma && w.state == stateArray {
		w.write(",")
	}
	if array {
		w.write("[")
		w.stk.Push(frame{array: true})
		w.state = stateArray
	} else {
		w.write("{")
		w.stk.Push(frame{keys: make(map[string]bool)})
		w.state = stateKey
	}
	w.comma = false
}

// close ends the innermost object or array.
func (w *Writer) close(array bool) {
	if array && w.state != stateArray {
		panic(errorf("Misplaced endArray."))
	} else if !array && w.state != stateKey {
		panic(errorf("Misplaced endObject."))
	}
	w.pop(array)
	if array {
		w.write("]")
	} else {
		w.write("}")
	}
	w.comma = true
}

// pop removes the innermost frame, which must match the kind of container
// being closed, and restores the state of the enclosing container.
func (w *Writer) pop(array bool) {
	top, ok := w.stk.Peek(0)
	if !ok || top.array != array {
		panic(errorf("Nesting error."))
	}
	w.stk.Pop()
	if next, ok := w.stk.Peek(0); !ok {
		w.state = stateDone
	} else if next.array {
		w.state = stateArray
	} else {
		w.state = stateKey
	}
}

// Object begins a new object.
func (w *Writer) Object() *Writer { return w.do(func() { w.open(false) }) }

// Array begins a new array.
func (w *Writer) Array() *Writer { return w.do(func() { w.open(true) }) }

// EndObject ends the innermost object.
func (w *Writer) EndObject() *Writer { return w.do(func() { w.close(false) }) }

// EndArray ends the innermost array.
func (w *Writer) EndArray() *Writer { return w.do(func() { w.close(true) }) }

// Key writes the key of the next member of the current object.
func (w *Writer) Key(key string) *Writer {
	return w.do(func() {
		if w.state != stateKey {
			panic(errorf("Misplaced key."))
		}
		top, _ := w.stk.Peek(0)
		if top.keys[key] {
			panic(errorf("Duplicate key \"%s\"", key))
		}
		top.keys[key] = true
		if w.comma {
			w.write(",")
		}
		w.write(Quote(key))
		w.write(":")
		w.comma = false
		w.state = stateMember
	})
}

// Value writes v, formatted by ValueToString, as the value of the current
// object member or as the next element of the current array.
func (w *Writer) Value(v any) *Writer {
	return w.do(func() {
		if w.state != stateMember && w.state != stateArray {
			panic(errorf("Value out of sequence."))
		}
		s, err := ValueToString(v)
		if err != nil {
			panic(wrapError(err))
		}
		if w.comma && w.state == stateArray {
			w.write(",")
		}
		w.write(s)
		if w.state == stateMember {
			w.state = stateKey
		}
		w.comma = true
	})
}

// A Stringer is a Writer that collects its output in memory.
type Stringer struct {
	Writer
	buf strings.Builder
}

// NewStringer constructs a new empty Stringer.
func NewStringer() *Stringer {
	s := new(Stringer)
	s.Writer.init(&s.buf)
	return s
}

// Text returns the text written to s. It reports false if the outermost
// object or array has not been ended, or if an error occurred.
func (s *Stringer) Text() (string, bool) {
	if s.state != stateDone || s.err != nil {
		return "", false
	}
	return s.buf.String(), true
}

// String returns the text written to s, or "" if Text would report false.
func (s *Stringer) String() string {
	text, _ := s.Text()
	return text
}
