package ljson

import "fmt"

// A Position describes the location of the most recently consumed character
// of a Tokener's input.
type Position struct {
	Index int // offset in characters, 0-based
	Line  int // line number, 1-based
	Char  int // character offset within the line
}

func (p Position) String() string {
	return fmt.Sprintf("%d [character %d line %d]", p.Index, p.Char, p.Line)
}
