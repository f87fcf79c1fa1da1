package ljson

import (
	"math"
	"strconv"
	"strings"
)

// StringToValue infers the type of an unquoted token. The token should
// already be trimmed of surrounding whitespace.
//
// The exact words true, false, and null denote the corresponding constants.
// A token that begins with a digit, '.', '-', or '+' is parsed as a number:
// integral tokens become Int and tokens with a fraction or exponent become
// Float. Any other token, or a numeric token that does not parse or cannot be
// represented (for example "0x1F", "1e999", or an integer beyond the range of
// int64), becomes a String with the text of the token.
func StringToValue(s string) Value {
	switch s {
	case "":
		return String("")
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null
	}
	if !isNumStart(s[0]) || !isNumText(s) {
		return String(s)
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return Float(f)
		}
	} else if z, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(z)
	}
	return String(s)
}

func isNumStart(b byte) bool {
	return b == '-' || b == '+' || b == '.' || (b >= '0' && b <= '9')
}

// isNumText reports whether s consists only of characters that may occur in
// a decimal number.
func isNumText(s string) bool {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= '0' && b <= '9', b == '.', b == '-', b == '+', b == 'e', b == 'E':
		default:
			return false
		}
	}
	return true
}
