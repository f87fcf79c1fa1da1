package ljson

import (
	"math"
	"strconv"
	"strings"
)

// The functions in this file implement the conversions used by the typed
// accessors of Object and Array. Each reports false if v cannot be converted.

func toBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case String:
		if strings.EqualFold(string(t), "true") {
			return true, true
		} else if strings.EqualFold(string(t), "false") {
			return false, true
		}
	}
	return false, false
}

// toInt converts v to a 32-bit integer. Wider integers wrap.
func toInt(v Value) (int, bool) {
	switch t := v.(type) {
	case Int:
		return int(int32(t)), true
	case Float:
		return int(truncFloat(float64(t), math.MinInt32, math.MaxInt32)), true
	case String:
		z, err := strconv.ParseInt(string(t), 10, 32)
		return int(z), err == nil
	}
	return 0, false
}

func toInt64(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int:
		return int64(t), true
	case Float:
		return truncFloat(float64(t), math.MinInt64, math.MaxInt64), true
	case String:
		z, err := strconv.ParseInt(string(t), 10, 64)
		return z, err == nil
	}
	return 0, false
}

func toFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	case String:
		f, err := strconv.ParseFloat(trimSpace(string(t)), 64)
		return f, err == nil
	}
	return 0, false
}

// truncFloat truncates f toward zero, clamped to the range [lo, hi].
// NaN converts to zero.
func truncFloat(f float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return int64(f)
}
