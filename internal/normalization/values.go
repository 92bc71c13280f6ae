package normalization

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int64 converts a graph integer to int64. Besides native Go numbers it accepts the
// {low, high} composite that JavaScript-era ingestion wrote into some properties
// (value = high<<32 | uint32(low)), JSON numbers and numeric strings. Floats are
// accepted when integral.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case map[string]any:
		return compositeInt(n["low"], n["high"])
	case map[string]int64:
		low, lok := n["low"]
		high, hok := n["high"]
		if !lok || !hok {
			return 0, false
		}
		return compositeInt(low, high)
	default:
		return 0, false
	}
}

func compositeInt(lowRaw, highRaw any) (int64, bool) {
	if lowRaw == nil || highRaw == nil {
		return 0, false
	}
	low, ok := Int64(lowRaw)
	if !ok {
		return 0, false
	}
	high, ok := Int64(highRaw)
	if !ok {
		return 0, false
	}
	return high<<32 | int64(uint32(low)), true
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float64 converts numeric graph values, including integer composites.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	if i, ok := Int64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// Text returns v as display text when it is a non-blank string or a number.
func Text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return "", false
		}
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	}
	if i, ok := Int64(v); ok {
		return strconv.FormatInt(i, 10), true
	}
	if f, ok := Float64(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// Strings accepts only an ordered sequence whose every element is a string.
func Strings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

// Bool reads flags stored as booleans, 0/1, or words such as "mandatory"/"optional".
func Bool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch ParseInputString(b) {
		case "true", "yes", "y", "1", "mandatory", "compulsory", "required", "core":
			return true, true
		case "false", "no", "n", "0", "optional", "elective":
			return false, true
		}
		return false, false
	}
	if i, ok := Int64(v); ok {
		return i != 0, true
	}
	return false, false
}

// Vector reports whether v is a non-empty numeric list, returning its length.
func Vector(v any) (int, bool) {
	switch vec := v.(type) {
	case []float64:
		return len(vec), len(vec) > 0
	case []float32:
		return len(vec), len(vec) > 0
	case []any:
		if len(vec) == 0 {
			return 0, false
		}
		for _, x := range vec {
			if _, ok := Float64(x); !ok {
				return 0, false
			}
		}
		return len(vec), true
	default:
		return 0, false
	}
}
