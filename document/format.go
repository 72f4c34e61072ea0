package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a scalar the way both text formats expect it:
// strings verbatim, integers in decimal, floats in shortest round-trip form
// that always carries a fraction or an exponent (1.0, 0.25, 1e-05).
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return FormatFloat(x)
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat renders f in shortest round-trip form. Magnitudes below 1e-4 or
// from 1e16 up use exponent notation; integral values get a ".0" suffix.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// FormatList renders each element of a list value with FormatValue.
func FormatList(v any) []string {
	switch x := v.(type) {
	case []float64:
		out := make([]string, len(x))
		for i, f := range x {
			out[i] = FormatFloat(f)
		}

		return out
	case []any:
		out := make([]string, len(x))
		for i, item := range x {
			out[i] = FormatValue(item)
		}

		return out
	default:
		return []string{FormatValue(v)}
	}
}
