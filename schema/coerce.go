package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Coercer is a named conversion applied to a raw field value.
type Coercer struct {
	Name string
	Func func(v any) (any, error)
}

// Apply runs the conversion.
func (c Coercer) Apply(v any) (any, error) {
	return c.Func(v)
}

// Builtin coercers.
var (
	// ToInt accepts integers, floats (truncated toward zero) and decimal
	// integer strings surrounded by optional white space.
	ToInt = Coercer{Name: "int", Func: toInt}
	// ToFloat accepts numbers and decimal float strings.
	ToFloat = Coercer{Name: "float", Func: toFloat}
	// FloatToInt parses a float and truncates it toward zero.
	FloatToInt = Coercer{Name: "float_to_int", Func: floatToInt}
	// DigitRun extracts the first run of 2 to 4 digits from the textual
	// form of the value, e.g. "3000K" -> 3000. It yields 0 when there is
	// no such run.
	DigitRun = Coercer{Name: "digit_run", Func: digitRun}
)

var digitRunRe = regexp.MustCompile(`[0-9]{2,4}`)

func toInt(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case float32:
		return truncate(float64(x))
	case float64:
		return truncate(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return nil, fmt.Errorf("invalid literal for int: %q", x)
		}

		return n, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to int", v)
	}
}

func toFloat(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to float: %q", x)
		}

		return f, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to float", v)
	}
}

func floatToInt(v any) (any, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}

	return truncate(f.(float64))
}

func digitRun(v any) (any, error) {
	var s string

	switch x := v.(type) {
	case string:
		s = x
	case int:
		s = strconv.Itoa(x)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}

	m := digitRunRe.FindString(s)
	if m == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func truncate(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("cannot convert float %v to integer", f)
	}

	if f > math.MaxInt64 || f < math.MinInt64 {
		return nil, fmt.Errorf("float %v out of integer range", f)
	}

	return int(f), nil
}
