// Package numeric classifies dynamically typed values as numbers and
// narrows them to Go ints. Stdlib only.
package numeric

import (
	"encoding/json"
	"errors"
	"math"
)

var (
	// ErrNotNumber is returned for values of a non-numeric type and for NaN.
	ErrNotNumber = errors.New("not a number")
	// ErrNotInteger is returned for numbers with a fractional part and for
	// infinities.
	ErrNotInteger = errors.New("not an integer")
	// ErrOverflow is returned for integers outside the range of int.
	ErrOverflow = errors.New("overflows int")
)

// IsNumber reports whether v has a numeric Go type: any integer or float
// kind, or json.Number. NaN and unparsable json.Number values are not
// numbers.
func IsNumber(v any) bool {
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(x))
	case float64:
		return !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err == nil && !math.IsNaN(f)
	default:
		return false
	}
}

// Int narrows v to an int. It fails with ErrNotNumber when v is not a
// number, ErrNotInteger when it has a fractional part or is infinite, and
// ErrOverflow when it does not fit.
func Int(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, ErrOverflow
		}
		return int(x), nil
	case uint:
		if x > math.MaxInt {
			return 0, ErrOverflow
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, ErrOverflow
		}
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, ErrOverflow
		}
		return int(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, ErrNotNumber
		}
		return fromFloat(f)
	default:
		return 0, ErrNotNumber
	}
}

func fromFloat(f float64) (int, error) {
	switch {
	case math.IsNaN(f):
		return 0, ErrNotNumber
	case math.IsInf(f, 0), f != math.Trunc(f):
		return 0, ErrNotInteger
	case f < math.MinInt || f >= -math.MinInt:
		return 0, ErrOverflow
	}
	return int(f), nil
}
