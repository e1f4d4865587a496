package problems

import (
	"errors"
	"fmt"
)

// Error kinds. Every ArgumentError unwraps to exactly one of them.
var (
	ErrType  = errors.New("type error")
	ErrRange = errors.New("range error")
)

// ArgumentError reports an argument rejected by one of the functions.
type ArgumentError struct {
	Func string
	Kind error // ErrType or ErrRange
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Func, e.Kind, e.Msg)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// NewTypeError returns a type-kind ArgumentError for fn.
func NewTypeError(fn, format string, args ...any) error {
	return &ArgumentError{Func: fn, Kind: ErrType, Msg: fmt.Sprintf(format, args...)}
}

// NewRangeError returns a range-kind ArgumentError for fn.
func NewRangeError(fn, format string, args ...any) error {
	return &ArgumentError{Func: fn, Kind: ErrRange, Msg: fmt.Sprintf(format, args...)}
}

// KindOf names the kind of err: "type", "range", "" for nil and
// "unknown" for anything else.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrType):
		return "type"
	case errors.Is(err, ErrRange):
		return "range"
	default:
		return "unknown"
	}
}
