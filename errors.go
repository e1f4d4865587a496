package warmup

import (
	"errors"

	"github.com/comalice/warmup/internal/problems"
)

var (
	// ErrType marks an argument of the wrong fundamental type.
	ErrType = problems.ErrType
	// ErrRange marks an argument of the right type but an invalid value.
	ErrRange = problems.ErrRange
	// ErrUnknownFunc is returned by Call for names outside the table.
	ErrUnknownFunc = errors.New("unknown function")
)

// ArgumentError reports a rejected argument. Its Kind is ErrType or ErrRange.
type ArgumentError = problems.ArgumentError

// KindOf returns "type", "range", "unknown" or "" (nil error).
func KindOf(err error) string {
	return problems.KindOf(err)
}
