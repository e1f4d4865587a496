package warmup

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/comalice/warmup/internal/numeric"
	"github.com/comalice/warmup/internal/problems"
)

// requireNumbers fails with a type error on the first argument that is not a
// number. Callers run it before any integer check so that a type problem
// always wins over a range problem.
func requireNumbers(fn string, names []string, values ...any) error {
	for i, v := range values {
		if !numeric.IsNumber(v) {
			return problems.NewTypeError(fn, "%s should have type number, got %s", names[i], typeName(v))
		}
	}
	return nil
}

// toInt narrows an argument already known to be a number.
func toInt(fn, name string, v any) (int, error) {
	n, err := numeric.Int(v)
	switch {
	case errors.Is(err, numeric.ErrNotNumber):
		return 0, problems.NewTypeError(fn, "%s should have type number, got %s", name, typeName(v))
	case err != nil:
		return 0, problems.NewRangeError(fn, "%s should be an integer, got %v (%v)", name, v, err)
	}
	return n, nil
}

func requireString(fn, name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", problems.NewTypeError(fn, "%s should have type string, got %s", name, typeName(v))
	}
	return s, nil
}

// toMatrix copies any slice or array of slices or arrays into [][]any.
// Elements held in interfaces ([]any rows) are unwrapped first.
func toMatrix(fn string, v any) ([][]any, error) {
	outer := reflect.ValueOf(v)
	if !isList(outer) {
		return nil, problems.NewTypeError(fn, "argument should be a 2D array, got %s", typeName(v))
	}
	rows := make([][]any, outer.Len())
	for i := range rows {
		row := outer.Index(i)
		if row.Kind() == reflect.Interface {
			row = row.Elem()
		}
		if !isList(row) {
			return nil, problems.NewTypeError(fn, "row %d should be an array, got %s", i, row.Kind())
		}
		rows[i] = make([]any, row.Len())
		for j := range rows[i] {
			rows[i][j] = row.Index(j).Interface()
		}
	}
	return rows, nil
}

func isList(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
