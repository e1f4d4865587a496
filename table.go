package warmup

import (
	"fmt"
	"maps"
	"slices"

	"github.com/comalice/warmup/internal/problems"
)

type entry struct {
	params []string
	text   bool // every parameter is a string
	call   func(args []any) (any, error)
}

// table maps function names to entry points. It is never written after
// package initialisation.
var table = map[string]entry{
	problems.FuncSum: {
		params: []string{"a", "b"},
		call:   func(args []any) (any, error) { return Sum(args[0], args[1]) },
	},
	problems.FuncCentury: {
		params: []string{"year"},
		call:   func(args []any) (any, error) { return Century(args[0]) },
	},
	problems.FuncColor: {
		params: []string{"hex"},
		text:   true,
		call:   func(args []any) (any, error) { return Color(args[0]) },
	},
	problems.FuncFibonacci: {
		params: []string{"n"},
		call:   func(args []any) (any, error) { return Fibonacci(args[0]) },
	},
	problems.FuncTranspose: {
		params: []string{"matrix"},
		call:   func(args []any) (any, error) { return Transpose(args[0]) },
	},
	problems.FuncBase: {
		params: []string{"n", "radix"},
		call:   func(args []any) (any, error) { return ConvertBase(args[0], args[1]) },
	},
	problems.FuncPhone: {
		params: []string{"phone"},
		text:   true,
		call:   func(args []any) (any, error) { return IsPhoneNumber(args[0]) },
	},
	problems.FuncSmiles: {
		params: []string{"text"},
		text:   true,
		call:   func(args []any) (any, error) { return CountEmoticons(args[0]) },
	},
	problems.FuncTicTacToe: {
		params: []string{"board"},
		call:   callTicTacToe,
	},
}

// callTicTacToe adapts a decoded board ([]any of []any) for TicTacToeWinner.
// Cells are rendered with fmt.Sprint; the board itself is not validated.
func callTicTacToe(args []any) (any, error) {
	rows, err := toMatrix(problems.FuncTicTacToe, args[0])
	if err != nil {
		return nil, err
	}
	board := make([][]string, len(rows))
	for i, row := range rows {
		board[i] = make([]string, len(row))
		for j, cell := range row {
			board[i][j] = fmt.Sprint(cell)
		}
	}
	return TicTacToeWinner(board), nil
}

// Call invokes the function registered under name. A wrong number of
// arguments is a type error; an unknown name wraps ErrUnknownFunc.
func Call(name string, args ...any) (any, error) {
	e, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}
	if len(args) != len(e.params) {
		return nil, problems.NewTypeError(name, "expected %d argument(s) %v, got %d", len(e.params), e.params, len(args))
	}
	return e.call(args)
}

// Names lists the registered function names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(table))
}

// TakesText reports whether every parameter of the named function is a
// string. Callers decoding loosely typed input (command-line arguments) use
// it to keep text such as "000000" from turning into a number.
func TakesText(name string) bool {
	return table[name].text
}

// Params returns the parameter names of a registered function.
func Params(name string) ([]string, bool) {
	e, ok := table[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(e.params), true
}
