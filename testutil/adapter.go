package testutil

import (
	"fmt"

	"github.com/comalice/warmup"
)

// Invoker provides a common interface for calling the warmup functions
// directly and through the name-indexed table.
// This allows running the same conformance suite on both paths.
type Invoker interface {
	Invoke(name string, args ...any) (any, error)
}

// DirectInvoker calls the exported entry points.
type DirectInvoker struct{}

// NewDirectInvoker creates a new invoker for the exported functions
func NewDirectInvoker() *DirectInvoker {
	return &DirectInvoker{}
}

func (DirectInvoker) Invoke(name string, args ...any) (any, error) {
	arg := func(i int) any {
		if i < len(args) {
			return args[i]
		}
		return nil
	}
	switch name {
	case "sum":
		return warmup.Sum(arg(0), arg(1))
	case "century":
		return warmup.Century(arg(0))
	case "color":
		return warmup.Color(arg(0))
	case "fibonacci":
		return warmup.Fibonacci(arg(0))
	case "transpose":
		return warmup.Transpose(arg(0))
	case "base":
		return warmup.ConvertBase(arg(0), arg(1))
	case "phone":
		return warmup.IsPhoneNumber(arg(0))
	case "smiles":
		return warmup.CountEmoticons(arg(0))
	case "tictactoe":
		board, ok := arg(0).([][]string)
		if !ok {
			return nil, &warmup.ArgumentError{
				Func: name,
				Kind: warmup.ErrType,
				Msg:  fmt.Sprintf("board should have type [][]string, got %T", arg(0)),
			}
		}
		return warmup.TicTacToeWinner(board), nil
	default:
		return nil, warmup.ErrUnknownFunc
	}
}

// TableInvoker dispatches through warmup.Call.
type TableInvoker struct{}

// NewTableInvoker creates a new invoker for the function table
func NewTableInvoker() *TableInvoker {
	return &TableInvoker{}
}

func (TableInvoker) Invoke(name string, args ...any) (any, error) {
	return warmup.Call(name, args...)
}
