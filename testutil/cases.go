// Package testutil holds the conformance cases shared by the warmup test
// suites and the invokers that run them.
package testutil

// Case is one call with its expected outcome. Kind is "", "type" or
// "range"; Want is only checked when Kind is empty.
type Case struct {
	Name string
	Func string
	Args []any
	Want any
	Kind string
}

func board(rows ...string) [][]string {
	b := make([][]string, len(rows))
	for i, r := range rows {
		b[i] = []string{r[0:1], r[1:2], r[2:3]}
	}
	return b
}

// Conformance returns the behavioural contract of every function.
func Conformance() []Case {
	return []Case{
		{Name: "sum small", Func: "sum", Args: []any{2, 3}, Want: 5},
		{Name: "sum negative", Func: "sum", Args: []any{-10, 4}, Want: -6},
		{Name: "sum integral floats", Func: "sum", Args: []any{1.0, 2.0}, Want: 3},
		{Name: "sum string", Func: "sum", Args: []any{"1", 2}, Kind: "type"},
		{Name: "sum nil", Func: "sum", Args: []any{1, nil}, Kind: "type"},
		{Name: "sum fraction", Func: "sum", Args: []any{1.5, 2}, Kind: "range"},
		{Name: "sum type beats range", Func: "sum", Args: []any{1.5, "x"}, Kind: "type"},

		{Name: "century 100", Func: "century", Args: []any{100}, Want: 1},
		{Name: "century 101", Func: "century", Args: []any{101}, Want: 2},
		{Name: "century 2000", Func: "century", Args: []any{2000}, Want: 20},
		{Name: "century 0", Func: "century", Args: []any{0}, Want: 0},
		{Name: "century negative", Func: "century", Args: []any{-1}, Kind: "range"},
		{Name: "century fraction", Func: "century", Args: []any{1.5}, Kind: "range"},
		{Name: "century string", Func: "century", Args: []any{"x"}, Kind: "type"},

		{Name: "color white", Func: "color", Args: []any{"#FFFFFF"}, Want: "(255, 255, 255)"},
		{Name: "color black", Func: "color", Args: []any{"000000"}, Want: "(0, 0, 0)"},
		{Name: "color shorthand", Func: "color", Args: []any{"F00"}, Want: "(255, 0, 0)"},
		{Name: "color number", Func: "color", Args: []any{123}, Kind: "type"},
		{Name: "color not hex", Func: "color", Args: []any{"GGGGGG"}, Kind: "range"},

		{Name: "fibonacci 1", Func: "fibonacci", Args: []any{1}, Want: 1},
		{Name: "fibonacci 2", Func: "fibonacci", Args: []any{2}, Want: 2},
		{Name: "fibonacci 3", Func: "fibonacci", Args: []any{3}, Want: 3},
		{Name: "fibonacci 4", Func: "fibonacci", Args: []any{4}, Want: 5},
		{Name: "fibonacci 5", Func: "fibonacci", Args: []any{5}, Want: 8},
		{Name: "fibonacci 0", Func: "fibonacci", Args: []any{0}, Kind: "range"},
		{Name: "fibonacci negative", Func: "fibonacci", Args: []any{-1}, Kind: "range"},
		{Name: "fibonacci fraction", Func: "fibonacci", Args: []any{1.5}, Kind: "range"},
		{Name: "fibonacci string", Func: "fibonacci", Args: []any{"5"}, Kind: "type"},

		{Name: "transpose row", Func: "transpose", Args: []any{[][]int{{1, 2, 3}}}, Want: [][]any{{1}, {2}, {3}}},
		{Name: "transpose square", Func: "transpose", Args: []any{[]any{[]any{"a", "b"}, []any{"c", "d"}}}, Want: [][]any{{"a", "c"}, {"b", "d"}}},
		{Name: "transpose ragged", Func: "transpose", Args: []any{[][]int{{1, 2}, {3}}}, Kind: "type"},
		{Name: "transpose flat", Func: "transpose", Args: []any{[]int{1, 2}}, Kind: "type"},
		{Name: "transpose empty", Func: "transpose", Args: []any{[][]int{}}, Kind: "type"},
		{Name: "transpose string", Func: "transpose", Args: []any{"abc"}, Kind: "type"},

		{Name: "base 16", Func: "base", Args: []any{255, 16}, Want: "ff"},
		{Name: "base 2", Func: "base", Args: []any{8, 2}, Want: "1000"},
		{Name: "base 36", Func: "base", Args: []any{71, 36}, Want: "1z"},
		{Name: "base radix 1", Func: "base", Args: []any{10, 1}, Kind: "range"},
		{Name: "base radix 37", Func: "base", Args: []any{10, 37}, Kind: "range"},
		{Name: "base string", Func: "base", Args: []any{"x", 2}, Kind: "type"},

		{Name: "phone valid", Func: "phone", Args: []any{"8-800-555-35-35"}, Want: true},
		{Name: "phone short block", Func: "phone", Args: []any{"8-800-55-35-35"}, Want: false},
		{Name: "phone number", Func: "phone", Args: []any{12345}, Kind: "type"},

		{Name: "smiles two", Func: "smiles", Args: []any{"hi :-) bye (-:"}, Want: 2},
		{Name: "smiles none", Func: "smiles", Args: []any{"no emoticons"}, Want: 0},
		{Name: "smiles number", Func: "smiles", Args: []any{42}, Kind: "type"},

		{Name: "tictactoe row", Func: "tictactoe", Args: []any{board("xxx", "oox", "xoo")}, Want: "x"},
		{Name: "tictactoe diagonal", Func: "tictactoe", Args: []any{board("oxx", "xox", "xoo")}, Want: "o"},
		{Name: "tictactoe no line", Func: "tictactoe", Args: []any{board("xox", "xoo", "oxx")}, Want: "draw"},
		{Name: "tictactoe double", Func: "tictactoe", Args: []any{board("xxo", "xxo", "oxo")}, Want: "draw"},
	}
}
