// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/warmup/internal/batch"
)

// GenMatrix creates a rows x cols matrix of distinct ints.
func GenMatrix(rows, cols int) [][]int {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
		for j := range m[i] {
			m[i][j] = i*cols + j
		}
	}
	return m
}

// GenDecodedMatrix is GenMatrix as a YAML decoder would hand it over.
func GenDecodedMatrix(rows, cols int) []any {
	typed := GenMatrix(rows, cols)
	out := make([]any, len(typed))
	for i, row := range typed {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}

// Boards returns finished games covering each outcome.
func Boards() [][][]string {
	return [][][]string{
		{{"x", "x", "x"}, {"o", "o", "x"}, {"x", "o", "o"}},
		{{"o", "x", "x"}, {"x", "o", "x"}, {"x", "o", "o"}},
		{{"x", "o", "x"}, {"x", "o", "o"}, {"o", "x", "x"}},
		{{"x", "x", "o"}, {"x", "x", "o"}, {"o", "x", "o"}},
	}
}

// GenCaseFileYAML generates a case file with n cases cycling through every
// function.
func GenCaseFileYAML(n int) []byte {
	if n < 1 {
		n = 1
	}
	templates := []batch.Case{
		{Func: "sum", Args: []any{2, 3}, Want: 5},
		{Func: "century", Args: []any{2000}, Want: 20},
		{Func: "color", Args: []any{"#1E90FF"}, Want: "(30, 144, 255)"},
		{Func: "fibonacci", Args: []any{20}, Want: 10946},
		{Func: "transpose", Args: []any{GenMatrix(2, 3)}},
		{Func: "base", Args: []any{255, 16}, Want: "ff"},
		{Func: "phone", Args: []any{"8-800-555-35-35"}, Want: true},
		{Func: "smiles", Args: []any{"hi :-) bye (-:"}, Want: 2},
		{Func: "tictactoe", Args: []any{Boards()[0]}, Want: "x"},
		{Func: "base", Args: []any{10, 1}, Error: "range"},
	}
	file := batch.File{Cases: make([]batch.Case, n)}
	for i := range file.Cases {
		c := templates[i%len(templates)]
		c.Name = fmt.Sprintf("case_%d", i)
		file.Cases[i] = c
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		panic(err)
	}
	return data
}
