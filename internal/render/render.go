// Package render turns warmup results into terminal text: matrices and boards
// in pipe-delimited row form, integers optionally grouped for a locale.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rows renders a matrix as "|r0|r1|...|", joining the cells of a row with sep.
// A 3x3 board with sep "" becomes "|xxo|oxx|xoo|".
func Rows[T any](matrix [][]T, sep string) string {
	var b strings.Builder
	b.WriteByte('|')
	for _, row := range matrix {
		for j, cell := range row {
			if j > 0 {
				b.WriteString(sep)
			}
			fmt.Fprint(&b, cell)
		}
		b.WriteByte('|')
	}
	return b.String()
}

// Board renders a tic-tac-toe board with no separator between cells.
func Board(board [][]string) string {
	return Rows(board, "")
}

// Formatter renders result values. The zero value prints integers plainly.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter grouping integer digits the way locale
// does ("en" prints 1234567 as 1,234,567). An empty locale disables grouping.
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		return &Formatter{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// Format renders v: integers through the locale printer, matrices as
// space-separated rows, anything else with fmt.
func (f *Formatter) Format(v any) string {
	switch x := v.(type) {
	case int:
		if f.printer != nil {
			return f.printer.Sprintf("%d", x)
		}
		return fmt.Sprint(x)
	case [][]any:
		return Rows(x, " ")
	case [][]string:
		return Rows(x, " ")
	default:
		return fmt.Sprint(v)
	}
}
