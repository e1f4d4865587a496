package warmup

import (
	"github.com/comalice/warmup/internal/problems"
)

// Sum adds two integers. Non-numbers are type errors; non-integers and
// sums that overflow int are range errors.
func Sum(a, b any) (int, error) {
	if err := requireNumbers(problems.FuncSum, []string{"a", "b"}, a, b); err != nil {
		return 0, err
	}
	x, err := toInt(problems.FuncSum, "a", a)
	if err != nil {
		return 0, err
	}
	y, err := toInt(problems.FuncSum, "b", b)
	if err != nil {
		return 0, err
	}
	return problems.Sum(x, y)
}

// Century returns ceil(year / 100) for a non-negative integer year, so
// 100 is in century 1, 101 in century 2 and year 0 in century 0.
func Century(year any) (int, error) {
	if err := requireNumbers(problems.FuncCentury, []string{"year"}, year); err != nil {
		return 0, err
	}
	y, err := toInt(problems.FuncCentury, "year", year)
	if err != nil {
		return 0, err
	}
	return problems.Century(y)
}

// Color converts a 3 or 6 digit hex color, with or without a leading '#',
// into "(R, G, B)".
func Color(hex any) (string, error) {
	s, err := requireString(problems.FuncColor, "color", hex)
	if err != nil {
		return "", err
	}
	return problems.HexToRGB(s)
}

// Fibonacci returns F(n) for the sequence F(1)=1, F(2)=2,
// F(n)=F(n-1)+F(n-2). n must be a positive integer.
func Fibonacci(n any) (int, error) {
	if err := requireNumbers(problems.FuncFibonacci, []string{"n"}, n); err != nil {
		return 0, err
	}
	i, err := toInt(problems.FuncFibonacci, "n", n)
	if err != nil {
		return 0, err
	}
	return problems.Fibonacci(i)
}

// Transpose returns a new matrix whose [j][i] element is matrix[i][j].
// matrix may be any slice or array of slices or arrays; it must be
// non-empty and rectangular, otherwise a type error is returned.
func Transpose(matrix any) ([][]any, error) {
	rows, err := toMatrix(problems.FuncTranspose, matrix)
	if err != nil {
		return nil, err
	}
	return problems.Transpose(rows)
}

// TransposeOf is Transpose for statically typed matrices.
func TransposeOf[T any](matrix [][]T) ([][]T, error) {
	return problems.Transpose(matrix)
}

// ConvertBase formats the integer n in radix (2 to 36) with lowercase
// digits.
func ConvertBase(n, radix any) (string, error) {
	if err := requireNumbers(problems.FuncBase, []string{"n", "radix"}, n, radix); err != nil {
		return "", err
	}
	v, err := toInt(problems.FuncBase, "n", n)
	if err != nil {
		return "", err
	}
	r, err := toInt(problems.FuncBase, "radix", radix)
	if err != nil {
		return "", err
	}
	return problems.ToBase(v, r)
}

// IsPhoneNumber reports whether phone is exactly "8-800-ddd-dd-dd".
// A non-string phone is a type error.
func IsPhoneNumber(phone any) (bool, error) {
	s, err := requireString(problems.FuncPhone, "phone", phone)
	if err != nil {
		return false, err
	}
	return problems.IsPhoneNumber(s), nil
}

// CountEmoticons counts the ":-)" and "(-:" in text.
func CountEmoticons(text any) (int, error) {
	s, err := requireString(problems.FuncSmiles, "text", text)
	if err != nil {
		return 0, err
	}
	return problems.CountEmoticons(s), nil
}

// TicTacToeWinner returns "x" or "o" when exactly one marker has three in a
// row (row, column or diagonal) and "draw" otherwise. The board must come
// from a finished 3x3 game; it is not validated.
func TicTacToeWinner(board [][]string) string {
	return problems.Winner(board)
}
