package problems

import (
	"math"
	"strconv"
)

// Function names, as they appear in errors and in the function table.
const (
	FuncSum       = "sum"
	FuncCentury   = "century"
	FuncColor     = "color"
	FuncFibonacci = "fibonacci"
	FuncTranspose = "transpose"
	FuncBase      = "base"
	FuncPhone     = "phone"
	FuncSmiles    = "smiles"
	FuncTicTacToe = "tictactoe"
)

// Radix bounds accepted by ToBase.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Sum returns a+b, or a range error when the sum overflows int.
func Sum(a, b int) (int, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, NewRangeError(FuncSum, "%d + %d overflows int", a, b)
	}
	return s, nil
}

// Century returns the century containing year, ceil(year / 100).
// Year 0 belongs to century 0.
func Century(year int) (int, error) {
	if year < 0 {
		return 0, NewRangeError(FuncCentury, "year should be a non-negative integer, got %d", year)
	}
	c := year / 100
	if year%100 != 0 {
		c++
	}
	return c, nil
}

// Fibonacci returns the n-th element of the sequence 1, 2, 3, 5, 8, ...
// (F(1)=1, F(2)=2, F(n)=F(n-1)+F(n-2)). It iterates rather than recurses.
func Fibonacci(n int) (int, error) {
	if n < 1 {
		return 0, NewRangeError(FuncFibonacci, "index should be a positive integer, got %d", n)
	}
	// prev starts at the implied F(0)=1.
	prev, curr := 1, 1
	for i := 2; i <= n; i++ {
		if curr > math.MaxInt-prev {
			return 0, NewRangeError(FuncFibonacci, "F(%d) overflows int", n)
		}
		prev, curr = curr, prev+curr
	}
	return curr, nil
}

// ToBase formats n in the given radix using lowercase digits.
// Negative values keep a leading minus sign.
func ToBase(n, radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", NewRangeError(FuncBase, "radix should be between %d and %d, got %d", MinRadix, MaxRadix, radix)
	}
	return strconv.FormatInt(int64(n), radix), nil
}
