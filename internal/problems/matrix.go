package problems

// Board markers and the draw outcome.
const (
	MarkerX = "x"
	MarkerO = "o"
	Draw    = "draw"
)

const boardSize = 3

// Transpose returns a new cols x rows matrix with out[j][i] == matrix[i][j].
// matrix must be non-empty and rectangular; it is never modified.
func Transpose[T any](matrix [][]T) ([][]T, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, NewTypeError(FuncTranspose, "argument should be a non-empty 2D array")
	}
	cols := len(matrix[0])
	for i, row := range matrix {
		if len(row) != cols {
			return nil, NewTypeError(FuncTranspose, "row %d has %d elements, want %d", i, len(row), cols)
		}
	}

	out := make([][]T, cols)
	for j := range out {
		out[j] = make([]T, len(matrix))
		for i, row := range matrix {
			out[j][i] = row[j]
		}
	}
	return out, nil
}

// Winner returns the marker of a finished 3x3 game, or Draw when neither
// or both markers hold a line. The board is trusted; one that is not 3x3
// is reported as a Draw.
func Winner(board [][]string) string {
	columns, err := Transpose(board)
	if err != nil || len(board) != boardSize || len(columns) != boardSize {
		return Draw
	}

	x := hasLine(board, columns, MarkerX)
	o := hasLine(board, columns, MarkerO)
	switch {
	case x && !o:
		return MarkerX
	case o && !x:
		return MarkerO
	default:
		return Draw
	}
}

// hasLine checks rows, columns (the rows of the transposed board) and both
// diagonals for three of marker.
func hasLine(rows, columns [][]string, marker string) bool {
	for i := 0; i < boardSize; i++ {
		if fullOf(rows[i], marker) || fullOf(columns[i], marker) {
			return true
		}
	}
	diag, anti := true, true
	for i := 0; i < boardSize; i++ {
		diag = diag && rows[i][i] == marker
		anti = anti && rows[i][boardSize-1-i] == marker
	}
	return diag || anti
}

func fullOf(line []string, marker string) bool {
	for _, cell := range line {
		if cell != marker {
			return false
		}
	}
	return true
}
