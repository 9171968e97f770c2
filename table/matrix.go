package table

import (
	"fmt"
	"math"
)

// Missing returns the canonical missing-value marker (NaN).
// Store it in a cell to mean "absent / not observed".
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// matrixErrorf wraps an underlying sentinel with Matrix method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Matrix is a dense, row-major float64 matrix with row and column labels.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A NaN cell is the missing-value marker; everything else is a plain value.
type Matrix struct {
	rows []string  // row labels, length r
	cols []string  // column labels, length c
	r, c int       // cached dimensions
	data []float64 // flat backing storage, length == r*c
}

// NewMatrix builds an r×c labeled matrix from per-row slices.
// Stage 1 (Validate): r>0, c>0, rectangular cells, unique non-empty labels.
// Stage 2 (Prepare): allocate flat backing slice and copy every row.
// Stage 3 (Finalize): return the Matrix; inputs are never aliased.
// Complexity: O(r*c) time and memory.
func NewMatrix(rowLabels, colLabels []string, cells [][]float64) (*Matrix, error) {
	r, c := len(rowLabels), len(colLabels)
	// Validate dimensions: an empty axis is not a usable table.
	if r == 0 || c == 0 {
		return nil, matrixErrorf("New", ErrBadShape)
	}
	// Validate label sets.
	if err := validateLabels(rowLabels); err != nil {
		return nil, matrixErrorf("New", err)
	}
	if err := validateLabels(colLabels); err != nil {
		return nil, matrixErrorf("New", err)
	}
	// Validate rectangularity: one slice per row, each of length c.
	if len(cells) != r {
		return nil, matrixErrorf("New", ErrBadShape)
	}

	data := make([]float64, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(cells[i]) != c {
			return nil, matrixErrorf("New", ErrBadShape)
		}
		copy(data[i*c:(i+1)*c], cells[i])
	}

	return &Matrix{
		rows: append([]string(nil), rowLabels...),
		cols: append([]string(nil), colLabels...),
		r:    r,
		c:    c,
		data: data,
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// RowLabels returns a copy of the row labels in storage order.
func (m *Matrix) RowLabels() []string { return append([]string(nil), m.rows...) }

// ColLabels returns a copy of the column labels in storage order.
func (m *Matrix) ColLabels() []string { return append([]string(nil), m.cols...) }

// At retrieves the element at (row, col), NaN included.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i in column order.
// Complexity: O(c) time and memory.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowIndex resolves a row label to its position, or ErrUnknownLabel.
// Complexity: O(r); tables here are small and built once.
func (m *Matrix) RowIndex(label string) (int, error) {
	for i, l := range m.rows {
		if l == label {
			return i, nil
		}
	}

	return 0, matrixErrorf("RowIndex", ErrUnknownLabel)
}

// String implements fmt.Stringer for easy debugging.
func (m *Matrix) String() string {
	s := fmt.Sprintf("Matrix %dx%d\n", m.r, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		s += m.rows[i] + ": ["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

// validateLabels enforces non-empty, unique labels.
// Complexity: O(n) time and O(n) extra space.
func validateLabels(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			return ErrEmptyLabel
		}
		if _, dup := seen[l]; dup {
			return ErrDuplicateLabel
		}
		seen[l] = struct{}{}
	}

	return nil
}
