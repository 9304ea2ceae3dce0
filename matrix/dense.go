// SPDX-License-Identifier: MIT
// Dense is a concrete row-major matrix storing elements in a flat slice
// for cache friendliness.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c Dense matrix with every element set to v.
// v must be finite.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNaNInf
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var k int
	for k = range m.data {
		m.data[k] = v
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// AddAt increments the element at (row, col) by delta.
// The stored value is left unchanged if the sum would not be finite.
// Complexity: O(1).
func (m *Dense) AddAt(row, col int, delta float64) error {
	idx, err := m.indexOf("AddAt", row, col)
	if err != nil {
		return err
	}

	var sum = m.data[idx] + delta
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return denseErrorf("AddAt", row, col, ErrNaNInf)
	}
	m.data[idx] = sum

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(row int) ([]float64, error) {
	start, err := m.indexOf("Row", row, 0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.data[start:start+m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix. Clone of nil is nil.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// MinMax returns the smallest and largest stored element.
// Complexity: O(r*c).
func (m *Dense) MinMax() (lo, hi float64) {
	if m == nil || len(m.data) == 0 {
		return 0, 0
	}
	lo, hi = m.data[0], m.data[0]

	var v float64
	for _, v = range m.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Equal reports whether m and o have the same shape and identical elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
