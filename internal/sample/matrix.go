package sample

import "fmt"

// Matrix is a row-major draws × columns buffer of float64 samples.
// Row and Tail return views into the same backing slice with no copying.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// NewMatrix creates a matrix over data, which must hold exactly rows*cols
// values in row-major order.
func NewMatrix(data []float64, rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%w: negative dimensions %d×%d", ErrInvalidChain, rows, cols)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: buffer holds %d values, want %d×%d = %d",
			ErrInvalidChain, len(data), rows, cols, rows*cols)
	}
	return Matrix{data: data, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows (draws).
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	return m.cols
}

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Row returns row i as a zero-copy slice of length Cols.
func (m Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Tail returns the zero-copy sub-matrix of rows [from, Rows).
func (m Matrix) Tail(from int) Matrix {
	return Matrix{
		data: m.data[from*m.cols:],
		rows: m.rows - from,
		cols: m.cols,
	}
}

// Data returns the backing slice in row-major order.
func (m Matrix) Data() []float64 {
	return m.data
}
