package tabular

import "gonum.org/v1/gonum/mat"

// NumericMatrix is a rectangular table of float64 values loaded from a
// parameter file. Every row has Cols() entries. Matrices are immutable after
// load.
type NumericMatrix struct {
	rows [][]float64
	cols int
}

// Rows returns the number of rows.
func (m *NumericMatrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m *NumericMatrix) Cols() int {
	return m.cols
}

// At returns the value at row i, column j. It panics if either index is out
// of range, like slice indexing.
func (m *NumericMatrix) At(i, j int) float64 {
	return m.rows[i][j]
}

// Scalar returns the single value of a 1x1 matrix. ok is false for any other
// shape.
func (m *NumericMatrix) Scalar() (v float64, ok bool) {
	if len(m.rows) != 1 || m.cols != 1 {
		return 0, false
	}
	return m.rows[0][0], true
}

// Dense returns a gonum copy of the matrix. Returns nil for an empty matrix,
// which gonum cannot represent.
func (m *NumericMatrix) Dense() *mat.Dense {
	if len(m.rows) == 0 || m.cols == 0 {
		return nil
	}
	data := make([]float64, 0, len(m.rows)*m.cols)
	for _, row := range m.rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(m.rows), m.cols, data)
}
