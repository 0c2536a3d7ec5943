package gf

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major matrix with entries in a single [Field].
// All operations return new matrices; a Matrix is never mutated in place
// except through [Matrix.Set].
type Matrix struct {
	field *Field
	rows  int
	cols  int
	data  []uint64
}

// NewMatrix allocates a zero rows x cols matrix over f.
func NewMatrix(f *Field, rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Errorf("invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix{
		field: f,
		rows:  rows,
		cols:  cols,
		data:  make([]uint64, rows*cols),
	}
}

// Identity returns the n x n identity matrix over f.
func Identity(f *Field, n int) *Matrix {
	m := NewMatrix(f, n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FromInts builds a matrix over f from a rectangular integer matrix,
// promoting every entry into the prime subfield with [Field.FromInt].
// Panics on empty or ragged input.
func FromInts(f *Field, entries [][]int) *Matrix {
	if len(entries) == 0 || len(entries[0]) == 0 {
		panic(fmt.Errorf("empty matrix"))
	}
	m := NewMatrix(f, len(entries), len(entries[0]))
	for i, row := range entries {
		if len(row) != m.cols {
			panic(fmt.Errorf("ragged matrix: row %d has %d entries, want %d", i, len(row), m.cols))
		}
		for j, v := range row {
			m.data[i*m.cols+j] = f.FromInt(v)
		}
	}
	return m
}

// Field returns the base field of the matrix.
func (m *Matrix) Field() *Field {
	return m.field
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) uint64 {
	return m.data[i*m.cols+j]
}

// Set writes the element code v at row i, column j.
func (m *Matrix) Set(i, j int, v uint64) {
	m.field.check(v)
	m.data[i*m.cols+j] = v
}

// Clone returns a deep copy of the receiver.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.field, m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.checkSameShape(other)
	out := NewMatrix(m.field, m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.field.Add(m.data[i], other.data[i])
	}
	return out
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	m.checkSameShape(other)
	out := NewMatrix(m.field, m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.field.Sub(m.data[i], other.data[i])
	}
	return out
}

// ScalarMul returns c * m for a field element c.
func (m *Matrix) ScalarMul(c uint64) *Matrix {
	out := NewMatrix(m.field, m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.field.Mul(c, m.data[i])
	}
	return out
}

// Mul returns the matrix product m * other.
// Panics if the inner dimensions or fields do not match.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	m.checkSameField(other)
	if m.cols != other.rows {
		panic(fmt.Errorf("invalid operand dimensions: %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	f := m.field
	out := NewMatrix(f, m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] = f.Add(out.data[i*out.cols+j], f.Mul(a, other.data[k*other.cols+j]))
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v for a column vector v.
func (m *Matrix) MulVec(v []uint64) []uint64 {
	if m.cols != len(v) {
		panic(fmt.Errorf("invalid operand dimensions: %dx%d * vector of length %d", m.rows, m.cols, len(v)))
	}
	f := m.field
	out := make([]uint64, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc uint64
		for j := 0; j < m.cols; j++ {
			acc = f.Add(acc, f.Mul(m.data[i*m.cols+j], v[j]))
		}
		out[i] = acc
	}
	return out
}

// Kron returns the Kronecker product of m and other.
func (m *Matrix) Kron(other *Matrix) *Matrix {
	m.checkSameField(other)
	f := m.field
	out := NewMatrix(f, m.rows*other.rows, m.cols*other.cols)
	for i1 := 0; i1 < m.rows; i1++ {
		for j1 := 0; j1 < m.cols; j1++ {
			a := m.data[i1*m.cols+j1]
			if a == 0 {
				continue
			}
			for i2 := 0; i2 < other.rows; i2++ {
				for j2 := 0; j2 < other.cols; j2++ {
					out.Set(i1*other.rows+i2, j1*other.cols+j2, f.Mul(a, other.data[i2*other.cols+j2]))
				}
			}
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.field, m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Det returns the determinant of a square matrix, by Gaussian elimination.
func (m *Matrix) Det() uint64 {
	if m.rows != m.cols {
		panic(fmt.Errorf("determinant of non-square %dx%d matrix", m.rows, m.cols))
	}

	f := m.field
	a := m.Clone()
	n := m.rows
	det := uint64(1)

	for col := 0; col < n; col++ {

		pivot := -1
		for row := col; row < n; row++ {
			if a.data[row*n+col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return 0
		}

		if pivot != col {
			for j := 0; j < n; j++ {
				a.data[pivot*n+j], a.data[col*n+j] = a.data[col*n+j], a.data[pivot*n+j]
			}
			det = f.Neg(det)
		}

		p := a.data[col*n+col]
		det = f.Mul(det, p)
		pInv := f.Inv(p)

		for row := col + 1; row < n; row++ {
			factor := f.Mul(a.data[row*n+col], pInv)
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[row*n+j] = f.Sub(a.data[row*n+j], f.Mul(factor, a.data[col*n+j]))
			}
		}
	}

	return det
}

// IsZero returns whether every entry is zero.
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether the two matrices have the same field order, shape
// and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !m.field.Equal(other.field) || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (m *Matrix) checkSameShape(other *Matrix) {
	m.checkSameField(other)
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Errorf("mismatched shapes %dx%d and %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
}

func (m *Matrix) checkSameField(other *Matrix) {
	if !m.field.Equal(other.field) {
		panic(fmt.Errorf("mismatched fields %s and %s", m.field, other.field))
	}
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
