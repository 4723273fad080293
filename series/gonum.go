package series

import "gonum.org/v1/gonum/mat"

// Dense returns a *mat.Dense sharing the backing buffer of s.
// A zero-sized view yields an empty matrix. The returned matrix is only
// valid until the next Resize of s that changes its shape.
func Dense(s *Real) *mat.Dense {
	if s.rows == 0 || s.cols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(s.rows, s.cols, s.data)
}

// CDense returns a *mat.CDense sharing the backing buffer of s.
// A zero-sized view yields an empty matrix.
func CDense(s *Complex) *mat.CDense {
	if s.rows == 0 || s.cols == 0 {
		return &mat.CDense{}
	}
	return mat.NewCDense(s.rows, s.cols, s.data)
}

// RealFromMatrix copies m into a new view.
func RealFromMatrix(m mat.Matrix, opts ...Option) *Real {
	r, c := m.Dims()
	s := New[float64](r, c, nil, opts...)
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(s.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return s
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s.data[i*c+j] = m.At(i, j)
		}
	}
	return s
}

// ComplexFromMatrix copies m into a new view.
func ComplexFromMatrix(m mat.CMatrix, opts ...Option) *Complex {
	r, c := m.Dims()
	s := New[complex128](r, c, nil, opts...)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s.data[i*c+j] = m.At(i, j)
		}
	}
	return s
}
