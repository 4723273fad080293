package series

import "fmt"

// Series is a dense row-major view. The zero value is an empty 0×0 view
// with zero metadata; use [New], [NewReal] or [NewComplex] for defaults.
type Series[T Element] struct {
	Meta

	rows int
	cols int
	data []T
}

// Real is a view over float64 samples.
type Real = Series[float64]

// Complex is a view over complex128 samples.
type Complex = Series[complex128]

// New returns a rows × cols view. If data is nil a zero-filled buffer is
// allocated, otherwise data is used as the row-major backing slice and must
// have length rows*cols. New panics on negative dimensions or a data length
// mismatch.
func New[T Element](rows, cols int, data []T, opts ...Option) *Series[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("series: negative dimension %dx%d", rows, cols))
	}
	if data == nil {
		data = make([]T, rows*cols)
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("series: data length %d does not match %dx%d", len(data), rows, cols))
	}
	return &Series[T]{
		Meta: ApplyOptions(opts...),
		rows: rows,
		cols: cols,
		data: data,
	}
}

// NewReal returns a rows × cols float64 view. See [New].
func NewReal(rows, cols int, data []float64, opts ...Option) *Real {
	return New(rows, cols, data, opts...)
}

// NewComplex returns a rows × cols complex128 view. See [New].
func NewComplex(rows, cols int, data []complex128, opts ...Option) *Complex {
	return New(rows, cols, data, opts...)
}

// Dims returns the number of rows and columns.
func (s *Series[T]) Dims() (rows, cols int) {
	return s.rows, s.cols
}

// At returns the sample at row i, column j.
func (s *Series[T]) At(i, j int) T {
	s.check(i, j)
	return s.data[i*s.cols+j]
}

// Set stores v at row i, column j.
func (s *Series[T]) Set(i, j int, v T) {
	s.check(i, j)
	s.data[i*s.cols+j] = v
}

// RawData returns the row-major backing slice.
// Mutations are visible through the view and vice versa.
func (s *Series[T]) RawData() []T {
	return s.data
}

// Row returns row i as a slice sharing the backing buffer.
func (s *Series[T]) Row(i int) []T {
	if i < 0 || i >= s.rows {
		panic(fmt.Sprintf("series: row %d out of range [0,%d)", i, s.rows))
	}
	return s.data[i*s.cols : (i+1)*s.cols : (i+1)*s.cols]
}

// Col returns a copy of column j.
func (s *Series[T]) Col(j int) []T {
	if j < 0 || j >= s.cols {
		panic(fmt.Sprintf("series: column %d out of range [0,%d)", j, s.cols))
	}
	out := make([]T, s.rows)
	for i := range out {
		out[i] = s.data[i*s.cols+j]
	}
	return out
}

// Resize changes the shape to rows × cols.
//
// Resizing to the current shape is a no-op and keeps all samples. Otherwise
// the overlapping top-left block is preserved and new cells are zero.
// Resize panics on negative dimensions.
func (s *Series[T]) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("series: negative dimension %dx%d", rows, cols))
	}
	s.data = resize(s.data, s.rows, s.cols, rows, cols)
	s.rows, s.cols = rows, cols
}

// Zero sets all samples to 0.
func (s *Series[T]) Zero() {
	clear(s.data)
}

func (s *Series[T]) check(i, j int) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic(fmt.Sprintf("series: index (%d,%d) out of range %dx%d", i, j, s.rows, s.cols))
	}
}

// resize returns a row-major buffer of newRows × newCols holding the
// overlapping block of data, reusing its capacity when only the row count
// changes.
func resize[T Element](data []T, rows, cols, newRows, newCols int) []T {
	if rows == newRows && cols == newCols {
		return data
	}

	n := newRows * newCols
	if cols == newCols {
		oldLen := len(data)
		if n <= cap(data) {
			data = data[:n]
		} else {
			grown := make([]T, n)
			copy(grown, data)
			data = grown
		}
		// Zero any newly exposed elements that may hold stale data from
		// previous use of the backing array.
		if n > oldLen {
			clear(data[oldLen:])
		}
		return data
	}

	out := make([]T, n)
	keepRows := min(rows, newRows)
	keepCols := min(cols, newCols)
	for i := 0; i < keepRows; i++ {
		copy(out[i*newCols:i*newCols+keepCols], data[i*cols:i*cols+keepCols])
	}
	return out
}
