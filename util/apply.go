package util

import "github.com/cwbudde/algo-tsa/series"

// Apply replaces every sample of v with f(sample).
// The shape and metadata of v are left unchanged.
func (u *Util) Apply(f func(float64) float64, v series.RealView) {
	applyInPlace(f, v)
}

// ApplyTo resizes out to the shape of in, copies the metadata of in and
// stores f(in[i,j]) in out[i,j]. Prior contents of out are discarded.
// in and out may be the same view.
func (u *Util) ApplyTo(f func(float64) float64, in, out series.RealView) {
	applyTo(f, in, out)
}

// ApplyComplex is Apply for complex views.
func (u *Util) ApplyComplex(f func(complex128) complex128, v series.ComplexView) {
	applyInPlace(f, v)
}

// ApplyComplexTo is ApplyTo for complex views.
func (u *Util) ApplyComplexTo(f func(complex128) complex128, in, out series.ComplexView) {
	applyTo(f, in, out)
}

func applyInPlace[T series.Element](f func(T) T, v series.View[T]) {
	if data, ok := series.Contiguous(v); ok {
		for i, x := range data {
			data[i] = f(x)
		}
		return
	}

	rows, cols := v.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v.Set(i, j, f(v.At(i, j)))
		}
	}
}

func applyTo[T series.Element](f func(T) T, in, out series.View[T]) {
	rows, cols := in.Dims()
	prepare(out, in, rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, f(in.At(i, j)))
		}
	}
}
