package util

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-tsa/series"
)

// Sum adds scale*in[i,j] to out[i,j].
//
// out is resized to the shape of in and receives its metadata. Resizing to
// an unchanged shape keeps the samples of out, so repeated calls with
// equally shaped inputs accumulate.
func (u *Util) Sum(out series.RealView, scale float64, in series.RealView) {
	rows, cols := in.Dims()
	prepare(out, in, rows, cols)

	dst, okd := series.Contiguous(out)
	src, oks := series.Contiguous(in)
	if okd && oks {
		floats.AddScaled(dst, scale, src)
		return
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, out.At(i, j)+scale*in.At(i, j))
		}
	}
}
