package util

import (
	"log/slog"
	"math"

	"github.com/cwbudde/algo-tsa/series"
)

// Norm reduces every column of in to sqrt(sum_i f(in[i,j])) and stores it
// in out[0,j].
//
// out must be a 1 × cols row; any other shape is logged as a warning and
// out is resized before the reduction. out receives the metadata of in.
// Pass [Square] as f for the root of the sum of squares. A column with no
// rows yields 0.
func (u *Util) Norm(f func(float64) float64, in, out series.RealView) {
	rows, cols := in.Dims()
	if r, c := out.Dims(); r != 1 || c != cols {
		u.logger.Warn("resizing output view",
			slog.String("op", "Util.Norm"),
			slog.String("from", shape(r, c)),
			slog.String("to", shape(1, cols)),
		)
		out.Resize(1, cols)
	}
	series.CopyMeta(out, in)

	for j := 0; j < cols; j++ {
		var acc float64
		for i := 0; i < rows; i++ {
			acc += f(in.At(i, j))
		}
		out.Set(0, j, math.Sqrt(acc))
	}
}
