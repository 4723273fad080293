package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tsa/series"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude stores |in[i,j]| in out[i,j]. out is resized to the shape of in
// and receives its metadata.
func Magnitude(in series.ComplexView, out series.RealView) {
	reduce(in, out, vecmath.Magnitude, cmplx.Abs)
}

// Power stores |in[i,j]|^2 in out[i,j]. out is resized to the shape of in
// and receives its metadata.
func Power(in series.ComplexView, out series.RealView) {
	reduce(in, out, vecmath.Power, func(z complex128) float64 {
		return real(z)*real(z) + imag(z)*imag(z)
	})
}

func reduce(in series.ComplexView, out series.RealView,
	kernel func(dst, re, im []float64), scalar func(complex128) float64,
) {
	rows, cols := in.Dims()
	out.Resize(rows, cols)
	series.CopyMeta(out, in)

	src, oks := series.Contiguous(in)
	dst, okd := series.Contiguous(out)
	if !oks || !okd {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.Set(i, j, scalar(in.At(i, j)))
			}
		}
		return
	}
	if len(src) == 0 {
		return
	}

	re, im, buf := getScratch(len(src))
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}

	kernel(dst, re, im)
	putScratch(buf)
}
