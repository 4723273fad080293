package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-tsa/series"
)

// ErrLength is returned by Inverse when the row count of its input is not
// a power of two.
var ErrLength = errors.New("spectrum: row count is not a power of two")

// Forward transforms every column of in into out.
//
// Columns are zero-padded to the next power of two n and out is resized to
// n × cols. out starts at 0, its sampling is the bin spacing
// 1/(n*in.Sampling()) and it keeps the scale of in. A view without rows
// yields an output without rows.
func Forward(in series.RealView, out series.ComplexView) error {
	rows, cols := in.Dims()
	if rows == 0 {
		out.Resize(0, cols)
		setFrequencyMeta(out, in, 0)
		return nil
	}

	n := nextPowerOf2(rows)
	plan, err := newPlan(n)
	if err != nil {
		return fmt.Errorf("spectrum: forward plan of size %d: %w", n, err)
	}

	out.Resize(n, cols)
	buf := make([]complex128, n)
	for j := 0; j < cols; j++ {
		clear(buf)
		for i := 0; i < rows; i++ {
			buf[i] = complex(in.At(i, j), 0)
		}

		if plan != nil {
			if err := plan.Forward(buf, buf); err != nil {
				return fmt.Errorf("spectrum: forward FFT of column %d: %w", j, err)
			}
		}

		for i, v := range buf {
			out.Set(i, j, v)
		}
	}

	setFrequencyMeta(out, in, n)
	return nil
}

// Inverse transforms every column of in back into out, keeping the real
// part.
//
// The row count n of in must be a power of two. out is resized to n × cols,
// starts at 0, has sampling 1/(n*in.Sampling()) and keeps the scale of in.
func Inverse(in series.ComplexView, out series.RealView) error {
	rows, cols := in.Dims()
	if rows == 0 {
		out.Resize(0, cols)
		setFrequencyMeta(out, in, 0)
		return nil
	}
	if rows&(rows-1) != 0 {
		return fmt.Errorf("%w: %d", ErrLength, rows)
	}

	plan, err := newPlan(rows)
	if err != nil {
		return fmt.Errorf("spectrum: inverse plan of size %d: %w", rows, err)
	}

	out.Resize(rows, cols)
	buf := make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := range buf {
			buf[i] = in.At(i, j)
		}

		if plan != nil {
			if err := plan.Inverse(buf, buf); err != nil {
				return fmt.Errorf("spectrum: inverse FFT of column %d: %w", j, err)
			}
		}

		for i, v := range buf {
			out.Set(i, j, real(v))
		}
	}

	setFrequencyMeta(out, in, rows)
	return nil
}

// setFrequencyMeta sets the metadata of the transform of src with n bins.
// The sampling of the result is left at 0 when it is undefined.
func setFrequencyMeta(dst series.MetadataSetter, src series.Metadata, n int) {
	dst.SetStart(0)
	dst.SetScale(src.Scale())

	sampling := 0.0
	if n > 0 && src.Sampling() > 0 {
		sampling = 1 / (float64(n) * src.Sampling())
	}
	dst.SetSampling(sampling)
}

// newPlan returns a plan for n points, or nil for the single-point identity
// transform.
func newPlan(n int) (*algofft.Plan[complex128], error) {
	if n == 1 {
		return nil, nil
	}
	return algofft.NewPlan64(n)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
