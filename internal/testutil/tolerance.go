package testutil

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-tsa/series"
)

// RequireShape fails t unless v has the given dimensions.
func RequireShape[T series.Element](t *testing.T, v series.View[T], rows, cols int) {
	t.Helper()
	r, c := v.Dims()
	require.Equal(t, rows, r, "rows")
	require.Equal(t, cols, c, "cols")
}

// RequireMeta fails t unless got carries the metadata of want.
func RequireMeta(t *testing.T, got, want series.Metadata) {
	t.Helper()
	require.Equal(t, want.Start(), got.Start(), "start")
	require.Equal(t, want.Sampling(), got.Sampling(), "sampling")
	require.Equal(t, want.Scale(), got.Scale(), "scale")
}

// RequireNearlyEqual fails t if got and want differ in shape or if any
// sample pair differs by more than eps. want is given row by row.
func RequireNearlyEqual(t *testing.T, got series.RealView, want [][]float64, eps float64) {
	t.Helper()
	cols := 0
	if len(want) > 0 {
		cols = len(want[0])
	}
	RequireShape(t, got, len(want), cols)
	for i, row := range want {
		for j, w := range row {
			require.InDeltaf(t, w, got.At(i, j), eps, "sample (%d,%d)", i, j)
		}
	}
}

// RequireComplexNearlyEqual is RequireNearlyEqual for complex views.
func RequireComplexNearlyEqual(t *testing.T, got series.ComplexView, want [][]complex128, eps float64) {
	t.Helper()
	cols := 0
	if len(want) > 0 {
		cols = len(want[0])
	}
	RequireShape(t, got, len(want), cols)
	for i, row := range want {
		for j, w := range row {
			g := got.At(i, j)
			if cmplx.Abs(g-w) > eps {
				require.Failf(t, "sample mismatch", "(%d,%d): got %v, want %v (eps %v)", i, j, g, w, eps)
			}
		}
	}
}

// Snapshot returns a copy of the samples of v, row by row.
func Snapshot[T series.Element](v series.View[T]) [][]T {
	rows, cols := v.Dims()
	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
		for j := range out[i] {
			out[i][j] = v.At(i, j)
		}
	}
	return out
}
