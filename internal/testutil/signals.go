// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-tsa/series"
)

// Sine returns n samples of a unit-amplitude sine completing cycles full
// periods over the n samples.
func Sine(cycles float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * cycles / float64(n)
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

// Noise returns n samples of uniform noise in [-1, 1) from a fixed seed.
func Noise(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// Columns assembles equally long columns into a rows × len(cols) view.
// It panics when the columns differ in length.
func Columns(cols [][]float64, opts ...series.Option) *series.Real {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	s := series.NewReal(rows, len(cols), nil, opts...)
	for j, col := range cols {
		if len(col) != rows {
			panic("testutil: columns differ in length")
		}
		for i, v := range col {
			s.Set(i, j, v)
		}
	}
	return s
}
