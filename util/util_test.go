package util

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-tsa/internal/testutil"
	"github.com/cwbudde/algo-tsa/series"
)

func newTestUtil(t *testing.T) (*Util, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(WithLogger(logger)), &buf
}

func add(a, b float64) float64 { return a + b }

func TestNewIgnoresNilLogger(t *testing.T) {
	u := New(WithLogger(nil), nil)
	require.NotNil(t, u.logger)
}

func TestApplyInPlace(t *testing.T) {
	u, _ := newTestUtil(t)
	v := testutil.Columns([][]float64{testutil.Noise(1, 16), testutil.Noise(2, 16)},
		series.WithStart(5), series.WithSampling(0.1))
	before := testutil.Snapshot[float64](v)

	u.Apply(math.Exp, v)

	want := make([][]float64, len(before))
	for i, row := range before {
		want[i] = make([]float64, len(row))
		for j, x := range row {
			want[i][j] = math.Exp(x)
		}
	}
	testutil.RequireNearlyEqual(t, v, want, 0)
	assert.Equal(t, 5.0, v.Start())
	assert.Equal(t, 0.1, v.Sampling())
}

func TestApplyTo(t *testing.T) {
	u, _ := newTestUtil(t)
	in := series.NewReal(2, 3, []float64{1, 2, 3, 4, 5, 6},
		series.WithStart(1), series.WithSampling(0.5), series.WithScale(3))
	out := series.NewReal(5, 1, []float64{9, 9, 9, 9, 9})

	u.ApplyTo(Square, in, out)

	testutil.RequireNearlyEqual(t, out, [][]float64{{1, 4, 9}, {16, 25, 36}}, 0)
	testutil.RequireMeta(t, out, in)
}

func TestApplyToSameView(t *testing.T) {
	u, _ := newTestUtil(t)
	v := series.NewReal(1, 3, []float64{-1, 2, -3})

	u.ApplyTo(math.Abs, v, v)

	assert.Equal(t, []float64{1, 2, 3}, v.RawData())
}

func TestApplyComplex(t *testing.T) {
	u, _ := newTestUtil(t)
	v := series.NewComplex(2, 1, []complex128{1 + 1i, 2 - 2i}, series.WithScale(4))

	u.ApplyComplex(cmplx.Conj, v)
	testutil.RequireComplexNearlyEqual(t, v, [][]complex128{{1 - 1i}, {2 + 2i}}, 0)
	assert.Equal(t, 4.0, v.Scale())

	out := series.NewComplex(0, 0, nil)
	u.ApplyComplexTo(func(z complex128) complex128 { return z * 1i }, v, out)
	testutil.RequireComplexNearlyEqual(t, out, [][]complex128{{1 + 1i}, {-2 + 2i}}, 1e-15)
	testutil.RequireMeta(t, out, v)
}

func TestBinOp(t *testing.T) {
	u, logs := newTestUtil(t)
	in1 := series.NewReal(2, 3, []float64{1, 2, 3, 4, 5, 6}, series.WithStart(2), series.WithScale(0.5))
	in2 := series.NewReal(2, 3, []float64{10, 20, 30, 40, 50, 60}, series.WithStart(7))
	out := series.NewReal(1, 1, nil)

	require.NoError(t, u.BinOp(add, in1, in2, out))

	testutil.RequireNearlyEqual(t, out, [][]float64{{11, 22, 33}, {44, 55, 66}}, 0)
	testutil.RequireMeta(t, out, in1)
	assert.Empty(t, logs.String())
}

func TestBinOpShapeMismatch(t *testing.T) {
	tests := []struct {
		name       string
		in1, in2   *series.Real
		wantDetail string
	}{
		{"rows differ", series.NewReal(2, 3, nil), series.NewReal(3, 3, nil), "2x3 vs 3x3"},
		{"cols differ", series.NewReal(2, 3, nil), series.NewReal(2, 2, nil), "2x3 vs 2x2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, logs := newTestUtil(t)
			out := series.NewReal(1, 1, []float64{42}, series.WithStart(9))

			err := u.BinOp(add, tc.in1, tc.in2, out)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch))
			assert.Contains(t, err.Error(), "Util.BinOp")
			assert.Contains(t, err.Error(), tc.wantDetail)

			assert.Equal(t, []float64{42}, out.RawData())
			assert.Equal(t, 9.0, out.Start())

			assert.Contains(t, logs.String(), "level=ERROR")
			assert.Contains(t, logs.String(), "op=Util.BinOp")
		})
	}
}

func TestBinOpOutputAliasesInput(t *testing.T) {
	u, _ := newTestUtil(t)
	in1 := series.NewReal(1, 2, []float64{1, 2})
	in2 := series.NewReal(1, 2, []float64{3, 4})

	require.NoError(t, u.BinOp(math.Max, in1, in2, in1))
	assert.Equal(t, []float64{3, 4}, in1.RawData())
}

func TestMulAndAdd(t *testing.T) {
	u, _ := newTestUtil(t)
	a := testutil.Columns([][]float64{testutil.Noise(3, 9), testutil.Noise(4, 9)}, series.WithSampling(0.25))
	b := testutil.Columns([][]float64{testutil.Noise(5, 9), testutil.Noise(6, 9)})

	wantMul := series.NewReal(0, 0, nil)
	require.NoError(t, u.BinOp(func(x, y float64) float64 { return x * y }, a, b, wantMul))
	gotMul := series.NewReal(0, 0, nil)
	require.NoError(t, u.Mul(a, b, gotMul))
	testutil.RequireNearlyEqual(t, gotMul, testutil.Snapshot[float64](wantMul), 1e-15)
	testutil.RequireMeta(t, gotMul, a)

	wantAdd := series.NewReal(0, 0, nil)
	require.NoError(t, u.BinOp(add, a, b, wantAdd))
	gotAdd := series.NewReal(0, 0, nil)
	require.NoError(t, u.Add(a, b, gotAdd))
	testutil.RequireNearlyEqual(t, gotAdd, testutil.Snapshot[float64](wantAdd), 1e-15)

	err := u.Mul(a, series.NewReal(9, 1, nil), gotMul)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "Util.Mul")
	err = u.Add(a, series.NewReal(8, 2, nil), gotAdd)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNorm(t *testing.T) {
	u, logs := newTestUtil(t)
	in := testutil.Columns([][]float64{{3, 4, 0}, {0, 0, 5}}, series.WithStart(1), series.WithSampling(2))
	out := series.NewReal(1, 2, []float64{100, 100})

	u.Norm(Square, in, out)

	testutil.RequireNearlyEqual(t, out, [][]float64{{5, 5}}, 1e-12)
	testutil.RequireMeta(t, out, in)
	assert.Empty(t, logs.String())
}

func TestNormResizesWithWarning(t *testing.T) {
	u, logs := newTestUtil(t)
	in := testutil.Columns([][]float64{{3, 4, 0}, {0, 0, 5}})
	out := series.NewReal(3, 3, nil)

	u.Norm(Square, in, out)

	testutil.RequireNearlyEqual(t, out, [][]float64{{5, 5}}, 1e-12)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "op=Util.Norm")
	assert.Contains(t, logs.String(), "from=3x3")
}

func TestNormIsGeneric(t *testing.T) {
	u, _ := newTestUtil(t)
	in := testutil.Columns([][]float64{{1, 2, 6}})
	out := series.NewReal(1, 1, nil)

	u.Norm(func(x float64) float64 { return x }, in, out)

	assert.InDelta(t, 3, out.At(0, 0), 1e-12)
}

func TestNormZeroRows(t *testing.T) {
	u, _ := newTestUtil(t)
	in := series.NewReal(0, 3, nil)
	out := series.NewReal(1, 3, []float64{7, 7, 7})

	u.Norm(Square, in, out)

	assert.Equal(t, []float64{0, 0, 0}, out.RawData())
}

func TestSumAccumulates(t *testing.T) {
	u, _ := newTestUtil(t)
	a := series.NewReal(2, 2, []float64{1, 2, 3, 4}, series.WithStart(1))
	b := series.NewReal(2, 2, []float64{10, 20, 30, 40}, series.WithStart(2), series.WithScale(5))
	acc := series.NewReal(0, 0, nil)

	u.Sum(acc, 1, a)
	u.Sum(acc, 1, b)

	testutil.RequireNearlyEqual(t, acc, [][]float64{{11, 22}, {33, 44}}, 0)
	testutil.RequireMeta(t, acc, b)
}

func TestSumScales(t *testing.T) {
	u, _ := newTestUtil(t)
	in := series.NewReal(1, 3, []float64{1, 2, 3})
	acc := series.NewReal(1, 3, []float64{1, 1, 1})

	u.Sum(acc, -0.5, in)

	assert.Equal(t, []float64{0.5, 0, -0.5}, acc.RawData())
}

func TestSumResizesAccumulator(t *testing.T) {
	u, _ := newTestUtil(t)
	in := series.NewReal(2, 1, []float64{1, 2})
	acc := series.NewReal(1, 1, []float64{5})

	u.Sum(acc, 2, in)

	assert.Equal(t, []float64{7, 4}, acc.RawData())
}

func TestEmptyViews(t *testing.T) {
	u, _ := newTestUtil(t)
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		in := series.NewReal(dims[0], dims[1], nil)
		out := series.NewReal(2, 2, nil)

		u.Apply(Square, in)
		u.ApplyTo(Square, in, out)
		testutil.RequireShape[float64](t, out, dims[0], dims[1])

		require.NoError(t, u.BinOp(add, in, in, out))
		testutil.RequireShape[float64](t, out, dims[0], dims[1])

		u.Sum(out, 1, in)
		testutil.RequireShape[float64](t, out, dims[0], dims[1])

		u.Norm(Square, in, out)
		testutil.RequireShape[float64](t, out, 1, dims[1])
		for _, v := range out.RawData() {
			assert.Equal(t, 0.0, v)
		}
	}
}

// strided is a view that does not expose a contiguous buffer.
type strided struct {
	*series.Real
}

func (strided) RawData() []float64 { return nil }

func TestNonContiguousViews(t *testing.T) {
	u, _ := newTestUtil(t)
	in1 := strided{series.NewReal(2, 2, []float64{1, 2, 3, 4})}
	in2 := strided{series.NewReal(2, 2, []float64{5, 6, 7, 8})}
	out := strided{series.NewReal(0, 0, nil)}

	require.NoError(t, u.Mul(in1, in2, out))
	testutil.RequireNearlyEqual(t, out, [][]float64{{5, 12}, {21, 32}}, 0)

	require.NoError(t, u.Add(in1, in2, out))
	testutil.RequireNearlyEqual(t, out, [][]float64{{6, 8}, {10, 12}}, 0)

	u.Sum(out, 1, in1)
	testutil.RequireNearlyEqual(t, out, [][]float64{{7, 10}, {13, 16}}, 0)

	u.Apply(Square, in1)
	testutil.RequireNearlyEqual(t, in1, [][]float64{{1, 4}, {9, 16}}, 0)
}
