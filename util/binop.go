package util

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-tsa/series"
)

// BinOp stores f(in1[i,j], in2[i,j]) in out[i,j].
//
// in1 and in2 must have the same shape. Otherwise the mismatch is logged at
// error level and an error wrapping [ErrShapeMismatch] is returned with out
// left untouched. On success out is resized to the shared shape and
// receives the metadata of in1.
func (u *Util) BinOp(f func(a, b float64) float64, in1, in2, out series.RealView) error {
	rows, cols, err := u.sameShape("BinOp", in1, in2)
	if err != nil {
		return err
	}

	// out may alias an input; its shape then already matches and Resize
	// keeps the samples.
	prepare(out, in1, rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, f(in1.At(i, j), in2.At(i, j)))
		}
	}
	return nil
}

// Mul stores in1[i,j] * in2[i,j] in out[i,j] with the same shape and
// metadata rules as BinOp.
func (u *Util) Mul(in1, in2, out series.RealView) error {
	rows, cols, err := u.sameShape("Mul", in1, in2)
	if err != nil {
		return err
	}
	prepare(out, in1, rows, cols)

	dst, okd := series.Contiguous(out)
	a, oka := series.Contiguous(in1)
	b, okb := series.Contiguous(in2)
	if okd && oka && okb {
		vecmath.MulBlock(dst, a, b)
		return nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, in1.At(i, j)*in2.At(i, j))
		}
	}
	return nil
}

// Add stores in1[i,j] + in2[i,j] in out[i,j] with the same shape and
// metadata rules as BinOp.
func (u *Util) Add(in1, in2, out series.RealView) error {
	rows, cols, err := u.sameShape("Add", in1, in2)
	if err != nil {
		return err
	}
	prepare(out, in1, rows, cols)

	dst, okd := series.Contiguous(out)
	a, oka := series.Contiguous(in1)
	b, okb := series.Contiguous(in2)
	if okd && oka && okb {
		floats.AddTo(dst, a, b)
		return nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, in1.At(i, j)+in2.At(i, j))
		}
	}
	return nil
}
