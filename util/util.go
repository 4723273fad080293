package util

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-tsa/series"
)

// ErrShapeMismatch is returned when two input views differ in shape.
var ErrShapeMismatch = errors.New("wrong size for input views")

// Util applies elementwise and reduction operations to series views.
// A Util holds no per-call state and may be shared.
type Util struct {
	logger *slog.Logger
}

// Option configures a Util.
type Option func(*Util)

// WithLogger sets the logger receiving diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Util) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New returns a Util. Without [WithLogger] diagnostics go to slog.Default().
func New(opts ...Option) *Util {
	u := &Util{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	return u
}

// Square returns x*x. Passed to Norm it yields the root of the sum of
// squares of every column.
func Square(x float64) float64 {
	return x * x
}

// sameShape reports a mismatch between in1 and in2 through the logger and
// the returned error, which names the operation op.
func (u *Util) sameShape(op string, in1, in2 series.RealView) (rows, cols int, err error) {
	r1, c1 := in1.Dims()
	r2, c2 := in2.Dims()
	if r1 != r2 || c1 != c2 {
		u.logger.Error(ErrShapeMismatch.Error(),
			slog.String("op", "Util."+op),
			slog.String("in1", shape(r1, c1)),
			slog.String("in2", shape(r2, c2)),
		)
		return 0, 0, fmt.Errorf("Util.%s: %w: %s vs %s", op, ErrShapeMismatch, shape(r1, c1), shape(r2, c2))
	}
	return r1, c1, nil
}

// prepare resizes out to rows × cols and copies the metadata of src.
func prepare[T series.Element](out series.View[T], src series.Metadata, rows, cols int) {
	out.Resize(rows, cols)
	series.CopyMeta(out, src)
}

func shape(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
