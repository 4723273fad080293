// Package util provides elementwise and reduction operations over series
// views.
//
// Unary functions are applied in place or into an output view, binary
// functions combine two equally shaped views, Norm reduces every column to
// sqrt(sum f(x)) and Sum accumulates a scaled view into an accumulator.
// Output views are resized to the required shape and receive the start,
// sampling and scale metadata of the input they are computed from.
//
// Diagnostics are written to the [log/slog] logger injected with
// [WithLogger]. Only shape problems are reported: BinOp logs at error level
// before returning [ErrShapeMismatch] and Norm logs a warning when it has to
// resize its output.
package util
