// Package spectrum moves series views between the time and frequency
// domain.
//
// Forward and Inverse transform every column of a view with an FFT. The
// frequency-domain view has one row per bin and a sampling interval equal to
// the bin spacing. Magnitude and Power reduce a complex view to a real one of
// the same shape.
package spectrum
