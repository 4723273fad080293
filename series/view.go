package series

// Element is the set of sample types a view can hold.
type Element interface {
	float64 | complex128
}

// Metadata reads the time-axis and amplitude metadata of a view.
type Metadata interface {
	Start() float64
	Sampling() float64
	Scale() float64
}

// MetadataSetter writes the time-axis and amplitude metadata of a view.
type MetadataSetter interface {
	SetStart(v float64)
	SetSampling(v float64)
	SetScale(v float64)
}

// View is a mutable rows × columns buffer of samples with metadata.
//
// RawData returns the row-major backing slice. Implementations that are not
// backed by a single contiguous slice return a slice whose length differs
// from rows*cols (nil is fine); callers then fall back to At and Set.
type View[T Element] interface {
	Metadata
	MetadataSetter

	Dims() (rows, cols int)
	At(i, j int) T
	Set(i, j int, v T)
	Resize(rows, cols int)
	RawData() []T
}

// RealView is a view over float64 samples.
type RealView = View[float64]

// ComplexView is a view over complex128 samples.
type ComplexView = View[complex128]

// Contiguous returns the row-major samples of v and true when v exposes a
// backing slice of exactly rows*cols elements.
func Contiguous[T Element](v View[T]) ([]T, bool) {
	r, c := v.Dims()
	data := v.RawData()
	if len(data) != r*c {
		return nil, false
	}
	return data, true
}
