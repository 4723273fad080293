package series

// Meta holds the time-axis and amplitude metadata of a view.
type Meta struct {
	start    float64
	sampling float64
	scale    float64
}

// Option mutates the metadata of a newly created view.
type Option func(*Meta)

// DefaultMeta returns start 0, unit sampling and unit scale.
func DefaultMeta() Meta {
	return Meta{
		start:    0,
		sampling: 1,
		scale:    1,
	}
}

// WithStart sets the time of the first row.
func WithStart(start float64) Option {
	return func(m *Meta) {
		m.start = start
	}
}

// WithSampling sets the interval between consecutive rows.
// Non-positive values are ignored.
func WithSampling(sampling float64) Option {
	return func(m *Meta) {
		if sampling > 0 {
			m.sampling = sampling
		}
	}
}

// WithScale sets the amplitude scale factor.
func WithScale(scale float64) Option {
	return func(m *Meta) {
		m.scale = scale
	}
}

// ApplyOptions applies zero or more options to the default metadata.
func ApplyOptions(opts ...Option) Meta {
	m := DefaultMeta()
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Start returns the time of the first row.
func (m *Meta) Start() float64 { return m.start }

// Sampling returns the interval between consecutive rows.
func (m *Meta) Sampling() float64 { return m.sampling }

// Scale returns the amplitude scale factor.
func (m *Meta) Scale() float64 { return m.scale }

// SetStart sets the time of the first row.
func (m *Meta) SetStart(v float64) { m.start = v }

// SetSampling sets the interval between consecutive rows.
func (m *Meta) SetSampling(v float64) { m.sampling = v }

// SetScale sets the amplitude scale factor.
func (m *Meta) SetScale(v float64) { m.scale = v }

// TimeAt returns the time of row i.
func (m *Meta) TimeAt(i int) float64 {
	return m.start + float64(i)*m.sampling
}

// CopyMeta copies start, sampling and scale from src to dst.
func CopyMeta(dst MetadataSetter, src Metadata) {
	dst.SetStart(src.Start())
	dst.SetSampling(src.Sampling())
	dst.SetScale(src.Scale())
}
