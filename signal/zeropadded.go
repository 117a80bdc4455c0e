package signal

// ZeroPadded models an infinite causal signal backed by a finite run of
// samples. Indices inside [0, Len()) return the stored sample; every other
// integer index reads as exactly zero.
type ZeroPadded struct {
	values []float64
}

// NewZeroPadded creates a signal from the given samples. The slice is copied,
// so later changes to it do not affect the signal. An empty or nil slice
// yields the all-zero signal.
func NewZeroPadded(values []float64) *ZeroPadded {
	s := &ZeroPadded{values: make([]float64, len(values))}
	copy(s.values, values)

	return s
}

// Len returns the number of stored samples (the finite support size).
func (s *ZeroPadded) Len() int {
	return len(s.values)
}

// At returns the sample at index i. It is total over all integers: indices
// outside [0, Len()) return 0, which is defined behavior rather than an
// out-of-bounds condition.
func (s *ZeroPadded) At(i int) float64 {
	if i < 0 || i >= len(s.values) {
		return 0
	}

	return s.values[i]
}

// Values returns a copy of the stored samples.
func (s *ZeroPadded) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Range returns the samples for indices in the half-open interval
// [start, end), read through the zero-padded lookup. The result is empty
// when start >= end.
func (s *ZeroPadded) Range(start, end int) []float64 {
	if start >= end {
		return []float64{}
	}

	out := make([]float64, end-start)
	for i := range out {
		out[i] = s.At(start + i)
	}

	return out
}
