package signal

import "errors"

// ErrEmpty is returned when constructing a periodic signal from no samples.
var ErrEmpty = errors.New("signal: periodic signal must not be empty")

// Periodic models an infinite periodic signal: the stored samples repeat over
// the whole integer line in both directions.
type Periodic struct {
	values []float64
}

// NewPeriodic creates a periodic signal from one period of samples. The slice
// is copied. The stored run is a period of the signal, though not necessarily
// the smallest one; see [Periodic.Period].
func NewPeriodic(values []float64) (*Periodic, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	p := &Periodic{values: make([]float64, len(values))}
	copy(p.values, values)

	return p, nil
}

// Len returns the number of stored samples.
func (p *Periodic) Len() int {
	return len(p.values)
}

// At returns the sample at index i, wrapping modulo Len(). Negative indices
// wrap backwards, so At(-1) is the last stored sample.
func (p *Periodic) At(i int) float64 {
	n := len(p.values)

	i %= n
	if i < 0 {
		i += n
	}

	return p.values[i]
}

// Values returns a copy of the stored samples.
func (p *Periodic) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)

	return out
}

// Range returns the samples for indices in the half-open interval
// [start, end), read through the wrapping lookup. The result is empty when
// start >= end.
func (p *Periodic) Range(start, end int) []float64 {
	if start >= end {
		return []float64{}
	}

	out := make([]float64, end-start)
	for i := range out {
		out[i] = p.At(start + i)
	}

	return out
}

// Period returns the smallest period of the signal: the least divisor d of
// Len() such that the samples repeat with period d. When no smaller period
// exists, Period returns Len().
func (p *Periodic) Period() int {
	n := len(p.values)

	for d := 1; d < n; d++ {
		if n%d != 0 {
			continue
		}

		match := true
		for i := d; i < n; i++ {
			if p.values[i] != p.values[i-d] {
				match = false
				break
			}
		}

		if match {
			return d
		}
	}

	return n
}
