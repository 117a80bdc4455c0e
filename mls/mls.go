package mls

import (
	"errors"
	"fmt"
	"math/bits"
)

// Errors returned by sequence constructors.
var (
	ErrInvalidOrder = errors.New("mls: order must be in [2, 63]")
	ErrZeroSeed     = errors.New("mls: seed must be nonzero")
	ErrNoTaps       = errors.New("mls: at least one tap position is required")
)

// predefinedTaps maps the register order to a primitive tap set, covering
// the polynomials x²+x+1, x³+x+1, x⁴+x+1, x⁵+x²+1, x⁶+x+1, x⁷+x+1,
// x⁸+x⁶+x⁵+x+1, x⁹+x⁴+1 and x¹⁰+x³+1.
var predefinedTaps = map[int][]int{
	2:  {1, 2},
	3:  {1, 2},
	4:  {1, 2},
	5:  {1, 3},
	6:  {1, 2},
	7:  {1, 2},
	8:  {1, 2, 6, 7},
	9:  {1, 5},
	10: {1, 4},
}

// Sequence is a maximum length sequence generator.
type Sequence struct {
	order int
	taps  uint64 // feedback mask; bit t-1 set for tap position t
	state uint64
	lo    float64
	hi    float64
}

// Option configures a Sequence.
type Option func(*Sequence)

// WithLevels sets the two sample values emitted by Next and Samples for 0
// and 1 bits respectively. The default levels are 0 and 1.
func WithLevels(lo, hi float64) Option {
	return func(s *Sequence) {
		s.lo = lo
		s.hi = hi
	}
}

// New creates a sequence generator of the given order with the given tap
// positions and initial register state. The seed must be nonzero and fit in
// order bits; bit 0 of the seed is the first bit emitted.
//
// Tap positions must lie in [1, order] but are otherwise trusted: a tap set
// that does not correspond to a primitive polynomial silently yields a cycle
// shorter than 2^order − 1 rather than an error.
func New(order int, taps []int, seed uint64, opts ...Option) (*Sequence, error) {
	if order < 2 || order > 63 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if len(taps) == 0 {
		return nil, ErrNoTaps
	}

	var mask uint64

	for _, t := range taps {
		if t < 1 || t > order {
			return nil, fmt.Errorf("mls: tap position %d outside [1, %d]", t, order)
		}

		mask |= 1 << uint(t-1)
	}

	if seed == 0 {
		return nil, ErrZeroSeed
	}

	if seed >= 1<<uint(order) {
		return nil, fmt.Errorf("mls: seed %#x does not fit in %d bits", seed, order)
	}

	s := &Sequence{
		order: order,
		taps:  mask,
		state: seed,
		lo:    0,
		hi:    1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// NewPredefined creates a sequence generator using a known primitive tap set
// for the given order. Tap sets are available for orders 2 through 10.
func NewPredefined(order int, seed uint64, opts ...Option) (*Sequence, error) {
	taps, ok := predefinedTaps[order]
	if !ok {
		return nil, fmt.Errorf("mls: no predefined tap set for order %d", order)
	}

	return New(order, taps, seed, opts...)
}

// Order returns the register width in bits.
func (s *Sequence) Order() int {
	return s.order
}

// Period returns the sequence period 2^order − 1 reached with primitive taps.
func (s *Sequence) Period() int {
	return int(uint64(1)<<uint(s.order) - 1)
}

// State returns the current register contents.
func (s *Sequence) State() uint64 {
	return s.state
}

// NextBit emits the bit shifted out of the register and advances the state:
// the feedback bit is the XOR parity of the tapped positions and enters at
// position order. The register never reaches the all-zero state when seeded
// through New.
func (s *Sequence) NextBit() int {
	out := int(s.state & 1)

	fb := uint64(bits.OnesCount64(s.state&s.taps) & 1)
	s.state = s.state>>1 | fb<<uint(s.order-1)

	return out
}

// Next emits the next bit mapped through the configured output levels.
func (s *Sequence) Next() float64 {
	if s.NextBit() == 0 {
		return s.lo
	}

	return s.hi
}

// Bits returns one full period of bits starting from the current state,
// without advancing the generator. The result has Period() entries, so it is
// only practical for small orders.
func (s *Sequence) Bits() []int {
	tmp := *s

	out := make([]int, s.Period())
	for i := range out {
		out[i] = tmp.NextBit()
	}

	return out
}

// Samples returns one full period mapped through the configured output
// levels, without advancing the generator.
func (s *Sequence) Samples() []float64 {
	tmp := *s

	out := make([]float64, s.Period())
	for i := range out {
		out[i] = tmp.Next()
	}

	return out
}
