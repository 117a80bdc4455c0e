// Package mls generates maximum length sequences.
//
// A maximum length sequence is the periodic binary output of a
// linear-feedback shift register driven by a primitive feedback polynomial:
// the register cycles through every nonzero state exactly once, giving a
// period of 2^order − 1 bits. MLS excitation is useful wherever a
// deterministic, noise-like, spectrally flat signal is needed.
//
// The register is a fixed-width bit vector held in a uint64. Tap positions
// are 1-based and counted from the output end of the register: position 1
// holds the bit about to be emitted, position order holds the most recently
// injected feedback bit. Each step emits the bit shifted out, computes the
// feedback bit as the XOR parity of the tapped positions, and injects it at
// the far end.
//
// A Sequence holds mutable register state and must be stepped by a single
// owner; it is not safe for concurrent use.
package mls
