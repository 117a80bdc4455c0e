// Package signal provides value types that model infinite discrete-time
// signals over finite storage.
//
// A [ZeroPadded] signal stores a finite run of samples and reads as exactly
// zero everywhere outside that run, which makes it causal by construction:
// lookups before index 0 (and past the stored range) are defined, not errors.
// A [Periodic] signal repeats its stored samples over the whole integer line.
//
// Both types copy their input at construction and are immutable afterwards,
// so they are safe for concurrent reads. Transforms that consume them (see
// the lpc and stats packages) return fresh instances instead of mutating
// their inputs.
package signal
