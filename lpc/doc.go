// Package lpc implements linear prediction over zero-padded signals.
//
// The linear-predictive estimate of a signal x with coefficients a of order p
// is
//
//	y[i] = Σ_{k=1..p} a[k-1] · x[i-k]
//
// where lookups before the start of x resolve to zero through the zero-padded
// signal contract, so no boundary special-casing is needed. Coefficients are
// ordered from lag 1 upward: a[0] weights the immediately preceding sample.
//
// All functions are pure and total: they accept empty signals and empty
// coefficient vectors, never mutate their inputs, and return freshly owned
// results.
package lpc
