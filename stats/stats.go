// Package stats provides correlation and energy statistics over signals.
package stats

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-signals/signal"
)

// Autocorrelation returns the periodic autocorrelation of sig:
//
//	r[k] = (1/N) · Σ_{i=0..N-1} x[i] · x[i+k]
//
// for lags k in [0, N), where N is the stored period length and lookups wrap
// around. The result is itself periodic with the same length, and satisfies
// r[k] = r[N-k].
func Autocorrelation(sig *signal.Periodic) *signal.Periodic {
	n := sig.Len()
	base := sig.Range(0, n)
	prod := make([]float64, n)
	vals := make([]float64, n)

	for k := range vals {
		vecmath.MulBlock(prod, base, sig.Range(k, k+n))
		vals[k] = sum(prod) / float64(n)
	}

	// sig carries at least one sample, so vals does too.
	out, _ := signal.NewPeriodic(vals)

	return out
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	prod := make([]float64, len(x))
	vecmath.MulBlock(prod, x, x)

	return sum(prod)
}

// Power returns the mean square of x, 0 for empty input.
func Power(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return Energy(x) / float64(len(x))
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 {
	return math.Sqrt(Power(x))
}

func sum(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}

	return total
}
