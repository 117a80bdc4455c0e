package lpc

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-signals/signal"
)

// fftThreshold is the coefficient count at and above which prediction runs
// as an FFT-based convolution instead of the direct summation.
const fftThreshold = 32

// Predict returns the linear-prediction estimate of sig using the given
// coefficients. The output has the same finite support length as the input:
// one predicted value per stored sample. An empty coefficient vector yields
// an all-zero output; an empty signal yields an empty output.
func Predict(sig *signal.ZeroPadded, coeffs []float64) *signal.ZeroPadded {
	return signal.NewZeroPadded(predict(sig, coeffs, sig.Len()))
}

// PredictFull returns the linear-prediction estimate evaluated over the
// extended support [0, Len()+len(coeffs)), keeping the decay tail the
// recurrence produces past the end of the input.
func PredictFull(sig *signal.ZeroPadded, coeffs []float64) *signal.ZeroPadded {
	return signal.NewZeroPadded(predict(sig, coeffs, sig.Len()+len(coeffs)))
}

// Residual returns the prediction error sig - Predict(sig, coeffs) over the
// input's finite support.
func Residual(sig *signal.ZeroPadded, coeffs []float64) *signal.ZeroPadded {
	out := predict(sig, coeffs, sig.Len())
	for i := range out {
		out[i] = sig.At(i) - out[i]
	}

	return signal.NewZeroPadded(out)
}

// predict evaluates the prediction recurrence for indices [0, outLen).
func predict(sig *signal.ZeroPadded, coeffs []float64, outLen int) []float64 {
	out := make([]float64, outLen)
	if outLen == 0 || len(coeffs) == 0 || sig.Len() == 0 {
		// Every term of the summation reads an implicit zero.
		return out
	}

	if len(coeffs) >= fftThreshold {
		if predictFFT(out, sig, coeffs) {
			return out
		}
		// Plan creation failed; the direct path is always available.
	}

	predictDirect(out, sig, coeffs)

	return out
}

// predictDirect evaluates the summation term by term through the zero-padded
// lookup. O(outLen * p), the right choice for short coefficient vectors.
func predictDirect(out []float64, sig *signal.ZeroPadded, coeffs []float64) {
	for i := range out {
		var val float64
		for k, a := range coeffs {
			val += a * sig.At(i-1-k)
		}

		out[i] = val
	}
}

// predictFFT evaluates the prediction as an exact linear convolution of the
// input with the coefficient vector, delayed by one sample:
//
//	y[i] = (x * a)[i-1],  y[0] = 0
//
// The convolution is computed in the frequency domain after zero-padding both
// operands to a power of two, so the result matches the direct summation to
// rounding error. Reports whether the FFT path could run.
func predictFFT(out []float64, sig *signal.ZeroPadded, coeffs []float64) bool {
	n := sig.Len()
	p := len(coeffs)

	convLen := n + p - 1
	fftSize := nextPowerOf2(convLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return false
	}

	sigFreq := make([]complex128, fftSize)
	for i, v := range sig.Values() {
		sigFreq[i] = complex(v, 0)
	}

	if err := plan.Forward(sigFreq, sigFreq); err != nil {
		return false
	}

	coeffFreq := make([]complex128, fftSize)
	for i, v := range coeffs {
		coeffFreq[i] = complex(v, 0)
	}

	if err := plan.Forward(coeffFreq, coeffFreq); err != nil {
		return false
	}

	for i := range sigFreq {
		sigFreq[i] *= coeffFreq[i]
	}

	conv := make([]complex128, fftSize)
	if err := plan.Inverse(conv, sigFreq); err != nil {
		return false
	}

	// len(out) <= n+p, so every index below stays within the convolution.
	out[0] = 0
	for i := 1; i < len(out); i++ {
		out[i] = real(conv[i-1])
	}

	return true
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
