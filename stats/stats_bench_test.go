package stats

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-signals/signal"
)

func benchPeriodic(b *testing.B, n int) *signal.Periodic {
	b.Helper()

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}

	p, err := signal.NewPeriodic(values)
	if err != nil {
		b.Fatalf("NewPeriodic() error = %v", err)
	}

	return p
}

func BenchmarkAutocorrelation(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		sig := benchPeriodic(b, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Autocorrelation(sig)
			}
		})
	}
}

func BenchmarkEnergy(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x := benchPeriodic(b, n).Values()
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Energy(x)
			}
		})
	}
}
