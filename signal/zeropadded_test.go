package signal

import "testing"

func TestZeroPaddedLen(t *testing.T) {
	s := NewZeroPadded([]float64{42, 7, 11})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestZeroPaddedLenEmpty(t *testing.T) {
	if got := NewZeroPadded(nil).Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}

	if got := NewZeroPadded([]float64{}).Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestZeroPaddedAt(t *testing.T) {
	s := NewZeroPadded([]float64{42, 7, 11})

	cases := []struct {
		idx  int
		want float64
	}{
		{-100, 0},
		{-1, 0},
		{0, 42},
		{1, 7},
		{2, 11},
		{3, 0},
		{100, 0},
	}

	for _, c := range cases {
		if got := s.At(c.idx); got != c.want {
			t.Errorf("At(%d) = %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestZeroPaddedAtEmpty(t *testing.T) {
	s := NewZeroPadded(nil)
	for _, idx := range []int{-10, -1, 0, 1, 10} {
		if got := s.At(idx); got != 0 {
			t.Errorf("At(%d) = %v, want 0", idx, got)
		}
	}
}

func TestZeroPaddedCopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	s := NewZeroPadded(in)

	in[0] = 99
	if got := s.At(0); got != 1 {
		t.Fatalf("At(0) = %v after mutating input, want 1", got)
	}

	out := s.Values()
	out[1] = 99
	if got := s.At(1); got != 2 {
		t.Fatalf("At(1) = %v after mutating Values() copy, want 2", got)
	}
}

func TestZeroPaddedRange(t *testing.T) {
	s := NewZeroPadded([]float64{42, 7, 11})

	got := s.Range(-3, 4)
	want := []float64{0, 0, 0, 42, 7, 11, 0}

	if len(got) != len(want) {
		t.Fatalf("Range(-3, 4) len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range(-3, 4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestZeroPaddedRangeEmptyInterval(t *testing.T) {
	s := NewZeroPadded([]float64{42, 7, 11})

	if got := s.Range(3, -3); len(got) != 0 {
		t.Fatalf("Range(3, -3) len = %d, want 0", len(got))
	}

	if got := s.Range(1, 1); len(got) != 0 {
		t.Fatalf("Range(1, 1) len = %d, want 0", len(got))
	}
}
