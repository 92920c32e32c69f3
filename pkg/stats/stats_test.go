package stats

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestMeanStdVariance(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Mean(x); math.Abs(got-5) > eps {
		t.Fatalf("Mean = %g, want 5", got)
	}
	if got := Variance(x); math.Abs(got-4) > 1e-6 {
		t.Fatalf("Variance = %g, want 4", got)
	}
	if got := Std(x); math.Abs(got-2) > 1e-6 {
		t.Fatalf("Std = %g, want 2", got)
	}
}

func TestMedian(t *testing.T) {
	if got := Median([]float64{3, 1, 2}); got != 2 {
		t.Fatalf("odd Median = %g, want 2", got)
	}
	if got := Median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Fatalf("even Median = %g, want 2.5", got)
	}
}

func TestPercentile(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	cases := []struct {
		p, want float64
	}{
		{0, 1},
		{25, 2},
		{50, 3},
		{75, 4},
		{100, 5},
	}
	for _, c := range cases {
		if got := Percentile(x, c.p); math.Abs(got-c.want) > eps {
			t.Fatalf("Percentile(%g) = %g, want %g", c.p, got, c.want)
		}
	}
}

func TestSkewnessSymmetric(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	if got := Skewness(x); math.Abs(got) > eps {
		t.Fatalf("Skewness of symmetric data = %g, want 0", got)
	}
}

func TestSkewnessBernoulliTail(t *testing.T) {
	// One spike in sixteen zeros: moment skewness (1-2p)/sqrt(p(1-p)) with
	// p = 1/16, about 3.62.
	x := make([]float64, 16)
	x[15] = 100
	got := Skewness(x)
	p := 1.0 / 16
	want := (1 - 2*p) / math.Sqrt(p*(1-p))
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("Skewness = %g, want %g", got, want)
	}
}

func TestKurtosis(t *testing.T) {
	// Two-point symmetric distribution has excess kurtosis -2.
	x := []float64{-1, 1, -1, 1}
	if got := Kurtosis(x); math.Abs(got+2) > eps {
		t.Fatalf("Kurtosis = %g, want -2", got)
	}
}

func TestMomentsOfConstantColumn(t *testing.T) {
	x := []float64{3, 3, 3}
	if got := Skewness(x); got != 0 {
		t.Fatalf("Skewness of constant column = %g, want 0", got)
	}
	if got := Kurtosis(x); got != 0 {
		t.Fatalf("Kurtosis of constant column = %g, want 0", got)
	}
}

func TestUniqueCount(t *testing.T) {
	if got := UniqueCount([]float64{1, 1, 2, 3, 3, 3}); got != 3 {
		t.Fatalf("UniqueCount = %d, want 3", got)
	}
}
