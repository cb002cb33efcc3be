package colour

import (
	"math"
	"testing"
)

func TestBiasSplineEndpoints(t *testing.T) {
	shapes := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	turnings := []float64{0.05, 0.3, 0.5, 0.618, 0.95}

	for _, shape := range shapes {
		for _, turning := range turnings {
			if got := BiasSpline(0, shape, turning); got != 0 {
				t.Errorf("BiasSpline(0, %v, %v) = %v, want 0", shape, turning, got)
			}
			if got := BiasSpline(1, shape, turning); math.Abs(got-1) > 1e-12 {
				t.Errorf("BiasSpline(1, %v, %v) = %v, want 1", shape, turning, got)
			}
		}
	}
}

func TestBiasSplineMonotonic(t *testing.T) {
	shapes := []float64{0.25, 0.5, 0.75}
	turnings := []float64{0.1, 0.5, 0.95}

	for _, shape := range shapes {
		for _, turning := range turnings {
			prev := BiasSpline(0, shape, turning)
			for i := 1; i <= 200; i++ {
				x := float64(i) / 200
				got := BiasSpline(x, shape, turning)
				if got < prev {
					t.Fatalf("BiasSpline not monotonic at x=%v (shape %v, turning %v): %v < %v",
						x, shape, turning, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestBiasSplinePassesThroughTurningPoint(t *testing.T) {
	// The curve reaches its own turning point value at x == turning, which
	// is what makes the per-hue turning point control where lightness peaks
	// accelerate.
	for _, turning := range []float64{0.2, 0.5, 0.8} {
		got := BiasSpline(turning, 0.75, turning)
		if math.Abs(got-turning) > 1e-12 {
			t.Errorf("BiasSpline(%v, 0.75, %v) = %v, want %v", turning, turning, got, turning)
		}
	}
}

func TestBiasSplineIdentityShape(t *testing.T) {
	// Shape 0.5 is the identity bias on both segments.
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		if got := BiasSpline(x, 0.5, 0.95); math.Abs(got-x) > 1e-12 {
			t.Errorf("BiasSpline(%v, 0.5, 0.95) = %v, want identity", x, got)
		}
	}
}

func TestTurningPointSequence(t *testing.T) {
	tests := []struct {
		k    int
		want float64
	}{
		{1, 0.6180339887498949},
		{2, 0.2360679774997898},
		{3, 0.8541019662496847},
		{4, 0.4721359549995796},
	}

	for _, tt := range tests {
		got := turningPoint(tt.k)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("turningPoint(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}

	// The sequence stays in [0,1) and never repeats over a palette's worth
	// of hue keys.
	seen := make(map[float64]bool)
	for k := 1; k <= 96; k++ {
		v := turningPoint(k)
		if v < 0 || v >= 1 {
			t.Fatalf("turningPoint(%d) = %v, outside [0,1)", k, v)
		}
		if seen[v] {
			t.Fatalf("turningPoint(%d) = %v repeats an earlier value", k, v)
		}
		seen[v] = true
	}
}
