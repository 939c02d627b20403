package rootfind

import (
	"errors"
	"math"
	"testing"
)

func TestZeroinSmoothFunctions(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		f    func(float32) float32
		want float64
	}{
		{"linear", 0, 1, func(x float32) float32 { return x - 0.5 }, 0.5},
		{"sqrt2", 0, 2, func(x float32) float32 { return x*x - 2 }, math.Sqrt2},
		{"reversed bracket", 2, 0, func(x float32) float32 { return x*x - 2 }, math.Sqrt2},
		{"cosine", 0, 2, func(x float32) float32 { return float32(math.Cos(float64(x))) }, math.Pi / 2},
		{"cubic", -2, 3, func(x float32) float32 { return x*x*x - x - 1 }, 1.324717957244746},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			f := func(x float32) float32 {
				calls++
				return tt.f(x)
			}

			got, err := Zeroin(tt.a, tt.b, f, 0)
			if err != nil {
				t.Fatalf("Zeroin returned error: %v", err)
			}

			bound := 4*float64(Epsilon)*math.Abs(tt.want) + 1e-6
			if math.Abs(float64(got)-tt.want) > bound {
				t.Errorf("root = %.9f, want %.9f (±%g)", got, tt.want, bound)
			}

			lo, hi := math.Min(float64(tt.a), float64(tt.b)), math.Max(float64(tt.a), float64(tt.b))
			if float64(got) < lo || float64(got) > hi {
				t.Errorf("root %v outside bracket [%v, %v]", got, lo, hi)
			}

			if calls > 40 {
				t.Errorf("took %d evaluations, expected fast convergence", calls)
			}
		})
	}
}

func TestZeroinRespectsTolerance(t *testing.T) {
	f := func(x float32) float32 { return x - 0.3 }
	got, err := Zeroin(0, 1, f, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(float64(got)-0.3) > 0.1 {
		t.Errorf("root = %v, want within 0.1 of 0.3", got)
	}
}

func TestZeroinExactEndpoint(t *testing.T) {
	calls := 0
	f := func(x float32) float32 {
		calls++
		return x - 1
	}
	got, err := Zeroin(0, 1, f, 0)
	if err != nil || got != 1 {
		t.Fatalf("Zeroin = %v, %v; want 1, nil", got, err)
	}
	if calls != 2 {
		t.Errorf("expected only the two endpoint evaluations, got %d", calls)
	}
}

func TestZeroinIterationCap(t *testing.T) {
	// A function that never produces a usable value keeps halving towards a
	// and would loop forever without the cap
	calls := 0
	nan := float32(math.NaN())
	f := func(x float32) float32 {
		calls++
		return nan
	}

	_, err := Zeroin(0, 1, f, 0)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
	if calls != MaxIterations+2 {
		t.Errorf("f evaluated %d times, want %d", calls, MaxIterations+2)
	}
}
