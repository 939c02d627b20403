package vmath

import (
	"math"
	"testing"
)

func TestComponentWiseOpsCoverAllLanes(t *testing.T) {
	a := Vec(1, 2, 3, 4)
	b := Vec(5, 6, 7, 8)

	tests := []struct {
		name string
		got  Vector
		want Vector
	}{
		{"Add", Add(a, b), Vec(6, 8, 10, 12)},
		{"Sub", Sub(b, a), Vec(4, 4, 4, 4)},
		{"Mul", Mul(a, b), Vec(5, 12, 21, 32)},
		{"Div", Div(b, Vec(5, 2, 7, 4)), Vec(1, 3, 1, 2)},
		{"Scale", Scale(a, 2), Vec(2, 4, 6, 8)},
		{"DivScalar", DivScalar(b, 2), Vec(2.5, 3, 3.5, 4)},
		{"AddScalar", AddScalar(a, -1), Vec(0, 1, 2, 3)},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDotAndMagIgnoreW(t *testing.T) {
	a := Vec(3, 4, 0, 100)
	if got := Dot(a, a); got != 25 {
		t.Errorf("Dot = %v, want 25", got)
	}
	if got := Mag(a); got != 5 {
		t.Errorf("Mag = %v, want 5", got)
	}
}

func TestDivByZeroLanePropagates(t *testing.T) {
	got := Div(Vec(1, 0, -1, 0), Vec(0, 0, 0, 0))
	if !math.IsInf(float64(got[0]), 1) || !math.IsInf(float64(got[2]), -1) {
		t.Errorf("expected ±Inf in lanes 0 and 2, got %v", got)
	}
	if !math.IsNaN(float64(got[1])) || !math.IsNaN(float64(got[3])) {
		t.Errorf("expected NaN in lanes 1 and 3, got %v", got)
	}
}

func TestCross(t *testing.T) {
	got := Cross(Vec(1, 0, 0, 7), Vec(0, 1, 0, 9))
	if got != Vec(0, 0, 1, 0) {
		t.Errorf("Cross = %v, want (0,0,1,0)", got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Vec(0, 3, 4, 0))
	if math.Abs(float64(Mag(got))-1) > 1e-6 {
		t.Errorf("|Normalize| = %v, want 1", Mag(got))
	}

	tiny := Vec(0.00001, 0, 0, 0)
	if Normalize(tiny) != tiny {
		t.Error("vectors shorter than 1e-4 should be left unchanged")
	}
}

func TestNegKeepsW(t *testing.T) {
	if got := Neg(Vec(1, -2, 3, 4)); got != Vec(-1, 2, -3, 4) {
		t.Errorf("Neg = %v", got)
	}
}

func TestExp(t *testing.T) {
	got := Exp(Vec(0, 1, -1, 0))
	want := Vec(1, float32(math.E), float32(1/math.E), 1)
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("Exp lane %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMulMatrix(t *testing.T) {
	v := Vec(1, 2, 3, 1)
	if got := MulMatrix(v, Identity()); got != v {
		t.Errorf("identity transform = %v, want %v", got, v)
	}

	// Quarter turn around Y takes +Z to +X
	got := MulMatrix(Vec(0, 0, 1, 0), RotateY(math.Pi/2))
	if math.Abs(float64(got[0]-1)) > 1e-6 || math.Abs(float64(got[2])) > 1e-6 {
		t.Errorf("RotateY(pi/2) * +Z = %v, want +X", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{-1, TwoPi - 1},
		{TwoPi, 0},
		{TwoPi + 0.5, 0.5},
		{-TwoPi, 0},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []float32{-0.0000001, 7, -7, 1000, -1000} {
		got := WrapAngle(in)
		if got < 0 || float64(got) >= TwoPi {
			t.Errorf("WrapAngle(float32 %v) = %v, outside [0, 2pi)", in, got)
		}
	}

	if got := WrapAngle(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("WrapAngle(+Inf) = %v, want +Inf", got)
	}
}

func TestClampAndDeg2Rad(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned a value outside the bounds")
	}
	if got := Deg2Rad(180.0); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v", got)
	}
}
