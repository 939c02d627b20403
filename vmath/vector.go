package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector is a 4-wide float vector; only X, Y, Z carry physical meaning.
// Component-wise arithmetic always covers all four lanes, while Dot, Mag and
// Neg look at the first three only.
type Vector mgl32.Vec4

// Vec builds a Vector from its components
func Vec(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

func Add(a, b Vector) Vector {
	return Vector{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func Sub(a, b Vector) Vector {
	return Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul is the component-wise product
func Mul(a, b Vector) Vector {
	return Vector{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div is the component-wise quotient. Zero lanes in b yield Inf or NaN.
func Div(a, b Vector) Vector {
	return Vector{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func Scale(a Vector, s float32) Vector {
	return Vector{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func DivScalar(a Vector, s float32) Vector {
	return Vector{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

func AddScalar(a Vector, s float32) Vector {
	return Vector{a[0] + s, a[1] + s, a[2] + s, a[3] + s}
}

// Exp returns e raised to each component
func Exp(a Vector) Vector {
	return Vector{
		float32(math.Exp(float64(a[0]))),
		float32(math.Exp(float64(a[1]))),
		float32(math.Exp(float64(a[2]))),
		float32(math.Exp(float64(a[3]))),
	}
}

// Dot is the 3D dot product; W is ignored
func Dot(a, b Vector) float64 {
	return float64(a[0]*b[0] + a[1]*b[1] + a[2]*b[2])
}

// Cross is the 3D cross product; W of the result is zero
func Cross(a, b Vector) Vector {
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Mag returns the 3D magnitude
func Mag(a Vector) float32 {
	return float32(math.Sqrt(Dot(a, a)))
}

// Normalize scales a to unit length. Vectors shorter than 1e-4 are returned unchanged.
func Normalize(a Vector) Vector {
	l := math.Sqrt(Dot(a, a))
	if math.Abs(l) > 0.0001 {
		return DivScalar(a, float32(l))
	}
	return a
}

// Neg reverses the direction of a; W is left as is
func Neg(a Vector) Vector {
	return Vector{-a[0], -a[1], -a[2], a[3]}
}

// X, Y, Z and W name the lanes for readability at call sites
func (v Vector) X() float32 { return v[0] }
func (v Vector) Y() float32 { return v[1] }
func (v Vector) Z() float32 { return v[2] }
func (v Vector) W() float32 { return v[3] }
