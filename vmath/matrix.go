package vmath

import "github.com/go-gl/mathgl/mgl32"

// Matrix is a column-major 4x4 matrix
type Matrix = mgl32.Mat4

func Identity() Matrix {
	return mgl32.Ident4()
}

// RotateX returns a rotation of rad radians around the X axis
func RotateX(rad float32) Matrix {
	return mgl32.HomogRotate3DX(rad)
}

// RotateY returns a rotation of rad radians around the Y axis
func RotateY(rad float32) Matrix {
	return mgl32.HomogRotate3DY(rad)
}

// MulMatrix transforms v by m. Element i of the result is the dot product of v
// with row i of m, all four lanes included.
func MulMatrix(v Vector, m Matrix) Vector {
	return Vector(m.Mul4x1(mgl32.Vec4(v)))
}
