// Package matrix provides the 4x4 homogeneous transformation primitives used
// by the transform stack and the geometry pipeline.
//
// Matrices are stored in row-major order as [f64.Mat4]:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
//
// Points are column vectors, so a matrix M maps p to M·p. Composition with
// [Mat4.Multiply] follows the same rule: (A·B)·p applies B first, then A.
package matrix

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Mat4 is a 4x4 homogeneous transformation matrix.
type Mat4 f64.Mat4

// Point is a homogeneous point (x, y, z, w). Generators always emit w = 1.
type Point = f64.Vec4

// Pt returns the homogeneous point (x, y, z, 1).
func Pt(x, y, z float64) Point {
	return Point{x, y, z, 1}
}

// Identity returns the identity transformation matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX creates a rotation about the x axis (angle in radians).
func RotateX(theta float64) Mat4 {
	sin, cos := math.Sincos(theta)
	return Mat4{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation about the y axis (angle in radians).
func RotateY(theta float64) Mat4 {
	sin, cos := math.Sincos(theta)
	return Mat4{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation about the z axis (angle in radians).
func RotateZ(theta float64) Mat4 {
	sin, cos := math.Sincos(theta)
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// TransformPoint applies the transformation to a point.
func (m Mat4) TransformPoint(p Point) Point {
	var r Point
	for row := 0; row < 4; row++ {
		r[row] = m[row*4]*p[0] + m[row*4+1]*p[1] + m[row*4+2]*p[2] + m[row*4+3]*p[3]
	}
	return r
}

// Apply transforms every point in pts in place.
func (m Mat4) Apply(pts []Point) {
	for i, p := range pts {
		pts[i] = m.TransformPoint(p)
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Identity(), 0)
}

// ApproxEqual reports whether every element of m is within eps of other.
func (m Mat4) ApproxEqual(other Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}
