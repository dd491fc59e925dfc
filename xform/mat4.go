// Package xform builds the 4x4 affine transforms uploaded to the renderer.
//
// Matrices are row-major and always affine: the builders fill the bottom row
// with [0 0 0 1] and nothing here ever overwrites it.
package xform

import "math"

// Mat4 is a row-major 4x4 matrix. Element (r,c) lives at index r*4+c.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Rotation returns a rotation about the origin in the XY plane. The angle is
// in degrees; Z is untouched.
func Rotation(angleDegrees float64) Mat4 {
	m := Identity()
	s, c := math.Sincos(angleDegrees * math.Pi / 180)
	m[0] = c
	m[1] = -s
	m[4] = s
	m[5] = c
	return m
}

// Translation returns a matrix translating by (x, y) in the XY plane.
func Translation(x, y float64) Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	return m
}

// Scale returns a matrix scaling by (sx, sy) in the XY plane.
func Scale(sx, sy float64) Mat4 {
	m := Identity()
	m[0] = sx
	m[5] = sy
	return m
}

// At returns element (r, c).
func (m Mat4) At(r, c int) float64 { return m[r*4+c] }

// Mul returns the product m*n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var p Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			p[r*4+c] = sum
		}
	}
	return p
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// Apply transforms the point (x, y, z) with an implicit w of 1 and returns
// the transformed x, y, z.
func (m Mat4) Apply(x, y, z float64) (float64, float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]*z + m[3]
	ty := m[4]*x + m[5]*y + m[6]*z + m[7]
	tz := m[8]*x + m[9]*y + m[10]*z + m[11]
	return tx, ty, tz
}
