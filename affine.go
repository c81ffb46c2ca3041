package vtxpack

import "math"

// Affine3x4 represents a 3D affine transformation in row-major order:
//
//	| M00  M01  M02  M03 |
//	| M10  M11  M12  M13 |
//	| M20  M21  M22  M23 |
//
// This represents the transformation:
//
//	x' = M00*x + M01*y + M02*z + M03
//	y' = M10*x + M11*y + M12*z + M13
//	z' = M20*x + M21*y + M22*z + M23
//
// The fourth column is the translation. Affine3x4 is a plain value and is
// passed by value through every transform entry point.
type Affine3x4 struct {
	M00, M01, M02, M03 float32
	M10, M11, M12, M13 float32
	M20, M21, M22, M23 float32
}

// Identity returns the identity transformation.
func Identity() Affine3x4 {
	return Affine3x4{
		M00: 1,
		M11: 1,
		M22: 1,
	}
}

// Translate creates a translation transform.
func Translate(x, y, z float32) Affine3x4 {
	return Affine3x4{
		M00: 1, M03: x,
		M11: 1, M13: y,
		M22: 1, M23: z,
	}
}

// Scale creates a scaling transform.
func Scale(x, y, z float32) Affine3x4 {
	return Affine3x4{
		M00: x,
		M11: y,
		M22: z,
	}
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float64) Affine3x4 {
	cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
	return Affine3x4{
		M00: 1,
		M11: cos, M12: -sin,
		M21: sin, M22: cos,
	}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float64) Affine3x4 {
	cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
	return Affine3x4{
		M00: cos, M02: sin,
		M11: 1,
		M20: -sin, M22: cos,
	}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float64) Affine3x4 {
	cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
	return Affine3x4{
		M00: cos, M01: -sin,
		M10: sin, M11: cos,
		M22: 1,
	}
}

// Multiply composes two transforms (m * other): other is applied first.
func (m Affine3x4) Multiply(other Affine3x4) Affine3x4 {
	return Affine3x4{
		M00: m.M00*other.M00 + m.M01*other.M10 + m.M02*other.M20,
		M01: m.M00*other.M01 + m.M01*other.M11 + m.M02*other.M21,
		M02: m.M00*other.M02 + m.M01*other.M12 + m.M02*other.M22,
		M03: m.M00*other.M03 + m.M01*other.M13 + m.M02*other.M23 + m.M03,

		M10: m.M10*other.M00 + m.M11*other.M10 + m.M12*other.M20,
		M11: m.M10*other.M01 + m.M11*other.M11 + m.M12*other.M21,
		M12: m.M10*other.M02 + m.M11*other.M12 + m.M12*other.M22,
		M13: m.M10*other.M03 + m.M11*other.M13 + m.M12*other.M23 + m.M13,

		M20: m.M20*other.M00 + m.M21*other.M10 + m.M22*other.M20,
		M21: m.M20*other.M01 + m.M21*other.M11 + m.M22*other.M21,
		M22: m.M20*other.M02 + m.M21*other.M12 + m.M22*other.M22,
		M23: m.M20*other.M03 + m.M21*other.M13 + m.M22*other.M23 + m.M23,
	}
}

// Apply transforms a single point.
//
// This is the reference evaluation used by the scalar backend and the fused
// pack path: ((m0*x + m1*y) + m2*z) + m3 per row. Every product is
// converted to float32 explicitly; an explicit conversion rounds, so the
// compiler never contracts it into an FMA and results are bit-identical on
// every architecture.
func (m Affine3x4) Apply(x, y, z float32) (rx, ry, rz float32) {
	rx = float32(m.M00*x) + float32(m.M01*y) + float32(m.M02*z) + m.M03
	ry = float32(m.M10*x) + float32(m.M11*y) + float32(m.M12*z) + m.M13
	rz = float32(m.M20*x) + float32(m.M21*y) + float32(m.M22*z) + m.M23
	return rx, ry, rz
}

// IsIdentity returns true if the transform is the identity.
func (m Affine3x4) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the linear part is the identity.
func (m Affine3x4) IsTranslation() bool {
	return m.M00 == 1 && m.M01 == 0 && m.M02 == 0 &&
		m.M10 == 0 && m.M11 == 1 && m.M12 == 0 &&
		m.M20 == 0 && m.M21 == 0 && m.M22 == 1
}
