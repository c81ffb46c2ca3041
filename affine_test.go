package vtxpack

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !m.IsTranslation() {
		t.Error("Identity().IsTranslation() = false")
	}
	x, y, z := m.Apply(1.5, -2, 3.25)
	if x != 1.5 || y != -2 || z != 3.25 {
		t.Errorf("Identity().Apply() = (%v, %v, %v), want (1.5, -2, 3.25)", x, y, z)
	}
}

func TestAffine3x4_Apply(t *testing.T) {
	tests := []struct {
		name       string
		m          Affine3x4
		x, y, z    float32
		wx, wy, wz float32
	}{
		{"translate", Translate(10, 20, 30), 1, 2, 3, 11, 22, 33},
		{"scale", Scale(2, 3, 4), 1, 2, 3, 2, 6, 12},
		{"zero input yields translation", Affine3x4{
			M00: 5, M01: 6, M02: 7, M03: -1,
			M10: 8, M11: 9, M12: 10, M13: 2.5,
			M20: 11, M21: 12, M22: 13, M23: 42,
		}, 0, 0, 0, -1, 2.5, 42},
		{"x scale with translation", Affine3x4{M00: 2, M03: 10, M11: 1, M22: 1}, 1, 0, 0, 12, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.m.Apply(tt.x, tt.y, tt.z)
			if x != tt.wx || y != tt.wy || z != tt.wz {
				t.Errorf("Apply() = (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.wx, tt.wy, tt.wz)
			}
		})
	}
}

func TestAffine3x4_Rotate(t *testing.T) {
	const eps = 1e-6
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < eps }

	x, y, z := RotateZ(math.Pi/2).Apply(1, 0, 0)
	if !near(x, 0) || !near(y, 1) || !near(z, 0) {
		t.Errorf("RotateZ(90°)(1,0,0) = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
	x, y, z = RotateX(math.Pi/2).Apply(0, 1, 0)
	if !near(x, 0) || !near(y, 0) || !near(z, 1) {
		t.Errorf("RotateX(90°)(0,1,0) = (%v, %v, %v), want (0, 0, 1)", x, y, z)
	}
	x, y, z = RotateY(math.Pi/2).Apply(0, 0, 1)
	if !near(x, 1) || !near(y, 0) || !near(z, 0) {
		t.Errorf("RotateY(90°)(0,0,1) = (%v, %v, %v), want (1, 0, 0)", x, y, z)
	}
}

func TestAffine3x4_Multiply(t *testing.T) {
	// Scale first, then translate.
	m := Translate(1, 2, 3).Multiply(Scale(2, 2, 2))
	x, y, z := m.Apply(1, 1, 1)
	if x != 3 || y != 4 || z != 5 {
		t.Errorf("(T*S).Apply(1,1,1) = (%v, %v, %v), want (3, 4, 5)", x, y, z)
	}
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m*I = %+v, want %+v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I*m = %+v, want %+v", got, m)
	}
}

func TestAffine3x4_IsTranslation(t *testing.T) {
	if !Translate(1, 2, 3).IsTranslation() {
		t.Error("Translate().IsTranslation() = false")
	}
	if Translate(1, 2, 3).IsIdentity() {
		t.Error("Translate(1,2,3).IsIdentity() = true")
	}
	if Scale(2, 1, 1).IsTranslation() {
		t.Error("Scale(2,1,1).IsTranslation() = true")
	}
}

func TestAffine3x4_ApplyPropagatesNaN(t *testing.T) {
	nan := float32(math.NaN())
	x, y, z := Identity().Apply(nan, 1, 2)
	if !math.IsNaN(float64(x)) {
		t.Errorf("x = %v, want NaN", x)
	}
	// 0*NaN is NaN, so every row sees it.
	if !math.IsNaN(float64(y)) || !math.IsNaN(float64(z)) {
		t.Errorf("y, z = %v, %v, want NaN (0*NaN propagates)", y, z)
	}

	inf := float32(math.Inf(1))
	x, _, _ = Scale(2, 1, 1).Apply(inf, 0, 0)
	if !math.IsInf(float64(x), 1) {
		t.Errorf("2*Inf = %v, want +Inf", x)
	}
}
