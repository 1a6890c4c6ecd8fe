package paintlog

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func matrixEq(a, b Matrix) bool {
	return floatEq(a.A, b.A) && floatEq(a.B, b.B) && floatEq(a.C, b.C) &&
		floatEq(a.D, b.D) && floatEq(a.E, b.E) && floatEq(a.F, b.F)
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	x, y := m.TransformPoint(3, 7)
	if !floatEq(x, 3) || !floatEq(y, 7) {
		t.Errorf("TransformPoint(3,7) = (%v,%v)", x, y)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20)
	x, y := m.TransformPoint(1, 2)
	if !floatEq(x, 11) || !floatEq(y, 22) {
		t.Errorf("TransformPoint = (%v,%v), want (11,22)", x, y)
	}
	if !m.IsTranslation() {
		t.Error("IsTranslation() = false")
	}

	// Vectors ignore translation.
	vx, vy := m.TransformVector(1, 2)
	if !floatEq(vx, 1) || !floatEq(vy, 2) {
		t.Errorf("TransformVector = (%v,%v), want (1,2)", vx, vy)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)
	x, y := m.TransformPoint(4, 5)
	if !floatEq(x, 8) || !floatEq(y, 15) {
		t.Errorf("TransformPoint = (%v,%v), want (8,15)", x, y)
	}
	if !floatEq(m.ScaleFactor(), 3) {
		t.Errorf("ScaleFactor() = %v, want 3", m.ScaleFactor())
	}
}

func TestRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	x, y := m.TransformPoint(1, 0)
	if !floatEq(x, 0) || !floatEq(y, 1) {
		t.Errorf("quarter turn of (1,0) = (%v,%v), want (0,1)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Translate then scale: scale applies to the translated point.
	m := Scale(2, 2).Multiply(Translate(5, 0))
	x, y := m.TransformPoint(0, 0)
	if !floatEq(x, 10) || !floatEq(y, 0) {
		t.Errorf("TransformPoint = (%v,%v), want (10,0)", x, y)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(3, 4).Multiply(Scale(2, 5)).Multiply(Rotate(0.3))
	inv := m.Invert()
	if !matrixEq(m.Multiply(inv), Identity()) {
		t.Errorf("m * m^-1 = %+v, want identity", m.Multiply(inv))
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale(0, 0)
	if !m.Invert().IsIdentity() {
		t.Errorf("Invert() of singular matrix = %+v, want identity", m.Invert())
	}
	if m.Determinant() != 0 {
		t.Errorf("Determinant() = %v, want 0", m.Determinant())
	}
}

func TestTranslation(t *testing.T) {
	x, y := Translate(7, -2).Translation()
	if !floatEq(x, 7) || !floatEq(y, -2) {
		t.Errorf("Translation() = (%v,%v), want (7,-2)", x, y)
	}
}

func TestShear(t *testing.T) {
	m := Shear(1, 0)
	x, y := m.TransformPoint(0, 2)
	if !floatEq(x, 2) || !floatEq(y, 2) {
		t.Errorf("TransformPoint = (%v,%v), want (2,2)", x, y)
	}
}
