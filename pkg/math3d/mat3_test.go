package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func mat3ApproxEqual(a, b Mat3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestEulerXYZIdentity(t *testing.T) {
	if got := EulerXYZ(0, 0, 0); !mat3ApproxEqual(got, Identity3()) {
		t.Errorf("EulerXYZ(0,0,0) = %v, want identity", got)
	}
}

func TestEulerXYZComposition(t *testing.T) {
	x, y, z := 0.3, -0.7, 1.1
	r := EulerXYZ(x, y, z)
	v := V3(0.5, -2, 3)

	// Rotating about X, then Y, then Z must match the composed matrix.
	want := RotateZ3(z).MulVec3(RotateY3(y).MulVec3(RotateX3(x).MulVec3(v)))
	if got := r.MulVec3(v); !got.ApproxEqual(want, eps) {
		t.Errorf("EulerXYZ(...).MulVec3 = %v, want %v", got, want)
	}
}

func TestEulerXYZOrthonormal(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"pitch", 0.4, 0, 0},
		{"yaw", 0, 1.2, 0},
		{"roll", 0, 0, -2.5},
		{"all", 0.9, -1.3, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EulerXYZ(tt.x, tt.y, tt.z)
			if got := r.Mul(r.Transpose()); !mat3ApproxEqual(got, Identity3()) {
				t.Errorf("R*R^T = %v, want identity", got)
			}
			if d := r.Determinant(); math.Abs(d-1) > eps {
				t.Errorf("det(R) = %v, want 1", d)
			}
		})
	}
}

func TestRotationDirections(t *testing.T) {
	half := math.Pi / 2
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"x rotates y to z", RotateX3(half), V3(0, 1, 0), V3(0, 0, 1)},
		{"y rotates z to x", RotateY3(half), V3(0, 0, 1), V3(1, 0, 0)},
		{"z rotates x to y", RotateZ3(half), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3(tt.in); !got.ApproxEqual(tt.want, eps) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMat3RowsAndColumns(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}

	if got, want := m.Row(0), V3(1, 4, 7); got != want {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}
	if got, want := m.Col(1), V3(4, 5, 6); got != want {
		t.Errorf("Col(1) = %v, want %v", got, want)
	}
	if got := m.Get(2, 1); got != 6 {
		t.Errorf("Get(2,1) = %v, want 6", got)
	}
	if got := m.Transpose().Row(1); got != m.Col(1) {
		t.Errorf("Transpose().Row(1) = %v, want %v", got, m.Col(1))
	}
}

func TestMat4FitTransform(t *testing.T) {
	// Centre then scale, the same composition used to fit models.
	m := Scale(V3(2, -2, 2)).Mul(Translate(V3(-1, -1, -1)))

	if got, want := m.MulVec3(V3(1, 1, 1)), V3(0, 0, 0); !got.ApproxEqual(want, eps) {
		t.Errorf("MulVec3(center) = %v, want %v", got, want)
	}
	if got, want := m.MulVec3(V3(2, 2, 2)), V3(2, -2, 2); !got.ApproxEqual(want, eps) {
		t.Errorf("MulVec3(corner) = %v, want %v", got, want)
	}
	if got, want := m.MulVec3Dir(V3(0, 1, 0)), V3(0, -2, 0); !got.ApproxEqual(want, eps) {
		t.Errorf("MulVec3Dir = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := V3(0.1, 0.7, -3.3), V3(9.9, -1.2, 4.4)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got, want := a.Lerp(b, 0.5), V3(5, -0.25, 0.55); !got.ApproxEqual(want, eps) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestVec3Clamp(t *testing.T) {
	if got, want := V3(-1, 0.5, 2).Clamp(0, 1), V3(0, 0.5, 1); got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}
