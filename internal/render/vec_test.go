package render

import (
	"math"
	"testing"
)

const tol = 1e-9

func vecClose(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); math.Abs(got-5) > tol {
		t.Errorf("Length = %v", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v", got)
	}
}

func TestRotate_Identity(t *testing.T) {
	points := []Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{-1, 1, -1},
		{0.5, -2.5, 3.75},
	}

	for _, p := range points {
		if got := Rotate(p, Vec3{}); !vecClose(got, p) {
			t.Errorf("Rotate(%v, 0) = %v, want identity", p, got)
		}
	}
}

func TestRotate_SingleAxes(t *testing.T) {
	half := math.Pi / 2

	tests := []struct {
		name   string
		p      Vec3
		angles Vec3
		want   Vec3
	}{
		{"x quarter turn", Vec3{0, 1, 0}, Vec3{half, 0, 0}, Vec3{0, 0, 1}},
		{"y quarter turn", Vec3{1, 0, 0}, Vec3{0, half, 0}, Vec3{0, 0, -1}},
		{"z quarter turn", Vec3{1, 0, 0}, Vec3{0, 0, half}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rotate(tt.p, tt.angles); !vecClose(got, tt.want) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.p, tt.angles, got, tt.want)
			}
		})
	}
}

func TestRotate_CompositionOrder(t *testing.T) {
	// Rz acts first: (1,0,0) -Rz(90)-> (0,1,0) -Rx(90)-> (0,0,1).
	// The reversed composition would land on (0,1,0) instead.
	half := math.Pi / 2
	got := Rotate(Vec3{1, 0, 0}, Vec3{half, 0, half})
	if !vecClose(got, Vec3{0, 0, 1}) {
		t.Errorf("composition order broken: got %v, want (0,0,1)", got)
	}
}

func TestRotate_Periodic(t *testing.T) {
	p := Vec3{1, -0.5, 2}
	for _, theta := range []float64{0, 0.3, 1.7, 5.9} {
		a := Rotate(p, Vec3{theta, 0, theta})
		b := Rotate(p, Vec3{theta + 2*math.Pi, 0, theta + 2*math.Pi})
		if !vecClose(a, b) {
			t.Errorf("theta=%v: rotation not periodic: %v vs %v", theta, a, b)
		}
	}
}

func TestRotate_PreservesLength(t *testing.T) {
	p := Vec3{1, 2, -3}
	for _, angles := range []Vec3{{0.2, 0, 0.2}, {1, 2, 3}, {-0.5, 0.7, 0.1}} {
		if got := Rotate(p, angles).Length(); math.Abs(got-p.Length()) > tol {
			t.Errorf("rotation by %v changed length: %v vs %v", angles, got, p.Length())
		}
	}
}

func TestMat3_Mul(t *testing.T) {
	// Rx(a)·Rx(b) == Rx(a+b)
	a, b := 0.4, 1.1
	prod := RotationX(a).Mul(RotationX(b))
	sum := RotationX(a + b)
	p := Vec3{0.3, -1.2, 0.8}
	if !vecClose(prod.MulVec(p), sum.MulVec(p)) {
		t.Error("Rx(a)*Rx(b) does not equal Rx(a+b)")
	}
}
