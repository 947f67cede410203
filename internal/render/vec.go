package render

import "math"

// Vec3 is a 3D vector, used both for world-space positions and for
// per-axis rotation angles in radians.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// RotationX returns the right-handed rotation matrix about the X axis.
func RotationX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the right-handed rotation matrix about the Y axis.
func RotationY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the right-handed rotation matrix about the Z axis.
func RotationZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Rotate applies the composed rotation Rx·Ry·Rz to p, i.e. the Z
// rotation acts on the point first, then Y, then X. The composition
// order is load-bearing: swapping it changes the animation.
func Rotate(p, angles Vec3) Vec3 {
	m := RotationX(angles.X).Mul(RotationY(angles.Y)).Mul(RotationZ(angles.Z))
	return m.MulVec(p)
}
