package geom

import "math"

// Vec4 is a homogeneous 3D point. W is 1 for every point of a mesh.
type Vec4 struct {
	X, Y, Z, W float64
}

func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Matrix4 is a row-major 4x4 matrix acting on column vectors.
type Matrix4 [4][4]float64

// Identity4 returns the identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates about the vertical Z axis: a 2x2 rotation in the X/Y
// plane, identity on Z and W.
func RotationZ(theta float64) Matrix4 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return Matrix4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply returns m·v.
func (m Matrix4) Apply(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}
