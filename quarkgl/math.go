package quarkgl

import "math"

// Scalar is the numeric type of every coordinate the renderer handles.
type Scalar = float32

// Vec3 is a position or direction in world or view space.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous coordinate. Positions carry W=1 until projected.
type Vec4 struct {
	X, Y, Z, W Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3     { return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z) }
func (v Vec3) Sub(o Vec3) Vec3     { return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z) }
func (v Vec3) Scale(s Scalar) Vec3 { return V3(v.X*s, v.Y*s, v.Z*s) }
func (v Vec3) Dot(o Vec3) Scalar   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() Scalar         { return Scalar(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec3) Cross(o Vec3) Vec3 {
	return V3(v.Y*o.Z-v.Z*o.Y, v.Z*o.X-v.X*o.Z, v.X*o.Y-v.Y*o.X)
}

// Homogeneous returns v as a position with W=1.
func (v Vec3) Homogeneous() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

// Unit returns v scaled to length 1, or the zero vector.
func (v Vec3) Unit() Vec3 {
	if l := v.Len(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

func (v Vec4) lerp(o Vec4, t Scalar) Vec4 {
	return Vec4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// Mat4 is a 4x4 matrix stored column by column: m[col*4+row].
type Mat4 [16]Scalar

func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

func (m Mat4) col(c int) Vec4 {
	return Vec4{X: m[c*4], Y: m[c*4+1], Z: m[c*4+2], W: m[c*4+3]}
}

// Transform returns m·v.
func (m Mat4) Transform(v Vec4) Vec4 {
	x, y, z, w := m.col(0), m.col(1), m.col(2), m.col(3)
	return Vec4{
		X: x.X*v.X + y.X*v.Y + z.X*v.Z + w.X*v.W,
		Y: x.Y*v.X + y.Y*v.Y + z.Y*v.Z + w.Y*v.W,
		Z: x.Z*v.X + y.Z*v.Y + z.Z*v.Z + w.Z*v.W,
		W: x.W*v.X + y.W*v.Y + z.W*v.Z + w.W*v.W,
	}
}

// Mul returns m·o, so (m·o)·v == m·(o·v).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		v := m.Transform(o.col(c))
		out[c*4], out[c*4+1], out[c*4+2], out[c*4+3] = v.X, v.Y, v.Z, v.W
	}
	return out
}

// ViewMatrix moves eye to the origin with target on the -Z axis and up
// roughly +Y.
func ViewMatrix(eye, target, up Vec3) Mat4 {
	fwd := target.Sub(eye).Unit()
	side := fwd.Cross(up).Unit()
	top := side.Cross(fwd)
	return Mat4{
		side.X, top.X, -fwd.X, 0,
		side.Y, top.Y, -fwd.Y, 0,
		side.Z, top.Z, -fwd.Z, 0,
		-side.Dot(eye), -top.Dot(eye), fwd.Dot(eye), 1,
	}
}

// PerspectiveMatrix maps the view frustum to clip space; near lands on
// NDC z=-1 and far on z=+1.
func PerspectiveMatrix(fovY, aspect, near, far Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	focal := Scalar(1 / math.Tan(float64(fovY)/2))
	depth := near - far
	var m Mat4
	m[0] = focal / aspect
	m[5] = focal
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}

// DegToRad converts degrees to radians.
func DegToRad(deg Scalar) Scalar { return deg * math.Pi / 180 }

func sincos(a Scalar) (sin, cos Scalar) {
	s, c := math.Sincos(float64(a))
	return Scalar(s), Scalar(c)
}

func clampScalar(v, lo, hi Scalar) Scalar {
	return max(lo, min(v, hi))
}
