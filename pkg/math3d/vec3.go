// Package math3d provides 3D math primitives for the voxelwalk engine.
package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis indices for Vec3.Get and Vec3.With.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit vector in the same direction.
// A zero-length vector is divided by 1 and comes back unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		l = 1
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Get returns the component for the given axis.
func (a Vec3) Get(axis int) float64 {
	switch axis {
	case AxisX:
		return a.X
	case AxisY:
		return a.Y
	default:
		return a.Z
	}
}

// With returns a copy of a with the given axis set to v.
func (a Vec3) With(axis int, v float64) Vec3 {
	switch axis {
	case AxisX:
		a.X = v
	case AxisY:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

// IsIntegral reports whether every component is a whole number.
func (a Vec3) IsIntegral() bool {
	return a.X == math.Trunc(a.X) && a.Y == math.Trunc(a.Y) && a.Z == math.Trunc(a.Z)
}

// Rotate rotates the vector by Euler angles given in degrees.
// The X rotation is applied first, then Y, then Z (Rz·Ry·Rx·v).
func (a Vec3) Rotate(euler Vec3) Vec3 {
	rx := mgl64.Rotate3DX(mgl64.DegToRad(euler.X))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(euler.Y))
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(euler.Z))

	v := mgl64.Vec3{a.X, a.Y, a.Z}
	v = rx.Mul3x1(v)
	v = ry.Mul3x1(v)
	v = rz.Mul3x1(v)

	return Vec3{v[0], v[1], v[2]}
}

// StepRotate brings a camera-relative point into camera space: it rotates by
// yaw (rotation.Y) and then by pitch (rotation.X). Roll is ignored.
func (a Vec3) StepRotate(rotation Vec3) Vec3 {
	return a.Rotate(Vec3{0, rotation.Y, 0}).Rotate(Vec3{rotation.X, 0, 0})
}
