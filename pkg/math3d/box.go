package math3d

// Box is an axis-aligned bounding box stored as per-axis lower and upper bounds.
type Box struct {
	LX, UX float64
	LY, UY float64
	LZ, UZ float64
}

// NewBox creates a box of the given size centered on center.
func NewBox(size, center Vec3) Box {
	half := size.Scale(0.5)
	return Box{
		LX: center.X - half.X, UX: center.X + half.X,
		LY: center.Y - half.Y, UY: center.Y + half.Y,
		LZ: center.Z - half.Z, UZ: center.Z + half.Z,
	}
}

// Min returns the lower corner.
func (b Box) Min() Vec3 {
	return Vec3{b.LX, b.LY, b.LZ}
}

// Max returns the upper corner.
func (b Box) Max() Vec3 {
	return Vec3{b.UX, b.UY, b.UZ}
}

// Center returns the center of the box.
func (b Box) Center() Vec3 {
	return b.Min().Add(b.Max()).Scale(0.5)
}

// Size returns the dimensions of the box.
func (b Box) Size() Vec3 {
	return b.Max().Sub(b.Min())
}

// Intersects reports whether two boxes overlap on all three axes.
// Bounds are inclusive: boxes that only touch on a face, edge or corner intersect.
func (b Box) Intersects(o Box) bool {
	if o.UX < b.LX || o.LX > b.UX {
		return false
	}
	if o.UY < b.LY || o.LY > b.UY {
		return false
	}
	if o.UZ < b.LZ || o.LZ > b.UZ {
		return false
	}
	return true
}
