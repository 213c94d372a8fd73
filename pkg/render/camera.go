package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// DefaultFOV is the horizontal field of view in degrees.
const DefaultFOV = 120

// Camera owns the scene and the viewpoint it is drawn from.
type Camera struct {
	// Offset is the negated camera world position.
	Offset math3d.Vec3

	// Rotation holds Euler angles in degrees, each in [0, 360) after Rotate.
	Rotation math3d.Vec3

	// FOV is the horizontal field of view in degrees.
	FOV float64

	scene *Scene
	order []Drawable // reused by Display
	depth []float64
}

// NewCamera creates a camera at the origin with an empty scene.
func NewCamera(fov float64) *Camera {
	if fov <= 0 {
		fov = DefaultFOV
	}
	return &Camera{
		FOV:   fov,
		scene: NewScene(),
	}
}

// Scene returns the scene drawn by the camera.
func (c *Camera) Scene() *Scene {
	return c.scene
}

// SetPosition places the camera at pos in world space.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Offset = pos.Negate()
}

// Position returns the camera's world position.
func (c *Camera) Position() math3d.Vec3 {
	return c.Offset.Negate()
}

// Move adds delta, expressed in camera space, to Offset. The camera's world
// position therefore moves by -delta along its own axes.
func (c *Camera) Move(delta math3d.Vec3) {
	c.Offset = c.Offset.Add(delta.Rotate(c.Rotation.Negate()))
}

// Rotate subtracts delta from the rotation and wraps each angle into [0, 360).
func (c *Camera) Rotate(delta math3d.Vec3) {
	r := c.Rotation.Add(delta.Negate())
	c.Rotation = math3d.V3(wrapDegrees(r.X), wrapDegrees(r.Y), wrapDegrees(r.Z))
}

// View returns the current view parameters.
func (c *Camera) View() View {
	return View{Offset: c.Offset, Rotation: c.Rotation, FOV: c.FOV}
}

// Display draws the scene back to front (painter's algorithm). Objects are
// stable-sorted by DistanceFromCamera, farthest first. There is no depth
// buffer, so intersecting geometry may be drawn out of order.
func (c *Camera) Display(s Surface) {
	c.order = c.scene.AppendTo(c.order[:0])

	c.depth = slices.Grow(c.depth[:0], len(c.order))[:len(c.order)]
	idx := make([]int, len(c.order))
	for i, d := range c.order {
		c.depth[i] = d.DistanceFromCamera(c.Offset)
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(c.depth[b], c.depth[a])
	})

	v := c.View()
	for _, i := range idx {
		c.order[i].Display(s, v)
	}
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
