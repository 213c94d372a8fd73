package render

import (
	"math"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// Flat shading parameters.
const (
	// NearPlane is the camera-space depth a triangle must pass with at least
	// one vertex to be drawn. It is deliberately larger than MinProjectionDepth.
	NearPlane = 5
	// MinIntensity is the ambient floor applied to every lit face.
	MinIntensity = 0.2
)

// LightDir is the fixed direction light travels in world space.
var LightDir = math3d.V3(0.4, -1, 0)

// DefaultTriangleColor is used when a triangle has no color.
var DefaultTriangleColor = ColorRed

// Triangle is a flat-shaded face over three shared vertices.
// Winding decides the normal: cross(v1-v0, v2-v0) points outward.
type Triangle struct {
	V     [3]*Vertex
	Color Color
}

// NewTriangle creates a triangle. A zero color falls back to DefaultTriangleColor.
func NewTriangle(v0, v1, v2 *Vertex, c Color) *Triangle {
	if c == (Color{}) {
		c = DefaultTriangleColor
	}
	return &Triangle{V: [3]*Vertex{v0, v1, v2}, Color: c}
}

// Normal returns the unit face normal.
func (t *Triangle) Normal() math3d.Vec3 {
	ab := t.V[1].Position.Sub(t.V[0].Position)
	ac := t.V[2].Position.Sub(t.V[0].Position)
	return ab.Cross(ac).Normalize()
}

// Center returns the centroid after shifting every vertex by offset.
func (t *Triangle) Center(offset math3d.Vec3) math3d.Vec3 {
	sum := math3d.Zero3()
	for _, v := range t.V {
		sum = sum.Add(v.Position.Add(offset))
	}
	return sum.Div(3)
}

// Visible reports whether any vertex lies beyond NearPlane in camera space.
func (t *Triangle) Visible(v View) bool {
	cam := t.cameraSpace(v)
	return visible(cam)
}

// Intensity returns the flat-shading factor for the face.
func (t *Triangle) Intensity() float64 {
	light := LightDir.Normalize()
	return math.Max(MinIntensity, t.Normal().Normalize().Dot(light.Negate()))
}

// DistanceFromCamera returns the distance from the centroid to the camera.
func (t *Triangle) DistanceFromCamera(offset math3d.Vec3) float64 {
	return t.Center(math3d.Zero3()).Distance(offset.Negate())
}

// Display projects and fills the triangle if it passes the near-plane test.
// Triangles straddling the plane are drawn whole with clamped depths.
func (t *Triangle) Display(s Surface, v View) {
	cam := t.cameraSpace(v)
	if !visible(cam) {
		return
	}

	points := []Point{
		v.Project(s, cam[0]),
		v.Project(s, cam[1]),
		v.Project(s, cam[2]),
	}
	s.FillPolygon(points, Shade(t.Color, t.Intensity()))
}

func (t *Triangle) cameraSpace(v View) [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		v.CameraSpace(t.V[0].Position),
		v.CameraSpace(t.V[1].Position),
		v.CameraSpace(t.V[2].Position),
	}
}

func visible(cam [3]math3d.Vec3) bool {
	for _, p := range cam {
		if p.Z > NearPlane {
			return true
		}
	}
	return false
}
