package render

import (
	"math"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// MinProjectionDepth is the smallest camera-space depth used when projecting;
// points closer than this (or behind the camera) are pushed onto it.
const MinProjectionDepth = 1

// View is the camera state a drawable needs to project itself.
type View struct {
	Offset   math3d.Vec3 // negated camera world position
	Rotation math3d.Vec3 // Euler angles in degrees
	FOV      float64     // horizontal field of view in degrees
}

// CameraSpace transforms a world position into camera space.
// The camera looks down +Z; roll is never applied.
func (v View) CameraSpace(p math3d.Vec3) math3d.Vec3 {
	return p.Add(v.Offset).StepRotate(v.Rotation)
}

// Project maps a camera-space point onto the surface with a pinhole model.
func (v View) Project(s Surface, cam math3d.Vec3) Point {
	w, h := float64(s.Width()), float64(s.Height())
	scale := w / (2 * math.Tan(v.FOV*math.Pi/180/2))

	z := math.Max(MinProjectionDepth, cam.Z)
	return Point{
		X: (cam.X/z)*scale + w/2,
		Y: (-cam.Y/z)*scale + h/2,
	}
}

// Drawable is anything the camera can sort and draw.
type Drawable interface {
	// DistanceFromCamera returns the depth key used for back-to-front sorting.
	DistanceFromCamera(offset math3d.Vec3) float64
	// Display draws the object on s.
	Display(s Surface, v View)
}

// Vertex is a point in world space. Vertices are shared between triangles.
type Vertex struct {
	Position math3d.Vec3
}

// NewVertex creates a vertex at p.
func NewVertex(p math3d.Vec3) *Vertex {
	return &Vertex{Position: p}
}

// DistanceFromCamera returns the distance to the camera's world position,
// -offset, so vertices and triangles sort on the same key.
func (vx *Vertex) DistanceFromCamera(offset math3d.Vec3) float64 {
	return vx.Position.Distance(offset.Negate())
}

// Display draws the vertex as a white dot when it is in front of the camera.
func (vx *Vertex) Display(s Surface, v View) {
	cam := v.CameraSpace(vx.Position)
	if cam.Z <= 0 {
		return
	}
	p := v.Project(s, cam)
	s.DrawPoint(p.X, p.Y, ColorWhite)
}

// keyPrecision is the number of decimal digits kept by VertexKey.
const keyPrecision = 1e5

// VertexKey is a position quantised to 5 decimal digits.
type VertexKey struct {
	X, Y, Z int64
}

// KeyOf returns the quantised key for p.
func KeyOf(p math3d.Vec3) VertexKey {
	return VertexKey{
		X: int64(math.Round(p.X * keyPrecision)),
		Y: int64(math.Round(p.Y * keyPrecision)),
		Z: int64(math.Round(p.Z * keyPrecision)),
	}
}

// VertexPool deduplicates vertices by quantised position.
type VertexPool struct {
	byKey map[VertexKey]*Vertex
	order []*Vertex
}

// NewVertexPool creates an empty pool.
func NewVertexPool() *VertexPool {
	return &VertexPool{byKey: make(map[VertexKey]*Vertex)}
}

// Get returns the pooled vertex at p, inserting one on a miss.
func (vp *VertexPool) Get(p math3d.Vec3) *Vertex {
	k := KeyOf(p)
	if v, ok := vp.byKey[k]; ok {
		return v
	}
	v := NewVertex(p)
	vp.byKey[k] = v
	vp.order = append(vp.order, v)
	return v
}

// Len returns the number of distinct vertices.
func (vp *VertexPool) Len() int {
	return len(vp.order)
}

// Vertices returns the pooled vertices in insertion order.
func (vp *VertexPool) Vertices() []*Vertex {
	return vp.order
}
