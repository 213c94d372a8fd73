package render

import (
	"math"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// recordedPolygon is one FillPolygon call captured by recordingSurface.
type recordedPolygon struct {
	points []Point
	color  Color
}

// recordingSurface implements Surface and remembers every draw call.
type recordingSurface struct {
	w, h   int
	polys  []recordedPolygon
	points []Point
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (r *recordingSurface) Width() int  { return r.w }
func (r *recordingSurface) Height() int { return r.h }

func (r *recordingSurface) FillPolygon(points []Point, c Color) {
	cp := make([]Point, len(points))
	copy(cp, points)
	r.polys = append(r.polys, recordedPolygon{points: cp, color: c})
}

func (r *recordingSurface) DrawPoint(x, y float64, c Color) {
	r.points = append(r.points, Point{x, y})
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b math3d.Vec3, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

// marker is a Drawable with a fixed depth that logs when it is drawn.
type marker struct {
	name  string
	depth float64
	log   *[]string
}

func (p marker) DistanceFromCamera(math3d.Vec3) float64 { return p.depth }
func (p marker) Display(Surface, View)                  { *p.log = append(*p.log, p.name) }
