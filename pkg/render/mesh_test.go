package render

import (
	"testing"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

type fakeMesh struct {
	verts  []math3d.Vec3
	faces  [][3]int
	colors map[int]Color
}

func (m fakeMesh) VertexCount() int            { return len(m.verts) }
func (m fakeMesh) TriangleCount() int          { return len(m.faces) }
func (m fakeMesh) GetVertex(i int) math3d.Vec3 { return m.verts[i] }
func (m fakeMesh) GetFace(i int) [3]int        { return m.faces[i] }
func (m fakeMesh) GetFaceColor(i int) (Color, bool) {
	c, ok := m.colors[i]
	return c, ok
}

func TestFromMesh(t *testing.T) {
	blue := RGB(0, 0, 255)
	m := fakeMesh{
		verts: []math3d.Vec3{
			math3d.V3(0, 0, 0),
			math3d.V3(1, 0, 0),
			math3d.V3(1, 1, 0),
			math3d.V3(0, 1, 0),
			math3d.V3(0, 0, 0), // duplicate of 0
		},
		faces: [][3]int{
			{0, 1, 2},
			{4, 2, 3},
			{0, 1, 9}, // out of range
		},
		colors: map[int]Color{1: blue},
	}

	pool := NewVertexPool()
	ds := FromMesh(m, pool, ColorWhite)
	if len(ds) != 2 {
		t.Fatalf("got %d drawables, want 2", len(ds))
	}
	if pool.Len() != 4 {
		t.Errorf("pool has %d vertices, want 4", pool.Len())
	}

	t0 := ds[0].(*Triangle)
	t1 := ds[1].(*Triangle)
	if t0.Color != ColorWhite {
		t.Errorf("face without color = %v, want fallback", t0.Color)
	}
	if t1.Color != blue {
		t.Errorf("face color = %v, want %v", t1.Color, blue)
	}
	if t0.V[0] != t1.V[0] {
		t.Error("duplicate positions were not shared")
	}
}
