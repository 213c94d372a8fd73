package terrain

import (
	"github.com/taigrr/voxelwalk/pkg/math3d"
	"github.com/taigrr/voxelwalk/pkg/render"
)

// lattice is a voxel corner in grid coordinates.
type lattice [3]int

// face describes one side of a voxel: the neighbour it faces, its four
// corners relative to the voxel's minimum corner, and two triangles over
// those corners wound so the normal points outward.
type face struct {
	dir     [3]int
	corners [4]lattice
	tris    [2][3]int
}

var faces = [6]face{
	{ // +Y
		dir:     [3]int{0, 1, 0},
		corners: [4]lattice{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
		tris:    [2][3]int{{0, 1, 2}, {0, 2, 3}},
	},
	{ // -Y
		dir:     [3]int{0, -1, 0},
		corners: [4]lattice{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {1, 0, 0}},
		tris:    [2][3]int{{0, 2, 1}, {0, 3, 2}},
	},
	{ // +Z
		dir:     [3]int{0, 0, 1},
		corners: [4]lattice{{0, 1, 1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
		tris:    [2][3]int{{0, 1, 2}, {0, 2, 3}},
	},
	{ // -Z
		dir:     [3]int{0, 0, -1},
		corners: [4]lattice{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}},
		tris:    [2][3]int{{0, 1, 3}, {0, 3, 2}},
	},
	{ // +X
		dir:     [3]int{1, 0, 0},
		corners: [4]lattice{{1, 1, 0}, {1, 1, 1}, {1, 0, 0}, {1, 0, 1}},
		tris:    [2][3]int{{0, 1, 3}, {0, 3, 2}},
	},
	{ // -X
		dir:     [3]int{-1, 0, 0},
		corners: [4]lattice{{0, 1, 1}, {0, 1, 0}, {0, 0, 0}, {0, 0, 1}},
		tris:    [2][3]int{{0, 1, 2}, {0, 2, 3}},
	},
}

// ResetMesh rebuilds the surface mesh from the current blocks and swaps it
// into the camera's scene in place of the previous one. Every solid voxel
// face whose neighbour is empty becomes two triangles; shared corners are
// shared vertices.
func (t *Terrain) ResetMesh() {
	t.vertices = make(map[lattice]*render.Vertex)
	t.order = t.order[:0]
	t.triangles = nil

	for x := range t.size[0] {
		for y := range t.size[1] {
			for z := range t.size[2] {
				if t.blocks[x][y][z] == 0 {
					continue
				}
				for i := range faces {
					f := &faces[i]
					if !t.exposed(x+f.dir[0], y+f.dir[1], z+f.dir[2]) {
						continue
					}
					t.emitFace(f, lattice{x, y, z})
				}
			}
		}
	}

	ds := make([]render.Drawable, len(t.triangles))
	for i, tr := range t.triangles {
		ds[i] = tr
	}
	t.handle = t.cam.Scene().Replace(t.handle, ds)
}

// exposed reports whether a face looking into cell (x, y, z) should be drawn.
func (t *Terrain) exposed(x, y, z int) bool {
	if t.inGrid(x, y, z) {
		return t.blocks[x][y][z] == 0
	}
	if t.opts.Boundary == BoundarySealed {
		return y >= t.size[1]
	}
	return true
}

func (t *Terrain) emitFace(f *face, at lattice) {
	var v [4]*render.Vertex
	for i, c := range f.corners {
		v[i] = t.vertex(lattice{at[0] + c[0], at[1] + c[1], at[2] + c[2]})
	}
	for _, tri := range f.tris {
		t.triangles = append(t.triangles, render.NewTriangle(v[tri[0]], v[tri[1]], v[tri[2]], FaceColor))
	}
}

func (t *Terrain) vertex(c lattice) *render.Vertex {
	if v, ok := t.vertices[c]; ok {
		return v
	}
	p := math3d.V3(float64(c[0]), float64(c[1]), float64(c[2]))
	v := render.NewVertex(t.position.Add(p.Scale(t.blockSize)))
	t.vertices[c] = v
	t.order = append(t.order, v)
	return v
}

// Triangles returns the current mesh.
func (t *Terrain) Triangles() []*render.Triangle { return t.triangles }

// Vertices returns the current mesh's distinct vertices.
func (t *Terrain) Vertices() []*render.Vertex { return t.order }

// Handle returns the terrain's group in the camera's scene, or zero before
// the first ResetMesh.
func (t *Terrain) Handle() render.Handle { return t.handle }
