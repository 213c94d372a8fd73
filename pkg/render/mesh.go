package render

import "github.com/taigrr/voxelwalk/pkg/math3d"

// MeshSource is implemented by models.Mesh.
// This interface allows building drawables without importing the models package.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
	// GetFaceColor returns the face's base color, or false if it has none.
	GetFaceColor(i int) (Color, bool)
}

// FromMesh builds triangles for every face of src. Vertices are deduplicated
// through pool so faces sharing a position share a Vertex. Faces without a
// color of their own use fallback.
func FromMesh(src MeshSource, pool *VertexPool, fallback Color) []Drawable {
	out := make([]Drawable, 0, src.TriangleCount())
	for i := 0; i < src.TriangleCount(); i++ {
		face := src.GetFace(i)

		var v [3]*Vertex
		valid := true
		for k, idx := range face {
			if idx < 0 || idx >= src.VertexCount() {
				valid = false
				break
			}
			v[k] = pool.Get(src.GetVertex(idx))
		}
		if !valid {
			continue
		}

		c, ok := src.GetFaceColor(i)
		if !ok {
			c = fallback
		}
		out = append(out, NewTriangle(v[0], v[1], v[2], c))
	}
	return out
}
