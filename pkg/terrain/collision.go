package terrain

import (
	"math"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// CollidesBox reports whether box overlaps any solid voxel. Boxes touching a
// voxel face count as overlapping.
func (t *Terrain) CollidesBox(box math3d.Box) bool {
	if t.blockSize <= 0 || t.size[0] == 0 || t.size[1] == 0 || t.size[2] == 0 {
		return false
	}

	ext := t.Extent()
	if box.UX < ext.LX || box.LX > ext.UX {
		return false
	}
	if box.UY < ext.LY || box.LY > ext.UY {
		return false
	}
	if box.UZ < ext.LZ || box.LZ > ext.UZ {
		return false
	}

	// Cells spanned by the box, plus one cell of margin on each side.
	lower := box.Min().Sub(t.position).Div(t.blockSize)
	upper := box.Max().Sub(t.position).Div(t.blockSize)
	var lo, hi [3]int
	for a := range 3 {
		lo[a] = max(t.cell(lower.Get(a), a)-1, 0)
		hi[a] = min(t.cell(upper.Get(a), a)+2, t.size[a])
	}

	edge := math3d.V3(t.blockSize, t.blockSize, t.blockSize)
	half := edge.Div(2)
	for x := lo[0]; x < hi[0]; x++ {
		for y := lo[1]; y < hi[1]; y++ {
			for z := lo[2]; z < hi[2]; z++ {
				if t.blocks[x][y][z] == 0 {
					continue
				}
				idx := math3d.V3(float64(x), float64(y), float64(z))
				center := t.position.Add(idx.Scale(t.blockSize)).Add(half)
				if math3d.NewBox(edge, center).Intersects(box) {
					return true
				}
			}
		}
	}
	return false
}

// cell floors a grid coordinate along axis a, clamped to [-1, size].
func (t *Terrain) cell(v float64, a int) int {
	return int(math.Floor(math.Min(math.Max(v, -1), float64(t.size[a]))))
}
