package terrain

import (
	"errors"
	"fmt"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

var (
	// ErrNonIntegerSize is returned when a grid size is fractional or negative.
	ErrNonIntegerSize = errors.New("terrain size must be a vector of non-negative integers")
	// ErrBlockSize is returned for a non-positive block size.
	ErrBlockSize = errors.New("block size must be positive")
	// ErrRaggedGrid is returned by SetBlocks when rows differ in length.
	ErrRaggedGrid = errors.New("block grid is not rectangular")
)

// Generate fills a size.X × size.Y × size.Z grid with a random smoothed
// heightmap centred on center. Each column gets a random height in
// [0, size.Y], which is then replaced by the floored mean of its 3×3
// neighbourhood (clipped to the grid). The jump power becomes blockSize/2.
func (t *Terrain) Generate(size math3d.Vec3, blockSize float64, center math3d.Vec3) error {
	if !size.IsIntegral() || size.X < 0 || size.Y < 0 || size.Z < 0 {
		return fmt.Errorf("generate %v: %w", size, ErrNonIntegerSize)
	}
	if blockSize <= 0 {
		return fmt.Errorf("generate with block size %v: %w", blockSize, ErrBlockSize)
	}

	sx, sy, sz := int(size.X), int(size.Y), int(size.Z)

	raw := make([][]int, sx)
	for x := range raw {
		raw[x] = make([]int, sz)
		for z := range raw[x] {
			raw[x][z] = t.rng.Intn(sy + 1)
		}
	}
	heights := smoothHeights(raw)

	blocks := newGrid(sx, sy, sz)
	for x := range sx {
		for z := range sz {
			for y := range heights[x][z] {
				blocks[x][y][z] = 1
			}
		}
	}

	t.install(blocks, [3]int{sx, sy, sz}, blockSize, center)
	return nil
}

// SetBlocks installs an explicit [x][y][z] grid centred on center. Any
// non-zero cell is solid.
func (t *Terrain) SetBlocks(blocks [][][]uint8, blockSize float64, center math3d.Vec3) error {
	if blockSize <= 0 {
		return fmt.Errorf("set blocks with block size %v: %w", blockSize, ErrBlockSize)
	}

	var size [3]int
	size[0] = len(blocks)
	if size[0] > 0 {
		size[1] = len(blocks[0])
		if size[1] > 0 {
			size[2] = len(blocks[0][0])
		}
	}

	grid := newGrid(size[0], size[1], size[2])
	for x := range blocks {
		if len(blocks[x]) != size[1] {
			return fmt.Errorf("set blocks: column %d has %d rows, want %d: %w", x, len(blocks[x]), size[1], ErrRaggedGrid)
		}
		for y := range blocks[x] {
			if len(blocks[x][y]) != size[2] {
				return fmt.Errorf("set blocks: row (%d,%d) has %d cells, want %d: %w", x, y, len(blocks[x][y]), size[2], ErrRaggedGrid)
			}
			copy(grid[x][y], blocks[x][y])
		}
	}

	t.install(grid, size, blockSize, center)
	return nil
}

func (t *Terrain) install(blocks [][][]uint8, size [3]int, blockSize float64, center math3d.Vec3) {
	t.blocks = blocks
	t.size = size
	t.blockSize = blockSize
	t.jumpPower = blockSize / 2

	dims := math3d.V3(float64(size[0]), float64(size[1]), float64(size[2]))
	t.position = center.Sub(dims.Scale(blockSize).Div(2))
}

func newGrid(sx, sy, sz int) [][][]uint8 {
	cells := make([]uint8, sx*sy*sz)
	grid := make([][][]uint8, sx)
	for x := range grid {
		grid[x] = make([][]uint8, sy)
		for y := range grid[x] {
			off := (x*sy + y) * sz
			grid[x][y] = cells[off : off+sz : off+sz]
		}
	}
	return grid
}

// smoothHeights replaces every cell with the floored mean of its 3×3
// neighbourhood, ignoring cells outside the grid.
func smoothHeights(raw [][]int) [][]int {
	out := make([][]int, len(raw))
	for x := range raw {
		out[x] = make([]int, len(raw[x]))
		for z := range raw[x] {
			total, count := 0, 0
			for dx := -1; dx <= 1; dx++ {
				for dz := -1; dz <= 1; dz++ {
					nx, nz := x+dx, z+dz
					if nx < 0 || nx >= len(raw) || nz < 0 || nz >= len(raw[nx]) {
						continue
					}
					total += raw[nx][nz]
					count++
				}
			}
			out[x][z] = total / count
		}
	}
	return out
}
