// Package terrain implements a voxel heightmap world: random generation,
// surface meshing, box collision and a simple walking player.
package terrain

import (
	"math/rand"

	"github.com/taigrr/voxelwalk/pkg/math3d"
	"github.com/taigrr/voxelwalk/pkg/render"
)

// Player and camera defaults.
const (
	DefaultJumpPower     = 9
	DefaultCameraSpeed   = 5
	DefaultMovementSpeed = 0.4
	DefaultFriction      = 0.9
	DefaultFlySpeed      = 2
	DefaultMouseDivisor  = 6
)

// PlayerStart is where a player camera is placed by New.
var PlayerStart = math3d.V3(0, 100, 0)

// FaceColor is the color of every terrain face.
var FaceColor = render.RGB(90, 200, 50)

// Boundary decides how faces on the edge of the grid are treated.
type Boundary int

const (
	// BoundaryOpen treats every cell outside the grid as empty, so the
	// terrain is a closed solid seen from any side.
	BoundaryOpen Boundary = iota
	// BoundarySealed treats only the sky above the grid as empty. Walls and
	// floor are never drawn.
	BoundarySealed
)

func (b Boundary) String() string {
	switch b {
	case BoundaryOpen:
		return "open"
	case BoundarySealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// ParseBoundary converts "open" or "sealed" to a Boundary.
func ParseBoundary(s string) (Boundary, bool) {
	switch s {
	case "open", "":
		return BoundaryOpen, true
	case "sealed":
		return BoundarySealed, true
	}
	return 0, false
}

// Options configures a Terrain. Start from DefaultOptions; zero values are
// used as given.
type Options struct {
	// Player enables gravity, collision and walking controls. Without it the
	// camera flies freely.
	Player   bool
	Boundary Boundary
	Seed     int64

	Gravity       math3d.Vec3
	Friction      float64
	MovementSpeed float64
	CameraSpeed   float64 // degrees per frame for look keys
	FlySpeed      float64 // free-fly units and degrees per frame
	MouseDivisor  float64 // mouse movement per degree of rotation
}

// DefaultOptions returns options for a walking player.
func DefaultOptions() Options {
	return Options{
		Player:        true,
		Boundary:      BoundaryOpen,
		Seed:          1,
		Gravity:       math3d.V3(0, -1, 0),
		Friction:      DefaultFriction,
		MovementSpeed: DefaultMovementSpeed,
		CameraSpeed:   DefaultCameraSpeed,
		FlySpeed:      DefaultFlySpeed,
		MouseDivisor:  DefaultMouseDivisor,
	}
}

// Terrain is a grid of unit voxels scaled by a block size and drawn into the
// camera's scene.
type Terrain struct {
	cam  *render.Camera
	opts Options
	rng  *rand.Rand

	blocks    [][][]uint8 // [x][y][z], 1 is solid
	size      [3]int
	blockSize float64
	position  math3d.Vec3 // world position of the grid's minimum corner

	handle    render.Handle
	vertices  map[lattice]*render.Vertex
	order     []*render.Vertex
	triangles []*render.Triangle

	velocity  math3d.Vec3
	onFloor   bool
	jumpPower float64
}

// New creates an empty terrain drawn through cam. A player terrain moves the
// camera to PlayerStart.
func New(cam *render.Camera, opts Options) *Terrain {
	t := &Terrain{
		cam:       cam,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		jumpPower: DefaultJumpPower,
	}
	if opts.Player {
		cam.SetPosition(PlayerStart)
	}
	return t
}

// Camera returns the camera the terrain draws into and moves.
func (t *Terrain) Camera() *render.Camera { return t.cam }

// Options returns the terrain's options.
func (t *Terrain) Options() Options { return t.opts }

// Size returns the grid dimensions in blocks.
func (t *Terrain) Size() (x, y, z int) { return t.size[0], t.size[1], t.size[2] }

// BlockSize returns the edge length of one voxel.
func (t *Terrain) BlockSize() float64 { return t.blockSize }

// Position returns the world position of the grid's minimum corner.
func (t *Terrain) Position() math3d.Vec3 { return t.position }

// Extent returns the world-space bounds of the whole grid.
func (t *Terrain) Extent() math3d.Box {
	return math3d.Box{
		LX: t.position.X, UX: t.position.X + float64(t.size[0])*t.blockSize,
		LY: t.position.Y, UY: t.position.Y + float64(t.size[1])*t.blockSize,
		LZ: t.position.Z, UZ: t.position.Z + float64(t.size[2])*t.blockSize,
	}
}

// Solid reports whether the voxel at (x, y, z) is filled. Cells outside the
// grid are never solid.
func (t *Terrain) Solid(x, y, z int) bool {
	if !t.inGrid(x, y, z) {
		return false
	}
	return t.blocks[x][y][z] != 0
}

// Height returns the number of solid voxels in column (x, z).
func (t *Terrain) Height(x, z int) int {
	n := 0
	for y := range t.size[1] {
		if t.Solid(x, y, z) {
			n++
		}
	}
	return n
}

func (t *Terrain) inGrid(x, y, z int) bool {
	return x >= 0 && x < t.size[0] &&
		y >= 0 && y < t.size[1] &&
		z >= 0 && z < t.size[2]
}

// OnFloor reports whether the last Tick found the player standing on a block.
func (t *Terrain) OnFloor() bool { return t.onFloor }

// Velocity returns the player's velocity in world units per tick.
func (t *Terrain) Velocity() math3d.Vec3 { return t.velocity }

// SetVelocity replaces the player's velocity.
func (t *Terrain) SetVelocity(v math3d.Vec3) { t.velocity = v }

// JumpPower returns the upward velocity applied by a jump.
func (t *Terrain) JumpPower() float64 { return t.jumpPower }
