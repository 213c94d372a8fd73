package terrain

import (
	"math"
	"testing"

	"github.com/taigrr/voxelwalk/pkg/input"
	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// floorTerrain is a 3×1×3 player terrain whose top face is at y=5.
func floorTerrain(t *testing.T) *Terrain {
	t.Helper()
	tr := newTerrain(t, DefaultOptions())
	if err := tr.SetBlocks(slab(3, 1, 3), 10, math3d.Zero3()); err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestPlayerBox(t *testing.T) {
	tr := floorTerrain(t)
	tr.Camera().SetPosition(math3d.V3(0, 30, 0))
	b := tr.PlayerBox()
	want := math3d.Box{LX: -2.5, UX: 2.5, LY: 5, UY: 25, LZ: -2.5, UZ: 2.5}
	if b != want {
		t.Errorf("PlayerBox = %+v, want %+v", b, want)
	}
}

func TestTickRestingStaysAtRest(t *testing.T) {
	tests := []struct {
		name string
		eyeY float64
	}{
		{"touching the floor", 30},
		{"hovering within one step", 30.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := floorTerrain(t)
			start := math3d.V3(0, tc.eyeY, 0)
			tr.Camera().SetPosition(start)

			for range 3 {
				tr.Tick()
				if !tr.OnFloor() {
					t.Fatal("not on floor")
				}
				if tr.Velocity() != math3d.Zero3() {
					t.Fatalf("velocity = %v, want zero", tr.Velocity())
				}
				if tr.Camera().Position() != start {
					t.Fatalf("moved to %v", tr.Camera().Position())
				}
			}
		})
	}
}

func TestTickFallsAndLands(t *testing.T) {
	tr := floorTerrain(t)
	if tr.Camera().Position() != PlayerStart {
		t.Fatalf("start = %v", tr.Camera().Position())
	}

	tr.Tick()
	if tr.OnFloor() {
		t.Error("on floor while in the air")
	}
	if got := tr.Camera().Position().Y; math.Abs(got-99.1) > 1e-9 {
		t.Errorf("after one tick y = %v, want 99.1", got)
	}

	for range 200 {
		tr.Tick()
	}
	if !tr.OnFloor() {
		t.Fatal("never landed")
	}
	if box := tr.PlayerBox(); box.LY < 5 || box.LY > 5+9 {
		t.Errorf("landed with feet at %v", box.LY)
	}
}

func TestTickFreeFlyDoesNothing(t *testing.T) {
	opts := DefaultOptions()
	opts.Player = false
	tr := newTerrain(t, opts)
	tr.SetVelocity(math3d.V3(1, 2, 3))
	tr.Tick()
	if tr.Camera().Position() != math3d.Zero3() || tr.Velocity() != math3d.V3(1, 2, 3) {
		t.Error("free-fly Tick changed state")
	}
}

func TestTickBlockedHorizontally(t *testing.T) {
	tr := floorTerrain(t)
	// Stand beside the slab with feet below its top, pushing into it.
	tr.Camera().SetPosition(math3d.V3(-18, 20, 0))
	tr.SetVelocity(math3d.V3(10, 0, 0))
	tr.Tick()
	if tr.Velocity().X != 0 {
		t.Errorf("velocity.X = %v, want 0 after hitting the wall", tr.Velocity().X)
	}
	if tr.Camera().Position().X != -18 {
		t.Errorf("x = %v, want -18", tr.Camera().Position().X)
	}
}

func TestHandleInputWalk(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		key  input.Key
		want math3d.Vec3
	}{
		{"forward", 0, input.Forward, math3d.V3(0, 0, 0.4)},
		{"back", 0, input.Back, math3d.V3(0, 0, -0.4)},
		{"right", 0, input.Right, math3d.V3(0.4, 0, 0)},
		{"left", 0, input.Left, math3d.V3(-0.4, 0, 0)},
		{"forward after quarter turn", 90, input.Forward, math3d.V3(-0.4, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := floorTerrain(t)
			tr.Camera().Rotation = math3d.V3(0, tc.yaw, 0)
			tr.HandleInput(input.NewState(tc.key))
			if !vecNear(tr.Velocity(), tc.want) {
				t.Errorf("velocity = %v, want %v", tr.Velocity(), tc.want)
			}
		})
	}
}

func TestHandleInputJumpNeedsFloor(t *testing.T) {
	tr := floorTerrain(t)
	tr.HandleInput(input.NewState(input.Jump))
	if tr.Velocity().Y != 0 {
		t.Error("jumped while in the air")
	}

	tr.Camera().SetPosition(math3d.V3(0, 30, 0))
	tr.Tick()
	tr.HandleInput(input.NewState(input.Jump))
	if tr.Velocity().Y != tr.JumpPower() || tr.JumpPower() != 5 {
		t.Errorf("velocity.Y = %v, want jump power 5", tr.Velocity().Y)
	}

	tr.Tick()
	if tr.Camera().Position().Y <= 30 {
		t.Error("jump did not lift the player")
	}
}

func TestHandleInputLook(t *testing.T) {
	tests := []struct {
		name  string
		state input.State
		want  math3d.Vec3
	}{
		{"look left", input.NewState(input.LookLeft), math3d.V3(0, 5, 0)},
		{"look right", input.NewState(input.LookRight), math3d.V3(0, 355, 0)},
		{"look up", input.NewState(input.LookUp), math3d.V3(355, 0, 0)},
		{"look down", input.NewState(input.LookDown), math3d.V3(5, 0, 0)},
		{"mouse right", input.State{MouseDX: 12}, math3d.V3(0, 358, 0)},
		{"mouse down", input.State{MouseDY: -6}, math3d.V3(1, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := floorTerrain(t)
			tr.HandleInput(tc.state)
			if !vecNear(tr.Camera().Rotation, tc.want) {
				t.Errorf("rotation = %v, want %v", tr.Camera().Rotation, tc.want)
			}
		})
	}
}

func TestHandleInputFly(t *testing.T) {
	opts := DefaultOptions()
	opts.Player = false

	tests := []struct {
		name string
		key  input.Key
		want math3d.Vec3
	}{
		{"forward", input.Forward, math3d.V3(0, 0, 2)},
		{"back", input.Back, math3d.V3(0, 0, -2)},
		{"right", input.Right, math3d.V3(2, 0, 0)},
		{"left", input.Left, math3d.V3(-2, 0, 0)},
		{"up", input.Up, math3d.V3(0, 2, 0)},
		{"down", input.Down, math3d.V3(0, -2, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTerrain(t, opts)
			tr.HandleInput(input.NewState(tc.key))
			if !vecNear(tr.Camera().Position(), tc.want) {
				t.Errorf("position = %v, want %v", tr.Camera().Position(), tc.want)
			}
			if tr.Velocity() != math3d.Zero3() {
				t.Error("free-fly input changed velocity")
			}
		})
	}

	looks := []struct {
		name string
		key  input.Key
		want math3d.Vec3
	}{
		{"look left", input.LookLeft, math3d.V3(0, 2, 0)},
		{"look right", input.LookRight, math3d.V3(0, 358, 0)},
		{"look up", input.LookUp, math3d.V3(2, 0, 0)},
		{"look down", input.LookDown, math3d.V3(358, 0, 0)},
	}
	for _, tc := range looks {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTerrain(t, opts)
			tr.HandleInput(input.NewState(tc.key))
			if !vecNear(tr.Camera().Rotation, tc.want) {
				t.Errorf("fly rotation = %v, want %v", tr.Camera().Rotation, tc.want)
			}
		})
	}
}

func vecNear(a, b math3d.Vec3) bool {
	const eps = 1e-9
	d := a.Sub(b)
	return d.Dot(d) <= eps*eps
}
