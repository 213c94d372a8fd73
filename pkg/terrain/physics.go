package terrain

import (
	"github.com/taigrr/voxelwalk/pkg/input"
	"github.com/taigrr/voxelwalk/pkg/math3d"
)

// PlayerBox returns the player's collision box: half a block wide and two
// blocks tall, hanging below the camera so the eye sits half a block above
// its top.
func (t *Terrain) PlayerBox() math3d.Box {
	bs := t.blockSize
	center := t.cam.Position().Sub(math3d.V3(0, bs*3/2, 0))
	return math3d.NewBox(math3d.V3(bs/2, bs*2, bs/2), center)
}

// Tick advances the player one frame: gravity and friction are applied to
// the velocity, then the camera moves one axis at a time (X, Y, Z). A move
// that makes the player box collide is undone and that axis's velocity
// zeroed. The Y step decides OnFloor. Tick does nothing in free-fly mode.
func (t *Terrain) Tick() {
	if !t.opts.Player {
		return
	}

	t.velocity = t.velocity.Add(t.opts.Gravity).Scale(t.opts.Friction)

	for axis := math3d.AxisX; axis <= math3d.AxisZ; axis++ {
		step := t.velocity.Get(axis)
		off := t.cam.Offset
		t.cam.Offset = off.With(axis, off.Get(axis)-step)

		hit := t.CollidesBox(t.PlayerBox())
		if hit {
			t.cam.Offset = off
			t.velocity = t.velocity.With(axis, 0)
		}
		if axis == math3d.AxisY {
			t.onFloor = hit
		}
	}
}

// HandleInput applies one frame of input: walking and jumping for a player,
// direct camera movement in free-fly mode. Look keys and mouse movement
// rotate the camera in both modes.
func (t *Terrain) HandleInput(s input.State) {
	if t.opts.Player {
		t.walk(s)
		t.look(s, t.opts.CameraSpeed, t.opts.CameraSpeed)
	} else {
		// Free flight pitches the opposite way to walking.
		t.fly(s)
		t.look(s, t.opts.FlySpeed, -t.opts.FlySpeed)
	}

	if (s.MouseDX != 0 || s.MouseDY != 0) && t.opts.MouseDivisor != 0 {
		d := t.opts.MouseDivisor
		t.cam.Rotate(math3d.V3(s.MouseDY/d, s.MouseDX/d, 0))
	}
}

func (t *Terrain) walk(s input.State) {
	speed := t.opts.MovementSpeed
	yaw := math3d.V3(0, -t.cam.Rotation.Y, 0)

	push := func(dir math3d.Vec3) {
		t.velocity = t.velocity.Add(dir.Rotate(yaw))
	}
	if s.Pressed(input.Forward) {
		push(math3d.V3(0, 0, speed))
	}
	if s.Pressed(input.Back) {
		push(math3d.V3(0, 0, -speed))
	}
	if s.Pressed(input.Right) {
		push(math3d.V3(speed, 0, 0))
	}
	if s.Pressed(input.Left) {
		push(math3d.V3(-speed, 0, 0))
	}
	if s.Pressed(input.Jump) && t.onFloor {
		t.velocity.Y = t.jumpPower
	}
}

func (t *Terrain) fly(s input.State) {
	sp := t.opts.FlySpeed
	moves := []struct {
		key   input.Key
		delta math3d.Vec3
	}{
		{input.Forward, math3d.V3(0, 0, -sp)},
		{input.Back, math3d.V3(0, 0, sp)},
		{input.Right, math3d.V3(-sp, 0, 0)},
		{input.Left, math3d.V3(sp, 0, 0)},
		{input.Up, math3d.V3(0, -sp, 0)},
		{input.Down, math3d.V3(0, sp, 0)},
	}
	for _, m := range moves {
		if s.Pressed(m.key) {
			t.cam.Move(m.delta)
		}
	}
}

// look turns the camera by yaw or pitch degrees per held look key. Rotate
// subtracts its argument, so turning left passes a negative yaw.
func (t *Terrain) look(s input.State, yaw, pitch float64) {
	if s.Pressed(input.LookLeft) {
		t.cam.Rotate(math3d.V3(0, -yaw, 0))
	}
	if s.Pressed(input.LookRight) {
		t.cam.Rotate(math3d.V3(0, yaw, 0))
	}
	if s.Pressed(input.LookUp) {
		t.cam.Rotate(math3d.V3(pitch, 0, 0))
	}
	if s.Pressed(input.LookDown) {
		t.cam.Rotate(math3d.V3(-pitch, 0, 0))
	}
}
