package main

import (
	"fmt"

	"github.com/taigrr/voxelwalk/pkg/config"
	"github.com/taigrr/voxelwalk/pkg/input"
	"github.com/taigrr/voxelwalk/pkg/math3d"
	"github.com/taigrr/voxelwalk/pkg/models"
	"github.com/taigrr/voxelwalk/pkg/render"
	"github.com/taigrr/voxelwalk/pkg/terrain"
)

// world is everything one session draws and simulates.
type world struct {
	cfg     config.Config
	camera  *render.Camera
	terrain *terrain.Terrain
}

func newWorld(cfg config.Config) (*world, error) {
	cam := render.NewCamera(cfg.View.FOV)
	if !cfg.Player.Enabled {
		cam.SetPosition(config.Vec(cfg.Player.FlyStart))
	}

	t := terrain.New(cam, cfg.TerrainOptions())
	if err := t.Generate(config.Vec(cfg.World.Size), cfg.World.BlockSize, config.Vec(cfg.World.Center)); err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	t.ResetMesh()

	w := &world{cfg: cfg, camera: cam, terrain: t}
	for _, p := range cfg.Props {
		if err := w.addProp(p); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// addProp loads a model and stands it on the terrain. A zero position means
// the top of the middle column.
func (w *world) addProp(p config.Prop) error {
	mesh, err := models.LoadGLB(p.Path)
	if err != nil {
		return fmt.Errorf("load prop %s: %w", p.Path, err)
	}

	base := config.Vec(p.Position)
	if base == math3d.Zero3() {
		base = w.surfaceCenter()
	}
	mesh.PlaceOn(base, p.Size)

	drawables := render.FromMesh(mesh, render.NewVertexPool(), render.ColorWhite)
	w.camera.Scene().Add(drawables...)
	return nil
}

// surfaceCenter returns the top of the terrain column nearest the grid center.
func (w *world) surfaceCenter() math3d.Vec3 {
	sx, _, sz := w.terrain.Size()
	cx, cz := sx/2, sz/2
	bs := w.terrain.BlockSize()
	pos := w.terrain.Position()
	return math3d.V3(
		pos.X+(float64(cx)+0.5)*bs,
		pos.Y+float64(w.terrain.Height(cx, cz))*bs,
		pos.Z+(float64(cz)+0.5)*bs,
	)
}

// step advances one frame of input and physics.
func (w *world) step(s input.State) {
	w.terrain.HandleInput(s)
	w.terrain.Tick()
}

// draw renders the current frame into fb.
func (w *world) draw(fb *render.Framebuffer) {
	fb.Clear(w.cfg.BackgroundColor())
	w.camera.Display(fb)
}

// snapshot lets the player settle for ticks frames and writes one frame to path.
func (w *world) snapshot(path string, width, height, ticks int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size %dx%d: must be positive", width, height)
	}
	for range max(ticks, 0) {
		w.step(input.State{})
	}

	fb := render.NewFramebuffer(width, height)
	w.draw(fb)
	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// mouseLook converts a tracker snapshot's cell movement into look units.
func mouseLook(s input.State, scale float64) input.State {
	s.MouseDX *= scale
	s.MouseDY *= scale
	return s
}
