// Package config loads voxelwalk settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/voxelwalk/pkg/math3d"
	"github.com/taigrr/voxelwalk/pkg/render"
	"github.com/taigrr/voxelwalk/pkg/terrain"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// World size limits. Larger grids do not fit in memory or mesh in a frame.
const (
	MaxWorldSize  = 512     // cells per axis
	MaxWorldCells = 1 << 22 // cells in the whole grid
)

// Config is the full set of settings. Zero-valued fields in a file keep
// their defaults because files are decoded over Default().
type Config struct {
	World  World  `yaml:"world"`
	Player Player `yaml:"player"`
	View   View   `yaml:"view"`
	Props  []Prop `yaml:"props,omitempty"`
}

// World describes the generated terrain.
type World struct {
	Size      [3]float64 `yaml:"size"`
	BlockSize float64    `yaml:"block_size"`
	Center    [3]float64 `yaml:"center"`
	Seed      int64      `yaml:"seed"`
	Boundary  string     `yaml:"boundary"` // open or sealed
}

// Player holds movement tuning. With Enabled false the camera flies freely.
type Player struct {
	Enabled       bool       `yaml:"enabled"`
	MovementSpeed float64    `yaml:"movement_speed"`
	CameraSpeed   float64    `yaml:"camera_speed"`
	Friction      float64    `yaml:"friction"`
	Gravity       [3]float64 `yaml:"gravity"`
	FlySpeed      float64    `yaml:"fly_speed"`
	FlyStart      [3]float64 `yaml:"fly_start"`
}

// View holds camera and terminal settings.
type View struct {
	FOV        float64       `yaml:"fov"`
	FPS        int           `yaml:"fps"`
	Background [3]uint8      `yaml:"background"`
	KeyHold    time.Duration `yaml:"key_hold"`

	// MouseScale converts terminal cells of mouse movement to look units;
	// MouseDivisor look units turn the camera one degree.
	MouseScale   float64 `yaml:"mouse_scale"`
	MouseDivisor float64 `yaml:"mouse_divisor"`
	SmoothLook   bool    `yaml:"smooth_look"`
}

// Prop is a model placed on the terrain.
type Prop struct {
	Path     string     `yaml:"path"`
	Position [3]float64 `yaml:"position"`
	Size     float64    `yaml:"size"`
}

// Default returns the built-in settings: a 15×5×15 world of 20-unit blocks
// walked by a player.
func Default() Config {
	return Config{
		World: World{
			Size:      [3]float64{15, 5, 15},
			BlockSize: 20,
			Seed:      1,
			Boundary:  terrain.BoundaryOpen.String(),
		},
		Player: Player{
			Enabled:       true,
			MovementSpeed: terrain.DefaultMovementSpeed,
			CameraSpeed:   terrain.DefaultCameraSpeed,
			Friction:      terrain.DefaultFriction,
			Gravity:       [3]float64{0, -1, 0},
			FlySpeed:      terrain.DefaultFlySpeed,
			FlyStart:      [3]float64{0, 0, -100},
		},
		View: View{
			FOV:          render.DefaultFOV,
			FPS:          60,
			Background:   [3]uint8{50, 54, 61},
			KeyHold:      150 * time.Millisecond,
			MouseScale:   8,
			MouseDivisor: terrain.DefaultMouseDivisor,
			SmoothLook:   true,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every out-of-range field. An oversized world is rejected
// here; a fractional world size is left to terrain generation, which rejects
// it with terrain.ErrNonIntegerSize.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	sz := c.World.Size
	if sz[0] > MaxWorldSize || sz[1] > MaxWorldSize || sz[2] > MaxWorldSize {
		bad("world.size", "must be at most %d per axis, got %v", MaxWorldSize, sz)
	} else if sz[0]*sz[1]*sz[2] > MaxWorldCells {
		bad("world.size", "must hold at most %d cells, got %v", MaxWorldCells, sz)
	}
	if c.World.BlockSize <= 0 {
		bad("world.block_size", "must be positive, got %v", c.World.BlockSize)
	}
	if _, ok := terrain.ParseBoundary(c.World.Boundary); !ok {
		bad("world.boundary", "must be open or sealed, got %q", c.World.Boundary)
	}

	if c.Player.MovementSpeed < 0 {
		bad("player.movement_speed", "must not be negative, got %v", c.Player.MovementSpeed)
	}
	if c.Player.CameraSpeed < 0 {
		bad("player.camera_speed", "must not be negative, got %v", c.Player.CameraSpeed)
	}
	if c.Player.Friction < 0 || c.Player.Friction > 1 {
		bad("player.friction", "must be in [0, 1], got %v", c.Player.Friction)
	}
	if c.Player.FlySpeed < 0 {
		bad("player.fly_speed", "must not be negative, got %v", c.Player.FlySpeed)
	}

	if c.View.FOV <= 0 || c.View.FOV >= 180 {
		bad("view.fov", "must be in (0, 180), got %v", c.View.FOV)
	}
	if c.View.FPS <= 0 || c.View.FPS > 240 {
		bad("view.fps", "must be in [1, 240], got %d", c.View.FPS)
	}
	if c.View.KeyHold <= 0 {
		bad("view.key_hold", "must be positive, got %v", c.View.KeyHold)
	}
	if c.View.MouseScale < 0 {
		bad("view.mouse_scale", "must not be negative, got %v", c.View.MouseScale)
	}
	if c.View.MouseDivisor <= 0 {
		bad("view.mouse_divisor", "must be positive, got %v", c.View.MouseDivisor)
	}

	for i, p := range c.Props {
		if p.Path == "" {
			bad(fmt.Sprintf("props[%d].path", i), "must be set")
		}
		if p.Size <= 0 {
			bad(fmt.Sprintf("props[%d].size", i), "must be positive, got %v", p.Size)
		}
	}

	return errors.Join(errs...)
}

// TerrainOptions converts the world and player settings for terrain.New.
func (c Config) TerrainOptions() terrain.Options {
	b, _ := terrain.ParseBoundary(c.World.Boundary)
	return terrain.Options{
		Player:        c.Player.Enabled,
		Boundary:      b,
		Seed:          c.World.Seed,
		Gravity:       Vec(c.Player.Gravity),
		Friction:      c.Player.Friction,
		MovementSpeed: c.Player.MovementSpeed,
		CameraSpeed:   c.Player.CameraSpeed,
		FlySpeed:      c.Player.FlySpeed,
		MouseDivisor:  c.View.MouseDivisor,
	}
}

// BackgroundColor returns the frame clear color.
func (c Config) BackgroundColor() render.Color {
	bg := c.View.Background
	return render.RGB(bg[0], bg[1], bg[2])
}

// Vec converts a YAML triple to a vector.
func Vec(a [3]float64) math3d.Vec3 {
	return math3d.V3(a[0], a[1], a[2])
}
