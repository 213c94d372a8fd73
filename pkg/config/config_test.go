package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taigrr/voxelwalk/pkg/math3d"
	"github.com/taigrr/voxelwalk/pkg/terrain"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultTerrainOptions(t *testing.T) {
	got := Default().TerrainOptions()
	want := terrain.DefaultOptions()
	if got != want {
		t.Errorf("TerrainOptions = %+v, want %+v", got, want)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.View.FOV != 120 || cfg.World.BlockSize != 20 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxelwalk.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
world:
  size: [8, 3, 8]
  boundary: sealed
player:
  enabled: false
view:
  fov: 90
  key_hold: 200ms
props:
  - path: tree.glb
    position: [0, 10, 0]
    size: 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Size != [3]float64{8, 3, 8} {
		t.Errorf("size = %v", cfg.World.Size)
	}
	if cfg.World.BlockSize != 20 {
		t.Errorf("block_size lost its default: %v", cfg.World.BlockSize)
	}
	if cfg.View.FOV != 90 || cfg.View.FPS != 60 {
		t.Errorf("view = %+v", cfg.View)
	}
	if cfg.View.KeyHold != 200*time.Millisecond {
		t.Errorf("key_hold = %v", cfg.View.KeyHold)
	}
	if len(cfg.Props) != 1 || Vec(cfg.Props[0].Position) != math3d.V3(0, 10, 0) {
		t.Errorf("props = %+v", cfg.Props)
	}

	opts := cfg.TerrainOptions()
	if opts.Player || opts.Boundary != terrain.BoundarySealed {
		t.Errorf("options = %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := Load(writeFile(t, "world: [not, a, map")); err == nil {
		t.Error("malformed YAML accepted")
	}
	_, err := Load(writeFile(t, "view:\n  fov: 200\n"))
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "view.fov") {
		t.Errorf("err = %v, want invalid view.fov", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"block size", func(c *Config) { c.World.BlockSize = 0 }, "world.block_size"},
		{"huge axis", func(c *Config) { c.World.Size = [3]float64{1e12, 5, 1e12} }, "world.size"},
		{"too many cells", func(c *Config) { c.World.Size = [3]float64{512, 512, 512} }, "world.size"},
		{"boundary", func(c *Config) { c.World.Boundary = "walls" }, "world.boundary"},
		{"friction", func(c *Config) { c.Player.Friction = 1.5 }, "player.friction"},
		{"negative speed", func(c *Config) { c.Player.MovementSpeed = -1 }, "player.movement_speed"},
		{"fps", func(c *Config) { c.View.FPS = 0 }, "view.fps"},
		{"key hold", func(c *Config) { c.View.KeyHold = 0 }, "view.key_hold"},
		{"mouse divisor", func(c *Config) { c.View.MouseDivisor = 0 }, "view.mouse_divisor"},
		{"prop path", func(c *Config) { c.Props = []Prop{{Size: 1}} }, "props[0].path"},
		{"prop size", func(c *Config) { c.Props = []Prop{{Path: "a.glb"}} }, "props[0].size"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("err %q does not name %s", err, tc.field)
			}
		})
	}
}

func TestValidateLeavesSizeToTerrain(t *testing.T) {
	cfg := Default()
	cfg.World.Size = [3]float64{4.5, 2, 4}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate rejected a fractional size: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(writeFile(t, string(data)))
	if err != nil {
		t.Fatalf("Load of marshalled defaults: %v", err)
	}
	if cfg.View != Default().View || cfg.World != Default().World || cfg.Player != Default().Player {
		t.Errorf("round trip changed config:\n%+v", cfg)
	}
}
