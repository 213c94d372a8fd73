package terrain

import (
	"testing"

	"github.com/taigrr/voxelwalk/pkg/math3d"
)

func TestCollidesBoxEmptyTerrain(t *testing.T) {
	tests := []struct {
		name string
		tr   func(t *testing.T) *Terrain
	}{
		{"never generated", func(t *testing.T) *Terrain {
			return newTerrain(t, DefaultOptions())
		}},
		{"all air", func(t *testing.T) *Terrain {
			tr := newTerrain(t, DefaultOptions())
			air := slab(4, 4, 4)
			for x := range air {
				for y := range air[x] {
					clear(air[x][y])
				}
			}
			if err := tr.SetBlocks(air, 10, math3d.Zero3()); err != nil {
				t.Fatal(err)
			}
			return tr
		}},
	}
	boxes := []math3d.Box{
		math3d.NewBox(math3d.V3(5, 5, 5), math3d.Zero3()),
		math3d.NewBox(math3d.V3(1000, 1000, 1000), math3d.Zero3()),
		math3d.NewBox(math3d.V3(1, 1, 1), math3d.V3(-19.5, -19.5, -19.5)),
		math3d.NewBox(math3d.V3(0, 0, 0), math3d.V3(3, 3, 3)),
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := tc.tr(t)
			for _, b := range boxes {
				if tr.CollidesBox(b) {
					t.Errorf("box %+v collided with empty terrain", b)
				}
			}
		})
	}
}

func TestCollidesBoxGenerated(t *testing.T) {
	tr := newTerrain(t, DefaultOptions())
	if err := tr.Generate(math3d.V3(5, 3, 5), 10, math3d.Zero3()); err != nil {
		t.Fatal(err)
	}

	query := math3d.V3(5, 5, 5)
	if tr.CollidesBox(math3d.NewBox(query, math3d.V3(0, -100, 0))) {
		t.Error("box far below the grid collided")
	}
	if tr.CollidesBox(math3d.NewBox(query, math3d.V3(0, 100, 0))) {
		t.Error("box far above the grid collided")
	}

	// The grid spans y in [-15, 15]; y=0 is the middle of layer 1.
	for x := range 5 {
		for z := range 5 {
			center := math3d.V3(float64(-20+10*x), 0, float64(-20+10*z))
			got := tr.CollidesBox(math3d.NewBox(query, center))
			if want := tr.Solid(x, 1, z); got != want {
				t.Errorf("column (%d,%d): collides = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestCollidesBoxTouching(t *testing.T) {
	tr := newTerrain(t, DefaultOptions())
	if err := tr.SetBlocks(slab(1, 1, 1), 10, math3d.Zero3()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		center math3d.Vec3
		want   bool
	}{
		{"resting on top face", math3d.V3(0, 6, 0), true},
		{"just above", math3d.V3(0, 6.01, 0), false},
		{"touching side", math3d.V3(-6, 0, 0), true},
		{"inside", math3d.Zero3(), true},
		{"corner contact", math3d.V3(6, 6, 6), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := math3d.NewBox(math3d.V3(2, 2, 2), tc.center)
			if got := tr.CollidesBox(b); got != tc.want {
				t.Errorf("CollidesBox = %v, want %v", got, tc.want)
			}
		})
	}
}

func BenchmarkCollidesBox(b *testing.B) {
	tr := New(nil, Options{})
	if err := tr.Generate(math3d.V3(15, 5, 15), 20, math3d.Zero3()); err != nil {
		b.Fatal(err)
	}
	box := math3d.NewBox(math3d.V3(10, 40, 10), math3d.V3(3, 0, -7))
	for b.Loop() {
		_ = tr.CollidesBox(box)
	}
}

func TestCollidesBoxTallBoxOnFloor(t *testing.T) {
	// 15×5×15 grid of 20-unit blocks, solid below layer 2: top face at y=-10.
	blocks := slab(15, 5, 15)
	for x := range blocks {
		for y := 2; y < 5; y++ {
			clear(blocks[x][y])
		}
	}
	tr := newTerrain(t, DefaultOptions())
	if err := tr.SetBlocks(blocks, 20, math3d.Zero3()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		feet float64
		want bool
	}{
		{"feet on top face", -10, true},
		{"feet one unit into floor", -11, true},
		{"feet a block into floor", -30, true},
		{"feet just above", -9.9, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Two blocks tall: the upper corner is two cells above the feet.
			b := math3d.Box{LX: 3, UX: 13, LY: tc.feet, UY: tc.feet + 40, LZ: 3, UZ: 13}
			if got := tr.CollidesBox(b); got != tc.want {
				t.Errorf("CollidesBox = %v, want %v", got, tc.want)
			}
		})
	}

	// Eye 50 above the feet.
	start := math3d.V3(8, 40, 8)
	tr.Camera().SetPosition(start)
	tr.Tick()
	if !tr.OnFloor() {
		t.Error("player standing on the floor is not on floor")
	}
	if tr.Camera().Position() != start {
		t.Errorf("player moved to %v, want %v", tr.Camera().Position(), start)
	}
}
