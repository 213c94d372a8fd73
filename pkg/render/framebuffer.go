// Package render provides the flat-shaded painter's renderer for voxelwalk.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"
)

// Point is a position on a Surface in pixels.
type Point struct {
	X, Y float64
}

// Surface is the 2D target the renderer draws on.
type Surface interface {
	Width() int
	Height() int
	FillPolygon(points []Point, c Color)
	DrawPoint(x, y float64, c Color)
}

// PointRadius is the radius in pixels of a point drawn with DrawPoint.
const PointRadius = 3

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	width  int
	height int
	Pixels []color.RGBA // Row-major pixel data

	crossings []float64 // scratch buffer reused by FillPolygon
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.Pixels[y*fb.width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.width+x]
}

// FillPolygon fills a polygon using even-odd scanlines sampled at pixel
// centers. Points far outside the framebuffer are fine; spans are clipped.
func (fb *Framebuffer) FillPolygon(points []Point, c Color) {
	n := len(points)
	if n < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsNaN(minY) || math.IsNaN(maxY) {
		return
	}

	// Clamp in float space first; projected points can be huge.
	y0 := int(clamp(math.Floor(minY), 0, float64(fb.height)))
	y1 := int(clamp(math.Ceil(maxY), -1, float64(fb.height-1)))

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5

		fb.crossings = fb.crossings[:0]
		for i := range n {
			a, b := points[i], points[(i+1)%n]
			// Half-open rule so shared vertices are counted once.
			if (a.Y <= py) == (b.Y <= py) {
				continue
			}
			t := (py - a.Y) / (b.Y - a.Y)
			fb.crossings = append(fb.crossings, a.X+t*(b.X-a.X))
		}
		slices.Sort(fb.crossings)

		for i := 0; i+1 < len(fb.crossings); i += 2 {
			// Pixel x is covered when its center x+0.5 lies in [left, right).
			lx := clamp(math.Ceil(fb.crossings[i]-0.5), 0, float64(fb.width))
			rx := clamp(math.Ceil(fb.crossings[i+1]-0.5), 0, float64(fb.width))
			left, right := int(lx), int(rx)-1
			for x := left; x <= right; x++ {
				fb.Pixels[y*fb.width+x] = c
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// DrawPoint draws a filled disc of PointRadius centered on (x, y).
func (fb *Framebuffer) DrawPoint(x, y float64, c Color) {
	if math.IsNaN(x) || math.IsNaN(y) || x < -PointRadius || y < -PointRadius || x > float64(fb.width+PointRadius) || y > float64(fb.height+PointRadius) {
		return
	}
	cx, cy := int(x), int(y)
	for dy := -PointRadius; dy <= PointRadius; dy++ {
		for dx := -PointRadius; dx <= PointRadius; dx++ {
			if dx*dx+dy*dy <= PointRadius*PointRadius {
				fb.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
