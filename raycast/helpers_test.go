package raycast

import (
	"image"
	"image/color"
	"testing"
)

// recorder is a PixelWriter that remembers every write.
type recorder struct {
	current color.RGBA
	pixels  map[image.Point]color.RGBA
	writes  int
}

func newRecorder() *recorder {
	return &recorder{pixels: make(map[image.Point]color.RGBA)}
}

func (r *recorder) SetCurrentColor(c color.RGBA) { r.current = c }

func (r *recorder) SetPixel(x, y int) {
	r.pixels[image.Pt(x, y)] = r.current
	r.writes++
}

func (r *recorder) xRange() (int, int) {
	lo, hi := int(^uint(0)>>1), -1
	for p := range r.pixels {
		if p.X < lo {
			lo = p.X
		}
		if p.X > hi {
			hi = p.X
		}
	}
	return lo, hi
}

func solidTexture(w, h int, c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return NewTexture(img)
}

func mustGrid(t *testing.T, blockSize float64, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(rows, blockSize)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}
