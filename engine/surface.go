package engine

import (
	"image"
	"image/color"
	"math"
)

// Surface is a software RGBA frame buffer. Drawing goes through a selected
// current color; SetPixel does not clip.
type Surface struct {
	pixels     []byte
	width      int
	height     int
	current    color.RGBA
	background color.RGBA
}

func NewSurface(width, height int) *Surface {
	return &Surface{
		pixels:     make([]byte, width*height*4),
		width:      width,
		height:     height,
		current:    color.RGBA{255, 255, 255, 255},
		background: color.RGBA{0, 0, 0, 255},
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Pixels exposes the backing RGBA bytes, row-major, for presentation.
func (s *Surface) Pixels() []byte { return s.pixels }

// RGBA wraps the backing buffer without copying.
func (s *Surface) RGBA() *image.RGBA {
	return &image.RGBA{Pix: s.pixels, Stride: s.width * 4, Rect: s.Bounds()}
}

func (s *Surface) SetBackgroundColor(c color.RGBA) { s.background = c }
func (s *Surface) SetCurrentColor(c color.RGBA)    { s.current = c }
func (s *Surface) CurrentColor() color.RGBA        { return s.current }

// SetPixel writes the current color. Callers are responsible for bounds.
func (s *Surface) SetPixel(x, y int) {
	s.put(x, y, s.current)
}

func (s *Surface) put(x, y int, c color.RGBA) {
	i := (y*s.width + x) * 4
	s.pixels[i] = c.R
	s.pixels[i+1] = c.G
	s.pixels[i+2] = c.B
	s.pixels[i+3] = c.A
}

// Clear resets every pixel to the background color.
func (s *Surface) Clear() {
	if len(s.pixels) == 0 {
		return
	}
	bg := s.background
	s.pixels[0], s.pixels[1], s.pixels[2], s.pixels[3] = bg.R, bg.G, bg.B, bg.A
	// double the filled prefix until the buffer is covered
	for n := 4; n < len(s.pixels); n *= 2 {
		copy(s.pixels[n:], s.pixels[:n])
	}
}

func (s *Surface) At(x, y int) color.RGBA {
	i := (y*s.width + x) * 4
	return color.RGBA{s.pixels[i], s.pixels[i+1], s.pixels[i+2], s.pixels[i+3]}
}

// Set writes c at (x, y), ignoring writes outside the surface.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.put(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// Pen returns an independent drawing handle with its own current color, so
// disjoint regions can be drawn from separate goroutines.
func (s *Surface) Pen() *Pen {
	return &Pen{surface: s, color: s.current}
}

type Pen struct {
	surface *Surface
	color   color.RGBA
}

func (p *Pen) SetCurrentColor(c color.RGBA) { p.color = c }

func (p *Pen) SetPixel(x, y int) {
	p.surface.put(x, y, p.color)
}

// FillRect fills the clipped rectangle with c.
func (s *Surface) FillRect(x, y, width, height int, c color.RGBA) {
	r := image.Rect(x, y, x+width, y+height).Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		for dx := r.Min.X; dx < r.Max.X; dx++ {
			s.put(dx, dy, c)
		}
	}
}

func DrawFilledCircle(screen *Surface, x, y, radius float32, clr color.Color) {
	rSquared := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rSquared {
				screen.Set(int(x+dx), int(y+dy), clr)
			}
		}
	}
}

func StrokeLine(screen *Surface, x1, y1, x2, y2, thickness float32, clr color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	distance := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if distance == 0 {
		return
	}
	dx /= distance
	dy /= distance

	for i := float32(0); i < distance; i++ {
		DrawFilledCircle(screen, x1+dx*i, y1+dy*i, thickness/2, clr)
	}
}
