package raycast

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const minSpriteDistance = 0.1

// TransparentKey is the reserved color drawn as see-through in sprite textures.
var TransparentKey = color.RGBA{152, 0, 136, 255}

// Sprite is a billboard placed in the world. Collected sprites are skipped by
// every draw step but stay in the arena.
type Sprite struct {
	Position  geom.Vector2
	Symbol    rune
	Texture   *Texture
	Collected bool
}

// SpritesFromPlacements turns extracted cells into sprites at the cell centres.
func SpritesFromPlacements(grid *Grid, placements []Placement, textures *TextureSet) []Sprite {
	sprites := make([]Sprite, 0, len(placements))
	for _, p := range placements {
		x, y := grid.CellCenter(p.Col, p.Row)
		tex, _ := textures.Get(p.Symbol)
		sprites = append(sprites, Sprite{
			Position: geom.Vector2{X: x, Y: y},
			Symbol:   p.Symbol,
			Texture:  tex,
		})
	}
	return sprites
}

// Compositor draws sprites back to front against a depth buffer. Its order and
// distance slices are reused across frames.
type Compositor struct {
	Projection float64
	Key        color.RGBA

	spriteOrder    []int
	spriteDistance []float64
}

func NewCompositor(projection float64) *Compositor {
	return &Compositor{Projection: projection, Key: TransparentKey}
}

// Draw composites every active sprite and returns the number of pixels written.
func (c *Compositor) Draw(w PixelWriter, cam *Camera, depth DepthBuffer, width, height int, sprites []Sprite) int {
	c.spriteOrder = c.spriteOrder[:0]
	c.spriteDistance = c.spriteDistance[:0]
	for i := range sprites {
		if sprites[i].Collected {
			continue
		}
		dx := sprites[i].Position.X - cam.Position.X
		dy := sprites[i].Position.Y - cam.Position.Y
		c.spriteOrder = append(c.spriteOrder, i)
		c.spriteDistance = append(c.spriteDistance, dx*dx+dy*dy)
	}

	// farthest first so nearer sprites overwrite
	combSort(c.spriteOrder, c.spriteDistance, len(c.spriteOrder))

	written := 0
	for _, i := range c.spriteOrder {
		written += c.drawSprite(w, cam, depth, width, height, &sprites[i])
	}
	return written
}

// ScreenX maps an angular offset from the heading to a screen column, using
// the same mapping as the wall columns.
func ScreenX(diff, fov float64, width int) float64 {
	return (diff + fov/2) * float64(width) / fov
}

func (c *Compositor) drawSprite(w PixelWriter, cam *Camera, depth DepthBuffer, width, height int, s *Sprite) int {
	if s.Texture == nil {
		return 0
	}
	dx := s.Position.X - cam.Position.X
	dy := s.Position.Y - cam.Position.Y

	diff := NormalizeAngle(math.Atan2(dy, dx) - cam.Heading())
	if math.Abs(diff) > cam.FOV()/2 {
		return 0
	}
	distance := math.Hypot(dx, dy)
	if distance <= minSpriteDistance {
		return 0
	}

	size := int(ProjectHeight(distance, height, c.Projection))
	if size <= 0 {
		return 0
	}
	screenX := ScreenX(diff, cam.FOV(), width)
	startX := int(screenX) - size/2
	startY := height/2 - size/2

	x0, x1 := clampRange(startX, startX+size, width)
	y0, y1 := clampRange(startY, startY+size, height)
	texW, texH := s.Texture.Width(), s.Texture.Height()

	written := 0
	for x := x0; x < x1; x++ {
		// check wall occlusion for this column
		if !(distance < depth[x]) {
			continue
		}
		tx := (x - startX) * texW / size
		for y := y0; y < y1; y++ {
			ty := (y - startY) * texH / size
			px := s.Texture.At(tx, ty)
			if px.A == 0 || px == c.Key {
				continue
			}
			w.SetCurrentColor(px)
			w.SetPixel(x, y)
			written++
		}
	}
	return written
}

func clampRange(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// combSort orders sprites by descending distance.
func combSort(order []int, dist []float64, amount int) {
	gap := amount
	swapped := false
	for gap > 1 || swapped {
		gap = (gap * 10) / 13
		if gap == 9 || gap == 10 {
			gap = 11
		}
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i < amount-gap; i++ {
			j := i + gap
			if dist[i] < dist[j] {
				dist[i], dist[j] = dist[j], dist[i]
				order[i], order[j] = order[j], order[i]
				swapped = true
			}
		}
	}
}
