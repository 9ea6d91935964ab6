package raycast

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"mazecaster/engine"
)

var (
	colorBlueViolet = color.RGBA{138, 43, 226, 255}
	colorViolet     = color.RGBA{238, 130, 238, 255}
	colorGreen      = color.RGBA{0, 228, 48, 255}
	colorRed        = color.RGBA{230, 41, 55, 255}
)

// FallbackColor is the minimap color of a symbol with no texture.
func FallbackColor(symbol rune) color.RGBA {
	switch symbol {
	case '+':
		return colorBlueViolet
	case '-', '|':
		return colorViolet
	case 'g':
		return colorGreen
	case 'p':
		return colorRed
	default:
		return white
	}
}

// Minimap redraws the grid at a fixed cell size in a corner of the surface.
type Minimap struct {
	BlockSize   int
	Origin      image.Point
	PlayerColor color.RGBA
}

func (m *Minimap) Draw(s *engine.Surface, grid *Grid, textures *TextureSet, cam *Camera, sprites []Sprite) {
	dst := s.RGBA()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			sym, _ := grid.Cell(col, row)
			if sym == Empty {
				continue
			}
			r := image.Rect(0, 0, m.BlockSize, m.BlockSize).
				Add(m.Origin).
				Add(image.Pt(col*m.BlockSize, row*m.BlockSize))
			if tex, ok := textures.Get(sym); ok {
				// Scale clips r to dst and crops the source to match
				draw.NearestNeighbor.Scale(dst, r, tex.Image(), tex.Image().Bounds(), draw.Src, nil)
				continue
			}
			s.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), FallbackColor(sym))
		}
	}

	scale := float64(m.BlockSize) / grid.BlockSize()
	for i := range sprites {
		if sprites[i].Collected || sprites[i].Texture == nil {
			continue
		}
		m.drawSprite(s, &sprites[i], scale)
	}

	px := float32(float64(m.Origin.X) + cam.Position.X*scale)
	py := float32(float64(m.Origin.Y) + cam.Position.Y*scale)
	dir := cam.Direction()
	radius := float32(m.BlockSize) / 4
	engine.DrawFilledCircle(s, px, py, radius, m.PlayerColor)
	engine.StrokeLine(s, px, py, px+float32(dir.X)*radius*3, py+float32(dir.Y)*radius*3, 2, m.PlayerColor)
}

// drawSprite draws a half-block textured marker centred on the sprite.
func (m *Minimap) drawSprite(s *engine.Surface, sp *Sprite, scale float64) {
	size := m.BlockSize / 2
	if size <= 0 {
		return
	}
	cx := m.Origin.X + int(math.Round(sp.Position.X*scale))
	cy := m.Origin.Y + int(math.Round(sp.Position.Y*scale))
	texW, texH := sp.Texture.Width(), sp.Texture.Height()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := sp.Texture.At(x*texW/size, y*texH/size)
			if c.A == 0 || c == TransparentKey {
				continue
			}
			s.Set(cx-size/2+x, cy-size/2+y, c)
		}
	}
}
