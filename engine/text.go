package engine

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	hudFont  *truetype.Font
	fontErr  error
)

// Font returns the parsed Go Regular font shared by the HUD and the menus.
func Font() (*truetype.Font, error) {
	fontOnce.Do(func() {
		hudFont, fontErr = freetype.ParseFont(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse font: %w", fontErr)
		}
	})
	return hudFont, fontErr
}

// NewFace builds a font.Face of the given point size.
func NewFace(size float64) (font.Face, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// TextDrawer rasterizes strings straight into a Surface.
type TextDrawer struct {
	ctx  *freetype.Context
	size float64
}

func NewTextDrawer(size float64) (*TextDrawer, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetHinting(font.HintingFull)
	return &TextDrawer{ctx: c, size: size}, nil
}

// DrawString draws str with its top-left corner near (x, y).
func (t *TextDrawer) DrawString(s *Surface, str string, x, y int, clr color.Color) error {
	dst := s.RGBA()
	t.ctx.SetDst(dst)
	t.ctx.SetClip(dst.Bounds())
	t.ctx.SetSrc(image.NewUniform(clr))
	// baseline sits one em below the requested top
	if _, err := t.ctx.DrawString(str, freetype.Pt(x, y+int(t.size))); err != nil {
		return fmt.Errorf("draw %q: %w", str, err)
	}
	return nil
}
