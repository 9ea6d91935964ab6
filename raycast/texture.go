package raycast

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

var white = color.RGBA{255, 255, 255, 255}

// Texture is an immutable RGBA bitmap with clamped sampling.
type Texture struct {
	img *image.RGBA
}

// NewTexture copies any image into a zero-origin RGBA bitmap.
func NewTexture(src image.Image) *Texture {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Texture{img: dst}
}

func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return NewTexture(img), nil
}

func (t *Texture) Width() int         { return t.img.Rect.Dx() }
func (t *Texture) Height() int        { return t.img.Rect.Dy() }
func (t *Texture) Image() *image.RGBA { return t.img }

// At returns the texel at (x, y), clamping both coordinates into range.
func (t *Texture) At(x, y int) color.RGBA {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return white
	}
	if x < 0 {
		x = 0
	} else if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= h {
		y = h - 1
	}
	i := y*t.img.Stride + x*4
	p := t.img.Pix[i : i+4 : i+4]
	return color.RGBA{p[0], p[1], p[2], p[3]}
}

// Sample maps fractional coordinates in [0,1) to the nearest texel.
func (t *Texture) Sample(u, v float64) color.RGBA {
	return t.At(int(u*float64(t.Width())), int(v*float64(t.Height())))
}

// TextureSet maps cell and sprite symbols to textures.
type TextureSet struct {
	textures map[rune]*Texture
}

func NewTextureSet() *TextureSet {
	return &TextureSet{textures: make(map[rune]*Texture)}
}

func (ts *TextureSet) Add(symbol rune, t *Texture) {
	ts.textures[symbol] = t
}

func (ts *TextureSet) Get(symbol rune) (*Texture, bool) {
	if ts == nil {
		return nil, false
	}
	t, ok := ts.textures[symbol]
	return t, ok
}

// Sample reads a symbol's texture at fractional coordinates; symbols without
// one are white.
func (ts *TextureSet) Sample(symbol rune, u, v float64) color.RGBA {
	t, ok := ts.Get(symbol)
	if !ok {
		return white
	}
	return t.Sample(u, v)
}

// TextureSource names the image file backing a symbol.
type TextureSource struct {
	Symbol string `mapstructure:"symbol"`
	Path   string `mapstructure:"path"`
}

func LoadTextures(fsys fs.FS, sources []TextureSource) (*TextureSet, error) {
	ts := NewTextureSet()
	for _, src := range sources {
		runes := []rune(src.Symbol)
		if len(runes) != 1 {
			return nil, fmt.Errorf("texture symbol %q must be a single character", src.Symbol)
		}
		t, err := LoadTexture(fsys, src.Path)
		if err != nil {
			return nil, err
		}
		ts.Add(runes[0], t)
	}
	return ts, nil
}
