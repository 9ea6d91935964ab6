package raycast

import (
	"image/color"
	"math"
)

const (
	// DefaultProjection scales half the screen height into wall height.
	DefaultProjection = 70.0

	minDistance     = 1e-3
	maxHeightFactor = 8
)

// PixelWriter is the drawing surface the projector and compositor need.
type PixelWriter interface {
	SetCurrentColor(c color.RGBA)
	SetPixel(x, y int)
}

// ProjectHeight returns the on-screen height of a wall or sprite at distance,
// clamped for degenerate distances.
func ProjectHeight(distance float64, screenHeight int, k float64) float64 {
	d := math.Max(distance, minDistance)
	h := float64(screenHeight) / 2 / d * k
	return math.Min(h, float64(maxHeightFactor*screenHeight))
}

// Span is the vertical extent of a projected column before clipping.
type Span struct {
	Top    float64
	Bottom float64
}

func ColumnSpan(height float64, screenHeight int) Span {
	mid := float64(screenHeight) / 2
	return Span{Top: mid - height/2, Bottom: mid + height/2}
}

// Projector turns one screen column into a textured wall slice.
type Projector struct {
	Caster     *Caster
	Textures   *TextureSet
	Projection float64
}

// Column casts the ray for col, records its depth and draws the wall slice.
func (p *Projector) Column(w PixelWriter, cam *Camera, depth DepthBuffer, col, width, height int) {
	hit := p.Caster.Cast(cam.Position, cam.RayAngle(col, width))
	depth[col] = hit.Distance
	if !hit.Hit {
		return
	}

	span := ColumnSpan(ProjectHeight(hit.Distance, height, p.Projection), height)
	top := int(math.Max(math.Ceil(span.Top), 0))
	bottom := int(math.Min(math.Ceil(span.Bottom), float64(height)))
	if top >= bottom {
		return
	}

	extent := span.Bottom - span.Top
	for y := top; y < bottom; y++ {
		v := (float64(y) - span.Top) / extent
		w.SetCurrentColor(p.Textures.Sample(hit.Symbol, hit.TexFrac, v))
		w.SetPixel(col, y)
	}
}
