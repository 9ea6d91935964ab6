package raycast

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/sync/errgroup"

	"mazecaster/engine"
)

// World is the read-only level state shared by every draw call in a frame.
type World struct {
	Grid     *Grid
	Textures *TextureSet
}

type Options struct {
	Width       int
	Height      int
	Projection  float64
	Step        float64
	MaxDistance float64
	// Workers > 1 splits the column sweep into that many bands.
	Workers int

	Sky        color.RGBA
	Floor      color.RGBA
	Background color.RGBA

	MinimapBlockSize int
	ShowMinimap      bool
}

// Renderer owns the frame buffers and runs one frame at a time.
type Renderer struct {
	opts       Options
	surface    *engine.Surface
	depth      DepthBuffer
	world      *World
	projector  *Projector
	compositor *Compositor
	minimap    *Minimap
}

func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", opts.Width, opts.Height)
	}
	if opts.Projection <= 0 {
		opts.Projection = DefaultProjection
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	s := engine.NewSurface(opts.Width, opts.Height)
	s.SetBackgroundColor(opts.Background)
	return &Renderer{
		opts:       opts,
		surface:    s,
		depth:      NewDepthBuffer(opts.Width),
		compositor: NewCompositor(opts.Projection),
		minimap: &Minimap{
			BlockSize:   opts.MinimapBlockSize,
			Origin:      image.Pt(10, 10),
			PlayerColor: colorRed,
		},
	}, nil
}

// SetWorld binds the renderer to a level.
func (r *Renderer) SetWorld(w *World) error {
	caster, err := NewCaster(w.Grid, r.opts.Step, r.opts.MaxDistance)
	if err != nil {
		return err
	}
	r.world = w
	r.projector = &Projector{Caster: caster, Textures: w.Textures, Projection: r.opts.Projection}
	return nil
}

func (r *Renderer) ToggleMinimap() { r.opts.ShowMinimap = !r.opts.ShowMinimap }

func (r *Renderer) Surface() *engine.Surface { return r.surface }
func (r *Renderer) Depth() DepthBuffer       { return r.depth }

// Render draws a full frame: background, walls, sprites, then the minimap.
func (r *Renderer) Render(ctx context.Context, cam *Camera, sprites []Sprite) error {
	if r.world == nil {
		return fmt.Errorf("render: no world bound")
	}
	w, h := r.opts.Width, r.opts.Height

	r.surface.Clear()
	r.surface.FillRect(0, 0, w, h/2, r.opts.Sky)
	r.surface.FillRect(0, h/2, w, h-h/2, r.opts.Floor)
	r.depth.Reset()

	if err := r.sweep(ctx, cam); err != nil {
		return err
	}

	r.compositor.Draw(r.surface, cam, r.depth, w, h, sprites)

	if r.opts.ShowMinimap && r.minimap.BlockSize > 0 {
		r.minimap.Draw(r.surface, r.world.Grid, r.world.Textures, cam, sprites)
	}
	return nil
}

// sweep projects every column. Bands are disjoint so each worker writes its
// own columns of the surface and depth buffer.
func (r *Renderer) sweep(ctx context.Context, cam *Camera) error {
	w, h := r.opts.Width, r.opts.Height
	if r.opts.Workers == 1 {
		for col := 0; col < w; col++ {
			r.projector.Column(r.surface, cam, r.depth, col, w, h)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	band := (w + r.opts.Workers - 1) / r.opts.Workers
	for lo := 0; lo < w; lo += band {
		lo, hi := lo, lo+band
		if hi > w {
			hi = w
		}
		g.Go(func() error {
			pen := r.surface.Pen()
			for col := lo; col < hi; col++ {
				r.projector.Column(pen, cam, r.depth, col, w, h)
			}
			return ctx.Err()
		})
	}
	return g.Wait()
}
