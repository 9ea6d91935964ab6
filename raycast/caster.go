package raycast

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

var ErrBadStep = errors.New("invalid ray step")

// Intersection is the result of a single cast. Distance is +Inf when nothing
// was hit.
type Intersection struct {
	Distance float64
	Symbol   rune
	TexFrac  float64
	Hit      bool
}

// Caster marches rays across a grid in fixed steps.
type Caster struct {
	grid        *Grid
	step        float64
	maxDistance float64
}

// NewCaster validates the step against the grid's block size. A non-positive
// maxDistance means the grid diagonal plus one block.
func NewCaster(grid *Grid, step, maxDistance float64) (*Caster, error) {
	if step <= 0 || step > grid.BlockSize() {
		return nil, fmt.Errorf("step %v outside (0, %v]: %w", step, grid.BlockSize(), ErrBadStep)
	}
	if maxDistance <= 0 {
		maxDistance = math.Hypot(grid.WorldWidth(), grid.WorldHeight()) + grid.BlockSize()
	}
	return &Caster{grid: grid, step: step, maxDistance: maxDistance}, nil
}

func (c *Caster) Step() float64 { return c.step }

func (c *Caster) Cast(origin geom.Vector2, angle float64) Intersection {
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	steps := int(c.maxDistance / c.step)
	prevX, prevY := origin.X, origin.Y
	for i := 0; i <= steps; i++ {
		d := float64(i) * c.step
		x := origin.X + d*dirX
		y := origin.Y + d*dirY
		if c.grid.IsWall(x, y) {
			return Intersection{
				Distance: d,
				Symbol:   c.grid.SymbolAt(x, y),
				TexFrac:  c.texFrac(prevX, prevY, x, y),
				Hit:      true,
			}
		}
		prevX, prevY = x, y
	}
	return Intersection{Distance: math.Inf(1)}
}

// texFrac picks the face coordinate from the cell boundary the last step
// crossed: y offset on vertical faces, x offset on horizontal ones.
func (c *Caster) texFrac(prevX, prevY, x, y float64) float64 {
	bs := c.grid.BlockSize()
	prevCol, prevRow := c.grid.CellIndex(prevX, prevY)
	col, row := c.grid.CellIndex(x, y)

	vertical := prevCol != col
	if vertical && prevRow != row {
		// diagonal step through a corner: the face is vertical if the
		// column change alone lands in a wall
		vertical = c.grid.IsWall(x, prevY)
	}

	off := x - math.Floor(x/bs)*bs
	if vertical {
		off = y - math.Floor(y/bs)*bs
	}
	f := off / bs
	if f < 0 {
		f = 0
	}
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}
