package model

import (
	"math"

	"mazecaster/raycast"
)

// InputSnapshot is one frame of movement intent, already scaled to world
// units and radians.
type InputSnapshot struct {
	Forward float64
	Strafe  float64
	Turn    float64
}

type Player struct {
	*raycast.Camera
	Moved bool
}

func NewPlayer(x, y, heading, fov float64) *Player {
	return &Player{
		Camera: raycast.NewCamera(x, y, heading, fov),
	}
}

// Apply turns first, then moves along the new heading. Positive strafe is to
// the right of the heading.
func (p *Player) Apply(in InputSnapshot, grid *raycast.Grid) {
	p.Moved = false
	if in.Turn != 0 {
		p.Rotate(in.Turn)
		p.Moved = true
	}
	if in.Forward == 0 && in.Strafe == 0 {
		return
	}
	sin, cos := math.Sincos(p.Heading())
	dx := cos*in.Forward - sin*in.Strafe
	dy := sin*in.Forward + cos*in.Strafe
	p.Move(dx, dy, grid)
}

// Move translates the player, undoing each axis that would end inside a wall.
func (p *Player) Move(dx, dy float64, grid *raycast.Grid) {
	old := p.Position
	newX, newY := old.X+dx, old.Y+dy
	if grid.IsWall(newX, old.Y) {
		newX = old.X
	}
	if grid.IsWall(old.X, newY) {
		newY = old.Y
	}
	if newX != old.X || newY != old.Y {
		p.Position.X, p.Position.Y = newX, newY
		p.Moved = true
	}
}

// ApplyDeadzone zeroes analog values whose magnitude is below deadzone.
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}
