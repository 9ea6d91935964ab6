package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	minFOV = math.Pi / 180
	maxFOV = math.Pi * 179 / 180
)

// Camera is the viewpoint. The screen plane is recomputed on every heading or
// FOV change and is never read stale.
type Camera struct {
	Position geom.Vector2

	heading float64
	fov     float64
	plane   geom.Vector2
}

func NewCamera(x, y, heading, fov float64) *Camera {
	c := &Camera{Position: geom.Vector2{X: x, Y: y}}
	c.fov = geom.Clamp(fov, minFOV, maxFOV)
	c.SetHeading(heading)
	return c
}

func (c *Camera) Heading() float64    { return c.heading }
func (c *Camera) FOV() float64        { return c.fov }
func (c *Camera) Plane() geom.Vector2 { return c.plane }

// Direction is the unit vector along the heading.
func (c *Camera) Direction() geom.Vector2 {
	return geom.Vector2{X: math.Cos(c.heading), Y: math.Sin(c.heading)}
}

func (c *Camera) SetHeading(heading float64) {
	c.heading = NormalizeAngle(heading)
	c.RecomputePlane()
}

func (c *Camera) Rotate(delta float64) {
	c.SetHeading(c.heading + delta)
}

func (c *Camera) SetFOV(fov float64) {
	c.fov = geom.Clamp(fov, minFOV, maxFOV)
	c.RecomputePlane()
}

func (c *Camera) RecomputePlane() {
	half := math.Tan(c.fov / 2)
	c.plane = geom.Vector2{
		X: math.Sin(c.heading) * half,
		Y: -math.Cos(c.heading) * half,
	}
}

// RayAngle is the absolute angle of screen column col out of width.
func (c *Camera) RayAngle(col, width int) float64 {
	return c.heading - c.fov/2 + c.fov*float64(col)/float64(width)
}

// NormalizeAngle maps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
