package raycast

import (
	"errors"
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestCastKnownDistance(t *testing.T) {
	g := mustGrid(t, 100,
		"++++",
		"+  +",
		"+  +",
		"++++",
	)
	c, err := NewCaster(g, 1, 0)
	if err != nil {
		t.Fatalf("NewCaster: %v", err)
	}

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"east face", 0, 150},
		{"south face", math.Pi / 2, 150},
		{"west face", math.Pi, 50},
		{"north face", -math.Pi / 2, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := c.Cast(geom.Vector2{X: 150, Y: 150}, tt.angle)
			if !hit.Hit {
				t.Fatal("expected a hit")
			}
			if math.Abs(hit.Distance-tt.want) > c.Step() {
				t.Errorf("distance = %v, want %v within %v", hit.Distance, tt.want, c.Step())
			}
			if hit.TexFrac < 0 || hit.TexFrac >= 1 {
				t.Errorf("tex fraction %v outside [0,1)", hit.TexFrac)
			}
			if hit.Symbol != '+' {
				t.Errorf("symbol = %q, want '+'", hit.Symbol)
			}
		})
	}
}

func TestCastTexFracFollowsFace(t *testing.T) {
	g := mustGrid(t, 100,
		"++++",
		"+  +",
		"+  +",
		"++++",
	)
	c, _ := NewCaster(g, 0.5, 0)

	// east face is vertical, so the fraction comes from y
	hit := c.Cast(geom.Vector2{X: 150, Y: 130}, 0)
	if math.Abs(hit.TexFrac-0.3) > 0.01 {
		t.Errorf("vertical face fraction = %v, want 0.3", hit.TexFrac)
	}

	// south face is horizontal, so the fraction comes from x
	hit = c.Cast(geom.Vector2{X: 170, Y: 150}, math.Pi/2)
	if math.Abs(hit.TexFrac-0.7) > 0.01 {
		t.Errorf("horizontal face fraction = %v, want 0.7", hit.TexFrac)
	}
}

func TestCastTexFracContinuousAcrossFace(t *testing.T) {
	g := mustGrid(t, 100,
		"++++",
		"+  +",
		"+  +",
		"++++",
	)
	c, _ := NewCaster(g, 1, 0)

	// walk the origin along the south face of one cell up to its right edge
	prev := -1.0
	for x := 150.0; x < 200; x += 0.3 {
		hit := c.Cast(geom.Vector2{X: x, Y: 150}, math.Pi/2)
		if !hit.Hit {
			t.Fatalf("x=%v: no hit", x)
		}
		if hit.TexFrac < prev {
			t.Fatalf("x=%v: fraction %v dropped below %v", x, hit.TexFrac, prev)
		}
		want := (x - 100) / 100
		if math.Abs(hit.TexFrac-want) > 0.01 {
			t.Errorf("x=%v: fraction = %v, want %v", x, hit.TexFrac, want)
		}
		prev = hit.TexFrac
	}
}

func TestCastEnclosedCellAlwaysHits(t *testing.T) {
	g := mustGrid(t, 100,
		"+++",
		"+ +",
		"+++",
	)
	c, err := NewCaster(g, 1, 0)
	if err != nil {
		t.Fatalf("NewCaster: %v", err)
	}
	for i := 0; i < 64; i++ {
		angle := -math.Pi + float64(i)*2*math.Pi/64
		hit := c.Cast(geom.Vector2{X: 150, Y: 150}, angle)
		if !hit.Hit || math.IsInf(hit.Distance, 1) {
			t.Fatalf("angle %v: no hit", angle)
		}
		// distance from the centre to the cell border along the ray
		bound := 50 / math.Max(math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle)))
		if hit.Distance > bound+c.Step() {
			t.Errorf("angle %v: distance %v beyond border %v", angle, hit.Distance, bound)
		}
	}
}

func TestCastNoHitWithinMaxDistance(t *testing.T) {
	g := mustGrid(t, 100,
		"      ",
		"      ",
	)
	c, err := NewCaster(g, 1, 20)
	if err != nil {
		t.Fatalf("NewCaster: %v", err)
	}
	hit := c.Cast(geom.Vector2{X: 50, Y: 50}, 0)
	if hit.Hit || !math.IsInf(hit.Distance, 1) {
		t.Fatalf("hit = %+v, want no hit", hit)
	}
}

func TestNewCasterRejectsBadStep(t *testing.T) {
	g := mustGrid(t, 100, "+")
	for _, step := range []float64{0, -1, 101} {
		if _, err := NewCaster(g, step, 0); !errors.Is(err, ErrBadStep) {
			t.Errorf("step %v: err = %v, want ErrBadStep", step, err)
		}
	}
}
