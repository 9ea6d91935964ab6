package model

import (
	"math"
	"testing"

	"mazecaster/raycast"
)

func testGrid(t *testing.T) *raycast.Grid {
	t.Helper()
	g, err := raycast.NewGrid([]string{
		"+++++",
		"+   +",
		"+   +",
		"+++++",
	}, 100)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestApplyForwardAndStrafe(t *testing.T) {
	g := testGrid(t)

	p := NewPlayer(250, 150, 0, math.Pi/3)
	p.Apply(InputSnapshot{Forward: 10}, g)
	if math.Abs(p.Position.X-260) > 1e-9 || math.Abs(p.Position.Y-150) > 1e-9 {
		t.Errorf("forward moved to %+v, want (260,150)", p.Position)
	}
	if !p.Moved {
		t.Error("Moved not set")
	}

	// strafing right of a +x heading goes towards +y
	p.Apply(InputSnapshot{Strafe: 10}, g)
	if math.Abs(p.Position.X-260) > 1e-9 || math.Abs(p.Position.Y-160) > 1e-9 {
		t.Errorf("strafe moved to %+v, want (260,160)", p.Position)
	}
}

func TestApplyTurnRecomputesPlane(t *testing.T) {
	p := NewPlayer(150, 150, 0, math.Pi/3)
	p.Apply(InputSnapshot{Turn: math.Pi / 10}, testGrid(t))
	if math.Abs(p.Heading()-math.Pi/10) > 1e-9 {
		t.Fatalf("heading = %v", p.Heading())
	}
	want := math.Sin(p.Heading()) * math.Tan(math.Pi/6)
	if math.Abs(p.Plane().X-want) > 1e-9 {
		t.Errorf("plane.X = %v, want %v", p.Plane().X, want)
	}
}

func TestMoveSlidesAlongWalls(t *testing.T) {
	g := testGrid(t)

	// heading into the east wall at an angle keeps the y component
	p := NewPlayer(395, 150, 0, math.Pi/3)
	p.Move(10, 10, g)
	if p.Position.X != 395 || p.Position.Y != 160 {
		t.Errorf("position = %+v, want (395,160)", p.Position)
	}

	// straight into a corner does not move
	p = NewPlayer(395, 295, 0, math.Pi/3)
	p.Move(10, 10, g)
	if p.Position.X != 395 || p.Position.Y != 295 {
		t.Errorf("position = %+v, want unchanged", p.Position)
	}
	if p.Moved {
		t.Error("blocked move reported as moved")
	}
}

func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		v, dz, want float64
	}{
		{0.1, 0.2, 0},
		{-0.19, 0.2, 0},
		{0.2, 0.2, 0.2},
		{-0.8, 0.2, -0.8},
	}
	for _, tt := range tests {
		if got := ApplyDeadzone(tt.v, tt.dz); got != tt.want {
			t.Errorf("ApplyDeadzone(%v, %v) = %v, want %v", tt.v, tt.dz, got, tt.want)
		}
	}
}
