package raycast

import (
	"errors"
	"strings"
	"testing"
)

func TestIsWall(t *testing.T) {
	g := mustGrid(t, 100,
		"+++",
		"+ +",
		"+++",
	)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"wall cell", 50, 50, true},
		{"wall cell edge", 99.9, 150, true},
		{"empty centre", 150, 150, false},
		{"empty cell corner", 100, 100, false},
		{"right of grid", 300, 150, true},
		{"below grid", 150, 300, true},
		{"negative x", -0.5, 150, true},
		{"negative y", 150, -20, true},
		{"far outside", 1e6, -1e6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsWall(tt.x, tt.y); got != tt.want {
				t.Errorf("IsWall(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("+-+\r\n| |\r\n+-+\n"), 100)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width(), g.Height())
	}
	if s, _ := g.Cell(0, 1); s != '|' {
		t.Errorf("cell (0,1) = %q, want '|'", s)
	}
	if g.WorldWidth() != 300 {
		t.Errorf("WorldWidth = %v, want 300", g.WorldWidth())
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyMap},
		{"only newline", "\n", ErrEmptyMap},
		{"ragged", "+++\n+ \n+++\n", ErrNotRectangular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tt.input), 100)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtractClearsCells(t *testing.T) {
	g := mustGrid(t, 100,
		"+++++",
		"+A B+",
		"+ G +",
		"+++++",
	)
	found := g.Extract("ABG")
	if len(found) != 3 {
		t.Fatalf("found %d placements, want 3", len(found))
	}
	want := []Placement{{'A', 1, 1}, {'B', 3, 1}, {'G', 2, 2}}
	for i, p := range found {
		if p != want[i] {
			t.Errorf("placement %d = %+v, want %+v", i, p, want[i])
		}
		x, y := g.CellCenter(p.Col, p.Row)
		if g.IsWall(x, y) {
			t.Errorf("cell of %q still blocks", p.Symbol)
		}
	}
}
