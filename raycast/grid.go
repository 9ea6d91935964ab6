package raycast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// Empty is the passable cell symbol.
const Empty = ' '

var (
	ErrEmptyMap       = errors.New("map is empty")
	ErrNotRectangular = errors.New("map is not rectangular")
)

// Grid is a rectangular map of cell symbols, addressed in world units through
// a uniform block size.
type Grid struct {
	cells     [][]rune
	width     int
	height    int
	blockSize float64
}

// Placement is a cell lifted out of the grid at load time.
type Placement struct {
	Symbol rune
	Col    int
	Row    int
}

// ParseGrid reads one row per line. A trailing empty line is ignored.
func ParseGrid(r io.Reader, blockSize float64) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return NewGrid(rows, blockSize)
}

func NewGrid(rows []string, blockSize float64) (*Grid, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size %v must be positive", blockSize)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyMap
	}
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
		if len(cells[i]) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(cells[i]), width, ErrNotRectangular)
		}
	}

	return &Grid{
		cells:     cells,
		width:     width,
		height:    len(rows),
		blockSize: blockSize,
	}, nil
}

func (g *Grid) Width() int           { return g.width }
func (g *Grid) Height() int          { return g.height }
func (g *Grid) BlockSize() float64   { return g.blockSize }
func (g *Grid) WorldWidth() float64  { return float64(g.width) * g.blockSize }
func (g *Grid) WorldHeight() float64 { return float64(g.height) * g.blockSize }

// Cell returns the symbol at the given indices.
func (g *Grid) Cell(col, row int) (rune, bool) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return 0, false
	}
	return g.cells[row][col], true
}

// CellIndex converts world coordinates to cell indices.
func (g *Grid) CellIndex(x, y float64) (col, row int) {
	return int(math.Floor(x / g.blockSize)), int(math.Floor(y / g.blockSize))
}

// SymbolAt returns the symbol under a world position, or 0 outside the grid.
func (g *Grid) SymbolAt(x, y float64) rune {
	s, _ := g.Cell(g.CellIndex(x, y))
	return s
}

// IsWall reports whether a world position blocks movement and rays. Anything
// outside the grid is a wall.
func (g *Grid) IsWall(x, y float64) bool {
	s, ok := g.Cell(g.CellIndex(x, y))
	if !ok {
		return true
	}
	return s != Empty
}

// CellCenter returns the world position at the middle of a cell.
func (g *Grid) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.blockSize, (float64(row) + 0.5) * g.blockSize
}

// Extract removes every cell whose symbol is in symbols and returns where
// each one was, in row-major order.
func (g *Grid) Extract(symbols string) []Placement {
	var found []Placement
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			s := g.cells[row][col]
			if s == Empty || !strings.ContainsRune(symbols, s) {
				continue
			}
			found = append(found, Placement{Symbol: s, Col: col, Row: row})
			// remove block from level so it doesn't render or collide
			g.cells[row][col] = Empty
		}
	}
	return found
}
