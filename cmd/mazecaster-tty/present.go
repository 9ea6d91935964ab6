package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"mazecaster/engine"
	"mazecaster/model"
)

// upperHalf draws the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// present maps each pair of surface rows onto one terminal row.
func present(screen cellSetter, s *engine.Surface) {
	for y := 0; y+1 < s.Height(); y += 2 {
		for x := 0; x < s.Width(); x++ {
			style := tcell.StyleDefault.
				Foreground(rgb(s.At(x, y))).
				Background(rgb(s.At(x, y+1)))
			screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
}

// frameSize converts a terminal size to surface pixels; ok is false while the
// terminal has no cells to draw into.
func frameSize(cols, rows int) (width, height int, ok bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows * 2, true
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(screen cellSetter, x, y int, msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(msg) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func hudLine(l *model.Level) string {
	return fmt.Sprintf(" %s  %d/%d ", l.Name, l.Total()-l.Remaining(), l.Total())
}
