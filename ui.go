// ui.go
package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"mazecaster/engine"
)

var (
	menuBackground = color.RGBA{50, 50, 100, 255}
	titleColor     = color.RGBA{253, 249, 0, 255}
	textColor      = color.RGBA{245, 245, 245, 255}
)

// Screen is a full-window ebitenui page with a title and a few lines of text.
type Screen struct {
	ui    *ebitenui.UI
	lines []*widget.Text
}

func NewScreen(title string, lines []string, titleFace, textFace font.Face) *Screen {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(menuBackground)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(column)

	column.AddChild(newLabel(title, titleFace, titleColor))
	s := &Screen{ui: &ebitenui.UI{Container: root}}
	for _, l := range lines {
		t := newLabel(l, textFace, textColor)
		s.lines = append(s.lines, t)
		column.AddChild(t)
	}
	return s
}

func newLabel(label string, face font.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, c),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
}

// SetLine replaces the text of line i.
func (s *Screen) SetLine(i int, label string) {
	if i >= 0 && i < len(s.lines) {
		s.lines[i].Label = label
	}
}

func (s *Screen) Update()                   { s.ui.Update() }
func (s *Screen) Draw(screen *ebiten.Image) { s.ui.Draw(screen) }

func newMenus(title string) (menu, end *Screen, err error) {
	titleFace, err := engine.NewFace(48)
	if err != nil {
		return nil, nil, err
	}
	textFace, err := engine.NewFace(22)
	if err != nil {
		return nil, nil, err
	}
	menu = NewScreen(title, []string{
		"collect every creature in each maze",
		"W/S move, A/D strafe, arrows or mouse to turn",
		"press Enter, Space or Start to play",
		"Esc quits",
	}, titleFace, textFace)
	end = NewScreen("all mazes cleared", []string{
		"",
		"press R, Enter or Start to play again",
	}, titleFace, textFace)
	return menu, end, nil
}

// drawHUD writes the level status into the frame before it is presented.
func (g *Game) drawHUD() {
	if g.hud == nil || g.level == nil {
		return
	}
	s := g.renderer.Surface()
	msg := fmt.Sprintf("%s  %d/%d", g.level.Name, g.level.Total()-g.level.Remaining(), g.level.Total())
	if err := g.hud.DrawString(s, msg, s.Width()-260, 12, textColor); err != nil {
		g.hud = nil
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 10, g.cfg.Window.Height-20)
}
