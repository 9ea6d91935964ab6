// game.go
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mazecaster/audio"
	"mazecaster/config"
	"mazecaster/engine"
	"mazecaster/model"
	"mazecaster/raycast"
	"mazecaster/telemetry"
)

type Game struct {
	cfg      *config.Config
	renderer *raycast.Renderer
	levels   []*model.Level
	level    *model.Level
	player   *model.Player
	seq      *model.Sequence
	input    *Input
	sound    *audio.SoundManager
	menu     *Screen
	end      *Screen
	hud      *engine.TextDrawer
	frame    *ebiten.Image
	tracer   trace.Tracer
	err      error
}

func NewGame(ctx context.Context, cfg *config.Config, fsys fs.FS, sound *audio.SoundManager) (*Game, error) {
	textures, err := raycast.LoadTextures(fsys, cfg.Textures)
	if err != nil {
		return nil, err
	}

	levels := make([]*model.Level, 0, len(cfg.Levels))
	for _, spec := range cfg.Levels {
		l, err := model.LoadLevel(ctx, fsys, spec, cfg.World.BlockSize, cfg.Sprites.Symbols, textures)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}

	renderer, err := raycast.NewRenderer(raycast.Options{
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		Projection:       cfg.Render.Projection,
		Step:             cfg.Render.Step,
		MaxDistance:      cfg.Render.MaxDistance,
		Workers:          cfg.Render.Workers,
		Sky:              cfg.Render.SkyColor,
		Floor:            cfg.Render.FloorColor,
		Background:       cfg.Render.BackgroundColor,
		MinimapBlockSize: cfg.Minimap.BlockSize,
		ShowMinimap:      cfg.Minimap.Enabled,
	})
	if err != nil {
		return nil, err
	}

	menu, end, err := newMenus(cfg.Window.Title)
	if err != nil {
		return nil, err
	}

	hud, err := engine.NewTextDrawer(20)
	if err != nil {
		log.Printf("hud disabled: %v", err)
	}

	return &Game{
		cfg:      cfg,
		renderer: renderer,
		levels:   levels,
		seq:      model.NewSequence(len(levels)),
		input:    NewInput(cfg.Player),
		sound:    sound,
		menu:     menu,
		end:      end,
		hud:      hud,
		frame:    ebiten.NewImage(cfg.Window.Width, cfg.Window.Height),
		tracer:   telemetry.Tracer("render"),
	}, nil
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.input.Quit() {
		return ebiten.Termination
	}

	switch g.seq.Stage() {
	case model.StageMenu:
		g.menu.Update()
		if g.input.Confirm() {
			g.seq.Start()
			return g.enterStage()
		}

	case model.StagePlaying:
		if g.input.ToggleMinimap() {
			g.renderer.ToggleMinimap()
		}
		g.player.Apply(g.input.Snapshot(), g.level.World.Grid)
		if n := g.level.Collect(g.player.Position, g.cfg.Player.CollectRadius); n > 0 {
			g.sound.PlayPickup()
		}
		if g.level.Complete() {
			log.Printf("level %s: complete", g.level.Name)
			g.sound.PlayLevelComplete()
			g.seq.LevelComplete()
			return g.enterStage()
		}

	case model.StageEnd:
		g.end.Update()
		if g.input.Restart() {
			g.seq.Restart()
			return g.enterStage()
		}
	}
	return nil
}

// enterStage sets up whatever the sequence just moved to.
func (g *Game) enterStage() error {
	switch g.seq.Stage() {
	case model.StagePlaying:
		return g.startLevel(g.seq.Level())
	case model.StageEnd:
		total := 0
		for _, l := range g.levels {
			total += l.Total()
		}
		g.end.SetLine(0, fmt.Sprintf("%d creatures collected across %d mazes", total, len(g.levels)))
		g.level = nil
		g.input.Capture(false)
	}
	return nil
}

func (g *Game) startLevel(i int) error {
	l := g.levels[i]
	if err := l.Reset(); err != nil {
		return err
	}
	if err := g.renderer.SetWorld(l.World); err != nil {
		return fmt.Errorf("level %s: %w", l.Name, err)
	}

	x, y := g.cfg.Camera.StartX, g.cfg.Camera.StartY
	if l.HasStart {
		x, y = l.Start.X, l.Start.Y
	}
	g.player = model.NewPlayer(x, y, g.cfg.Camera.HeadingRadians(), g.cfg.Camera.FOVRadians())
	g.level = l
	g.input.Capture(true)
	log.Printf("level %s: %d sprites", l.Name, l.Total())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.seq.Stage() {
	case model.StageMenu:
		g.menu.Draw(screen)
	case model.StageEnd:
		g.end.Draw(screen)
	case model.StagePlaying:
		ctx, span := g.tracer.Start(context.Background(), "frame")
		span.SetAttributes(
			attribute.String("level.name", g.level.Name),
			attribute.Int("level.remaining", g.level.Remaining()),
		)
		err := g.renderer.Render(ctx, g.player.Camera, g.level.Sprites)
		span.End()
		if err != nil {
			g.err = fmt.Errorf("render: %w", err)
			return
		}

		g.drawHUD()
		g.frame.WritePixels(g.renderer.Surface().Pixels())
		screen.DrawImage(g.frame, nil)
		g.drawDebug(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
