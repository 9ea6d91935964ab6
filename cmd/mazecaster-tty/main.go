// Command mazecaster-tty plays the mazes inside a terminal, two pixels per
// character cell.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"mazecaster/assets"
	"mazecaster/audio"
	"mazecaster/config"
	"mazecaster/model"
	"mazecaster/raycast"
	"mazecaster/telemetry"
)

const (
	tick = 33 * time.Millisecond
	// key repeat in terminals is slow, so each press covers more ground
	keyStepScale = 4
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env file not loaded: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	} else {
		defer shutdown(ctx)
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	fsys := assets.FS(cfg.Assets.Dir)
	textures, err := raycast.LoadTextures(fsys, cfg.Textures)
	if err != nil {
		log.Fatalf("textures: %v", err)
	}
	var levels []*model.Level
	for _, spec := range cfg.Levels {
		l, err := model.LoadLevel(ctx, fsys, spec, cfg.World.BlockSize, cfg.Sprites.Symbols, textures)
		if err != nil {
			log.Fatalf("%v", err)
		}
		levels = append(levels, l)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	t := &tty{cfg: cfg, screen: screen, levels: levels, sound: sound, seq: model.NewSequence(len(levels))}
	err = t.run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

type tty struct {
	cfg      *config.Config
	screen   tcell.Screen
	levels   []*model.Level
	sound    *audio.SoundManager
	seq      *model.Sequence
	renderer *raycast.Renderer
	level    *model.Level
	player   *model.Player
	minimap  bool
}

func (t *tty) run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	t.seq.Start()
	if err := t.enter(); err != nil {
		return err
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		var in model.InputSnapshot
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if !t.handleKey(ev, &in) {
						return nil
					}
				case *tcell.EventResize:
					t.renderer = nil
					t.screen.Sync()
				}
			default:
				break drain
			}
		}

		if err := t.update(in); err != nil {
			return err
		}
		if err := t.draw(ctx); err != nil {
			return err
		}
		<-ticker.C
	}
}

// handleKey folds a key press into in; it returns false to quit.
func (t *tty) handleKey(ev *tcell.EventKey, in *model.InputSnapshot) bool {
	move := t.cfg.Player.MoveSpeed * keyStepScale
	turn := t.cfg.Player.TurnSpeed * keyStepScale
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		in.Forward += move
	case tcell.KeyDown:
		in.Forward -= move
	case tcell.KeyLeft:
		in.Turn -= turn
	case tcell.KeyRight:
		in.Turn += turn
	case tcell.KeyEnter:
		t.restart()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w':
			in.Forward += move
		case 's':
			in.Forward -= move
		case 'a':
			in.Strafe -= move
		case 'd':
			in.Strafe += move
		case 'm':
			t.minimap = !t.minimap
			t.renderer = nil
		case 'r':
			t.restart()
		}
	}
	return true
}

func (t *tty) restart() {
	if t.seq.Stage() != model.StageEnd {
		return
	}
	t.seq.Restart()
	if err := t.enter(); err != nil {
		log.Printf("restart: %v", err)
	}
}

func (t *tty) enter() error {
	if t.seq.Stage() != model.StagePlaying {
		t.level = nil
		return nil
	}
	l := t.levels[t.seq.Level()]
	if err := l.Reset(); err != nil {
		return err
	}
	x, y := t.cfg.Camera.StartX, t.cfg.Camera.StartY
	if l.HasStart {
		x, y = l.Start.X, l.Start.Y
	}
	t.player = model.NewPlayer(x, y, t.cfg.Camera.HeadingRadians(), t.cfg.Camera.FOVRadians())
	t.level = l
	t.renderer = nil
	return nil
}

func (t *tty) update(in model.InputSnapshot) error {
	if t.level == nil {
		return nil
	}
	t.player.Apply(in, t.level.World.Grid)
	if t.level.Collect(t.player.Position, t.cfg.Player.CollectRadius) > 0 {
		t.sound.PlayPickup()
	}
	if t.level.Complete() {
		t.sound.PlayLevelComplete()
		t.seq.LevelComplete()
		return t.enter()
	}
	return nil
}

func (t *tty) draw(ctx context.Context) error {
	t.screen.Clear()
	if t.level == nil {
		drawText(t.screen, 2, 1, "all mazes cleared - r to play again, q to quit")
		t.screen.Show()
		return nil
	}

	if t.renderer == nil {
		w, h, ok := frameSize(t.screen.Size())
		if !ok {
			t.screen.Show()
			return nil
		}
		r, err := raycast.NewRenderer(raycast.Options{
			Width:            w,
			Height:           h,
			Projection:       t.cfg.Render.Projection,
			Step:             t.cfg.Render.Step,
			MaxDistance:      t.cfg.Render.MaxDistance,
			Workers:          t.cfg.Render.Workers,
			Sky:              t.cfg.Render.SkyColor,
			Floor:            t.cfg.Render.FloorColor,
			Background:       t.cfg.Render.BackgroundColor,
			MinimapBlockSize: 2,
			ShowMinimap:      t.minimap,
		})
		if err != nil {
			return err
		}
		if err := r.SetWorld(t.level.World); err != nil {
			return err
		}
		t.renderer = r
	}

	if err := t.renderer.Render(ctx, t.player.Camera, t.level.Sprites); err != nil {
		return err
	}
	present(t.screen, t.renderer.Surface())
	drawText(t.screen, 1, 0, hudLine(t.level))
	t.screen.Show()
	return nil
}
