// main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"mazecaster/assets"
	"mazecaster/audio"
	"mazecaster/config"
	"mazecaster/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search for mazecaster.yaml)")
	flag.Parse()

	// .env is optional, settings may come from the real environment
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
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	g, err := NewGame(ctx, cfg, assets.FS(cfg.Assets.Dir), sound)
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
