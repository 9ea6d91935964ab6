package model

import (
	"context"
	"fmt"
	"io/fs"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"go.opentelemetry.io/otel/attribute"

	"mazecaster/raycast"
	"mazecaster/telemetry"
)

// StartSymbol marks the player start cell in a map.
const StartSymbol = '@'

// LevelSpec names a level and the map file it is built from.
type LevelSpec struct {
	Name string `mapstructure:"name"`
	Map  string `mapstructure:"map"`
}

// Level is one play session over a map. Sprites are collected in place and
// can be restored from the pristine copy taken at load.
type Level struct {
	Name    string
	World   *raycast.World
	Sprites []raycast.Sprite

	Start    geom.Vector2
	HasStart bool

	pristine []raycast.Sprite
}

func LoadLevel(ctx context.Context, fsys fs.FS, spec LevelSpec, blockSize float64, spriteSymbols string, textures *raycast.TextureSet) (*Level, error) {
	_, span := telemetry.Tracer("level").Start(ctx, "LoadLevel")
	defer span.End()
	span.SetAttributes(attribute.String("level.name", spec.Name), attribute.String("level.map", spec.Map))

	f, err := fsys.Open(spec.Map)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", spec.Name, err)
	}
	defer f.Close()

	grid, err := raycast.ParseGrid(f, blockSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %s: %w", spec.Name, spec.Map, err)
	}

	l := &Level{
		Name:  spec.Name,
		World: &raycast.World{Grid: grid, Textures: textures},
	}
	if starts := grid.Extract(string(StartSymbol)); len(starts) > 0 {
		x, y := grid.CellCenter(starts[0].Col, starts[0].Row)
		l.Start = geom.Vector2{X: x, Y: y}
		l.HasStart = true
	}
	l.Sprites = raycast.SpritesFromPlacements(grid, grid.Extract(spriteSymbols), textures)
	if err := copier.Copy(&l.pristine, &l.Sprites); err != nil {
		return nil, fmt.Errorf("level %s: snapshot sprites: %w", spec.Name, err)
	}

	span.SetAttributes(
		attribute.Int("level.width", grid.Width()),
		attribute.Int("level.height", grid.Height()),
		attribute.Int("level.sprites", len(l.Sprites)),
	)
	return l, nil
}

// Collect flags every uncollected sprite closer than radius to pos and
// returns how many were newly collected.
func (l *Level) Collect(pos geom.Vector2, radius float64) int {
	n := 0
	for i := range l.Sprites {
		s := &l.Sprites[i]
		if s.Collected {
			continue
		}
		if math.Hypot(s.Position.X-pos.X, s.Position.Y-pos.Y) < radius {
			s.Collected = true
			n++
		}
	}
	return n
}

func (l *Level) Total() int { return len(l.Sprites) }

func (l *Level) Remaining() int {
	n := 0
	for i := range l.Sprites {
		if !l.Sprites[i].Collected {
			n++
		}
	}
	return n
}

// Complete reports whether every sprite has been collected.
func (l *Level) Complete() bool { return l.Remaining() == 0 }

// Reset restores the sprites as they were at load.
func (l *Level) Reset() error {
	var fresh []raycast.Sprite
	if err := copier.Copy(&fresh, &l.pristine); err != nil {
		return fmt.Errorf("level %s: reset sprites: %w", l.Name, err)
	}
	l.Sprites = fresh
	return nil
}
