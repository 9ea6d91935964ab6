package model

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/harbdog/raycaster-go/geom"

	"mazecaster/assets"
	"mazecaster/raycast"
)

func loadTestLevel(t *testing.T, rows string) *Level {
	t.Helper()
	fsys := fstest.MapFS{"maps/test.txt": {Data: []byte(rows)}}
	l, err := LoadLevel(context.Background(), fsys, LevelSpec{Name: "test", Map: "maps/test.txt"}, 100, "ABG", raycast.NewTextureSet())
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	return l
}

func TestLoadLevelExtractsSpritesAndStart(t *testing.T) {
	l := loadTestLevel(t, "+++++\n+@ A+\n+G  +\n+++++\n")

	if !l.HasStart || l.Start != (geom.Vector2{X: 150, Y: 150}) {
		t.Errorf("start = %+v (%v)", l.Start, l.HasStart)
	}
	if l.Total() != 2 {
		t.Fatalf("total = %d, want 2", l.Total())
	}
	if l.World.Grid.IsWall(350, 150) {
		t.Error("sprite cell still blocks")
	}
	if l.World.Grid.IsWall(150, 150) {
		t.Error("start cell still blocks")
	}
}

func TestCollectFlipsOnce(t *testing.T) {
	l := loadTestLevel(t, "+++++\n+  A+\n+G  +\n+++++\n")
	a := l.Sprites[0].Position

	if n := l.Collect(geom.Vector2{X: a.X - 100, Y: a.Y}, 50); n != 0 {
		t.Fatalf("collected %d sprites out of range", n)
	}
	if n := l.Collect(geom.Vector2{X: a.X - 10, Y: a.Y}, 50); n != 1 {
		t.Fatalf("collected %d, want 1", n)
	}
	if !l.Sprites[0].Collected {
		t.Fatal("flag not set")
	}
	if n := l.Collect(a, 50); n != 0 {
		t.Fatalf("collected %d again", n)
	}
	// moving away never un-collects
	l.Collect(geom.Vector2{X: 0, Y: 0}, 50)
	if !l.Sprites[0].Collected || l.Remaining() != 1 {
		t.Fatalf("collected = %v, remaining = %d", l.Sprites[0].Collected, l.Remaining())
	}
	if l.Complete() {
		t.Fatal("level complete with one sprite left")
	}

	l.Collect(l.Sprites[1].Position, 50)
	if !l.Complete() {
		t.Fatal("level not complete after collecting everything")
	}
}

func TestResetRestoresSprites(t *testing.T) {
	l := loadTestLevel(t, "+++++\n+  A+\n+B  +\n+++++\n")
	for i := range l.Sprites {
		l.Collect(l.Sprites[i].Position, 1)
	}
	if l.Remaining() != 0 {
		t.Fatalf("remaining = %d", l.Remaining())
	}

	if err := l.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if l.Remaining() != 2 {
		t.Fatalf("remaining after reset = %d, want 2", l.Remaining())
	}
	if l.Sprites[0].Symbol != 'A' || l.Sprites[1].Symbol != 'B' {
		t.Errorf("sprites = %+v", l.Sprites)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.txt": {Data: []byte("+++\n+\n")}}
	_, err := LoadLevel(context.Background(), fsys, LevelSpec{Name: "bad", Map: "bad.txt"}, 100, "A", nil)
	if !errors.Is(err, raycast.ErrNotRectangular) {
		t.Errorf("ragged map: err = %v", err)
	}

	_, err = LoadLevel(context.Background(), fsys, LevelSpec{Name: "missing", Map: "nope.txt"}, 100, "A", nil)
	if err == nil {
		t.Error("expected error for missing map")
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	fsys := assets.FS("")
	textures, err := raycast.LoadTextures(fsys, []raycast.TextureSource{
		{Symbol: "+", Path: "textures/wall_plus.png"},
		{Symbol: "A", Path: "textures/sprite_a.png"},
	})
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}

	for _, m := range []string{"maps/level1.txt", "maps/level2.txt"} {
		l, err := LoadLevel(context.Background(), fsys, LevelSpec{Name: m, Map: m}, 100, "ABG", textures)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if l.Total() == 0 {
			t.Errorf("%s has no sprites", m)
		}
	}
}
