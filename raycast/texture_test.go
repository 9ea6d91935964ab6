package raycast

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func TestTextureAtClamps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{1, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{2, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{3, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{4, 0, 0, 255})
	tex := NewTexture(img)

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{1, 1, 4},
		{-5, -5, 1},
		{9, 0, 2},
		{0, 9, 3},
		{9, 9, 4},
	}
	for _, tt := range tests {
		if got := tex.At(tt.x, tt.y).R; got != tt.want {
			t.Errorf("At(%d, %d).R = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNewTextureNormalizesOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.SetRGBA(6, 5, color.RGBA{9, 9, 9, 255})
	tex := NewTexture(img)
	if tex.Width() != 2 || tex.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", tex.Width(), tex.Height())
	}
	if got := tex.At(1, 0); got != (color.RGBA{9, 9, 9, 255}) {
		t.Errorf("At(1,0) = %v", got)
	}
}

func TestTextureSetMissingIsWhite(t *testing.T) {
	ts := NewTextureSet()
	if got := ts.Sample('x', 0, 0); got != white {
		t.Errorf("missing symbol sampled %v, want white", got)
	}
}

func TestLoadTextures(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(2, 2, color.RGBA{10, 20, 30, 255})
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	fsys := fstest.MapFS{"textures/wall.png": {Data: buf.Bytes()}}

	ts, err := LoadTextures(fsys, []TextureSource{{Symbol: "+", Path: "textures/wall.png"}})
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	if got := ts.Sample('+', 0.9, 0.9); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("texel = %v", got)
	}

	if _, err := LoadTextures(fsys, []TextureSource{{Symbol: "+", Path: "missing.png"}}); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadTextures(fsys, []TextureSource{{Symbol: "ab", Path: "textures/wall.png"}}); err == nil {
		t.Error("expected error for multi-character symbol")
	}
}
