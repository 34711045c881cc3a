package utils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCalcMaxLod(t *testing.T) {
	tests := []struct {
		w, h uint
		want uint8
	}{
		{0, 0, 0},
		{100, 50, 0},
		{256, 256, 0},
		{257, 10, 1},
		{10, 600, 2},
		{1024, 1024, 2},
		{1025, 1, 3},
	}

	for _, tt := range tests {
		if got := CalcMaxLod(tt.w, tt.h); got != tt.want {
			t.Errorf("CalcMaxLod(%d, %d): expected %d, got %d", tt.w, tt.h, tt.want, got)
		}
	}
}

func TestIsFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(file) || IsDirectory(file) {
		t.Errorf("expected %s to be a file", file)
	}
	if IsFile(dir) || !IsDirectory(dir) {
		t.Errorf("expected %s to be a directory", dir)
	}
	if IsFile(filepath.Join(dir, "missing")) || IsDirectory(filepath.Join(dir, "missing")) {
		t.Errorf("expected missing path to be neither file nor directory")
	}
}

func TestBuildTileSet(t *testing.T) {
	out := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	if err := BuildTileSet(1, img, DirectoryWriter{Root: out, Extension: "png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range []string{"1/0/0.png", "1/0/1.png", "1/1/0.png", "1/1/1.png"} {
		f, err := os.Open(filepath.Join(out, p))
		if err != nil {
			t.Fatalf("missing tile %s: %v", p, err)
		}
		tile, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("tile %s: %v", p, err)
		}
		if tile.Bounds().Dx() != TileSizeInPx || tile.Bounds().Dy() != TileSizeInPx {
			t.Errorf("tile %s: expected %dpx, got %v", p, TileSizeInPx, tile.Bounds())
		}
	}
}

func TestBuildTileSet_NarrowImage(t *testing.T) {
	out := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 300, 1))
	for x := 0; x < 300; x++ {
		img.SetRGBA(x, 0, color.RGBA{G: 255, A: 255})
	}

	lod := CalcMaxLod(300, 1)
	if lod != 1 {
		t.Fatalf("expected lod 1, got %d", lod)
	}

	if err := BuildTileSet(lod, img, DirectoryWriter{Root: out, Extension: "png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the second tile row has no pixels and is written fully transparent
	f, err := os.Open(filepath.Join(out, "1/0/1.png"))
	if err != nil {
		t.Fatalf("missing tile: %v", err)
	}
	defer f.Close()

	tile, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Bounds().Dx() != TileSizeInPx || tile.Bounds().Dy() != TileSizeInPx {
		t.Errorf("expected %dpx tile, got %v", TileSizeInPx, tile.Bounds())
	}
	if _, _, _, a := tile.At(10, 10).RGBA(); a != 0 {
		t.Errorf("expected empty tile to be transparent, got alpha %d", a)
	}
}
