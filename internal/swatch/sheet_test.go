package swatch

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/huecrest/internal/colour"
)

func buildPalette(t *testing.T) colour.Palette {
	t.Helper()
	builder, err := colour.NewBuilder(colour.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return builder.Build()
}

func TestRenderDimensions(t *testing.T) {
	palette := buildPalette(t)

	img := Render(palette, 8)
	bounds := img.Bounds()

	// 256 entries at 16 per row is a 16x16 grid.
	if bounds.Dx() != 16*8 || bounds.Dy() != 16*8 {
		t.Errorf("sheet is %dx%d, want 128x128", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderCellColours(t *testing.T) {
	palette := buildPalette(t)
	img := Render(palette, 4)

	// Entry 0 is transparent.
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("transparent cell has alpha %d, want 0", a)
	}

	// Entry 15 (pure white) lands at the end of the first row.
	r, g, b, a := img.At(15*4+1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("pure white cell = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	palette := buildPalette(t)
	path := filepath.Join(t.TempDir(), "missing", "sheet.png")

	if err := WriteFile(path, palette, 0); err == nil {
		t.Fatal("WriteFile succeeded for a path in a missing directory")
	}
}

func TestWriteFile(t *testing.T) {
	palette := buildPalette(t)
	path := filepath.Join(t.TempDir(), "sheet.png")

	if err := WriteFile(path, palette, 0); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening sheet: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding sheet: %v", err)
	}
	if img.Bounds().Dx() != 16*24 {
		t.Errorf("sheet width %d, want %d", img.Bounds().Dx(), 16*24)
	}
}
