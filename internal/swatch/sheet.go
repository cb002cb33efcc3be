// Package swatch renders a generated palette as a PNG swatch sheet.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/huecrest/internal/colour"
)

const (
	// defaultCellSize is the pixel width and height of one swatch cell.
	defaultCellSize = 24
	// sheetColumns lays the 256-entry palette out as a 16x16 grid.
	sheetColumns = 16
)

// Render draws the palette as a grid image, sheetColumns swatches per row.
// cellSize is the side length of each swatch in pixels; pass 0 for the
// default. The transparent sentinel renders as a fully transparent cell.
func Render(palette colour.Palette, cellSize int) *image.NRGBA {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}

	rows := (palette.Len() + sheetColumns - 1) / sheetColumns
	if rows == 0 {
		rows = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, sheetColumns*cellSize, rows*cellSize))

	for i, e := range palette {
		col := i % sheetColumns
		row := i / sheetColumns
		cell := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)

		r, g, b := e.Colour.RGB255()
		a := uint8(e.Colour.Alpha() * 255)
		fill := image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: a})
		draw.Draw(img, cell, fill, image.Point{}, draw.Src)
	}

	return img
}

// WriteFile renders the palette and writes it to path as a PNG.
func WriteFile(path string, palette colour.Palette, cellSize int) error {
	img := Render(palette, cellSize)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating swatch sheet: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding swatch sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing swatch sheet: %w", err)
	}
	return nil
}
