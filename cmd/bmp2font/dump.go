package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/pixfont/bmpfont"
)

func rowToString(font *bmpfont.Font, c byte, y int) string {
	s := ""
	for x := 0; x < font.Width; x++ {
		if font.Pixel(c, x, y) {
			s += "X"
		} else {
			s += " "
		}
	}
	return s
}

// dumpFont prints a text representation of every glyph, one line per glyph
// row prefixed with the glyph's byte value.
func dumpFont(w io.Writer, font *bmpfont.Font) {
	for g := 0; g < bmpfont.NumGlyphs; g++ {
		for y := 0; y < font.Height; y++ {
			fmt.Fprintf(w, "%02X  [%s]\n", g, rowToString(font, byte(g), y))
		}
	}
}

// writePreview redraws the font as a black on white 16x16 glyph grid and
// saves it as a PNG, scaled up by scale.
func writePreview(filename string, font *bmpfont.Font, scale int) error {
	if scale < 1 {
		scale = 1
	}
	grid := image.Rect(0, 0, font.Width*bmpfont.GridSize, font.Height*bmpfont.GridSize)
	img := image.NewPaletted(grid, color.Palette{color.White, color.Black})
	font.DrawGrid(img, color.Black)

	scaled := image.NewPaletted(image.Rect(0, 0, grid.Dx()*scale, grid.Dy()*scale), img.Palette)
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, scaled); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
