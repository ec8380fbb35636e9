// Package bmpfont converts monochrome bitmap images laid out as a 16x16 grid
// of character cells into fixed-size bitmap fonts of 256 glyphs, one per
// byte value.
//
// Glyphs are stored the way small display drivers expect them: each glyph
// row takes RowBytes bytes, and the leftmost pixel of a row is the least
// significant bit of its first byte.
//
// See the included bmp2font tool to convert a .bmp file into C or Go source.
package bmpfont

import (
	"bytes"
	"image/color"
)

// NumGlyphs is the number of glyphs in a font, one per byte value.
const NumGlyphs = 256

// GridSize is the number of glyph cells along each side of a font image.
const GridSize = 16

// Drawable is an interface which supports setting an x,y coordinate to a color.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// Font is a fixed-size bitmap font with a glyph for every byte value.
type Font struct {
	Width  int
	Height int
	Glyphs [NumGlyphs][]byte
}

// NewFont creates a Font with the provided glyph width/height and packed glyph
// rows. Each glyph must hold Height rows of RowBytes bytes.
func NewFont(w, h int, glyphs [NumGlyphs][]byte) *Font {
	return &Font{Width: w, Height: h, Glyphs: glyphs}
}

// RowBytes returns the number of bytes used by a single glyph row.
func (f *Font) RowBytes() int {
	return (f.Width + 7) / 8
}

// GlyphBytes returns the number of bytes used by a single glyph.
func (f *Font) GlyphBytes() int {
	return f.RowBytes() * f.Height
}

// Pixel reports whether pixel x,y of glyph c is set.
func (f *Font) Pixel(c byte, x, y int) bool {
	return f.Glyphs[c][y*f.RowBytes()+x/8]&(1<<uint(x%8)) != 0
}

// DrawRune uses this Font to display a single glyph in the provided color and
// position in Drawable. The x,y position represents the top-left corner of the
// glyph. Drawable.Set is called for each set pixel, leaving all other pixels
// in the Drawable as-is.
func (f *Font) DrawRune(dr Drawable, x, y int, c byte, clr color.Color) {
	for yy := 0; yy < f.Height; yy++ {
		for xx := 0; xx < f.Width; xx++ {
			if f.Pixel(c, xx, yy) {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
}

// DrawString uses this Font to display the bytes of s in the provided color,
// starting at x,y. Glyphs are drawn one cell apart with no spacing, so
// multi-byte UTF-8 characters draw as their individual bytes.
func (f *Font) DrawString(dr Drawable, x, y int, s string, clr color.Color) {
	for i := 0; i < len(s); i++ {
		f.DrawRune(dr, x, y, s[i], clr)
		x += f.Width
	}
}

// DrawGrid redraws every glyph in its cell of a 16x16 grid, reproducing the
// layout of the source image.
func (f *Font) DrawGrid(dr Drawable, clr color.Color) {
	for g := 0; g < NumGlyphs; g++ {
		f.DrawRune(dr, (g%GridSize)*f.Width, (g/GridSize)*f.Height, byte(g), clr)
	}
}

///////

// StringDrawable implements Drawable so a font can be drawn as text, one
// 'X' per set pixel.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	for len(s.lines) <= y {
		s.lines = append(s.lines, make([]byte, x))
	}

	if len(s.lines[y]) <= x {
		nb := make([]byte, 1+(x-len(s.lines[y])))
		s.lines[y] = append(s.lines[y], nb...)
	}

	s.lines[y][x] = byte('X')
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with a
// user-provided prefix before each line. Useful for adding output in code comments.
func (s *StringDrawable) PrefixString(p string) string {
	r := ""
	for _, line := range s.lines {
		r += p + string(bytes.Replace(line, []byte{0}, []byte(" "), -1)) + "\n"
	}
	return r
}
