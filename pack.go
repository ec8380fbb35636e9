package bmpfont

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"

	"github.com/pixfont/bmpfont/bitmap"
)

// ErrDimensionMismatch is returned when an image cannot be split into a
// 16x16 grid of glyphs of the requested size.
var ErrDimensionMismatch = errors.New("bmpfont: image does not match the glyph grid")

// GlyphSize infers the glyph size of a font image, which must be a 16x16
// grid of equally sized cells.
func GlyphSize(b *bitmap.Bitmap) (w, h int, err error) {
	if b.Width <= 0 || b.Width%GridSize != 0 || b.Rows() == 0 || b.Rows()%GridSize != 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d is not divisible by %d", ErrDimensionMismatch, b.Width, b.Rows(), GridSize)
	}
	return b.Width / GridSize, b.Rows() / GridSize, nil
}

// Pack slices the 16x16 grid of glyph cells in b into a Font. Glyph g is
// taken from column g%16 and row g/16 of the grid.
//
// Source rows are read most significant bit first while glyph row-bytes are
// filled least significant bit first, so the leftmost pixel of a glyph row
// ends up in bit 0 of its first byte. When glyphWidth is not a multiple of
// 8 the unused high bits of the last row-byte stay clear.
func Pack(b *bitmap.Bitmap, glyphWidth, glyphHeight int) (*Font, error) {
	w, h, err := GlyphSize(b)
	if err != nil {
		return nil, err
	}
	if w != glyphWidth || h != glyphHeight {
		return nil, fmt.Errorf("%w: %dx%d image holds %dx%d glyphs, not %dx%d",
			ErrDimensionMismatch, b.Width, b.Rows(), w, h, glyphWidth, glyphHeight)
	}

	f := &Font{Width: w, Height: h}
	rowBytes := f.RowBytes()
	for g := range NumGlyphs {
		row, col := g/GridSize, g%GridSize

		glyph := make([]byte, rowBytes*h)
		for y := 0; y < h; y++ {
			err := packRow(glyph[y*rowBytes:(y+1)*rowBytes], b, col*w, row*h+y, w)
			if err != nil {
				return nil, fmt.Errorf("bmpfont: glyph %d row %d: %w", g, y, err)
			}
		}
		f.Glyphs[g] = glyph
	}
	return f, nil
}

// packRow packs width pixels of image row y, starting at column x, into dst.
func packRow(dst []byte, b *bitmap.Bitmap, x, y, width int) error {
	start := y*b.Stride + x/8
	r := bitio.NewReader(bytes.NewReader(b.Pix[start : (y+1)*b.Stride]))
	if skip := uint8(x % 8); skip > 0 {
		if _, err := r.ReadBits(skip); err != nil {
			return err
		}
	}

	for i := range dst {
		// a width that is a multiple of 8 fills the last byte too
		bits := 8
		if i == len(dst)-1 && width%8 != 0 {
			bits = width % 8
		}
		for bit := 0; bit < bits; bit++ {
			set, err := r.ReadBool()
			if err != nil {
				return err
			}
			if set {
				dst[i] |= 1 << uint(bit)
			}
		}
	}
	return nil
}
