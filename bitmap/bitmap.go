// Package bitmap reads and writes uncompressed monochrome (1 bit per pixel)
// Windows bitmap files.
//
// Decoded pixels are always stored top-down, whatever the orientation of the
// file they came from. Each row occupies Stride bytes and the leftmost pixel
// of a row is the most significant bit of its first byte.
package bitmap

import (
	"errors"
	"fmt"
)

var (
	ErrBadSignature           = errors.New("bitmap: not a Windows bitmap")
	ErrUnsupportedHeader      = errors.New("bitmap: unsupported info header")
	ErrUnsupportedDepth       = errors.New("bitmap: not a 1-bit bitmap")
	ErrUnsupportedCompression = errors.New("bitmap: compressed bitmaps are not supported")
	ErrInvalidSize            = errors.New("bitmap: invalid image size")
	ErrTruncatedFile          = errors.New("bitmap: file ended before all pixels could be read")
	ErrAllocationFailure      = errors.New("bitmap: could not allocate pixel buffer")
	ErrIO                     = errors.New("bitmap: i/o error")
)

// MaxPixelBytes bounds the pixel buffer Decode is willing to allocate.
const MaxPixelBytes = 256 << 20

// Bitmap is a decoded monochrome image.
type Bitmap struct {
	Width int
	// Height is the height as stored in the file header. A negative height
	// means the file stored its rows top-down.
	Height int
	Depth  int
	Stride int
	Pix    []byte
}

// New allocates an empty bitmap of the given size. A negative height marks
// the bitmap as top-down, as in the file format.
func New(width, height int) *Bitmap {
	b := &Bitmap{
		Width:  width,
		Height: height,
		Depth:  1,
		Stride: RowStride(width),
	}
	b.Pix = make([]byte, b.Stride*b.Rows())
	return b
}

// RowStride returns the number of bytes used to store one row of width
// pixels, padded to a 4-byte boundary.
func RowStride(width int) int {
	return ((width+7)/8 + 3) &^ 3
}

// Rows returns the number of pixel rows.
func (b *Bitmap) Rows() int {
	if b.Height < 0 {
		return -b.Height
	}
	return b.Height
}

// TopDown reports whether the source file stored rows top-down.
func (b *Bitmap) TopDown() bool {
	return b.Height < 0
}

// At reports whether the pixel at x,y is set. Row 0 is the top of the image.
func (b *Bitmap) At(x, y int) bool {
	return b.Pix[y*b.Stride+x/8]&(0x80>>uint(x%8)) != 0
}

// Set sets or clears the pixel at x,y.
func (b *Bitmap) Set(x, y int, on bool) {
	i := y*b.Stride + x/8
	if on {
		b.Pix[i] |= 0x80 >> uint(x%8)
	} else {
		b.Pix[i] &^= 0x80 >> uint(x%8)
	}
}

// Invert returns a copy of b with every pixel flipped. Row padding is left
// clear.
func (b *Bitmap) Invert() *Bitmap {
	n := &Bitmap{
		Width:  b.Width,
		Height: b.Height,
		Depth:  b.Depth,
		Stride: b.Stride,
		Pix:    make([]byte, len(b.Pix)),
	}
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Width; x++ {
			n.Set(x, y, !b.At(x, y))
		}
	}
	return n
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%dx%dx%d)", b.Width, b.Height, b.Depth)
}
