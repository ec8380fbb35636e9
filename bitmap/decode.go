package bitmap

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DecodeFile opens the named file and decodes it with Decode.
func DecodeFile(filename string) (*Bitmap, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a 1-bit uncompressed BMP from r. Rows are seeked to
// individually so any slack between the headers and the pixel array, or
// between rows, is skipped.
func Decode(r io.ReadSeeker) (*Bitmap, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	b := &Bitmap{
		Width:  int(h.info.Width),
		Height: int(h.info.Height),
		Depth:  int(h.info.BitCount),
		Stride: RowStride(int(h.info.Width)),
	}
	rows := b.Rows()

	size := int64(b.Stride) * int64(rows)
	if size > MaxPixelBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationFailure, size)
	}
	b.Pix = make([]byte, size)

	offset := int64(h.file.OffBits)
	for i := 0; i < rows; i++ {
		if _, err := r.Seek(offset+int64(i)*int64(b.Stride), io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: seeking to row %d: %w", ErrIO, i, err)
		}

		y := i
		if !b.TopDown() {
			y = rows - 1 - i
		}
		row := b.Pix[y*b.Stride : (y+1)*b.Stride]
		if _, err := io.ReadFull(r, row); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: row %d of %d", ErrTruncatedFile, i, rows)
			}
			return nil, fmt.Errorf("%w: reading row %d: %w", ErrIO, i, err)
		}
	}
	return b, nil
}
