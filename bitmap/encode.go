package bitmap

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Encode writes b as a 1-bit uncompressed BMP with a black (0) and
// white (1) palette. Rows are written top-down when topDown is set,
// bottom-up otherwise.
func Encode(w io.Writer, b *Bitmap, topDown bool) error {
	const paletteSize = 2 * 4

	rows := b.Rows()
	stride := RowStride(b.Width)
	offset := fileHeaderSize + infoHeaderSize + paletteSize

	height := int32(rows)
	if topDown {
		height = -height
	}

	h := header{
		file: fileHeader{
			Type:    [2]byte{'B', 'M'},
			Size:    uint32(offset + stride*rows),
			OffBits: uint32(offset),
		},
		info: infoHeader{
			Size:        infoHeaderSize,
			Width:       int32(b.Width),
			Height:      height,
			Planes:      1,
			BitCount:    1,
			Compression: compressionRGB,
			SizeImage:   uint32(stride * rows),
			ColorsUsed:  2,
		},
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h.file); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, &h.info); err != nil {
		return err
	}
	// BGRA palette entries
	if _, err := bw.Write([]byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0}); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		y := i
		if !topDown {
			y = rows - 1 - i
		}
		if _, err := bw.Write(b.Pix[y*b.Stride : y*b.Stride+stride]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
