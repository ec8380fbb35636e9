package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// compressionRGB is BI_RGB, the only compression mode supported.
	compressionRGB = 0
)

// fileHeader is the BITMAPFILEHEADER at the start of every BMP file.
type fileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // size of the whole file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset of the pixel array
}

// infoHeader is the BITMAPINFOHEADER that follows the file header.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // negative for top-down bitmaps
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

type header struct {
	file fileHeader
	info infoHeader
}

func readHeader(r io.Reader) (*header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h.file); err != nil {
		return nil, headerError(err)
	}
	if h.file.Type != [2]byte{'B', 'M'} {
		return nil, fmt.Errorf("%w: 0x%02X%02X", ErrBadSignature, h.file.Type[0], h.file.Type[1])
	}
	if err := binary.Read(r, binary.LittleEndian, &h.info); err != nil {
		return nil, headerError(err)
	}
	return &h, nil
}

func headerError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: header too short", ErrTruncatedFile)
	}
	return fmt.Errorf("%w: reading header: %w", ErrIO, err)
}

// validate checks the header describes an image this package can decode.
func (h *header) validate() error {
	if h.info.Size < infoHeaderSize {
		return fmt.Errorf("%w: info header is %d bytes", ErrUnsupportedHeader, h.info.Size)
	}
	if h.info.BitCount != 1 {
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedDepth, h.info.BitCount)
	}
	if h.info.Compression != compressionRGB {
		return fmt.Errorf("%w: mode %d", ErrUnsupportedCompression, h.info.Compression)
	}
	if h.info.Width <= 0 || h.info.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, h.info.Width, h.info.Height)
	}
	return nil
}
