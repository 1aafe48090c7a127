// Package raster implements a device-independent pixel surface in the classic
// bitmap depths and the gradient fill the software demo draws into it.
package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("raster: invalid surface size")
	// ErrUnsupportedDepth is returned for bit depths other than 8, 15, 16, 24 and 32.
	ErrUnsupportedDepth = errors.New("raster: unsupported bit depth")
)

// Surface is a top-down pixel buffer. Rows are padded to 4 bytes.
//
// Pixel formats by depth:
//
//	 8  gray palette index
//	15  RGB555, little endian
//	16  RGB565, little endian
//	24  B, G, R
//	32  B, G, R, X
type Surface struct {
	Width, Height int
	BitsPerPixel  int
	Stride        int
	Pix           []byte
}

// NewSurface allocates a zeroed surface.
func NewSurface(width, height, bpp int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	switch bpp {
	case 8, 15, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, bpp)
	}

	storage := bpp
	if bpp == 15 {
		storage = 16
	}
	stride := (width*storage + 31) / 32 * 4
	return &Surface{
		Width:        width,
		Height:       height,
		BitsPerPixel: bpp,
		Stride:       stride,
		Pix:          make([]byte, stride*height),
	}, nil
}

func (s *Surface) bytesPerPixel() int {
	switch s.BitsPerPixel {
	case 8:
		return 1
	case 15, 16:
		return 2
	case 24:
		return 3
	default:
		return 4
	}
}

func (s *Surface) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0, false
	}
	return y*s.Stride + x*s.bytesPerPixel(), true
}

// SetRGB stores a color at (x, y), packed for the surface depth.
// Points outside the surface are ignored.
func (s *Surface) SetRGB(x, y int, r, g, b uint8) {
	i, ok := s.offset(x, y)
	if !ok {
		return
	}

	switch s.BitsPerPixel {
	case 8:
		s.Pix[i] = uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
	case 15:
		v := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
		binary.LittleEndian.PutUint16(s.Pix[i:], v)
	case 16:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		binary.LittleEndian.PutUint16(s.Pix[i:], v)
	case 24:
		s.Pix[i], s.Pix[i+1], s.Pix[i+2] = b, g, r
	case 32:
		s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3] = b, g, r, 0
	}
}

// RGBAt returns the color at (x, y), expanded to 8 bits per channel.
// Points outside the surface read as black.
func (s *Surface) RGBAt(x, y int) (r, g, b uint8) {
	i, ok := s.offset(x, y)
	if !ok {
		return 0, 0, 0
	}

	switch s.BitsPerPixel {
	case 8:
		return s.Pix[i], s.Pix[i], s.Pix[i]
	case 15:
		v := binary.LittleEndian.Uint16(s.Pix[i:])
		return expand5(v >> 10), expand5(v >> 5), expand5(v)
	case 16:
		v := binary.LittleEndian.Uint16(s.Pix[i:])
		return expand5(v >> 11), expand6(v >> 5), expand5(v)
	default:
		return s.Pix[i+2], s.Pix[i+1], s.Pix[i]
	}
}

func expand5(v uint16) uint8 {
	v &= 0x1F
	return uint8(v<<3 | v>>2)
}

func expand6(v uint16) uint8 {
	v &= 0x3F
	return uint8(v<<2 | v>>4)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.Width, s.Height) }

// At implements image.Image. Surfaces are opaque.
func (s *Surface) At(x, y int) color.Color {
	r, g, b := s.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FillGradient writes the test pattern: red follows x, green follows y,
// and blue is the low byte of x plus y modulo 256.
func FillGradient(s *Surface) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.SetRGB(x, y, uint8(x%256), uint8(y%256), uint8(x+y%256))
		}
	}
}
