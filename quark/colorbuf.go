package quark

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

var (
	ErrInvalidSize = errors.New("quark: invalid buffer size")
	ErrShortBuffer = errors.New("quark: destination too small")
)

// ColorBuffer is one frame of packed ARGB pixels, row-major,
// addressed by width*y + x.
//
// The length of the backing slice is always Width()*Height().
// ColorBuffer also implements image.Image.
type ColorBuffer struct {
	w   int
	h   int
	pix []uint32
}

// NewColorBuffer allocates a w*h buffer cleared to zero.
func NewColorBuffer(w, h int) (*ColorBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	return &ColorBuffer{w: w, h: h, pix: make([]uint32, w*h)}, nil
}

func (b *ColorBuffer) Width() int       { return b.w }
func (b *ColorBuffer) Height() int      { return b.h }
func (b *ColorBuffer) Size() (w, h int) { return b.w, b.h }

// Pixels exposes the backing slice.
func (b *ColorBuffer) Pixels() []uint32 { return b.pix }

func (b *ColorBuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// Pixel returns the color at (x, y), or 0 outside the buffer.
func (b *ColorBuffer) Pixel(x, y int) Color {
	if !b.inside(x, y) {
		return 0
	}
	return Color(b.pix[b.w*y+x])
}

// Clear overwrites every cell with c.
func (b *ColorBuffer) Clear(c Color) {
	v := uint32(c)
	for i := range b.pix {
		b.pix[i] = v
	}
}

// CopyARGB8888 writes the buffer as little-endian 32-bit words
// (bytes B, G, R, A per pixel) into dst, using stride bytes per row.
func (b *ColorBuffer) CopyARGB8888(dst []byte, stride int) error {
	if stride < b.w*4 || len(dst) < stride*(b.h-1)+b.w*4 {
		return ErrShortBuffer
	}
	for y := 0; y < b.h; y++ {
		row := dst[y*stride:]
		src := b.pix[y*b.w : (y+1)*b.w]
		for x, p := range src {
			binary.LittleEndian.PutUint32(row[x*4:], p)
		}
	}
	return nil
}

// CopyRGB565 writes the buffer as little-endian RGB565 into dst,
// using stride bytes per row.
func (b *ColorBuffer) CopyRGB565(dst []byte, stride int) error {
	if stride < b.w*2 || len(dst) < stride*(b.h-1)+b.w*2 {
		return ErrShortBuffer
	}
	for y := 0; y < b.h; y++ {
		row := dst[y*stride:]
		src := b.pix[y*b.w : (y+1)*b.w]
		for x, p := range src {
			binary.LittleEndian.PutUint16(row[x*2:], Color(p).RGB565())
		}
	}
	return nil
}

func (b *ColorBuffer) ColorModel() color.Model { return color.NRGBAModel }
func (b *ColorBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }
func (b *ColorBuffer) At(x, y int) color.Color { return b.Pixel(x, y).NRGBA() }
