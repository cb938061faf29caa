package quark

import "image/color"

// Color is a packed 32-bit ARGB value: 0xAARRGGBB.
type Color uint32

const (
	ColorBlack  Color = 0xFF000000
	ColorWhite  Color = 0xFFFFFFFF
	ColorYellow Color = 0xFFFFFF00
	ColorGrid   Color = 0xFF333333
)

func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func RGB(r, g, b uint8) Color { return ARGB(0xFF, r, g, b) }

// FromRGBA converts a non-premultiplied color.RGBA (as used by tinyfont).
func FromRGBA(c color.RGBA) Color { return ARGB(c.A, c.R, c.G, c.B) }

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// NRGBA returns c as a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGB565 packs c into 16 bits, dropping alpha.
func (c Color) RGB565() uint16 {
	return uint16((uint16(c.R()>>3)&0x1F)<<11 | (uint16(c.G()>>2)&0x3F)<<5 | (uint16(c.B()>>3) & 0x1F))
}
