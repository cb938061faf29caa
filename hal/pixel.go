package hal

import "encoding/binary"

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands the 5/6/5 channels back to 8 bits, so that
// 0x00 and 0xFF survive a round trip.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}

// fillRGB writes the opaque color (r, g, b) to every pixel of buf.
// Unknown formats leave buf untouched.
func fillRGB(buf []byte, f PixelFormat, r, g, b uint8) {
	switch f {
	case PixelFormatARGB8888:
		px := 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		for i := 0; i+4 <= len(buf); i += 4 {
			binary.LittleEndian.PutUint32(buf[i:], px)
		}
	case PixelFormatRGB565:
		px := rgb565(r, g, b)
		for i := 0; i+2 <= len(buf); i += 2 {
			binary.LittleEndian.PutUint16(buf[i:], px)
		}
	}
}

// toRGBA converts src, encoded as f, into the RGBA byte order used by
// image.RGBA and ebiten. Alpha is forced opaque.
func toRGBA(dst, src []byte, f PixelFormat) {
	switch f {
	case PixelFormatARGB8888:
		for i := 0; i+4 <= len(src) && i+4 <= len(dst); i += 4 {
			dst[i], dst[i+1], dst[i+2], dst[i+3] = src[i+2], src[i+1], src[i], 0xFF
		}
	case PixelFormatRGB565:
		for i, j := 0, 0; i+2 <= len(src) && j+4 <= len(dst); i, j = i+2, j+4 {
			r, g, b := rgb888From565(binary.LittleEndian.Uint16(src[i:]))
			dst[j], dst[j+1], dst[j+2], dst[j+3] = r, g, b, 0xFF
		}
	}
}
