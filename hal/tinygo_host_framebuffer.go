//go:build tinygo

package hal

// tinyGoHostFramebuffer is a single RGB565 buffer with no panel behind it.
type tinyGoHostFramebuffer struct {
	w, h   int
	buf    []byte
	frames uint64
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	return &tinyGoHostFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tinyGoHostFramebuffer) StrideBytes() int    { return f.w * 2 }
func (f *tinyGoHostFramebuffer) Buffer() []byte      { return f.buf }

func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB(f.buf, PixelFormatRGB565, r, g, b)
}

// Present only counts frames.
func (f *tinyGoHostFramebuffer) Present() error {
	f.frames++
	return nil
}
