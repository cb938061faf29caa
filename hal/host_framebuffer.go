//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is double buffered: callers draw into back and Present
// copies it to front, which the window reads.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	format   PixelFormat
	back     []byte
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		back:   make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB(f.back, f.format, r, g, b)
}

// snapshotRGBA copies the last presented frame into dst as RGBA bytes.
// dst must hold width*height*4 bytes.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	toRGBA(dst, f.front, f.format)
}

// snapshot copies the last presented frame verbatim.
func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
