package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrStop is returned by a step function to end the run cleanly.
	ErrStop = errors.New("stop requested")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatARGB8888 is 32bpp 0xAARRGGBB, little-endian (bytes B, G, R, A).
	PixelFormatARGB8888
)

// BytesPerPixel returns the pixel size for f, or 0 if unknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatARGB8888:
		return 4
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "RGB565"
	case PixelFormatARGB8888:
		return "ARGB8888"
	}
	return "unknown"
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Callers write a whole frame into Buffer and then call Present, which
// commits it to the screen.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyF1
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock is a monotonic millisecond clock with a blocking sleep.
type Clock interface {
	NowMillis() uint64
	Sleep(ms uint64)
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
