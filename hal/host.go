//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig sizes the host framebuffer and window.
//
// Width and Height are fixed for the lifetime of the HAL.
type HostConfig struct {
	Width  int
	Height int
	Format PixelFormat
	Scale  int
	TPS    int
	Title  string
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Format.BytesPerPixel() == 0 {
		c.Format = PixelFormatARGB8888
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "quarkcube"
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *hostClock
}

// New returns a host HAL with the default 800x600 ARGB8888 framebuffer.
func New() HAL {
	return NewHost(HostConfig{})
}

// NewHost returns a host HAL implementation for cfg.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format),
		kbd:    newHostKeyboard(),
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
