//go:build tinygo

package hal

import "time"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *tinyGoHostFramebuffer
	kbd    *tinyGoHostKeyboard
	clock  *tinyGoHostClock
}

// New returns a TinyGo HAL implementation.
//
// There is no panel driver: frames land in an RGB565 buffer and Present is a
// no-op, which keeps the renderer runnable under `tinygo run` on linux/wasm.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     newTinyGoHostFramebuffer(320, 320),
		kbd:    newTinyGoHostKeyboard(),
		clock:  &tinyGoHostClock{start: time.Now()},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{kbd: h.kbd} }
func (h *tinyGoHostHAL) Clock() Clock     { return h.clock }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct {
	kbd Keyboard
}

func (in tinyGoHostInput) Keyboard() Keyboard { return in.kbd }

type tinyGoHostClock struct {
	start time.Time
}

func (c *tinyGoHostClock) NowMillis() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}

func (c *tinyGoHostClock) Sleep(ms uint64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostKeyboard struct {
	ch chan KeyEvent
}

func newTinyGoHostKeyboard() *tinyGoHostKeyboard {
	return &tinyGoHostKeyboard{ch: make(chan KeyEvent)}
}

func (k *tinyGoHostKeyboard) Events() <-chan KeyEvent { return k.ch }
