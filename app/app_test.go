package app

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"quarkcube/hal"
	"quarkcube/quark"
	"quarkcube/tasks/spincube"
)

type testFramebuffer struct {
	w, h       int
	format     hal.PixelFormat
	buf        []byte
	presents   int
	presentErr error
}

func newTestFramebuffer(w, h int, f hal.PixelFormat) *testFramebuffer {
	return &testFramebuffer{w: w, h: h, format: f, buf: make([]byte, w*h*f.BytesPerPixel())}
}

func (f *testFramebuffer) Width() int              { return f.w }
func (f *testFramebuffer) Height() int             { return f.h }
func (f *testFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *testFramebuffer) StrideBytes() int        { return f.w * f.format.BytesPerPixel() }
func (f *testFramebuffer) Buffer() []byte          { return f.buf }

func (f *testFramebuffer) ClearRGB(r, g, b uint8) {
	c := quark.RGB(r, g, b)
	for i := 0; i < f.w*f.h; i++ {
		f.put(i, c)
	}
}

func (f *testFramebuffer) Present() error {
	f.presents++
	return f.presentErr
}

func (f *testFramebuffer) put(i int, c quark.Color) {
	if f.format == hal.PixelFormatRGB565 {
		binary.LittleEndian.PutUint16(f.buf[i*2:], c.RGB565())
		return
	}
	binary.LittleEndian.PutUint32(f.buf[i*4:], uint32(c))
}

func (f *testFramebuffer) argb(x, y int) quark.Color {
	return quark.Color(binary.LittleEndian.Uint32(f.buf[(y*f.w+x)*4:]))
}

func (f *testFramebuffer) count(c quark.Color) int {
	n := 0
	for i := 0; i < f.w*f.h; i++ {
		if quark.Color(binary.LittleEndian.Uint32(f.buf[i*4:])) == c {
			n++
		}
	}
	return n
}

type testKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testClock struct {
	now    uint64
	panics bool
}

func (c *testClock) NowMillis() uint64 {
	if c.panics {
		panic("clock exploded")
	}
	return c.now
}

func (c *testClock) Sleep(ms uint64) { c.now += ms }

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testHAL struct {
	log   *testLogger
	fb    hal.Framebuffer
	kbd   *testKeyboard
	clock *testClock
}

func newTestHAL(fb hal.Framebuffer) *testHAL {
	return &testHAL{
		log:   &testLogger{},
		fb:    fb,
		kbd:   &testKeyboard{ch: make(chan hal.KeyEvent, 8)},
		clock: &testClock{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Clock() hal.Clock     { return h.clock }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.kbd }

func TestStepPresentsFrame(t *testing.T) {
	fb := newTestFramebuffer(800, 600, hal.PixelFormatARGB8888)
	h := newTestHAL(fb)
	step := New(h)

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d", fb.presents)
	}
	if got := fb.argb(0, 0); got != quark.ColorGrid {
		t.Fatalf("(0,0) = %08x, want grid", got)
	}
	if got := fb.argb(1, 1); got != quark.ColorBlack {
		t.Fatalf("(1,1) = %08x, want background", got)
	}
	if fb.count(quark.ColorYellow) == 0 {
		t.Fatal("no vertex markers in the presented frame")
	}
	if h.clock.now != 33 {
		t.Fatalf("clock = %d, want one paced frame", h.clock.now)
	}
}

func TestStepRGB565(t *testing.T) {
	fb := newTestFramebuffer(40, 30, hal.PixelFormatRGB565)
	step := New(newTestHAL(fb))
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := binary.LittleEndian.Uint16(fb.buf); got != quark.ColorGrid.RGB565() {
		t.Fatalf("(0,0) = %04x, want %04x", got, quark.ColorGrid.RGB565())
	}
}

func TestEscapeStopsAfterFrame(t *testing.T) {
	fb := newTestFramebuffer(64, 48, hal.PixelFormatARGB8888)
	h := newTestHAL(fb)
	step := New(h)

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("err = %v, want ErrStop", err)
	}
	if fb.presents != 2 {
		t.Fatalf("presents = %d, want the in-flight frame presented", fb.presents)
	}
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("err = %v, want ErrStop", err)
	}
	if fb.presents != 2 {
		t.Fatal("stopped app presented another frame")
	}
}

func TestKeyInput(t *testing.T) {
	ch := make(chan hal.KeyEvent, 8)
	in := &keyInput{kbd: &testKeyboard{ch: ch}}

	if in.ShouldStop() {
		t.Fatal("stop without events")
	}

	ch <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	ch <- hal.KeyEvent{Code: hal.KeyF1, Press: false}
	if in.ShouldStop() || !in.hud {
		t.Fatalf("F1: hud = %v", in.hud)
	}

	ch <- hal.KeyEvent{Rune: 'h', Press: true}
	ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: false}
	if in.ShouldStop() || in.hud {
		t.Fatalf("h: hud = %v", in.hud)
	}

	ch <- hal.KeyEvent{Rune: 'q', Press: true}
	if !in.ShouldStop() {
		t.Fatal("q did not stop")
	}

	close(ch)
	if in.ShouldStop() {
		t.Fatal("closed keyboard requested stop")
	}
	if (&keyInput{}).ShouldStop() {
		t.Fatal("nil keyboard requested stop")
	}
}

func TestHUDToggle(t *testing.T) {
	fb := newTestFramebuffer(200, 100, hal.PixelFormatARGB8888)
	h := newTestHAL(fb)
	step := New(h)

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if n := fb.count(quark.ColorWhite); n != 0 {
		t.Fatalf("%d white pixels with the HUD hidden", n)
	}

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fb.count(quark.ColorWhite) == 0 {
		t.Fatal("HUD text missing")
	}
}

func TestHUDFromConfig(t *testing.T) {
	fb := newTestFramebuffer(200, 100, hal.PixelFormatARGB8888)
	cfg := Config{Pipeline: spincube.DefaultConfig(spincube.ModePoints), HUD: true}
	if err := NewWithConfig(newTestHAL(fb), cfg)(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fb.count(quark.ColorWhite) == 0 {
		t.Fatal("HUD text missing")
	}
}

func TestPresentFailureEndsRun(t *testing.T) {
	fb := newTestFramebuffer(32, 24, hal.PixelFormatARGB8888)
	fb.presentErr = errors.New("surface lost")
	err := New(newTestHAL(fb))()
	if !errors.Is(err, fb.presentErr) {
		t.Fatalf("err = %v, want wrapped present error", err)
	}
}

func TestPanicScreen(t *testing.T) {
	fb := newTestFramebuffer(320, 240, hal.PixelFormatARGB8888)
	h := newTestHAL(fb)
	step := New(h)
	h.clock.panics = true

	err := step()
	var perr *ErrPanicked
	if !errors.As(err, &perr) || perr.Value != "clock exploded" {
		t.Fatalf("err = %v, want ErrPanicked", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want the panic screen", fb.presents)
	}
	if fb.count(quark.ColorWhite) == 0 || fb.count(quark.ColorBlack) == 0 {
		t.Fatal("panic screen not drawn")
	}
	if len(h.log.lines) == 0 || !strings.Contains(strings.Join(h.log.lines, "\n"), "quarkcube panic: clock exploded") {
		t.Fatalf("log = %q", h.log.lines)
	}

	h.clock.panics = false
	if again := step(); again != err {
		t.Fatalf("second step = %v, want the sticky panic error", again)
	}
	if fb.presents != 1 {
		t.Fatal("frame rendered after panic")
	}
}

func TestMissingDisplay(t *testing.T) {
	h := newTestHAL(nil)
	err := New(h)()
	if !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("err = %v", err)
	}
}

func TestInvalidPipelineConfig(t *testing.T) {
	fb := newTestFramebuffer(32, 24, hal.PixelFormatARGB8888)
	cfg := DefaultConfig()
	cfg.Pipeline.FOV = 0
	if err := NewWithConfig(newTestHAL(fb), cfg)(); !errors.Is(err, spincube.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int16
		head, tail string
	}{
		{"", 4, "", ""},
		{"abc", 4, "abc", ""},
		{"abcdef", 4, "abcd", "ef"},
		{"привет", 2, "пр", "ивет"},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.in, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tt.in, tt.n, head, tail)
		}
	}
}

func TestRunWithConfigReturnsOnEscape(t *testing.T) {
	fb := newTestFramebuffer(64, 48, hal.PixelFormatARGB8888)
	h := newTestHAL(fb)
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}

	RunWithConfig(h, DefaultConfig())

	if fb.presents != 1 {
		t.Fatalf("presents = %d, want the final frame only", fb.presents)
	}
}
