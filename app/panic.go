package app

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"quarkcube/hal"
	"quarkcube/quark"

	"tinygo.org/x/tinyfont"
)

// ErrPanicked wraps the value recovered from a panicking frame.
type ErrPanicked struct {
	Value any
}

func (e *ErrPanicked) Error() string { return fmt.Sprintf("frame panicked: %v", e.Value) }

// panicScreen logs a recovered panic, paints it on the framebuffer and
// returns the error that ends the run.
func panicScreen(h hal.HAL, value any, stack []byte) error {
	err := &ErrPanicked{Value: value}

	var stackLines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			stackLines = append(stackLines, line)
		}
	}

	if h == nil {
		return err
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("quarkcube panic: %v", value))
		for _, line := range stackLines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return err
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return err
	}

	fb.ClearRGB(255, 255, 255)

	font := textFont
	lineHeight := int16(font.GetYAdvance())
	_, outbox := tinyfont.LineWidth(font, "0")
	charWidth := int16(outbox)
	if charWidth <= 0 || lineHeight <= 0 {
		_ = fb.Present()
		return err
	}

	lines := []string{
		"quarkcube panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stackLines) > 0 {
		lines = append(lines, "stack:")
		lines = append(lines, stackLines...)
	} else {
		lines = append(lines, "stack: unavailable")
	}

	d := framebufferDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	cols := int16(fb.Width()) / charWidth
	if cols <= 0 {
		cols = 1
	}
	maxH := int16(fb.Height())

	y := lineHeight
	for _, line := range lines {
		for len(line) > 0 && y <= maxH {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " \t")
		}
		if y > maxH {
			break
		}
	}

	if perr := fb.Present(); perr != nil {
		return fmt.Errorf("%w (present: %v)", err, perr)
	}
	return err
}

// framebufferDisplay lets tinyfont draw straight into a HAL framebuffer.
type framebufferDisplay struct {
	fb hal.Framebuffer
}

func (d framebufferDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d framebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	bpp := d.fb.Format().BytesPerPixel()
	off := iy*d.fb.StrideBytes() + ix*bpp
	if bpp == 0 || off < 0 || off+bpp > len(buf) {
		return
	}
	px := quark.FromRGBA(c)
	switch d.fb.Format() {
	case hal.PixelFormatRGB565:
		binary.LittleEndian.PutUint16(buf[off:], px.RGB565())
	case hal.PixelFormatARGB8888:
		binary.LittleEndian.PutUint32(buf[off:], uint32(px))
	}
}

func (d framebufferDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
