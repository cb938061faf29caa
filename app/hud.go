package app

import (
	"fmt"
	"image/color"

	"quarkcube/internal/buildinfo"
	"quarkcube/quark"
	"quarkcube/tasks/spincube"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// hud prints the build id, the pipeline settings and the frame counter in
// the top-left corner.
type hud struct {
	font   tinyfont.Fonter
	fg     color.RGBA
	header string
	mode   string
}

func newHUD(cfg spincube.Config) *hud {
	return &hud{
		font:   textFont,
		fg:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		header: "quarkcube " + buildinfo.Short(),
		mode:   fmt.Sprintf("%s %s fov %g", cfg.Mode, cfg.Projection, cfg.FOV),
	}
}

func (h *hud) draw(b *quark.ColorBuffer, frame uint64) {
	d := bufferDisplay{b: b}
	step := int16(h.font.GetYAdvance())
	y := step
	for _, line := range [...]string{h.header, h.mode, fmt.Sprintf("frame %d", frame)} {
		tinyfont.WriteLine(d, h.font, 2, y, line, h.fg)
		y += step
	}
}

// bufferDisplay lets tinyfont draw into a color buffer.
type bufferDisplay struct {
	b *quark.ColorBuffer
}

var _ drivers.Displayer = bufferDisplay{}

func (d bufferDisplay) Size() (x, y int16) {
	w, h := d.b.Size()
	return int16(w), int16(h)
}

func (d bufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.b.DrawPixel(int(x), int(y), quark.FromRGBA(c))
}

func (d bufferDisplay) Display() error { return nil }
