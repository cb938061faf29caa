package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"quarkcube/hal"
	"quarkcube/internal/buildinfo"
	"quarkcube/quark"
	"quarkcube/tasks/spincube"
)

// Config selects what the app renders.
type Config struct {
	Pipeline spincube.Config
	HUD      bool
}

// DefaultConfig renders the rotating cube with the HUD hidden.
func DefaultConfig() Config {
	return Config{Pipeline: spincube.DefaultConfig(spincube.ModeMesh)}
}

type system struct {
	h     hal.HAL
	fb    hal.Framebuffer
	clock hal.Clock
	state *spincube.State
	in    *keyInput
	hud   *hud

	// failed is sticky: once a step panics every later call returns it.
	failed error
}

// New initializes the renderer with the default config and returns its
// step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig initializes the renderer for cfg. The returned function runs
// one frame per call and returns hal.ErrStop once the user asked to quit.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		logLine(h, "quarkcube: "+err.Error())
		return func() error { return err }
	}
	return s.step
}

// Run drives the renderer until it stops (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			if !errors.Is(err, hal.ErrStop) {
				logLine(h, "quarkcube: "+err.Error())
			}
			return
		}
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if h == nil {
		return nil, errors.New("nil HAL")
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("display: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()

	state, err := spincube.New(cfg.Pipeline, fb.Width(), fb.Height())
	if err != nil {
		return nil, err
	}

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}

	s := &system{
		h:     h,
		fb:    fb,
		clock: h.Clock(),
		state: state,
		in:    &keyInput{kbd: kbd, hud: cfg.HUD},
		hud:   newHUD(cfg.Pipeline),
	}
	state.SetOverlay(func(b *quark.ColorBuffer) {
		if s.in.hud {
			s.hud.draw(b, state.Frame()+1)
		}
	})

	logLine(h, buildinfo.String())
	logLine(h, fmt.Sprintf("quarkcube: %s %dx%d %s, fov %g, %d fps",
		cfg.Pipeline.Mode, fb.Width(), fb.Height(), cfg.Pipeline.Projection, cfg.Pipeline.FOV, cfg.Pipeline.FPS))
	return s, nil
}

func (s *system) step() (err error) {
	if s.failed != nil {
		return s.failed
	}
	defer func() {
		if r := recover(); r != nil {
			s.failed = panicScreen(s.h, r, debug.Stack())
			err = s.failed
		}
	}()

	var clock spincube.Clock
	if s.clock != nil {
		clock = s.clock
	}
	if err := s.state.Step(s.in, clock, s); err != nil {
		if errors.Is(err, spincube.ErrStopped) {
			return hal.ErrStop
		}
		return err
	}
	if !s.state.Running() {
		return hal.ErrStop
	}
	return nil
}

// Present copies a finished frame into the HAL framebuffer and commits it.
func (s *system) Present(buf *quark.ColorBuffer) error {
	dst, stride := s.fb.Buffer(), s.fb.StrideBytes()
	var err error
	switch f := s.fb.Format(); f {
	case hal.PixelFormatARGB8888:
		err = buf.CopyARGB8888(dst, stride)
	case hal.PixelFormatRGB565:
		err = buf.CopyRGB565(dst, stride)
	default:
		err = fmt.Errorf("pixel format %s: %w", f, hal.ErrNotImplemented)
	}
	if err != nil {
		return fmt.Errorf("copy frame: %w", err)
	}
	return s.fb.Present()
}

func logLine(h hal.HAL, s string) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
