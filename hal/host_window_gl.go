//go:build !tinygo && cgo && gl

package hal

import (
	"errors"
	"fmt"
	"runtime"

	"quarkcube/internal/buildinfo"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// RunWindow opens a GLFW window and presents the framebuffer by uploading it
// into a texture and blitting that texture to the default framebuffer.
// It blocks until the window closes or step returns ErrStop.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg)
	step := newApp(h)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := h.cfg.Title + " (" + buildinfo.Short() + ")"
	win, err := glfw.CreateWindow(h.fb.width*h.cfg.Scale, h.fb.height*h.cfg.Scale, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	win.SetKeyCallback(h.kbd.onKey)

	p, err := newGLPresenter(h.fb)
	if err != nil {
		return err
	}
	defer p.release()

	for !win.ShouldClose() {
		glfw.PollEvents()
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		dw, dh := win.GetFramebufferSize()
		if err := p.draw(dw, dh); err != nil {
			return err
		}
		win.SwapBuffers()
	}
	return nil
}

type glPresenter struct {
	fb      *hostFramebuffer
	tex     uint32
	fbo     uint32
	scratch []byte
	format  uint32
	xtype   uint32
}

func newGLPresenter(fb *hostFramebuffer) (*glPresenter, error) {
	p := &glPresenter{
		fb:      fb,
		scratch: make([]byte, len(fb.front)),
	}
	internal := int32(gl.RGBA8)
	switch fb.format {
	case PixelFormatARGB8888:
		p.format, p.xtype = gl.BGRA, gl.UNSIGNED_BYTE
	case PixelFormatRGB565:
		internal = gl.RGB565
		p.format, p.xtype = gl.RGB, gl.UNSIGNED_SHORT_5_6_5
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 2)
	default:
		return nil, fmt.Errorf("unsupported framebuffer format %s", fb.format)
	}

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(fb.width), int32(fb.height), 0, p.format, p.xtype, nil)

	gl.GenFramebuffers(1, &p.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.tex, 0)
	if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		p.release()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return p, nil
}

func (p *glPresenter) draw(dw, dh int) error {
	p.fb.snapshot(p.scratch)

	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(p.fb.width), int32(p.fb.height), p.format, p.xtype, gl.Ptr(p.scratch))
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("texture upload failed: 0x%x", e)
	}

	// Row 0 of the texture is the top of the frame; GL's origin is bottom-left.
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BlitFramebuffer(0, 0, int32(p.fb.width), int32(p.fb.height), 0, int32(dh), int32(dw), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("blit failed: 0x%x", e)
	}
	return nil
}

func (p *glPresenter) release() {
	if p.fbo != 0 {
		gl.DeleteFramebuffers(1, &p.fbo)
		p.fbo = 0
	}
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
		p.tex = 0
	}
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var glKeyMap = map[glfw.Key]KeyCode{
	glfw.KeyUp:     KeyUp,
	glfw.KeyDown:   KeyDown,
	glfw.KeyLeft:   KeyLeft,
	glfw.KeyRight:  KeyRight,
	glfw.KeyEnter:  KeyEnter,
	glfw.KeyEscape: KeyEscape,
	glfw.KeySpace:  KeySpace,
	glfw.KeyTab:    KeyTab,
	glfw.KeyF1:     KeyF1,
}

func (k *hostKeyboard) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	ev := KeyEvent{Code: glKeyMap[key], Press: action == glfw.Press}
	if ev.Code == KeyUnknown && key >= glfw.KeyA && key <= glfw.KeyZ {
		ev.Rune = rune('a' + (key - glfw.KeyA))
	}
	select {
	case k.ch <- ev:
	default:
	}
}
