package spincube

import (
	"errors"
	"fmt"
	"math"

	"quarkcube/quark"
)

// Triangle is one face projected to screen space for the current frame.
// Visible[i] is false when vertex i could not be projected.
type Triangle struct {
	Points  [3]quark.Point2
	Visible [3]bool
}

// Presenter accepts a finished frame. It must not retain buf.
type Presenter interface {
	Present(buf *quark.ColorBuffer) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(buf *quark.ColorBuffer) error

func (f PresenterFunc) Present(buf *quark.ColorBuffer) error { return f(buf) }

// InputSource reports once per iteration whether the run should stop.
type InputSource interface {
	ShouldStop() bool
}

// ErrStopped is returned by Step once the running flag has been cleared.
var ErrStopped = errors.New("spincube: stopped")

// State is the whole application state of one run: configuration, static
// geometry, rotation, this frame's projected points and the color buffer.
// It is owned by a single goroutine.
type State struct {
	cfg  Config
	mesh quark.Mesh
	proj quark.Projector
	buf  *quark.ColorBuffer

	Rotation quark.Rotation

	triangles []Triangle
	points    []quark.Point2
	visible   []bool

	pacer   Pacer
	overlay func(*quark.ColorBuffer)

	running bool
	frame   uint64
	skipped int
}

// New validates cfg and allocates a w*h color buffer plus projection slots
// sized once from the mesh.
func New(cfg Config, w, h int) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buf, err := quark.NewColorBuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("color buffer %dx%d: %w", w, h, err)
	}
	proj, err := quark.NewProjector(cfg.Projection, cfg.FOV)
	if err != nil {
		return nil, err
	}

	s := &State{
		cfg:     cfg,
		mesh:    cfg.mesh(),
		proj:    proj,
		buf:     buf,
		pacer:   Pacer{TargetMillis: cfg.FrameTargetMillis()},
		running: true,
	}
	if s.mesh.IsPointCloud() {
		s.points = make([]quark.Point2, len(s.mesh.Vertices))
		s.visible = make([]bool, len(s.mesh.Vertices))
	} else {
		s.triangles = make([]Triangle, len(s.mesh.Faces))
	}
	buf.Clear(cfg.Background)

	quark.Logger().Info("pipeline configured",
		"mode", cfg.Mode.String(),
		"projection", cfg.Projection.String(),
		"fov", cfg.FOV,
		"vertices", len(s.mesh.Vertices),
		"faces", len(s.mesh.Faces),
		"width", w,
		"height", h,
	)
	return s, nil
}

func (s *State) Config() Config             { return s.cfg }
func (s *State) Mesh() quark.Mesh           { return s.mesh }
func (s *State) Buffer() *quark.ColorBuffer { return s.buf }
func (s *State) Triangles() []Triangle      { return s.triangles }
func (s *State) Points() []quark.Point2     { return s.points }
func (s *State) Visible() []bool            { return s.visible }
func (s *State) Frame() uint64              { return s.frame }
func (s *State) Running() bool              { return s.running }

// Skipped returns how many vertices the last Update could not project.
func (s *State) Skipped() int { return s.skipped }

// Stop clears the running flag. The current frame, if any, still completes.
func (s *State) Stop() { s.running = false }

// SetOverlay installs a function that draws on top of the geometry before
// the frame is presented.
func (s *State) SetOverlay(fn func(*quark.ColorBuffer)) { s.overlay = fn }

// project runs one static vertex through rotation, camera offset,
// projection and screen centering.
func (s *State) project(v quark.Point3) (quark.Point2, bool) {
	p := quark.RotateXYZ(v, s.Rotation).Sub(s.cfg.Camera)
	if s.cfg.Projection == quark.ProjectionPerspective && math.Abs(p.Z) < NearEpsilon {
		return quark.Point2{}, false
	}
	w, h := s.buf.Size()
	sp := s.proj.Project(p).Add(float64(w)/2, float64(h)/2)
	return sp, sp.Finite()
}
