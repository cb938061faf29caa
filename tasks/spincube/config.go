package spincube

import (
	"errors"
	"fmt"
	"math"

	"quarkcube/quark"
)

// Mode selects the geometry drawn by the pipeline.
type Mode uint8

const (
	// ModeMesh draws the vertices of every face of the cube mesh.
	ModeMesh Mode = iota
	// ModePoints draws a 9x9x9 point cloud.
	ModePoints
)

func (m Mode) String() string {
	switch m {
	case ModeMesh:
		return "mesh"
	case ModePoints:
		return "points"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "mesh" or "points".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "mesh", "cube":
		return ModeMesh, nil
	case "points", "cloud":
		return ModePoints, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

const (
	DefaultFPS          = 30
	DefaultRotationStep = 0.01

	// NearEpsilon is the smallest |z| accepted by the perspective projection.
	NearEpsilon = 1e-9
)

// Config holds every tunable of the pipeline. It is fixed for a run.
type Config struct {
	Mode         Mode
	Projection   quark.ProjectionMode
	FOV          float64
	FPS          int
	RotationStep float64

	// Camera is subtracted from every rotated point before projection.
	Camera quark.Point3

	MarkerSize  int
	MarkerColor quark.Color
	Background  quark.Color
	GridColor   quark.Color
	GridSpacing int

	// Mesh overrides the geometry implied by Mode when it has vertices.
	Mesh quark.Mesh
}

// DefaultConfig returns the reference settings for m: a perspective cube
// with FOV 640, or an orthographic point cloud with FOV 128.
func DefaultConfig(m Mode) Config {
	cfg := Config{
		Mode:         m,
		Projection:   quark.ProjectionPerspective,
		FOV:          640,
		FPS:          DefaultFPS,
		RotationStep: DefaultRotationStep,
		Camera:       quark.P3(0, 0, -5),
		MarkerSize:   3,
		MarkerColor:  quark.ColorYellow,
		Background:   quark.ColorBlack,
		GridColor:    quark.ColorGrid,
		GridSpacing:  quark.GridSpacing,
	}
	if m == ModePoints {
		cfg.Projection = quark.ProjectionOrthographic
		cfg.FOV = 128
		cfg.MarkerSize = 4
	}
	return cfg
}

// FrameTargetMillis is the frame budget derived from FPS (33 ms at 30 FPS).
func (c Config) FrameTargetMillis() uint64 {
	if c.FPS <= 0 {
		return 0
	}
	return uint64(1000 / c.FPS)
}

var ErrInvalidConfig = errors.New("spincube: invalid config")

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeMesh && c.Mode != ModePoints:
		return fmt.Errorf("%w: mode %s", ErrInvalidConfig, c.Mode)
	case c.Projection != quark.ProjectionPerspective && c.Projection != quark.ProjectionOrthographic:
		return fmt.Errorf("%w: projection %s", ErrInvalidConfig, c.Projection)
	case !(c.FOV > 0) || math.IsInf(c.FOV, 0):
		return fmt.Errorf("%w: fov %v", ErrInvalidConfig, c.FOV)
	case c.FPS <= 0 || c.FPS > 1000:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case math.IsNaN(c.RotationStep) || math.IsInf(c.RotationStep, 0):
		return fmt.Errorf("%w: rotation step %v", ErrInvalidConfig, c.RotationStep)
	case c.MarkerSize <= 0:
		return fmt.Errorf("%w: marker size %d", ErrInvalidConfig, c.MarkerSize)
	case c.GridSpacing <= 0:
		return fmt.Errorf("%w: grid spacing %d", ErrInvalidConfig, c.GridSpacing)
	}
	if err := c.Mesh.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) mesh() quark.Mesh {
	if len(c.Mesh.Vertices) > 0 {
		return c.Mesh
	}
	if c.Mode == ModePoints {
		return quark.DefaultPointCloud()
	}
	return quark.CubeMesh()
}
