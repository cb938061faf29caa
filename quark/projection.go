package quark

import "fmt"

// Projector maps a camera-space point onto the viewing plane.
type Projector interface {
	Project(p Point3) Point2
}

// ProjectionMode selects a projector. One mode is used for a whole run.
type ProjectionMode uint8

const (
	ProjectionPerspective ProjectionMode = iota
	ProjectionOrthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", uint8(m))
	}
}

// ParseProjectionMode parses "perspective" or "orthographic".
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch s {
	case "perspective", "persp":
		return ProjectionPerspective, nil
	case "orthographic", "ortho":
		return ProjectionOrthographic, nil
	}
	return 0, fmt.Errorf("unknown projection mode %q", s)
}

// Perspective divides by depth: x' = FOV*x/z, y' = FOV*y/z.
//
// z == 0 yields ±Inf or NaN; callers that can produce such points must
// filter them before or after projecting.
type Perspective struct {
	FOV float64
}

func (p Perspective) Project(pt Point3) Point2 {
	return Point2{
		X: p.FOV * pt.X / pt.Z,
		Y: p.FOV * pt.Y / pt.Z,
	}
}

// Orthographic scales without depth division: x' = FOV*x, y' = FOV*y.
type Orthographic struct {
	FOV float64
}

func (o Orthographic) Project(pt Point3) Point2 {
	return Point2{
		X: o.FOV * pt.X,
		Y: o.FOV * pt.Y,
	}
}

// NewProjector returns the projector for mode with the given scale factor.
func NewProjector(mode ProjectionMode, fov float64) (Projector, error) {
	switch mode {
	case ProjectionPerspective:
		return Perspective{FOV: fov}, nil
	case ProjectionOrthographic:
		return Orthographic{FOV: fov}, nil
	}
	return nil, fmt.Errorf("unsupported projection %s", mode)
}
