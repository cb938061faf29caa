package quark

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a point in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Point2 is a projected point on the viewing plane.
type Point2 struct {
	X, Y float64
}

func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Vec returns p as an mgl64 vector.
func (p Point3) Vec() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

// FromVec converts an mgl64 vector back to a Point3.
func FromVec(v mgl64.Vec3) Point3 { return Point3{X: v[0], Y: v[1], Z: v[2]} }

// Len returns the Euclidean norm of p.
func (p Point3) Len() float64 { return p.Vec().Len() }

// Sub returns p - o. The pipeline uses it to move rotated points into
// camera space.
func (p Point3) Sub(o Point3) Point3 { return FromVec(p.Vec().Sub(o.Vec())) }

// Add translates a projected point.
func (p Point2) Add(dx, dy float64) Point2 { return Point2{X: p.X + dx, Y: p.Y + dy} }

// Finite reports whether both coordinates are finite numbers.
func (p Point2) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// RotateX rotates p about the X axis by angle radians.
func RotateX(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X,
		Y: p.Y*c - p.Z*s,
		Z: p.Y*s + p.Z*c,
	}
}

// RotateY rotates p about the Y axis by angle radians.
//
// The sign convention is x' = x·cos − z·sin, the transpose of the usual
// right-handed matrix, so positive angles spin the opposite way to RotateX.
func RotateY(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X*c - p.Z*s,
		Y: p.Y,
		Z: p.X*s + p.Z*c,
	}
}

// RotateZ rotates p about the Z axis by angle radians.
func RotateZ(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
		Z: p.Z,
	}
}

// RotateXYZ applies RotateX, RotateY and RotateZ in that order.
func RotateXYZ(p Point3, r Rotation) Point3 {
	p = RotateX(p, r.X)
	p = RotateY(p, r.Y)
	return RotateZ(p, r.Z)
}

// Rotation holds accumulated angles about each axis, in radians.
//
// Angles are never normalized; only trigonometric functions consume them.
type Rotation struct {
	X, Y, Z float64
}

// Advance adds step to all three angles.
func (r *Rotation) Advance(step float64) {
	r.X += step
	r.Y += step
	r.Z += step
}
