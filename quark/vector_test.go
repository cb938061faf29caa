package quark

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var samplePoints = []Point3{
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: -1, Z: -1},
	{X: 0.5, Y: -2.25, Z: 3},
	{X: 1e3, Y: -7, Z: 0.001},
}

var sampleAngles = []float64{0, 0.01, 0.5, math.Pi / 2, math.Pi, -1.3, 12.75}

func TestRotationPreservesNorm(t *testing.T) {
	rotations := map[string]func(Point3, float64) Point3{
		"x": RotateX,
		"y": RotateY,
		"z": RotateZ,
	}
	for name, rot := range rotations {
		for _, p := range samplePoints {
			for _, a := range sampleAngles {
				got := rot(p, a).Len()
				want := p.Len()
				if math.Abs(got-want) > 1e-9*math.Max(1, want) {
					t.Fatalf("rotate_%s(%v, %v): norm %v, want %v", name, p, a, got, want)
				}
			}
		}
	}
}

func TestRotationZeroIsIdentity(t *testing.T) {
	for _, p := range samplePoints {
		if got := RotateX(p, 0); got != p {
			t.Fatalf("RotateX(%v, 0) = %v", p, got)
		}
		if got := RotateY(p, 0); got != p {
			t.Fatalf("RotateY(%v, 0) = %v", p, got)
		}
		if got := RotateZ(p, 0); got != p {
			t.Fatalf("RotateZ(%v, 0) = %v", p, got)
		}
	}
}

func TestRotationMatchesMatrices(t *testing.T) {
	for _, p := range samplePoints {
		for _, a := range sampleAngles {
			v := p.Vec()
			if got, want := RotateX(p, a).Vec(), mgl64.Rotate3DX(a).Mul3x1(v); !got.ApproxEqualThreshold(want, 1e-9) {
				t.Fatalf("RotateX(%v, %v) = %v, want %v", p, a, got, want)
			}
			// x' = x·cos − z·sin is the standard Y matrix with the angle negated.
			if got, want := RotateY(p, a).Vec(), mgl64.Rotate3DY(-a).Mul3x1(v); !got.ApproxEqualThreshold(want, 1e-9) {
				t.Fatalf("RotateY(%v, %v) = %v, want %v", p, a, got, want)
			}
			if got, want := RotateZ(p, a).Vec(), mgl64.Rotate3DZ(a).Mul3x1(v); !got.ApproxEqualThreshold(want, 1e-9) {
				t.Fatalf("RotateZ(%v, %v) = %v, want %v", p, a, got, want)
			}
		}
	}
}

func TestSubCameraOffset(t *testing.T) {
	cam := P3(0, 0, -5)
	for _, p := range samplePoints {
		want := Point3{X: p.X - cam.X, Y: p.Y - cam.Y, Z: p.Z - cam.Z}
		if got := p.Sub(cam); got != want {
			t.Fatalf("%v.Sub(%v) = %v, want %v", p, cam, got, want)
		}
	}
	if got := P3(1, 2, 3).Sub(P3(1, 2, 3)); got != (Point3{}) {
		t.Fatalf("p.Sub(p) = %v", got)
	}
}

func TestRotateXYZOrder(t *testing.T) {
	p := P3(0.3, -0.7, 1.1)
	r := Rotation{X: 0.4, Y: -0.2, Z: 1.5}
	want := RotateZ(RotateY(RotateX(p, r.X), r.Y), r.Z)
	if got := RotateXYZ(p, r); got != want {
		t.Fatalf("RotateXYZ = %v, want %v", got, want)
	}
}

func TestRotationAdvance(t *testing.T) {
	var r Rotation
	for i := 0; i < 3; i++ {
		r.Advance(0.01)
	}
	if math.Abs(r.X-0.03) > 1e-12 || r.X != r.Y || r.Y != r.Z {
		t.Fatalf("unexpected rotation %+v", r)
	}
}

func TestRotationPropagatesNaN(t *testing.T) {
	got := RotateX(P3(1, math.NaN(), 0), 0.5)
	if !math.IsNaN(got.Y) || !math.IsNaN(got.Z) {
		t.Fatalf("expected NaN to propagate, got %v", got)
	}
}

func TestPoint2Finite(t *testing.T) {
	if !(Point2{X: 1, Y: -2}).Finite() {
		t.Fatal("expected finite point")
	}
	if (Point2{X: math.Inf(1), Y: 0}).Finite() {
		t.Fatal("expected +Inf to be non-finite")
	}
	if (Point2{X: 0, Y: math.NaN()}).Finite() {
		t.Fatal("expected NaN to be non-finite")
	}
}
