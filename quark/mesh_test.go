package quark

import (
	"reflect"
	"testing"
)

func TestCubeMeshShape(t *testing.T) {
	m := CubeMesh()
	if len(m.Vertices) != CubeVertexCount || len(m.Faces) != CubeFaceCount {
		t.Fatalf("cube has %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if m.IsPointCloud() {
		t.Fatal("cube reported as point cloud")
	}
}

func TestCubeVertexUsage(t *testing.T) {
	usage := CubeMesh().VertexUsage()
	// Vertex 1 belongs to both bottom triangles, so it is referenced five times.
	want := [][]int{
		{0, 1, 7, 10, 11}, // 1
		{0, 6, 7, 8, 9},   // 2
		{0, 1, 2, 9},      // 3
		{1, 2, 3, 11},     // 4
		{2, 3, 4, 8, 9},   // 5
		{3, 4, 5, 10, 11}, // 6
		{4, 5, 6, 8},      // 7
		{5, 6, 7, 10},     // 8
	}
	if !reflect.DeepEqual(usage, want) {
		t.Fatalf("usage = %v, want %v", usage, want)
	}
	total := 0
	for _, faces := range usage {
		total += len(faces)
	}
	if total != 3*CubeFaceCount {
		t.Fatalf("total references = %d", total)
	}
}

func TestFaceVertices(t *testing.T) {
	m := CubeMesh()
	got := m.FaceVertices(2) // {4, 3, 5}
	want := [3]Point3{m.Vertices[3], m.Vertices[2], m.Vertices[4]}
	if got != want {
		t.Fatalf("FaceVertices(2) = %v, want %v", got, want)
	}
}

func TestValidateRejectsBadIndex(t *testing.T) {
	m := CubeMesh()
	m.Faces = append(m.Faces, Face{A: 1, B: 9, C: 2})
	if err := m.Validate(); err == nil {
		t.Fatal("expected out-of-range error")
	}
	m.Faces[len(m.Faces)-1] = Face{A: 0, B: 1, C: 2}
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for 0 index")
	}
}

func TestDefaultPointCloud(t *testing.T) {
	m := DefaultPointCloud()
	if len(m.Vertices) != 9*9*9 {
		t.Fatalf("got %d points", len(m.Vertices))
	}
	if !m.IsPointCloud() {
		t.Fatal("expected point cloud")
	}
	if m.Vertices[0] != P3(-1, -1, -1) {
		t.Fatalf("first point %v", m.Vertices[0])
	}
	if m.Vertices[1] != P3(-1, -1, -0.75) {
		t.Fatalf("second point %v, z should vary fastest", m.Vertices[1])
	}
	if last := m.Vertices[len(m.Vertices)-1]; last != P3(1, 1, 1) {
		t.Fatalf("last point %v", last)
	}
}

func TestPointCloudDegenerate(t *testing.T) {
	if got := PointCloud(0, -1, 1); len(got.Vertices) != 0 {
		t.Fatalf("n=0 produced %d points", len(got.Vertices))
	}
	if got := PointCloud(1, 2, 5); len(got.Vertices) != 1 || got.Vertices[0] != P3(2, 2, 2) {
		t.Fatalf("n=1 produced %v", got.Vertices)
	}
}
