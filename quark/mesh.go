package quark

import "fmt"

// Face names a triangle by three 1-based indices into Mesh.Vertices.
type Face struct {
	A, B, C int
}

// Mesh is static geometry: an ordered vertex list and an ordered face list.
//
// A mesh without faces is a point cloud; every vertex is drawn on its own.
type Mesh struct {
	Vertices []Point3
	Faces    []Face
}

const (
	CubeVertexCount = 8
	CubeFaceCount   = 12
)

// CubeMesh returns the unit cube centred on the origin with side 2.
func CubeMesh() Mesh {
	return Mesh{
		Vertices: []Point3{
			{X: -1, Y: -1, Z: -1}, // 1
			{X: -1, Y: 1, Z: -1},  // 2
			{X: 1, Y: 1, Z: -1},   // 3
			{X: 1, Y: -1, Z: -1},  // 4
			{X: 1, Y: 1, Z: 1},    // 5
			{X: 1, Y: -1, Z: 1},   // 6
			{X: -1, Y: 1, Z: 1},   // 7
			{X: -1, Y: -1, Z: 1},  // 8
		},
		Faces: []Face{
			// front
			{A: 1, B: 2, C: 3},
			{A: 1, B: 3, C: 4},
			// right
			{A: 4, B: 3, C: 5},
			{A: 4, B: 5, C: 6},
			// back
			{A: 6, B: 5, C: 7},
			{A: 6, B: 7, C: 8},
			// left
			{A: 8, B: 7, C: 2},
			{A: 8, B: 2, C: 1},
			// top
			{A: 2, B: 7, C: 5},
			{A: 2, B: 5, C: 3},
			// bottom
			{A: 6, B: 8, C: 1},
			{A: 6, B: 1, C: 4},
		},
	}
}

// PointCloud returns n*n*n points evenly spaced over [lo, hi] on each axis.
// X varies slowest and Z fastest.
func PointCloud(n int, lo, hi float64) Mesh {
	if n <= 0 {
		return Mesh{}
	}
	step := 0.0
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}
	pts := make([]Point3, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				pts = append(pts, Point3{
					X: lo + float64(i)*step,
					Y: lo + float64(j)*step,
					Z: lo + float64(k)*step,
				})
			}
		}
	}
	return Mesh{Vertices: pts}
}

// DefaultPointCloud is the 9x9x9 cloud spanning [-1, 1] in steps of 0.25.
func DefaultPointCloud() Mesh { return PointCloud(9, -1, 1) }

// IsPointCloud reports whether m has no faces.
func (m Mesh) IsPointCloud() bool { return len(m.Faces) == 0 }

// Validate checks every face index against the vertex list.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 1 || idx > n {
				return fmt.Errorf("face %d: vertex index %d out of range [1, %d]", i, idx, n)
			}
		}
	}
	return nil
}

// FaceVertices returns the three vertices of face i.
// The mesh must have passed Validate.
func (m Mesh) FaceVertices(i int) [3]Point3 {
	f := m.Faces[i]
	return [3]Point3{
		m.Vertices[f.A-1],
		m.Vertices[f.B-1],
		m.Vertices[f.C-1],
	}
}

// VertexUsage returns, per 0-based vertex, the indices of the faces that
// reference it.
func (m Mesh) VertexUsage() [][]int {
	usage := make([][]int, len(m.Vertices))
	for i, f := range m.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 1 || idx > len(m.Vertices) {
				continue
			}
			usage[idx-1] = append(usage[idx-1], i)
		}
	}
	return usage
}
