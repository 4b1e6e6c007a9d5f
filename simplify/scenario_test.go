package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-silveira/xbimgeometry/mesh"
	"github.com/r-silveira/xbimgeometry/simplify"
	"github.com/r-silveira/xbimgeometry/vec3"
)

// tetrahedron returns a regular-ish tetrahedron as a 4-vertex, 4-triangle
// mesh, all four faces tagged with the same face id.
func tetrahedron() *mesh.Mesh {
	m := mesh.New(1e-4)
	m.Vertices = []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(0, 1, 0),
		vec3.New(0, 0, 1),
	}
	m.Triangles = []mesh.Triangle{
		{FaceID: 1, V0: 0, V1: 2, V2: 1},
		{FaceID: 1, V0: 0, V1: 1, V2: 3},
		{FaceID: 1, V0: 1, V1: 2, V2: 3},
		{FaceID: 1, V0: 2, V1: 0, V2: 3},
	}
	return m
}

// TestRun_TetrahedronIdentity covers the already-minimal-mesh scenario: a
// tetrahedron has no triangle that can be removed without
// reducing the triangle count below 4 without collapsing the shape, and a
// target already at its current size must come back unchanged in topology.
func TestRun_TetrahedronIdentity(t *testing.T) {
	m := tetrahedron()
	out := simplify.Run(m, 4, 1e-4)

	require.Len(t, out.Triangles, 4)
	require.Len(t, out.Vertices, 4)
}

// square grid of (n+1)x(n+1) vertices, 2*n*n triangles, all face id 1.
func squareGrid(n int) *mesh.Mesh {
	m := mesh.New(1e-4)
	index := func(i, j int) int { return i*(n+1) + j }

	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			m.Vertices = append(m.Vertices, vec3.New(float64(i), float64(j), 0))
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b, c, d := index(i, j), index(i+1, j), index(i+1, j+1), index(i, j+1)
			m.Triangles = append(m.Triangles,
				mesh.Triangle{FaceID: 1, V0: a, V1: b, V2: c},
				mesh.Triangle{FaceID: 1, V0: a, V1: c, V2: d},
			)
		}
	}

	return m
}

// boundaryLoopVertices returns the set of boundary-vertex positions of a
// flat rectangular grid mesh spanning [0,n]x[0,n]: any vertex on the outer
// perimeter.
func boundaryLoopPositions(n int) map[[2]float64]bool {
	out := make(map[[2]float64]bool)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			if i == 0 || i == n || j == 0 || j == n {
				out[[2]float64{float64(i), float64(j)}] = true
			}
		}
	}
	return out
}

// TestRun_PreservesBoundaryLoop covers the boundary-preservation scenario:
// simplifying a flat grid down substantially must leave every surviving
// vertex that lies on one of the grid's four outer lines at one of the
// original perimeter points.
func TestRun_PreservesBoundaryLoop(t *testing.T) {
	const n = 10 // 10x10 grid -> 200 triangles
	m := squareGrid(n)
	require.Len(t, m.Triangles, 2*n*n)

	out := simplify.Run(m, 50, 1e-4)
	require.LessOrEqual(t, len(out.Triangles), 2*n*n)

	boundary := boundaryLoopPositions(n)
	for _, v := range out.Vertices {
		if v.X == 0 || v.X == float64(n) || v.Y == 0 || v.Y == float64(n) {
			require.True(t, boundary[[2]float64{v.X, v.Y}],
				"surviving boundary-looking vertex (%v,%v) is not one of the original perimeter points", v.X, v.Y)
		}
	}
}

// cube returns an axis-aligned unit cube as 8 vertices and 12 triangles (2
// per face), each face tagged with a distinct face id 1..6.
func cube() *mesh.Mesh {
	m := mesh.New(1e-4)
	m.Vertices = []vec3.Vec3{
		vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(1, 1, 0), vec3.New(0, 1, 0),
		vec3.New(0, 0, 1), vec3.New(1, 0, 1), vec3.New(1, 1, 1), vec3.New(0, 1, 1),
	}
	quad := func(face, a, b, c, d int) {
		m.Triangles = append(m.Triangles,
			mesh.Triangle{FaceID: face, V0: a, V1: b, V2: c},
			mesh.Triangle{FaceID: face, V0: a, V1: c, V2: d},
		)
	}
	quad(1, 0, 1, 2, 3) // bottom
	quad(2, 4, 7, 6, 5) // top
	quad(3, 0, 4, 5, 1) // front
	quad(4, 1, 5, 6, 2) // right
	quad(5, 2, 6, 7, 3) // back
	quad(6, 3, 7, 4, 0) // left

	return m
}

// TestRun_CubeAlreadyMinimalPreservesAllFaces covers the multi-face
// preservation scenario: a cube already at 12 triangles (2 per
// face) asked to simplify to 12 must keep every one of the 6 original face
// ids present, each with exactly 2 triangles.
func TestRun_CubeAlreadyMinimalPreservesAllFaces(t *testing.T) {
	m := cube()
	out := simplify.Run(m, 12, 1e-4)

	require.Len(t, out.Triangles, 12)

	counts := make(map[int]int)
	for _, tri := range out.Triangles {
		counts[tri.FaceID]++
	}
	require.Len(t, counts, 6)
	for face, n := range counts {
		require.Equal(t, 2, n, "face %d expected 2 triangles, got %d", face, n)
	}
}

// TestRun_NeverExceedsInputTriangleCount is a coarse monotonicity check:
// Run never increases triangle count, regardless of target.
func TestRun_NeverExceedsInputTriangleCount(t *testing.T) {
	m := squareGrid(4)
	out := simplify.Run(m, 1000, 1e-4)
	require.LessOrEqual(t, len(out.Triangles), len(m.Triangles))
}

// icosahedron returns a regular icosahedron: 12 vertices, 20 triangles, all
// one face id. Faces are wound so every normal points away from the origin
// (the solid's centroid).
func icosahedron() *mesh.Mesh {
	const phi = 1.6180339887498949

	m := mesh.New(1e-4)
	m.Vertices = []vec3.Vec3{
		vec3.New(-1, phi, 0), vec3.New(1, phi, 0), vec3.New(-1, -phi, 0), vec3.New(1, -phi, 0),
		vec3.New(0, -1, phi), vec3.New(0, 1, phi), vec3.New(0, -1, -phi), vec3.New(0, 1, -phi),
		vec3.New(phi, 0, -1), vec3.New(phi, 0, 1), vec3.New(-phi, 0, -1), vec3.New(-phi, 0, 1),
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	for _, f := range faces {
		m.Triangles = append(m.Triangles, orientOutward(m.Vertices, vec3.Vec3{}, mesh.Triangle{FaceID: 1, V0: f[0], V1: f[1], V2: f[2]}))
	}

	return m
}

// orientOutward returns t, possibly with V1/V2 swapped, so that its normal
// points away from centroid.
func orientOutward(vertices []vec3.Vec3, centroid vec3.Vec3, t mesh.Triangle) mesh.Triangle {
	p0, p1, p2 := vertices[t.V0], vertices[t.V1], vertices[t.V2]
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Dot(p0.Sub(centroid)) < 0 {
		t.V1, t.V2 = t.V2, t.V1
	}
	return t
}

// outwardFaceNormal returns the unit normal of triangle t, oriented away
// from centroid.
func outwardFaceNormal(vertices []vec3.Vec3, centroid vec3.Vec3, t mesh.Triangle) vec3.Vec3 {
	p0, p1, p2 := vertices[t.V0], vertices[t.V1], vertices[t.V2]
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	if n.Dot(p0.Sub(centroid)) < 0 {
		n = n.Scale(-1)
	}
	return n
}

func meshCentroid(vertices []vec3.Vec3) vec3.Vec3 {
	var sum vec3.Vec3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vertices)))
}

// TestRun_IcosahedronToOctahedron covers the curved-mesh simplification
// scenario: a regular icosahedron (20 faces) simplified down to
// octahedron-scale (8 faces) must produce, for every surviving face, a
// normal that stays close to some face of the original solid — the
// normal-flip gauntlet bounds the angle any single contraction can turn a
// face through, so the cumulative drift across a full run must still keep
// every output face within the same neighbourhood of orientation as the
// input.
func TestRun_IcosahedronToOctahedron(t *testing.T) {
	m := icosahedron()
	require.Len(t, m.Triangles, 20)

	out := simplify.Run(m, 8, 1e-4)
	require.LessOrEqual(t, len(out.Triangles), 20)

	inCentroid := meshCentroid(m.Vertices)
	originalNormals := make([]vec3.Vec3, len(m.Triangles))
	for i, tri := range m.Triangles {
		originalNormals[i] = outwardFaceNormal(m.Vertices, inCentroid, tri)
	}

	outCentroid := meshCentroid(out.Vertices)
	for _, tri := range out.Triangles {
		n := outwardFaceNormal(out.Vertices, outCentroid, tri)

		best := -1.0
		for _, on := range originalNormals {
			if d := n.Dot(on); d > best {
				best = d
			}
		}
		require.GreaterOrEqual(t, best, 0.8,
			"output face normal %v has no original face within cos=0.8 (best %v)", n, best)
	}
}
