// Package mesh defines the plain triangle-mesh value type that crosses the
// simplifier's boundary: an ordered vertex position list, a triangle list
// with per-triangle face ids, and the model-unit precision that
// accompanies the mesh.
//
// A Mesh is an independent, freshly-owned value once returned by
// simplify.Run — it shares no storage with the Connectivity that
// produced it.
package mesh

import "github.com/r-silveira/xbimgeometry/vec3"

// Triangle is one face of a Mesh: three 0-based, dense vertex indices in
// winding order, plus an opaque FaceID tagging which original surface the
// triangle belongs to.
type Triangle struct {
	FaceID         int
	V0, V1, V2 int
}

// Mesh is an indexed triangle mesh plus the linear tolerance it was built
// or simplified to.
type Mesh struct {
	Vertices  []vec3.Vec3
	Triangles []Triangle
	Precision float64
}

// New returns an empty mesh with the given precision.
func New(precision float64) *Mesh {
	return &Mesh{Precision: precision}
}

// FaceIDs returns the distinct face ids present in m, ascending.
func (m *Mesh) FaceIDs() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, t := range m.Triangles {
		if _, ok := seen[t.FaceID]; !ok {
			seen[t.FaceID] = struct{}{}
			out = append(out, t.FaceID)
		}
	}
	// Simple insertion sort: face-id sets are small relative to triangle
	// counts and this keeps the dependency-free stdlib footprint minimal
	// for a helper used by tests, diagnostics and meshio's writer.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// unitNormal returns the unit normal of triangle t's plane; for a
// degenerate triangle whose cross product is shorter than
// vec3.ZeroLengthEpsilon, that near-zero cross product is returned
// unchanged. UnifyOrientation does not use it: it compares winding order
// on shared edges only.
func (m *Mesh) unitNormal(t Triangle) vec3.Vec3 {
	p0, p1, p2 := m.Vertices[t.V0], m.Vertices[t.V1], m.Vertices[t.V2]
	n := p1.Sub(p0).Cross(p2.Sub(p0))

	return n.Normalize()
}

// UnifyOrientation re-winds triangles so that adjacent faces sharing an
// edge agree on winding direction, propagating outward by breadth-first
// traversal of face adjacency from each unvisited triangle. The
// simplifier's rebuild phase delegates to this after assembling the
// output mesh: edge contraction can leave a locally flipped triangle (the
// normal-flip safety check bounds the *angle* of change, not the sign),
// so a final global consistency pass keeps rendering and further
// processing well-defined.
//
// Triangles grouped by an unoriented shared edge that disagree are
// re-wound (v1, v2 swapped) to match their already-visited neighbour.
func (m *Mesh) UnifyOrientation() {
	adjacency := m.buildEdgeAdjacency()
	visited := make([]bool, len(m.Triangles))

	for start := range m.Triangles {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adjacency[cur] {
				if visited[nb.triangle] {
					continue
				}
				visited[nb.triangle] = true
				if !windingAgrees(m.Triangles[cur], m.Triangles[nb.triangle], nb.a, nb.b) {
					m.Triangles[nb.triangle].V1, m.Triangles[nb.triangle].V2 =
						m.Triangles[nb.triangle].V2, m.Triangles[nb.triangle].V1
				}
				queue = append(queue, nb.triangle)
			}
		}
	}
}

type adjacentTriangle struct {
	triangle int
	a, b     int // the shared edge, as seen from the reference triangle
}

// buildEdgeAdjacency maps each triangle index to the other triangles
// sharing an edge with it.
func (m *Mesh) buildEdgeAdjacency() map[int][]adjacentTriangle {
	type key struct{ a, b int }
	canon := func(u, v int) key {
		if u < v {
			return key{u, v}
		}
		return key{v, u}
	}

	owners := make(map[key][]int)
	for i, t := range m.Triangles {
		edges := [3][2]int{{t.V0, t.V1}, {t.V1, t.V2}, {t.V2, t.V0}}
		for _, e := range edges {
			k := canon(e[0], e[1])
			owners[k] = append(owners[k], i)
		}
	}

	adjacency := make(map[int][]adjacentTriangle, len(m.Triangles))
	for k, tris := range owners {
		if len(tris) != 2 {
			continue
		}
		a, b := tris[0], tris[1]
		adjacency[a] = append(adjacency[a], adjacentTriangle{triangle: b, a: k.a, b: k.b})
		adjacency[b] = append(adjacency[b], adjacentTriangle{triangle: a, a: k.a, b: k.b})
	}

	return adjacency
}

// windingAgrees reports whether triangle "other" winds the shared edge
// (a,b) in the opposite direction from "ref" — the expected relationship
// for two consistently-oriented triangles sharing an edge (each traverses
// the shared edge in the opposite direction from the other).
func windingAgrees(ref, other Triangle, a, b int) bool {
	refForward := directedEdgePresent(ref, a, b)
	otherForward := directedEdgePresent(other, a, b)

	return refForward != otherForward
}

func directedEdgePresent(t Triangle, a, b int) bool {
	verts := [3]int{t.V0, t.V1, t.V2}
	for i := 0; i < 3; i++ {
		if verts[i] == a && verts[(i+1)%3] == b {
			return true
		}
	}
	return false
}
