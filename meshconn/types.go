package meshconn

import "github.com/r-silveira/xbimgeometry/vec3"

// vertex is one row of the vertex table.
type vertex struct {
	pos   vec3.Vec3
	valid bool
}

// edge is one row of the edge table. Endpoints are stored canonically:
// v0 < v1. Incident triangles are stored with t0 < t1 when both are
// present, or t1 == Invalid for a boundary edge.
type edge struct {
	v0, v1 int
	t0, t1 int
	valid  bool

	// hasCost/cost/optimal cache the simplifier's per-edge pricing so
	// repeated Peek/Update calls need not recompute; meshconn stores them
	// on the caller's behalf but never reads or writes them itself.
	hasCost bool
	cost    float64
	optimal vec3.Vec3
}

// triangle is one row of the triangle table.
type triangle struct {
	v     [3]int
	e     [3]int
	face  int
	valid bool
}

// edgeKey is the canonical (v0, v1) pair with v0 < v1, used to look up an
// existing edge in O(1).
type edgeKey struct {
	a, b int
}

func canonicalKey(u, v int) edgeKey {
	if u < v {
		return edgeKey{a: u, b: v}
	}
	return edgeKey{a: v, b: u}
}

// Connectivity is the adjacency store for a triangle mesh: dense integer
// ids for vertices, edges and triangles, a valid flag per row instead of
// hard deletion, and a canonical-key index for O(1) edge lookup.
//
// Manifold mode (chosen by passing true to New, and the only mode the
// simplifier uses) rejects a third triangle attaching to an edge that
// already has two. Non-manifold mode accepts it, losing the "at most two
// triangles per edge" invariant — the simplifier always constructs a
// manifold Connectivity, and when fed an already non-manifold mesh it drops
// each triangle that AddTriangle rejects rather than reporting an error.
type Connectivity struct {
	manifold bool

	vertices []vertex
	edges    []edge
	triangles []triangle

	edgeOf map[edgeKey]int // canonical (v0,v1) -> edge id

	// vertexEdges[v] lists the edge ids incident on vertex v, in
	// insertion order; entries may reference now-invalid edges that have
	// not yet been pruned (pruned lazily by GetVertexEdges/IsBoundaryVertex).
	vertexEdges map[int][]int

	validVertexCount   int
	validEdgeCount     int
	validTriangleCount int
}

// New returns an empty Connectivity. manifold controls whether AddTriangle
// rejects (true) or accepts (false) a third incident triangle on an edge.
func New(manifold bool) *Connectivity {
	return &Connectivity{
		manifold:    manifold,
		edgeOf:      make(map[edgeKey]int),
		vertexEdges: make(map[int][]int),
	}
}

// AddVertex appends a new vertex at pos and returns its id.
func (c *Connectivity) AddVertex(pos vec3.Vec3) int {
	c.vertices = append(c.vertices, vertex{pos: pos, valid: true})
	c.validVertexCount++

	return len(c.vertices) - 1
}

// VertexCount returns the number of valid vertices.
func (c *Connectivity) VertexCount() int { return c.validVertexCount }

// Vertices returns every valid vertex id, in ascending order.
func (c *Connectivity) Vertices() []int {
	out := make([]int, 0, c.validVertexCount)
	for v := range c.vertices {
		if c.vertices[v].valid {
			out = append(out, v)
		}
	}
	return out
}

// EdgeCount returns the number of valid edges.
func (c *Connectivity) EdgeCount() int { return c.validEdgeCount }

// TriangleCount returns the number of valid triangles.
func (c *Connectivity) TriangleCount() int { return c.validTriangleCount }

// IsValidVertex reports whether v is an in-range, non-invalidated vertex.
func (c *Connectivity) IsValidVertex(v int) bool {
	return v >= 0 && v < len(c.vertices) && c.vertices[v].valid
}

// IsValidEdge reports whether e is an in-range, non-invalidated edge.
func (c *Connectivity) IsValidEdge(e int) bool {
	return e >= 0 && e < len(c.edges) && c.edges[e].valid
}

// IsValidTriangle reports whether t is an in-range, non-invalidated triangle.
func (c *Connectivity) IsValidTriangle(t int) bool {
	return t >= 0 && t < len(c.triangles) && c.triangles[t].valid
}

// VertexPosition returns the position of vertex v.
func (c *Connectivity) VertexPosition(v int) vec3.Vec3 {
	c.requireValidVertex(v)
	return c.vertices[v].pos
}

// SetVertexPosition moves vertex v to pos (used by edge contraction to
// relocate the surviving vertex to the optimal contraction point).
func (c *Connectivity) SetVertexPosition(v int, pos vec3.Vec3) {
	c.requireValidVertex(v)
	c.vertices[v].pos = pos
}

// InvalidateVertex marks v as no longer live. It does not touch any edge
// or triangle that may still reference v — callers are responsible for
// detaching v from the mesh first.
func (c *Connectivity) InvalidateVertex(v int) {
	c.requireValidVertex(v)
	c.vertices[v].valid = false
	c.validVertexCount--
}

func (c *Connectivity) requireValidVertex(v int) {
	if !c.IsValidVertex(v) {
		fatalf("unknown or invalidated vertex id %d", v)
	}
}

func (c *Connectivity) requireValidEdge(e int) {
	if !c.IsValidEdge(e) {
		fatalf("unknown or invalidated edge id %d", e)
	}
}

func (c *Connectivity) requireValidTriangle(t int) {
	if !c.IsValidTriangle(t) {
		fatalf("unknown or invalidated triangle id %d", t)
	}
}
