package meshconn

// AddTriangle inserts a triangle (face, v0, v1, v2) and returns its id.
//
// Rejects degenerate input (any two of v0, v1, v2 equal) by returning
// Invalid, ErrDegenerateTriangle — not fatal, since malformed input meshes
// are a recoverable data condition.
//
// For each of the triangle's three edges: the first observation creates
// the edge and records t0; a second observation records t1; a third
// observation is rejected with ErrNonManifoldEdge in manifold mode, or
// accepted (overwriting nothing — tracking more than two incident
// triangles is not representable by (t0,t1) alone, so non-manifold mode is
// expected to be disabled for any mesh the simplifier processes).
//
// Complexity: O(1) amortized.
func (c *Connectivity) AddTriangle(face, v0, v1, v2 int) (int, error) {
	if v0 == v1 || v1 == v2 || v0 == v2 {
		return Invalid, ErrDegenerateTriangle
	}

	tid := len(c.triangles)
	t := triangle{v: [3]int{v0, v1, v2}, face: face, valid: true}

	pairs := [3][2]int{{v0, v1}, {v1, v2}, {v2, v0}}
	for i, pair := range pairs {
		eid, err := c.attachEdge(pair[0], pair[1], tid)
		if err != nil {
			// Roll back any edges already attached for this triangle
			// before surfacing the error, so a rejected AddTriangle
			// leaves no partial trace.
			for j := 0; j < i; j++ {
				eid := t.e[j]
				c.detachEdgeFromTriangle(eid, tid)
				if c.IsValidEdge(eid) && c.edges[eid].t0 == Invalid && c.edges[eid].t1 == Invalid {
					c.removeEdgeInternal(eid)
				}
			}
			return Invalid, err
		}
		t.e[i] = eid
	}

	c.triangles = append(c.triangles, t)
	c.validTriangleCount++

	return tid, nil
}

// attachEdge finds or creates the edge between u and v and attaches
// triangle tid to it.
func (c *Connectivity) attachEdge(u, v, tid int) (int, error) {
	key := canonicalKey(u, v)
	eid, exists := c.edgeOf[key]
	if !exists {
		eid = len(c.edges)
		c.edges = append(c.edges, edge{v0: key.a, v1: key.b, t0: tid, t1: Invalid, valid: true})
		c.edgeOf[key] = eid
		c.validEdgeCount++
		c.vertexEdges[key.a] = append(c.vertexEdges[key.a], eid)
		c.vertexEdges[key.b] = append(c.vertexEdges[key.b], eid)

		return eid, nil
	}

	e := &c.edges[eid]
	switch {
	case e.t0 == Invalid:
		e.t0 = tid
	case e.t1 == Invalid:
		e.t0, e.t1 = orderedPair(e.t0, tid)
	case c.manifold:
		return Invalid, ErrNonManifoldEdge
	default:
		// Non-manifold mode: (t0,t1) cannot record a third incident
		// triangle. This mode exists only for callers who accept that
		// IsBoundaryEdge/GetEdgeTriangles become approximate beyond two
		// triangles; the Simplifier never runs with it enabled.
	}

	return eid, nil
}

func orderedPair(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// detachEdgeFromTriangle removes tid from edge eid's incident-triangle
// slots, promoting t1 into t0 when possible.
func (c *Connectivity) detachEdgeFromTriangle(eid, tid int) {
	if eid < 0 || eid >= len(c.edges) {
		return
	}
	e := &c.edges[eid]
	switch {
	case e.t0 == tid:
		e.t0 = e.t1
		e.t1 = Invalid
	case e.t1 == tid:
		e.t1 = Invalid
	}
}

// RemoveTriangle clears triangle t and detaches it from each of its three
// edges; an edge left with no incident triangle is removed in turn.
//
// Removing an unknown or already-invalid id is silently idempotent.
func (c *Connectivity) RemoveTriangle(t int) {
	if !c.IsValidTriangle(t) {
		return
	}

	tri := &c.triangles[t]
	edges := tri.e
	tri.valid = false
	c.validTriangleCount--

	for _, eid := range edges {
		c.detachEdgeFromTriangle(eid, t)
		if c.IsValidEdge(eid) && c.edges[eid].t0 == Invalid && c.edges[eid].t1 == Invalid {
			c.removeEdgeInternal(eid)
		}
	}
}

// TriangleVertices returns the three vertex ids of triangle t, in winding
// order.
func (c *Connectivity) TriangleVertices(t int) (v0, v1, v2 int) {
	c.requireValidTriangle(t)
	v := c.triangles[t].v
	return v[0], v[1], v[2]
}

// TriangleEdges returns the three edge ids of triangle t.
func (c *Connectivity) TriangleEdges(t int) (e0, e1, e2 int) {
	c.requireValidTriangle(t)
	e := c.triangles[t].e
	return e[0], e[1], e[2]
}

// TriangleFace returns the face id of triangle t.
func (c *Connectivity) TriangleFace(t int) int {
	c.requireValidTriangle(t)
	return c.triangles[t].face
}

// TriangleHasVertex reports whether triangle t references vertex v.
func (c *Connectivity) TriangleHasVertex(t, v int) bool {
	c.requireValidTriangle(t)
	tri := c.triangles[t].v
	return tri[0] == v || tri[1] == v || tri[2] == v
}

// ThirdVertex returns the vertex of triangle t that is neither a nor b. It
// panics if t does not reference exactly one other vertex besides a and b
// (a programmer error: callers only call this for a triangle known to be
// incident on edge (a,b)).
func (c *Connectivity) ThirdVertex(t, a, b int) int {
	c.requireValidTriangle(t)
	tri := c.triangles[t].v
	for _, v := range tri {
		if v != a && v != b {
			return v
		}
	}
	fatalf("triangle %d has no third vertex distinct from %d,%d", t, a, b)
	return Invalid
}

// Triangles returns the ids of all valid triangles in ascending order.
func (c *Connectivity) Triangles() []int {
	out := make([]int, 0, c.validTriangleCount)
	for t := range c.triangles {
		if c.triangles[t].valid {
			out = append(out, t)
		}
	}
	return out
}
