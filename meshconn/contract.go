package meshconn

// ContractEdge performs the purely topological half of an edge
// contraction: every triangle and edge incident on the higher-id endpoint
// of e is rewired onto the lower-id endpoint (or removed if that would be
// degenerate), and the higher-id endpoint is invalidated.
//
// ContractEdge does NOT touch vertex positions or quadrics — those are
// owned exclusively by the caller (the simplifier driver). Callers should
// call SetVertexPosition on the returned survivor before or after
// ContractEdge; order does not matter since ContractEdge never reads
// vertex.pos.
//
// Implementation note: rewiring a ring triangle onto the survivor is done
// via RemoveTriangle + AddTriangle (see ReplaceTriangleVertex) rather than
// an in-place vertex-slot edit. This is what makes the classic
// "third-vertex" edge-merge case fall out for free: when both v0 and v1
// were already connected to a shared neighbour w (exactly the case the
// caller's neighbourhood/link-condition checks are meant to allow), the
// edge (v1, w) is torn down by RemoveTriangle's edge-orphan cleanup and
// the re-inserted triangle's AddTriangle call finds-and-attaches to the
// pre-existing (v0, w) edge via its canonical key, merging the two into
// one edge with no special-cased merge logic required.
//
// Returns (survivor, removed). Panics if e is not a valid edge (programmer
// error: callers run the safety gauntlet before calling ContractEdge and
// must not call it on a stale id).
func (c *Connectivity) ContractEdge(e int) (survivor, removed int) {
	c.requireValidEdge(e)
	v0, v1 := c.EdgeVertices(e) // canonical: v0 < v1
	t0id, t1id := c.GetEdgeTriangles(e)

	// Snapshot before any mutation — RemoveTriangle/ReplaceTriangleVertex
	// below will change what GetVertexTriangles(v1) would return.
	trisOnV1 := c.GetVertexTriangles(v1)

	for _, t := range trisOnV1 {
		if !c.IsValidTriangle(t) {
			continue // may have been removed already as t0id/t1id's mirror
		}
		if t == t0id || t == t1id {
			c.RemoveTriangle(t)
			continue
		}
		c.ReplaceTriangleVertex(t, v1, v0)
	}

	// Defensive: if the contracted edge itself somehow survived (e.g. it
	// was a boundary edge with only one flanking triangle already handled
	// above), make sure it is gone. In the normal interior case both
	// t0id/t1id removals already orphan-remove it.
	if c.IsValidEdge(e) {
		c.RemoveEdge(e)
	}

	c.InvalidateVertex(v1)

	return v0, v1
}
