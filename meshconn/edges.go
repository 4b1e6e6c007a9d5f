package meshconn

import "sort"

// FindEdge returns the id of the edge between a and b, or (Invalid, false)
// if no such edge exists.
//
// Complexity: O(1).
func (c *Connectivity) FindEdge(a, b int) (int, bool) {
	eid, ok := c.edgeOf[canonicalKey(a, b)]
	if !ok || !c.edges[eid].valid {
		return Invalid, false
	}
	return eid, true
}

// EdgeVertices returns the canonical (v0 < v1) endpoints of edge e.
func (c *Connectivity) EdgeVertices(e int) (v0, v1 int) {
	c.requireValidEdge(e)
	return c.edges[e].v0, c.edges[e].v1
}

// GetEdgeTriangles returns the up-to-two triangle ids incident on edge e;
// t1 is Invalid for a boundary edge.
func (c *Connectivity) GetEdgeTriangles(e int) (t0, t1 int) {
	c.requireValidEdge(e)
	return c.edges[e].t0, c.edges[e].t1
}

// IsBoundaryEdge reports whether edge e has exactly one incident triangle.
func (c *Connectivity) IsBoundaryEdge(e int) bool {
	c.requireValidEdge(e)
	ed := c.edges[e]
	return (ed.t0 == Invalid) != (ed.t1 == Invalid)
}

// GetOtherVertex returns the endpoint of edge e that is not v. Panics if v
// is not one of the edge's two endpoints — the same precondition
// ReplaceEdgeVertex enforces on its old-vertex argument.
func (c *Connectivity) GetOtherVertex(e, v int) int {
	c.requireValidEdge(e)
	ed := c.edges[e]
	switch v {
	case ed.v0:
		return ed.v1
	case ed.v1:
		return ed.v0
	default:
		fatalf("vertex %d is not an endpoint of edge %d", v, e)
		return Invalid
	}
}

// GetVertexEdges returns the ids of all valid edges incident on vertex v,
// ascending, pruning any stale (invalidated) entries it finds along the
// way.
func (c *Connectivity) GetVertexEdges(v int) []int {
	list := c.vertexEdges[v]
	out := list[:0:0]
	for _, eid := range list {
		if c.IsValidEdge(eid) {
			out = append(out, eid)
		}
	}
	c.vertexEdges[v] = out
	sort.Ints(out)

	return append([]int(nil), out...)
}

// GetVertexTriangles returns the ids of all valid triangles incident on
// vertex v (derived from its incident edges), deduplicated and ascending.
func (c *Connectivity) GetVertexTriangles(v int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, eid := range c.GetVertexEdges(v) {
		t0, t1 := c.edges[eid].t0, c.edges[eid].t1
		for _, t := range [2]int{t0, t1} {
			if t == Invalid || !c.IsValidTriangle(t) {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Ints(out)

	return out
}

// IsBoundaryVertex reports whether vertex v has at least one incident
// boundary edge.
func (c *Connectivity) IsBoundaryVertex(v int) bool {
	for _, eid := range c.GetVertexEdges(v) {
		if c.IsBoundaryEdge(eid) {
			return true
		}
	}
	return false
}

// removeEdgeInternal removes edge e without touching any triangle (callers
// have already detached it from its triangles, or know it has none).
func (c *Connectivity) removeEdgeInternal(e int) {
	ed := &c.edges[e]
	ed.valid = false
	c.validEdgeCount--
	delete(c.edgeOf, canonicalKey(ed.v0, ed.v1))
}

// RemoveEdge removes edge e and invalidates every triangle that referenced
// it — an edge cannot be removed while leaving a dangling triangle behind.
//
// Removing an unknown or already-invalid id is silently idempotent.
func (c *Connectivity) RemoveEdge(e int) {
	if !c.IsValidEdge(e) {
		return
	}

	ed := c.edges[e]
	c.removeEdgeInternal(e)

	for _, t := range [2]int{ed.t0, ed.t1} {
		if t == Invalid || !c.IsValidTriangle(t) {
			continue
		}
		tri := &c.triangles[t]
		for i, slotEdge := range tri.e {
			if slotEdge == e {
				tri.e[i] = Invalid
			}
		}
		if tri.e[0] == Invalid && tri.e[1] == Invalid && tri.e[2] == Invalid {
			c.RemoveTriangle(t)
			continue
		}
		if hasNonInvalidDuplicate(tri.e) {
			c.RemoveTriangle(t)
		}
	}
}

func hasNonInvalidDuplicate(e [3]int) bool {
	for i := 0; i < 3; i++ {
		if e[i] == Invalid {
			continue
		}
		for j := i + 1; j < 3; j++ {
			if e[j] == e[i] {
				return true
			}
		}
	}
	return false
}

// ReplaceTriangleVertex rewrites occurrences of old with new in triangle
// t's vertex triple. If the result is degenerate, t is invalidated and
// removed and ReplaceTriangleVertex returns false. Otherwise the
// triangle's three edges are detached from the old vertex pairing and
// re-attached against the new vertex triple, and it returns true; if that
// re-attach is rejected (a third triangle on an edge in manifold mode), the
// triangle stays removed and it returns false.
//
// Implementation note: the rewritten triangle is removed and re-inserted
// rather than mutated in place, so its id may change; callers must not
// hold onto t across a successful call and should re-derive affected
// triangle ids via GetVertexTriangles/GetVertexEdges afterwards.
//
// Complexity: O(1).
func (c *Connectivity) ReplaceTriangleVertex(t, old, new int) bool {
	c.requireValidTriangle(t)
	tri := c.triangles[t]

	var updated [3]int
	for i, v := range tri.v {
		if v == old {
			updated[i] = new
		} else {
			updated[i] = v
		}
	}

	if updated[0] == updated[1] || updated[1] == updated[2] || updated[0] == updated[2] {
		c.RemoveTriangle(t)
		return false
	}

	face := tri.face
	c.RemoveTriangle(t)

	if _, err := c.AddTriangle(face, updated[0], updated[1], updated[2]); err != nil {
		return false
	}

	return true
}

// ReplaceEdgeVertex rewrites occurrences of old with new in edge e's
// endpoints, updates the canonical key, and moves vertex-edge incidence
// from old to new. Panics if old is not an endpoint of e — a programmer
// error, not a recoverable data condition.
func (c *Connectivity) ReplaceEdgeVertex(e, old, new int) {
	c.requireValidEdge(e)
	ed := &c.edges[e]

	if ed.v0 != old && ed.v1 != old {
		fatalf("vertex %d is not an endpoint of edge %d", old, e)
	}

	delete(c.edgeOf, canonicalKey(ed.v0, ed.v1))

	var other int
	if ed.v0 == old {
		other = ed.v1
	} else {
		other = ed.v0
	}
	ed.v0, ed.v1 = canonicalKey(new, other).a, canonicalKey(new, other).b

	c.edgeOf[canonicalKey(ed.v0, ed.v1)] = e

	kept := c.vertexEdges[old][:0]
	for _, eid := range c.vertexEdges[old] {
		if eid != e {
			kept = append(kept, eid)
		}
	}
	c.vertexEdges[old] = kept
	c.vertexEdges[new] = append(c.vertexEdges[new], e)
}
