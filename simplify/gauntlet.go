package simplify

import (
	"github.com/r-silveira/xbimgeometry/meshconn"
	"github.com/r-silveira/xbimgeometry/vec3"
)

// passesGauntlet runs the full battery of topological and geometric safety
// checks required before contracting edge e. It assumes e is already known
// to be a valid edge (the caller checks that after popping it from the
// heap).
func (r *runner) passesGauntlet(e int, pStar vec3.Vec3) bool {
	conn := r.conn
	v0, v1 := conn.EdgeVertices(e)

	if !twoBoundaryEndpointsOK(conn, e, v0, v1) {
		return false
	}

	t0, t1 := conn.GetEdgeTriangles(e)
	interior := t0 != meshconn.Invalid && t1 != meshconn.Invalid

	var third0, third1 int = meshconn.Invalid, meshconn.Invalid
	if interior {
		third0 = conn.ThirdVertex(t0, v0, v1)
		third1 = conn.ThirdVertex(t1, v0, v1)
		if third0 == third1 {
			return false // third-vertex distinctness
		}
	}

	allowed := map[int]bool{}
	if third0 != meshconn.Invalid {
		allowed[third0] = true
	}
	if third1 != meshconn.Invalid {
		allowed[third1] = true
	}
	if !neighbourhoodAndLinkOK(conn, v0, v1, allowed) {
		return false
	}

	if !manifoldnessOK(conn, v0, v1, e, t0, t1, third0, third1, interior) {
		return false
	}

	if !normalFlipOK(conn, v0, v1, t0, t1, pStar) {
		return false
	}

	return true
}

// twoBoundaryEndpointsOK rejects an interior edge whose both endpoints lie
// on the mesh boundary — contracting it would pinch two boundary loops
// together.
func twoBoundaryEndpointsOK(conn *meshconn.Connectivity, e, v0, v1 int) bool {
	if conn.IsBoundaryEdge(e) {
		return true
	}
	return !(conn.IsBoundaryVertex(v0) && conn.IsBoundaryVertex(v1))
}

// neighbourhoodAndLinkOK combines the neighbourhood test and the link
// condition: they assert the same predicate (any vertex that is a
// one-ring neighbour of both v0 and v1 must be one of the contracted
// edge's own third vertices), so they are checked together here rather
// than duplicated.
func neighbourhoodAndLinkOK(conn *meshconn.Connectivity, v0, v1 int, allowedShared map[int]bool) bool {
	n0 := neighborsOf(conn, v0)
	n1 := neighborsOf(conn, v1)

	for v := range n0 {
		if v == v1 {
			continue
		}
		if n1[v] && !allowedShared[v] {
			return false
		}
	}

	return true
}

func neighborsOf(conn *meshconn.Connectivity, v int) map[int]bool {
	out := make(map[int]bool)
	for _, e := range conn.GetVertexEdges(v) {
		out[conn.GetOtherVertex(e, v)] = true
	}
	return out
}

// manifoldnessOK runs the two-part manifoldness test.
func manifoldnessOK(conn *meshconn.Connectivity, v0, v1, e, t0, t1, third0, third1 int, interior bool) bool {
	if interior {
		// (i) v0 has valence 3 on the interior, and the opposite edge
		// between the two third vertices is itself interior: contracting
		// would split the one-ring around v0.
		if vertexValence(conn, v0) == 3 && !conn.IsBoundaryVertex(v0) {
			if opp, ok := conn.FindEdge(third0, third1); ok && !conn.IsBoundaryEdge(opp) {
				return false
			}
		}

		return true
	}

	// (ii) the edge is on the boundary: reject if either of the other two
	// edges of its single flanking triangle is also on the boundary
	// (contracting would seal a boundary hole).
	t := t0
	if t == meshconn.Invalid {
		t = t1
	}
	ea, eb, ec := conn.TriangleEdges(t)
	for _, other := range []int{ea, eb, ec} {
		if other == e {
			continue
		}
		if conn.IsBoundaryEdge(other) {
			return false
		}
	}

	return true
}

func vertexValence(conn *meshconn.Connectivity, v int) int {
	return len(conn.GetVertexEdges(v))
}

// normalFlipOK is the normal-flip test: every valid triangle incident on
// v0 or v1 other than t0 and t1 must keep a near-enough face normal after
// v0 and v1 are both replaced by pStar.
func normalFlipOK(conn *meshconn.Connectivity, v0, v1, t0, t1 int, pStar vec3.Vec3) bool {
	affected := map[int]struct{}{}
	for _, t := range conn.GetVertexTriangles(v0) {
		affected[t] = struct{}{}
	}
	for _, t := range conn.GetVertexTriangles(v1) {
		affected[t] = struct{}{}
	}
	delete(affected, t0)
	delete(affected, t1)

	for t := range affected {
		a, b, c := conn.TriangleVertices(t)
		pa, pb, pc := conn.VertexPosition(a), conn.VertexPosition(b), conn.VertexPosition(c)

		original := pb.Sub(pa).Cross(pc.Sub(pa))
		if original.Length() < normalFlipMinArea {
			continue // degenerate reference triangle: nothing to compare against
		}

		moved := func(p vec3.Vec3, id int) vec3.Vec3 {
			if id == v0 || id == v1 {
				return pStar
			}
			return p
		}
		qa, qb, qc := moved(pa, a), moved(pb, b), moved(pc, c)
		updated := qb.Sub(qa).Cross(qc.Sub(qa))

		if dot := original.Normalize().Dot(updated.Normalize()); dot < NormalFlipCosine {
			return false
		}
	}

	return true
}

// normalFlipMinArea mirrors quadric.MinTriangleArea's cross-product-length
// threshold: a reference triangle this degenerate has no meaningful
// normal to compare against, so it is skipped rather than rejected.
const normalFlipMinArea = 1e-12
