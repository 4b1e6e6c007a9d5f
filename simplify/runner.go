package simplify

import (
	"github.com/r-silveira/xbimgeometry/mesh"
	"github.com/r-silveira/xbimgeometry/meshconn"
	"github.com/r-silveira/xbimgeometry/meshheap"
	"github.com/r-silveira/xbimgeometry/quadric"
	"github.com/r-silveira/xbimgeometry/vec3"
)

// Run simplifies m toward target triangles and returns a freshly built mesh
// at the given precision. A contraction can remove two triangles at once,
// so the result may land one below target; if the gauntlet runs out of safe
// contractions first, the result keeps more than target triangles. m itself
// is not mutated.
//
// Run proceeds through the four phases documented in doc.go. It owns a
// throwaway Connectivity and Heap for the duration of the call and returns
// them to the garbage collector once the rebuilt Mesh is produced.
func Run(m *mesh.Mesh, target int, precision float64) *mesh.Mesh {
	r := &runner{
		conn:     meshconn.New(true),
		heap:     meshheap.New(len(m.Triangles)),
		quadrics: make(map[int]quadric.Quadric, len(m.Vertices)),
	}

	r.load(m)
	r.initQuadrics()
	r.priceAllEdges()
	r.contractUntil(target)

	return r.rebuild(precision)
}

// runner holds all mutable state for one Run call: the working
// Connectivity, the per-edge cost heap, and the per-vertex quadric
// accumulator. None of this is safe for concurrent use; a single Run call
// owns it exclusively, mirroring this module's convention of an
// unexported runner type per call carrying one field per concern.
type runner struct {
	conn     *meshconn.Connectivity
	heap     *meshheap.Heap
	quadrics map[int]quadric.Quadric
}

// load copies m's vertices and triangles into a fresh Connectivity.
func (r *runner) load(m *mesh.Mesh) {
	ids := make([]int, len(m.Vertices))
	for i, p := range m.Vertices {
		ids[i] = r.conn.AddVertex(p)
	}
	for _, t := range m.Triangles {
		// Input meshes are assumed already 2-manifold; a triangle that
		// would violate that (e.g. a third triangle on an already-full
		// edge) is simply dropped rather than aborting the whole run.
		_, _ = r.conn.AddTriangle(t.FaceID, ids[t.V0], ids[t.V1], ids[t.V2])
	}
}

// initQuadrics implements Phase A: accumulate each triangle's area-weighted
// plane quadric onto its three vertices.
func (r *runner) initQuadrics() {
	for _, t := range r.conn.Triangles() {
		v0, v1, v2 := r.conn.TriangleVertices(t)
		p0, p1, p2 := r.conn.VertexPosition(v0), r.conn.VertexPosition(v1), r.conn.VertexPosition(v2)

		q, ok := quadric.FromTriangle(p0, p1, p2)
		if !ok {
			continue
		}

		for _, v := range [3]int{v0, v1, v2} {
			r.quadrics[v] = r.quadrics[v].Add(q)
		}
	}
}

// priceAllEdges implements Phase B: for every edge, compute its optimal
// contraction point and cost, cache it on the Connectivity, and seed the
// heap.
func (r *runner) priceAllEdges() {
	for _, e := range r.conn.Edges() {
		cost, pStar := r.priceEdge(e)
		r.conn.SetEdgeCost(e, cost, pStar)
		r.heap.Push(e, float32(cost))
	}
}

// priceEdge computes the optimal contraction point and cost for edge e: a
// boundary edge contracts to its midpoint; an edge with exactly one
// boundary endpoint contracts to that endpoint (to avoid dragging the
// boundary inward); an interior edge contracts to the summed quadric's
// unconstrained optimum.
func (r *runner) priceEdge(e int) (cost float64, pStar vec3.Vec3) {
	v0, v1 := r.conn.EdgeVertices(e)
	p0, p1 := r.conn.VertexPosition(v0), r.conn.VertexPosition(v1)
	q := r.quadrics[v0].Add(r.quadrics[v1])

	switch {
	case r.conn.IsBoundaryEdge(e):
		pStar = vec3.Midpoint(p0, p1)
	case r.conn.IsBoundaryVertex(v0) != r.conn.IsBoundaryVertex(v1):
		if r.conn.IsBoundaryVertex(v0) {
			pStar = p0
		} else {
			pStar = p1
		}
	default:
		pStar = q.Optimal(p0, p1)
	}

	return q.Evaluate(pStar), pStar
}

// contractUntil implements Phase C: repeatedly pop the cheapest edge,
// gauntlet-check it, and contract it, until the triangle budget is reached
// or the heap runs dry.
func (r *runner) contractUntil(target int) {
	for r.conn.TriangleCount() > target && r.heap.Len() > 0 {
		e, ok := r.heap.PopMin()
		if !ok {
			break
		}
		if !r.conn.IsValidEdge(e) {
			// Stale entry: one endpoint's earlier contraction already
			// removed this edge. It was popped and discarded; nothing
			// further to do.
			continue
		}

		_, pStar, _ := r.conn.EdgeCost(e)
		if !r.passesGauntlet(e, pStar) {
			// Failing the gauntlet simply drops the edge: it was already
			// removed from the heap by PopMin, and may be reconsidered
			// later only indirectly, via a neighbouring contraction's
			// re-price step.
			continue
		}

		v0, _ := r.conn.EdgeVertices(e)
		r.conn.SetVertexPosition(v0, pStar)
		survivor, removed := r.conn.ContractEdge(e)

		r.quadrics[survivor] = r.quadrics[survivor].Add(r.quadrics[removed])
		delete(r.quadrics, removed)

		r.repriceAround(survivor)
	}
}

// repriceAround recomputes cost for every edge now incident on v (step 6 of
// Phase C), pushing newly-seen edges and updating ones already in the heap.
func (r *runner) repriceAround(v int) {
	for _, e := range r.conn.GetVertexEdges(v) {
		cost, pStar := r.priceEdge(e)
		r.conn.SetEdgeCost(e, cost, pStar)
		if r.heap.Contains(e) {
			r.heap.Update(e, float32(cost))
		} else {
			r.heap.Push(e, float32(cost))
		}
	}
}

// rebuild implements Phase D: walk the vertex table and the surviving
// triangles, remap to a dense 0-based index space, and unify face
// orientation. Every valid vertex is carried into the output, including
// one left isolated by contraction (referenced by no surviving triangle),
// matching the walk-the-vertex-table algorithm rather than deriving the
// vertex set from triangle references.
func (r *runner) rebuild(precision float64) *mesh.Mesh {
	out := mesh.New(precision)

	remap := make(map[int]int)
	for _, v := range r.conn.Vertices() {
		remap[v] = len(out.Vertices)
		out.Vertices = append(out.Vertices, r.conn.VertexPosition(v))
	}

	for _, t := range r.conn.Triangles() {
		v0, v1, v2 := r.conn.TriangleVertices(t)
		out.Triangles = append(out.Triangles, mesh.Triangle{
			FaceID: r.conn.TriangleFace(t),
			V0:     remap[v0],
			V1:     remap[v1],
			V2:     remap[v2],
		})
	}

	out.UnifyOrientation()

	return out
}
