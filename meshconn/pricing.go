package meshconn

import "github.com/r-silveira/xbimgeometry/vec3"

// SetEdgeCost caches a simplifier-computed cost and optimal contraction
// point on edge e. Connectivity stores this purely as a convenience cache
// on the caller's behalf and never reads or interprets it itself.
func (c *Connectivity) SetEdgeCost(e int, cost float64, optimal vec3.Vec3) {
	c.requireValidEdge(e)
	ed := &c.edges[e]
	ed.hasCost = true
	ed.cost = cost
	ed.optimal = optimal
}

// EdgeCost returns the cached cost and optimal point for edge e, and false
// if none has been set yet.
func (c *Connectivity) EdgeCost(e int) (cost float64, optimal vec3.Vec3, ok bool) {
	c.requireValidEdge(e)
	ed := c.edges[e]
	return ed.cost, ed.optimal, ed.hasCost
}

// Edges returns the ids of all valid edges, ascending.
func (c *Connectivity) Edges() []int {
	out := make([]int, 0, c.validEdgeCount)
	for e := range c.edges {
		if c.edges[e].valid {
			out = append(out, e)
		}
	}
	return out
}
