// Package simplify implements the Garland–Heckbert quadric-error
// edge-contraction mesh simplifier: given an indexed triangle mesh and a
// target triangle count, it greedily contracts the cheapest edge that
// survives a battery of topological and geometric safety checks, until the
// target is reached or no further contraction is safe.
//
// The driver proceeds in four phases:
//
//	A. quadric initialisation — per-vertex quadrics from triangle planes.
//	B. edge costing — per-edge optimal contraction point and cost.
//	C. contraction loop — pop cheapest edge, gauntlet, contract, re-price.
//	D. mesh rebuild — fresh output mesh with remapped, dense vertex ids.
//
// This mirrors the shape of this module's reference shortest-path driver
// (an unexported runner holding all mutable algorithm state, one field per
// concern) adapted to a destructive greedy-contraction algorithm instead of
// a monotone relaxation one. Run takes its target and precision as plain
// parameters; there is no options bundle.
//
// Concurrency: Simplifier state is not thread-safe; one Run call owns its
// Connectivity and Heap exclusively.
package simplify
