// Package meshconn is the central adjacency store for a triangulated
// surface: a vertex table, an edge table and a triangle table, kept
// consistent under destructive mutation via dense integer ids and a
// "valid" flag rather than hard deletion.
//
// The approach generalizes a flat-table-plus-id adjacency store to a
// cyclic graph (vertices ↔ edges ↔ triangles here): never hold a pointer
// across entities, always look up through a table, so that removals stay
// local and ids remain stable until the final rebuild.
//
// Concurrency: Connectivity is NOT thread-safe; no locking is used here —
// one simplification run owns one Connectivity exclusively, single-
// threaded and cooperative.
//
// Determinism: Edges(), Triangles() and GetVertexEdges() return ids in
// ascending numeric order for reproducible tests and golden outputs.
package meshconn

import "github.com/r-silveira/xbimgeometry/vec3"

// Invalid is the sentinel id returned by lookups that fail and stored in
// triangle/edge slots that reference nothing.
const Invalid = -1

// VertexPosition is re-exported for callers building a Connectivity from a
// plain point list.
type VertexPosition = vec3.Vec3
