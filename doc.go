// Package xbimgeometry is an in-memory triangle-mesh decimation and
// tessellation-tolerance kernel for Go.
//
// 🚀 What is xbimgeometry?
//
//	A zero-cgo library bringing together:
//
//	  • A manifold triangle-mesh connectivity structure, mutated safely
//	    through table-based removal rather than renumbering
//	  • A Garland–Heckbert quadric-error edge-contraction simplifier
//	  • A dynamic-deflection policy for picking curve/surface tessellation
//	    tolerances from swept-solid dimensions
//
// Under the hood, everything is organized under a handful of focused
// packages:
//
//	vec3/       — 3D vector value type
//	quadric/    — symmetric quadratic-form error metric
//	meshheap/   — indexed binary min-heap for the simplifier's edge queue
//	meshconn/   — manifold triangle/edge/vertex connectivity
//	mesh/       — the mesh value type and face-orientation unification
//	simplify/   — the quadric-error edge-contraction driver
//	deflection/ — dynamic linear/angular deflection policy
//	meshio/     — a restricted OBJ-subset reader/writer for fixtures
//	cmd/decimate — a small CLI wrapping simplify over meshio files
//
// See README.md in the module root for build instructions and usage
// examples.
package xbimgeometry
