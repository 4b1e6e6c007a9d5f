// Package meshio provides a minimal, human-readable round-trip format for
// mesh.Mesh values: a restricted subset of Wavefront OBJ (vertex and face
// lines, plus group lines mapped to face ids).
//
// This is not the production scene file format — that format is a binary
// representation owned by an external CAD kernel and out of scope here.
// meshio exists purely so test fixtures and the cmd/decimate demo can load
// and save a mesh without hand-building triangle literals, in the same
// spirit as this module's format-adapter packages: a pure function pair
// with no global state, one parse and one write. Parsing fails on
// malformed input or a read error; writing fails only on a write error.
package meshio
