package meshio

import "errors"

// Sentinel errors for ParseOBJSubset. Malformed input is always a
// recoverable data condition here, never a programmer error — callers
// decide what to do with a rejected file.
var (
	// ErrMalformedVertexLine indicates a "v" line did not have exactly
	// three numeric components.
	ErrMalformedVertexLine = errors.New("meshio: malformed vertex line")

	// ErrMalformedFaceLine indicates an "f" line did not have exactly
	// three vertex references.
	ErrMalformedFaceLine = errors.New("meshio: malformed face line")

	// ErrFaceVertexOutOfRange indicates a face line referenced a vertex
	// index outside the vertices parsed so far.
	ErrFaceVertexOutOfRange = errors.New("meshio: face references an out-of-range vertex index")
)
