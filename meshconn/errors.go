package meshconn

import (
	"errors"
	"fmt"
)

// Sentinel errors for meshconn operations. These partition into two kinds:
//   - ErrDegenerateTriangle, ErrNonManifoldEdge are user-data conditions
//     returned to the caller for it to handle (AddTriangle rejects and
//     returns Invalid; the caller decides what to do next).
//   - Everything else, fatalf below, is a programmer error: it indicates
//     the caller violated a documented precondition (unknown id, vertex
//     not on edge) and is not meant to be recovered from. A non-manifold
//     attach while in manifold mode is reported through ErrNonManifoldEdge,
//     not through fatalf.
var (
	// ErrDegenerateTriangle indicates AddTriangle was asked to create a
	// triangle with two or more equal vertex ids.
	ErrDegenerateTriangle = errors.New("meshconn: degenerate triangle (repeated vertex)")

	// ErrNonManifoldEdge indicates a third triangle tried to attach to an
	// edge that already has two incident triangles, while the
	// Connectivity is in manifold mode.
	ErrNonManifoldEdge = errors.New("meshconn: edge already has two incident triangles (manifold mode)")
)

// fatalf panics with a "meshconn: ..." prefixed message. Reserved for
// programmer errors — structurally impossible operations that indicate a
// caller bug, not user data corruption. This mirrors the
// panic-on-invalid-option convention used elsewhere in this module's
// ancestry (e.g. a functional-options constructor panicking on a
// nonsensical argument).
func fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf("meshconn: "+format, args...))
}
