package deflection

// DefaultEmptyLatticeFacets is the target facet count a Lattice with no
// control points returns. This is a fixed design constant rather than
// something derived from profile geometry.
const DefaultEmptyLatticeFacets = 6

// latticeCoordinateEpsilon is the equality tolerance used when comparing
// control-point coordinates during bracketing and corner lookup.
const latticeCoordinateEpsilon = 1e-6
