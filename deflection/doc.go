// Package deflection implements the dynamic-deflection policy: a pure
// function that, given a swept shape's cross-section and sweep length,
// decides how finely the external tessellator should facet its perimeter
// and how coarse the linear/angular deflection tolerances may be, so that
// long, slender runs are not over-tessellated.
//
// Evaluate never returns a tolerance finer than the caller's supplied
// defaults — it only ever coarsens them, and only once a shape's
// slenderness ratio crosses a configurable threshold.
//
// Concurrency: Policy is safe for concurrent read. Its only mutable state
// is two small caches (curve bounding box, curve arc length) keyed by
// curve entity id, each guarded by its own mutex — mirroring this module's
// dual-mutex convention for independently-contended state (muVert /
// muEdgeAdj in the reference graph type, generalized here to muCurveBBox /
// muCurveLen).
package deflection
