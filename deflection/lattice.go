package deflection

import "math"

// ControlPoint is one sample of a custom facet-count strategy: at a given
// (section width in mm, slenderness) pair, the target facet count.
type ControlPoint struct {
	WidthMm     float64
	Slenderness float64
	Facets      float64
}

// Lattice is a user-supplied scattered control-point table queried by
// bilinear interpolation over its nearest four corners, falling back to
// the Euclidean-nearest control point when the four corners don't exist.
type Lattice struct {
	points []ControlPoint
}

// NewLattice builds a Lattice from the given control points.
func NewLattice(points ...ControlPoint) *Lattice {
	return &Lattice{points: append([]ControlPoint(nil), points...)}
}

// Query returns the target facet count for (widthMm, slenderness). An
// empty lattice returns DefaultEmptyLatticeFacets.
func (l *Lattice) Query(widthMm, slenderness float64) float64 {
	if len(l.points) == 0 {
		return DefaultEmptyLatticeFacets
	}

	if v, ok := l.bilinear(widthMm, slenderness); ok {
		return v
	}

	return l.nearest(widthMm, slenderness)
}

// bilinear attempts four-corner interpolation. It reports ok=false when
// fewer than two distinct values exist on either axis, or when any of the
// four bracketing corners is missing from the lattice.
func (l *Lattice) bilinear(x, y float64) (float64, bool) {
	xs := distinctSorted(l.points, func(p ControlPoint) float64 { return p.WidthMm })
	ys := distinctSorted(l.points, func(p ControlPoint) float64 { return p.Slenderness })
	if len(xs) < 2 || len(ys) < 2 {
		return 0, false
	}

	x1, x2 := bracket(xs, x)
	y1, y2 := bracket(ys, y)

	q11, ok11 := l.find(x1, y1)
	q12, ok12 := l.find(x1, y2)
	q21, ok21 := l.find(x2, y1)
	q22, ok22 := l.find(x2, y2)
	if !ok11 || !ok12 || !ok21 || !ok22 {
		return 0, false
	}

	sameX := approxEqual(x1, x2)
	sameY := approxEqual(y1, y2)

	switch {
	case sameX && sameY:
		return q11, true
	case sameX:
		return lerp(q11, q12, fraction(y1, y2, y)), true
	case sameY:
		return lerp(q11, q21, fraction(x1, x2, x)), true
	default:
		top := lerp(q11, q21, fraction(x1, x2, x))
		bottom := lerp(q12, q22, fraction(x1, x2, x))
		return lerp(top, bottom, fraction(y1, y2, y)), true
	}
}

// nearest returns the facet count of the Euclidean-nearest control point
// to (x, y) in (width, slenderness) space.
func (l *Lattice) nearest(x, y float64) float64 {
	best := l.points[0]
	bestDist := sqDist(best, x, y)
	for _, p := range l.points[1:] {
		if d := sqDist(p, x, y); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best.Facets
}

func sqDist(p ControlPoint, x, y float64) float64 {
	dx, dy := p.WidthMm-x, p.Slenderness-y
	return dx*dx + dy*dy
}

// find looks up the control point at exactly (x, y), within
// latticeCoordinateEpsilon on each axis.
func (l *Lattice) find(x, y float64) (float64, bool) {
	for _, p := range l.points {
		if math.Abs(p.WidthMm-x) <= latticeCoordinateEpsilon && math.Abs(p.Slenderness-y) <= latticeCoordinateEpsilon {
			return p.Facets, true
		}
	}
	return 0, false
}

// distinctSorted returns the distinct values of key(p) over points, sorted
// ascending, collapsing values within latticeCoordinateEpsilon of each
// other.
func distinctSorted(points []ControlPoint, key func(ControlPoint) float64) []float64 {
	var out []float64
	for _, p := range points {
		v := key(p)
		dup := false
		for _, existing := range out {
			if approxEqual(existing, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// bracket returns the pair (lo, hi) from sorted (len ≥ 2) that brackets v;
// out-of-range values snap to the first or last pair.
func bracket(sorted []float64, v float64) (lo, hi float64) {
	if v <= sorted[0] {
		return sorted[0], sorted[1]
	}
	last := len(sorted) - 1
	if v >= sorted[last] {
		return sorted[last-1], sorted[last]
	}
	for i := 0; i < last; i++ {
		if sorted[i] <= v && v <= sorted[i+1] {
			return sorted[i], sorted[i+1]
		}
	}
	return sorted[last-1], sorted[last]
}

func fraction(lo, hi, v float64) float64 {
	if approxEqual(lo, hi) {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= latticeCoordinateEpsilon
}
