// Package quadric implements the Garland–Heckbert quadric error metric: a
// symmetric 3×3 matrix A, a linear term b, and a constant c, summed per
// vertex from the planes of its incident triangles.
//
// Purpose:
//   - Represent pᵀA p + 2 bᵀp + c compactly (6 + 3 + 1 = 10 doubles).
//   - Provide Add/Scale for accumulation and Optimal for the minimizing point.
//
// Determinism:
//   - All operations are O(1); Optimal solves a fixed 3×3 linear system by
//     closed-form cofactor inverse, never iterating.
//
// AI-Hints:
//   - FromPlane requires its normal argument already unit-length; callers
//     normalize before calling.
//   - Optimal never fails: the singular branch falls back to the cheapest
//     of p0, p1, and their midpoint (see tolerances.go for the threshold).
package quadric

import "github.com/r-silveira/xbimgeometry/vec3"

// Quadric is the symmetric error functional pᵀA p + 2 bᵀp + c.
//
// A stores the six distinct entries of the symmetric 3×3 matrix in the
// order (Axx, Axy, Axz, Ayy, Ayz, Azz).
type Quadric struct {
	A [6]float64
	B vec3.Vec3
	C float64
}

const (
	axx = 0
	axy = 1
	axz = 2
	ayy = 3
	ayz = 4
	azz = 5
)

// Zero returns the additive identity quadric (all zero).
func Zero() Quadric {
	return Quadric{}
}

// FromPlane builds the quadric of the plane through p with unit normal n:
// A = n nᵀ, b = −A p, c = pᵀA p.
//
// Contract: n must already be unit length (the caller normalizes); passing
// a non-unit n silently produces a scaled, still-valid quadric, but callers
// in this module always normalize first.
func FromPlane(n, p vec3.Vec3) Quadric {
	var q Quadric
	q.A[axx] = n.X * n.X
	q.A[axy] = n.X * n.Y
	q.A[axz] = n.X * n.Z
	q.A[ayy] = n.Y * n.Y
	q.A[ayz] = n.Y * n.Z
	q.A[azz] = n.Z * n.Z

	ap := q.applyA(p)
	q.B = ap.Scale(-1)
	q.C = p.Dot(ap)

	return q
}

// applyA returns A·v using the stored symmetric entries.
func (q Quadric) applyA(v vec3.Vec3) vec3.Vec3 {
	return vec3.Vec3{
		X: q.A[axx]*v.X + q.A[axy]*v.Y + q.A[axz]*v.Z,
		Y: q.A[axy]*v.X + q.A[ayy]*v.Y + q.A[ayz]*v.Z,
		Z: q.A[axz]*v.X + q.A[ayz]*v.Y + q.A[azz]*v.Z,
	}
}

// Add returns the component-wise sum q + o; quadrics accumulate additively.
func (q Quadric) Add(o Quadric) Quadric {
	var out Quadric
	for i := range q.A {
		out.A[i] = q.A[i] + o.A[i]
	}
	out.B = q.B.Add(o.B)
	out.C = q.C + o.C

	return out
}

// Scale returns q scaled by alpha; all three components scale linearly.
func (q Quadric) Scale(alpha float64) Quadric {
	var out Quadric
	for i := range q.A {
		out.A[i] = q.A[i] * alpha
	}
	out.B = q.B.Scale(alpha)
	out.C = q.C * alpha

	return out
}

// Evaluate returns pᵀA p + 2 bᵀp + c.
func (q Quadric) Evaluate(p vec3.Vec3) float64 {
	return p.Dot(q.applyA(p)) + 2*q.B.Dot(p) + q.C
}

// det returns the determinant of the symmetric 3×3 matrix A.
func (q Quadric) det() float64 {
	a, b, c := q.A[axx], q.A[axy], q.A[axz]
	_, d, e := q.A[axy], q.A[ayy], q.A[ayz]
	_, _, f := q.A[axz], q.A[ayz], q.A[azz]

	return a*(d*f-e*e) - b*(b*f-e*c) + c*(b*e-d*c)
}

// Optimal solves A x = −b for the unique minimizer of q via the closed-form
// cofactor inverse of the symmetric 3×3 matrix A. If |det A| falls at or
// below SingularDeterminant, the system is treated as singular and Optimal
// falls back to whichever of the midpoint, p0 and p1 evaluates cheapest,
// preferring them in that order on a tie — this guarantees Optimal always
// returns a finite point.
func (q Quadric) Optimal(p0, p1 vec3.Vec3) vec3.Vec3 {
	det := q.det()
	if absf(det) <= SingularDeterminant {
		return cheapestOf(q, vec3.Midpoint(p0, p1), p0, p1)
	}

	a, b, c := q.A[axx], q.A[axy], q.A[axz]
	d, e := q.A[ayy], q.A[ayz]
	f := q.A[azz]

	// Cofactors of the symmetric matrix [[a,b,c],[b,d,e],[c,e,f]].
	invDet := 1 / det
	cof := [3][3]float64{
		{(d*f - e*e) * invDet, (c*e - b*f) * invDet, (b*e - c*d) * invDet},
		{(c*e - b*f) * invDet, (a*f - c*c) * invDet, (b*c - a*e) * invDet},
		{(b*e - c*d) * invDet, (b*c - a*e) * invDet, (a*d - b*b) * invDet},
	}

	negB := q.B.Scale(-1)
	x := vec3.Vec3{
		X: cof[0][0]*negB.X + cof[0][1]*negB.Y + cof[0][2]*negB.Z,
		Y: cof[1][0]*negB.X + cof[1][1]*negB.Y + cof[1][2]*negB.Z,
		Z: cof[2][0]*negB.X + cof[2][1]*negB.Y + cof[2][2]*negB.Z,
	}

	return x
}

// cheapestOf returns whichever of the candidate points evaluates to the
// smallest quadric error; on a tie the earliest candidate wins.
func cheapestOf(q Quadric, candidates ...vec3.Vec3) vec3.Vec3 {
	best := candidates[0]
	bestCost := q.Evaluate(best)
	for _, p := range candidates[1:] {
		if cost := q.Evaluate(p); cost < bestCost {
			best, bestCost = p, cost
		}
	}

	return best
}

// FromTriangle builds the area-weighted plane quadric of the triangle
// (p0, p1, p2): the unit-normal plane quadric through p0, scaled by the
// triangle's area (½ |e1 × e2|). Triangles whose cross-product length
// falls below MinTriangleArea contribute nothing — FromTriangle returns
// (Zero(), false) in that case.
func FromTriangle(p0, p1, p2 vec3.Vec3) (Quadric, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	cross := e1.Cross(e2)
	crossLen := cross.Length()
	if crossLen < MinTriangleArea {
		return Zero(), false
	}

	area := 0.5 * crossLen
	n := cross.Scale(1 / crossLen)

	return FromPlane(n, p0).Scale(area), true
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
