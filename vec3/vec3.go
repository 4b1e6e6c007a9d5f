// Package vec3 provides a minimal, allocation-free 3D vector type used
// throughout the mesh-decimation kernel.
//
// Vec3 is a plain value type (no pointer receivers needed for reads); all
// mutating-looking operations (Normalize) return a new value rather than
// mutating in place, matching the rest of this module's value-semantics
// convention for small numeric types.
//
// Complexity: every operation here is O(1); there are no allocations.
package vec3

import "math"

// ZeroLengthEpsilon is the threshold below which a vector is treated as the
// zero vector by Normalize (spec tolerance: 1e-12).
const ZeroLengthEpsilon = 1e-12

// Vec3 is a point or direction in 3D space, stored in double precision.
type Vec3 struct {
	X, Y, Z float64
}

// New builds a Vec3 from three components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar (inner) product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector (outer) product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Midpoint returns the point halfway between v and w.
func Midpoint(v, w Vec3) Vec3 {
	return Vec3{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2, Z: (v.Z + w.Z) / 2}
}

// Normalize returns v scaled to unit length. If the length of v is below
// ZeroLengthEpsilon, Normalize is a no-op and returns v unchanged, since a
// near-zero vector has no well-defined direction to scale to.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < ZeroLengthEpsilon {
		return v
	}
	return v.Scale(1 / l)
}

// DistanceSquared returns the squared Euclidean distance between v and w,
// avoiding a sqrt for callers that only need relative ordering.
func DistanceSquared(v, w Vec3) float64 {
	d := v.Sub(w)
	return d.Dot(d)
}
