package quadric

// Centralized numeric tolerances for the quadric package; kept here rather
// than scattered as magic numbers through the code.

const (
	// SingularDeterminant is the threshold at or below which |det A| is
	// treated as singular by Optimal.
	SingularDeterminant = 1000 * 1e-10

	// MinTriangleArea is the threshold on a triangle's edge cross-product
	// length |e1 × e2| (twice its area) below which the triangle contributes
	// no quadric.
	MinTriangleArea = 1e-12
)
