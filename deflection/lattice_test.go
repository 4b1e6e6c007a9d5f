package deflection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-silveira/xbimgeometry/deflection"
)

func TestLattice_EmptyReturnsDefault(t *testing.T) {
	l := deflection.NewLattice()
	require.Equal(t, float64(deflection.DefaultEmptyLatticeFacets), l.Query(10, 30))
}

func TestLattice_BilinearExactCorner(t *testing.T) {
	l := deflection.NewLattice(
		deflection.ControlPoint{WidthMm: 10, Slenderness: 5, Facets: 4},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 20, Facets: 8},
		deflection.ControlPoint{WidthMm: 30, Slenderness: 5, Facets: 6},
		deflection.ControlPoint{WidthMm: 30, Slenderness: 20, Facets: 12},
	)

	require.Equal(t, 4.0, l.Query(10, 5))
	require.Equal(t, 12.0, l.Query(30, 20))
}

func TestLattice_BilinearInterpolatesMidpoint(t *testing.T) {
	l := deflection.NewLattice(
		deflection.ControlPoint{WidthMm: 0, Slenderness: 0, Facets: 0},
		deflection.ControlPoint{WidthMm: 0, Slenderness: 10, Facets: 10},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 0, Facets: 10},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 10, Facets: 20},
	)

	got := l.Query(5, 5)
	require.InDelta(t, 10.0, got, 1e-9)
}

func TestLattice_FallsBackToNearestWhenNotInterpolable(t *testing.T) {
	l := deflection.NewLattice(
		deflection.ControlPoint{WidthMm: 10, Slenderness: 5, Facets: 4},
		deflection.ControlPoint{WidthMm: 50, Slenderness: 40, Facets: 16},
	)

	// Both axes have two distinct values, but the two points share neither
	// axis, so the bracketing corners (10,40) and (50,5) are missing and
	// nearest-neighbour applies.
	got := l.Query(9, 6)
	require.Equal(t, 4.0, got)
}
