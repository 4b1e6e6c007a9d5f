package deflection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r-silveira/xbimgeometry/deflection"
)

// TestScenario_ExtrusionExample covers a worked deflection example: an
// extrusion 300mm long with a 10mm square profile, evaluated
// against the default settings bundle (baseline 20mm, minimum-facets
// multiplier 3). Slenderness is 30, well above the default critical
// threshold of 5; target facets = 3·(10/20) = 1.5, clamped up to the
// minimum of 3; angular = 4π/3; linear = 5·(1 − cos(2π/3)) = 7.5.
func TestScenario_ExtrusionExample(t *testing.T) {
	p := deflection.NewPolicy()
	shape := squareProfileExtrusion(300)

	linear, angular := p.Evaluate(shape, deflection.DefaultSettings())

	require.InDelta(t, 4*math.Pi/3, angular, 1e-9)
	require.InDelta(t, 7.5, linear, 1e-9)
}

// TestScenario_MonotonicityUnderIncreasingSweepLength covers the
// monotonicity property: for a fixed profile and defaults, increasing
// sweep length (hence slenderness) never decreases the returned linear or
// angular tolerance.
func TestScenario_MonotonicityUnderIncreasingSweepLength(t *testing.T) {
	p := deflection.NewPolicy()
	// A lattice whose facet count strictly decreases as slenderness grows,
	// at the fixed 10mm section width this scenario uses throughout —
	// exactly the regime the policy is meant to exploit: a longer, more
	// slender run is allowed fewer perimeter facets, hence coarser
	// tolerances.
	lattice := deflection.NewLattice(
		deflection.ControlPoint{WidthMm: 10, Slenderness: 6, Facets: 24},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 12, Facets: 16},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 30, Facets: 8},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 60, Facets: 4},
		deflection.ControlPoint{WidthMm: 10, Slenderness: 120, Facets: 3},
	)
	settings := deflection.NewSettings(deflection.WithCustomStrategy(lattice))

	lengths := []float64{60, 120, 300, 600, 1200}
	var prevLinear, prevAngular float64
	for i, length := range lengths {
		shape := squareProfileExtrusion(length)
		linear, angular := p.Evaluate(shape, settings)

		if i > 0 {
			require.GreaterOrEqual(t, linear, prevLinear-1e-12)
			require.GreaterOrEqual(t, angular, prevAngular-1e-12)
		}
		prevLinear, prevAngular = linear, angular
	}
}

// TestScenario_NeverFinerThanDefaults covers the "only ever coarsens" half
// of the monotonicity property: a caller-supplied default coarser than what
// the computed tolerance would be is never overridden downward.
func TestScenario_NeverFinerThanDefaults(t *testing.T) {
	p := deflection.NewPolicy()
	shape := squareProfileExtrusion(300)
	shape.DefaultLinearDeflection = 1000
	shape.DefaultAngularDeflection = 1000

	linear, angular := p.Evaluate(shape, deflection.DefaultSettings())
	require.Equal(t, 1000.0, linear)
	require.Equal(t, 1000.0, angular)
}
