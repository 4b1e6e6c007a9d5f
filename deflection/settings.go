package deflection

import (
	"fmt"
	"math"
)

// Settings bundles every tunable of the deflection policy. Build one with
// NewSettings and functional options, or via the ForTargetFacetCount
// convenience constructor.
type Settings struct {
	BaselineSectionWidthMm      float64
	MinimumPerimeterFacets      int
	MaximumPerimeterFacets      int
	CriticalSlenderness         float64
	MaxLinearDeflectionRatio    float64
	MaxAngularDeflectionRadians float64
	CustomStrategy              *Lattice
}

// Option configures a Settings value. Mirrors this module's functional-
// options convention (an Option func(*Settings) applied over a defaulted
// struct), generalized from the reference graph/algorithm Option types.
type Option func(*Settings)

// DefaultSettings returns the baseline defaults: baseline 20mm, 3..1000
// perimeter facets, critical slenderness 5.0, max linear ratio 1.5, max
// angular deflection 1.5π radians, no custom lattice.
func DefaultSettings() Settings {
	return Settings{
		BaselineSectionWidthMm:      20.0,
		MinimumPerimeterFacets:      3,
		MaximumPerimeterFacets:      1000,
		CriticalSlenderness:         5.0,
		MaxLinearDeflectionRatio:    1.5,
		MaxAngularDeflectionRadians: 1.5 * math.Pi,
	}
}

// NewSettings applies opts over DefaultSettings.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithBaselineSectionWidthMm sets the section width, in millimetres, at
// which the facet-count formula yields exactly MinimumPerimeterFacets.
// Panics if width is not positive.
func WithBaselineSectionWidthMm(mm float64) Option {
	return func(s *Settings) {
		if mm <= 0 {
			panic(fmt.Sprintf("deflection: baseline section width must be positive, got %v", mm))
		}
		s.BaselineSectionWidthMm = mm
	}
}

// WithMinimumPerimeterFacets sets the lower clamp bound (and formula
// multiplier) for the target facet count. Panics if facets < 3.
func WithMinimumPerimeterFacets(facets int) Option {
	return func(s *Settings) {
		if facets < 3 {
			panic(fmt.Sprintf("deflection: minimum perimeter facets must be >= 3, got %d", facets))
		}
		s.MinimumPerimeterFacets = facets
	}
}

// WithMaximumPerimeterFacets sets the upper clamp bound for the target
// facet count. Panics if facets < 3.
func WithMaximumPerimeterFacets(facets int) Option {
	return func(s *Settings) {
		if facets < 3 {
			panic(fmt.Sprintf("deflection: maximum perimeter facets must be >= 3, got %d", facets))
		}
		s.MaximumPerimeterFacets = facets
	}
}

// WithCriticalSlenderness sets the slenderness threshold below which
// Evaluate returns the caller's defaults unchanged. Panics if not positive.
func WithCriticalSlenderness(v float64) Option {
	return func(s *Settings) {
		if v <= 0 {
			panic(fmt.Sprintf("deflection: critical slenderness must be positive, got %v", v))
		}
		s.CriticalSlenderness = v
	}
}

// WithMaxLinearDeflectionRatio sets the factor bounding linear deflection
// to r*ratio, where r is half the minimum section dimension. Panics if not
// positive.
func WithMaxLinearDeflectionRatio(ratio float64) Option {
	return func(s *Settings) {
		if ratio <= 0 {
			panic(fmt.Sprintf("deflection: max linear deflection ratio must be positive, got %v", ratio))
		}
		s.MaxLinearDeflectionRatio = ratio
	}
}

// WithMaxAngularDeflectionRadians sets the hard upper bound on the
// returned angular tolerance. Panics if not positive.
func WithMaxAngularDeflectionRadians(radians float64) Option {
	return func(s *Settings) {
		if radians <= 0 {
			panic(fmt.Sprintf("deflection: max angular deflection must be positive, got %v", radians))
		}
		s.MaxAngularDeflectionRadians = radians
	}
}

// WithCustomStrategy attaches a control-point lattice; Evaluate queries it
// for the target facet count in step 4 instead of using the
// baseline-width formula.
func WithCustomStrategy(lattice *Lattice) Option {
	return func(s *Settings) {
		s.CustomStrategy = lattice
	}
}

// ForTargetFacetCount is a convenience constructor: it returns Settings
// tuned so that a section exactly at baselineMm wide produces target
// facets, with maxFacets and criticalSlenderness defaulted to 1000 and 10
// respectively unless overridden by opts. Panics if target < 3, baselineMm
// is not positive, or (after opts are applied) maxFacets < target or
// criticalSlenderness <= 0.
func ForTargetFacetCount(target int, baselineMm float64, opts ...Option) Settings {
	if target < 3 {
		panic(fmt.Sprintf("deflection: target facet count must be >= 3, got %d", target))
	}
	if baselineMm <= 0 {
		panic(fmt.Sprintf("deflection: baseline section width must be positive, got %v", baselineMm))
	}

	s := DefaultSettings()
	s.BaselineSectionWidthMm = baselineMm
	s.MinimumPerimeterFacets = target
	s.MaximumPerimeterFacets = 1000
	s.CriticalSlenderness = 10

	for _, opt := range opts {
		opt(&s)
	}

	if s.MaximumPerimeterFacets < s.MinimumPerimeterFacets {
		panic(fmt.Sprintf("deflection: maximum perimeter facets (%d) must be >= target (%d)", s.MaximumPerimeterFacets, target))
	}

	return s
}
