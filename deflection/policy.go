package deflection

import (
	"math"
	"sync"
)

// Policy evaluates the dynamic-deflection procedure: given a swept solid's
// cross-section and sweep length, it derives linear and angular
// tessellation tolerances. The zero value is not usable; construct with
// NewPolicy.
//
// Policy is safe for concurrent use: its two caches are each guarded by
// their own mutex, following this module's convention of one lock per
// independently-contended piece of state rather than one coarse lock for
// the whole type.
type Policy struct {
	muCurveBBox sync.Mutex
	curveBBox   map[string][2]float64 // curve id -> (width, height)

	muCurveLen sync.Mutex
	curveLen   map[string]float64 // curve id -> arc length
}

// NewPolicy returns a ready-to-use Policy with empty caches.
func NewPolicy() *Policy {
	return &Policy{
		curveBBox: make(map[string][2]float64),
		curveLen:  make(map[string]float64),
	}
}

// Evaluate runs the full dynamic-deflection procedure for shape under
// settings and returns the (linear, angular) tolerance pair, never finer
// than shape's declared defaults.
func (p *Policy) Evaluate(shape Shape, settings Settings) (linear, angular float64) {
	width, height := p.sectionDims(shape)
	sweepLen := p.sweepLength(shape, width, height)

	minDim := math.Min(width, height)
	if minDim <= 0 {
		return shape.DefaultLinearDeflection, shape.DefaultAngularDeflection
	}

	slenderness := sweepLen / minDim
	if slenderness < settings.CriticalSlenderness {
		return shape.DefaultLinearDeflection, shape.DefaultAngularDeflection
	}

	modelUnitMm := shape.ModelUnitMm
	if modelUnitMm <= 0 {
		modelUnitMm = 1
	}
	minDimMm := minDim * modelUnitMm

	var target float64
	if settings.CustomStrategy != nil {
		target = settings.CustomStrategy.Query(minDimMm, slenderness)
	} else {
		target = float64(settings.MinimumPerimeterFacets) * (minDimMm / settings.BaselineSectionWidthMm)
	}

	target = clamp(target, float64(settings.MinimumPerimeterFacets), float64(settings.MaximumPerimeterFacets))

	r := minDim / 2
	angular = 4 * math.Pi / target
	linear = r * (1 - math.Cos(angular/2))

	linear = math.Min(linear, r*settings.MaxLinearDeflectionRatio)
	angular = math.Min(angular, settings.MaxAngularDeflectionRadians)

	return math.Max(linear, shape.DefaultLinearDeflection), math.Max(angular, shape.DefaultAngularDeflection)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sectionDims returns the cross-section's (width, height) for the purpose
// of computing its slenderness against the sweep length.
func (p *Policy) sectionDims(shape Shape) (width, height float64) {
	if shape.Kind == SweepSweptDisk {
		return 2 * shape.Radius, 2 * shape.Radius
	}

	switch shape.Profile {
	case ProfileRectangle:
		return shape.XDim, shape.YDim
	case ProfileCircle:
		return 2 * shape.Radius, 2 * shape.Radius
	case ProfileEllipse:
		return 2 * shape.MajorAxis, 2 * shape.MinorAxis
	case ProfileParametricSection:
		return shape.FlangeWidth, shape.ProfileDepth
	case ProfileArbitraryClosedCurve:
		return p.cachedBoundingBox(shape)
	default:
		return shape.XDim, shape.YDim
	}
}

// cachedBoundingBox returns the outer curve's bounding-box width/height,
// computing it once per CurveID and caching the result.
func (p *Policy) cachedBoundingBox(shape Shape) (width, height float64) {
	p.muCurveBBox.Lock()
	defer p.muCurveBBox.Unlock()

	if wh, ok := p.curveBBox[shape.CurveID]; ok {
		return wh[0], wh[1]
	}

	width, height = shape.BoundingBoxWidth, shape.BoundingBoxHeight
	p.curveBBox[shape.CurveID] = [2]float64{width, height}

	return width, height
}

// sweepLength derives the sweep's length from its kind, falling back to
// the bounding-box diagonal of (width, height) when nothing more specific
// is known.
func (p *Policy) sweepLength(shape Shape, width, height float64) float64 {
	switch shape.Kind {
	case SweepExtrusion:
		return shape.ExtrusionDepth
	case SweepRevolution:
		return shape.RevolutionRadius * math.Abs(shape.RevolutionAngle)
	case SweepSurfaceCurve, SweepFixedReference:
		return math.Abs(shape.TrimParameterSpan)
	case SweepSweptDisk:
		if shape.TrimParameterSpan != 0 {
			return math.Abs(shape.TrimParameterSpan)
		}
		return p.cachedArcLength(shape)
	default:
		return math.Hypot(width, height)
	}
}

// cachedArcLength returns the sweep directrix's arc length, computing it
// once per CurveID and caching the result.
func (p *Policy) cachedArcLength(shape Shape) float64 {
	p.muCurveLen.Lock()
	defer p.muCurveLen.Unlock()

	if l, ok := p.curveLen[shape.CurveID]; ok {
		return l
	}

	p.curveLen[shape.CurveID] = shape.DirectrixArcLength

	return shape.DirectrixArcLength
}
