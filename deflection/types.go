package deflection

// ProfileKind classifies the cross-section of a swept solid — it decides
// how section width and height are derived in step 1 of Evaluate.
type ProfileKind int

const (
	// ProfileRectangle uses (XDim, YDim) directly as (width, height).
	ProfileRectangle ProfileKind = iota
	// ProfileCircle uses (2r, 2r).
	ProfileCircle
	// ProfileEllipse uses (2·a, 2·b).
	ProfileEllipse
	// ProfileParametricSection covers I/L/T/U/C shapes: (flange/overall
	// width, depth).
	ProfileParametricSection
	// ProfileArbitraryClosedCurve falls back to the bounding-box width and
	// height of the outer curve, computed once and cached by CurveID.
	ProfileArbitraryClosedCurve
)

// SweepKind classifies how the profile was swept into a solid — it decides
// how sweep length is derived in step 2 of Evaluate.
type SweepKind int

const (
	// SweepExtrusion: sweep length is the extrusion depth.
	SweepExtrusion SweepKind = iota
	// SweepRevolution: sweep length is radius × |angle|.
	SweepRevolution
	// SweepSurfaceCurve: sweep length is the absolute trim parameter span.
	SweepSurfaceCurve
	// SweepFixedReference: same as SweepSurfaceCurve, a different sweep
	// directrix kind with the same trim-span sweep-length rule.
	SweepFixedReference
	// SweepSweptDisk: sweep length is the explicit parameter span, or the
	// directrix arc length (cached by CurveID) if no span was given.
	SweepSweptDisk
)

// Shape bundles the deflection-policy input: a shape classified by swept
// kind and profile kind, its numeric attributes, the model's linear unit,
// and the caller's default tolerances.
//
// Only the fields relevant to Kind/Profile need be populated; Evaluate
// reads exactly the subset that combination requires.
type Shape struct {
	Kind    SweepKind
	Profile ProfileKind

	// Profile geometry, in model units. Interpreted per Profile:
	//   ProfileRectangle:            XDim, YDim
	//   ProfileCircle, SweepSweptDisk's disk: Radius
	//   ProfileEllipse:              MajorAxis (a), MinorAxis (b)
	//   ProfileParametricSection:    FlangeWidth, ProfileDepth
	XDim, YDim               float64
	Radius                   float64
	MajorAxis, MinorAxis     float64
	FlangeWidth, ProfileDepth float64

	// Sweep-length geometry, in model units / radians. Interpreted per Kind:
	//   SweepExtrusion:                     ExtrusionDepth
	//   SweepRevolution:                    RevolutionRadius, RevolutionAngle
	//   SweepSurfaceCurve/SweepFixedReference/SweepSweptDisk: TrimParameterSpan
	ExtrusionDepth     float64
	RevolutionRadius   float64
	RevolutionAngle    float64
	TrimParameterSpan  float64 // 0 means "not supplied"

	// CurveID identifies the underlying curve entity for caching. Required
	// when Profile == ProfileArbitraryClosedCurve, or when Kind ==
	// SweepSweptDisk and TrimParameterSpan is 0 (directrix arc length
	// fallback).
	CurveID string

	// BoundingBoxWidth/Height give the outer curve's bounding box, used for
	// ProfileArbitraryClosedCurve (computed by the caller once, cached here
	// by Policy per CurveID). The last-resort diagonal fallback for sweep
	// length uses the section's (width, height), which equal these fields
	// only for ProfileArbitraryClosedCurve.
	BoundingBoxWidth, BoundingBoxHeight float64

	// DirectrixArcLength is the arc length of the sweep directrix, used as
	// the SweepSweptDisk fallback when TrimParameterSpan is 0.
	DirectrixArcLength float64

	// ModelUnitMm converts a dimension in model units to millimetres — the
	// lattice and baseline-width comparisons in step 4 operate in mm.
	ModelUnitMm float64

	// DefaultLinearDeflection/DefaultAngularDeflection are the caller's
	// model-level tolerances; Evaluate never returns anything finer than
	// these.
	DefaultLinearDeflection  float64
	DefaultAngularDeflection float64
}
