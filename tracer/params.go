package tracer

// Params is the tracer's enumerated configuration. All fields have
// production-tested defaults (DefaultParams); callers typically start
// from those and adjust only what they need.
//
// Precondition: the tracer assumes bright fringes on a dark background.
// measureWidth's ridge-extent test (avgIntensity > 0.8*center) is only
// meaningful under that assumption; an inverted (dark-on-bright) image
// must be photometrically inverted by the caller before tracing
// (spec.md §9 open question — bright-on-dark is the chosen convention).
type Params struct {
	// InitialWidth is the width hypothesis used before the first real
	// measurement; it bounds the search radius of the first measureWidth
	// call (via the W/2 step cap) before curWidth has a measured value.
	InitialWidth float64 `yaml:"initial_width"`
	// MaxWidthChange is the factor clamp between successive measured
	// widths: a new measurement may not differ from the previous curWidth
	// by more than this factor in either direction.
	MaxWidthChange float64 `yaml:"max_width_change"`
	// IntensityThreshold is the ratio of the seed (or current) average
	// below which a ridge search is considered to have failed.
	IntensityThreshold float64 `yaml:"intensity_threshold"`
	// MaxSteps caps the number of emitted points per direction.
	MaxSteps int `yaml:"max_steps"`
	// Bidirectional also traces backward from the seed when true.
	Bidirectional bool `yaml:"bidirectional"`
	// CurvatureCoeff is a reserved knob: read into Params, never consumed
	// by the walk (spec.md §9 "unused curvature coefficient" — kept for
	// API stability with the original configuration surface).
	CurvatureCoeff float64 `yaml:"curvature_coeff"`
}

// DefaultParams returns the production-tested default configuration.
func DefaultParams() Params {
	return Params{
		InitialWidth:       20.0,
		MaxWidthChange:     1.5,
		IntensityThreshold: 0.5,
		MaxSteps:           200,
		Bidirectional:      true,
		CurvatureCoeff:     1.5,
	}
}
