package viewport

import "math"

// Limits bounds zoom and parameterizes framing and gestures.
type Limits struct {
	MinScale        float64 // manual zoom lower bound
	MaxScale        float64 // manual zoom upper bound
	RegionMaxScale  float64 // framing bound for regions
	CapitalMaxScale float64 // framing bound for the capital
	RegionPadding   float64 // canvas units added around a region's box
	RegionFill      float64 // fraction of the canvas a framed region may occupy
	CapitalFill     float64
	CapitalExtent   float64 // side of the square framed around the capital
	DragThreshold   float64 // pointer travel, in canvas units, that makes a drag
	// WheelSensitivity scales the exponential wheel response:
	// factor = exp(-delta/100 × sensitivity).
	WheelSensitivity float64
}

// DefaultLimits returns the bounds used by the Imperium map.
func DefaultLimits() Limits {
	return Limits{
		MinScale:         0.6,
		MaxScale:         3.0,
		RegionMaxScale:   2.4,
		CapitalMaxScale:  2.2,
		RegionPadding:    30,
		RegionFill:       0.65,
		CapitalFill:      0.6,
		CapitalExtent:    26,
		DragThreshold:    2,
		WheelSensitivity: 0.1,
	}
}

// ClampScale bounds s to the manual zoom range.
func (l Limits) ClampScale(s float64) float64 {
	return math.Max(l.MinScale, math.Min(l.MaxScale, s))
}
