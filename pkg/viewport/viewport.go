// Package viewport owns the map camera: a pan offset and zoom scale that are
// moved by drag and wheel gestures, and animated toward framing targets when
// the selection changes.
package viewport

import (
	"math"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

// Viewport is the pan+zoom transform applied to the scene. A canvas point p is
// drawn at screen position (p + Pan) × Scale.
type Viewport struct {
	Pan   geo.Point2D `json:"pan"`
	Scale float64     `json:"scale"`
}

// Identity returns the untransformed viewport.
func Identity() Viewport {
	return Viewport{Scale: 1}
}

// IsIdentity reports whether v is within tol of the identity transform.
func (v Viewport) IsIdentity(tol float64) bool {
	return math.Abs(v.Pan.X) <= tol && math.Abs(v.Pan.Y) <= tol && math.Abs(v.Scale-1) <= tol
}

// ToScreen maps a canvas point to the screen.
func (v Viewport) ToScreen(p geo.Point2D) geo.Point2D {
	return p.Add(v.Pan).Scale(v.Scale)
}

// ToCanvas maps a screen point back to the canvas.
func (v Viewport) ToCanvas(s geo.Point2D) geo.Point2D {
	return s.Scale(1 / v.Scale).Sub(v.Pan)
}

// TransformRect maps a canvas rectangle to the screen.
func (v Viewport) TransformRect(r geo.Rect) geo.Rect {
	return geo.Rect{Min: v.ToScreen(r.Min), Max: v.ToScreen(r.Max)}
}

// centerOn returns the viewport at scale s that puts canvas point c at the
// middle of a w×h screen.
func centerOn(c geo.Point2D, s, w, h float64) Viewport {
	return Viewport{
		Pan:   geo.Pt(w/(2*s)-c.X, h/(2*s)-c.Y),
		Scale: s,
	}
}
