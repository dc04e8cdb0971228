package geo

import "math"

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// RectXYWH builds a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point2D {
	return MidPoint(r.Min, r.Max)
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point2D) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Min: Pt(r.Min.X-pad, r.Min.Y-pad),
		Max: Pt(r.Max.X+pad, r.Max.Y+pad),
	}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies fully inside r, with tol slack.
func (r Rect) ContainsRect(o Rect, tol float64) bool {
	return o.Min.X >= r.Min.X-tol && o.Min.Y >= r.Min.Y-tol &&
		o.Max.X <= r.Max.X+tol && o.Max.Y <= r.Max.Y+tol
}

// Overlap returns the penetration depth of r and o along each axis.
// A non-positive value on either axis means the rectangles are disjoint.
func (r Rect) Overlap(o Rect) (float64, float64) {
	ox := math.Min(r.Max.X, o.Max.X) - math.Max(r.Min.X, o.Min.X)
	oy := math.Min(r.Max.Y, o.Max.Y) - math.Max(r.Min.Y, o.Min.Y)
	return ox, oy
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: Pt(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}
