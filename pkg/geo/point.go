package geo

import "math"

// Point2D is a point on the map canvas. Y grows downward, matching SVG.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point2D) Rotate(angle float64) Point2D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point2D{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}
