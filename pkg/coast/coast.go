// Package coast synthesizes organic island outlines from a seed: an ellipse
// whose radius is perturbed by two sine harmonics, per-sample jitter and a set
// of Gaussian bulges (peninsulas and bays).
package coast

import (
	"math"

	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/noise"
)

// Params describes one island. All fields are static configuration.
type Params struct {
	Center       geo.Point2D
	RX, RY       float64
	Rotation     float64 // radians
	Seed         uint32
	Detail       int     // number of outline samples
	Irregularity float64 // overall radius perturbation, ~0–0.12
	Lobes        int     // number of bulges
	Jaggedness   float64 // per-sample jitter, ~0–0.4
}

// Shape is a generated outline with its derived geometry.
type Shape struct {
	Points   []geo.Point2D `json:"points"`
	Outline  geo.Path      `json:"-"`
	Bounds   geo.Rect      `json:"bounds"`
	Centroid geo.Point2D   `json:"centroid"`
}

// Polygon returns the sampled outline as a polygon.
func (s Shape) Polygon() geo.Polygon {
	return geo.NewPolygon(s.Points...)
}

// bulge is a localized radius change centered on angle theta.
type bulge struct {
	theta float64
	amp   float64
	width float64
}

// Generate samples the outline described by p. It is a pure function of p.
// Detail below 3 is not defended here; catalog validation rejects it.
func Generate(p Params) Shape {
	rnd := noise.New(p.Seed)

	// Draw order is part of the output contract.
	k1 := 2 + math.Floor(rnd.Next()*2)
	k2 := 5 + math.Floor(rnd.Next()*3)
	p1 := rnd.Next() * 2 * math.Pi
	p2 := rnd.Next() * 2 * math.Pi

	bulges := make([]bulge, p.Lobes)
	for i := range bulges {
		bulges[i] = bulge{
			theta: rnd.Next() * 2 * math.Pi,
			amp:   (rnd.Next()*2 - 1) * p.Irregularity * 0.9,
			width: 0.22 + rnd.Next()*0.35,
		}
	}

	pts := make([]geo.Point2D, 0, p.Detail)
	for i := 0; i < p.Detail; i++ {
		t := float64(i) / float64(p.Detail) * 2 * math.Pi
		a := t + p.Rotation

		m := 1 +
			p.Irregularity*(0.35*math.Sin(k1*t+p1)+0.25*math.Sin(k2*t+p2)) +
			(rnd.Next()-0.5)*p.Irregularity*p.Jaggedness*0.35

		for _, b := range bulges {
			d := angularDistance(t, b.theta)
			m += b.amp * math.Exp(-(d*d)/(2*b.width*b.width))
		}

		pts = append(pts, geo.Point2D{
			X: p.Center.X + math.Cos(a)*p.RX*m,
			Y: p.Center.Y + math.Sin(a)*p.RY*m,
		})
	}

	poly := geo.NewPolygon(pts...)
	return Shape{
		Points:   pts,
		Outline:  geo.SmoothPath(pts, true, geo.DefaultTension),
		Bounds:   poly.BoundingBox(),
		Centroid: poly.Centroid(),
	}
}

// angularDistance returns the shortest distance between two angles in
// [0, 2π), wrapping around the full turn.
func angularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 2*math.Pi-d)
}
