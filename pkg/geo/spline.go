package geo

import (
	"fmt"
	"strings"
)

// DefaultTension is the Catmull-Rom tension used for coastlines.
const DefaultTension = 0.5

// Op identifies a path drawing command.
type Op byte

const (
	OpMove  Op = 'M'
	OpCubic Op = 'C'
	OpClose Op = 'Z'
)

// PathCommand is a single drawing instruction. C1 and C2 are only meaningful
// for OpCubic; To is unused for OpClose.
type PathCommand struct {
	Op Op      `json:"op"`
	C1 Point2D `json:"c1,omitempty"`
	C2 Point2D `json:"c2,omitempty"`
	To Point2D `json:"to,omitempty"`
}

// Path is a sequence of move, cubic and close commands, equivalent to SVG
// path data restricted to M, C and Z.
type Path struct {
	Commands []PathCommand `json:"commands"`
}

// IsEmpty reports whether the path draws nothing.
func (p Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Closed reports whether the path ends with a close command.
func (p Path) Closed() bool {
	n := len(p.Commands)
	return n > 0 && p.Commands[n-1].Op == OpClose
}

// Start returns the point of the initial move command.
func (p Path) Start() Point2D {
	if len(p.Commands) == 0 {
		return Point2D{}
	}
	return p.Commands[0].To
}

// End returns the last point reached by a drawing command.
func (p Path) End() Point2D {
	for i := len(p.Commands) - 1; i >= 0; i-- {
		if p.Commands[i].Op != OpClose {
			return p.Commands[i].To
		}
	}
	return Point2D{}
}

// Segments returns the number of cubic segments.
func (p Path) Segments() int {
	n := 0
	for _, c := range p.Commands {
		if c.Op == OpCubic {
			n++
		}
	}
	return n
}

// String renders the path as SVG path data with one decimal place.
func (p Path) String() string {
	parts := make([]string, 0, len(p.Commands))
	for _, c := range p.Commands {
		switch c.Op {
		case OpMove:
			parts = append(parts, fmt.Sprintf("M %.1f %.1f", c.To.X, c.To.Y))
		case OpCubic:
			parts = append(parts, fmt.Sprintf("C %.1f %.1f, %.1f %.1f, %.1f %.1f",
				c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.To.X, c.To.Y))
		case OpClose:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// Flatten samples every cubic segment at samplesPerCurve points and returns
// the resulting outline as a polygon. The closing duplicate of a closed path
// is dropped.
func (p Path) Flatten(samplesPerCurve int) Polygon {
	if samplesPerCurve < 1 {
		samplesPerCurve = 1
	}
	var pts []Point2D
	var cur Point2D
	for _, c := range p.Commands {
		switch c.Op {
		case OpMove:
			cur = c.To
			pts = append(pts, cur)
		case OpCubic:
			for j := 1; j <= samplesPerCurve; j++ {
				t := float64(j) / float64(samplesPerCurve)
				pts = append(pts, cubicPoint(cur, c.C1, c.C2, c.To, t))
			}
			cur = c.To
		}
	}
	if p.Closed() && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) < 1e-9 {
		pts = pts[:len(pts)-1]
	}
	return Polygon{Vertices: pts}
}

// Translate returns the path moved by d.
func (p Path) Translate(d Point2D) Path {
	out := make([]PathCommand, len(p.Commands))
	for i, c := range p.Commands {
		if c.Op != OpClose {
			c.C1 = c.C1.Add(d)
			c.C2 = c.C2.Add(d)
			c.To = c.To.Add(d)
		}
		out[i] = c
	}
	return Path{Commands: out}
}

// SmoothPath converts points into a Catmull-Rom curve expressed as cubic
// Bezier segments. A closed path emits one segment per point and ends exactly
// where it starts; an open path spans the first to the last point using
// reflected phantom endpoints. Fewer than two points yield an empty path.
func SmoothPath(pts []Point2D, closed bool, tension float64) Path {
	n := len(pts)
	if n < 2 {
		return Path{}
	}

	var q []Point2D
	var first, last int
	if closed {
		// Wrap the first three points so every point gets a full window.
		q = make([]Point2D, 0, n+3)
		q = append(q, pts...)
		for k := 0; k < 3; k++ {
			q = append(q, pts[k%n])
		}
		first, last = 1, n
	} else {
		q = make([]Point2D, 0, n+2)
		q = append(q, pts[0].Add(pts[0].Sub(pts[1])))
		q = append(q, pts...)
		q = append(q, pts[n-1].Add(pts[n-1].Sub(pts[n-2])))
		first, last = 1, n-1
	}

	cmds := make([]PathCommand, 0, last-first+3)
	cmds = append(cmds, PathCommand{Op: OpMove, To: q[first]})
	for i := first; i <= last; i++ {
		p0, p1, p2, p3 := q[i-1], q[i], q[i+1], q[i+2]
		cmds = append(cmds, PathCommand{
			Op: OpCubic,
			C1: p1.Add(p2.Sub(p0).Scale(tension / 6)),
			C2: p2.Sub(p3.Sub(p1).Scale(tension / 6)),
			To: p2,
		})
	}
	if closed {
		cmds = append(cmds, PathCommand{Op: OpClose})
	}
	return Path{Commands: cmds}
}

// cubicPoint evaluates a cubic Bezier at t.
func cubicPoint(p0, c1, c2, p1 Point2D, t float64) Point2D {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point2D{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}
