package geo

import "math"

// degenerateArea is the signed area below which a polygon is treated as flat.
const degenerateArea = 1e-6

// Polygon is a closed polygon defined by its vertices in order.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding in a Y-up frame; on the Y-down canvas
// the sign is flipped, which callers never rely on.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area-weighted centroid of the polygon.
// Degenerate polygons (near-zero area) fall back to the bounding-box midpoint.
func (p Polygon) Centroid() Point2D {
	if len(p.Vertices) == 0 {
		return Point2D{}
	}
	a := p.SignedArea()
	if math.Abs(a) < degenerateArea {
		return p.BoundingBox().Center()
	}
	n := len(p.Vertices)
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (p Polygon) BoundingBox() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	return Rect{Min: minP, Max: maxP}
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Point2D) Polygon {
	out := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(d)
	}
	return Polygon{Vertices: out}
}
