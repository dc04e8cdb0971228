package geo

import (
	"math"
	"strings"
	"testing"
)

func TestSmoothPathClosedLoop(t *testing.T) {
	// Square waypoints.
	pts := []Point2D{Pt(100, 0), Pt(0, 100), Pt(-100, 0), Pt(0, -100)}
	path := SmoothPath(pts, true, DefaultTension)

	if !path.Closed() {
		t.Fatal("expected closed path to end with Z")
	}
	if path.Segments() != len(pts) {
		t.Errorf("expected %d cubic segments, got %d", len(pts), path.Segments())
	}
	if path.Start().Distance(path.End()) > 1e-9 {
		t.Errorf("closed path not closed: start=%v end=%v", path.Start(), path.End())
	}
}

func TestSmoothPathPassesThroughPoints(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(50, -20), Pt(100, 0), Pt(80, 60), Pt(20, 60)}
	path := SmoothPath(pts, true, DefaultTension)

	reached := make(map[Point2D]bool)
	for _, c := range path.Commands {
		if c.Op != OpClose {
			reached[c.To] = true
		}
	}
	for i, p := range pts {
		if !reached[p] {
			t.Errorf("point %d %v is not a segment endpoint", i, p)
		}
	}
}

func TestSmoothPathControlPointsUseTension(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(60, 0), Pt(60, 60), Pt(0, 60)}
	path := SmoothPath(pts, true, 0.5)

	// Second command runs from pts[1] to pts[2] with window pts[0..3].
	c := path.Commands[1]
	wantC1 := pts[1].Add(pts[2].Sub(pts[0]).Scale(0.5 / 6))
	wantC2 := pts[2].Sub(pts[3].Sub(pts[1]).Scale(0.5 / 6))
	if c.C1.Distance(wantC1) > 1e-9 || c.C2.Distance(wantC2) > 1e-9 {
		t.Errorf("control points = %v %v, want %v %v", c.C1, c.C2, wantC1, wantC2)
	}
}

func TestSmoothPathOpenSpansEndpoints(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(100, 0), Pt(200, 100), Pt(300, 100)}
	path := SmoothPath(pts, false, DefaultTension)

	if path.Closed() {
		t.Error("open path should not be closed")
	}
	if path.Start() != pts[0] {
		t.Errorf("open path start = %v, want %v", path.Start(), pts[0])
	}
	if path.End() != pts[3] {
		t.Errorf("open path end = %v, want %v", path.End(), pts[3])
	}
	if path.Segments() != 3 {
		t.Errorf("expected 3 segments, got %d", path.Segments())
	}
}

func TestSmoothPathDegenerate(t *testing.T) {
	if !SmoothPath(nil, true, DefaultTension).IsEmpty() {
		t.Error("expected empty path for no points")
	}
	if !SmoothPath([]Point2D{Pt(1, 1)}, true, DefaultTension).IsEmpty() {
		t.Error("expected empty path for a single point")
	}
	two := SmoothPath([]Point2D{Pt(0, 0), Pt(10, 0)}, true, DefaultTension)
	if two.Start().Distance(two.End()) > 1e-9 {
		t.Errorf("two-point closed path not closed: %v -> %v", two.Start(), two.End())
	}
}

func TestPathString(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	d := SmoothPath(pts, true, DefaultTension).String()
	if !strings.HasPrefix(d, "M 10.0 0.0 C ") {
		t.Errorf("unexpected path prefix: %q", d)
	}
	if !strings.HasSuffix(d, " Z") {
		t.Errorf("expected path to end with Z: %q", d)
	}
}

func TestPathFlattenApproximatesCircle(t *testing.T) {
	path := SmoothPath(circlePoints(100, 64), true, 1.0)
	flat := path.Flatten(8)

	if flat.Len() != 64*8 {
		t.Fatalf("expected %d flattened points, got %d", 64*8, flat.Len())
	}
	expected := math.Pi * 100 * 100
	if !approxEqual(flat.Area(), expected, expected*0.01) {
		t.Errorf("flattened area %f, expected ~%f", flat.Area(), expected)
	}
}

func TestPathTranslate(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	path := SmoothPath(pts, true, DefaultTension)
	moved := path.Translate(Pt(5, -5))
	if moved.Start().Distance(path.Start().Add(Pt(5, -5))) > 1e-9 {
		t.Errorf("translated start = %v", moved.Start())
	}
	if !moved.Closed() {
		t.Error("translate should keep the close command")
	}
}

// circlePoints samples n points on a circle of radius r around the origin.
func circlePoints(r float64, n int) []Point2D {
	pts := make([]Point2D, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}
