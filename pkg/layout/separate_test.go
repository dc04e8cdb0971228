package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

func shifted(boxes []geo.Rect, r Result) []geo.Rect {
	out := make([]geo.Rect, len(boxes))
	for i, b := range boxes {
		out[i] = b.Translate(r.Displacements[i])
	}
	return out
}

func TestSeparateTwoUnitBoxes(t *testing.T) {
	boxes := []geo.Rect{
		geo.RectXYWH(0, 0, 1, 1),
		geo.RectXYWH(0.5, 0.5, 1, 1),
	}
	r := Separate(boxes, Options{Gap: 10, MaxIterations: 40})

	require.True(t, r.Converged)
	assert.Empty(t, r.Residual)
	assert.LessOrEqual(t, r.Iterations, 40)

	out := shifted(boxes, r)
	ox, oy := out[0].Expand(10).Overlap(out[1])
	assert.False(t, ox > overlapTolerance && oy > overlapTolerance,
		"boxes still within gap: overlap (%f,%f)", ox, oy)
}

func TestSeparateSymmetricPush(t *testing.T) {
	boxes := []geo.Rect{
		geo.RectXYWH(0, 0, 100, 10),
		geo.RectXYWH(0, 5, 100, 10),
	}
	r := Separate(boxes, Options{Gap: 0, MaxIterations: 40})

	// Least penetration is vertical; pushes are equal and opposite.
	assert.InDelta(t, 0, r.Displacements[0].X, 1e-12)
	assert.InDelta(t, 0, r.Displacements[1].X, 1e-12)
	assert.InDelta(t, -r.Displacements[0].Y, r.Displacements[1].Y, 1e-12)
	assert.Less(t, r.Displacements[0].Y, 0.0, "upper box moves up")
}

func TestSeparateDisjointUntouched(t *testing.T) {
	boxes := []geo.Rect{
		geo.RectXYWH(0, 0, 10, 10),
		geo.RectXYWH(100, 100, 10, 10),
	}
	r := Separate(boxes, DefaultOptions())
	assert.True(t, r.Converged)
	assert.Equal(t, 1, r.Iterations)
	assert.Equal(t, geo.Point2D{}, r.Displacements[0])
	assert.Equal(t, geo.Point2D{}, r.Displacements[1])
}

func TestSeparateClusterConverges(t *testing.T) {
	var boxes []geo.Rect
	for i := 0; i < 5; i++ {
		boxes = append(boxes, geo.RectXYWH(float64(i)*20, float64(i%2)*15, 60, 40))
	}
	r := Separate(boxes, Options{Gap: 10, MaxIterations: 200})
	require.True(t, r.Converged)

	out := shifted(boxes, r)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			ox, oy := out[i].Expand(10).Overlap(out[j])
			assert.False(t, ox > overlapTolerance && oy > overlapTolerance, "pair %d,%d", i, j)
		}
	}
}

func TestSeparateIterationCapReportsResidual(t *testing.T) {
	// Three stacked boxes: resolving one pair pushes another back into contact.
	boxes := []geo.Rect{
		geo.RectXYWH(0, 0, 100, 100),
		geo.RectXYWH(10, 10, 100, 100),
		geo.RectXYWH(20, 20, 100, 100),
	}
	r := Separate(boxes, Options{Gap: 10, MaxIterations: 1})
	assert.Equal(t, 1, r.Iterations)
	assert.False(t, r.Converged)
	require.NotEmpty(t, r.Residual)
	for _, o := range r.Residual {
		assert.Less(t, o.A, o.B)
		assert.Greater(t, o.X, 0.0)
		assert.Greater(t, o.Y, 0.0)
	}
}

func TestSeparateDoesNotModifyInput(t *testing.T) {
	boxes := []geo.Rect{geo.RectXYWH(0, 0, 10, 10), geo.RectXYWH(5, 5, 10, 10)}
	orig := append([]geo.Rect(nil), boxes...)
	Separate(boxes, DefaultOptions())
	assert.Equal(t, orig, boxes)
}
