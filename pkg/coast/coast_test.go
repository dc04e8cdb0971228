package coast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

func auroraParams() Params {
	return Params{
		Center:       geo.Pt(180, 245),
		RX:           110,
		RY:           72,
		Rotation:     -0.2,
		Seed:         11,
		Detail:       72,
		Irregularity: 0.09,
		Lobes:        5,
		Jaggedness:   0.35,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []uint32{0, 1, 11, 22, 33, 44, 55, 0xffffffff} {
		p := auroraParams()
		p.Seed = seed
		a := Generate(p)
		b := Generate(p)
		require.Equal(t, a.Points, b.Points, "seed %d", seed)
		require.Equal(t, a.Outline.String(), b.Outline.String(), "seed %d", seed)
	}
}

func TestGenerateSeedChangesShape(t *testing.T) {
	a := auroraParams()
	b := auroraParams()
	b.Seed = 12
	assert.NotEqual(t, Generate(a).Points, Generate(b).Points)
}

func TestGeneratePointCountAndClosure(t *testing.T) {
	s := Generate(auroraParams())
	require.Len(t, s.Points, 72)
	assert.True(t, s.Outline.Closed())
	assert.Equal(t, 72, s.Outline.Segments())
	assert.InDelta(t, 0, s.Outline.Start().Distance(s.Outline.End()), 1e-9)
}

func TestGenerateCentroidInsideBounds(t *testing.T) {
	for seed := uint32(1); seed <= 200; seed++ {
		p := auroraParams()
		p.Seed = seed
		s := Generate(p)
		require.True(t, s.Bounds.Contains(s.Centroid),
			"seed %d centroid %v outside %v", seed, s.Centroid, s.Bounds)
	}
}

func TestGenerateStaysNearEllipse(t *testing.T) {
	p := auroraParams()
	s := Generate(p)
	// Worst case multiplier: harmonics 0.6·irr, jitter 0.5·irr·jag·0.35 and
	// every bulge at full 0.9·irr.
	maxDev := p.Irregularity * (0.6 + 0.5*p.Jaggedness*0.35 + float64(p.Lobes)*0.9)
	for i, pt := range s.Points {
		d := pt.Sub(p.Center)
		r := math.Hypot(d.X/p.RX, d.Y/p.RY)
		require.InDelta(t, 1, r, maxDev+1e-9, "point %d", i)
	}
}

func TestGenerateZeroIrregularityIsEllipse(t *testing.T) {
	p := auroraParams()
	p.Irregularity = 0
	p.Rotation = 0
	s := Generate(p)
	assert.InDelta(t, p.Center.X-p.RX, s.Bounds.Min.X, 1e-9)
	assert.InDelta(t, p.Center.X+p.RX, s.Bounds.Max.X, 1e-9)
	assert.InDelta(t, p.Center.X, s.Centroid.X, 1e-6)
	assert.InDelta(t, p.Center.Y, s.Centroid.Y, 1e-6)
}

func TestAngularDistanceWraps(t *testing.T) {
	assert.InDelta(t, 0.2, angularDistance(0.1, 2*math.Pi-0.1), 1e-12)
	assert.InDelta(t, math.Pi, angularDistance(0, math.Pi), 1e-12)
}
