package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/solaris/pkg/noise"
	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

func TestBuildDefaultCatalog(t *testing.T) {
	a, report := Build(spec.Default())
	require.NotNil(t, a, "report: %+v", report)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)

	require.Len(t, a.Regions(), 5)
	assert.Equal(t, []string{"aurora", "helios", "nova", "meridian", "umbra"}, ids(a))
	assert.Equal(t, "Solaria", a.Capital().Name)
}

func TestBuildIsDeterministic(t *testing.T) {
	a := MustBuild(spec.Default())
	b := MustBuild(spec.Default())
	for i, ra := range a.Regions() {
		rb := b.Regions()[i]
		assert.Equal(t, ra.Shape.Points, rb.Shape.Points, "region %s", ra.ID)
		assert.Equal(t, ra.Displacement, rb.Displacement, "region %s", ra.ID)
	}
}

func TestRegionGeometryIsShifted(t *testing.T) {
	a := MustBuild(spec.Default())
	for _, r := range a.Regions() {
		assert.Equal(t, r.Shape.Bounds.Translate(r.Displacement), r.Bounds, "region %s", r.ID)
		assert.True(t, r.Bounds.Contains(r.Centroid), "region %s centroid %v outside %v", r.ID, r.Centroid, r.Bounds)
		assert.Equal(t, r.Shape.Centroid.Add(r.Displacement), r.Centroid)
		assert.Len(t, r.Polygon().Vertices, len(r.Shape.Points))
	}
}

func TestLayoutSeparatesOrReports(t *testing.T) {
	a, report := Build(spec.Default())
	require.NotNil(t, a)
	gap := a.Catalog().Layout.Gap

	overlapping := 0
	regions := a.Regions()
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			ox, oy := regions[i].Bounds.Expand(gap).Overlap(regions[j].Bounds)
			if ox > 1e-6 && oy > 1e-6 {
				overlapping++
			}
		}
	}
	assert.Equal(t, overlapping, len(a.Layout().Residual))

	warnings := 0
	for _, w := range report.Warnings {
		if w.ConflictWith != "" {
			warnings++
		}
	}
	assert.Equal(t, overlapping, warnings)
}

func TestAuroraPopulation(t *testing.T) {
	a := MustBuild(spec.Default())
	r, ok := a.Region("aurora")
	require.True(t, ok)
	assert.Equal(t, 1_800_000, r.Population.Population)
	assert.InDelta(t, 18.0, r.Population.Share, 1e-9)
}

func TestSeedFallsBackToIDHash(t *testing.T) {
	cat := spec.Default()
	cat.Regions[0].Seed = nil
	a := MustBuild(cat)
	r, _ := a.Region(cat.Regions[0].ID)
	assert.Equal(t, noise.HashString(cat.Regions[0].ID), r.Seed)

	explicit, _ := MustBuild(spec.Default()).Region("helios")
	assert.Equal(t, uint32(22), explicit.Seed)
}

func TestBuildRejectsInvalidCatalog(t *testing.T) {
	cat := spec.Default()
	cat.Regions[1].ID = cat.Regions[0].ID

	a, report := Build(cat)
	assert.Nil(t, a)
	assert.False(t, report.Valid)
	assert.Error(t, report.Err())
	assert.Panics(t, func() { MustBuild(cat) })
}

func TestFramer(t *testing.T) {
	a := MustBuild(spec.Default())

	b, ok := a.RegionBounds("nova")
	require.True(t, ok)
	nova, _ := a.Region("nova")
	assert.Equal(t, nova.Bounds, b)

	_, ok = a.RegionBounds("atlantis")
	assert.False(t, ok)
	assert.Equal(t, a.Capital().Point, a.CapitalPoint())
}

func TestControllerUsesCatalogLimits(t *testing.T) {
	cat := spec.Default()
	cat.Viewport.MaxScale = 2.5
	a := MustBuild(cat)
	c := a.NewController()

	assert.Equal(t, 2.5, c.Limits().MaxScale)
	w, h := c.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	require.True(t, c.FrameRegion(viewport.Region("umbra")))
	assert.LessOrEqual(t, c.Target().Scale, cat.Viewport.RegionMaxScale)
}

func ids(a *Atlas) []string {
	out := make([]string, 0, len(a.Regions()))
	for _, r := range a.Regions() {
		out = append(out, r.ID)
	}
	return out
}

func TestBuildAcceptsOffTotalWeights(t *testing.T) {
	cat := spec.Default()
	cat.Regions[0].Weight = 17.5

	a, report := Build(cat)
	require.NotNil(t, a)
	assert.True(t, report.Valid)
	assert.NotEmpty(t, report.Warnings)
	aurora, ok := a.Region("aurora")
	require.True(t, ok)
	assert.Equal(t, 1_750_000, aurora.Population.Population)
}
