package render

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// samplesPerCurve is how finely coastline curves are flattened for export.
const samplesPerCurve = 4

// FeatureCollection exports the atlas in canvas coordinates: one polygon per
// region (shifted, curves flattened) and a point for the capital.
func FeatureCollection(a *atlas.Atlas) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range a.Regions() {
		ring := r.Shape.Outline.Translate(r.Displacement).Flatten(samplesPerCurve)
		f := geojson.NewPolygonFeature([][][]float64{closedRing(ring)})
		f.ID = r.ID
		f.SetProperty("kind", "region")
		f.SetProperty("name", r.Name)
		f.SetProperty("capital", r.Capital)
		f.SetProperty("role", r.Role)
		f.SetProperty("seed", r.Seed)
		f.SetProperty("population", r.Population.Population)
		f.SetProperty("share", r.Population.Share)
		f.SetProperty("label", []float64{r.Label.X, r.Label.Y})
		f.BoundingBox = []float64{r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y}
		fc.AddFeature(f)
	}

	c := a.Capital()
	f := geojson.NewPointFeature([]float64{c.Point.X, c.Point.Y})
	f.ID = viewport.CapitalValue
	f.SetProperty("kind", "capital")
	f.SetProperty("name", c.Name)
	fc.AddFeature(f)
	return fc
}

// GeoJSON returns the encoded feature collection.
func GeoJSON(a *atlas.Atlas) ([]byte, error) {
	return FeatureCollection(a).MarshalJSON()
}

// closedRing converts a polygon to a GeoJSON linear ring, repeating the first
// vertex at the end.
func closedRing(p geo.Polygon) [][]float64 {
	ring := make([][]float64, 0, p.Len()+1)
	for _, v := range p.Vertices {
		ring = append(ring, []float64{v.X, v.Y})
	}
	if p.Len() > 0 {
		first := p.Vertices[0]
		ring = append(ring, []float64{first.X, first.Y})
	}
	return ring
}
