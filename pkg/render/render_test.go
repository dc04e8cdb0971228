package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/scene"
	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

func testGraph(t *testing.T, st scene.State) (*atlas.Atlas, *scene.Graph) {
	t.Helper()
	a, report := atlas.Build(spec.Default())
	require.NotNil(t, a, "report: %+v", report)
	if st.Viewport.Scale == 0 {
		st.Viewport = viewport.Identity()
	}
	return a, scene.Build(a, st)
}

func TestSVGWellFormed(t *testing.T) {
	_, g := testGraph(t, scene.State{Selection: viewport.Region("aurora")})
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, g, SVGOptions{Title: "Imperium Solaris", Interactive: true}))

	dec := xml.NewDecoder(bytes.NewReader(buf.Bytes()))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	out := buf.String()
	assert.Contains(t, out, `viewBox="0 0 800 600"`)
	assert.Contains(t, out, `<title>Imperium Solaris</title>`)
	assert.Contains(t, out, `data-id="aurora"`)
	assert.Contains(t, out, `data-id="capital"`)
	assert.Contains(t, out, `data-id="ocean"`)
	assert.Contains(t, out, `values="80;105;80"`)
	assert.Contains(t, out, `values="7;9;7"`)
	assert.Contains(t, out, ">1.8M<")
	assert.Contains(t, out, `filter="url(#selectedGlow)"`)
	assert.Equal(t, 1, strings.Count(out, `fill="url(#spot)"`))
}

func TestSVGNotInteractive(t *testing.T) {
	_, g := testGraph(t, scene.State{})
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, g, SVGOptions{}))
	assert.NotContains(t, buf.String(), "data-id")
	assert.NotContains(t, buf.String(), `url(#spot)"`)
}

func TestSVGWorldTransform(t *testing.T) {
	_, g := testGraph(t, scene.State{Viewport: viewport.Viewport{Pan: geo.Pt(-12.5, 30), Scale: 2}})
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, g, SVGOptions{}))
	assert.Contains(t, buf.String(), `transform="scale(2.0000) translate(-12.50 30.00)"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteError(t *testing.T) {
	_, g := testGraph(t, scene.State{})
	err := SVG(failingWriter{}, g, SVGOptions{})
	assert.EqualError(t, err, "disk full")
}

func TestPNG(t *testing.T) {
	_, g := testGraph(t, scene.State{Selection: viewport.Region("nova")})
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, g, 400, 300))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// Top-left corner is open ocean.
	r, gr, b, _ := img.At(0, 0).RGBA()
	assert.Greater(t, b>>8, r>>8, "ocean should be blue")
	assert.Greater(t, b>>8, gr>>8)
}

func TestHex(t *testing.T) {
	c := hex("#87c5e6", 1)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x87), r>>8)
	assert.Equal(t, uint32(0xc5), g>>8)
	assert.Equal(t, uint32(0xe6), b>>8)
	assert.Equal(t, uint32(0xff), a>>8)
}

func TestGeoJSON(t *testing.T) {
	a, _ := testGraph(t, scene.State{})
	data, err := GeoJSON(a)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 6)

	for _, f := range fc.Features[:5] {
		require.True(t, f.Geometry.IsPolygon())
		ring := f.Geometry.Polygon[0]
		assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be closed")
		assert.Equal(t, "region", f.PropertyMustString("kind"))
	}
	aurora := fc.Features[0]
	assert.Equal(t, "aurora", aurora.ID)
	assert.Equal(t, "Aurora", aurora.PropertyMustString("name"))
	assert.Equal(t, 1_800_000.0, aurora.PropertyMustFloat64("population"))

	capital := fc.Features[5]
	require.True(t, capital.Geometry.IsPoint())
	assert.Equal(t, []float64{445, 290}, capital.Geometry.Point)
}

func TestGeoJSONRingsAreShifted(t *testing.T) {
	a, _ := testGraph(t, scene.State{})
	fc := FeatureCollection(a)
	for i, r := range a.Regions() {
		ring := fc.Features[i].Geometry.Polygon[0]
		for _, pt := range ring {
			assert.True(t, r.Bounds.Expand(r.Bounds.Width()*0.05).Contains(geo.Pt(pt[0], pt[1])),
				"region %s point %v outside %v", r.ID, pt, r.Bounds)
		}
	}
}
