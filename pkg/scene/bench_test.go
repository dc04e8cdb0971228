package scene

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// catalogForRegions lays n provinces out on a square grid sized so that
// neighbouring blobs touch and the separator has work to do.
func catalogForRegions(n int) *spec.Catalog {
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	const cell = 160.0
	c := &spec.Catalog{
		SpecVersion: "0.1.0",
		Name:        fmt.Sprintf("Bench %d", n),
		Canvas:      spec.CanvasDef{Width: cell * float64(cols), Height: cell * float64(cols)},
		Capital:     spec.CapitalDef{Name: "Centre", X: cell * float64(cols) / 2, Y: cell * float64(cols) / 2},
	}
	for i := 0; i < n; i++ {
		cx := cell/2 + cell*float64(i%cols)
		cy := cell/2 + cell*float64(i/cols)
		c.Regions = append(c.Regions, spec.RegionDef{
			ID:     fmt.Sprintf("r%03d", i),
			Name:   fmt.Sprintf("Region %d", i),
			Weight: 100 / float64(n),
			Shape: spec.ShapeDef{
				CX: cx, CY: cy, RX: 85, RY: 60, Rot: 0.1,
				Detail: 72, Irr: 0.09, Lobes: 5, Jag: 0.35,
			},
			Label: spec.PointDef{X: cx, Y: cy},
		})
	}
	c.ApplyDefaults()
	return c
}

func buildAtlas(tb testing.TB, n int) *atlas.Atlas {
	tb.Helper()
	a, report := atlas.Build(catalogForRegions(n))
	if a == nil {
		tb.Fatalf("atlas build failed for %d regions: %s", n, report.Summary)
	}
	return a
}

func TestLargeAtlas100(t *testing.T) {
	a := buildAtlas(t, 100)
	g := Build(a, State{Viewport: viewport.Identity(), Selection: viewport.Region("r042")})
	if len(g.Regions) != 100 {
		t.Fatalf("expected 100 region nodes, got %d", len(g.Regions))
	}
	if g.Halo == nil {
		t.Fatal("expected a halo for the selected region")
	}
	if r := ValidateGraph(g); !r.Valid {
		t.Errorf("graph validation failed: %s", r.Summary)
	}
	t.Logf("100 regions: %d layout iterations, converged=%v", a.Layout().Iterations, a.Layout().Converged)
}

func BenchmarkAtlasBuild5(b *testing.B) {
	cat := spec.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		atlas.Build(cat)
	}
}

func BenchmarkAtlasBuild100(b *testing.B) {
	cat := catalogForRegions(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		atlas.Build(cat)
	}
}

func BenchmarkSceneFrame(b *testing.B) {
	a := buildAtlas(b, 5)
	ctrl := a.NewController()
	ctrl.FrameRegion(viewport.Region("helios"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ctrl.Tick(time.Second / 60) {
			ctrl.Jump(viewport.Identity())
			ctrl.FrameRegion(viewport.Region("helios"))
		}
		Build(a, State{Viewport: ctrl.Current(), Selection: viewport.Region("helios")})
	}
}

func BenchmarkPick(b *testing.B) {
	a := buildAtlas(b, 100)
	vp := viewport.Identity()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pick(a, vp, geo.Pt(412, 377))
	}
}
