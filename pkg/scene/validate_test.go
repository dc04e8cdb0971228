package scene

import (
	"testing"

	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

func validGraph() *Graph {
	g := NewGraph()
	g.Regions = []RegionNode{
		{ID: "north", Opacity: 1, Scale: 1, Active: true},
		{ID: "south", Opacity: FadedOpacity, Scale: 1},
	}
	g.Capital = CapitalNode{ID: viewport.CapitalValue, Position: geo.Pt(10, 10), Opacity: FadedOpacity}
	g.Halo = &Halo{Target: "north", Radius: HaloRadius}
	g.Groups.Layers[LayerOcean] = []string{OceanID}
	g.Groups.Layers[LayerHalo] = []string{HaloID}
	g.Groups.Layers[LayerLand] = []string{"north", "south"}
	g.Groups.Layers[LayerLabels] = []string{LabelID("north"), LabelID("south")}
	g.Groups.Layers[LayerMarkers] = []string{viewport.CapitalValue}
	return g
}

func TestValidateGraph_Valid(t *testing.T) {
	r := ValidateGraph(validGraph())
	if !r.Valid {
		t.Errorf("expected valid, got %d errors", len(r.Errors))
		for _, e := range r.Errors {
			t.Logf("  error: %s", e.Message)
		}
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %d", len(r.Warnings))
	}
}

func TestValidateGraph_Nil(t *testing.T) {
	r := ValidateGraph(nil)
	if r.Valid {
		t.Error("expected invalid for nil graph")
	}
}

func TestValidateGraph_DuplicateID(t *testing.T) {
	g := validGraph()
	g.Regions[1].ID = "north"
	g.Regions[1].Active = false
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for duplicate region id")
	}
}

func TestValidateGraph_ReservedID(t *testing.T) {
	g := validGraph()
	g.Regions[1].ID = OceanID
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for region named like the ocean")
	}
}

func TestValidateGraph_DanglingLayerMember(t *testing.T) {
	g := validGraph()
	g.Groups.Layers[LayerLand] = append(g.Groups.Layers[LayerLand], "ghost")
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for layer referencing a missing node")
	}
}

func TestValidateGraph_UnindexedNode(t *testing.T) {
	g := validGraph()
	g.Groups.Layers[LayerLabels] = []string{LabelID("north")}
	r := ValidateGraph(g)
	if !r.Valid {
		t.Error("missing layer entry should only warn")
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(r.Warnings))
	}
}

func TestValidateGraph_Opacity(t *testing.T) {
	g := validGraph()
	g.Regions[0].Opacity = 1.2
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for opacity above 1")
	}
}

func TestValidateGraph_HaloMismatch(t *testing.T) {
	g := validGraph()
	g.Halo.Target = "south"
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for halo on an inactive region")
	}
}

func TestValidateGraph_TwoActive(t *testing.T) {
	g := validGraph()
	g.Regions[1].Active = true
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for two active regions")
	}
}

func TestValidateGraph_Scale(t *testing.T) {
	g := validGraph()
	g.Transform.Scale = 0
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for zero scale")
	}
}
