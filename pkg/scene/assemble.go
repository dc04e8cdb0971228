package scene

import (
	"github.com/ChicagoDave/solaris/pkg/analytics"
	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// Node ids that are not region ids.
const (
	OceanID = "ocean"
	HaloID  = "halo"
)

// LabelID returns the id of a region's label node.
func LabelID(regionID string) string {
	return "label:" + regionID
}

// State is the interaction state a frame is drawn with.
type State struct {
	Viewport  viewport.Viewport
	Selection viewport.Selection
	Hover     viewport.Selection
	Tilt      Tilt
}

// Build assembles the scene for one frame. A selection naming a region the
// atlas does not know is drawn as nothing selected.
func Build(a *atlas.Atlas, st State) *Graph {
	sel := Resolve(a, st.Selection)
	hover := Resolve(a, st.Hover)
	selID, regionSelected := sel.RegionID()

	g := NewGraph()
	g.Transform = st.Viewport
	g.Tilt = st.Tilt
	g.Metadata = Metadata{
		Name:            a.Catalog().Name,
		Selection:       sel.String(),
		Hover:           hover.String(),
		TotalPopulation: a.Catalog().TotalPopulation,
	}

	canvas := a.Canvas()
	g.Ocean = Ocean{Width: canvas.Width(), Height: canvas.Height()}
	g.addToLayer(LayerOcean, OceanID)

	for _, r := range a.Regions() {
		active := regionSelected && r.ID == selID
		hovered := hover == viewport.Region(r.ID)
		node := RegionNode{
			ID:        r.ID,
			Name:      r.Name,
			Outline:   r.Shape.Outline,
			PathData:  r.Shape.Outline.String(),
			Translate: r.Displacement,
			Bounds:    r.Bounds,
			Opacity:   1,
			Scale:     1,
			Active:    active,
			Hovered:   hovered,
			Style:     idleStyle,
			Label: Label{
				Text:     r.Name,
				Position: r.Label,
				FontSize: LabelFontSize,
			},
			Population: Label{
				Text:     analytics.FormatShort(r.Population.Population),
				Position: r.Label.Add(geo.Pt(0, PopulationOffsetY)),
				FontSize: PopulationFontSize,
			},
		}
		if regionSelected && !active {
			node.Opacity = FadedOpacity
		}
		if active || hovered {
			node.Scale = HoverScale
		}
		if active {
			node.Style = activeStyle
			g.Halo = &Halo{
				Target: r.ID,
				Center: r.Label,
				Radius: HaloRadius,
				Pulse:  HaloPulse,
				Period: HaloPeriodSec,
			}
			g.addToLayer(LayerHalo, HaloID)
		}
		g.Regions = append(g.Regions, node)
		g.addToLayer(LayerLand, r.ID)
		g.addToLayer(LayerLabels, LabelID(r.ID))
	}

	capital := a.Capital()
	g.Capital = CapitalNode{
		ID:        viewport.CapitalValue,
		Position:  capital.Point,
		Radius:    CapitalRadius,
		HitRadius: CapitalHitRadius,
		Pulse:     CapitalPulse,
		Period:    CapitalPeriodSec,
		Opacity:   1,
		Active:    sel.IsCapital(),
		Hovered:   hover.IsCapital(),
		Label: Label{
			Text:     capital.Name,
			Position: capital.Point.Add(LabelOffset),
			FontSize: PopulationFontSize,
		},
	}
	if regionSelected {
		g.Capital.Opacity = FadedOpacity
	}
	g.addToLayer(LayerMarkers, g.Capital.ID)

	return g
}

// Resolve maps a selection of an unknown region to None.
func Resolve(a *atlas.Atlas, sel viewport.Selection) viewport.Selection {
	if id, ok := sel.RegionID(); ok {
		if _, known := a.Region(id); !known {
			return viewport.None()
		}
	}
	return sel
}

// Pick returns what lies under a screen point: the capital marker, a region
// (the last drawn wins), or None for the ocean.
func Pick(a *atlas.Atlas, vp viewport.Viewport, screen geo.Point2D) viewport.Selection {
	p := vp.ToCanvas(screen)
	if p.Distance(a.CapitalPoint()) <= CapitalHitRadius {
		return viewport.Capital()
	}
	regions := a.Regions()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if !r.Bounds.Contains(p) {
			continue
		}
		if r.Polygon().Contains(p) {
			return viewport.Region(r.ID)
		}
	}
	return viewport.None()
}
