// Package scene turns an atlas and the interaction state into a renderable
// scene graph: the ocean, one node per region, the capital marker and the
// selection halo, all under a single viewport transform.
package scene

import (
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// Layer identifies a draw layer. Layers are drawn in the order of Layers.
type Layer string

const (
	LayerOcean   Layer = "ocean"
	LayerHalo    Layer = "halo"
	LayerLand    Layer = "land"
	LayerLabels  Layer = "labels"
	LayerMarkers Layer = "markers"
)

// Layers lists the draw order.
var Layers = []Layer{LayerOcean, LayerHalo, LayerLand, LayerLabels, LayerMarkers}

// Drawing constants.
const (
	FadedOpacity = 0.35

	HaloRadius    = 95.0
	HaloPeriodSec = 2.2

	CapitalRadius    = 7.0
	CapitalHitRadius = 14.0
	CapitalPeriodSec = 1.8

	HoverScale = 1.015

	LabelFontSize      = 13.0
	PopulationFontSize = 12.0
	PopulationOffsetY  = 16.0
)

// HaloPulse is the radius keyframes of the halo animation.
var HaloPulse = []float64{80, 105, 80}

// CapitalPulse is the radius keyframes of the capital marker.
var CapitalPulse = []float64{7, 9, 7}

// ExtrudeOffset is the drop-shadow offset that fakes island relief.
var ExtrudeOffset = geo.Pt(5, 6)

// LabelOffset places the capital's name to the right of the marker.
var LabelOffset = geo.Pt(13, 4)

// Style is the stroke of a land outline.
type Style struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	// Coast is the outer glow stroke.
	Coast        string  `json:"coast"`
	CoastWidth   float64 `json:"coast_width"`
	CoastOpacity float64 `json:"coast_opacity"`
	Glow         bool    `json:"glow,omitempty"`
}

var (
	idleStyle = Style{
		Stroke: "#2b5c4a", StrokeWidth: 1.6,
		Coast: "#e9f6d6", CoastWidth: 3.5, CoastOpacity: 0.5,
	}
	activeStyle = Style{
		Stroke: "#fbbf24", StrokeWidth: 2.2,
		Coast: "#fff7ed", CoastWidth: 4.5, CoastOpacity: 0.6,
		Glow: true,
	}
)

// Label is a text anchor in canvas coordinates, centered horizontally.
type Label struct {
	Text     string      `json:"text"`
	Position geo.Point2D `json:"position"`
	FontSize float64     `json:"font_size"`
}

// RegionNode is one island. Outline is in authored coordinates and is drawn
// translated by Translate; every other position is already shifted.
type RegionNode struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Outline    geo.Path    `json:"-"`
	PathData   string      `json:"d"`
	Translate  geo.Point2D `json:"translate"`
	Bounds     geo.Rect    `json:"bounds"`
	Opacity    float64     `json:"opacity"`
	Scale      float64     `json:"scale"`
	Active     bool        `json:"active,omitempty"`
	Hovered    bool        `json:"hovered,omitempty"`
	Style      Style       `json:"style"`
	Label      Label       `json:"label"`
	Population Label       `json:"population"`
}

// CapitalNode is the capital marker.
type CapitalNode struct {
	ID        string      `json:"id"`
	Position  geo.Point2D `json:"position"`
	Radius    float64     `json:"radius"`
	HitRadius float64     `json:"hit_radius"`
	Pulse     []float64   `json:"pulse"`
	Period    float64     `json:"period"`
	Opacity   float64     `json:"opacity"`
	Active    bool        `json:"active,omitempty"`
	Hovered   bool        `json:"hovered,omitempty"`
	Label     Label       `json:"label"`
}

// Halo is the pulsing spotlight behind the selected region.
type Halo struct {
	Target string      `json:"target"`
	Center geo.Point2D `json:"center"`
	Radius float64     `json:"radius"`
	Pulse  []float64   `json:"pulse"`
	Period float64     `json:"period"`
}

// Ocean is the clickable background.
type Ocean struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Metadata holds scene-level information.
type Metadata struct {
	Name            string `json:"name"`
	Selection       string `json:"selection"`
	Hover           string `json:"hover,omitempty"`
	TotalPopulation int    `json:"total_population"`
}

// Groups indexes node ids by draw layer.
type Groups struct {
	Layers map[Layer][]string `json:"layers"`
}

// Graph is the complete scene for one frame.
type Graph struct {
	Metadata  Metadata          `json:"metadata"`
	Transform viewport.Viewport `json:"transform"`
	Tilt      Tilt              `json:"tilt"`
	Ocean     Ocean             `json:"ocean"`
	Halo      *Halo             `json:"halo,omitempty"`
	Regions   []RegionNode      `json:"regions"`
	Capital   CapitalNode       `json:"capital"`
	Groups    Groups            `json:"groups"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Transform: viewport.Identity(),
		Regions:   []RegionNode{},
		Groups: Groups{
			Layers: make(map[Layer][]string),
		},
	}
}

// Region returns the node for a region id.
func (g *Graph) Region(id string) (*RegionNode, bool) {
	for i := range g.Regions {
		if g.Regions[i].ID == id {
			return &g.Regions[i], true
		}
	}
	return nil, false
}

func (g *Graph) addToLayer(l Layer, id string) {
	g.Groups.Layers[l] = append(g.Groups.Layers[l], id)
}
