// Package atlas generates and memoizes the map geometry for a catalog: one
// coastline per region, the layout displacement that keeps islands apart, and
// the resolved populations. An Atlas is immutable once built and may be shared
// between goroutines.
package atlas

import (
	"fmt"

	"github.com/ChicagoDave/solaris/pkg/analytics"
	"github.com/ChicagoDave/solaris/pkg/coast"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/layout"
	"github.com/ChicagoDave/solaris/pkg/noise"
	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/validation"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// Region is a generated province. Shape is in authored coordinates; the
// region is drawn translated by Displacement. Bounds, Centroid and Label are
// already shifted.
type Region struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Capital      string                     `json:"capital"`
	Role         string                     `json:"role"`
	Seed         uint32                     `json:"seed"`
	Shape        coast.Shape                `json:"shape"`
	Displacement geo.Point2D                `json:"displacement"`
	Bounds       geo.Rect                   `json:"bounds"`
	Centroid     geo.Point2D                `json:"centroid"`
	Label        geo.Point2D                `json:"label"`
	Population   analytics.RegionPopulation `json:"population"`
}

// Polygon returns the shifted outline samples for hit testing.
func (r *Region) Polygon() geo.Polygon {
	return r.Shape.Polygon().Translate(r.Displacement)
}

// Capital is the imperial capital marker.
type Capital struct {
	Name  string      `json:"name"`
	Point geo.Point2D `json:"point"`
	Notes []string    `json:"notes,omitempty"`
}

// Atlas is the generated map.
type Atlas struct {
	catalog     *spec.Catalog
	regions     []*Region
	byID        map[string]*Region
	capital     Capital
	layout      layout.Result
	populations *analytics.Resolved
}

// Build validates the catalog and generates the map. It returns a nil Atlas
// when the report carries errors. Residual layout overlap is not an error; it
// is reported as a spatial warning.
func Build(cat *spec.Catalog) (*Atlas, *validation.Report) {
	report := validation.ValidateCatalog(cat)
	if !report.Valid {
		return nil, report
	}

	pops, popReport := analytics.Resolve(cat)
	report.Merge(popReport)

	a := &Atlas{
		catalog:     cat,
		regions:     make([]*Region, len(cat.Regions)),
		byID:        make(map[string]*Region, len(cat.Regions)),
		populations: pops,
		capital: Capital{
			Name:  cat.Capital.Name,
			Point: geo.Pt(cat.Capital.X, cat.Capital.Y),
			Notes: cat.Capital.Notes,
		},
	}

	boxes := make([]geo.Rect, len(cat.Regions))
	for i, def := range cat.Regions {
		seed := resolveSeed(def)
		shape := coast.Generate(shapeParams(def, seed))
		pop, _ := pops.ByID(def.ID)
		a.regions[i] = &Region{
			ID:         def.ID,
			Name:       def.Name,
			Capital:    def.Capital,
			Role:       def.Role,
			Seed:       seed,
			Shape:      shape,
			Label:      geo.Pt(def.Label.X, def.Label.Y),
			Population: pop,
		}
		boxes[i] = shape.Bounds
	}

	a.layout = layout.Separate(boxes, layout.Options{
		Gap:           cat.Layout.Gap,
		MaxIterations: cat.Layout.MaxIterations,
	})
	for i, r := range a.regions {
		d := a.layout.Displacements[i]
		r.Displacement = d
		r.Bounds = r.Shape.Bounds.Translate(d)
		r.Centroid = r.Shape.Centroid.Add(d)
		r.Label = r.Label.Add(d)
		a.byID[r.ID] = r
	}

	reportLayout(a, report)
	return a, report
}

// MustBuild is Build for catalogs known to be valid, such as the embedded
// default. It panics on validation errors.
func MustBuild(cat *spec.Catalog) *Atlas {
	a, report := Build(cat)
	if a == nil {
		panic(report.Err())
	}
	return a
}

func resolveSeed(def spec.RegionDef) uint32 {
	if def.Seed != nil {
		return *def.Seed
	}
	return noise.HashString(def.ID)
}

func shapeParams(def spec.RegionDef, seed uint32) coast.Params {
	s := def.Shape
	return coast.Params{
		Center:       geo.Pt(s.CX, s.CY),
		RX:           s.RX,
		RY:           s.RY,
		Rotation:     s.Rot,
		Seed:         seed,
		Detail:       s.Detail,
		Irregularity: s.Irr,
		Lobes:        s.Lobes,
		Jaggedness:   s.Jag,
	}
}

func reportLayout(a *Atlas, r *validation.Report) {
	for _, o := range a.layout.Residual {
		ra, rb := a.regions[o.A], a.regions[o.B]
		r.AddWarning(validation.Result{
			Level: validation.LevelSpatial,
			Message: fmt.Sprintf("regions %q and %q still overlap by %.1f×%.1f after %d layout passes",
				ra.ID, rb.ID, o.X, o.Y, a.layout.Iterations),
			ConfigPath:   fmt.Sprintf("regions[%d].shape", o.A),
			ConflictWith: fmt.Sprintf("regions[%d].shape", o.B),
			Suggestions:  []string{"increase layout.max_iterations", "move the shape centers apart"},
		})
	}

	canvas := a.Canvas()
	for i, reg := range a.regions {
		if !canvas.ContainsRect(reg.Bounds, 0) {
			r.AddInfo(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("region %q extends past the canvas after layout", reg.ID),
				ConfigPath:  fmt.Sprintf("regions[%d].shape", i),
				ActualValue: reg.Bounds,
			})
		}
	}
}

// Catalog returns the catalog the atlas was built from.
func (a *Atlas) Catalog() *spec.Catalog { return a.catalog }

// Canvas returns the drawing surface rectangle.
func (a *Atlas) Canvas() geo.Rect {
	return geo.RectXYWH(0, 0, a.catalog.Canvas.Width, a.catalog.Canvas.Height)
}

// Regions returns the regions in catalog (draw) order.
func (a *Atlas) Regions() []*Region { return a.regions }

// Region looks up a region by id.
func (a *Atlas) Region(id string) (*Region, bool) {
	r, ok := a.byID[id]
	return r, ok
}

// Capital returns the capital marker.
func (a *Atlas) Capital() Capital { return a.capital }

// Layout returns the separation result.
func (a *Atlas) Layout() layout.Result { return a.layout }

// Populations returns the resolved population breakdown.
func (a *Atlas) Populations() *analytics.Resolved { return a.populations }

// RegionBounds returns the shifted bounding box of a region.
func (a *Atlas) RegionBounds(id string) (geo.Rect, bool) {
	r, ok := a.byID[id]
	if !ok {
		return geo.Rect{}, false
	}
	return r.Bounds, true
}

// CapitalPoint returns the capital's canvas position.
func (a *Atlas) CapitalPoint() geo.Point2D { return a.capital.Point }

// Limits returns the viewport limits configured in the catalog.
func (a *Atlas) Limits() viewport.Limits {
	v := a.catalog.Viewport
	return viewport.Limits{
		MinScale:         v.MinScale,
		MaxScale:         v.MaxScale,
		RegionMaxScale:   v.RegionMaxScale,
		CapitalMaxScale:  v.CapitalMaxScale,
		RegionPadding:    v.RegionPadding,
		RegionFill:       v.RegionFill,
		CapitalFill:      v.CapitalFill,
		CapitalExtent:    v.CapitalExtent,
		DragThreshold:    v.DragThreshold,
		WheelSensitivity: v.WheelSensitivity,
	}
}

// Spring returns the camera spring configured in the catalog.
func (a *Atlas) Spring() viewport.SpringConfig {
	s := a.catalog.Viewport.Spring
	return viewport.SpringConfig{Stiffness: s.Stiffness, Damping: s.Damping, Mass: s.Mass}
}

// NewController returns a viewport controller framing this atlas with the
// catalog's limits.
func (a *Atlas) NewController() *viewport.Controller {
	return viewport.NewController(a.catalog.Canvas.Width, a.catalog.Canvas.Height, a,
		viewport.WithLimits(a.Limits()),
		viewport.WithSpring(a.Spring()),
	)
}

var _ viewport.Framer = (*Atlas)(nil)
