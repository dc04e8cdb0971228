package spec

// Catalog is the static configuration of the map: canvas, capital, view
// limits and the region list. It is loaded once and passed explicitly to the
// engine; nothing in the engine reads package-level tables.
type Catalog struct {
	SpecVersion     string      `yaml:"spec_version" json:"spec_version"`
	Name            string      `yaml:"name" json:"name" validate:"required"`
	TotalPopulation int         `yaml:"total_population" json:"total_population" validate:"gt=0" default:"10000000"`
	Canvas          CanvasDef   `yaml:"canvas" json:"canvas"`
	Capital         CapitalDef  `yaml:"capital" json:"capital"`
	Layout          LayoutDef   `yaml:"layout" json:"layout"`
	Viewport        ViewportDef `yaml:"viewport" json:"viewport"`
	Regions         []RegionDef `yaml:"regions" json:"regions" validate:"required,min=1,dive"`
}

// RegionByID returns the region definition with the given id, or nil if not found.
func (c *Catalog) RegionByID(id string) *RegionDef {
	for i := range c.Regions {
		if c.Regions[i].ID == id {
			return &c.Regions[i]
		}
	}
	return nil
}

// RegionIDs returns the selectable region identifiers in catalog order.
func (c *Catalog) RegionIDs() []string {
	ids := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		ids[i] = r.ID
	}
	return ids
}

// TotalWeight returns the sum of all region population weights.
func (c *Catalog) TotalWeight() float64 {
	sum := 0.0
	for _, r := range c.Regions {
		sum += r.Weight
	}
	return sum
}

// CanvasDef is the fixed abstract drawing surface in canvas units.
type CanvasDef struct {
	Width  float64 `yaml:"width" json:"width" validate:"gt=0" default:"800"`
	Height float64 `yaml:"height" json:"height" validate:"gt=0" default:"600"`
}

// CapitalDef places the imperial capital marker.
type CapitalDef struct {
	Name  string   `yaml:"name" json:"name" validate:"required"`
	X     float64  `yaml:"x" json:"x"`
	Y     float64  `yaml:"y" json:"y"`
	Notes []string `yaml:"notes" json:"notes,omitempty"`
}

type LayoutDef struct {
	Gap           float64 `yaml:"gap" json:"gap" validate:"gte=0" default:"10"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations" validate:"gte=0" default:"40"`
}

// ViewportDef holds zoom bounds, framing parameters and spring constants.
type ViewportDef struct {
	MinScale         float64   `yaml:"min_scale" json:"min_scale" validate:"gt=0" default:"0.6"`
	MaxScale         float64   `yaml:"max_scale" json:"max_scale" validate:"gtfield=MinScale" default:"3.0"`
	RegionMaxScale   float64   `yaml:"region_max_scale" json:"region_max_scale" validate:"gt=0" default:"2.4"`
	CapitalMaxScale  float64   `yaml:"capital_max_scale" json:"capital_max_scale" validate:"gt=0" default:"2.2"`
	RegionPadding    float64   `yaml:"region_padding" json:"region_padding" validate:"gte=0" default:"30"`
	RegionFill       float64   `yaml:"region_fill" json:"region_fill" validate:"gt=0,lte=1" default:"0.65"`
	CapitalFill      float64   `yaml:"capital_fill" json:"capital_fill" validate:"gt=0,lte=1" default:"0.6"`
	CapitalExtent    float64   `yaml:"capital_extent" json:"capital_extent" validate:"gt=0" default:"26"`
	DragThreshold    float64   `yaml:"drag_threshold" json:"drag_threshold" validate:"gte=0" default:"2"`
	WheelSensitivity float64   `yaml:"wheel_sensitivity" json:"wheel_sensitivity" validate:"gt=0" default:"0.1"`
	Spring           SpringDef `yaml:"spring" json:"spring"`
}

type SpringDef struct {
	Stiffness float64 `yaml:"stiffness" json:"stiffness" validate:"gt=0" default:"140"`
	Damping   float64 `yaml:"damping" json:"damping" validate:"gt=0" default:"22"`
	Mass      float64 `yaml:"mass" json:"mass" validate:"gt=0" default:"0.7"`
}

// RegionDef is one province of the map.
type RegionDef struct {
	ID      string   `yaml:"id" json:"id" validate:"required"`
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Capital string   `yaml:"capital" json:"capital"`
	Role    string   `yaml:"role" json:"role"`
	Weight  float64  `yaml:"weight" json:"weight" validate:"gte=0"`
	Seed    *uint32  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Shape   ShapeDef `yaml:"shape" json:"shape"`
	Label   PointDef `yaml:"label" json:"label"`
}

// ShapeDef parameterizes the generated coastline. Short keys follow the
// authoring convention of the catalog files.
type ShapeDef struct {
	CX     float64 `yaml:"cx" json:"cx"`
	CY     float64 `yaml:"cy" json:"cy"`
	RX     float64 `yaml:"rx" json:"rx" validate:"gt=0"`
	RY     float64 `yaml:"ry" json:"ry" validate:"gt=0"`
	Rot    float64 `yaml:"rot" json:"rot"`
	Detail int     `yaml:"detail" json:"detail" validate:"gte=3"`
	Irr    float64 `yaml:"irr" json:"irr" validate:"gte=0"`
	Lobes  int     `yaml:"lobes" json:"lobes" validate:"gte=0"`
	Jag    float64 `yaml:"jag" json:"jag" validate:"gte=0"`
}

type PointDef struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}
