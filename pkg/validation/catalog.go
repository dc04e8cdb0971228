package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ChicagoDave/solaris/pkg/spec"
)

// CapitalSentinel is the selection value reserved for the imperial capital.
// A region may not use it as its id.
const CapitalSentinel = "capital"

// weightTolerance is the allowed deviation of the weight sum from 100.
const weightTolerance = 0.01

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report YAML key names so findings point at the catalog file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCatalog performs schema validation on a parsed catalog: field
// constraints declared on the catalog types, unique region ids and weights
// that sum to 100.
func ValidateCatalog(c *spec.Catalog) *Report {
	r := NewReport()
	if c == nil {
		r.AddError(Result{Level: LevelSchema, Message: "catalog is nil"})
		return r
	}

	validateFields(c, r)
	validateRegionIDs(c, r)
	validateWeights(c, r)
	validatePlacement(c, r)
	validateScales(c, r)

	return r
}

func validateFields(c *spec.Catalog, r *Report) {
	err := structValidator.Struct(c)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		r.AddError(Result{Level: LevelSchema, Message: err.Error()})
		return
	}
	for _, fe := range fieldErrs {
		path := fe.Namespace()
		// Drop the root type name.
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		expected := fe.Tag()
		if fe.Param() != "" {
			expected += "=" + fe.Param()
		}
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s fails constraint %s", path, expected),
			ConfigPath:  path,
			ActualValue: fe.Value(),
			Expected:    expected,
		})
	}
}

func validateRegionIDs(c *spec.Catalog, r *Report) {
	seen := make(map[string]int, len(c.Regions))
	for i, reg := range c.Regions {
		path := fmt.Sprintf("regions[%d].id", i)
		if reg.ID == CapitalSentinel {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("region id %q is reserved for the capital marker", reg.ID),
				ConfigPath:  path,
				ActualValue: reg.ID,
				Suggestions: []string{"Rename the region"},
			})
		}
		if prev, ok := seen[reg.ID]; ok && reg.ID != "" {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("duplicate region id %q", reg.ID),
				ConfigPath:   path,
				ActualValue:  reg.ID,
				ConflictWith: fmt.Sprintf("regions[%d].id", prev),
			})
			continue
		}
		seen[reg.ID] = i
	}
}

func validateWeights(c *spec.Catalog, r *Report) {
	if len(c.Regions) == 0 {
		return
	}
	sum := c.TotalWeight()
	if math.Abs(sum-100) > weightTolerance {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("region weights should sum to 100 (got %.4f)", sum),
			ConfigPath:  "regions[].weight",
			ActualValue: sum,
			Expected:    "100 (±0.01)",
			Suggestions: []string{"Adjust weights so the provinces share the whole population"},
		})
	}
}

func validatePlacement(c *spec.Catalog, r *Report) {
	canvas := canvasRect(c)
	for i, reg := range c.Regions {
		if !canvas.contains(reg.Label.X, reg.Label.Y) {
			r.AddWarning(Result{
				Level:       LevelSpatial,
				Message:     fmt.Sprintf("label of region %q lies outside the canvas", reg.ID),
				ConfigPath:  fmt.Sprintf("regions[%d].label", i),
				ActualValue: []float64{reg.Label.X, reg.Label.Y},
			})
		}
		if !canvas.contains(reg.Shape.CX, reg.Shape.CY) {
			r.AddWarning(Result{
				Level:       LevelSpatial,
				Message:     fmt.Sprintf("shape center of region %q lies outside the canvas", reg.ID),
				ConfigPath:  fmt.Sprintf("regions[%d].shape", i),
				ActualValue: []float64{reg.Shape.CX, reg.Shape.CY},
			})
		}
	}
	if !canvas.contains(c.Capital.X, c.Capital.Y) {
		r.AddWarning(Result{
			Level:       LevelSpatial,
			Message:     "capital marker lies outside the canvas",
			ConfigPath:  "capital",
			ActualValue: []float64{c.Capital.X, c.Capital.Y},
		})
	}
}

func validateScales(c *spec.Catalog, r *Report) {
	v := c.Viewport
	if v.RegionMaxScale > v.MaxScale || v.CapitalMaxScale > v.MaxScale {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "framing zoom exceeds the manual zoom maximum; wheel zoom will snap back after framing",
		})
	}
}

type bounds struct{ w, h float64 }

func canvasRect(c *spec.Catalog) bounds {
	return bounds{w: c.Canvas.Width, h: c.Canvas.Height}
}

func (b bounds) contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= b.w && y <= b.h
}
