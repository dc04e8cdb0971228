package scene

import (
	"fmt"

	"github.com/ChicagoDave/solaris/pkg/validation"
)

// ValidateGraph performs structural validation on a scene graph.
// It checks node ids, layer index consistency, opacity ranges and the halo.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene graph is nil",
		})
		return r
	}

	validateNodeIDs(g, r)
	validateLayers(g, r)
	validateOpacity(g, r)
	validateHalo(g, r)
	validateTransform(g, r)

	return r
}

// nodeIDs returns every node id in the graph.
func nodeIDs(g *Graph) map[string]bool {
	ids := map[string]bool{OceanID: true, g.Capital.ID: true}
	if g.Halo != nil {
		ids[HaloID] = true
	}
	for _, n := range g.Regions {
		ids[n.ID] = true
		ids[LabelID(n.ID)] = true
	}
	return ids
}

func validateNodeIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Regions))
	for i, n := range g.Regions {
		if n.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("region node at index %d has empty ID", i),
				ConfigPath:  fmt.Sprintf("regions[%d].id", i),
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if n.ID == g.Capital.ID || n.ID == OceanID || n.ID == HaloID {
			r.AddError(validation.Result{
				Level:        validation.LevelSpatial,
				Message:      fmt.Sprintf("region node %q collides with a reserved node id", n.ID),
				ConfigPath:   fmt.Sprintf("regions[%d].id", i),
				ActualValue:  n.ID,
				ConflictWith: n.ID,
			})
		}
		if prev, exists := seen[n.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate region node ID %q at indices %d and %d", n.ID, prev, i),
				ConfigPath:  fmt.Sprintf("regions[%d].id", i),
				ActualValue: n.ID,
			})
		}
		seen[n.ID] = i
	}
}

func validateLayers(g *Graph, r *validation.Report) {
	ids := nodeIDs(g)
	indexed := make(map[string]bool, len(ids))

	for layer, members := range g.Groups.Layers {
		for _, id := range members {
			if !ids[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("layer %s references non-existent node %q", layer, id),
					ConfigPath:  fmt.Sprintf("groups.layers.%s", layer),
					ActualValue: id,
					Expected:    "existing node ID",
				})
			}
			indexed[id] = true
		}
	}
	for id := range ids {
		if !indexed[id] {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("node %q is not in any layer", id),
				ConfigPath:  "groups.layers",
				ActualValue: id,
			})
		}
	}
}

func validateOpacity(g *Graph, r *validation.Report) {
	check := func(path string, v float64) {
		if v < 0 || v > 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("%s opacity %.2f outside [0, 1]", path, v),
				ConfigPath:  path,
				ActualValue: v,
				Expected:    "0 <= opacity <= 1",
			})
		}
	}
	for i, n := range g.Regions {
		check(fmt.Sprintf("regions[%d].opacity", i), n.Opacity)
	}
	check("capital.opacity", g.Capital.Opacity)
}

func validateHalo(g *Graph, r *validation.Report) {
	active := 0
	for _, n := range g.Regions {
		if n.Active {
			active++
		}
	}
	if active > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("%d regions are marked active", active),
			ConfigPath:  "regions[].active",
			ActualValue: active,
			Expected:    "at most 1",
		})
	}
	if g.Halo == nil {
		if active == 1 {
			r.AddWarning(validation.Result{
				Level:      validation.LevelSpatial,
				Message:    "active region has no halo",
				ConfigPath: "halo",
			})
		}
		return
	}
	n, ok := g.Region(g.Halo.Target)
	if !ok || !n.Active {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("halo targets %q which is not the active region", g.Halo.Target),
			ConfigPath:  "halo.target",
			ActualValue: g.Halo.Target,
		})
	}
}

func validateTransform(g *Graph, r *validation.Report) {
	if g.Transform.Scale <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("viewport scale %.3f is not positive", g.Transform.Scale),
			ConfigPath:  "transform.scale",
			ActualValue: g.Transform.Scale,
			Expected:    "> 0",
		})
	}
}
