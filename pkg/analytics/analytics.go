// Package analytics derives the decorative population figures shown on the
// map from the catalog weights.
package analytics

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/solaris/pkg/spec"
	"github.com/ChicagoDave/solaris/pkg/validation"
)

// RegionPopulation is the resolved population of one region.
type RegionPopulation struct {
	ID         string  `json:"id"`
	Weight     float64 `json:"weight"`
	Population int     `json:"population"`
	// Share is the weight as a percentage of the total population.
	Share float64 `json:"share"`
}

// Resolved holds the population breakdown for the whole catalog.
type Resolved struct {
	TotalPopulation int                `json:"total_population"`
	Regions         []RegionPopulation `json:"regions"`
	// RoundedTotal is the sum of the per-region rounded populations.
	RoundedTotal int `json:"rounded_total"`
}

// ByID returns the resolved population of a region, or false if unknown.
func (r *Resolved) ByID(id string) (RegionPopulation, bool) {
	for _, rp := range r.Regions {
		if rp.ID == id {
			return rp, true
		}
	}
	return RegionPopulation{}, false
}

// Population returns round(weight/100 × total).
func Population(weight float64, total int) int {
	return int(math.Round(weight / 100 * float64(total)))
}

// Resolve computes every region's population from its weight.
// Rounding drift between the regional sum and the total is reported as info.
func Resolve(c *spec.Catalog) (*Resolved, *validation.Report) {
	report := validation.NewReport()
	res := &Resolved{
		TotalPopulation: c.TotalPopulation,
		Regions:         make([]RegionPopulation, 0, len(c.Regions)),
	}
	for _, reg := range c.Regions {
		pop := Population(reg.Weight, c.TotalPopulation)
		res.Regions = append(res.Regions, RegionPopulation{
			ID:         reg.ID,
			Weight:     reg.Weight,
			Population: pop,
			Share:      reg.Weight,
		})
		res.RoundedTotal += pop
	}

	if drift := res.RoundedTotal - c.TotalPopulation; drift != 0 {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("regional populations sum to %d, %+d from the total", res.RoundedTotal, drift),
			ConfigPath:  "total_population",
			ActualValue: res.RoundedTotal,
			Expected:    fmt.Sprintf("%d", c.TotalPopulation),
		})
	}
	return res, report
}
