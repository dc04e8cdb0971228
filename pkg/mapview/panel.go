package mapview

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/solaris/pkg/analytics"
	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// hint is shown when nothing is selected.
const hint = "Click a province to see its capital, role and population, or the red dot for the imperial capital. Click the ocean to reset the zoom."

// Panel is the side-panel description of a selection.
type Panel struct {
	Kind       string   `json:"kind"`
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title"`
	Capital    string   `json:"capital,omitempty"`
	Role       string   `json:"role,omitempty"`
	Population string   `json:"population,omitempty"`
	Share      string   `json:"share,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Hint       string   `json:"hint,omitempty"`
}

// Panel describes the current selection.
func (v *View) Panel() Panel {
	return Describe(v.atlas, v.Selection())
}

// Describe builds the panel for sel.
func Describe(a *atlas.Atlas, sel viewport.Selection) Panel {
	switch sel.Kind() {
	case viewport.KindCapital:
		c := a.Capital()
		return Panel{
			Kind:  "capital",
			ID:    viewport.CapitalValue,
			Title: c.Name,
			Notes: c.Notes,
		}
	case viewport.KindRegion:
		id, _ := sel.RegionID()
		if r, ok := a.Region(id); ok {
			return Panel{
				Kind:       "region",
				ID:         r.ID,
				Title:      r.Name,
				Capital:    r.Capital,
				Role:       r.Role,
				Population: analytics.FormatFull(r.Population.Population),
				Share:      analytics.FormatShare(r.Population.Share),
			}
		}
	}
	return Panel{Kind: "none", Title: a.Catalog().Name, Hint: hint}
}

// String renders the panel as plain text.
func (p Panel) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, p.Title)
	switch p.Kind {
	case "region":
		fmt.Fprintf(&b, "Capital: %s\n", p.Capital)
		fmt.Fprintf(&b, "Role: %s\n", p.Role)
		fmt.Fprintf(&b, "Population: %s (%s)\n", p.Population, p.Share)
	case "capital":
		for _, n := range p.Notes {
			fmt.Fprintf(&b, "  • %s\n", n)
		}
	default:
		fmt.Fprintln(&b, p.Hint)
	}
	return b.String()
}
