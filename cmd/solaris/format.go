package main

import (
	"fmt"
	"io"

	"github.com/ChicagoDave/solaris/pkg/analytics"
	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.ConfigPath != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.ConfigPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warn.Level, warn.Message)
			if warn.ConfigPath != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", warn.ConfigPath, warn.ActualValue)
			}
			if warn.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", warn.ConflictWith)
			}
			for _, s := range warn.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printRegionTable(w io.Writer, a *atlas.Atlas) {
	cat := a.Catalog()
	fmt.Fprintf(w, "%s (total population %s)\n\n", cat.Name, analytics.FormatFull(cat.TotalPopulation))
	fmt.Fprintf(w, "%-10s %-12s %-12s %8s %14s %8s %16s\n",
		"ID", "Name", "Capital", "Weight", "Population", "Label", "Displacement")
	fmt.Fprintf(w, "%-10s %-12s %-12s %8s %14s %8s %16s\n",
		"----------", "------------", "------------", "--------", "--------------", "--------", "----------------")
	for _, r := range a.Regions() {
		fmt.Fprintf(w, "%-10s %-12s %-12s %7.1f%% %14s %8s %16s\n",
			r.ID, r.Name, r.Capital,
			r.Population.Weight,
			analytics.FormatFull(r.Population.Population),
			analytics.FormatShort(r.Population.Population),
			fmt.Sprintf("(%+.1f, %+.1f)", r.Displacement.X, r.Displacement.Y))
	}

	pops := a.Populations()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Regional sum:  %s\n", analytics.FormatFull(pops.RoundedTotal))
	c := a.Capital()
	fmt.Fprintf(w, "  Capital:       %s at (%.0f, %.0f)\n", c.Name, c.Point.X, c.Point.Y)
	l := a.Layout()
	fmt.Fprintf(w, "  Layout:        %d passes, converged=%t\n", l.Iterations, l.Converged)
}
