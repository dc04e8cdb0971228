package mapview

import (
	"time"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/scene"
	"github.com/ChicagoDave/solaris/pkg/validation"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// settleLimit bounds the simulated animation time of a snapshot.
const settleLimit = 10 * time.Second

// Snapshot returns the scene with sel selected and the camera at rest on its
// framing, as a static render of the map would show it.
func Snapshot(a *atlas.Atlas, sel viewport.Selection) *scene.Graph {
	v := New(a, nil)
	v.SetSelection(sel)
	v.Controller().Settle(settleLimit)
	return v.Scene()
}

// CheckFrames validates the settled scene of every selection the map offers:
// nothing, the capital and each region.
func CheckFrames(a *atlas.Atlas) *validation.Report {
	sels := []viewport.Selection{viewport.None(), viewport.Capital()}
	for _, r := range a.Regions() {
		sels = append(sels, viewport.Region(r.ID))
	}
	report := validation.NewReport()
	for _, sel := range sels {
		report.Merge(scene.ValidateGraph(Snapshot(a, sel)))
	}
	return report
}
