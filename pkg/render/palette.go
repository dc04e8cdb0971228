// Package render draws scene graphs: SVG for the browser, PNG for snapshots,
// and GeoJSON for exporting the generated coastlines.
package render

// Map palette.
const (
	oceanTop    = "#87c5e6"
	oceanBottom = "#2f6f97"
	shallows    = "#8cd0f5"
	landCore    = "#bfe1b9"
	landMid     = "#cce9c1"
	landEdge    = "#def2cd"
	inkDark     = "#0b1f1a"
	inkSoft     = "#183d31"
	capitalRed  = "#ef4444"
	haloCore    = "#fde68a"
	haloEdge    = "#f59e0b"
	shadow      = "#091a2a"
	labelHalo   = "#ffffff"
	labelActive = "#fff7ed"
)

// shallowsEllipse is the soft light patch behind the islands, in canvas units.
var shallowsEllipse = struct{ cx, cy, rx, ry float64 }{430, 320, 240, 170}
