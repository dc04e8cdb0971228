package render

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/scene"
)

// Raster draws g into a width×height image context. The canvas is stretched
// to fill the image. Filters and animations are not rasterized.
func Raster(g *scene.Graph, width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	sx := float64(width) / g.Ocean.Width
	sy := float64(height) / g.Ocean.Height

	ocean := gg.NewLinearGradient(0, 0, 0, float64(height))
	ocean.AddColorStop(0, hex(oceanTop, 1))
	ocean.AddColorStop(1, hex(oceanBottom, 1))
	dc.SetFillStyle(ocean)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	dc.Push()
	dc.Scale(sx, sy)
	e := shallowsEllipse
	dc.SetColor(hex(shallows, 0.25))
	dc.DrawEllipse(e.cx, e.cy, e.rx, e.ry)
	dc.Fill()

	v := g.Transform
	dc.Scale(v.Scale, v.Scale)
	dc.Translate(v.Pan.X, v.Pan.Y)

	if g.Halo != nil {
		h := g.Halo
		// Gradients are evaluated in image space, not through the matrix.
		cx, cy := dc.TransformPoint(h.Center.X, h.Center.Y)
		spot := gg.NewRadialGradient(cx, cy, 0, cx, cy, h.Radius*v.Scale*sx)
		spot.AddColorStop(0, hex(haloCore, 0.9))
		spot.AddColorStop(0.6, hex(haloEdge, 0.35))
		spot.AddColorStop(1, hex(haloEdge, 0))
		dc.SetFillStyle(spot)
		dc.DrawCircle(h.Center.X, h.Center.Y, h.Radius)
		dc.Fill()
	}

	for _, n := range g.Regions {
		rasterRegion(dc, n)
	}
	rasterCapital(dc, g.Capital)
	dc.Pop()
	return dc
}

// PNG writes the raster of g as a PNG image.
func PNG(w io.Writer, g *scene.Graph, width, height int) error {
	return Raster(g, width, height).EncodePNG(w)
}

func rasterRegion(dc *gg.Context, n scene.RegionNode) {
	dc.Push()
	defer dc.Pop()
	dc.Translate(n.Translate.X, n.Translate.Y)
	a := n.Opacity

	dc.Push()
	dc.Translate(scene.ExtrudeOffset.X, scene.ExtrudeOffset.Y)
	tracePath(dc, n.Outline)
	dc.SetColor(hex(shadow, 0.1*a))
	dc.Fill()
	dc.Pop()

	tracePath(dc, n.Outline)
	dc.SetColor(hex(landMid, a))
	dc.FillPreserve()
	dc.SetColor(hex(n.Style.Stroke, a))
	dc.SetLineWidth(n.Style.StrokeWidth)
	dc.Stroke()

	lp := n.Label.Position.Sub(n.Translate)
	dc.SetColor(hex(inkDark, a))
	dc.DrawStringAnchored(n.Label.Text, lp.X, lp.Y, 0.5, 0)
	pp := n.Population.Position.Sub(n.Translate)
	dc.SetColor(hex(inkSoft, a))
	dc.DrawStringAnchored(n.Population.Text, pp.X, pp.Y, 0.5, 0)
}

func rasterCapital(dc *gg.Context, c scene.CapitalNode) {
	dc.SetColor(hex(capitalRed, c.Opacity))
	dc.DrawCircle(c.Position.X, c.Position.Y, c.Radius)
	dc.Fill()
	dc.SetColor(color.RGBA{A: uint8(255 * c.Opacity)})
	dc.DrawString(c.Label.Text, c.Label.Position.X, c.Label.Position.Y)
}

// tracePath replays path commands onto the context as a new path.
func tracePath(dc *gg.Context, p geo.Path) {
	dc.NewSubPath()
	for _, c := range p.Commands {
		switch c.Op {
		case geo.OpMove:
			dc.MoveTo(c.To.X, c.To.Y)
		case geo.OpCubic:
			dc.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.To.X, c.To.Y)
		case geo.OpClose:
			dc.ClosePath()
		}
	}
}

// hex parses a #rrggbb color and applies alpha.
func hex(s string, alpha float64) color.Color {
	v, _ := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(a*255 + 0.5)}
}
