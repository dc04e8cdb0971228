package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ChicagoDave/solaris/pkg/scene"
)

// SVGOptions controls SVG output.
type SVGOptions struct {
	// Title is written as the document title.
	Title string
	// Interactive tags every hit target with data-id so a page script can
	// forward events.
	Interactive bool
}

// SVG writes g as a standalone SVG document whose view box is the canvas.
func SVG(w io.Writer, g *scene.Graph, opts SVGOptions) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := int(math.Round(g.Ocean.Width)), int(math.Round(g.Ocean.Height))
	canvas.Startview(width, height, 0, 0, width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	writeDefs(canvas)

	canvas.Rect(0, 0, width, height, withID(opts, scene.OceanID, `fill="url(#ocean)"`)...)
	e := shallowsEllipse
	canvas.Ellipse(round(e.cx), round(e.cy), round(e.rx), round(e.ry),
		`fill="`+shallows+`"`, `opacity="0.25"`, `filter="url(#softBlur)"`, `pointer-events="none"`)

	canvas.Group(`id="world"`, `transform="`+worldTransform(g)+`"`)
	for _, n := range g.Regions {
		writeRegion(canvas, g, n, opts)
	}
	writeCapital(canvas, g.Capital, opts)
	canvas.Gend()

	canvas.End()
	return ew.err
}

func writeDefs(canvas *svg.SVG) {
	canvas.Def()
	canvas.LinearGradient("ocean", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: oceanTop, Opacity: 1},
		{Offset: 100, Color: oceanBottom, Opacity: 1},
	})
	canvas.LinearGradient("extrude", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: shadow, Opacity: 0.16},
		{Offset: 100, Color: "#000000", Opacity: 0.04},
	})
	canvas.RadialGradient("land", 50, 45, 72, 50, 45, []svg.Offcolor{
		{Offset: 0, Color: landCore, Opacity: 1},
		{Offset: 65, Color: landMid, Opacity: 1},
		{Offset: 100, Color: landEdge, Opacity: 1},
	})
	canvas.RadialGradient("spot", 50, 50, 50, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: haloCore, Opacity: 0.9},
		{Offset: 60, Color: haloEdge, Opacity: 0.35},
		{Offset: 100, Color: haloEdge, Opacity: 0},
	})
	glowFilter(canvas, "coastGlow", 1.6, "-50%", "200%")
	glowFilter(canvas, "selectedGlow", 4, "-40%", "180%")
	canvas.Filter("softBlur", `x="-30%"`, `y="-30%"`, `width="160%"`, `height="160%"`)
	canvas.FeGaussianBlur(svg.Filterspec{}, 12, 12)
	canvas.Fend()
	canvas.DefEnd()
}

// glowFilter blurs the source and merges it back under the original.
func glowFilter(canvas *svg.SVG, id string, std float64, origin, size string) {
	canvas.Filter(id, `x="`+origin+`"`, `y="`+origin+`"`, `width="`+size+`"`, `height="`+size+`"`)
	canvas.FeGaussianBlur(svg.Filterspec{Result: "blur"}, std, std)
	canvas.FeMerge([]string{"blur", "SourceGraphic"})
	canvas.Fend()
}

func worldTransform(g *scene.Graph) string {
	v := g.Transform
	return fmt.Sprintf("scale(%.4f) translate(%.2f %.2f)", v.Scale, v.Pan.X, v.Pan.Y)
}

func writeRegion(canvas *svg.SVG, g *scene.Graph, n scene.RegionNode, opts SVGOptions) {
	canvas.Group(withID(opts, n.ID,
		fmt.Sprintf(`transform="translate(%.2f %.2f)"`, n.Translate.X, n.Translate.Y),
		fmt.Sprintf(`opacity="%.2f"`, n.Opacity),
		`cursor="pointer"`,
	)...)

	if g.Halo != nil && g.Halo.Target == n.ID {
		h := g.Halo
		// svgo has no values-list animate, so the pulsing circle is written directly.
		fmt.Fprintf(canvas.Writer,
			`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="url(#spot)" opacity="0.9" pointer-events="none">`+
				`<animate attributeName="r" values="%s" dur="%.1fs" repeatCount="indefinite"/></circle>`+"\n",
			h.Center.X-n.Translate.X, h.Center.Y-n.Translate.Y, h.Radius, keyframes(h.Pulse), h.Period)
	}

	d := n.PathData
	canvas.Path(d,
		fmt.Sprintf(`transform="translate(%.0f %.0f)"`, scene.ExtrudeOffset.X, scene.ExtrudeOffset.Y),
		`fill="url(#extrude)"`, `opacity="0.5"`)

	land := []string{
		`fill="url(#land)"`,
		`stroke="` + n.Style.Stroke + `"`,
		fmt.Sprintf(`stroke-width="%.1f"`, n.Style.StrokeWidth),
	}
	if n.Scale != 1 {
		c := n.Bounds.Center().Sub(n.Translate)
		land = append(land, fmt.Sprintf(`transform="translate(%.2f %.2f) scale(%.3f) translate(%.2f %.2f)"`,
			c.X, c.Y, n.Scale, -c.X, -c.Y))
	}
	if n.Style.Glow {
		land = append(land, `filter="url(#selectedGlow)"`)
	}
	canvas.Path(d, land...)
	canvas.Path(d,
		`fill="none"`,
		`stroke="`+n.Style.Coast+`"`,
		fmt.Sprintf(`stroke-width="%.1f"`, n.Style.CoastWidth),
		fmt.Sprintf(`opacity="%.1f"`, n.Style.CoastOpacity),
		`filter="url(#coastGlow)"`)

	// Label positions are shifted; the group already translates.
	lp := n.Label.Position.Sub(n.Translate)
	halo := labelHalo
	if n.Active {
		halo = labelActive
	}
	textAttrs := []string{`text-anchor="middle"`, `pointer-events="none"`, `fill="` + inkDark + `"`,
		fmt.Sprintf(`font-size="%.0f"`, n.Label.FontSize)}
	canvas.Text(round(lp.X), round(lp.Y), n.Label.Text,
		append(textAttrs, `stroke="`+halo+`"`, `stroke-width="3"`, `paint-order="stroke"`)...)
	canvas.Text(round(lp.X), round(lp.Y), n.Label.Text, textAttrs...)

	pp := n.Population.Position.Sub(n.Translate)
	canvas.Text(round(pp.X), round(pp.Y), n.Population.Text,
		`text-anchor="middle"`, `pointer-events="none"`, `fill="`+inkSoft+`"`,
		fmt.Sprintf(`font-size="%.0f"`, n.Population.FontSize))

	canvas.Gend()
}

func writeCapital(canvas *svg.SVG, c scene.CapitalNode, opts SVGOptions) {
	canvas.Group(withID(opts, c.ID, fmt.Sprintf(`opacity="%.2f"`, c.Opacity), `cursor="pointer"`)...)
	// Invisible hit area larger than the marker.
	canvas.Circle(round(c.Position.X), round(c.Position.Y), round(c.HitRadius), `fill="transparent"`)
	fmt.Fprintf(canvas.Writer,
		`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s">`+
			`<animate attributeName="r" values="%s" dur="%.1fs" repeatCount="indefinite"/></circle>`+"\n",
		c.Position.X, c.Position.Y, c.Radius, capitalRed, keyframes(c.Pulse), c.Period)
	canvas.Text(round(c.Label.Position.X), round(c.Label.Position.Y), c.Label.Text,
		`fill="#000000"`, fmt.Sprintf(`font-size="%.0f"`, c.Label.FontSize))
	canvas.Gend()
}

// withID appends a data-id attribute to attrs for interactive output.
func withID(opts SVGOptions, id string, attrs ...string) []string {
	if opts.Interactive {
		attrs = append(attrs, fmt.Sprintf(`data-id="%s"`, id))
	}
	return attrs
}

func keyframes(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
