package layout

import "github.com/ChicagoDave/solaris/pkg/geo"

// Default separation parameters.
const (
	DefaultGap           = 10.0
	DefaultMaxIterations = 40

	// overlapTolerance is the penetration below which a residual pair is ignored.
	overlapTolerance = 1e-6
	// pushBias is added to every half-overlap push so touching boxes separate.
	pushBias = 0.5
)

// Options controls the separation pass.
type Options struct {
	Gap           float64 `json:"gap" yaml:"gap"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
}

// DefaultOptions returns the gap and iteration cap used for the map.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap, MaxIterations: DefaultMaxIterations}
}

// Overlap records a pair of boxes still intersecting after separation.
type Overlap struct {
	A int     `json:"a"`
	B int     `json:"b"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is the outcome of Separate. Displacements is indexed like the input.
type Result struct {
	Displacements []geo.Point2D `json:"displacements"`
	Iterations    int           `json:"iterations"`
	Converged     bool          `json:"converged"`
	Residual      []Overlap     `json:"residual,omitempty"`
}

// Separate pushes overlapping boxes apart until every pair is at least
// opts.Gap apart or the iteration cap is reached. Each overlapping pair is
// moved symmetrically along its axis of least penetration. Only translations
// are returned; the boxes themselves are not modified.
//
// Convergence is best effort. When the cap is hit with pairs still
// overlapping, the remaining overlap is accepted and listed in Result.Residual.
func Separate(boxes []geo.Rect, opts Options) Result {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	disp := make([]geo.Point2D, len(boxes))
	res := Result{Displacements: disp}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		res.Iterations = iter + 1
		moved := false
		for i := 0; i < len(boxes); i++ {
			for j := i + 1; j < len(boxes); j++ {
				a := boxes[i].Translate(disp[i])
				b := boxes[j].Translate(disp[j])
				ox, oy := a.Expand(opts.Gap).Overlap(b)
				if ox <= 0 || oy <= 0 {
					continue
				}
				ac, bc := a.Center(), b.Center()
				if ox < oy {
					push := ox/2 + pushBias
					dir := 1.0
					if ac.X < bc.X {
						dir = -1
					}
					disp[i].X += dir * push
					disp[j].X -= dir * push
				} else {
					push := oy/2 + pushBias
					dir := 1.0
					if ac.Y < bc.Y {
						dir = -1
					}
					disp[i].Y += dir * push
					disp[j].Y -= dir * push
				}
				moved = true
			}
		}
		if !moved {
			res.Converged = true
			break
		}
	}

	res.Residual = residualOverlaps(boxes, disp, opts.Gap)
	if len(res.Residual) == 0 {
		res.Converged = true
	}
	return res
}

// residualOverlaps lists pairs whose gap-expanded boxes still intersect.
func residualOverlaps(boxes []geo.Rect, disp []geo.Point2D, gap float64) []Overlap {
	var out []Overlap
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a := boxes[i].Translate(disp[i])
			b := boxes[j].Translate(disp[j])
			ox, oy := a.Expand(gap).Overlap(b)
			if ox > overlapTolerance && oy > overlapTolerance {
				out = append(out, Overlap{A: i, B: j, X: ox, Y: oy})
			}
		}
	}
	return out
}
