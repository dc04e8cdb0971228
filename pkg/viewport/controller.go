package viewport

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/ChicagoDave/solaris/pkg/geo"
)

// Framer supplies the geometry the controller frames. Region bounds are in
// canvas coordinates after layout separation.
type Framer interface {
	RegionBounds(id string) (geo.Rect, bool)
	CapitalPoint() geo.Point2D
}

// Option configures a Controller.
type Option func(*Controller)

// WithLimits overrides the zoom and framing limits.
func WithLimits(l Limits) Option {
	return func(c *Controller) { c.limits = l }
}

// WithSpring overrides the animation spring.
func WithSpring(s SpringConfig) Option {
	return func(c *Controller) { c.spring = s }
}

// drag is the state of the active pointer gesture.
type drag struct {
	active   bool
	moved    bool
	start    geo.Point2D
	startPan geo.Point2D
}

// Controller owns the current viewport and its animation target. The current
// viewport is what gets drawn; the target is what the springs pull toward.
// Drag and wheel gestures write both, so they take effect immediately; framing
// writes only the target. A Controller is not safe for concurrent use.
type Controller struct {
	width, height float64
	framer        Framer
	limits        Limits
	spring        SpringConfig
	motion        harmonica.Spring

	x, y, s spring
	drag    drag
	pending time.Duration
}

// NewController creates a controller for a width×height canvas at the
// identity viewport.
func NewController(width, height float64, framer Framer, opts ...Option) *Controller {
	c := &Controller{
		width:  width,
		height: height,
		framer: framer,
		limits: DefaultLimits(),
		spring: DefaultSpring(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.motion = c.spring.motion()
	c.Jump(Identity())
	return c
}

// Limits returns the controller's limits.
func (c *Controller) Limits() Limits { return c.limits }

// Size returns the canvas size.
func (c *Controller) Size() (float64, float64) { return c.width, c.height }

// Current returns the viewport as currently drawn.
func (c *Controller) Current() Viewport {
	return Viewport{Pan: geo.Pt(c.x.pos, c.y.pos), Scale: c.s.pos}
}

// Target returns the viewport the animation is heading to.
func (c *Controller) Target() Viewport {
	return Viewport{Pan: geo.Pt(c.x.target, c.y.target), Scale: c.s.target}
}

// Animating reports whether any channel is still moving.
func (c *Controller) Animating() bool {
	return !(c.x.atRest() && c.y.atRest() && c.s.atRest())
}

// Jump sets current and target to v and stops all motion.
func (c *Controller) Jump(v Viewport) {
	c.x.jump(v.Pan.X)
	c.y.jump(v.Pan.Y)
	c.s.jump(v.Scale)
	c.pending = 0
}

// SetTarget retargets the animation. The springs continue from their current
// position and velocity, so an interrupted animation bends toward the new
// target without a jump.
func (c *Controller) SetTarget(v Viewport) {
	c.x.target = v.Pan.X
	c.y.target = v.Pan.Y
	c.s.target = v.Scale
}

// Reset animates back to the identity viewport.
func (c *Controller) Reset() {
	c.SetTarget(Identity())
}

// TargetFor computes the framing viewport for a selection. It returns false
// when the selection names a region the framer does not know.
func (c *Controller) TargetFor(sel Selection) (Viewport, bool) {
	switch sel.Kind() {
	case KindNone:
		return Identity(), true
	case KindCapital:
		if c.framer == nil {
			return Viewport{}, false
		}
		ext := c.limits.CapitalExtent
		fill := c.limits.CapitalFill
		s := math.Min(c.limits.CapitalMaxScale, math.Min(fill*c.width/ext, fill*c.height/ext))
		return centerOn(c.framer.CapitalPoint(), s, c.width, c.height), true
	}

	id, _ := sel.RegionID()
	if c.framer == nil {
		return Viewport{}, false
	}
	bounds, ok := c.framer.RegionBounds(id)
	if !ok {
		return Viewport{}, false
	}
	box := bounds.Expand(c.limits.RegionPadding)
	fill := c.limits.RegionFill
	s := c.limits.RegionMaxScale
	if w := box.Width(); w > 0 {
		s = math.Min(s, fill*c.width/w)
	}
	if h := box.Height(); h > 0 {
		s = math.Min(s, fill*c.height/h)
	}
	return centerOn(box.Center(), s, c.width, c.height), true
}

// FrameRegion animates toward the framing of sel. Unknown region ids leave
// the controller untouched and return false.
func (c *Controller) FrameRegion(sel Selection) bool {
	v, ok := c.TargetFor(sel)
	if !ok {
		return false
	}
	c.SetTarget(v)
	return true
}

// BeginDrag starts a pointer gesture at canvas point p. Any running animation
// stops where it is.
func (c *Controller) BeginDrag(p geo.Point2D) {
	c.Jump(c.Current())
	c.drag = drag{
		active:   true,
		start:    p,
		startPan: geo.Pt(c.x.pos, c.y.pos),
	}
}

// ContinueDrag pans so the canvas point under the pointer at BeginDrag stays
// under the pointer. Travel beyond the drag threshold on either axis marks
// the gesture as moved.
func (c *Controller) ContinueDrag(p geo.Point2D) {
	if !c.drag.active {
		return
	}
	d := p.Sub(c.drag.start)
	travel := math.Max(math.Abs(d.X), math.Abs(d.Y))
	if travel > 0 && travel >= c.limits.DragThreshold {
		c.drag.moved = true
	}
	pan := c.drag.startPan.Add(d.Scale(1 / c.s.pos))
	c.x.jump(pan.X)
	c.y.jump(pan.Y)
}

// EndDrag finishes the gesture. Moved keeps its value until the next
// BeginDrag so a trailing click can be discarded.
func (c *Controller) EndDrag() {
	c.drag.active = false
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.drag.active }

// Moved reports whether the latest gesture travelled past the threshold.
func (c *Controller) Moved() bool { return c.drag.moved }

// ZoomAt applies a wheel delta anchored at canvas point cursor: the canvas
// point under the cursor stays put. Positive deltas zoom out. The new scale
// is clamped to the manual zoom range. A drag in progress continues from the
// zoomed view.
func (c *Controller) ZoomAt(cursor geo.Point2D, delta float64) {
	cur := c.Current()
	factor := math.Exp(-delta / 100 * c.limits.WheelSensitivity)
	next := c.limits.ClampScale(cur.Scale * factor)
	pan := cursor.Scale(1 / next).Sub(cursor.Scale(1 / cur.Scale)).Add(cur.Pan)
	c.Jump(Viewport{Pan: pan, Scale: next})
	if c.drag.active {
		// Rebase the gesture so the next move continues from the zoomed view.
		c.drag.start = cursor
		c.drag.startPan = pan
	}
}

// Tick advances the animation by dt and reports whether it is still running.
func (c *Controller) Tick(dt time.Duration) bool {
	if dt <= 0 {
		return c.Animating()
	}
	c.pending += dt
	for c.pending >= springStep {
		c.pending -= springStep
		c.x.step(c.motion)
		c.y.step(c.motion)
		c.s.step(c.motion)
	}
	if !c.Animating() {
		c.pending = 0
		return false
	}
	return true
}

// Settle runs the animation to rest, giving up after limit of simulated time.
// It reports whether the controller came to rest.
func (c *Controller) Settle(limit time.Duration) bool {
	const frame = time.Second / 60
	for elapsed := time.Duration(0); elapsed < limit; elapsed += frame {
		if !c.Tick(frame) {
			return true
		}
	}
	return !c.Animating()
}

// ClientToCanvas converts a pointer position in client pixels, relative to a
// surface of the given client size, into canvas units.
func (c *Controller) ClientToCanvas(client geo.Point2D, clientW, clientH float64) geo.Point2D {
	if clientW <= 0 || clientH <= 0 {
		return client
	}
	return geo.Pt(client.X*c.width/clientW, client.Y*c.height/clientH)
}
