// Package mapview is the interaction shell around the map: it routes pointer
// and wheel events to the viewport controller, resolves clicks against the
// scene, and reports selection changes to its owner.
package mapview

import (
	"time"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/geo"
	"github.com/ChicagoDave/solaris/pkg/scene"
	"github.com/ChicagoDave/solaris/pkg/viewport"
)

// SelectFunc receives selections made on the map.
type SelectFunc func(viewport.Selection)

// View holds the interaction state of one map instance. Points passed to its
// methods are in canvas units of the unzoomed surface. A View is not safe for
// concurrent use.
type View struct {
	atlas    *atlas.Atlas
	ctrl     *viewport.Controller
	selected viewport.Selection
	hover    viewport.Selection
	tilt     scene.Tilt
	onSelect SelectFunc
}

// New creates a view over a at the identity viewport with nothing selected.
func New(a *atlas.Atlas, onSelect SelectFunc) *View {
	return &View{
		atlas:    a,
		ctrl:     a.NewController(),
		onSelect: onSelect,
	}
}

// OnSelect replaces the selection callback.
func (v *View) OnSelect(fn SelectFunc) { v.onSelect = fn }

// Atlas returns the map the view draws.
func (v *View) Atlas() *atlas.Atlas { return v.atlas }

// Controller exposes the viewport controller.
func (v *View) Controller() *viewport.Controller { return v.ctrl }

// Selection returns the current selection. A region id unknown to the atlas
// is reported as None.
func (v *View) Selection() viewport.Selection {
	return scene.Resolve(v.atlas, v.selected)
}

// Hover returns what the pointer is over.
func (v *View) Hover() viewport.Selection { return v.hover }

// SetSelection is the inbound half of the selection boundary: the owner
// changed the selection, so store it and frame it. It does not call OnSelect.
// Unknown region ids are kept but render as nothing selected and leave the
// camera where it is.
func (v *View) SetSelection(sel viewport.Selection) {
	v.selected = sel
	v.ctrl.FrameRegion(sel)
}

// PointerDown starts a gesture.
func (v *View) PointerDown(p geo.Point2D) {
	v.ctrl.BeginDrag(p)
}

// Tilt returns the pointer tilt of the surface.
func (v *View) Tilt() scene.Tilt { return v.tilt }

// PointerMove tilts the surface toward p, then drags while a gesture is
// active, otherwise tracks hover.
func (v *View) PointerMove(p geo.Point2D) {
	w, h := v.ctrl.Size()
	v.tilt = scene.TiltAt(w, h, p)
	if v.ctrl.Dragging() {
		v.ctrl.ContinueDrag(p)
		return
	}
	v.hover = scene.Pick(v.atlas, v.ctrl.Current(), p)
}

// PointerLeave clears hover and flattens the surface when the pointer leaves.
func (v *View) PointerLeave() {
	v.hover = viewport.None()
	v.tilt = scene.Tilt{}
	if v.ctrl.Dragging() {
		v.ctrl.EndDrag()
	}
}

// PointerUp ends the gesture.
func (v *View) PointerUp() {
	v.ctrl.EndDrag()
}

// Wheel zooms around p.
func (v *View) Wheel(p geo.Point2D, delta float64) {
	v.ctrl.ZoomAt(p, delta)
}

// Click resolves a click at p. Clicks that end a drag are ignored. A click on
// the ocean resets the viewport and selects nothing; a click on a region or
// the capital selects it. The outcome is reported through OnSelect; the
// owner is expected to answer with SetSelection. It returns what was hit and
// whether the click was handled.
func (v *View) Click(p geo.Point2D) (viewport.Selection, bool) {
	if v.ctrl.Moved() {
		return viewport.None(), false
	}
	hit := scene.Pick(v.atlas, v.ctrl.Current(), p)
	if hit.IsNone() {
		v.ctrl.Reset()
	}
	if v.onSelect != nil {
		v.onSelect(hit)
	}
	return hit, true
}

// Tick advances the camera animation and reports whether it is still moving.
func (v *View) Tick(dt time.Duration) bool {
	return v.ctrl.Tick(dt)
}

// Scene builds the scene graph for the current frame.
func (v *View) Scene() *scene.Graph {
	return scene.Build(v.atlas, scene.State{
		Viewport:  v.ctrl.Current(),
		Selection: v.selected,
		Hover:     v.hover,
		Tilt:      v.tilt,
	})
}
