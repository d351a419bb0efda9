package element

import (
	"errors"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
)

// ErrNotText is returned for text-only edits on other element kinds.
var ErrNotText = errors.New("element is not a text element")

// Editor applies constrained edits to elements. Edits return a new element
// and never modify their input.
type Editor struct {
	engine *constraint.Engine
}

// NewEditor returns an editor backed by engine.
func NewEditor(engine *constraint.Engine) *Editor {
	return &Editor{engine: engine}
}

// Engine returns the constraint engine used by the editor.
func (ed *Editor) Engine() *constraint.Engine {
	return ed.engine
}

// Move places the element center as close to (x, y) as the region allows.
func (ed *Editor) Move(el Element, x, y float64, vp delimit.Viewport, d delimit.Delimitation) Element {
	out := el.Clone()
	out.X, out.Y = ed.engine.ClampPosition(el.Placement(), x, y, vp, d)
	return ed.settle(out, vp, d)
}

// Resize scales the element about its center. aspect is width/height; zero
// keeps the current ratio. Text font size follows the width proportionally.
func (ed *Editor) Resize(el Element, w, h, aspect float64, vp delimit.Viewport, d delimit.Delimitation) (Element, bool) {
	if aspect <= 0 && el.Height > 0 {
		aspect = el.Width / el.Height
	}
	out := el.Clone()
	var atBoundary bool
	out.Width, out.Height, atBoundary = ed.engine.ClampSize(el.Placement(), w, h, vp, d, aspect)
	if out.IsText() && out.Text.BaseWidth > 0 {
		out.Text.FontSize = out.Text.BaseFontSize * out.Width / out.Text.BaseWidth
	}
	return ed.settle(out, vp, d), atBoundary
}

// Rotate turns the element toward deg as far as the region allows.
func (ed *Editor) Rotate(el Element, deg float64, vp delimit.Viewport, d delimit.Delimitation) Element {
	out := el.Clone()
	out.Rotation = ed.engine.ClampRotation(el.Placement(), deg, vp, d)
	return ed.settle(out, vp, d)
}

// SetCurve bends a text element toward curve as far as the region allows.
func (ed *Editor) SetCurve(el Element, curve int, vp delimit.Viewport, d delimit.Delimitation) (Element, error) {
	if !el.IsText() {
		return el, ErrNotText
	}
	out := el.Clone()
	out.Text.Curve = ed.engine.ClampCurve(el.Placement(), el.Text.FontSize, curve, vp, d)
	return out, nil
}

// SetFontSize applies a manual font size edit. The box scales with the font,
// limited by the region, and the base font size and width are rebased.
func (ed *Editor) SetFontSize(el Element, size float64, vp delimit.Viewport, d delimit.Delimitation) (Element, bool, error) {
	if !el.IsText() {
		return el, false, ErrNotText
	}
	if size <= 0 {
		return el, false, errors.New("font size must be positive")
	}
	out := el.Clone()
	ratio := 1.0
	if el.Text.FontSize > 0 {
		ratio = size / el.Text.FontSize
	}
	targetW, targetH := el.Width*ratio, el.Height*ratio
	var atBoundary bool
	out.Width, out.Height, atBoundary = ed.engine.ClampSize(el.Placement(), targetW, targetH, vp, d, el.Width/el.Height)
	// The size floor may widen the box past targetW; the font never exceeds size.
	out.Text.FontSize = size * min(out.Width/targetW, 1)
	out.Text.BaseFontSize = out.Text.FontSize
	out.Text.BaseWidth = out.Width
	return ed.settle(out, vp, d), atBoundary, nil
}

// Settle re-validates derived state against the current geometry.
func (ed *Editor) Settle(el Element, vp delimit.Viewport, d delimit.Delimitation) Element {
	return ed.settle(el.Clone(), vp, d)
}

// settle is the single place where curvature follows geometry. It runs after
// every change of position, size or rotation.
func (ed *Editor) settle(el Element, vp delimit.Viewport, d delimit.Delimitation) Element {
	if el.IsText() && el.Text.Curve != 0 {
		el.Text.Curve = ed.engine.ClampCurve(el.Placement(), el.Text.FontSize, el.Text.Curve, vp, d)
	}
	return el
}

// Fit pulls el back inside the region after the region or viewport changed.
// The center moves inward by the rotated half extents, then the size is
// clamped around it. It reports whether anything had to change.
func (ed *Editor) Fit(el Element, vp delimit.Viewport, d delimit.Delimitation) (Element, bool) {
	if !vp.Valid() || !d.Valid() || ed.engine.Contains(el.Placement(), vp, d) {
		return el.Clone(), false
	}
	m := delimit.Scale(vp, d)
	b := m.Bounds
	ex, ey := geom.RotatedExtents(el.Width*m.ScaleX/2, el.Height*m.ScaleY/2, el.Rotation)
	out := el.Clone()
	out.X = inward(el.X*vp.Width, b.X+ex, b.Right()-ex) / vp.Width
	out.Y = inward(el.Y*vp.Height, b.Y+ey, b.Bottom()-ey) / vp.Height
	out, _ = ed.Resize(out, out.Width, out.Height, 0, vp, d)
	return out, true
}

// inward bounds v to [lo, hi], or returns the midpoint when the range is empty.
func inward(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
