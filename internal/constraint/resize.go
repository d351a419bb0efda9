package constraint

import (
	"math"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
)

// aspectTolerance is the relative ratio error accepted as already locked.
const aspectTolerance = 1e-9

// ClampSize returns the largest size up to (w, h) that fits around the fixed
// center of p. aspect is width/height; when positive the request is first
// locked to it along the axis that changed most, and both sides are scaled
// together. atBoundary reports that the request did not fit.
// Invalid inputs return (w, h) unchanged.
func (e *Engine) ClampSize(p Placement, w, h float64, vp delimit.Viewport, d delimit.Delimitation, aspect float64) (float64, float64, bool) {
	if !usable(vp, d) {
		return w, h, false
	}
	w, h = lockAspect(w, h, p.Width, p.Height, aspect)
	f := resolve(p, vp, d)
	b := f.m.Bounds

	spaceLeft := f.center.X - b.X
	spaceRight := b.Right() - f.center.X
	spaceTop := f.center.Y - b.Y
	spaceBottom := b.Bottom() - f.center.Y
	maxW := max(2*min(spaceLeft, spaceRight), 0)
	maxH := max(2*min(spaceTop, spaceBottom), 0)

	// Footprint of the rotated rectangle; equals the plain size when unrotated.
	reqW, reqH := geom.RotatedExtents(w*f.m.ScaleX, h*f.m.ScaleY, p.Rotation)

	atBoundary := reqW > maxW || reqH > maxH
	if atBoundary {
		scale := 1.0
		if reqW > 0 {
			scale = min(scale, maxW/reqW)
		}
		if reqH > 0 {
			scale = min(scale, maxH/reqH)
		}
		w *= scale
		h *= scale
	}

	return max(w, e.tuning.MinSize), max(h, e.tuning.MinSize), atBoundary
}

// lockAspect bends (w, h) onto aspect. The axis with the larger relative
// change from (curW, curH) drives and the other follows.
func lockAspect(w, h, curW, curH, aspect float64) (float64, float64) {
	if aspect <= 0 || w <= 0 || h <= 0 || math.Abs(w/h-aspect) <= aspectTolerance*aspect {
		return w, h
	}
	if curW > 0 && curH > 0 && math.Abs(math.Log(h/curH)) > math.Abs(math.Log(w/curW)) {
		return h * aspect, h
	}
	return w, w / aspect
}
