package constraint

import (
	"math"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// ClampCurve returns the curvature closest to requested, with the same sign,
// whose sampled text envelope stays inside the region. Zero is returned as is.
// Invalid inputs return the request limited to [-MaxCurve, MaxCurve].
func (e *Engine) ClampCurve(p Placement, fontSize float64, requested int, vp delimit.Viewport, d delimit.Delimitation) int {
	requested = max(min(requested, MaxCurve), -MaxCurve)
	if requested == 0 || !usable(vp, d) {
		return requested
	}
	f := resolve(p, vp, d)
	margin := fontSize * f.m.ScaleY * e.tuning.TextMarginFactor
	if e.envelopeInside(f, p.Rotation, margin, float64(requested)) {
		return requested
	}

	sign := 1.0
	if requested < 0 {
		sign = -1
	}
	lo, hi := 0.0, math.Abs(float64(requested))
	for i := 0; i < e.tuning.CurveIterations && hi-lo > e.tuning.CurveEpsilon; i++ {
		mid := (lo + hi) / 2
		if e.envelopeInside(f, p.Rotation, margin, sign*mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return int(math.Round(sign * lo * e.tuning.CurveMargin))
}

// CurveLegal reports whether curve keeps the sampled text envelope of p inside the region.
func (e *Engine) CurveLegal(p Placement, fontSize float64, curve int, vp delimit.Viewport, d delimit.Delimitation) bool {
	if !usable(vp, d) {
		return false
	}
	f := resolve(p, vp, d)
	margin := fontSize * f.m.ScaleY * e.tuning.TextMarginFactor
	return e.envelopeInside(f, p.Rotation, margin, float64(curve))
}

// envelopeInside samples the curved baseline and tests it with a vertical
// glyph margin on both sides, rotated about the element center.
func (e *Engine) envelopeInside(f frame, rotation, margin, curve float64) bool {
	w, h := 2*f.halfW, 2*f.halfH
	// Path coordinates are relative to the element center.
	p0 := r2.Vec{X: -w / 2, Y: 0}
	p1 := r2.Vec{X: 0, Y: curve * h / 100}
	p2 := r2.Vec{X: w / 2, Y: 0}
	rot := r2.NewRotation(geom.Radians(rotation), r2.Vec{})

	// The last sample is capped at t=1 so the far end is always probed.
	steps := int(math.Ceil(1 / e.tuning.CurveSampleStep))
	probes := [3]float64{0, -margin, margin}
	for i := 0; i <= steps; i++ {
		t := min(float64(i)*e.tuning.CurveSampleStep, 1)
		pt := geom.QuadPoint(p0, p1, p2, t)
		for _, dy := range probes {
			probe := r2.Add(f.center, rot.Rotate(r2.Vec{X: pt.X, Y: pt.Y + dy}))
			if !geom.Contains(f.m.Bounds, probe) {
				return false
			}
		}
	}
	return true
}
