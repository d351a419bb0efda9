package constraint

import (
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// ClampPosition returns the center closest to (x, y), in viewport fractions,
// that keeps p inside the region. Invalid inputs return (x, y) unchanged.
func (e *Engine) ClampPosition(p Placement, x, y float64, vp delimit.Viewport, d delimit.Delimitation) (float64, float64) {
	if !usable(vp, d) {
		return x, y
	}
	f := resolve(p, vp, d)
	target := r2.Vec{X: x * vp.Width, Y: y * vp.Height}

	if e.axisAligned(p.Rotation) {
		// Extents include the residual tilt so the clamp stays exact below the threshold.
		ex, ey := geom.RotatedExtents(f.halfW, f.halfH, p.Rotation)
		b := f.m.Bounds
		target.X = clampAxis(target.X, b.X+ex, b.Right()-ex)
		target.Y = clampAxis(target.Y, b.Y+ey, b.Bottom()-ey)
		return f.toFraction(target)
	}

	if f.cornersInside(target, p.Rotation) {
		return x, y
	}

	delta := r2.Sub(target, f.center)
	if r2.Norm(delta) < e.tuning.MinDisplacementPx {
		return p.X, p.Y
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < e.tuning.TranslateIterations && hi-lo >= e.tuning.TranslateEpsilon; i++ {
		mid := (lo + hi) / 2
		if f.cornersInside(r2.Add(f.center, r2.Scale(mid, delta)), p.Rotation) {
			lo = mid
		} else {
			hi = mid
		}
	}
	best := r2.Add(f.center, r2.Scale(lo*e.tuning.TranslateMargin, delta))
	return f.toFraction(best)
}

// clampAxis bounds v to [lo, hi]. An element wider than the region is centered.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
