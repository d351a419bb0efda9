package constraint

import (
	"math"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
)

// ClampRotation returns the rotation closest to target, reached from the
// current rotation of p along the shortest arc, that keeps every corner
// inside the region. Invalid inputs return target unchanged.
func (e *Engine) ClampRotation(p Placement, target float64, vp delimit.Viewport, d delimit.Delimitation) float64 {
	if !usable(vp, d) {
		return target
	}
	f := resolve(p, vp, d)
	if f.cornersInside(f.center, target) {
		return target
	}

	origin := p.Rotation
	best := origin
	remaining := geom.ShortestDelta(origin, target)
	for i := 0; i < e.tuning.RotateIterations && math.Abs(remaining) > e.tuning.RotateEpsilonDeg; i++ {
		candidate := best + remaining/2
		if f.cornersInside(f.center, candidate) {
			best = candidate
		}
		remaining /= 2
	}
	return origin + (best-origin)*e.tuning.RotateMargin
}
