package constraint

import (
	"math"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Placement is the geometry of an element as seen by the engine.
type Placement struct {
	// X and Y are the center as a fraction of the viewport size.
	X float64
	Y float64
	// Width and Height are in reference units.
	Width  float64
	Height float64
	// Rotation is in degrees and unbounded.
	Rotation float64
}

// Engine applies the bounded-transform constraints. It holds no state beyond
// its tuning and is safe for concurrent use.
type Engine struct {
	tuning Tuning
}

// New returns an engine using t.
func New(t Tuning) *Engine {
	return &Engine{tuning: t}
}

// Tuning returns the engine settings.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// frame is a placement resolved into viewport pixels.
type frame struct {
	m      delimit.Mapping
	vp     delimit.Viewport
	center r2.Vec
	halfW  float64
	halfH  float64
}

// resolve maps p into viewport pixels.
func resolve(p Placement, vp delimit.Viewport, d delimit.Delimitation) frame {
	m := delimit.Scale(vp, d)
	return frame{
		m:      m,
		vp:     vp,
		center: r2.Vec{X: p.X * vp.Width, Y: p.Y * vp.Height},
		halfW:  p.Width * m.ScaleX / 2,
		halfH:  p.Height * m.ScaleY / 2,
	}
}

// cornersInside reports whether the rectangle at center rotated by deg stays inside the region.
func (f frame) cornersInside(center r2.Vec, deg float64) bool {
	return geom.AllInside(f.m.Bounds, geom.RotatedCorners(center, f.halfW, f.halfH, deg))
}

// toFraction converts a pixel point back to viewport fractions.
func (f frame) toFraction(p r2.Vec) (float64, float64) {
	return p.X / f.vp.Width, p.Y / f.vp.Height
}

// usable reports whether the inputs allow any constraint to be computed.
func usable(vp delimit.Viewport, d delimit.Delimitation) bool {
	return vp.Valid() && d.Valid()
}

// Contains reports whether the rotated rectangle of p lies inside the region.
func (e *Engine) Contains(p Placement, vp delimit.Viewport, d delimit.Delimitation) bool {
	if !usable(vp, d) {
		return false
	}
	f := resolve(p, vp, d)
	return f.cornersInside(f.center, p.Rotation)
}

// axisAligned reports whether deg is close enough to zero for per-axis clamping.
func (e *Engine) axisAligned(deg float64) bool {
	n := geom.NormalizeDegrees(deg)
	return math.Min(n, 360-n) < e.tuning.AxisAlignedDeg
}
