// Package control handles the editing protocol and pointer gestures.
package control

import (
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"gonum.org/v1/gonum/spatial/r2"
)

// NormToPixels maps normalized viewport coordinates to viewport pixels.
func NormToPixels(xn, yn float64, vp delimit.Viewport) r2.Vec {
	return r2.Vec{X: normToPixels(xn, vp.Width), Y: normToPixels(yn, vp.Height)}
}

// normToPixels scales a clamped fraction onto a span.
func normToPixels(norm float64, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return clamp01(norm) * span
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
