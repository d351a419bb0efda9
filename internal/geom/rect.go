// Package geom provides rectangle containment and point helpers in viewport pixels.
package geom

import "gonum.org/v1/gonum/spatial/r2"

// Rect describes a rectangle using top-left origin and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of r.
func (r Rect) Center() r2.Vec {
	return r2.Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
func Contains(r Rect, p r2.Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// AllInside reports whether every point lies inside r (edges inclusive).
func AllInside(r Rect, pts []r2.Vec) bool {
	for _, p := range pts {
		if !Contains(r, p) {
			return false
		}
	}
	return true
}
