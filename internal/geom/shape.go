package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps an angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// ShortestDelta returns the signed angular distance from one angle to another in (-180,180].
func ShortestDelta(from, to float64) float64 {
	diff := NormalizeDegrees(to) - NormalizeDegrees(from)
	if diff > 180 {
		diff -= 360
	}
	if diff <= -180 {
		diff += 360
	}
	return diff
}

// RotatedCorners returns the four corners of a rectangle with the given
// half extents, rotated by deg degrees about center.
func RotatedCorners(center r2.Vec, halfW, halfH, deg float64) []r2.Vec {
	rot := r2.NewRotation(Radians(deg), r2.Vec{})
	offsets := [4]r2.Vec{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}
	out := make([]r2.Vec, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, r2.Add(center, rot.Rotate(o)))
	}
	return out
}

// RotatedExtents returns the half extents of the axis-aligned box around a
// rectangle with the given half extents rotated by deg degrees.
func RotatedExtents(halfW, halfH, deg float64) (float64, float64) {
	sin, cos := math.Sincos(Radians(deg))
	sin, cos = math.Abs(sin), math.Abs(cos)
	return halfW*cos + halfH*sin, halfW*sin + halfH*cos
}

// QuadPoint evaluates the quadratic Bézier p0,p1,p2 at t.
func QuadPoint(p0, p1, p2 r2.Vec, t float64) r2.Vec {
	u := 1 - t
	p := r2.Scale(u*u, p0)
	p = r2.Add(p, r2.Scale(2*u*t, p1))
	return r2.Add(p, r2.Scale(t*t, p2))
}

// Rotate turns v by deg degrees about the origin.
func Rotate(v r2.Vec, deg float64) r2.Vec {
	return r2.NewRotation(Radians(deg), r2.Vec{}).Rotate(v)
}

// Heading returns the direction of v in degrees, measured from +X toward +Y.
func Heading(v r2.Vec) float64 {
	return Degrees(math.Atan2(v.Y, v.X))
}
