package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// TestNormalizeRect_Positive verifies Normalize keeps positive sizes intact.
func TestNormalizeRect_Positive(t *testing.T) {
	in := Rect{X: 1, Y: 2, W: 3, H: 4}
	out := Normalize(in)
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestNormalizeRect_NegativeDims verifies Normalize flips negative sizes.
func TestNormalizeRect_NegativeDims(t *testing.T) {
	in := Rect{X: 10, Y: 20, W: -5, H: -6}
	out := Normalize(in)
	want := Rect{X: 5, Y: 14, W: 5, H: 6}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}

// TestContains_Edges verifies edges are treated as inside the rect.
func TestContains_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 4}
	if !Contains(r, r2.Vec{X: 10, Y: 20}) {
		t.Fatalf("expected top-left edge to be inside rect")
	}
	if !Contains(r, r2.Vec{X: 15, Y: 24}) {
		t.Fatalf("expected bottom-right edge to be inside rect")
	}
}

// TestContains_Outside verifies points outside the rect are rejected.
func TestContains_Outside(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 4}
	if Contains(r, r2.Vec{X: 9.999, Y: 20}) || Contains(r, r2.Vec{X: 15, Y: 24.001}) {
		t.Fatalf("expected point to be outside rect")
	}
}

// TestAllInside_OneOutsideFails verifies a single stray point fails the whole set.
func TestAllInside_OneOutsideFails(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	pts := []r2.Vec{{X: 1, Y: 1}, {X: 10, Y: 10}, {X: 11, Y: 5}}
	if AllInside(r, pts) {
		t.Fatalf("expected containment to fail")
	}
	if !AllInside(r, pts[:2]) {
		t.Fatalf("expected first two points inside")
	}
	if pts[2].X != 11 {
		t.Fatalf("input points were mutated")
	}
}

// TestRotatedCorners_Unrotated verifies corners match the axis-aligned rectangle.
func TestRotatedCorners_Unrotated(t *testing.T) {
	pts := RotatedCorners(r2.Vec{X: 50, Y: 40}, 10, 5, 0)
	want := []r2.Vec{{X: 40, Y: 35}, {X: 60, Y: 35}, {X: 60, Y: 45}, {X: 40, Y: 45}}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > 1e-9 || math.Abs(pts[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("corner %d: expected %+v, got %+v", i, want[i], pts[i])
		}
	}
}

// TestRotatedCorners_Quarter verifies a 90 degree turn swaps the extents.
func TestRotatedCorners_Quarter(t *testing.T) {
	pts := RotatedCorners(r2.Vec{}, 10, 5, 90)
	maxX, maxY := 0.0, 0.0
	for _, p := range pts {
		maxX = math.Max(maxX, math.Abs(p.X))
		maxY = math.Max(maxY, math.Abs(p.Y))
	}
	if math.Abs(maxX-5) > 1e-9 || math.Abs(maxY-10) > 1e-9 {
		t.Fatalf("expected extents (5,10), got (%v,%v)", maxX, maxY)
	}
}

// TestRotatedExtents_MatchesCorners verifies the closed-form extent bounds the corners.
func TestRotatedExtents_MatchesCorners(t *testing.T) {
	for _, deg := range []float64{0, 17, 45, 90, 133, 270, -30} {
		ex, ey := RotatedExtents(30, 12, deg)
		maxX, maxY := 0.0, 0.0
		for _, p := range RotatedCorners(r2.Vec{}, 30, 12, deg) {
			maxX = math.Max(maxX, math.Abs(p.X))
			maxY = math.Max(maxY, math.Abs(p.Y))
		}
		if math.Abs(ex-maxX) > 1e-9 || math.Abs(ey-maxY) > 1e-9 {
			t.Fatalf("deg %v: expected (%v,%v), got (%v,%v)", deg, maxX, maxY, ex, ey)
		}
	}
}

// TestShortestDelta_Wraps verifies deltas take the short way around the circle.
func TestShortestDelta_Wraps(t *testing.T) {
	cases := []struct{ from, to, want float64 }{
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{180, 0, 180},
		{-90, 90, 180},
		{720, 45, 45},
	}
	for _, c := range cases {
		if got := ShortestDelta(c.from, c.to); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ShortestDelta(%v,%v): expected %v, got %v", c.from, c.to, c.want, got)
		}
	}
}

// TestNormalizeDegrees_Range verifies angles land in [0,360).
func TestNormalizeDegrees_Range(t *testing.T) {
	for _, deg := range []float64{-720, -1, 0, 359.5, 360, 725} {
		got := NormalizeDegrees(deg)
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeDegrees(%v) = %v out of range", deg, got)
		}
	}
}

// TestQuadPoint_Endpoints verifies the curve passes through its end points and bulges toward the control point.
func TestQuadPoint_Endpoints(t *testing.T) {
	p0, p1, p2 := r2.Vec{X: 0, Y: 10}, r2.Vec{X: 50, Y: 30}, r2.Vec{X: 100, Y: 10}
	if QuadPoint(p0, p1, p2, 0) != p0 || QuadPoint(p0, p1, p2, 1) != p2 {
		t.Fatalf("expected curve to start at p0 and end at p2")
	}
	mid := QuadPoint(p0, p1, p2, 0.5)
	if math.Abs(mid.X-50) > 1e-9 || math.Abs(mid.Y-20) > 1e-9 {
		t.Fatalf("expected midpoint (50,20), got %+v", mid)
	}
}

// TestRotate_QuarterTurn verifies a 90 degree turn maps +X onto +Y.
func TestRotate_QuarterTurn(t *testing.T) {
	got := Rotate(r2.Vec{X: 10, Y: 0}, 90)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Fatalf("expected (0,10), got %+v", got)
	}
}

// TestHeading verifies headings of the axis directions.
func TestHeading(t *testing.T) {
	if h := Heading(r2.Vec{X: 1}); h != 0 {
		t.Fatalf("expected 0, got %v", h)
	}
	if h := Heading(r2.Vec{Y: 1}); math.Abs(h-90) > 1e-12 {
		t.Fatalf("expected 90, got %v", h)
	}
	if h := Heading(r2.Vec{X: -1}); math.Abs(h-180) > 1e-12 {
		t.Fatalf("expected 180, got %v", h)
	}
}
