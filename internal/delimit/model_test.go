package delimit

import (
	"testing"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
)

// TestScale_Identity verifies a viewport equal to the reference space keeps pixel values.
func TestScale_Identity(t *testing.T) {
	d := Delimitation{X: 10, Y: 20, Width: 100, Height: 50, ReferenceWidth: 200, ReferenceHeight: 200}
	m := Scale(Viewport{Width: 200, Height: 200}, d)
	if m.ScaleX != 1 || m.ScaleY != 1 {
		t.Fatalf("expected unit scale, got (%v,%v)", m.ScaleX, m.ScaleY)
	}
	want := geom.Rect{X: 10, Y: 20, W: 100, H: 50}
	if m.Bounds != want {
		t.Fatalf("expected %+v, got %+v", want, m.Bounds)
	}
}

// TestScale_IndependentAxes verifies horizontal and vertical factors are computed separately.
func TestScale_IndependentAxes(t *testing.T) {
	d := Delimitation{X: 100, Y: 100, Width: 400, Height: 200, ReferenceWidth: 1000, ReferenceHeight: 500}
	m := Scale(Viewport{Width: 500, Height: 1000}, d)
	if m.ScaleX != 0.5 || m.ScaleY != 2 {
		t.Fatalf("expected (0.5,2), got (%v,%v)", m.ScaleX, m.ScaleY)
	}
	want := geom.Rect{X: 50, Y: 200, W: 200, H: 400}
	if m.Bounds != want {
		t.Fatalf("expected %+v, got %+v", want, m.Bounds)
	}
}

// TestValid_RejectsZeroReference verifies degenerate regions are reported.
func TestValid_RejectsZeroReference(t *testing.T) {
	if (Delimitation{Width: 10, Height: 10}).Valid() {
		t.Fatalf("expected zero reference dimensions to be invalid")
	}
	if (Viewport{Width: 0, Height: 10}).Valid() {
		t.Fatalf("expected zero-width viewport to be invalid")
	}
}

// TestCenterFraction verifies the region center in viewport fractions.
func TestCenterFraction(t *testing.T) {
	d := Delimitation{X: 100, Y: 50, Width: 200, Height: 100, ReferenceWidth: 400, ReferenceHeight: 400}
	x, y := d.CenterFraction()
	if x != 0.5 || y != 0.25 {
		t.Fatalf("expected (0.5,0.25), got (%v,%v)", x, y)
	}
}
