package control

import (
	"testing"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
)

// TestNormToPixels_TopLeft verifies the top-left mapping.
func TestNormToPixels_TopLeft(t *testing.T) {
	p := NormToPixels(0, 0, delimit.Viewport{Width: 300, Height: 400})
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("expected (0,0), got %+v", p)
	}
}

// TestNormToPixels_Center verifies center mapping.
func TestNormToPixels_Center(t *testing.T) {
	p := NormToPixels(0.5, 0.5, delimit.Viewport{Width: 300, Height: 400})
	if p.X != 150 || p.Y != 200 {
		t.Fatalf("expected (150,200), got %+v", p)
	}
}

// TestNormToPixels_BottomRight verifies bottom-right mapping.
func TestNormToPixels_BottomRight(t *testing.T) {
	p := NormToPixels(1, 1, delimit.Viewport{Width: 300, Height: 400})
	if p.X != 300 || p.Y != 400 {
		t.Fatalf("expected (300,400), got %+v", p)
	}
}

// TestNormToPixels_ClampOutOfRange verifies normalization clamps out-of-range values.
func TestNormToPixels_ClampOutOfRange(t *testing.T) {
	p := NormToPixels(-1, 2, delimit.Viewport{Width: 300, Height: 400})
	if p.X != 0 || p.Y != 400 {
		t.Fatalf("expected clamped (0,400), got %+v", p)
	}
}

// TestNormToPixels_EmptyViewport verifies an unset viewport maps to the origin.
func TestNormToPixels_EmptyViewport(t *testing.T) {
	p := NormToPixels(0.5, 0.5, delimit.Viewport{})
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("expected (0,0), got %+v", p)
	}
}
