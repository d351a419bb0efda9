// Package delimit describes the printable region and maps it into viewport pixels.
package delimit

import "github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"

// Delimitation is the printable region authored in a fixed reference pixel space.
type Delimitation struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	ReferenceWidth  float64 `json:"referenceWidth"`
	ReferenceHeight float64 `json:"referenceHeight"`
}

// Valid reports whether the region can be mapped into a viewport.
func (d Delimitation) Valid() bool {
	return d.ReferenceWidth > 0 && d.ReferenceHeight > 0 && d.Width > 0 && d.Height > 0
}

// Viewport is the current rendering surface size in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the viewport has a usable size.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Mapping holds the per-axis scale factors and the region in viewport pixels.
type Mapping struct {
	ScaleX float64
	ScaleY float64
	Bounds geom.Rect
}

// Scale maps d into vp. Zero reference dimensions are a caller error; check Valid first.
func Scale(vp Viewport, d Delimitation) Mapping {
	sx := vp.Width / d.ReferenceWidth
	sy := vp.Height / d.ReferenceHeight
	return Mapping{
		ScaleX: sx,
		ScaleY: sy,
		Bounds: geom.Rect{
			X: d.X * sx,
			Y: d.Y * sy,
			W: d.Width * sx,
			H: d.Height * sy,
		},
	}
}

// CenterFraction returns the region center as a fraction of the viewport size.
// The result does not depend on the viewport because both axes scale uniformly.
func (d Delimitation) CenterFraction() (float64, float64) {
	return (d.X + d.Width/2) / d.ReferenceWidth, (d.Y + d.Height/2) / d.ReferenceHeight
}
