// Package control handles the editing protocol and pointer gestures.
package control

import (
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
)

// ProposalKind identifies which constraint a proposal feeds.
type ProposalKind string

const (
	// ProposeMove carries a fractional center.
	ProposeMove ProposalKind = "move"
	// ProposeResize carries a size in reference units.
	ProposeResize ProposalKind = "resize"
	// ProposeRotate carries an angle in degrees.
	ProposeRotate ProposalKind = "rotate"
)

// Proposal is the raw value a gesture wants before constraints run.
type Proposal struct {
	Kind      ProposalKind
	ElementID string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Aspect    float64
	Rotation  float64
}

// Apply runs p through the matching constraint and returns the edited element
// with a flag set when a resize stopped at the region.
func Apply(ed *element.Editor, el element.Element, p Proposal, vp delimit.Viewport, d delimit.Delimitation) (element.Element, bool) {
	switch p.Kind {
	case ProposeMove:
		return ed.Move(el, p.X, p.Y, vp, d), false
	case ProposeResize:
		return ed.Resize(el, p.Width, p.Height, p.Aspect, vp, d)
	case ProposeRotate:
		return ed.Rotate(el, p.Rotation, vp, d), false
	default:
		return el, false
	}
}
