// Package control handles the editing protocol and pointer gestures.
package control

import (
	"time"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

const minMoveInterval = 16 * time.Millisecond

// Handle names the part of an element the pointer went down on.
type Handle string

const (
	// HandleBody drags the element.
	HandleBody Handle = "body"
	// HandleResize is the corner handle; the center stays fixed.
	HandleResize Handle = "resize"
	// HandleRotate spins the element around its center.
	HandleRotate Handle = "rotate"
)

// Gesture is the tagged state of the pointer interaction.
type Gesture interface {
	gesture()
}

// Idle means no pointer is down on an element.
type Idle struct{}

// Dragging tracks a body drag in viewport pixels.
type Dragging struct {
	Origin      r2.Vec
	StartCenter r2.Vec
}

// Resizing tracks a corner drag. Aspect is the width/height ratio at the start.
type Resizing struct {
	Origin      r2.Vec
	StartWidth  float64
	StartHeight float64
	Aspect      float64
	Rotation    float64
}

// Rotating tracks a rotation around Pivot.
type Rotating struct {
	StartAngle   float64
	Pivot        r2.Vec
	PointerAngle float64
}

func (Idle) gesture()     {}
func (Dragging) gesture() {}
func (Resizing) gesture() {}
func (Rotating) gesture() {}

// GestureState binds one gesture to one pointer and one target element.
type GestureState struct {
	state      Gesture
	pointer    int
	elementID  string
	lastMoveAt time.Time
	last       r2.Vec
	now        func() time.Time
}

// NewGestureState returns an idle gesture tracker.
func NewGestureState() *GestureState {
	return &GestureState{state: Idle{}, now: time.Now}
}

// SetNowFunc overrides the clock used for throttling.
func (g *GestureState) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		g.now = fn
	}
}

// State returns the current gesture.
func (g *GestureState) State() Gesture {
	return g.state
}

// Target returns the element id of the active gesture.
func (g *GestureState) Target() (string, bool) {
	if _, idle := g.state.(Idle); idle {
		return "", false
	}
	return g.elementID, true
}

// HandleDown starts a gesture on el. It reports false when another gesture is
// active, the handle is unknown, or the geometry is not usable.
func (g *GestureState) HandleDown(pointerID int, el element.Element, handle Handle, pos r2.Vec, vp delimit.Viewport, d delimit.Delimitation) bool {
	if _, idle := g.state.(Idle); !idle {
		return false
	}
	if !vp.Valid() || !d.Valid() {
		return false
	}

	center := r2.Vec{X: el.X * vp.Width, Y: el.Y * vp.Height}
	switch handle {
	case HandleBody:
		g.state = Dragging{Origin: pos, StartCenter: center}
	case HandleResize:
		aspect := 0.0
		if el.Height > 0 {
			aspect = el.Width / el.Height
		}
		g.state = Resizing{
			Origin:      pos,
			StartWidth:  el.Width,
			StartHeight: el.Height,
			Aspect:      aspect,
			Rotation:    el.Rotation,
		}
	case HandleRotate:
		g.state = Rotating{
			StartAngle:   el.Rotation,
			Pivot:        center,
			PointerAngle: geom.Heading(r2.Sub(pos, center)),
		}
	default:
		return false
	}

	g.pointer = pointerID
	g.elementID = el.ID
	g.lastMoveAt = g.now()
	g.last = pos
	return true
}

// HandleMove converts a pointer move into a proposal for the active gesture.
// Moves from other pointers, repeated positions and moves inside the throttle
// window produce nothing.
func (g *GestureState) HandleMove(pointerID int, pos r2.Vec, vp delimit.Viewport, d delimit.Delimitation) (Proposal, bool) {
	if _, idle := g.state.(Idle); idle || g.pointer != pointerID {
		return Proposal{}, false
	}
	if !vp.Valid() || !d.Valid() {
		return Proposal{}, false
	}

	now := g.now()
	if !g.lastMoveAt.IsZero() && now.Sub(g.lastMoveAt) < minMoveInterval {
		return Proposal{}, false
	}
	if pos == g.last {
		return Proposal{}, false
	}
	g.lastMoveAt = now
	g.last = pos

	switch s := g.state.(type) {
	case Dragging:
		c := r2.Add(s.StartCenter, r2.Sub(pos, s.Origin))
		return Proposal{Kind: ProposeMove, ElementID: g.elementID, X: c.X / vp.Width, Y: c.Y / vp.Height}, true
	case Resizing:
		m := delimit.Scale(vp, d)
		local := geom.Rotate(r2.Sub(pos, s.Origin), -s.Rotation)
		return Proposal{
			Kind:      ProposeResize,
			ElementID: g.elementID,
			Width:     s.StartWidth + 2*local.X/m.ScaleX,
			Height:    s.StartHeight + 2*local.Y/m.ScaleY,
			Aspect:    s.Aspect,
		}, true
	case Rotating:
		turned := geom.Heading(r2.Sub(pos, s.Pivot)) - s.PointerAngle
		return Proposal{
			Kind:      ProposeRotate,
			ElementID: g.elementID,
			Rotation:  geom.NormalizeDegrees(s.StartAngle + turned),
		}, true
	default:
		return Proposal{}, false
	}
}

// HandleUp ends the gesture bound to pointerID and returns its target id.
func (g *GestureState) HandleUp(pointerID int) (string, bool) {
	if _, idle := g.state.(Idle); idle || g.pointer != pointerID {
		return "", false
	}
	id := g.elementID
	g.Reset()
	return id, true
}

// Reset drops any active gesture.
func (g *GestureState) Reset() {
	g.state = Idle{}
	g.pointer = 0
	g.elementID = ""
	g.lastMoveAt = time.Time{}
}
