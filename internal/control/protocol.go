// Package control handles the editing protocol and pointer gestures.
package control

import "github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"

// Message is a control websocket payload sent by the editor UI.
type Message struct {
	T      string  `json:"t"`
	ID     int     `json:"id,omitempty"`
	El     string  `json:"el,omitempty"`
	Handle string  `json:"handle,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// Reply is a control websocket payload sent back to the editor UI.
type Reply struct {
	T          string           `json:"t"`
	Element    *element.Element `json:"element,omitempty"`
	AtBoundary bool             `json:"atBoundary,omitempty"`
	ID         string           `json:"id,omitempty"`
	Text       string           `json:"text,omitempty"`
}

// Reply types.
const (
	ReplyElement = "element"
	ReplyRemoved = "removed"
	ReplyError   = "error"
)
