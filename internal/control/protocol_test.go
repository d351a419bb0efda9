package control

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
)

// TestProtocol_Down verifies decoding a down message.
func TestProtocol_Down(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"down","id":1,"el":"abc","handle":"rotate","x":0.5,"y":0.2}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "down" || msg.ID != 1 || msg.El != "abc" || Handle(msg.Handle) != HandleRotate || msg.X != 0.5 || msg.Y != 0.2 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Move verifies decoding a move message.
func TestProtocol_Move(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"move","id":2,"x":0.1,"y":0.25}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "move" || msg.ID != 2 || msg.X != 0.1 || msg.Y != 0.25 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Size verifies decoding a size edit.
func TestProtocol_Size(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"size","el":"abc","w":120,"h":40}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "size" || msg.El != "abc" || msg.W != 120 || msg.H != 40 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Curve verifies decoding a curve edit.
func TestProtocol_Curve(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"curve","el":"abc","value":-120}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "curve" || msg.Value != -120 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_ElementReply verifies encoding an element reply.
func TestProtocol_ElementReply(t *testing.T) {
	el := element.Element{ID: "abc", Kind: element.KindImage, X: 0.5, Y: 0.5, Width: 10, Height: 10}
	raw, err := json.Marshal(Reply{T: ReplyElement, Element: &el, AtBoundary: true})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, `"t":"element"`) || !strings.Contains(s, `"atBoundary":true`) || !strings.Contains(s, `"id":"abc"`) {
		t.Fatalf("unexpected reply: %s", s)
	}
}
