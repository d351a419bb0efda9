package control

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/session"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/testutil"
	"github.com/gorilla/websocket"
)

// newTestServer returns a server over a square region holding one text element.
func newTestServer(t *testing.T, passwordMode bool) (*Server, *session.Session, *testutil.MemoryRepository, *time.Time) {
	t.Helper()
	sess := session.New("pw", passwordMode)
	sess.SetDelimitation(square)
	sess.SetViewport(squareVP)
	sess.PutElement(textAt(0.5, 0.5))

	repo := testutil.NewMemoryRepository()
	ed := element.NewEditor(constraint.New(constraint.DefaultTuning()))
	server := NewServer(sess, ed, repo.Save)

	now := time.Unix(0, 0)
	server.gestures.SetNowFunc(func() time.Time { return now })
	return server, sess, repo, &now
}

// TestHandleMessage_DragClampedAndCommittedOnUp verifies a drag is clamped live and persisted on release.
func TestHandleMessage_DragClampedAndCommittedOnUp(t *testing.T) {
	server, sess, repo, now := newTestServer(t, false)
	ctx := context.Background()

	if reply, err := server.handleMessage(ctx, Message{T: "down", ID: 1, El: "t1", Handle: "body", X: 0.5, Y: 0.5}); err != nil || reply != nil {
		t.Fatalf("unexpected down result: %+v %v", reply, err)
	}
	*now = now.Add(20 * time.Millisecond)
	reply, err := server.handleMessage(ctx, Message{T: "move", ID: 1, X: 1, Y: 0.5})
	if err != nil || reply == nil || reply.T != ReplyElement {
		t.Fatalf("unexpected move result: %+v %v", reply, err)
	}
	// Half width 20px against the 200px edge.
	if reply.Element.X != 0.9 || reply.Element.Y != 0.5 {
		t.Fatalf("expected center (0.9,0.5), got (%v,%v)", reply.Element.X, reply.Element.Y)
	}
	if len(repo.Saved()) != 0 {
		t.Fatalf("expected no persistence before release")
	}

	reply, err = server.handleMessage(ctx, Message{T: "up", ID: 1, X: 1, Y: 0.5})
	if err != nil || reply == nil {
		t.Fatalf("unexpected up result: %+v %v", reply, err)
	}
	saved := repo.Saved()
	if len(saved) != 1 || saved[0].X != 0.9 {
		t.Fatalf("expected committed element, got %+v", saved)
	}
	stored, _ := sess.Element("t1")
	if stored.X != 0.9 {
		t.Fatalf("expected session to hold clamped element, got %v", stored.X)
	}
}

// TestHandleMessage_UnknownElement verifies edits on missing ids report an error.
func TestHandleMessage_UnknownElement(t *testing.T) {
	server, _, _, _ := newTestServer(t, false)
	if _, err := server.handleMessage(context.Background(), Message{T: "down", ID: 1, El: "nope", Handle: "body"}); err == nil {
		t.Fatalf("expected error for unknown element")
	}
	if _, err := server.handleMessage(context.Background(), Message{T: "curve", El: "nope", Value: 10}); err == nil {
		t.Fatalf("expected error for unknown element")
	}
}

// TestHandleMessage_RefusedDownReportsError verifies a down that cannot start a gesture is answered.
func TestHandleMessage_RefusedDownReportsError(t *testing.T) {
	server, _, _, _ := newTestServer(t, false)
	ctx := context.Background()
	if _, err := server.handleMessage(ctx, Message{T: "down", ID: 1, El: "t1", Handle: "corner", X: 0.5, Y: 0.5}); err == nil {
		t.Fatalf("expected error for unknown handle")
	}
	if _, err := server.handleMessage(ctx, Message{T: "down", ID: 1, El: "t1", Handle: "body", X: 0.5, Y: 0.5}); err != nil {
		t.Fatalf("unexpected down error: %v", err)
	}
	if _, err := server.handleMessage(ctx, Message{T: "down", ID: 2, El: "t1", Handle: "rotate", X: 0.6, Y: 0.5}); err == nil {
		t.Fatalf("expected error while another gesture is active")
	}
}

// TestHandleMessage_SizeEditReportsBoundary verifies explicit size edits are clamped at the current ratio and flagged.
func TestHandleMessage_SizeEditReportsBoundary(t *testing.T) {
	server, _, repo, _ := newTestServer(t, false)
	reply, err := server.handleMessage(context.Background(), Message{T: "size", El: "t1", W: 500, H: 100})
	if err != nil {
		t.Fatalf("size edit failed: %v", err)
	}
	if !reply.AtBoundary || math.Abs(reply.Element.Width-200) > 1e-9 || math.Abs(reply.Element.Height-100) > 1e-9 {
		t.Fatalf("unexpected reply: %+v", reply.Element)
	}
	if len(repo.Saved()) != 1 {
		t.Fatalf("expected property edit to be persisted")
	}
}

// TestHandleMessage_CurveRejectedOnImage verifies text-only edits surface the editor error.
func TestHandleMessage_CurveRejectedOnImage(t *testing.T) {
	server, sess, _, _ := newTestServer(t, false)
	sess.PutElement(element.Element{ID: "i1", Kind: element.KindImage, X: 0.5, Y: 0.5, Width: 20, Height: 20, Image: &element.ImageProps{NaturalWidth: 1, NaturalHeight: 1}})
	_, err := server.handleMessage(context.Background(), Message{T: "curve", El: "i1", Value: 40})
	if !errors.Is(err, element.ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
}

// TestHandleMessage_PersistFailure verifies storage errors are returned.
func TestHandleMessage_PersistFailure(t *testing.T) {
	server, _, repo, _ := newTestServer(t, false)
	repo.FailWith(errors.New("disk full"))
	if _, err := server.handleMessage(context.Background(), Message{T: "rotation", El: "t1", Value: 30}); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

// TestHandleMessage_Viewport verifies viewport updates are validated.
func TestHandleMessage_Viewport(t *testing.T) {
	server, sess, _, _ := newTestServer(t, false)
	if _, err := server.handleMessage(context.Background(), Message{T: "viewport", W: 0, H: 10}); err == nil {
		t.Fatalf("expected error for empty viewport")
	}
	if _, err := server.handleMessage(context.Background(), Message{T: "viewport", W: 640, H: 480}); err != nil {
		t.Fatalf("viewport update failed: %v", err)
	}
	if vp := sess.Viewport(); vp.Width != 640 || vp.Height != 480 {
		t.Fatalf("unexpected viewport %+v", vp)
	}
}

// TestServeHTTP_Unauthorized verifies the websocket requires authentication.
func TestServeHTTP_Unauthorized(t *testing.T) {
	server, _, _, _ := newTestServer(t, true)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/control", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestServeHTTP_SingleConnection verifies a second control connection is rejected.
func TestServeHTTP_SingleConnection(t *testing.T) {
	server, _, _, _ := newTestServer(t, false)
	ts := httptest.NewServer(server)
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer first.Close()

	if err := first.WriteJSON(Message{T: "rotation", El: "t1", Value: 15}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var reply Reply
	if err := first.ReadJSON(&reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if reply.T != ReplyElement || reply.Element == nil || reply.Element.Rotation != 15 {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer second.Close()
	var rejected Reply
	if err := second.ReadJSON(&rejected); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if rejected.T != ReplyError {
		t.Fatalf("expected error reply, got %+v", rejected)
	}
}
