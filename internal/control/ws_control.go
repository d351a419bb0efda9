// Package control handles the editing protocol and pointer gestures.
package control

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/session"
	"github.com/gorilla/websocket"
)

// Persister stores a committed element.
type Persister func(ctx context.Context, el element.Element) error

// Server handles websocket control input.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	editor   *element.Editor
	gestures *GestureState
	persist  Persister
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, editor *element.Editor, persist Persister) *Server {
	return &Server{
		session:  sess,
		editor:   editor,
		persist:  persist,
		gestures: NewGestureState(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.WriteJSON(Reply{T: ReplyError, Text: err.Error()})
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		reply, err := s.handleMessage(r.Context(), msg)
		if err != nil {
			log.Printf("control: %s: %v", msg.T, err)
			reply = &Reply{T: ReplyError, Text: err.Error()}
		}
		if reply == nil {
			continue
		}
		if err := s.sendTo(conn, *reply); err != nil {
			return
		}
	}
}

// Notify pushes a reply to the active connection, if any.
func (s *Server) Notify(reply Reply) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	_ = s.sendTo(conn, reply)
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection and any unfinished gesture.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.gestures.Reset()
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// sendTo writes a reply to the active connection.
func (s *Server) sendTo(conn *websocket.Conn, reply Reply) error {
	s.mu.Lock()
	active := s.conn
	s.mu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(reply)
}

// handleMessage dispatches a single control message. A nil reply means nothing to send.
func (s *Server) handleMessage(ctx context.Context, msg Message) (*Reply, error) {
	switch msg.T {
	case "down":
		return s.handlePointerDown(msg)
	case "move":
		return s.handlePointerMove(msg)
	case "up":
		return s.handlePointerUp(ctx, msg)
	case "viewport":
		return s.handleViewport(msg)
	case "curve", "fontSize", "rotation", "size":
		return s.handleEdit(ctx, msg)
	default:
		return nil, nil
	}
}

// handlePointerDown starts a gesture on the addressed element.
func (s *Server) handlePointerDown(msg Message) (*Reply, error) {
	el, ok := s.session.Element(msg.El)
	if !ok {
		return nil, fmt.Errorf("element %q not found", msg.El)
	}
	vp, d := s.session.Geometry()
	pos := NormToPixels(msg.X, msg.Y, vp)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gestures.HandleDown(msg.ID, el, Handle(msg.Handle), pos, vp, d) {
		return nil, fmt.Errorf("pointer %d: cannot start %q gesture on %q", msg.ID, msg.Handle, msg.El)
	}
	return nil, nil
}

// handlePointerMove applies the proposal of the active gesture.
func (s *Server) handlePointerMove(msg Message) (*Reply, error) {
	vp, d := s.session.Geometry()
	pos := NormToPixels(msg.X, msg.Y, vp)
	s.mu.Lock()
	p, ok := s.gestures.HandleMove(msg.ID, pos, vp, d)
	if !ok {
		s.mu.Unlock()
		return nil, nil
	}
	el, found := s.session.Element(p.ElementID)
	if !found {
		s.gestures.Reset()
		s.mu.Unlock()
		return nil, fmt.Errorf("element %q not found", p.ElementID)
	}
	s.mu.Unlock()

	out, atBoundary := Apply(s.editor, el, p, vp, d)
	s.session.PutElement(out)
	return &Reply{T: ReplyElement, Element: &out, AtBoundary: atBoundary}, nil
}

// handlePointerUp ends the gesture and commits its target.
func (s *Server) handlePointerUp(ctx context.Context, msg Message) (*Reply, error) {
	s.mu.Lock()
	id, ok := s.gestures.HandleUp(msg.ID)
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	el, found := s.session.Element(id)
	if !found {
		return nil, fmt.Errorf("element %q not found", id)
	}
	return s.commit(ctx, el, false)
}

// handleViewport records the canvas size reported by the client.
func (s *Server) handleViewport(msg Message) (*Reply, error) {
	if msg.W <= 0 || msg.H <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %vx%v", msg.W, msg.H)
	}
	s.session.SetViewport(delimit.Viewport{Width: msg.W, Height: msg.H})
	return nil, nil
}

// handleEdit applies an explicit property edit and commits it.
func (s *Server) handleEdit(ctx context.Context, msg Message) (*Reply, error) {
	el, ok := s.session.Element(msg.El)
	if !ok {
		return nil, fmt.Errorf("element %q not found", msg.El)
	}
	vp, d := s.session.Geometry()

	var (
		out        element.Element
		atBoundary bool
		err        error
	)
	switch msg.T {
	case "curve":
		out, err = s.editor.SetCurve(el, int(math.Round(msg.Value)), vp, d)
	case "fontSize":
		if msg.Value <= 0 {
			return nil, fmt.Errorf("font size must be positive")
		}
		out, atBoundary, err = s.editor.SetFontSize(el, msg.Value, vp, d)
	case "rotation":
		out = s.editor.Rotate(el, msg.Value, vp, d)
	case "size":
		if msg.W <= 0 || msg.H <= 0 {
			return nil, fmt.Errorf("size must be positive")
		}
		out, atBoundary = s.editor.Resize(el, msg.W, msg.H, 0, vp, d)
	}
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, out, atBoundary)
}

// commit stores el in the session, persists it and builds the reply.
func (s *Server) commit(ctx context.Context, el element.Element, atBoundary bool) (*Reply, error) {
	s.session.PutElement(el)
	if s.persist != nil {
		if err := s.persist(ctx, el); err != nil {
			return nil, fmt.Errorf("persist element: %w", err)
		}
	}
	return &Reply{T: ReplyElement, Element: &el, AtBoundary: atBoundary}, nil
}
