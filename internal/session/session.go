// Package session holds runtime state for the active editor.
package session

import (
	"sort"
	"sync"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	Viewport      delimit.Viewport
	Delimitation  delimit.Delimitation
	Elements      []element.Element
}

// Session holds runtime state for the active editor.
type Session struct {
	mu            sync.RWMutex
	password      string
	passwordMode  bool
	authenticated bool
	viewport      delimit.Viewport
	delimitation  delimit.Delimitation
	elements      map[string]element.Element
}

// New returns an initialized session with the given password.
// When passwordMode is false every caller is treated as authenticated.
func New(password string, passwordMode bool) *Session {
	return &Session{
		password:     password,
		passwordMode: passwordMode,
		elements:     make(map[string]element.Element),
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.passwordMode {
		s.authenticated = true
		return true
	}
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated || !s.passwordMode
}

// SetViewport records the rendered canvas size reported by the client.
func (s *Session) SetViewport(vp delimit.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = vp
}

// Viewport returns the current canvas size.
func (s *Session) Viewport() delimit.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// SetDelimitation stores the printable region.
func (s *Session) SetDelimitation(d delimit.Delimitation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delimitation = d
}

// Delimitation returns the printable region.
func (s *Session) Delimitation() delimit.Delimitation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delimitation
}

// Geometry returns the viewport and delimitation as one consistent pair.
func (s *Session) Geometry() (delimit.Viewport, delimit.Delimitation) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport, s.delimitation
}

// PutElement inserts or replaces an element by id.
func (s *Session) PutElement(e element.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements[e.ID] = e.Clone()
}

// Element returns the element with the given id.
func (s *Session) Element(id string) (element.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.elements[id]
	if !ok {
		return element.Element{}, false
	}
	return e.Clone(), true
}

// RemoveElement deletes an element and reports whether it existed.
func (s *Session) RemoveElement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[id]; !ok {
		return false
	}
	delete(s.elements, id)
	return true
}

// ReplaceElements swaps the whole element set, typically after loading from storage.
func (s *Session) ReplaceElements(list []element.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = make(map[string]element.Element, len(list))
	for _, e := range list {
		s.elements[e.ID] = e.Clone()
	}
}

// Elements returns copies of all elements ordered by z order.
func (s *Session) Elements() []element.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// NextZOrder returns a z order above every current element.
func (s *Session) NextZOrder() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 0
	for _, e := range s.elements {
		if e.ZOrder >= next {
			next = e.ZOrder + 1
		}
	}
	return next
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated || !s.passwordMode,
		Viewport:      s.viewport,
		Delimitation:  s.delimitation,
		Elements:      s.sortedLocked(),
	}
}

// sortedLocked returns cloned elements by z order then id. Callers hold mu.
func (s *Session) sortedLocked() []element.Element {
	out := make([]element.Element, 0, len(s.elements))
	for _, e := range s.elements {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ZOrder != out[j].ZOrder {
			return out[i].ZOrder < out[j].ZOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}
