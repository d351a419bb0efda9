// Package app wires HTTP, the control websocket and persistence together.
package app

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/storage"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/web"
)

const maxBodyBytes = 1 << 20

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/delimitation", a.handleDelimitation)
	mux.HandleFunc("/api/elements", a.handleElements)
	mux.HandleFunc("/api/elements/", a.handleElement)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool                  `json:"authenticated"`
	Viewport      delimit.Viewport      `json:"viewport"`
	Delimitation  *delimit.Delimitation `json:"delimitation,omitempty"`
	Elements      []element.Element     `json:"elements"`
}

type createElementRequest struct {
	Kind     element.Kind        `json:"kind"`
	Content  string              `json:"content,omitempty"`
	FontSize float64             `json:"fontSize,omitempty"`
	Image    *element.ImageProps `json:"image,omitempty"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the viewport, region and elements.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		Viewport:      snap.Viewport,
		Elements:      snap.Elements,
	}
	if snap.Delimitation.Valid() {
		d := snap.Delimitation
		resp.Delimitation = &d
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleDelimitation reads or replaces the printable region.
func (a *App) handleDelimitation(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(a.session.Delimitation())
	case http.MethodPut:
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		d, err := a.UpdateDelimitation(r.Context(), raw)
		if err != nil {
			var invalid *delimit.ValidationError
			if errors.As(err, &invalid) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("delimitation: %v", err)
			http.Error(w, "failed to save delimitation", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(d)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleElements lists elements or creates one through the factories.
func (a *App) handleElements(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(a.session.Elements())
	case http.MethodPost:
		var req createElementRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		el, err := a.newElement(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := a.AddElement(r.Context(), el); err != nil {
			log.Printf("elements: add %s: %v", el.ID, err)
			http.Error(w, "failed to save element", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(el)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleElement deletes a single element addressed by /api/elements/{id}.
func (a *App) handleElement(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/elements/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := a.RemoveElement(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("elements: delete %s: %v", id, err)
		http.Error(w, "failed to delete element", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// newElement builds a text or image element centered in the current region.
func (a *App) newElement(req createElementRequest) (element.Element, error) {
	d := a.session.Delimitation()
	z := a.session.NextZOrder()
	switch req.Kind {
	case element.KindText:
		return element.NewText(req.Content, req.FontSize, z, d)
	case element.KindImage:
		if req.Image == nil {
			return element.Element{}, errors.New("image is required")
		}
		return element.NewImage(*req.Image, z, d)
	default:
		return element.Element{}, errors.New("kind must be text or image")
	}
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
