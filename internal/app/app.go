// Package app wires HTTP, the control websocket and persistence together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/config"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/control"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/session"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/storage"
)

// App coordinates the HTTP API, the control websocket and element storage.
type App struct {
	mu      sync.Mutex
	cfg     config.Config
	session *session.Session
	editor  *element.Editor
	repo    storage.Repository
	control *control.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, editor *element.Editor, repo storage.Repository) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if editor == nil {
		return nil, errors.New("editor is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		editor:  editor,
		repo:    repo,
	}
	app.control = control.NewServer(sess, editor, repo.Save)
	return app, nil
}

// Start loads the delimitation and stored elements into the session.
func (a *App) Start(ctx context.Context) error {
	d, err := delimit.Load(a.cfg.DelimitationPath)
	if err != nil {
		return err
	}
	a.session.SetDelimitation(d)
	a.session.SetViewport(delimit.Viewport{
		Width:  float64(a.cfg.ViewportWidth),
		Height: float64(a.cfg.ViewportHeight),
	})

	list, err := a.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load elements: %w", err)
	}
	a.session.ReplaceElements(list)
	if !d.Valid() {
		log.Printf("delimitation: not set at %s", a.cfg.DelimitationPath)
	}
	log.Printf("elements: loaded %d", len(list))
	return nil
}

// UpdateDelimitation validates and stores a new region, then refits every element.
func (a *App) UpdateDelimitation(ctx context.Context, raw []byte) (delimit.Delimitation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, err := delimit.Parse(raw)
	if err != nil {
		return delimit.Delimitation{}, err
	}
	if err := delimit.Save(a.cfg.DelimitationPath, d); err != nil {
		return delimit.Delimitation{}, err
	}
	a.session.SetDelimitation(d)

	vp := a.session.Viewport()
	for _, el := range a.session.Elements() {
		out, changed := a.editor.Fit(el, vp, d)
		if !changed {
			continue
		}
		a.session.PutElement(out)
		if err := a.repo.Save(ctx, out); err != nil {
			return d, fmt.Errorf("save refitted element: %w", err)
		}
		a.control.Notify(control.Reply{T: control.ReplyElement, Element: &out, AtBoundary: true})
	}
	return d, nil
}

// AddElement stores a new element and announces it to the editor.
func (a *App) AddElement(ctx context.Context, el element.Element) error {
	if err := a.repo.Save(ctx, el); err != nil {
		return err
	}
	a.session.PutElement(el)
	a.control.Notify(control.Reply{T: control.ReplyElement, Element: &el})
	return nil
}

// RemoveElement deletes an element from storage and the session.
func (a *App) RemoveElement(ctx context.Context, id string) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.session.RemoveElement(id)
	a.control.Notify(control.Reply{T: control.ReplyRemoved, ID: id})
	return nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
