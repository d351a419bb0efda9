// Package storage persists committed overlay elements.
package storage

import (
	"context"
	"errors"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
)

// ErrNotFound is returned when an element id is not stored.
var ErrNotFound = errors.New("element not found")

// Repository stores elements keyed by id.
type Repository interface {
	Save(ctx context.Context, el element.Element) error
	List(ctx context.Context) ([]element.Element, error)
	Delete(ctx context.Context, id string) error
}
