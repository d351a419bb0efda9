package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/element"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteRepository implements Repository on a single-file SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeDatabase(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save inserts or replaces el.
func (r *SQLiteRepository) Save(ctx context.Context, el element.Element) error {
	if el.ID == "" {
		return errors.New("element id cannot be empty")
	}
	payload, err := json.Marshal(el)
	if err != nil {
		return fmt.Errorf("encode element %s: %w", el.ID, err)
	}
	query := `
		INSERT INTO elements (id, kind, z_order, payload, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			z_order = excluded.z_order,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, el.ID, string(el.Kind), el.ZOrder, string(payload)); err != nil {
		return fmt.Errorf("save element %s: %w", el.ID, err)
	}
	return nil
}

// Get returns the element with id or ErrNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (element.Element, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, "SELECT payload FROM elements WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return element.Element{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return element.Element{}, fmt.Errorf("load element %s: %w", id, err)
	}
	return decodeElement(payload)
}

// List returns all elements ordered by z order.
func (r *SQLiteRepository) List(ctx context.Context) ([]element.Element, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT payload FROM elements ORDER BY z_order, id")
	if err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []element.Element
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan element: %w", err)
		}
		el, err := decodeElement(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate elements: %w", err)
	}
	return out, nil
}

// Delete removes the element with id or returns ErrNotFound.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM elements WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete element %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// decodeElement parses a stored payload.
func decodeElement(payload string) (element.Element, error) {
	var el element.Element
	if err := json.Unmarshal([]byte(payload), &el); err != nil {
		return element.Element{}, fmt.Errorf("decode element: %w", err)
	}
	return el, nil
}
