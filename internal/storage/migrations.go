package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MigrationVersion tracks the current database schema version.
const MigrationVersion = 1

// initializeDatabase creates the schema and records applied migrations.
func initializeDatabase(ctx context.Context, db *sql.DB) error {
	migrationsTable := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		version INTEGER NOT NULL UNIQUE,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM migrations").Scan(&current); err != nil {
		return fmt.Errorf("check migration version: %w", err)
	}
	if current < 1 {
		if err := applyMigration1(ctx, db); err != nil {
			return fmt.Errorf("apply migration 1: %w", err)
		}
	}
	return nil
}

// applyMigration1 creates the elements table.
func applyMigration1(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	elementsTable := `
	CREATE TABLE elements (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		z_order INTEGER NOT NULL,
		payload TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := tx.ExecContext(ctx, elementsTable); err != nil {
		return fmt.Errorf("create elements table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "CREATE INDEX idx_elements_z_order ON elements(z_order)"); err != nil {
		return fmt.Errorf("create z order index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (version) VALUES (?)", 1); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}
