package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the outline tables if they don't exist.
//
// part_id and chapter_id intentionally carry no REFERENCES clause: deleting
// a part orphans its chapters (and a constraint would reject that state).
// The only constraints are primary keys and the novel_id declarations.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	createNovels := `
		CREATE TABLE IF NOT EXISTS ` + tables.Novels + ` (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT,
			genre TEXT,
			target_audience TEXT,
			status TEXT,
			logline TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	createParts := `
		CREATE TABLE IF NOT EXISTS ` + tables.Parts + ` (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL REFERENCES ` + tables.Novels + `(id),
			order_index INTEGER NOT NULL DEFAULT 1,
			title TEXT,
			summary TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	createChapters := `
		CREATE TABLE IF NOT EXISTS ` + tables.Chapters + ` (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL REFERENCES ` + tables.Novels + `(id),
			part_id TEXT,
			order_index INTEGER NOT NULL DEFAULT 1,
			title TEXT,
			pov_character TEXT,
			summary TEXT,
			word_count_goal INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	createBeats := `
		CREATE TABLE IF NOT EXISTS ` + tables.Beats + ` (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL REFERENCES ` + tables.Novels + `(id),
			chapter_id TEXT,
			order_index INTEGER NOT NULL DEFAULT 1,
			beat_type TEXT,
			description TEXT NOT NULL,
			viewpoint TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	for _, ddl := range []string{createNovels, createParts, createChapters, createBeats} {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return err
		}
	}

	return nil
}

// DropAllTables drops all outline tables, children first.
// Used by cmd/seed for a fresh start; never called by the server.
func DropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	tableNames := []string{
		tables.Beats,
		tables.Chapters,
		tables.Parts,
		tables.Novels,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return err
		}
	}

	return nil
}
