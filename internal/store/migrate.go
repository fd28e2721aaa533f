package store

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		// importance_runs: one row per recomputation of the importance table
		`CREATE TABLE IF NOT EXISTS importance_runs (
			id           TEXT PRIMARY KEY,
			model_path   TEXT NOT NULL,
			model_hash   TEXT NOT NULL,
			dataset_path TEXT NOT NULL DEFAULT '',
			test_rows    INTEGER NOT NULL DEFAULT 0,
			created_at   INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS feature_importance (
			run_id     TEXT NOT NULL REFERENCES importance_runs(id) ON DELETE CASCADE,
			rank       INTEGER NOT NULL,
			feature    TEXT NOT NULL,
			importance REAL NOT NULL,
			PRIMARY KEY (run_id, rank)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_feature_importance_run ON feature_importance(run_id);`,
		// meta: mtime of the model artifact / dataset at the last recomputation
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
