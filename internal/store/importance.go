package store

//go:generate mockgen -source=importance.go -destination=mock_importance_store.go -package=store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trknhr/creditrisk/internal/importance"
	"github.com/trknhr/creditrisk/internal/logger"
)

var ErrNoRun = errors.New("no importance run recorded")

// Run is one recomputation of the importance table.
type Run struct {
	ID          string
	ModelPath   string
	ModelHash   string
	DatasetPath string
	TestRows    int
	CreatedAt   time.Time
	Table       importance.Table
}

type ImportanceStore interface {
	SaveRun(run Run) (Run, error)
	LatestRun() (Run, error)
}

type SQLImportanceStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLImportanceStore(db *sql.DB) ImportanceStore {
	return &SQLImportanceStore{db: db, now: time.Now}
}

// SaveRun assigns an id and timestamp when missing and stores the table
// rows ranked from 1.
func (s *SQLImportanceStore) SaveRun(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
        INSERT INTO importance_runs(id, model_path, model_hash, dataset_path, test_rows, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, run.ID, run.ModelPath, run.ModelHash, run.DatasetPath, run.TestRows, run.CreatedAt.UnixNano())
	if err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO feature_importance(run_id, rank, feature, importance)
        VALUES (?, ?, ?, ?)
    `)
	if err != nil {
		return Run{}, err
	}
	defer stmt.Close()

	for i, e := range run.Table {
		if _, err := stmt.Exec(run.ID, i+1, e.Feature, e.Importance); err != nil {
			return Run{}, fmt.Errorf("failed to insert importance for %s: %w", e.Feature, err)
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit importance run tx: %v", err)
		return Run{}, err
	}
	logger.Debug("saved importance run %s (%d features)", run.ID, len(run.Table))
	return run, nil
}

func (s *SQLImportanceStore) LatestRun() (Run, error) {
	var (
		run     Run
		created int64
	)
	err := s.db.QueryRow(`
        SELECT id, model_path, model_hash, dataset_path, test_rows, created_at
        FROM importance_runs
        ORDER BY created_at DESC, rowid DESC
        LIMIT 1
    `).Scan(&run.ID, &run.ModelPath, &run.ModelHash, &run.DatasetPath, &run.TestRows, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRun
	}
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(0, created)

	rows, err := s.db.Query(`
        SELECT feature, importance FROM feature_importance
        WHERE run_id = ?
        ORDER BY rank
    `, run.ID)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e importance.Entry
		if err := rows.Scan(&e.Feature, &e.Importance); err != nil {
			return Run{}, err
		}
		run.Table = append(run.Table, e)
	}
	return run, rows.Err()
}
