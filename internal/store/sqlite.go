package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/alexisdpc/Heston-model/internal/errors"
	"github.com/alexisdpc/Heston-model/internal/models"
)

// SQLiteStore implements RunStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based run store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Pricing runs: model inputs and Monte Carlo estimates
	CREATE TABLE IF NOT EXISTS pricing_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		alpha REAL NOT NULL,
		b REAL NOT NULL,
		sigma REAL NOT NULL,
		rho REAL NOT NULL,
		mu REAL NOT NULL,
		v0 REAL NOT NULL,
		s0 REAL NOT NULL,
		grid_start REAL NOT NULL,
		grid_end REAL NOT NULL,
		steps INTEGER NOT NULL,
		paths INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		strike REAL NOT NULL,
		call_price REAL NOT NULL,
		put_price REAL NOT NULL,
		call_stderr REAL NOT NULL,
		put_stderr REAL NOT NULL,
		mean_terminal REAL NOT NULL,
		feller_satisfied INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pricing_runs_timestamp ON pricing_runs(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun inserts a pricing run and fills in its assigned ID.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *models.RunRecord) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO pricing_runs (
			timestamp, alpha, b, sigma, rho, mu, v0, s0,
			grid_start, grid_end, steps, paths, seed,
			strike, call_price, put_price, call_stderr, put_stderr,
			mean_terminal, feller_satisfied
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp.UTC(), run.Alpha, run.B, run.Sigma, run.Rho, run.Mu, run.V0, run.S0,
		run.GridStart, run.GridEnd, run.Steps, run.Paths, int64(run.Seed),
		run.Strike, run.Call, run.Put, run.CallStdErr, run.PutStdErr,
		run.MeanTerminal, run.Feller,
	)
	if err != nil {
		return apperrors.NewStoreError("save_run", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return apperrors.NewStoreError("save_run", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]models.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, alpha, b, sigma, rho, mu, v0, s0,
		       grid_start, grid_end, steps, paths, seed,
		       strike, call_price, put_price, call_stderr, put_stderr,
		       mean_terminal, feller_satisfied
		FROM pricing_runs
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, apperrors.NewStoreError("list_runs", err)
	}
	defer rows.Close()

	var runs []models.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, apperrors.NewStoreError("list_runs", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("list_runs", err)
	}
	return runs, nil
}

// GetRun returns a single run by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id int64) (*models.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, alpha, b, sigma, rho, mu, v0, s0,
		       grid_start, grid_end, steps, paths, seed,
		       strike, call_price, put_price, call_stderr, put_stderr,
		       mean_terminal, feller_satisfied
		FROM pricing_runs
		WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRunNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get_run", err)
	}
	return run, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.RunRecord, error) {
	var run models.RunRecord
	var ts time.Time
	var seed int64
	err := row.Scan(
		&run.ID, &ts, &run.Alpha, &run.B, &run.Sigma, &run.Rho, &run.Mu, &run.V0, &run.S0,
		&run.GridStart, &run.GridEnd, &run.Steps, &run.Paths, &seed,
		&run.Strike, &run.Call, &run.Put, &run.CallStdErr, &run.PutStdErr,
		&run.MeanTerminal, &run.Feller,
	)
	if err != nil {
		return nil, err
	}
	run.Timestamp = ts
	run.Seed = uint64(seed)
	return &run, nil
}
