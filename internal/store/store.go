// Package store provides data persistence implementations.
package store

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/alexisdpc/Heston-model/internal/models"
)

// RunStore persists pricing runs. It is a thin collaborator around the
// engine; nothing in the core depends on it.
type RunStore interface {
	SaveRun(ctx context.Context, run *models.RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]models.RunRecord, error)
	GetRun(ctx context.Context, id int64) (*models.RunRecord, error)
	Close() error
}

// ExportCSV writes run records as CSV, one row per run.
func ExportCSV(w io.Writer, runs []models.RunRecord) error {
	return gocsv.Marshal(runs, w)
}
