package store

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/alexisdpc/Heston-model/internal/errors"
	"github.com/alexisdpc/Heston-model/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "heston.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(strike float64) models.RunRecord {
	return models.RunRecord{
		Timestamp:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Alpha:        2.0,
		B:            0.01,
		Sigma:        0.1,
		Rho:          0.0,
		Mu:           0.0,
		V0:           0.01,
		S0:           105.0,
		GridStart:    0,
		GridEnd:      1,
		Steps:        1000,
		Paths:        30000,
		Seed:         1234,
		Strike:       strike,
		Call:         7.07,
		Put:          2.03,
		CallStdErr:   0.041,
		PutStdErr:    0.022,
		MeanTerminal: 105.04,
		Feller:       true,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := sampleRun(100)
	if err := s.SaveRun(ctx, &run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if run.ID == 0 {
		t.Fatal("SaveRun did not assign an ID")
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Strike != run.Strike || got.Call != run.Call || got.Put != run.Put {
		t.Errorf("round trip mismatch: got strike=%g call=%g put=%g", got.Strike, got.Call, got.Put)
	}
	if got.Seed != run.Seed {
		t.Errorf("Seed = %d, want %d", got.Seed, run.Seed)
	}
	if !got.Feller {
		t.Error("Feller flag lost in round trip")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetRun(context.Background(), 9999); !apperrors.Is(err, apperrors.ErrRunNotFound) {
		t.Errorf("GetRun(missing): got %v, want ErrRunNotFound", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, strike := range []float64{90, 100, 110} {
		run := sampleRun(strike)
		run.Timestamp = run.Timestamp.Add(time.Duration(i) * time.Minute)
		if err := s.SaveRun(ctx, &run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d runs, want 2", len(runs))
	}
	if runs[0].Strike != 110 || runs[1].Strike != 100 {
		t.Errorf("unexpected order: strikes %g, %g", runs[0].Strike, runs[1].Strike)
	}
}

func TestExportCSV(t *testing.T) {
	runs := []models.RunRecord{sampleRun(100), sampleRun(110)}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, runs); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	header := lines[0]
	for _, col := range []string{"strike", "call", "put", "seed", "feller_satisfied"} {
		if !strings.Contains(header, col) {
			t.Errorf("header missing column %q: %s", col, header)
		}
	}
}
