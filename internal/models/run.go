// Package models defines shared domain types.
package models

import "time"

// RunRecord is one persisted pricing run: the model and simulation
// inputs plus the resulting Monte Carlo estimates. The csv tags drive
// the export format.
type RunRecord struct {
	ID           int64     `csv:"-"`
	Timestamp    time.Time `csv:"timestamp"`
	Alpha        float64   `csv:"alpha"`
	B            float64   `csv:"b"`
	Sigma        float64   `csv:"sigma"`
	Rho          float64   `csv:"rho"`
	Mu           float64   `csv:"mu"`
	V0           float64   `csv:"v0"`
	S0           float64   `csv:"s0"`
	GridStart    float64   `csv:"grid_start"`
	GridEnd      float64   `csv:"grid_end"`
	Steps        int       `csv:"steps"`
	Paths        int       `csv:"paths"`
	Seed         uint64    `csv:"seed"`
	Strike       float64   `csv:"strike"`
	Call         float64   `csv:"call"`
	Put          float64   `csv:"put"`
	CallStdErr   float64   `csv:"call_stderr"`
	PutStdErr    float64   `csv:"put_stderr"`
	MeanTerminal float64   `csv:"mean_terminal"`
	Feller       bool      `csv:"feller_satisfied"`
}
