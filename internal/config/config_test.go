package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesTemplateAndAppliesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("expected template config.toml to be created: %v", err)
	}

	if cfg.Model.Alpha != 2.0 || cfg.Model.S0 != 105.0 {
		t.Errorf("unexpected model defaults: alpha=%g s0=%g", cfg.Model.Alpha, cfg.Model.S0)
	}
	if cfg.Grid.Steps != 1000 {
		t.Errorf("grid.steps default = %d, want 1000", cfg.Grid.Steps)
	}
	if cfg.Simulation.Paths != 30000 {
		t.Errorf("simulation.paths default = %d, want 30000", cfg.Simulation.Paths)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[model]
alpha = 1.5
b = 0.04
sigma = 0.3
rho = -0.7
mu = 0.02
v0 = 0.04
s0 = 100.0

[grid]
start = 0.0
end = 0.5
steps = 250

[simulation]
paths = 5000
seed = 7
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.Rho != -0.7 {
		t.Errorf("model.rho = %g, want -0.7", cfg.Model.Rho)
	}
	if cfg.Grid.Steps != 250 {
		t.Errorf("grid.steps = %d, want 250", cfg.Grid.Steps)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("simulation.seed = %d, want 7", cfg.Simulation.Seed)
	}

	grid, err := cfg.TimeGrid()
	if err != nil {
		t.Fatalf("TimeGrid: %v", err)
	}
	if grid.Dt() != 0.002 {
		t.Errorf("Dt = %g, want 0.002", grid.Dt())
	}
}

func TestLoadRejectsInvalidModel(t *testing.T) {
	dir := t.TempDir()
	content := `
[model]
rho = 1.5
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error for rho = 1.5")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HESTON_PATHS", "1234")
	t.Setenv("HESTON_SEED", "99")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Paths != 1234 {
		t.Errorf("HESTON_PATHS override ignored: paths = %d", cfg.Simulation.Paths)
	}
	if cfg.Simulation.Seed != 99 {
		t.Errorf("HESTON_SEED override ignored: seed = %d", cfg.Simulation.Seed)
	}
}
