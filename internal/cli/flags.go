package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexisdpc/Heston-model/internal/config"
	"github.com/alexisdpc/Heston-model/internal/heston"
)

// addModelFlags registers model, grid and simulation flags whose
// defaults come from the loaded configuration, so every parameter can
// be overridden per invocation.
func addModelFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64("alpha", cfg.Model.Alpha, "mean-reversion speed of the variance")
	cmd.Flags().Float64("b", cfg.Model.B, "long-run variance level")
	cmd.Flags().Float64("sigma", cfg.Model.Sigma, "volatility of variance")
	cmd.Flags().Float64("rho", cfg.Model.Rho, "correlation between price and variance shocks")
	cmd.Flags().Float64("mu", cfg.Model.Mu, "drift of the price process")
	cmd.Flags().Float64("v0", cfg.Model.V0, "initial variance")
	cmd.Flags().Float64("s0", cfg.Model.S0, "initial price")

	cmd.Flags().Float64("start", cfg.Grid.Start, "grid start time in years")
	cmd.Flags().Float64("end", cfg.Grid.End, "grid end time in years")
	cmd.Flags().Int("steps", cfg.Grid.Steps, "number of time steps")

	cmd.Flags().Int("paths", cfg.Simulation.Paths, "number of Monte Carlo paths")
	cmd.Flags().Uint64("seed", cfg.Simulation.Seed, "random seed")
}

// simInputs is the fully resolved input set for one simulation.
type simInputs struct {
	Params heston.Params
	Grid   heston.TimeGrid
	Paths  int
	Seed   uint64
}

// resolveInputs reads the model flags back into engine types and
// validates them before any work starts.
func resolveInputs(cmd *cobra.Command) (simInputs, error) {
	flags := cmd.Flags()
	alpha, _ := flags.GetFloat64("alpha")
	b, _ := flags.GetFloat64("b")
	sigma, _ := flags.GetFloat64("sigma")
	rho, _ := flags.GetFloat64("rho")
	mu, _ := flags.GetFloat64("mu")
	v0, _ := flags.GetFloat64("v0")
	s0, _ := flags.GetFloat64("s0")
	start, _ := flags.GetFloat64("start")
	end, _ := flags.GetFloat64("end")
	steps, _ := flags.GetInt("steps")
	paths, _ := flags.GetInt("paths")
	seed, _ := flags.GetUint64("seed")

	params := heston.Params{Alpha: alpha, B: b, Sigma: sigma, Rho: rho, Mu: mu, V0: v0, S0: s0}
	if err := params.Validate(); err != nil {
		return simInputs{}, err
	}
	grid, err := heston.NewTimeGrid(start, end, steps)
	if err != nil {
		return simInputs{}, err
	}
	return simInputs{Params: params, Grid: grid, Paths: paths, Seed: seed}, nil
}
