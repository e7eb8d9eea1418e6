package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexisdpc/Heston-model/internal/config"
	"github.com/alexisdpc/Heston-model/internal/heston"
	"github.com/alexisdpc/Heston-model/internal/logging"
	"github.com/alexisdpc/Heston-model/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.RunStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Store.Enabled {
		runStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize run store, saved runs unavailable")
		} else {
			app.Store = runStore
			logger.Debug().Str("path", cfg.Store.Path).Msg("Run store initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:   "heston",
		Short: "Heston Monte Carlo option pricer",
		Long: `Heston simulates correlated variance and price paths under the
Heston stochastic-volatility model and prices European call and put
options from the simulated terminal prices.

Reported prices are raw Monte Carlo payoff means, not discounted.

Use 'heston help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/heston)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newSimulateCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newFellerCmd(app))
	rootCmd.AddCommand(newRunsCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("heston v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Model Parameters")
	output.Printf("  Alpha (reversion):  %g\n", cfg.Model.Alpha)
	output.Printf("  B (long-run var):   %g\n", cfg.Model.B)
	output.Printf("  Sigma (vol of var): %g\n", cfg.Model.Sigma)
	output.Printf("  Rho (correlation):  %g\n", cfg.Model.Rho)
	output.Printf("  Mu (drift):         %g\n", cfg.Model.Mu)
	output.Printf("  V0 (initial var):   %g\n", cfg.Model.V0)
	output.Printf("  S0 (initial price): %g\n", cfg.Model.S0)
	output.Println()

	output.Bold("Time Grid")
	output.Printf("  Interval: [%g, %g]\n", cfg.Grid.Start, cfg.Grid.End)
	output.Printf("  Steps:    %d\n", cfg.Grid.Steps)
	output.Println()

	output.Bold("Simulation")
	output.Printf("  Paths: %d\n", cfg.Simulation.Paths)
	output.Printf("  Seed:  %d\n", cfg.Simulation.Seed)
	output.Println()

	output.Bold("Store")
	output.Printf("  Enabled: %v\n", cfg.Store.Enabled)
	output.Printf("  Path:    %s\n", cfg.Store.Path)

	if heston.FellerSatisfied(cfg.Model.Alpha, cfg.Model.B, cfg.Model.Sigma) {
		output.Dim("Feller condition satisfied for the configured parameters.")
	} else {
		output.Warning("Feller condition violated: discretized variance will rely on truncation more often.")
	}
	return nil
}
