package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/alexisdpc/Heston-model/internal/errors"
	"github.com/alexisdpc/Heston-model/internal/heston"
	"github.com/alexisdpc/Heston-model/internal/logging"
	"github.com/alexisdpc/Heston-model/internal/models"
	"github.com/alexisdpc/Heston-model/internal/store"
	"github.com/alexisdpc/Heston-model/pkg/utils"
)

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price European options by Monte Carlo",
		Long: `Price simulates one path batch and evaluates the vanilla call and
put payoffs at each requested strike. Prices are sample means of the
terminal payoffs and are not discounted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			in, err := resolveInputs(cmd)
			if err != nil {
				output.Error("Invalid inputs: %v", err)
				return err
			}
			strikes, _ := cmd.Flags().GetFloat64Slice("strike")
			if len(strikes) == 0 {
				return fmt.Errorf("at least one --strike is required")
			}
			save, _ := cmd.Flags().GetBool("save")
			csvPath, _ := cmd.Flags().GetString("csv")

			startedAt := time.Now()
			batch, err := heston.SimulatePaths(in.Params, in.Grid, in.Paths, in.Seed)
			if err != nil {
				return apperrors.NewSimulationError("paths", err)
			}
			logging.LogSimulation(app.Logger, in.Paths, in.Grid.Steps, in.Seed, time.Since(startedAt))

			terminal := batch.Terminal()
			quotes := make([]heston.Quote, 0, len(strikes))
			records := make([]models.RunRecord, 0, len(strikes))
			for _, strike := range strikes {
				q, err := heston.PriceEuropean(terminal, strike)
				if err != nil {
					return err
				}
				logging.LogPricing(app.Logger, q.Strike, q.Call, q.Put, q.Paths)
				quotes = append(quotes, q)
				records = append(records, runRecord(in, q))
			}

			if save {
				if app.Store == nil {
					output.Warning("Run store unavailable; results not saved.")
				} else {
					ctx := context.Background()
					for i := range records {
						if err := app.Store.SaveRun(ctx, &records[i]); err != nil {
							return err
						}
					}
					output.Dim("Saved %d run(s).", len(records))
				}
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvPath, err)
				}
				defer f.Close()
				if err := store.ExportCSV(f, records); err != nil {
					return fmt.Errorf("writing %s: %w", csvPath, err)
				}
				output.Dim("Wrote %s", csvPath)
			}

			if output.IsJSON() {
				return output.JSON(quotes)
			}

			prec := app.Config.UI.Precision
			output.Bold("European option prices (undiscounted, %s paths)", utils.FormatCount(int64(in.Paths)))
			output.Printf("  %-10s %-14s %-14s %-12s\n", "Strike", "Call", "Put", "Mean S_T")
			for _, q := range quotes {
				output.Printf("  %-10s %-14s %-14s %-12s\n",
					utils.FormatPrice(q.Strike, 2),
					fmt.Sprintf("%s ± %s", utils.FormatPrice(q.Call, prec), utils.FormatPrice(q.CallStdErr, prec)),
					fmt.Sprintf("%s ± %s", utils.FormatPrice(q.Put, prec), utils.FormatPrice(q.PutStdErr, prec)),
					utils.FormatPrice(q.MeanTerminal, prec))
			}
			if !in.Params.FellerSatisfied() {
				output.Warning("Feller condition violated for these parameters.")
			}
			return nil
		},
	}

	addModelFlags(cmd, app.Config)
	cmd.Flags().Float64Slice("strike", []float64{100}, "strike price (repeatable)")
	cmd.Flags().Bool("save", false, "save results to the run store")
	cmd.Flags().String("csv", "", "write results to a CSV file")
	return cmd
}

// runRecord assembles the persisted form of one quote.
func runRecord(in simInputs, q heston.Quote) models.RunRecord {
	return models.RunRecord{
		Timestamp:    time.Now().UTC(),
		Alpha:        in.Params.Alpha,
		B:            in.Params.B,
		Sigma:        in.Params.Sigma,
		Rho:          in.Params.Rho,
		Mu:           in.Params.Mu,
		V0:           in.Params.V0,
		S0:           in.Params.S0,
		GridStart:    in.Grid.Start,
		GridEnd:      in.Grid.End,
		Steps:        in.Grid.Steps,
		Paths:        q.Paths,
		Seed:         in.Seed,
		Strike:       q.Strike,
		Call:         q.Call,
		Put:          q.Put,
		CallStdErr:   q.CallStdErr,
		PutStdErr:    q.PutStdErr,
		MeanTerminal: q.MeanTerminal,
		Feller:       in.Params.FellerSatisfied(),
	}
}
