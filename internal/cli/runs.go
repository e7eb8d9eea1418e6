package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisdpc/Heston-model/internal/store"
	"github.com/alexisdpc/Heston-model/pkg/utils"
)

func newRunsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved pricing runs",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent pricing runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("run store unavailable")
			}
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := app.Store.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(runs)
			}
			if len(runs) == 0 {
				output.Dim("No saved runs.")
				return nil
			}
			output.Printf("  %-5s %-20s %-8s %-10s %-10s %-8s\n", "ID", "Timestamp", "Strike", "Call", "Put", "Paths")
			for _, r := range runs {
				output.Printf("  %-5d %-20s %-8s %-10s %-10s %-8s\n",
					r.ID,
					r.Timestamp.Format("2006-01-02 15:04:05"),
					utils.FormatPrice(r.Strike, 2),
					utils.FormatPrice(r.Call, 4),
					utils.FormatPrice(r.Put, 4),
					utils.FormatCount(int64(r.Paths)))
			}
			return nil
		},
	}
	listCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one pricing run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("run store unavailable")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}
			run, err := app.Store.GetRun(context.Background(), id)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(run)
			}
			output.Bold("Run %d (%s)", run.ID, run.Timestamp.Format("2006-01-02 15:04:05"))
			output.Printf("  alpha=%g b=%g sigma=%g rho=%g mu=%g v0=%g s0=%g\n",
				run.Alpha, run.B, run.Sigma, run.Rho, run.Mu, run.V0, run.S0)
			output.Printf("  grid [%g, %g] steps=%d paths=%d seed=%d\n",
				run.GridStart, run.GridEnd, run.Steps, run.Paths, run.Seed)
			output.Printf("  strike=%s call=%s put=%s mean(S_T)=%s\n",
				utils.FormatPrice(run.Strike, 2),
				utils.FormatPrice(run.Call, 4),
				utils.FormatPrice(run.Put, 4),
				utils.FormatPrice(run.MeanTerminal, 4))
			if run.Feller {
				output.Dim("Feller condition satisfied.")
			} else {
				output.Warning("Feller condition violated.")
			}
			return nil
		},
	})

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export saved runs to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("run store unavailable")
			}
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := app.Store.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()
			if err := store.ExportCSV(f, runs); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}
			output.Success("Exported %d run(s) to %s", len(runs), args[0])
			return nil
		},
	}
	exportCmd.Flags().Int("limit", 100, "maximum number of runs to export")
	cmd.AddCommand(exportCmd)

	return cmd
}
