package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kinecalc/cmd/kinecalc/ui"
	"kinecalc/internal/batch"
	"kinecalc/internal/calculator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchConcurrency int

// batchCmd solves every problem in a YAML file
var batchCmd = &cobra.Command{
	Use:   "batch [file.yaml]",
	Short: "Solve a file of problems concurrently",
	Long: `Solves every problem in a YAML file and prints one row per problem,
in file order.

File format:
  problems:
    - name: free fall
      target: v
      known: {v0: "0 m/s", a: "9.8 m/s²", t: "2 s"}
      result_unit: mph

The command fails if any problem ends in an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func initBatchFlags() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "j", 0, "Parallel solves (default from config, 0 = one per CPU)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	problems, err := batch.LoadFile(args[0])
	if err != nil {
		return err
	}

	limit := batchConcurrency
	if limit == 0 {
		limit = currentConfig().Batch.Concurrency
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	items, err := batch.Run(ctx, calculator.New(), problems, limit)
	if err != nil {
		return err
	}

	table := ui.NewSimpleTable(fmt.Sprintf("Batch: %s", args[0]), "#", "Problem", "Target", "Result", "Status")
	table.RightAlign[0] = true
	failed := 0
	for _, item := range items {
		r := item.Result.Report
		result := "-"
		if r.HasValue {
			result = r.ValueText + " " + r.Unit
		}
		status := r.Primary()
		if r.Failed() {
			failed++
		}
		table.AddRow(fmt.Sprint(item.Index+1), item.Name, problems[item.Index].Target, result, status.Title+": "+status.Message)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(tableStyles()))

	logger.Info("batch complete", zap.Int("problems", len(items)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(items))
	}
	return nil
}
