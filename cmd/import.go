package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ecoleta/registrar/internal/dataset"
	"github.com/ecoleta/registrar/internal/registration"
	"github.com/ecoleta/registrar/internal/results"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var datasetPath string
	var reportPath string
	var concurrency int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Register every point of a dataset",
		Long: `Registers collection points in bulk. Each draft in the dataset goes
through its own form, exactly as "registrar register" would fill it.

Datasets can be YAML (.yaml, .yml), JSON lines (.jsonl) or Parquet (.parquet).
A YAML report with the outcome of every draft is written at the end.`,
		Example: `  # Import a parquet dataset with 8 workers
  registrar import --dataset points.parquet --concurrency 8

  # Check a dataset without submitting anything
  registrar import --dataset points.yaml --dry-run --report check.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 {
				return fmt.Errorf("concurrency must be at least 1")
			}

			slog.Info("Loading dataset...", "dataset", datasetPath)
			drafts, err := dataset.NewLoader(datasetPath).Load()
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			slog.Info("Dataset loaded", "points", len(drafts))

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service := newClients(cfg).service(logNavigator{}, logNotifier{})

			slog.Info("Processing points", "concurrency", concurrency, "dry_run", dryRun)

			var wg sync.WaitGroup
			semaphore := make(chan struct{}, concurrency)
			outcomes := make([]registration.Outcome, len(drafts))

			for i := range drafts {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					semaphore <- struct{}{}        // Acquire
					defer func() { <-semaphore }() // Release

					slog.Info("Processing point", "name", drafts[idx].Name, "progress", fmt.Sprintf("%d/%d", idx+1, len(drafts)))
					outcomes[idx] = service.Register(cmd.Context(), drafts[idx], dryRun)
				}(i)
			}
			wg.Wait()

			report := results.NewReport(results.ReportConfig{
				Dataset:  datasetPath,
				Registry: cfg.RegistryURL,
				DryRun:   dryRun,
			}, outcomes)

			slog.Info("Saving report", "output", reportPath)
			if err := results.SaveToYAML(reportPath, report); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "========================================")
			fmt.Fprintln(out, "Import Summary")
			fmt.Fprintln(out, "========================================")
			fmt.Fprintf(out, "Total Points:   %d\n", len(outcomes))
			fmt.Fprintf(out, "Succeeded:      %d\n", report.Succeeded)
			fmt.Fprintf(out, "Failed:         %d\n", report.Failed)
			fmt.Fprintf(out, "\nReport saved to: %s\n", reportPath)

			if report.Failed > 0 {
				return fmt.Errorf("%d of %d points failed", report.Failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to the dataset (.yaml, .yml, .jsonl, .json, .parquet)")
	cmd.Flags().StringVar(&reportPath, "report", "import_results.yaml", "Path to the YAML report")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of points registered in parallel")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Assemble payloads without submitting them")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}
