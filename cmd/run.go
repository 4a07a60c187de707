package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/model"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: enrich then alerts",
	Long: `Runs enrichment over the input corpus, then alert detection over the
enriched corpus, in sequence. When a run-ledger store is configured the run
and its per-stage outcomes are recorded there.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		p, err := newPipeline("", "", "")
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}

		runID := ""
		if st != nil {
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			run, err := st.CreateRun(ctx)
			if err != nil {
				return err
			}
			runID = run.ID
			if err := st.UpdateRunStatus(ctx, runID, model.RunStatusRunning); err != nil {
				zap.L().Warn("update run status failed", zap.String("run_id", runID), zap.Error(err))
			}
		}

		result, runErr := p.Run(ctx)

		// Ledger bookkeeping must not mask or fail the pipeline outcome.
		if st != nil && runID != "" {
			if err := st.UpdateRunResult(ctx, runID, result); err != nil {
				zap.L().Warn("record run result failed", zap.String("run_id", runID), zap.Error(err))
			}
		}
		if runErr != nil {
			return runErr
		}

		zap.L().Info("pipeline run complete",
			zap.String("run_id", runID),
			zap.Int("enriched", result.Enriched),
			zap.Int("new_alerts", result.NewAlerts),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
