package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/feedback-cli/internal/pipeline"
)

var (
	enrichInput  string
	enrichOutput string
	enrichLimit  int
	enrichDryRun bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich the sentiment-labeled corpus",
	Long: `Reads the sentiment-labeled feedback corpus and derives feedback type,
urgency, product, department, and recommended action per record, writing the
full enriched corpus to the configured destination (full recompute each run).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		p, err := newPipeline(enrichInput, enrichOutput, "")
		if err != nil {
			return err
		}

		_, err = p.Enrich(ctx, pipeline.EnrichOptions{
			Limit:  enrichLimit,
			DryRun: enrichDryRun,
		})
		return err
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "input corpus path (overrides config)")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "", "enriched corpus path (overrides config)")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "process at most N records (0 = all)")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "classify without writing the enriched corpus")
	rootCmd.AddCommand(enrichCmd)
}
