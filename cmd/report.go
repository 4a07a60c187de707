package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/corpus"
	"github.com/sells-group/feedback-cli/internal/report"
)

var (
	reportInput  string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the enriched corpus",
	Long: `Prints sentiment, platform, urgency, department, and product breakdowns
for the enriched corpus and writes the stats table for the reporting layer.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input := reportInput
		if input == "" {
			input = cfg.Data.Enriched
		}
		output := reportOutput
		if output == "" {
			output = cfg.Report.StatsOutput
		}

		records, err := corpus.ReadEnriched(input, corpus.ReadOptions{Charset: cfg.Data.Charset})
		if err != nil {
			return eris.Wrap(err, "report: read enriched corpus")
		}

		summary := report.Summarize(records)
		fmt.Fprint(os.Stdout, report.Format(summary))

		if output != "" {
			if err := report.WriteStatsCSV(summary, output); err != nil {
				return err
			}
			zap.L().Info("stats written", zap.String("path", output))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "enriched corpus path (overrides config)")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "stats CSV path (overrides config)")
	rootCmd.AddCommand(reportCmd)
}
