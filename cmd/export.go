package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/corpus"
)

var (
	exportInput  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the enriched corpus as an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input := exportInput
		if input == "" {
			input = cfg.Data.Enriched
		}

		records, err := corpus.ReadEnriched(input, corpus.ReadOptions{Charset: cfg.Data.Charset})
		if err != nil {
			return eris.Wrap(err, "export: read enriched corpus")
		}

		if err := corpus.ExportXLSX(records, exportOutput); err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("path", exportOutput),
			zap.Int("records", len(records)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "enriched corpus path (overrides config)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "feedback_enriched.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
