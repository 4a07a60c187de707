package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	alertsInput   string
	alertsHistory string
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Detect high-risk patterns in the enriched corpus",
	Long: `Scans the enriched corpus for high-urgency complaints, strong negative
sentiment, and per-product complaint spikes, merging new alerts into the
alert history with cross-run deduplication.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		p, err := newPipeline("", alertsInput, alertsHistory)
		if err != nil {
			return err
		}

		_, err = p.Alerts(ctx, time.Now())
		return err
	},
}

func init() {
	alertsCmd.Flags().StringVar(&alertsInput, "input", "", "enriched corpus path (overrides config)")
	alertsCmd.Flags().StringVar(&alertsHistory, "history", "", "alert history path (overrides config)")
	rootCmd.AddCommand(alertsCmd)
}
