package cmd

import (
	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd displays the check inventory and scoring weights.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display all checks and the active scoring weights",
	Long: `Show every baseline rule, structural detector and semantic detector,
plus the per-severity penalty weights in effect.

No document is scanned - this is purely informational.

Use this to:
- Understand what each pass checks
- Validate custom weight configurations
- Document audit methodology

Examples:
  # Show default checks and weights
  pagelens metrics

  # View with custom weights from config file
  pagelens metrics --config .pagelens.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		summary := core.ExecuteMetrics(cfg)
		if err := outwriter.NewOutWriter().WriteMetrics(summary, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
