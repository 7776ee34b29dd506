package cmd

import (
	"time"

	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/outwriter"
	"github.com/spf13/cobra"
)

// compareCmd scans two documents and reports the score movement.
var compareCmd = &cobra.Command{
	Use:   "compare <base-document> <target-document>",
	Short: "Compare accessibility scores between two documents.",
	Long: `Scan two HTML documents with identical settings and report how each
score moved from base to target.

Ideal for:
- Release comparisons - see whether a redesign improved accessibility
- Refactoring validation - verify markup changes reduced findings
- Progress tracking - monitor remediation work over time

Examples:
  # Compare two revisions of a page
  pagelens compare old/index.html new/index.html

  # Export the comparison to CSV
  pagelens compare old.html new.html --output csv --output-file deltas.csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		contract.LogCompareHeader(cfg, args[0], args[1])
		start := time.Now()
		result, err := core.ExecuteCompare(rootCtx, cfg, args[0], args[1])
		if err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
		if err := outwriter.NewOutWriter().WriteComparison(result, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write comparison", err)
		}
	},
}
