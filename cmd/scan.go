package cmd

import (
	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/outwriter"
	"github.com/spf13/cobra"
)

// scanCmd performs a full accessibility scan of one document.
var scanCmd = &cobra.Command{
	Use:   "scan <document>",
	Short: "Scan an HTML document and score its accessibility.",
	Long: `Run every enabled analysis pass over an HTML document and report the
findings with composite scores and a compliance verdict.

Passes:
- Baseline rules check document-level WCAG requirements (lang, title,
  unique ids, link and button names, viewport scaling, landmarks)
- Structural detection algorithms inspect the element tree (contrast,
  headings, keyboard access, images, forms, touch targets, landmarks,
  motion safety)
- Semantic heuristics evaluate the content itself (readability, link
  phrasing, form cognitive load, jargon, page flow)

Examples:
  # Scan with defaults (level AA, all passes)
  pagelens scan index.html

  # Strict AAA scan without the semantic pass
  pagelens scan index.html --level AAA --semantic=false

  # Export findings to CSV for tracking
  pagelens scan index.html --output csv --output-file findings.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		contract.LogScanHeader(cfg, args[0])
		report, err := core.ExecuteScan(rootCtx, cfg, args[0])
		if err != nil {
			contract.LogFatal("Cannot run scan", err)
		}
		if err := outwriter.NewOutWriter().WriteReport(report, cfg); err != nil {
			contract.LogFatal("Cannot write scan report", err)
		}
	},
}
