// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API
// for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a scan report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.ScanReport, cfg *contract.Config) error {
	return WriteReportResults(report, cfg)
}

// WriteComparison prints a document comparison using the configured
// output format.
func (ow *OutWriter) WriteComparison(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return WriteComparisonResults(result, cfg, duration)
}

// WriteMetrics prints the check inventory using the configured output
// format.
func (ow *OutWriter) WriteMetrics(summary *core.MetricsSummary, cfg *contract.Config) error {
	return WriteMetricsResults(summary, cfg)
}

// getMaxTableTextWidth calculates the width available for the free-text
// columns in table output based on terminal width.
func getMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (type, severity, rule id) plus
	// borders and padding.
	available := termWidth - 45
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}
