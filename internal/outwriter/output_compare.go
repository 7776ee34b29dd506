package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteComparisonResults outputs a document comparison, dispatching based
// on the output format configured.
func WriteComparisonResults(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"score", "base", "target", "delta"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, d := range result.ScoreDeltas {
					rec := []string{d.Name, fmtFloat(d.Base), fmtFloat(d.Target), fmtFloat(d.Delta)}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeComparisonTable generates and writes the human-readable comparison.
func writeComparisonTable(result *schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Score", "Base", "Target", "Delta"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range result.ScoreDeltas {
		data = append(data, []string{
			d.Name,
			fmtFloat(d.Base),
			fmtFloat(d.Target),
			formatDelta(d.Delta, fmtFloat, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Findings: %d -> %d, Compliance: %s -> %s\n",
		result.BaseFindings, result.TargetFindings,
		contract.GetComplianceLabel(result.BaseCompliance, cfg.UseColors),
		contract.GetComplianceLabel(result.TargetCompliance, cfg.UseColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatDelta renders a score movement with its sign, colored green for
// improvement and red for regression when colors are enabled.
func formatDelta(delta float64, fmtFloat func(float64) string, useColors bool) string {
	text := fmtFloat(delta)
	if delta > 0 {
		text = "+" + text
	}
	if !useColors || delta == 0 {
		return text
	}
	if delta > 0 {
		return contract.ImprovementColor.Sprint(text)
	}
	return contract.CriticalColor.Sprint(text)
}
