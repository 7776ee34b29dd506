package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/parquet"
	"github.com/pagelens/pagelens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReportResults outputs a scan report, dispatching based on the
// output format configured.
func WriteReportResults(report *schema.ScanReport, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquetResults(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

func writeReportJSONResults(report *schema.ScanReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

func writeReportCSVResults(report *schema.ScanReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"type",
			"severity",
			"rule_id",
			"description",
			"element_selector",
			"wcag_criterion",
			"fix_suggestion",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, row := range flattenReport(report, cfg.ResultLimit) {
				rec := []string{
					row.Type,
					string(row.Severity),
					row.RuleID,
					row.Description,
					row.ElementSelector,
					row.WCAGCriterion,
					row.FixSuggestion,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

func writeReportParquetResults(report *schema.ScanReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires an output file")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return parquet.WriteReport(w, report, cfg.ResultLimit)
	}, "Wrote Parquet")
}

// writeReportTable generates and writes the human-readable report.
func writeReportTable(report *schema.ScanReport, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	// 1. Scores summary
	if _, err := fmt.Fprintf(writer, "Scores for %s\n", report.Address); err != nil {
		return err
	}
	scoreTable := tablewriter.NewWriter(writer)
	scoreTable.Header([]string{"Overall", "WCAG A", "WCAG AA", "WCAG AAA", "Semantic", "Cognitive"})
	scoreTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := scoreTable.Bulk([][]string{{
		fmtFloat(report.Scores.Overall),
		fmtFloat(report.Scores.WCAGA),
		fmtFloat(report.Scores.WCAGAA),
		fmtFloat(report.Scores.WCAGAAA),
		fmtFloat(report.Scores.Semantic),
		fmtFloat(report.Scores.Cognitive),
	}}); err != nil {
		return err
	}
	if err := scoreTable.Render(); err != nil {
		return err
	}

	// 2. Findings table
	rows := flattenReport(report, cfg.ResultLimit)
	if len(rows) > 0 {
		maxText := getMaxTableTextWidth(cfg)
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Type", "Severity", "Rule", "Description", "Element"})
		var data [][]string
		for _, row := range rows {
			severity := string(row.Severity)
			if cfg.UseColors {
				severity = contract.GetColorLabel(row.Severity)
			}
			data = append(data, []string{
				row.Type,
				severity,
				row.RuleID,
				schema.TruncateText(row.Description, maxText),
				schema.TruncateText(row.ElementSelector, 40),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	// 3. Compliance summary
	verdict := contract.GetComplianceLabel(report.Compliance.Level, cfg.UseColors)
	if _, err := fmt.Fprintf(writer, "Compliance: %s (pass rate %s%%, %d critical, %d tests)\n",
		verdict, fmtFloat(report.Compliance.PassRate),
		report.Compliance.CriticalIssues, report.Compliance.TotalTests); err != nil {
		return err
	}
	if report.Insight != "" {
		if _, err := fmt.Fprintf(writer, "Insight: %s\n", report.Insight); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Scanned %d elements in %v\n",
		report.ElementCount, report.Duration); err != nil {
		return err
	}
	return nil
}

// semanticCriterion fills the criterion column for semantic rows, which
// have no single WCAG success criterion.
const semanticCriterion = "Semantic/Cognitive"

// reportRow is the flat projection of one finding for CSV and table
// output.
type reportRow struct {
	Type            string
	Severity        schema.Severity
	RuleID          string
	Description     string
	ElementSelector string
	WCAGCriterion   string
	FixSuggestion   string
}

// flattenReport projects the three finding sources into flat rows:
// one row per affected element, capped at limit rows (0 = unlimited).
func flattenReport(report *schema.ScanReport, limit int) []reportRow {
	var rows []reportRow
	for i := range report.Violations {
		v := &report.Violations[i]
		for _, node := range v.Nodes {
			selector := ""
			if len(node.Target) > 0 {
				selector = node.Target[0]
			}
			rows = append(rows, reportRow{
				Type:            "baseline",
				Severity:        v.Impact,
				RuleID:          v.ID,
				Description:     v.Description,
				ElementSelector: selector,
				FixSuggestion:   v.Help,
			})
		}
	}
	for _, f := range report.Structural {
		for _, el := range f.Elements {
			rows = append(rows, reportRow{
				Type:            "structural",
				Severity:        f.Severity,
				RuleID:          f.TestID,
				Description:     el.IssueText,
				ElementSelector: el.Selector,
				WCAGCriterion:   f.WCAGCriterion,
				FixSuggestion:   el.Suggestion,
			})
		}
	}
	for _, f := range report.Semantic {
		suggestion := ""
		if len(f.SuggestedFixes) > 0 {
			suggestion = f.SuggestedFixes[0]
		}
		for _, el := range f.Elements {
			rows = append(rows, reportRow{
				Type:            "semantic",
				Severity:        f.Severity,
				RuleID:          f.TestID,
				Description:     el.IssueText,
				ElementSelector: el.Selector,
				WCAGCriterion:   semanticCriterion,
				FixSuggestion:   suggestion,
			})
		}
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
