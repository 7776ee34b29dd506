// Package parquet provides data structures and functions for exporting
// scan reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/pagelens/pagelens/schema"
	"github.com/parquet-go/parquet-go"
)

// FindingRow is the flat per-element projection of a scan report used
// for columnar export. One row per affected element across the baseline,
// structural and semantic sources.
type FindingRow struct {
	// Address identifies the scanned document
	Address string `parquet:"address,snappy"`

	// ScanTime is when the scan completed (stored as TIMESTAMP with nanosecond precision)
	ScanTime time.Time `parquet:"scan_time,snappy"`

	// Source is the analysis pass that produced the row: baseline, structural or semantic
	Source string `parquet:"source,snappy"`

	// RuleID is the rule or detector test identifier
	RuleID string `parquet:"rule_id,snappy"`

	// Severity is the normalized severity of the finding
	Severity string `parquet:"severity,snappy"`

	// Description is the per-element issue text
	Description string `parquet:"description,snappy"`

	// ElementSelector locates the affected element (nullable for document-level rows)
	ElementSelector *string `parquet:"element_selector,optional,snappy"`

	// WCAGCriterion names the success criterion; semantic rows carry the
	// Semantic/Cognitive marker instead
	WCAGCriterion *string `parquet:"wcag_criterion,optional,snappy"`

	// OverallScore is the report-level composite score, repeated per row
	OverallScore float64 `parquet:"overall_score,snappy"`

	// ComplianceLevel is the report-level verdict, repeated per row
	ComplianceLevel string `parquet:"compliance_level,snappy"`
}

// semanticCriterion fills the criterion column for semantic rows, which
// have no single WCAG success criterion.
const semanticCriterion = "Semantic/Cognitive"

// WriteReport writes the flattened report rows to w in Parquet format.
// limit caps the row count (0 = unlimited).
func WriteReport(w io.Writer, report *schema.ScanReport, limit int) error {
	rows := FlattenReport(report, limit)

	// The schema is automatically derived from the FindingRow struct tags
	writer := parquet.NewGenericWriter[FindingRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// FlattenReport projects a scan report into finding rows.
func FlattenReport(report *schema.ScanReport, limit int) []FindingRow {
	base := FindingRow{
		Address:         report.Address,
		ScanTime:        report.Timestamp,
		OverallScore:    report.Scores.Overall,
		ComplianceLevel: string(report.Compliance.Level),
	}

	var rows []FindingRow
	for i := range report.Violations {
		v := &report.Violations[i]
		for _, node := range v.Nodes {
			row := base
			row.Source = "baseline"
			row.RuleID = v.ID
			row.Severity = string(v.Impact)
			row.Description = v.Description
			if len(node.Target) > 0 {
				row.ElementSelector = ptr(node.Target[0])
			}
			rows = append(rows, row)
		}
	}
	for _, f := range report.Structural {
		for _, el := range f.Elements {
			row := base
			row.Source = "structural"
			row.RuleID = f.TestID
			row.Severity = string(f.Severity)
			row.Description = el.IssueText
			row.ElementSelector = ptr(el.Selector)
			if f.WCAGCriterion != "" {
				row.WCAGCriterion = ptr(f.WCAGCriterion)
			}
			rows = append(rows, row)
		}
	}
	for _, f := range report.Semantic {
		for _, el := range f.Elements {
			row := base
			row.Source = "semantic"
			row.RuleID = f.TestID
			row.Severity = string(f.Severity)
			row.Description = el.IssueText
			row.ElementSelector = ptr(el.Selector)
			row.WCAGCriterion = ptr(semanticCriterion)
			rows = append(rows, row)
		}
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func ptr(s string) *string { return &s }
