package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteMetricsResults outputs the check inventory, dispatching based on
// the output format configured.
func WriteMetricsResults(summary *core.MetricsSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, buildMetricsRenderModel(summary))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"kind", "id", "impact", "tags", "description"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, row := range buildMetricsRenderModel(summary).Checks {
					rec := []string{row.Kind, row.ID, row.Impact, strings.Join(row.Tags, "|"), row.Description}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(summary, w)
		}, "Wrote table")
	}
}

// metricsRenderModel is the flat projection of the check inventory used
// by the JSON and CSV writers.
type metricsRenderModel struct {
	Checks  []metricsCheckRow     `json:"checks"`
	Weights schema.ScoringWeights `json:"weights"`
}

type metricsCheckRow struct {
	Kind        string   `json:"kind"`
	ID          string   `json:"id"`
	Impact      string   `json:"impact,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

func buildMetricsRenderModel(summary *core.MetricsSummary) *metricsRenderModel {
	model := &metricsRenderModel{Weights: summary.Weights}
	for _, r := range summary.BaselineRules {
		model.Checks = append(model.Checks, metricsCheckRow{
			Kind:        "baseline",
			ID:          r.ID,
			Impact:      string(r.Impact),
			Tags:        r.Tags,
			Description: r.Description,
		})
	}
	for _, name := range summary.StructuralDetectors {
		model.Checks = append(model.Checks, metricsCheckRow{Kind: "structural", ID: name})
	}
	for _, name := range summary.SemanticDetectors {
		model.Checks = append(model.Checks, metricsCheckRow{Kind: "semantic", ID: name})
	}
	return model
}

func writeMetricsTable(summary *core.MetricsSummary, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Kind", "ID", "Impact", "Tags"})

	var data [][]string
	for _, row := range buildMetricsRenderModel(summary).Checks {
		data = append(data, []string{row.Kind, row.ID, row.Impact, strings.Join(row.Tags, ", ")})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, sev := range schema.AllSeverities {
		if _, err := fmt.Fprintf(writer, "Weight %-8s structural=%.0f semantic=%.0f\n",
			sev, summary.Weights.Structural[sev], summary.Weights.Semantic[sev]); err != nil {
			return err
		}
	}
	return nil
}
