package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.ScanReport {
	return &schema.ScanReport{
		Address: "sample.html",
		Violations: []schema.RuleResult{
			{
				ID:          "link-name",
				Impact:      schema.SeveritySerious,
				Description: "Ensures links have discernible text",
				Help:        "Links must have discernible text",
				Nodes: []schema.RuleNode{
					{Target: []string{"body > a:nth-of-type(1)"}},
					{Target: []string{"body > a:nth-of-type(2)"}},
				},
			},
		},
		Structural: []schema.Finding{
			{
				TestID:        "contrast-ratio",
				Severity:      schema.SeverityCritical,
				WCAGCriterion: "1.4.3 Contrast (Minimum)",
				Elements: []schema.ElementRef{
					{
						Selector:   "#content > p",
						IssueText:  "Contrast ratio 1.6:1 is below 4.5:1",
						Suggestion: "Darken the text color",
					},
				},
			},
		},
		Semantic: []schema.SemanticFinding{
			{
				TestID:         "link-purpose",
				Severity:       schema.SeverityModerate,
				SuggestedFixes: []string{"Name the destination in the link text itself"},
				Elements: []schema.SemanticElement{
					{Selector: "body > p > a", IssueText: `Link text "click here" does not describe its destination`},
				},
			},
		},
		Scores: schema.Scores{
			Overall: 72.5, WCAGA: 66.7, WCAGAA: 100, WCAGAAA: 100, Semantic: 94, Cognitive: 88,
		},
		Compliance: schema.Compliance{
			Level: schema.NonCompliant, PassRate: 75, CriticalIssues: 1, TotalTests: 4,
		},
		Insight:      "Overall accessibility score is 73/100 (Non-compliant).",
		Duration:     42 * time.Millisecond,
		ElementCount: 17,
	}
}

func tableConfig() *contract.Config {
	return &contract.Config{
		Output:      schema.TextOut,
		Precision:   1,
		ResultLimit: contract.DefaultResultLimit,
		Width:       120,
	}
}

func TestFlattenReport(t *testing.T) {
	t.Run("one row per affected element in source order", func(t *testing.T) {
		rows := flattenReport(sampleReport(), 0)
		require.Len(t, rows, 4)

		assert.Equal(t, "baseline", rows[0].Type)
		assert.Equal(t, "link-name", rows[0].RuleID)
		assert.Equal(t, "body > a:nth-of-type(1)", rows[0].ElementSelector)
		assert.Equal(t, "Links must have discernible text", rows[0].FixSuggestion)

		assert.Equal(t, "structural", rows[2].Type)
		assert.Equal(t, "contrast-ratio", rows[2].RuleID)
		assert.Equal(t, "1.4.3 Contrast (Minimum)", rows[2].WCAGCriterion)
		assert.Equal(t, "Darken the text color", rows[2].FixSuggestion)

		assert.Equal(t, "semantic", rows[3].Type)
		assert.Equal(t, "link-purpose", rows[3].RuleID)
		assert.Equal(t, "Semantic/Cognitive", rows[3].WCAGCriterion)
		assert.Equal(t, "Name the destination in the link text itself", rows[3].FixSuggestion)
	})

	t.Run("limit caps the rows", func(t *testing.T) {
		rows := flattenReport(sampleReport(), 2)
		require.Len(t, rows, 2)
		assert.Equal(t, "baseline", rows[0].Type)
		assert.Equal(t, "baseline", rows[1].Type)
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		assert.Len(t, flattenReport(sampleReport(), 0), 4)
	})

	t.Run("empty report", func(t *testing.T) {
		assert.Empty(t, flattenReport(&schema.ScanReport{}, 0))
	})
}

func TestWriteReportTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFloatFormatter(1)
	require.NoError(t, writeReportTable(sampleReport(), tableConfig(), fmtFloat, &buf))

	out := buf.String()
	assert.Contains(t, out, "Scores for sample.html")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "contrast-ratio")
	assert.Contains(t, out, "link-purpose")
	assert.Contains(t, out, "Compliance: Non-compliant (pass rate 75.0%, 1 critical, 4 tests)")
	assert.Contains(t, out, "Insight: Overall accessibility score is 73/100")
	assert.Contains(t, out, "Scanned 17 elements in 42ms")
}

func TestWriteReportTableWithoutFindings(t *testing.T) {
	report := &schema.ScanReport{
		Address:    "clean.html",
		Scores:     schema.Scores{Overall: 100, WCAGA: 100, WCAGAA: 100, WCAGAAA: 100, Semantic: 100, Cognitive: 100},
		Compliance: schema.Compliance{Level: schema.CompliantAAA, PassRate: 100},
	}

	var buf bytes.Buffer
	fmtFloat := createFloatFormatter(0)
	require.NoError(t, writeReportTable(report, tableConfig(), fmtFloat, &buf))

	out := buf.String()
	assert.Contains(t, out, "Scores for clean.html")
	assert.Contains(t, out, "Compliance: AAA")
	assert.NotContains(t, out, "Insight:")
}
