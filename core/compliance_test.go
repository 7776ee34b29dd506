package core

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
)

func TestComputeCompliance(t *testing.T) {
	tests := []struct {
		name   string
		scores schema.Scores
		want   schema.ComplianceLevel
	}{
		{name: "AAA at threshold", scores: schema.Scores{WCAGA: 100, WCAGAA: 100, WCAGAAA: 95}, want: schema.CompliantAAA},
		{name: "AA just below AAA", scores: schema.Scores{WCAGA: 100, WCAGAA: 100, WCAGAAA: 94.9}, want: schema.CompliantAA},
		{name: "AA at threshold", scores: schema.Scores{WCAGA: 95, WCAGAA: 90, WCAGAAA: 80}, want: schema.CompliantAA},
		{name: "A at threshold", scores: schema.Scores{WCAGA: 85, WCAGAA: 80, WCAGAAA: 70}, want: schema.CompliantA},
		{name: "non-compliant below A", scores: schema.Scores{WCAGA: 84.9, WCAGAA: 80, WCAGAAA: 70}, want: schema.NonCompliant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &schema.ScanReport{Scores: tt.scores}
			assert.Equal(t, tt.want, computeCompliance(report).Level)
		})
	}
}

func TestComputeComplianceIgnoresOverall(t *testing.T) {
	// Structural penalties lower the overall score but the verdict
	// ladder runs on the per-level baseline scores alone.
	report := &schema.ScanReport{
		Scores: schema.Scores{Overall: 84, WCAGA: 100, WCAGAA: 100, WCAGAAA: 100},
		Structural: []schema.Finding{
			{TestID: "heading-order", Severity: schema.SeverityModerate},
			{TestID: "form-label", Severity: schema.SeverityModerate},
			{TestID: "touch-target-size", Severity: schema.SeverityModerate},
			{TestID: "landmark-main", Severity: schema.SeverityModerate},
		},
	}
	assert.Equal(t, schema.CompliantAAA, computeCompliance(report).Level)
}

func TestComputeComplianceCriticalOverride(t *testing.T) {
	perfect := schema.Scores{WCAGA: 100, WCAGAA: 100, WCAGAAA: 100}

	t.Run("critical baseline violation", func(t *testing.T) {
		report := &schema.ScanReport{
			Scores: perfect,
			Violations: []schema.RuleResult{
				{ID: "meta-viewport", Impact: schema.SeverityCritical},
			},
		}
		c := computeCompliance(report)
		assert.Equal(t, schema.NonCompliant, c.Level)
		assert.Equal(t, 1, c.CriticalIssues)
	})

	t.Run("critical structural finding", func(t *testing.T) {
		report := &schema.ScanReport{
			Scores:     perfect,
			Structural: []schema.Finding{{TestID: "page-has-h1", Severity: schema.SeverityCritical}},
		}
		assert.Equal(t, schema.NonCompliant, computeCompliance(report).Level)
	})

	t.Run("serious findings do not override", func(t *testing.T) {
		report := &schema.ScanReport{
			Scores:     perfect,
			Structural: []schema.Finding{{Severity: schema.SeveritySerious}},
		}
		assert.Equal(t, schema.CompliantAAA, computeCompliance(report).Level)
	})
}

func TestComputeCompliancePassRate(t *testing.T) {
	t.Run("no tests means a perfect rate", func(t *testing.T) {
		c := computeCompliance(&schema.ScanReport{Scores: schema.Scores{WCAGA: 100, WCAGAA: 100, WCAGAAA: 100}})
		assert.Equal(t, 100.0, c.PassRate)
		assert.Equal(t, 0, c.TotalTests)
	})

	t.Run("rate over passes, violations and incomplete", func(t *testing.T) {
		report := &schema.ScanReport{
			Passes:     []schema.RuleResult{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			Violations: []schema.RuleResult{{ID: "d"}},
			Incomplete: []schema.RuleResult{{ID: "e"}},
		}
		c := computeCompliance(report)
		assert.Equal(t, 60.0, c.PassRate)
		assert.Equal(t, 5, c.TotalTests)
	})
}
