package core

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareReports(t *testing.T) {
	base := &schema.ScanReport{
		Address: "before.html",
		Scores: schema.Scores{
			Overall: 70, WCAGA: 80, WCAGAA: 75, WCAGAAA: 60, Semantic: 85, Cognitive: 90,
		},
		Violations: []schema.RuleResult{{ID: "link-name"}},
		Structural: []schema.Finding{{TestID: "form-label"}},
		Compliance: schema.Compliance{Level: schema.NonCompliant},
	}
	target := &schema.ScanReport{
		Address: "after.html",
		Scores: schema.Scores{
			Overall: 92, WCAGA: 100, WCAGAA: 100, WCAGAAA: 60, Semantic: 95, Cognitive: 88,
		},
		Compliance: schema.Compliance{Level: schema.CompliantAA},
	}

	result := CompareReports(base, target)

	assert.Equal(t, "before.html", result.BaseAddress)
	assert.Equal(t, "after.html", result.TargetAddress)
	assert.Equal(t, 2, result.BaseFindings)
	assert.Equal(t, 0, result.TargetFindings)
	assert.Equal(t, schema.NonCompliant, result.BaseCompliance)
	assert.Equal(t, schema.CompliantAA, result.TargetCompliance)

	require.Len(t, result.ScoreDeltas, 6)
	names := make([]string, len(result.ScoreDeltas))
	for i, d := range result.ScoreDeltas {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"overall", "wcag_a", "wcag_aa", "wcag_aaa", "semantic", "cognitive"}, names)

	overall := result.ScoreDeltas[0]
	assert.Equal(t, 70.0, overall.Base)
	assert.Equal(t, 92.0, overall.Target)
	assert.Equal(t, 22.0, overall.Delta)

	cognitive := result.ScoreDeltas[5]
	assert.Equal(t, -2.0, cognitive.Delta)

	unchanged := result.ScoreDeltas[3]
	assert.Equal(t, 0.0, unchanged.Delta)
}
