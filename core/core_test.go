package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Level:           schema.LevelAA,
		IncludeAdvanced: true,
		IncludeSemantic: true,
		IncludeAI:       true,
		ResultLimit:     contract.DefaultResultLimit,
		HistoryLimit:    contract.DefaultHistoryLimit,
		Weights:         schema.DefaultScoringWeights(),
	}
}

func writePage(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecuteScan(t *testing.T) {
	path := writePage(t, "page.html", mixedPage)

	report, err := ExecuteScan(context.Background(), testConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, path, report.Address)
	assert.NotEmpty(t, report.Structural)
	assert.NotEmpty(t, report.Insight)
}

func TestExecuteScanMissingFile(t *testing.T) {
	_, err := ExecuteScan(context.Background(), testConfig(), filepath.Join(t.TempDir(), "absent.html"))
	assert.Error(t, err)
}

func TestExecuteCompare(t *testing.T) {
	base := writePage(t, "before.html", mixedPage)
	target := writePage(t, "after.html", `<html lang="en"><head><title>Fixed page</title></head><body>
<main>
<h1>Quarterly report</h1>
<h2>Revenue details</h2>
<p style="color: #000000">readable body text</p>
<label for="q">Search</label><input id="q" type="text" style="width: 200px; height: 48px">
</main>
</body></html>`)

	result, err := ExecuteCompare(context.Background(), testConfig(), base, target)
	require.NoError(t, err)
	assert.Equal(t, base, result.BaseAddress)
	assert.Equal(t, target, result.TargetAddress)
	require.Len(t, result.ScoreDeltas, 6)
	assert.Positive(t, result.ScoreDeltas[0].Delta)
	assert.Greater(t, result.BaseFindings, result.TargetFindings)
}

func TestExecuteCompareMissingBase(t *testing.T) {
	target := writePage(t, "after.html", mixedPage)
	_, err := ExecuteCompare(context.Background(), testConfig(), filepath.Join(t.TempDir(), "absent.html"), target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base document")
}

func TestExecuteMetrics(t *testing.T) {
	summary := ExecuteMetrics(testConfig())
	assert.Len(t, summary.BaselineRules, 8)
	assert.Len(t, summary.StructuralDetectors, 8)
	assert.Len(t, summary.SemanticDetectors, 5)
	assert.Equal(t, schema.DefaultScoringWeights(), summary.Weights)
}
