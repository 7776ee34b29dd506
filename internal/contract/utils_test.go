package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		severity schema.Severity
		expected string
	}{
		{severity: schema.SeverityCritical, expected: "Critical"},
		{severity: schema.SeveritySerious, expected: "Serious"},
		{severity: schema.SeverityModerate, expected: "Moderate"},
		{severity: schema.SeverityMinor, expected: "Minor"},
		{severity: "", expected: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.severity))
		})
	}
}

func TestGetComplianceLabel(t *testing.T) {
	assert.Equal(t, "AA", GetComplianceLabel(schema.CompliantAA, false))
	assert.Equal(t, "Non-compliant", GetComplianceLabel(schema.NonCompliant, false))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path selects stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.NotEqual(t, os.Stdout, f)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.json"))
		assert.Error(t, err)
	})
}
