package structural

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHeadings(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		expectIDs []string
	}{
		{
			name:      "well formed outline",
			src:       `<html><body><h1>Title</h1><h2>Section</h2><h3>Sub</h3></body></html>`,
			expectIDs: nil,
		},
		{
			name:      "missing h1 is critical",
			src:       `<html><body><h2>Section</h2><h3>Sub</h3></body></html>`,
			expectIDs: []string{"page-has-h1"},
		},
		{
			name:      "multiple h1",
			src:       `<html><body><h1>One</h1><h1>Two</h1></body></html>`,
			expectIDs: []string{"single-h1"},
		},
		{
			name:      "single skip h1 to h4",
			src:       `<html><body><h1>Title</h1><h4>Deep</h4></body></html>`,
			expectIDs: []string{"heading-order"},
		},
		{
			name:      "two separate skips",
			src:       `<html><body><h1>Title</h1><h3>Skip</h3><h2>Back</h2><h4>Skip again</h4></body></html>`,
			expectIDs: []string{"heading-order", "heading-order"},
		},
		{
			name:      "descending levels never skip",
			src:       `<html><body><h1>Title</h1><h2>Section</h2><h3>Sub</h3><h2>Next</h2></body></html>`,
			expectIDs: nil,
		},
		{
			name:      "no headings at all still requires an h1",
			src:       `<html><body><p>prose only</p></body></html>`,
			expectIDs: []string{"page-has-h1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := CheckHeadings(mustParse(t, tt.src))
			var ids []string
			for _, f := range findings {
				ids = append(ids, f.TestID)
			}
			assert.Equal(t, tt.expectIDs, ids)
		})
	}
}

func TestCheckHeadingsDetails(t *testing.T) {
	t.Run("missing h1 severity and synthetic element", func(t *testing.T) {
		findings := CheckHeadings(mustParse(t, `<html><body><h2>Only</h2></body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, schema.SeverityCritical, f.Severity)
		assert.Equal(t, schema.CategoryStructure, f.Category)
		require.Len(t, f.Elements, 1)
		assert.Equal(t, "body", f.Elements[0].Selector)
	})

	t.Run("multiple h1 lists every h1", func(t *testing.T) {
		findings := CheckHeadings(mustParse(t, `<html><body><h1>a</h1><h1>b</h1><h1>c</h1></body></html>`))
		require.Len(t, findings, 1)
		assert.Equal(t, schema.SeveritySerious, findings[0].Severity)
		assert.Len(t, findings[0].Elements, 3)
	})

	t.Run("skip finding names the levels", func(t *testing.T) {
		findings := CheckHeadings(mustParse(t, `<html><body><h1>a</h1><h3>b</h3></body></html>`))
		require.Len(t, findings, 1)
		assert.Equal(t, schema.SeverityModerate, findings[0].Severity)
		assert.Contains(t, findings[0].Elements[0].IssueText, "H3 follows H1")
	})
}
