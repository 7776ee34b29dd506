package structural

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLandmarks(t *testing.T) {
	t.Run("single main is clean", func(t *testing.T) {
		findings := CheckLandmarks(mustParse(t,
			`<html><body><main><p>content</p></main></body></html>`))
		assert.Empty(t, findings)
	})

	t.Run("role main counts as a main landmark", func(t *testing.T) {
		findings := CheckLandmarks(mustParse(t,
			`<html><body><div role="main"><p>content</p></div></body></html>`))
		assert.Empty(t, findings)
	})

	t.Run("no main landmark", func(t *testing.T) {
		findings := CheckLandmarks(mustParse(t,
			`<html><body><div><p>content</p></div></body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "landmark-main", f.TestID)
		assert.Equal(t, schema.SeverityModerate, f.Severity)
		assert.Equal(t, schema.CategoryLandmarks, f.Category)
		assert.True(t, f.AutoFixable)
		require.Len(t, f.Elements, 1)
		assert.Equal(t, "body", f.Elements[0].Selector)
	})

	t.Run("duplicate main landmarks", func(t *testing.T) {
		findings := CheckLandmarks(mustParse(t,
			`<html><body><main>one</main><div role="main">two</div></body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "landmark-main-unique", f.TestID)
		assert.Len(t, f.Elements, 2)
		assert.Contains(t, f.Elements[0].IssueText, "2 main landmarks")
	})
}
