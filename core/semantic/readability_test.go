package semantic

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{word: "cat", want: 1},
		{word: "hello", want: 2},
		{word: "beautiful", want: 3},
		{word: "remember", want: 3},
		{word: "sunshine", want: 2},
		{word: "the", want: 1},
		{word: "rhythm", want: 1},
		{word: "queue", want: 1},
		{word: "don't", want: 1},
		{word: "123", want: 1},
		{word: "", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSyllables(tt.word))
		})
	}
}

func TestFleschReadingEase(t *testing.T) {
	t.Run("empty text is trivially easy", func(t *testing.T) {
		assert.Equal(t, 100.0, FleschReadingEase(""))
	})

	t.Run("monosyllabic prose clamps at 100", func(t *testing.T) {
		assert.Equal(t, 100.0, FleschReadingEase("The cat sat on the mat."))
	})

	t.Run("dense prose clamps at 0", func(t *testing.T) {
		assert.Equal(t, 0.0, FleschReadingEase(
			"Organizational transformation necessitates comprehensive stakeholder realignment across divisions."))
	})

	t.Run("mid-range prose", func(t *testing.T) {
		score := FleschReadingEase("Children remember the bright morning sunshine near the garden window.")
		assert.InDelta(t, 52.9, score, 0.1)
	})

	t.Run("easier text scores higher", func(t *testing.T) {
		easy := FleschReadingEase("We like to play. The sun is out. It is a good day.")
		hard := FleschReadingEase("Interdepartmental prioritization methodologies require considerable organizational maturity.")
		assert.Greater(t, easy, hard)
	})
}

func TestCheckReadability(t *testing.T) {
	t.Run("short blocks are skipped", func(t *testing.T) {
		findings := CheckReadability(mustParse(t,
			`<html><body><p>Organizational transformation.</p></body></html>`))
		assert.Empty(t, findings)
	})

	t.Run("easy prose passes", func(t *testing.T) {
		findings := CheckReadability(mustParse(t,
			`<html><body><p>The cat sat on the mat. The dog ran to the park. We like to play out in the sun.</p></body></html>`))
		assert.Empty(t, findings)
	})

	t.Run("moderate difficulty", func(t *testing.T) {
		findings := CheckReadability(mustParse(t,
			`<html><body><p>Children remember the bright morning sunshine near the garden window.</p></body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "readability", f.TestID)
		assert.Equal(t, schema.SemanticCognitive, f.Category)
		assert.Equal(t, schema.SeverityModerate, f.Severity)
		require.Len(t, f.Elements, 1)
		assert.Equal(t, 5, f.Elements[0].CognitiveLoad)
	})

	t.Run("dense prose is serious", func(t *testing.T) {
		findings := CheckReadability(mustParse(t,
			`<html><body><p>Organizational transformation necessitates comprehensive stakeholder realignment across divisions.</p></body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, schema.SeveritySerious, f.Severity)
		require.Len(t, f.Elements, 1)
		assert.Equal(t, 10, f.Elements[0].CognitiveLoad)
	})

	t.Run("hidden blocks are skipped", func(t *testing.T) {
		findings := CheckReadability(mustParse(t,
			`<html><body><p hidden>Organizational transformation necessitates comprehensive stakeholder realignment across divisions.</p></body></html>`))
		assert.Empty(t, findings)
	})
}
