package semantic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildForm(t *testing.T, inputs, required, selects, textareas int, fieldset bool) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(`<form>`)
	if fieldset {
		sb.WriteString(`<fieldset><legend>Details</legend>`)
	}
	for i := 0; i < inputs; i++ {
		req := ""
		if i < required {
			req = " required"
		}
		fmt.Fprintf(&sb, `<input type="text" name="f%d"%s>`, i, req)
	}
	for i := 0; i < selects; i++ {
		fmt.Fprintf(&sb, `<select name="s%d"><option>a</option></select>`, i)
	}
	for i := 0; i < textareas; i++ {
		fmt.Fprintf(&sb, `<textarea name="t%d"></textarea>`, i)
	}
	if fieldset {
		sb.WriteString(`</fieldset>`)
	}
	sb.WriteString(`</form>`)
	return sb.String()
}

func formElement(t *testing.T, formHTML string) *formScoreResult {
	t.Helper()
	doc := mustParse(t, `<html><body>`+formHTML+`</body></html>`)
	forms := doc.ElementsByTag("form")
	require.Len(t, forms, 1)
	score, detail := formLoadScore(forms[0])
	return &formScoreResult{score: score, detail: detail}
}

type formScoreResult struct {
	score  float64
	detail string
}

func TestFormLoadScore(t *testing.T) {
	t.Run("login form is light", func(t *testing.T) {
		r := formElement(t, `<form><input type="text" name="u"><input type="password" name="p"></form>`)
		assert.InDelta(t, 1.1, r.score, 0.01)
	})

	t.Run("field contribution is capped", func(t *testing.T) {
		small := formElement(t, buildForm(t, 14, 0, 0, 0, true))
		large := formElement(t, buildForm(t, 30, 0, 0, 0, true))
		assert.InDelta(t, small.score, large.score, 0.01)
	})

	t.Run("fieldset removes the grouping penalty", func(t *testing.T) {
		grouped := formElement(t, buildForm(t, 8, 0, 0, 0, true))
		flat := formElement(t, buildForm(t, 8, 0, 0, 0, false))
		assert.InDelta(t, 1.0, flat.score-grouped.score, 0.01)
		assert.Contains(t, flat.detail, "no fieldset grouping")
		assert.NotContains(t, grouped.detail, "no fieldset grouping")
	})

	t.Run("aria-describedby removes the help penalty", func(t *testing.T) {
		bare := formElement(t, `<form><input type="text" name="q"></form>`)
		helped := formElement(t, `<form><input type="text" name="q" aria-describedby="q-help"></form>`)
		assert.InDelta(t, 0.5, bare.score-helped.score, 0.01)
	})

	t.Run("bulk checkboxes add a penalty", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString(`<form>`)
		for i := 0; i < 6; i++ {
			fmt.Fprintf(&sb, `<input type="checkbox" name="c%d">`, i)
		}
		sb.WriteString(`</form>`)
		r := formElement(t, sb.String())
		assert.InDelta(t, 0.3*6+1.0+1.0+0.5, r.score, 0.01)
		assert.Contains(t, r.detail, "6 checkboxes")
	})

	t.Run("non-field input types are ignored", func(t *testing.T) {
		r := formElement(t, `<form><input type="hidden" name="t"><input type="submit" value="Go"></form>`)
		assert.InDelta(t, 0.5, r.score, 0.01)
		assert.Contains(t, r.detail, "0 fields")
	})
}

func TestCheckFormLoad(t *testing.T) {
	t.Run("light form passes", func(t *testing.T) {
		findings := CheckFormLoad(mustParse(t,
			`<html><body><form><input type="text" name="u"><input type="password" name="p"></form></body></html>`))
		assert.Empty(t, findings)
	})

	t.Run("heavy flat form is moderate", func(t *testing.T) {
		findings := CheckFormLoad(mustParse(t,
			`<html><body>`+buildForm(t, 14, 4, 2, 2, false)+`</body></html>`))
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, "form-cognitive-load", f.TestID)
		assert.Equal(t, schema.SemanticCognitive, f.Category)
		assert.Equal(t, schema.SeverityModerate, f.Severity)
		require.Len(t, f.Elements, 1)
		assert.Equal(t, 8, f.Elements[0].CognitiveLoad)
	})

	t.Run("many required fields push it to serious", func(t *testing.T) {
		findings := CheckFormLoad(mustParse(t,
			`<html><body>`+buildForm(t, 14, 14, 2, 2, false)+`</body></html>`))
		require.Len(t, findings, 1)
		assert.Equal(t, schema.SeveritySerious, findings[0].Severity)
	})

	t.Run("hidden form is skipped", func(t *testing.T) {
		findings := CheckFormLoad(mustParse(t,
			`<html><body><div hidden>`+buildForm(t, 14, 14, 2, 2, false)+`</div></body></html>`))
		assert.Empty(t, findings)
	})
}
