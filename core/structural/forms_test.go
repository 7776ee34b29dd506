package structural

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckForms(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		offenders int
	}{
		{
			name:      "label with for association",
			src:       `<html><body><label for="email">Email</label><input id="email" type="text"></body></html>`,
			offenders: 0,
		},
		{
			name:      "enclosing label",
			src:       `<html><body><label>Name <input type="text"></label></body></html>`,
			offenders: 0,
		},
		{
			name:      "aria-label",
			src:       `<html><body><input type="search" aria-label="Search the site"></body></html>`,
			offenders: 0,
		},
		{
			name:      "unlabeled text input",
			src:       `<html><body><input type="text" name="q"></body></html>`,
			offenders: 1,
		},
		{
			name:      "unlabeled select and textarea",
			src:       `<html><body><select><option>a</option></select><textarea></textarea></body></html>`,
			offenders: 2,
		},
		{
			name:      "self labeling types are exempt",
			src:       `<html><body><input type="submit" value="Send"><input type="hidden" name="t"><input type="button" value="Go"></body></html>`,
			offenders: 0,
		},
		{
			name:      "hidden control is skipped",
			src:       `<html><body><input type="text" hidden></body></html>`,
			offenders: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := CheckForms(mustParse(t, tt.src))
			if tt.offenders == 0 {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			f := findings[0]
			assert.Equal(t, "form-label", f.TestID)
			assert.Equal(t, schema.SeveritySerious, f.Severity)
			assert.Equal(t, schema.CategoryForms, f.Category)
			assert.Len(t, f.Elements, tt.offenders)
		})
	}
}
