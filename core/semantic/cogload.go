package semantic

import (
	"fmt"
	"math"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Weighted contributions to a form's cognitive load score. The total is
// capped at 10.
const (
	weightField        = 0.3
	fieldTermCap       = 4.0
	weightRequired     = 0.2
	weightSelect       = 0.4
	weightTextarea     = 0.3
	penaltyCheckboxes  = 1.0
	penaltyRadios      = 0.8
	penaltyNoGrouping  = 1.0
	penaltyNoHelpText  = 0.5
	bulkControlCount   = 5
	ungroupedThreshold = 5
	maxLoadScore       = 10.0
)

// CheckFormLoad estimates the cognitive load of each form from its field
// mix and structure. Scores above 7 are flagged; above 8.5 they are
// serious.
func CheckFormLoad(doc domdoc.Document) []schema.SemanticFinding {
	var findings []schema.SemanticFinding
	for _, form := range doc.ElementsByTag("form") {
		if !form.Visible() {
			continue
		}
		score, detail := formLoadScore(form)
		if score <= 7 {
			continue
		}
		severity := schema.SeverityModerate
		if score > 8.5 {
			severity = schema.SeveritySerious
		}
		findings = append(findings, schema.SemanticFinding{
			TestID:      "form-cognitive-load",
			Category:    schema.SemanticCognitive,
			Severity:    severity,
			Title:       "Form demands high cognitive effort",
			Description: fmt.Sprintf("Estimated cognitive load %.1f of 10: %s.", score, detail),
			Explanation: "Long, ungrouped forms with many choices overwhelm users with cognitive disabilities and raise abandonment for everyone.",
			SuggestedFixes: []string{
				"Split the form into labeled steps or fieldsets",
				"Drop optional fields, or defer them",
				"Add aria-describedby help text to complex fields",
			},
			Elements: []schema.SemanticElement{{
				Selector:      form.Selector(),
				Context:       schema.TruncateText(form.Text(), 120),
				IssueText:     detail,
				CognitiveLoad: schema.ClampLoad(int(math.Round(score))),
			}},
			Confidence: 80,
		})
	}
	return findings
}

// formLoadScore computes the weighted sum described above, returning the
// capped score and a human-readable breakdown.
func formLoadScore(form domdoc.Element) (float64, string) {
	var fields, required, selects, textareas, checkboxes, radios int
	hasFieldset := false
	hasDescribedBy := false

	var walk func(el domdoc.Element)
	walk = func(el domdoc.Element) {
		switch el.Tag() {
		case "fieldset":
			hasFieldset = true
		case "select":
			fields++
			selects++
		case "textarea":
			fields++
			textareas++
		case "input":
			switch strings.ToLower(el.Attr("type")) {
			case "hidden", "submit", "button", "reset", "image":
			case "checkbox":
				fields++
				checkboxes++
			case "radio":
				fields++
				radios++
			default:
				fields++
			}
			if el.HasAttr("required") {
				required++
			}
		}
		if el.HasAttr("aria-describedby") {
			hasDescribedBy = true
		}
		for _, c := range el.Children() {
			walk(c)
		}
	}
	walk(form)

	score := math.Min(weightField*float64(fields), fieldTermCap)
	score += weightRequired * float64(required)
	score += weightSelect * float64(selects)
	score += weightTextarea * float64(textareas)
	if checkboxes > bulkControlCount {
		score += penaltyCheckboxes
	}
	if radios > bulkControlCount {
		score += penaltyRadios
	}
	if !hasFieldset && fields > ungroupedThreshold {
		score += penaltyNoGrouping
	}
	if !hasDescribedBy {
		score += penaltyNoHelpText
	}
	if score > maxLoadScore {
		score = maxLoadScore
	}

	detail := fmt.Sprintf("%d fields (%d required, %d selects, %d textareas, %d checkboxes, %d radios)",
		fields, required, selects, textareas, checkboxes, radios)
	if !hasFieldset && fields > ungroupedThreshold {
		detail += ", no fieldset grouping"
	}
	return score, detail
}
