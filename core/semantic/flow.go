package semantic

import (
	"fmt"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Severity weights for individual flow issues, carried as the element's
// cognitive load.
const (
	flowWeightFirstHeading = 7
	flowWeightHeadingSkip  = 5
	flowWeightNoMain       = 6
)

// CheckPageFlow evaluates whether the page reads in a coherent order:
// the first heading should be an H1, heading levels should not skip, and
// a main-content landmark should exist. All detected issues aggregate
// into one moderate finding.
func CheckPageFlow(doc domdoc.Document) []schema.SemanticFinding {
	var issues []schema.SemanticElement

	headings := doc.ElementsByTag("h1", "h2", "h3", "h4", "h5", "h6")
	if len(headings) > 0 && headings[0].Tag() != "h1" {
		issues = append(issues, schema.SemanticElement{
			Selector:      headings[0].Selector(),
			Context:       schema.TruncateText(headings[0].Text(), 60),
			IssueText:     fmt.Sprintf("Page opens with an %s instead of an H1", strings.ToUpper(headings[0].Tag())),
			CognitiveLoad: flowWeightFirstHeading,
		})
	}
	for i := 1; i < len(headings); i++ {
		prev := int(headings[i-1].Tag()[1] - '0')
		cur := int(headings[i].Tag()[1] - '0')
		if cur > prev+1 {
			issues = append(issues, schema.SemanticElement{
				Selector:      headings[i].Selector(),
				Context:       schema.TruncateText(headings[i].Text(), 60),
				IssueText:     fmt.Sprintf("Outline jumps from H%d to H%d", prev, cur),
				CognitiveLoad: flowWeightHeadingSkip,
			})
		}
	}
	if !hasMainLandmark(doc) {
		issues = append(issues, schema.SemanticElement{
			Selector:      "body",
			Context:       "",
			IssueText:     "No main-content landmark to anchor the reading flow",
			CognitiveLoad: flowWeightNoMain,
		})
	}

	if len(issues) == 0 {
		return nil
	}
	return []schema.SemanticFinding{{
		TestID:      "page-flow",
		Category:    schema.SemanticUX,
		Severity:    schema.SeverityModerate,
		Title:       "Incoherent page flow",
		Description: "The page's structural order does not match a natural reading flow, which disorients users moving through it linearly.",
		SuggestedFixes: []string{
			"Open the content with a single H1",
			"Keep heading levels sequential",
			"Mark the primary content with a main landmark",
		},
		Elements:   issues,
		Confidence: 80,
	}}
}

func hasMainLandmark(doc domdoc.Document) bool {
	for _, el := range doc.Elements() {
		if el.Tag() == "main" || strings.EqualFold(el.Attr("role"), "main") {
			return true
		}
	}
	return false
}
