package structural

import (
	"fmt"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// CheckLandmarks validates main-landmark consistency: exactly one main
// region per page.
func CheckLandmarks(doc domdoc.Document) []schema.Finding {
	var mains []domdoc.Element
	for _, el := range doc.Elements() {
		if el.Tag() == "main" || strings.EqualFold(el.Attr("role"), "main") {
			mains = append(mains, el)
		}
	}

	switch {
	case len(mains) == 0:
		return []schema.Finding{{
			TestID:        "landmark-main",
			WCAGLevel:     schema.LevelAA,
			Category:      schema.CategoryLandmarks,
			Severity:      schema.SeverityModerate,
			Title:         "Missing main landmark",
			Description:   "A main landmark lets assistive-technology users jump straight to the primary content.",
			WCAGCriterion: "1.3.1 Info and Relationships",
			Elements: []schema.ElementRef{{
				Selector:   "body",
				Snapshot:   "<body>",
				IssueText:  "No main element or role=\"main\" region found",
				Suggestion: "Wrap the primary content in a <main> element",
			}},
			Score:       70,
			Algorithm:   "landmark-consistency",
			AutoFixable: true,
		}}
	case len(mains) > 1:
		elements := make([]schema.ElementRef, 0, len(mains))
		for _, m := range mains {
			elements = append(elements, schema.ElementRef{
				Selector:   m.Selector(),
				Snapshot:   m.Snapshot(),
				IssueText:  fmt.Sprintf("One of %d main landmarks on the page", len(mains)),
				Suggestion: "Keep a single main landmark per page",
			})
		}
		return []schema.Finding{{
			TestID:        "landmark-main-unique",
			WCAGLevel:     schema.LevelAA,
			Category:      schema.CategoryLandmarks,
			Severity:      schema.SeverityModerate,
			Title:         "Multiple main landmarks",
			Description:   "Duplicate main landmarks make the page structure ambiguous for landmark navigation.",
			WCAGCriterion: "1.3.1 Info and Relationships",
			Elements:      elements,
			Score:         70,
			Algorithm:     "landmark-consistency",
		}}
	}
	return nil
}
