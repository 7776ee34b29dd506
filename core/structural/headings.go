package structural

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// CheckHeadings validates the document outline: exactly one H1 and no
// hierarchy skips between adjacent headings.
func CheckHeadings(doc domdoc.Document) []schema.Finding {
	headings := doc.ElementsByTag(headingTags...)

	var findings []schema.Finding
	var h1s []domdoc.Element
	for _, h := range headings {
		if h.Tag() == "h1" {
			h1s = append(h1s, h)
		}
	}

	switch {
	case len(h1s) == 0:
		findings = append(findings, schema.Finding{
			TestID:        "page-has-h1",
			WCAGLevel:     schema.LevelA,
			Category:      schema.CategoryStructure,
			Severity:      schema.SeverityCritical,
			Title:         "Missing H1 heading",
			Description:   "Every page needs a single H1 that names its main topic; screen reader users rely on it to orient themselves.",
			WCAGCriterion: "1.3.1 Info and Relationships",
			Elements: []schema.ElementRef{{
				Selector:   "body",
				Snapshot:   "<body>",
				IssueText:  "No H1 element found in the document",
				Suggestion: "Add one H1 element describing the page's main content",
			}},
			Score:     40,
			Algorithm: "heading-structure",
		})
	case len(h1s) > 1:
		elements := make([]schema.ElementRef, 0, len(h1s))
		for _, h := range h1s {
			elements = append(elements, schema.ElementRef{
				Selector:   h.Selector(),
				Snapshot:   h.Snapshot(),
				IssueText:  fmt.Sprintf("One of %d H1 elements on the page", len(h1s)),
				Suggestion: "Keep a single H1 and demote the others to H2",
			})
		}
		findings = append(findings, schema.Finding{
			TestID:        "single-h1",
			WCAGLevel:     schema.LevelA,
			Category:      schema.CategoryStructure,
			Severity:      schema.SeveritySerious,
			Title:         "Multiple H1 headings",
			Description:   "More than one H1 blurs the document outline and confuses assistive-technology navigation.",
			WCAGCriterion: "1.3.1 Info and Relationships",
			Elements:      elements,
			Score:         55,
			Algorithm:     "heading-structure",
		})
	}

	// One finding per hierarchy skip between adjacent headings.
	for i := 1; i < len(headings); i++ {
		prev := headingLevel(headings[i-1])
		cur := headingLevel(headings[i])
		if cur > prev+1 {
			findings = append(findings, schema.Finding{
				TestID:        "heading-order",
				WCAGLevel:     schema.LevelA,
				Category:      schema.CategoryStructure,
				Severity:      schema.SeverityModerate,
				Title:         "Heading hierarchy skip",
				Description:   "Heading levels must not skip; jumps in the outline disorient screen reader users scanning by heading.",
				WCAGCriterion: "1.3.1 Info and Relationships",
				Elements: []schema.ElementRef{{
					Selector:   headings[i].Selector(),
					Snapshot:   headings[i].Snapshot(),
					IssueText:  fmt.Sprintf("H%d follows H%d, skipping %d level(s)", cur, prev, cur-prev-1),
					Suggestion: fmt.Sprintf("Use an H%d here, or restructure the outline", prev+1),
				}},
				Score:       70,
				Algorithm:   "heading-structure",
				AutoFixable: true,
			})
		}
	}
	return findings
}

func headingLevel(el domdoc.Element) int {
	return int(el.Tag()[1] - '0')
}
