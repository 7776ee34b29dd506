package structural

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Large text per WCAG: >=18px, or >=14px at weight >=700.
func isLargeText(fontSizePx float64, weight int) bool {
	return fontSizePx >= 18 || (fontSizePx >= 14 && weight >= 700)
}

// CheckContrast evaluates every element with non-trivial text against the
// WCAG AA contrast minimum. One finding is emitted per failing element
// rather than batching, so autofix tooling can address each in place.
func CheckContrast(doc domdoc.Document) []schema.Finding {
	var findings []schema.Finding
	for _, el := range doc.Elements() {
		if !el.Visible() || len(el.OwnText()) < 3 {
			continue
		}
		fg, ok := ParseColor(el.Style("color"))
		if !ok || fg.IsTransparent() {
			continue
		}
		bg := effectiveBackground(el)

		size := domdoc.FontSizePx(el)
		weight := domdoc.FontWeight(el)
		large := isLargeText(size, weight)

		assessment := AssessContrast(fg, bg, schema.LevelAA, large)
		if assessment.Passes {
			continue
		}
		findings = append(findings, contrastFinding(el, assessment, size, large))
	}
	return findings
}

// effectiveBackground walks ancestors until a non-transparent background
// is found, defaulting to white.
func effectiveBackground(el domdoc.Element) Color {
	for cur := el; cur != nil; cur = cur.Parent() {
		if bg, ok := ParseColor(cur.Style("background-color")); ok && !bg.IsTransparent() {
			return bg
		}
	}
	return Color{R: 255, G: 255, B: 255, A: 1}
}

func contrastSeverity(ratio float64) schema.Severity {
	switch {
	case ratio < 3:
		return schema.SeverityCritical
	case ratio < 4.5:
		return schema.SeveritySerious
	default:
		return schema.SeverityModerate
	}
}

func contrastFinding(el domdoc.Element, a ContrastAssessment, fontSize float64, large bool) schema.Finding {
	sizeClass := "normal"
	if large {
		sizeClass = "large"
	}
	issue := fmt.Sprintf("Contrast ratio %.2f:1 is below the %.1f:1 minimum for %s text",
		a.Ratio, a.RequiredRatio, sizeClass)

	return schema.Finding{
		TestID:        "contrast-ratio",
		WCAGLevel:     schema.LevelAA,
		Category:      schema.CategoryContrast,
		Severity:      contrastSeverity(a.Ratio),
		Title:         "Insufficient color contrast",
		Description:   "Text must have sufficient contrast against its background to remain readable for low-vision users.",
		WCAGCriterion: "1.4.3 Contrast (Minimum)",
		Elements: []schema.ElementRef{{
			Selector:   el.Selector(),
			Snapshot:   el.Snapshot(),
			IssueText:  issue,
			Suggestion: fmt.Sprintf("Darken the text or lighten the background until the ratio reaches %.1f:1", a.RequiredRatio),
			Style: &schema.StyleSnapshot{
				Color:           el.Style("color"),
				BackgroundColor: el.Style("background-color"),
				FontSize:        el.Style("font-size"),
				FontWeight:      el.Style("font-weight"),
			},
		}},
		Score:       schema.ClampScore(a.Ratio / a.RequiredRatio * 100),
		Algorithm:   "contrast-analysis",
		AutoFixable: true,
	}
}
