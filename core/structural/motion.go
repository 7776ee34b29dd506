package structural

import (
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

const motionSampleCap = 5

// CheckMotion detects animated elements on pages whose accessible
// stylesheets never declare a prefers-reduced-motion media query. Users
// with vestibular disorders rely on that preference being honored.
func CheckMotion(doc domdoc.Document) []schema.Finding {
	if domdoc.HasReducedMotionRule(doc) {
		return nil
	}

	var samples []schema.ElementRef
	total := 0
	for _, el := range doc.Elements() {
		if !el.Visible() || !isAnimated(el) {
			continue
		}
		total++
		if len(samples) < motionSampleCap {
			samples = append(samples, schema.ElementRef{
				Selector:   el.Selector(),
				Snapshot:   el.Snapshot(),
				IssueText:  "Element animates without a reduced-motion fallback",
				Suggestion: "Guard animations with @media (prefers-reduced-motion: reduce)",
			})
		}
	}
	if total == 0 {
		return nil
	}
	return []schema.Finding{{
		TestID:        "reduced-motion",
		WCAGLevel:     schema.LevelAAA,
		Category:      schema.CategoryMotion,
		Severity:      schema.SeverityModerate,
		Title:         "Animation without reduced-motion support",
		Description:   "No stylesheet honors prefers-reduced-motion, so motion-sensitive users cannot switch animations off.",
		WCAGCriterion: "2.3.3 Animation from Interactions",
		Elements:      samples,
		Score:         70,
		Algorithm:     "motion-safety",
	}}
}

// isAnimated reports active CSS animation or transition, or an
// animation-suggesting class name.
func isAnimated(el domdoc.Element) bool {
	if name := el.Style("animation-name"); name != "" && name != "none" {
		return true
	}
	if anim := el.Style("animation"); anim != "" && anim != "none" {
		return true
	}
	if tr := el.Style("transition"); tr != "" && tr != "none" {
		return true
	}
	for _, cls := range strings.Fields(strings.ToLower(el.Attr("class"))) {
		if strings.Contains(cls, "animate") || strings.Contains(cls, "animation") {
			return true
		}
	}
	return false
}
