package structural

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Minimum touch target dimension in CSS pixels.
const minTouchTarget = 44.0

const touchSampleCap = 10

// CheckTouchTargets flags interactive elements whose rendered box is
// smaller than 44x44px, unless the element is judged decorative (an
// empty or near-empty target inside an enclosing link or button).
func CheckTouchTargets(doc domdoc.Document) []schema.Finding {
	var offenders []schema.ElementRef
	for _, el := range doc.Elements() {
		if !el.Visible() || !isInteractiveLooking(el) {
			continue
		}
		box := el.Box()
		if box.Width >= minTouchTarget && box.Height >= minTouchTarget {
			continue
		}
		if isDecorativeTarget(el) {
			continue
		}
		if len(offenders) >= touchSampleCap {
			break
		}
		offenders = append(offenders, schema.ElementRef{
			Selector:   el.Selector(),
			Snapshot:   el.Snapshot(),
			IssueText:  fmt.Sprintf("Touch target is %.0fx%.0fpx, below the %.0fx%.0fpx minimum", box.Width, box.Height, minTouchTarget, minTouchTarget),
			Suggestion: "Increase padding or dimensions so the hit area reaches 44x44px",
		})
	}
	if len(offenders) == 0 {
		return nil
	}
	return []schema.Finding{{
		TestID:        "touch-target-size",
		WCAGLevel:     schema.LevelAAA,
		Category:      schema.CategoryTouch,
		Severity:      schema.SeverityModerate,
		Title:         "Touch targets too small",
		Description:   "Small touch targets are hard to hit for users with motor impairments and on touch devices.",
		WCAGCriterion: "2.5.5 Target Size",
		Elements:      offenders,
		Score:         65,
		Algorithm:     "touch-targets",
	}}
}

// isDecorativeTarget treats an empty or near-empty element nested inside
// a link or button as part of the parent's hit area, not its own target.
func isDecorativeTarget(el domdoc.Element) bool {
	if len(el.Text()) > 1 {
		return false
	}
	return hasAncestorTag(el, "a", "button")
}
