package structural

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

const keyboardSampleCap = 10

// CheckKeyboard classifies interactive-looking elements by keyboard
// reachability and simulates tab traversal over the focusable set to
// detect focus traps.
func CheckKeyboard(doc domdoc.Document) []schema.Finding {
	var unreachable []schema.ElementRef
	var focusables []domdoc.Element

	for _, el := range doc.Elements() {
		if !el.Visible() || !isInteractiveLooking(el) {
			continue
		}
		if isFocusable(el) {
			focusables = append(focusables, el)
			continue
		}
		ti, hasTI := tabIndex(el)
		var issue string
		switch {
		case hasTI && ti < 0 && !isNativeInteractive(el):
			issue = "Explicitly removed from the tab order with tabindex=\"-1\""
		case hasClickBehavior(el) && !isNativeInteractive(el):
			issue = "Click behavior without a keyboard equivalent"
		default:
			continue
		}
		if len(unreachable) < keyboardSampleCap {
			unreachable = append(unreachable, schema.ElementRef{
				Selector:   el.Selector(),
				Snapshot:   el.Snapshot(),
				IssueText:  issue,
				Suggestion: "Use a native button or link, or add tabindex=\"0\" with a key handler",
			})
		}
	}

	var findings []schema.Finding
	if len(unreachable) > 0 {
		findings = append(findings, schema.Finding{
			TestID:        "keyboard-access",
			WCAGLevel:     schema.LevelA,
			Category:      schema.CategoryKeyboard,
			Severity:      schema.SeveritySerious,
			Title:         "Missing keyboard support",
			Description:   "Interactive elements must be operable with a keyboard alone; mouse-only controls exclude keyboard and switch users.",
			WCAGCriterion: "2.1.1 Keyboard",
			Elements:      unreachable,
			Score:         50,
			Algorithm:     "keyboard-reachability",
		})
	}
	findings = append(findings, checkFocusTraps(doc, focusables)...)
	return findings
}

// checkFocusTraps simulates forward and backward tab traversal over the
// focus order. The check is deliberately conservative: it only reports an
// element when traversal provably cannot escape it, preferring false
// negatives over false positives.
func checkFocusTraps(doc domdoc.Document, focusables []domdoc.Element) []schema.Finding {
	order := tabOrder(focusables)

	var findings []schema.Finding
	for i, el := range order {
		next := order[(i+1)%len(order)]
		prev := order[(i-1+len(order))%len(order)]
		if len(order) > 1 && (next != el || prev != el) {
			continue // traversal escapes in at least one direction
		}
		if len(order) > 1 {
			continue
		}
		// A single focusable confined to an open modal dialog cannot be
		// escaped by tabbing in either direction.
		if modal := enclosingModal(el); modal != nil {
			findings = append(findings, focusTrapFinding(el))
		}
	}

	// Modal dialogs with no focusable descendants trap keyboard users the
	// moment focus moves inside.
	for _, el := range doc.Elements() {
		if !isOpenModal(el) {
			continue
		}
		if !containsAnyFocusable(el, focusables) {
			findings = append(findings, schema.Finding{
				TestID:        "focus-trap",
				WCAGLevel:     schema.LevelA,
				Category:      schema.CategoryKeyboard,
				Severity:      schema.SeverityCritical,
				Title:         "Keyboard focus trap",
				Description:   "A modal dialog without focusable content cannot be operated or dismissed with the keyboard.",
				WCAGCriterion: "2.1.2 No Keyboard Trap",
				Elements: []schema.ElementRef{{
					Selector:   el.Selector(),
					Snapshot:   el.Snapshot(),
					IssueText:  "Open modal dialog contains no focusable element",
					Suggestion: "Add a focusable close control inside the dialog",
				}},
				Score:     30,
				Algorithm: "keyboard-reachability",
			})
		}
	}
	return findings
}

// tabOrder sorts focusables the way a browser does: positive tabindex
// values ascending first, then document order.
func tabOrder(focusables []domdoc.Element) []domdoc.Element {
	order := make([]domdoc.Element, len(focusables))
	copy(order, focusables)
	sort.SliceStable(order, func(i, j int) bool {
		ti, _ := tabIndex(order[i])
		tj, _ := tabIndex(order[j])
		if ti > 0 && tj > 0 {
			return ti < tj
		}
		if ti > 0 {
			return true
		}
		if tj > 0 {
			return false
		}
		return order[i].Index() < order[j].Index()
	})
	return order
}

func enclosingModal(el domdoc.Element) domdoc.Element {
	for cur := el; cur != nil; cur = cur.Parent() {
		if isOpenModal(cur) {
			return cur
		}
	}
	return nil
}

func isOpenModal(el domdoc.Element) bool {
	if !el.Visible() {
		return false
	}
	if strings.EqualFold(el.Attr("aria-modal"), "true") {
		return true
	}
	return el.Tag() == "dialog" && el.HasAttr("open")
}

func containsAnyFocusable(container domdoc.Element, focusables []domdoc.Element) bool {
	for _, f := range focusables {
		for cur := f; cur != nil; cur = cur.Parent() {
			if cur == container {
				return true
			}
		}
	}
	return false
}

func focusTrapFinding(el domdoc.Element) schema.Finding {
	return schema.Finding{
		TestID:        "focus-trap",
		WCAGLevel:     schema.LevelA,
		Category:      schema.CategoryKeyboard,
		Severity:      schema.SeverityCritical,
		Title:         "Keyboard focus trap",
		Description:   "Tab traversal cannot escape this element in either direction.",
		WCAGCriterion: "2.1.2 No Keyboard Trap",
		Elements: []schema.ElementRef{{
			Selector:   el.Selector(),
			Snapshot:   el.Snapshot(),
			IssueText:  fmt.Sprintf("Focus cannot leave %s via Tab or Shift+Tab", el.Tag()),
			Suggestion: "Provide an escape path: a close control or proper focus management",
		}},
		Score:     30,
		Algorithm: "keyboard-reachability",
	}
}
