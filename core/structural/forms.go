package structural

import (
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Input types that label themselves through their value or function.
var selfLabelingInputTypes = map[string]struct{}{
	"hidden": {},
	"submit": {},
	"button": {},
	"reset":  {},
	"image":  {},
}

// CheckForms requires every form control to resolve to a label via an
// explicit label[for] association, an enclosing label, or an ARIA label.
// Unlabeled controls aggregate into one serious finding.
func CheckForms(doc domdoc.Document) []schema.Finding {
	labelFor := map[string]struct{}{}
	for _, l := range doc.ElementsByTag("label") {
		if forID := l.Attr("for"); forID != "" {
			labelFor[forID] = struct{}{}
		}
	}

	var offenders []schema.ElementRef
	for _, el := range doc.Elements() {
		if !isFormControl(el) || !el.Visible() {
			continue
		}
		if controlHasLabel(el, labelFor) {
			continue
		}
		offenders = append(offenders, schema.ElementRef{
			Selector:   el.Selector(),
			Snapshot:   el.Snapshot(),
			IssueText:  "Form control has no associated label",
			Suggestion: "Associate a <label for=...>, wrap the control in a label, or add aria-label",
		})
	}
	if len(offenders) == 0 {
		return nil
	}
	return []schema.Finding{{
		TestID:        "form-label",
		WCAGLevel:     schema.LevelA,
		Category:      schema.CategoryForms,
		Severity:      schema.SeveritySerious,
		Title:         "Unlabeled form controls",
		Description:   "Screen readers announce the label when a control receives focus; without one the control's purpose is unknown.",
		WCAGCriterion: "3.3.2 Labels or Instructions",
		Elements:      offenders,
		Score:         45,
		Algorithm:     "form-labeling",
		AutoFixable:   true,
	}}
}

func isFormControl(el domdoc.Element) bool {
	switch el.Tag() {
	case "select", "textarea":
		return true
	case "input":
		t := strings.ToLower(el.Attr("type"))
		_, selfLabeling := selfLabelingInputTypes[t]
		return !selfLabeling
	}
	return false
}

func controlHasLabel(el domdoc.Element, labelFor map[string]struct{}) bool {
	if id := el.Attr("id"); id != "" {
		if _, ok := labelFor[id]; ok {
			return true
		}
	}
	if hasAncestorTag(el, "label") {
		return true
	}
	if strings.TrimSpace(el.Attr("aria-label")) != "" {
		return true
	}
	return strings.TrimSpace(el.Attr("aria-labelledby")) != ""
}
