package structural

import (
	"strconv"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
)

// Native interactive tags that receive keyboard focus without tabindex.
var nativeInteractiveTags = map[string]struct{}{
	"a":        {},
	"button":   {},
	"input":    {},
	"select":   {},
	"textarea": {},
	"summary":  {},
	"details":  {},
}

// ARIA roles that imply interactivity.
var interactiveRoles = map[string]struct{}{
	"button":           {},
	"link":             {},
	"checkbox":         {},
	"radio":            {},
	"switch":           {},
	"tab":              {},
	"menuitem":         {},
	"menuitemcheckbox": {},
	"menuitemradio":    {},
	"option":           {},
	"slider":           {},
	"spinbutton":       {},
	"combobox":         {},
	"textbox":          {},
}

// Attributes that signal click-style scripted behavior.
var clickAttrs = []string{"onclick", "onmousedown", "onmouseup", "ondblclick"}

// isNativeInteractive reports whether the element is interactive by tag
// alone (an anchor needs an href to be focusable).
func isNativeInteractive(el domdoc.Element) bool {
	if _, ok := nativeInteractiveTags[el.Tag()]; !ok {
		return false
	}
	if el.Tag() == "a" && !el.HasAttr("href") {
		return false
	}
	if el.Tag() == "input" && strings.EqualFold(el.Attr("type"), "hidden") {
		return false
	}
	return true
}

// isInteractiveLooking reports whether the element looks interactive:
// native tags, explicit tabindex, click-style attributes or interactive
// ARIA roles.
func isInteractiveLooking(el domdoc.Element) bool {
	if isNativeInteractive(el) {
		return true
	}
	if el.HasAttr("tabindex") || el.HasAttr("contenteditable") {
		return true
	}
	for _, attr := range clickAttrs {
		if el.HasAttr(attr) {
			return true
		}
	}
	_, ok := interactiveRoles[strings.ToLower(el.Attr("role"))]
	return ok
}

// hasClickBehavior reports whether the element carries a click-style
// attribute or an interactive role.
func hasClickBehavior(el domdoc.Element) bool {
	for _, attr := range clickAttrs {
		if el.HasAttr(attr) {
			return true
		}
	}
	_, ok := interactiveRoles[strings.ToLower(el.Attr("role"))]
	return ok
}

// tabIndex returns the parsed tabindex and whether one is present.
func tabIndex(el domdoc.Element) (int, bool) {
	if !el.HasAttr("tabindex") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(el.Attr("tabindex")))
	if err != nil {
		return 0, false
	}
	return n, true
}

// isFocusable reports whether the element participates in the tab order.
func isFocusable(el domdoc.Element) bool {
	if ti, ok := tabIndex(el); ok {
		return ti >= 0
	}
	return isNativeInteractive(el)
}

// accessibleName resolves the element's text alternative: aria-label,
// aria-labelledby, then visible text, then title.
func accessibleName(doc domdoc.Document, el domdoc.Element) string {
	if label := strings.TrimSpace(el.Attr("aria-label")); label != "" {
		return label
	}
	if ids := strings.Fields(el.Attr("aria-labelledby")); len(ids) > 0 {
		var parts []string
		for _, id := range ids {
			if ref := findByID(doc, id); ref != nil {
				if t := ref.Text(); t != "" {
					parts = append(parts, t)
				}
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	if t := el.Text(); t != "" {
		return t
	}
	return strings.TrimSpace(el.Attr("title"))
}

// findByID locates an element by id attribute.
func findByID(doc domdoc.Document, id string) domdoc.Element {
	for _, el := range doc.Elements() {
		if el.Attr("id") == id {
			return el
		}
	}
	return nil
}

// hasAncestorTag reports whether any ancestor has one of the given tags.
func hasAncestorTag(el domdoc.Element, tags ...string) bool {
	for cur := el.Parent(); cur != nil; cur = cur.Parent() {
		for _, t := range tags {
			if cur.Tag() == t {
				return true
			}
		}
	}
	return false
}
