package semantic

import (
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
)

// Tags and roles whose subtrees are navigation chrome, not main content.
var chromeTags = map[string]struct{}{
	"nav":    {},
	"aside":  {},
	"footer": {},
	"header": {},
}

var chromeRoles = map[string]struct{}{
	"navigation":    {},
	"complementary": {},
	"banner":        {},
	"contentinfo":   {},
}

// mainContentRoot prefers an explicit main-content container, falling
// back to the body.
func mainContentRoot(doc domdoc.Document) domdoc.Element {
	for _, el := range doc.Elements() {
		if el.Tag() == "main" || strings.EqualFold(el.Attr("role"), "main") {
			return el
		}
	}
	return doc.Body()
}

// MainContentText extracts the page's main-content text: the explicit
// main container when present, otherwise the body text with navigation,
// aside, footer and complementary-role subtrees stripped.
func MainContentText(doc domdoc.Document) string {
	root := mainContentRoot(doc)
	explicit := root != doc.Body()

	var parts []string
	var walk func(el domdoc.Element)
	walk = func(el domdoc.Element) {
		if !explicit && isChrome(el) {
			return
		}
		if t := el.OwnText(); t != "" {
			parts = append(parts, t)
		}
		for _, c := range el.Children() {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}

func isChrome(el domdoc.Element) bool {
	if _, ok := chromeTags[el.Tag()]; ok {
		return true
	}
	_, ok := chromeRoles[strings.ToLower(el.Attr("role"))]
	return ok
}

// surroundingContext returns up to max characters of text around an
// element, drawn from its nearest text-bearing ancestor.
func surroundingContext(el domdoc.Element, max int) string {
	for cur := el.Parent(); cur != nil; cur = cur.Parent() {
		if t := cur.Text(); len(t) > len(el.Text()) {
			r := []rune(t)
			if len(r) > max {
				r = r[:max]
			}
			return string(r)
		}
	}
	r := []rune(el.Text())
	if len(r) > max {
		r = r[:max]
	}
	return string(r)
}
