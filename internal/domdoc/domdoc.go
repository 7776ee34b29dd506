// Package domdoc abstracts a rendered document tree behind a narrow,
// read-only capability interface. Analyzers depend only on the Document
// and Element interfaces, never on a concrete renderer; the static
// implementation in this package materializes the tree from HTML source.
package domdoc

// Box is the rendered bounding geometry of an element, in CSS pixels.
type Box struct {
	Width  float64
	Height float64
}

// StyleRule is one flattened stylesheet declaration block. Media holds the
// enclosing media-query prelude, empty for top-level rules. Inaccessible
// stylesheets contribute no rules (fail-soft).
type StyleRule struct {
	Selector     string
	Media        string
	Declarations map[string]string
}

// Document enumerates the element tree and its stylesheets.
type Document interface {
	// Elements returns all body elements in document order.
	Elements() []Element

	// ElementsByTag returns body elements matching any of the given tags,
	// in document order.
	ElementsByTag(tags ...string) []Element

	// Body returns the document body element, never nil for a parsed
	// document.
	Body() Element

	// StyleRules enumerates the flattened rules of every accessible
	// stylesheet. Sheets that cannot be read are treated as empty.
	StyleRules() []StyleRule

	// ElementCount reports the number of elements in the tree.
	ElementCount() int

	// Lang returns the lang attribute of the html element, empty if absent.
	Lang() string

	// Title returns the normalized text of the head title, empty if absent.
	Title() string

	// Meta returns the content of the first meta element with the given
	// name, empty if absent.
	Meta(name string) string
}

// Element is a single read-only node of the document tree.
type Element interface {
	// Tag returns the lowercase tag name.
	Tag() string

	// Attr returns the value of an attribute, empty if absent.
	Attr(name string) string

	// HasAttr reports whether the attribute is present, even when empty.
	HasAttr(name string) bool

	// Text returns the whitespace-normalized descendant text.
	Text() string

	// OwnText returns the whitespace-normalized text of the element's
	// direct text nodes only.
	OwnText() string

	// Parent returns the parent element, nil at the body root.
	Parent() Element

	// Children returns the direct child elements.
	Children() []Element

	// Style returns the computed value of a CSS property, resolving the
	// inline-style, stylesheet, inheritance and user-agent cascade.
	Style(property string) string

	// Box returns the estimated rendered bounding geometry.
	Box() Box

	// Selector returns a stable CSS-style selector for the element.
	Selector() string

	// Snapshot returns a truncated HTML excerpt of the element.
	Snapshot() string

	// Visible reports whether the element is visually rendered.
	Visible() bool

	// Index returns the document-order position of the element.
	Index() int
}

// HasReducedMotionRule reports whether any accessible stylesheet declares
// a prefers-reduced-motion media query.
func HasReducedMotionRule(doc Document) bool {
	for _, rule := range doc.StyleRules() {
		if containsFold(rule.Media, "prefers-reduced-motion") {
			return true
		}
	}
	return false
}
