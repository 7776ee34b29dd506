package domdoc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Tags whose subtrees are never part of the rendered element tree.
var skippedTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"template": {},
	"noscript": {},
	"head":     {},
}

// staticDocument implements Document over a parsed HTML tree.
type staticDocument struct {
	body  *staticElement
	all   []*staticElement
	rules []StyleRule

	lang  string
	title string
	meta  map[string]string
}

// staticElement implements Element.
type staticElement struct {
	doc      *staticDocument
	tag      string
	attrs    map[string]string
	parent   *staticElement
	children []*staticElement
	ownText  string
	index    int

	// Derived values are cached lazily. Detectors run concurrently over
	// the same tree, so every cache access goes through mu; the values
	// themselves are deterministic, so a duplicate computation outside
	// the lock is harmless.
	mu         sync.Mutex
	inline     map[string]string // parsed style="" declarations
	styleCache map[string]string
	textCache  *string
	boxCache   *Box
	selCache   string
}

// ParseFile reads and parses an HTML document from disk.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open document %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// ParseString parses an HTML document from a string. Used heavily in tests.
func ParseString(src string) (Document, error) {
	return Parse(strings.NewReader(src))
}

// Parse builds a static document tree from HTML source. Stylesheet parse
// failures are recovered locally by treating the sheet as empty.
func Parse(r io.Reader) (Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse document: %w", err)
	}

	doc := &staticDocument{meta: map[string]string{}}

	var bodyNode *html.Node
	var styleTexts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html":
				doc.lang = attrValue(n, "lang")
			case "title":
				if doc.title == "" {
					doc.title = normalizeSpace(nodeText(n))
				}
			case "meta":
				name := strings.ToLower(attrValue(n, "name"))
				if _, seen := doc.meta[name]; name != "" && !seen {
					doc.meta[name] = attrValue(n, "content")
				}
			case "body":
				if bodyNode == nil {
					bodyNode = n
				}
			case "style":
				styleTexts = append(styleTexts, nodeText(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if bodyNode == nil {
		return nil, fmt.Errorf("cannot parse document: no body element")
	}

	doc.body = doc.buildElement(bodyNode, nil)
	doc.rules = flattenStylesheets(styleTexts)
	return doc, nil
}

// buildElement converts an html.Node subtree into staticElements,
// registering each in document order.
func (d *staticDocument) buildElement(n *html.Node, parent *staticElement) *staticElement {
	el := &staticElement{
		doc:    d,
		tag:    strings.ToLower(n.Data),
		attrs:  make(map[string]string, len(n.Attr)),
		parent: parent,
		index:  len(d.all),
	}
	for _, a := range n.Attr {
		el.attrs[strings.ToLower(a.Key)] = a.Val
	}
	d.all = append(d.all, el)

	var own []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			own = append(own, c.Data)
		case html.ElementNode:
			if _, skip := skippedTags[c.Data]; skip {
				continue
			}
			el.children = append(el.children, d.buildElement(c, el))
		}
	}
	el.ownText = normalizeSpace(strings.Join(own, " "))
	return el
}

// flattenStylesheets parses each sheet and flattens nested at-rules into
// StyleRule records. A sheet that fails to parse contributes nothing.
func flattenStylesheets(sheets []string) []StyleRule {
	var rules []StyleRule
	for _, sheet := range sheets {
		parsed, err := parser.Parse(sheet)
		if err != nil {
			continue // inaccessible or malformed sheet: treated as empty
		}
		rules = append(rules, flattenRules(parsed.Rules, "")...)
	}
	return rules
}

func flattenRules(in []*css.Rule, media string) []StyleRule {
	var out []StyleRule
	for _, rule := range in {
		switch rule.Kind {
		case css.QualifiedRule:
			decls := make(map[string]string, len(rule.Declarations))
			for _, decl := range rule.Declarations {
				decls[strings.ToLower(decl.Property)] = strings.TrimSpace(decl.Value)
			}
			for _, sel := range rule.Selectors {
				out = append(out, StyleRule{
					Selector:     strings.TrimSpace(sel),
					Media:        media,
					Declarations: decls,
				})
			}
		case css.AtRule:
			if rule.Name == "@media" {
				out = append(out, flattenRules(rule.Rules, strings.TrimSpace(rule.Prelude))...)
			}
		}
	}
	return out
}

func (d *staticDocument) Elements() []Element {
	out := make([]Element, len(d.all))
	for i, el := range d.all {
		out[i] = el
	}
	return out
}

func (d *staticDocument) ElementsByTag(tags ...string) []Element {
	var out []Element
	for _, el := range d.all {
		for _, t := range tags {
			if el.tag == t {
				out = append(out, el)
				break
			}
		}
	}
	return out
}

func (d *staticDocument) Body() Element { return d.body }

func (d *staticDocument) StyleRules() []StyleRule { return d.rules }

func (d *staticDocument) ElementCount() int { return len(d.all) }

func (d *staticDocument) Lang() string { return d.lang }

func (d *staticDocument) Title() string { return d.title }

func (d *staticDocument) Meta(name string) string { return d.meta[strings.ToLower(name)] }

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func (e *staticElement) Tag() string { return e.tag }

func (e *staticElement) Attr(name string) string { return e.attrs[strings.ToLower(name)] }

func (e *staticElement) HasAttr(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

func (e *staticElement) OwnText() string { return e.ownText }

func (e *staticElement) Text() string {
	e.mu.Lock()
	cached := e.textCache
	e.mu.Unlock()
	if cached != nil {
		return *cached
	}

	var parts []string
	var collect func(el *staticElement)
	collect = func(el *staticElement) {
		if el.ownText != "" {
			parts = append(parts, el.ownText)
		}
		for _, c := range el.children {
			collect(c)
		}
	}
	collect(e)
	text := normalizeSpace(strings.Join(parts, " "))

	e.mu.Lock()
	e.textCache = &text
	e.mu.Unlock()
	return text
}

func (e *staticElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *staticElement) Children() []Element {
	out := make([]Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *staticElement) Index() int { return e.index }

func (e *staticElement) Visible() bool {
	if e.HasAttr("hidden") {
		return false
	}
	if e.tag == "input" && strings.EqualFold(e.Attr("type"), "hidden") {
		return false
	}
	if e.Style("display") == "none" || e.Style("visibility") == "hidden" {
		return false
	}
	if e.parent != nil {
		return e.parent.Visible()
	}
	return true
}

// Snapshot renders the opening tag plus truncated text content.
func (e *staticElement) Snapshot() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)
	for _, key := range [...]string{"id", "class", "role", "href", "src", "alt", "type", "tabindex", "aria-label"} {
		if v, ok := e.attrs[key]; ok {
			fmt.Fprintf(&b, " %s=%q", key, v)
		}
	}
	b.WriteString(">")
	if text := e.Text(); text != "" {
		b.WriteString(truncate(text, 80))
	}
	fmt.Fprintf(&b, "</%s>", e.tag)
	return truncate(b.String(), 160)
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
