package domdoc

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Properties that inherit down the tree when not set on the element.
var inheritedProps = map[string]struct{}{
	"color":       {},
	"font-size":   {},
	"font-weight": {},
	"font-family": {},
	"visibility":  {},
}

// User-agent defaults per tag. Only the properties the analyzers consume
// are modeled.
var uaDefaults = map[string]map[string]string{
	"h1":     {"font-size": "32px", "font-weight": "700", "display": "block"},
	"h2":     {"font-size": "24px", "font-weight": "700", "display": "block"},
	"h3":     {"font-size": "18.72px", "font-weight": "700", "display": "block"},
	"h4":     {"font-size": "16px", "font-weight": "700", "display": "block"},
	"h5":     {"font-size": "13.28px", "font-weight": "700", "display": "block"},
	"h6":     {"font-size": "10.72px", "font-weight": "700", "display": "block"},
	"b":      {"font-weight": "700"},
	"strong": {"font-weight": "700"},
	"th":     {"font-weight": "700"},
	"small":  {"font-size": "13.33px"},
	"a":      {"color": "#0000ee"},
	"body":   {"color": "#000000", "font-size": "16px", "font-weight": "400", "display": "block"},
}

// Style resolves the computed value for a property: inline style first,
// then matching stylesheet rules in source order, then inheritance for
// inheritable properties, then user-agent defaults.
func (e *staticElement) Style(property string) string {
	property = strings.ToLower(property)
	e.mu.Lock()
	v, ok := e.styleCache[property]
	e.mu.Unlock()
	if ok {
		return v
	}

	v = e.resolveStyle(property)

	e.mu.Lock()
	if e.styleCache == nil {
		e.styleCache = make(map[string]string)
	}
	e.styleCache[property] = v
	e.mu.Unlock()
	return v
}

func (e *staticElement) resolveStyle(property string) string {
	if v, ok := e.inlineStyle()[property]; ok {
		return e.absolutize(property, v)
	}
	if v, ok := e.sheetValue(property); ok {
		return e.absolutize(property, v)
	}
	if _, inherits := inheritedProps[property]; inherits && e.parent != nil {
		return e.parent.Style(property)
	}
	if defaults, ok := uaDefaults[e.tag]; ok {
		if v, ok := defaults[property]; ok {
			return v
		}
	}
	switch property {
	case "font-size":
		return "16px"
	case "font-weight":
		return "400"
	case "color":
		return "#000000"
	case "background-color":
		return "transparent"
	}
	return ""
}

// inlineStyle lazily parses the style attribute with douceur. The first
// stored map wins so concurrent callers always read the same instance.
func (e *staticElement) inlineStyle() map[string]string {
	e.mu.Lock()
	cached := e.inline
	e.mu.Unlock()
	if cached != nil {
		return cached
	}

	parsed := map[string]string{}
	if raw := e.Attr("style"); raw != "" {
		if decls, err := parser.ParseDeclarations(raw); err == nil {
			for _, d := range decls {
				parsed[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
			}
		}
		// malformed inline style: treated as empty
	}

	e.mu.Lock()
	if e.inline == nil {
		e.inline = parsed
	}
	cached = e.inline
	e.mu.Unlock()
	return cached
}

// sheetValue scans accessible stylesheet rules for the last match.
func (e *staticElement) sheetValue(property string) (string, bool) {
	var value string
	var found bool
	for _, rule := range e.doc.rules {
		if rule.Media != "" && !mediaApplies(rule.Media) {
			continue
		}
		if v, ok := rule.Declarations[property]; ok && e.matchesSelector(rule.Selector) {
			value, found = v, true
		}
	}
	return value, found
}

// mediaApplies reports whether a media prelude applies to a default
// screen rendering. Reduced-motion preference queries are style hints the
// motion detector inspects separately; their rules do not apply here.
func mediaApplies(prelude string) bool {
	lower := strings.ToLower(prelude)
	if strings.Contains(lower, "print") {
		return false
	}
	if strings.Contains(lower, "prefers-reduced-motion") {
		return false
	}
	return true
}

// matchesSelector implements simple selector matching: the last compound
// segment of the selector is matched against the element by tag, id and
// classes. Selectors with pseudo-classes or attribute conditions are
// skipped, as their state is not observable in a static tree.
func (e *staticElement) matchesSelector(selector string) bool {
	if strings.ContainsAny(selector, ":[") {
		return false
	}
	segments := strings.FieldsFunc(selector, func(r rune) bool {
		return r == ' ' || r == '>' || r == '+' || r == '~'
	})
	if len(segments) == 0 {
		return false
	}
	return e.matchesCompound(segments[len(segments)-1])
}

func (e *staticElement) matchesCompound(compound string) bool {
	tag, id, classes := splitCompound(compound)
	if tag != "" && tag != "*" && tag != e.tag {
		return false
	}
	if id != "" && e.Attr("id") != id {
		return false
	}
	if len(classes) > 0 {
		have := map[string]struct{}{}
		for _, c := range strings.Fields(e.Attr("class")) {
			have[c] = struct{}{}
		}
		for _, c := range classes {
			if _, ok := have[c]; !ok {
				return false
			}
		}
	}
	return tag != "" || id != "" || len(classes) > 0
}

func splitCompound(compound string) (tag, id string, classes []string) {
	var cur strings.Builder
	kind := byte('t')
	flush := func() {
		s := cur.String()
		cur.Reset()
		if s == "" {
			return
		}
		switch kind {
		case 't':
			tag = strings.ToLower(s)
		case '#':
			id = s
		case '.':
			classes = append(classes, s)
		}
	}
	for i := 0; i < len(compound); i++ {
		switch compound[i] {
		case '#', '.':
			flush()
			kind = compound[i]
		default:
			cur.WriteByte(compound[i])
		}
	}
	flush()
	return tag, id, classes
}

// absolutize converts relative font sizes to computed pixel values and
// normalizes font weights to numbers. Other properties pass through.
func (e *staticElement) absolutize(property, value string) string {
	switch property {
	case "font-size":
		return formatPx(e.resolveFontSize(value))
	case "font-weight":
		return strconv.Itoa(resolveFontWeight(value))
	}
	return value
}

func (e *staticElement) parentFontSize() float64 {
	if e.parent == nil {
		return 16
	}
	return parsePx(e.parent.Style("font-size"), 16)
}

func (e *staticElement) resolveFontSize(value string) float64 {
	value = strings.TrimSpace(strings.ToLower(value))
	parent := e.parentFontSize()
	switch {
	case strings.HasSuffix(value, "px"):
		return parseFloat(strings.TrimSuffix(value, "px"), 16)
	case strings.HasSuffix(value, "pt"):
		return parseFloat(strings.TrimSuffix(value, "pt"), 12) * 4.0 / 3.0
	case strings.HasSuffix(value, "rem"):
		return parseFloat(strings.TrimSuffix(value, "rem"), 1) * 16
	case strings.HasSuffix(value, "em"):
		return parseFloat(strings.TrimSuffix(value, "em"), 1) * parent
	case strings.HasSuffix(value, "%"):
		return parseFloat(strings.TrimSuffix(value, "%"), 100) / 100 * parent
	case value == "smaller":
		return parent / 1.2
	case value == "larger":
		return parent * 1.2
	}
	return parseFloat(value, parent)
}

func resolveFontWeight(value string) int {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "bold", "bolder":
		return 700
	case "normal":
		return 400
	case "lighter":
		return 300
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return n
	}
	return 400
}

// FontSizePx returns a computed font-size string as pixels.
func FontSizePx(el Element) float64 {
	return parsePx(el.Style("font-size"), 16)
}

// FontWeight returns a computed font-weight string as a number.
func FontWeight(el Element) int {
	n, err := strconv.Atoi(el.Style("font-weight"))
	if err != nil {
		return resolveFontWeight(el.Style("font-weight"))
	}
	return n
}

func parsePx(s string, fallback float64) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, "px")
	return parseFloat(s, fallback)
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
