package baseline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

const helpURLBase = "https://dequeuniversity.com/rules/axe/4.10"

// rules returns the builtin rule set in a fixed order so that results
// are deterministic for identical documents.
func rules() []rule {
	return []rule{
		{
			id:          "html-has-lang",
			impact:      schema.SeveritySerious,
			description: "Ensures every HTML document has a lang attribute",
			help:        "<html> element must have a lang attribute",
			helpURL:     helpURLBase + "/html-has-lang",
			tags:        []string{schema.TagWCAG2A, "cat.language"},
			evaluate:    evalHTMLHasLang,
		},
		{
			id:          "document-title",
			impact:      schema.SeveritySerious,
			description: "Ensures each HTML document contains a non-empty <title> element",
			help:        "Documents must have <title> element to aid in navigation",
			helpURL:     helpURLBase + "/document-title",
			tags:        []string{schema.TagWCAG2A, "cat.text-alternatives"},
			evaluate:    evalDocumentTitle,
		},
		{
			id:          "duplicate-id",
			impact:      schema.SeverityModerate,
			description: "Ensures every id attribute value is unique",
			help:        "id attribute value must be unique",
			helpURL:     helpURLBase + "/duplicate-id",
			tags:        []string{schema.TagWCAG2A, "cat.parsing"},
			evaluate:    evalDuplicateID,
		},
		{
			id:          "meta-viewport",
			impact:      schema.SeverityCritical,
			description: "Ensures <meta name=\"viewport\"> does not disable text scaling and zooming",
			help:        "Zooming and scaling must not be disabled",
			helpURL:     helpURLBase + "/meta-viewport",
			tags:        []string{schema.TagWCAG2AA, "cat.sensory-and-visual-cues"},
			evaluate:    evalMetaViewport,
		},
		{
			id:          "link-name",
			impact:      schema.SeveritySerious,
			description: "Ensures links have discernible text",
			help:        "Links must have discernible text",
			helpURL:     helpURLBase + "/link-name",
			tags:        []string{schema.TagWCAG2A, "cat.name-role-value"},
			evaluate:    evalLinkName,
		},
		{
			id:          "button-name",
			impact:      schema.SeverityCritical,
			description: "Ensures buttons have discernible text",
			help:        "Buttons must have discernible text",
			helpURL:     helpURLBase + "/button-name",
			tags:        []string{schema.TagWCAG2A, "cat.name-role-value"},
			evaluate:    evalButtonName,
		},
		{
			id:          "region",
			impact:      schema.SeverityModerate,
			description: "Ensures all page content is contained by landmarks",
			help:        "All page content should be contained by landmarks",
			helpURL:     helpURLBase + "/region",
			tags:        []string{schema.TagWCAG2AAA, "cat.keyboard"},
			evaluate:    evalRegion,
		},
		{
			id:          "identical-links-same-purpose",
			impact:      schema.SeverityMinor,
			description: "Ensures that links with the same accessible name serve a similar purpose",
			help:        "Links with the same name must have a similar purpose",
			helpURL:     helpURLBase + "/identical-links-same-purpose",
			tags:        []string{schema.TagWCAG2AAA, "cat.semantics"},
			evaluate:    evalIdenticalLinks,
		},
	}
}

func evalHTMLHasLang(doc domdoc.Document) ruleOutcome {
	if strings.TrimSpace(doc.Lang()) != "" {
		return ruleOutcome{applicable: true, passes: []schema.RuleNode{{
			HTML:   fmt.Sprintf("<html lang=%q>", doc.Lang()),
			Target: []string{"html"},
		}}}
	}
	return ruleOutcome{applicable: true, violations: []schema.RuleNode{{
		HTML:           "<html>",
		Target:         []string{"html"},
		FailureSummary: "The <html> element does not have a lang attribute",
	}}}
}

func evalDocumentTitle(doc domdoc.Document) ruleOutcome {
	if doc.Title() != "" {
		return ruleOutcome{applicable: true, passes: []schema.RuleNode{{
			HTML:   fmt.Sprintf("<title>%s</title>", doc.Title()),
			Target: []string{"title"},
		}}}
	}
	return ruleOutcome{applicable: true, violations: []schema.RuleNode{{
		HTML:           "<head>",
		Target:         []string{"head"},
		FailureSummary: "Document does not have a non-empty <title> element",
	}}}
}

func evalDuplicateID(doc domdoc.Document) ruleOutcome {
	seen := map[string][]domdoc.Element{}
	for _, el := range doc.Elements() {
		if id := el.Attr("id"); id != "" {
			seen[id] = append(seen[id], el)
		}
	}
	if len(seen) == 0 {
		return ruleOutcome{applicable: false}
	}
	out := ruleOutcome{applicable: true}
	for id, els := range seen {
		if len(els) < 2 {
			continue
		}
		for _, el := range els[1:] {
			out.violations = append(out.violations, schema.RuleNode{
				HTML:           el.Snapshot(),
				Target:         []string{el.Selector()},
				FailureSummary: fmt.Sprintf("Document has multiple elements with id %q", id),
			})
		}
	}
	sortNodes(out.violations)
	if len(out.violations) == 0 {
		out.passes = []schema.RuleNode{{HTML: "<body>", Target: []string{"body"}}}
	}
	return out
}

func evalMetaViewport(doc domdoc.Document) ruleOutcome {
	content := doc.Meta("viewport")
	if content == "" {
		return ruleOutcome{applicable: false}
	}
	lowered := strings.ToLower(strings.ReplaceAll(content, " ", ""))
	blocked := strings.Contains(lowered, "user-scalable=no") ||
		strings.Contains(lowered, "maximum-scale=1.0,") ||
		strings.HasSuffix(lowered, "maximum-scale=1.0") ||
		strings.HasSuffix(lowered, "maximum-scale=1")
	node := schema.RuleNode{
		HTML:   fmt.Sprintf("<meta name=\"viewport\" content=%q>", content),
		Target: []string{"meta[name=viewport]"},
	}
	if blocked {
		node.FailureSummary = "The viewport meta tag disables zooming or pinch-to-scale"
		return ruleOutcome{applicable: true, violations: []schema.RuleNode{node}}
	}
	return ruleOutcome{applicable: true, passes: []schema.RuleNode{node}}
}

func evalLinkName(doc domdoc.Document) ruleOutcome {
	links := doc.ElementsByTag("a")
	var applicable bool
	out := ruleOutcome{}
	for _, el := range links {
		if !el.HasAttr("href") {
			continue
		}
		applicable = true
		if ruleAccessibleName(el) == "" {
			out.violations = append(out.violations, schema.RuleNode{
				HTML:           el.Snapshot(),
				Target:         []string{el.Selector()},
				FailureSummary: "Element does not have text that is visible to screen readers",
			})
		} else {
			out.passes = append(out.passes, schema.RuleNode{
				HTML:   el.Snapshot(),
				Target: []string{el.Selector()},
			})
		}
	}
	out.applicable = applicable
	return out
}

func evalButtonName(doc domdoc.Document) ruleOutcome {
	var targets []domdoc.Element
	targets = append(targets, doc.ElementsByTag("button")...)
	for _, el := range doc.ElementsByTag("input") {
		switch strings.ToLower(el.Attr("type")) {
		case "button", "submit", "reset":
			targets = append(targets, el)
		}
	}
	if len(targets) == 0 {
		return ruleOutcome{applicable: false}
	}
	out := ruleOutcome{applicable: true}
	for _, el := range targets {
		name := ruleAccessibleName(el)
		if name == "" && el.Tag() == "input" {
			name = strings.TrimSpace(el.Attr("value"))
		}
		if name == "" {
			out.violations = append(out.violations, schema.RuleNode{
				HTML:           el.Snapshot(),
				Target:         []string{el.Selector()},
				FailureSummary: "Element has no accessible name",
			})
		} else {
			out.passes = append(out.passes, schema.RuleNode{
				HTML:   el.Snapshot(),
				Target: []string{el.Selector()},
			})
		}
	}
	return out
}

// evalRegion flags direct body children carrying rendered text outside
// any landmark element.
func evalRegion(doc domdoc.Document) ruleOutcome {
	body := doc.Body()
	if body == nil {
		return ruleOutcome{applicable: false}
	}
	out := ruleOutcome{applicable: true}
	for _, child := range body.Children() {
		if isLandmark(child) || child.Text() == "" || !child.Visible() {
			continue
		}
		out.violations = append(out.violations, schema.RuleNode{
			HTML:           child.Snapshot(),
			Target:         []string{child.Selector()},
			FailureSummary: "Some page content is not contained by landmarks",
		})
	}
	if len(out.violations) == 0 {
		out.passes = []schema.RuleNode{{HTML: "<body>", Target: []string{"body"}}}
	}
	return out
}

// evalIdenticalLinks reports incomplete, never violation: same-name links
// pointing at different destinations need human review.
func evalIdenticalLinks(doc domdoc.Document) ruleOutcome {
	byName := map[string]map[string][]domdoc.Element{}
	applicable := false
	for _, el := range doc.ElementsByTag("a") {
		href := strings.TrimSpace(el.Attr("href"))
		name := strings.ToLower(ruleAccessibleName(el))
		if href == "" || name == "" {
			continue
		}
		applicable = true
		if byName[name] == nil {
			byName[name] = map[string][]domdoc.Element{}
		}
		byName[name][href] = append(byName[name][href], el)
	}
	if !applicable {
		return ruleOutcome{applicable: false}
	}
	out := ruleOutcome{applicable: true}
	for name, dests := range byName {
		if len(dests) < 2 {
			continue
		}
		for _, els := range dests {
			for _, el := range els {
				out.incomplete = append(out.incomplete, schema.RuleNode{
					HTML:           el.Snapshot(),
					Target:         []string{el.Selector()},
					FailureSummary: fmt.Sprintf("Multiple links named %q point to different destinations", name),
				})
			}
		}
	}
	sortNodes(out.incomplete)
	if len(out.incomplete) == 0 {
		out.passes = []schema.RuleNode{{HTML: "<body>", Target: []string{"body"}}}
	}
	return out
}

// sortNodes orders rule nodes by selector so map-driven rules stay
// deterministic across scans of the same document.
func sortNodes(nodes []schema.RuleNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Target[0] != nodes[j].Target[0] {
			return nodes[i].Target[0] < nodes[j].Target[0]
		}
		return nodes[i].FailureSummary < nodes[j].FailureSummary
	})
}

var landmarkTags = map[string]struct{}{
	"main":    {},
	"nav":     {},
	"header":  {},
	"footer":  {},
	"aside":   {},
	"form":    {},
	"section": {},
}

var landmarkRoles = map[string]struct{}{
	"main":          {},
	"navigation":    {},
	"banner":        {},
	"contentinfo":   {},
	"complementary": {},
	"search":        {},
	"form":          {},
	"region":        {},
}

func isLandmark(el domdoc.Element) bool {
	if _, ok := landmarkTags[el.Tag()]; ok {
		return true
	}
	_, ok := landmarkRoles[strings.ToLower(el.Attr("role"))]
	return ok
}

// ruleAccessibleName approximates name computation: aria-label, then
// aria-labelledby targets, then descendant text, then title.
func ruleAccessibleName(el domdoc.Element) string {
	if label := strings.TrimSpace(el.Attr("aria-label")); label != "" {
		return label
	}
	if el.HasAttr("aria-labelledby") {
		// Resolution of labelledby targets happens in the structural pass;
		// presence of the reference is enough for the baseline check.
		return strings.TrimSpace(el.Attr("aria-labelledby"))
	}
	if text := el.Text(); text != "" {
		return text
	}
	for _, c := range el.Children() {
		if c.Tag() == "img" {
			if alt := strings.TrimSpace(c.Attr("alt")); alt != "" {
				return alt
			}
		}
	}
	return strings.TrimSpace(el.Attr("title"))
}
