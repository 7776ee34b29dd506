package semantic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Phrases that tell a screen reader user nothing about a link's target
// when read out of context.
var ambiguousPhrases = map[string]struct{}{
	"click here": {},
	"click":      {},
	"here":       {},
	"read more":  {},
	"more":       {},
	"learn more": {},
	"see more":   {},
	"continue":   {},
	"next":       {},
	"previous":   {},
	"back":       {},
	"go":         {},
	"link":       {},
	"this":       {},
	"this page":  {},
	"details":    {},
	"info":       {},
}

var bareNumberRe = regexp.MustCompile(`^\d+$`)

const linkContextLength = 50

// CheckLinkText tests every anchor's effective text against a fixed
// ambiguous-phrase list. Matches aggregate into one moderate finding.
func CheckLinkText(doc domdoc.Document) []schema.SemanticFinding {
	var offenders []schema.SemanticElement
	for _, a := range doc.ElementsByTag("a") {
		if !a.Visible() || !a.HasAttr("href") {
			continue
		}
		text := effectiveLinkText(a)
		if !isAmbiguousLinkText(text) {
			continue
		}
		offenders = append(offenders, schema.SemanticElement{
			Selector:      a.Selector(),
			Context:       surroundingContext(a, linkContextLength),
			IssueText:     fmt.Sprintf("Link text %q does not describe its destination", text),
			CognitiveLoad: 6,
		})
	}
	if len(offenders) == 0 {
		return nil
	}
	return []schema.SemanticFinding{{
		TestID:      "link-purpose",
		Category:    schema.SemanticContext,
		Severity:    schema.SeverityModerate,
		Title:       "Ambiguous link text",
		Description: "Screen reader users often navigate by a list of links; generic phrases like \"click here\" are meaningless out of context.",
		SuggestedFixes: []string{
			"Name the destination in the link text itself",
			"Move surrounding context into the link",
		},
		Elements:   offenders,
		Confidence: 90,
	}}
}

// effectiveLinkText resolves aria-label, else visible text, else title.
func effectiveLinkText(a domdoc.Element) string {
	if label := strings.TrimSpace(a.Attr("aria-label")); label != "" {
		return label
	}
	if t := a.Text(); t != "" {
		return t
	}
	return strings.TrimSpace(a.Attr("title"))
}

func isAmbiguousLinkText(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.TrimRight(normalized, ".!?…")
	if len(normalized) < 3 {
		return true
	}
	if _, ok := ambiguousPhrases[normalized]; ok {
		return true
	}
	return bareNumberRe.MatchString(normalized)
}
