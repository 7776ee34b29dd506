package semantic

import (
	"fmt"
	"regexp"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Three regex families of jargon likely to confuse a general audience.
var jargonFamilies = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{
		name:    "business",
		pattern: regexp.MustCompile(`\b(?:KPI|ROI|B2B|B2C|SaaS|MVP|synerg\w+|leverag(?:e|ed|ing)|paradigm|stakeholders?|scalab\w+|bandwidth|deliverables?)\b`),
	},
	{
		name:    "technical",
		pattern: regexp.MustCompile(`\b(?:API|SDK|OAuth|JSON|XML|SSL|TLS|backend|frontend|middleware|microservices?|endpoints?|latency|webhooks?|runtime)\b`),
	},
	{
		name:    "analytics",
		pattern: regexp.MustCompile(`\b(?:CTR|CPC|CPM|SEO|SERP|conversion rate|funnel|cohorts?|churn rate|attribution|impressions?|retargeting)\b`),
	},
}

const (
	jargonSampleCap     = 5
	jargonContextLength = 30
)

// CheckJargon scans the extracted main-content text for jargon. Matches
// aggregate into one minor finding capped at five samples.
func CheckJargon(doc domdoc.Document) []schema.SemanticFinding {
	text := MainContentText(doc)
	if text == "" {
		return nil
	}

	var samples []schema.SemanticElement
	for _, family := range jargonFamilies {
		for _, loc := range family.pattern.FindAllStringIndex(text, -1) {
			if len(samples) >= jargonSampleCap {
				break
			}
			samples = append(samples, schema.SemanticElement{
				Selector:      "main",
				Context:       contextAround(text, loc[0], loc[1], jargonContextLength),
				IssueText:     fmt.Sprintf("%s jargon: %q", family.name, text[loc[0]:loc[1]]),
				CognitiveLoad: 4,
			})
		}
		if len(samples) >= jargonSampleCap {
			break
		}
	}
	if len(samples) == 0 {
		return nil
	}
	return []schema.SemanticFinding{{
		TestID:      "jargon",
		Category:    schema.SemanticGeneral,
		Severity:    schema.SeverityMinor,
		Title:       "Jargon in main content",
		Description: "Specialist vocabulary raises the reading level and excludes audiences unfamiliar with the domain.",
		SuggestedFixes: []string{
			"Spell out acronyms on first use",
			"Replace jargon with plain-language equivalents",
		},
		Elements:   samples,
		Confidence: 70,
	}}
}

// contextAround extracts up to pad characters on each side of a match.
func contextAround(text string, start, end, pad int) string {
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
