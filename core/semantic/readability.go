package semantic

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Text blocks considered for readability scoring.
var textBlockTags = []string{"p", "li", "blockquote", "dd", "figcaption", "td"}

const minBlockLength = 50

// CheckReadability computes the Flesch Reading Ease of every text block
// of at least 50 characters and flags hard-to-read passages.
func CheckReadability(doc domdoc.Document) []schema.SemanticFinding {
	var findings []schema.SemanticFinding
	for _, el := range doc.ElementsByTag(textBlockTags...) {
		if !el.Visible() {
			continue
		}
		text := el.Text()
		if len(text) < minBlockLength {
			continue
		}
		score := FleschReadingEase(text)
		if score >= 60 {
			continue
		}
		severity := schema.SeverityModerate
		if score < 40 {
			severity = schema.SeveritySerious
		}
		load := schema.ClampLoad(int(math.Round((100 - score) / 10)))
		findings = append(findings, schema.SemanticFinding{
			TestID:      "readability",
			Category:    schema.SemanticCognitive,
			Severity:    severity,
			Title:       "Hard-to-read text block",
			Description: fmt.Sprintf("Flesch Reading Ease of %.0f; text below 60 is difficult for many readers.", score),
			Explanation: "Long sentences and polysyllabic words raise the effort needed to understand a passage, especially for readers with cognitive disabilities.",
			SuggestedFixes: []string{
				"Shorten sentences to one idea each",
				"Prefer common words over technical vocabulary",
				"Break dense paragraphs into lists",
			},
			Elements: []schema.SemanticElement{{
				Selector:      el.Selector(),
				Context:       schema.TruncateText(text, 120),
				IssueText:     fmt.Sprintf("Reading ease score %.0f", score),
				CognitiveLoad: load,
			}},
			Confidence: 85,
		})
	}
	return findings
}

// FleschReadingEase computes 206.835 - 1.015*(words/sentences) -
// 84.6*(syllables/words), clamped to [0,100].
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 100
	}
	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}
	score := 206.835 - 1.015*(float64(len(words))/float64(sentences)) - 84.6*(float64(syllables)/float64(len(words)))
	return schema.ClampScore(score)
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

// CountSyllables estimates syllables as the number of vowel groups, minus
// one for a trailing silent e, with a floor of one.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 1
	}
	groups := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			groups++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}
