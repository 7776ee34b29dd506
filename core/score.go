package core

import (
	"github.com/pagelens/pagelens/schema"
)

// baselineScore is the pass rate of the baseline rule results, 0-100.
// A document with no applicable rules scores 100.
func baselineScore(results *schema.RuleResults) float64 {
	passes := len(results.Passes)
	total := passes + len(results.Violations) + len(results.Incomplete)
	if total == 0 {
		return 100
	}
	return float64(passes) / float64(total) * 100
}

// structuralPenalty sums the weight table over the structural findings.
func structuralPenalty(findings []schema.Finding, weights schema.WeightTable) float64 {
	counts := map[schema.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return weights.Penalty(counts)
}

// semanticPenalty sums the weight table over the semantic findings.
func semanticPenalty(findings []schema.SemanticFinding, weights schema.WeightTable) float64 {
	counts := map[schema.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return weights.Penalty(counts)
}

// levelScore is the baseline pass rate restricted to rules carrying the
// given WCAG tag. Levels with no tagged rules score 100.
func levelScore(results *schema.RuleResults, tag string) float64 {
	passes, violations := 0, 0
	for i := range results.Passes {
		if results.Passes[i].HasTag(tag) {
			passes++
		}
	}
	for i := range results.Violations {
		if results.Violations[i].HasTag(tag) {
			violations++
		}
	}
	if passes+violations == 0 {
		return 100
	}
	return float64(passes) / float64(passes+violations) * 100
}

// cognitiveScore converts the total cognitive load carried by
// cognitive-category semantic findings into a 0-100 score. Loads on
// context, ux and general findings do not count. A load sum of 50 or
// more scores zero.
func cognitiveScore(findings []schema.SemanticFinding) float64 {
	totalLoad := 0
	for _, f := range findings {
		if f.Category != schema.SemanticCognitive {
			continue
		}
		for _, el := range f.Elements {
			totalLoad += el.CognitiveLoad
		}
	}
	return schema.ClampScore(100 - float64(totalLoad)/50*100)
}

// computeScores combines the three analysis passes into the composite
// score block. The structural and semantic penalties are averaged before
// subtraction so neither pass alone can zero out a clean baseline.
func computeScores(results *schema.RuleResults, structuralFindings []schema.Finding, semanticFindings []schema.SemanticFinding, weights schema.ScoringWeights) schema.Scores {
	base := baselineScore(results)
	structPen := structuralPenalty(structuralFindings, weights.Structural)
	semPen := semanticPenalty(semanticFindings, weights.Semantic)

	return schema.Scores{
		Overall:   schema.ClampScore(base - (structPen+semPen)/2),
		WCAGA:     levelScore(results, schema.TagWCAG2A),
		WCAGAA:    levelScore(results, schema.TagWCAG2AA),
		WCAGAAA:   levelScore(results, schema.TagWCAG2AAA),
		Semantic:  schema.ClampScore(100 - semPen),
		Cognitive: cognitiveScore(semanticFindings),
	}
}
