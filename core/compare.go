package core

import "github.com/pagelens/pagelens/schema"

// CompareReports computes the score and finding-count movement from a
// base scan to a target scan.
func CompareReports(base, target *schema.ScanReport) *schema.ComparisonResult {
	deltas := []schema.ScoreDelta{
		scoreDelta("overall", base.Scores.Overall, target.Scores.Overall),
		scoreDelta("wcag_a", base.Scores.WCAGA, target.Scores.WCAGA),
		scoreDelta("wcag_aa", base.Scores.WCAGAA, target.Scores.WCAGAA),
		scoreDelta("wcag_aaa", base.Scores.WCAGAAA, target.Scores.WCAGAAA),
		scoreDelta("semantic", base.Scores.Semantic, target.Scores.Semantic),
		scoreDelta("cognitive", base.Scores.Cognitive, target.Scores.Cognitive),
	}

	return &schema.ComparisonResult{
		BaseAddress:      base.Address,
		TargetAddress:    target.Address,
		ScoreDeltas:      deltas,
		BaseFindings:     base.TotalFindings(),
		TargetFindings:   target.TotalFindings(),
		BaseCompliance:   base.Compliance.Level,
		TargetCompliance: target.Compliance.Level,
	}
}

func scoreDelta(name string, base, target float64) schema.ScoreDelta {
	return schema.ScoreDelta{
		Name:   name,
		Base:   base,
		Target: target,
		Delta:  target - base,
	}
}
