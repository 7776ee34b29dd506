package core

import "github.com/pagelens/pagelens/schema"

// computeCompliance derives the compliance verdict. Any critical issue
// forces Non-compliant regardless of the numeric scores; otherwise the
// verdict is the highest level whose per-level score meets its threshold.
func computeCompliance(report *schema.ScanReport) schema.Compliance {
	critical := report.CriticalCount()
	totalTests := len(report.Passes) + len(report.Violations) + len(report.Incomplete)

	passRate := 100.0
	if totalTests > 0 {
		passRate = float64(len(report.Passes)) / float64(totalTests) * 100
	}

	level := schema.NonCompliant
	if critical == 0 {
		switch {
		case report.Scores.WCAGAAA >= schema.ThresholdAAA:
			level = schema.CompliantAAA
		case report.Scores.WCAGAA >= schema.ThresholdAA:
			level = schema.CompliantAA
		case report.Scores.WCAGA >= schema.ThresholdA:
			level = schema.CompliantA
		}
	}

	return schema.Compliance{
		Level:          level,
		PassRate:       passRate,
		CriticalIssues: critical,
		TotalTests:     totalTests,
	}
}
