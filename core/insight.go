package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagelens/pagelens/schema"
)

// buildInsight composes a short prose summary of the scan from the
// report contents. The text is fully deterministic for a given report.
func buildInsight(report *schema.ScanReport) string {
	var parts []string

	verdict := fmt.Sprintf("Overall accessibility score is %.0f/100 (%s).",
		report.Scores.Overall, report.Compliance.Level)
	parts = append(parts, verdict)

	if n := report.Compliance.CriticalIssues; n > 0 {
		parts = append(parts, fmt.Sprintf(
			"%d critical issue(s) block compliance and should be fixed first.", n))
	}

	if cats := dominantCategories(report, 2); len(cats) > 0 {
		parts = append(parts, fmt.Sprintf(
			"Most findings concentrate in: %s.", strings.Join(cats, ", ")))
	}

	if report.Scores.Cognitive < 70 {
		parts = append(parts, fmt.Sprintf(
			"Cognitive accessibility is low (%.0f/100); simplify content and form flows.",
			report.Scores.Cognitive))
	}

	if report.TotalFindings() == 0 {
		parts = append(parts, "No issues detected by the enabled passes.")
	}

	return strings.Join(parts, " ")
}

// dominantCategories returns up to n finding categories by descending
// count, ties broken alphabetically.
func dominantCategories(report *schema.ScanReport, n int) []string {
	counts := map[string]int{}
	for _, f := range report.Structural {
		counts[string(f.Category)]++
	}
	for _, f := range report.Semantic {
		counts[string(f.Category)]++
	}
	for i := range report.Violations {
		counts["baseline"] += len(report.Violations[i].Nodes)
	}

	type pair struct {
		name  string
		count int
	}
	var ranked []pair
	for name, count := range counts {
		ranked = append(ranked, pair{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, p := range ranked {
		out[i] = fmt.Sprintf("%s (%d)", p.name, p.count)
	}
	return out
}
