package schema

import "time"

// RuleNode identifies one element affected by a baseline rule result.
type RuleNode struct {
	HTML           string   `json:"html"`
	Target         []string `json:"target"`
	FailureSummary string   `json:"failure_summary,omitempty"`
}

// RuleResult is a single categorized record from the baseline rule engine.
// Tags carry WCAG level membership (wcag2a, wcag2aa, wcag2aaa).
type RuleResult struct {
	ID          string     `json:"id"`
	Impact      Severity   `json:"impact"`
	Description string     `json:"description"`
	Help        string     `json:"help"`
	HelpURL     string     `json:"help_url"`
	Tags        []string   `json:"tags"`
	Nodes       []RuleNode `json:"nodes"`
}

// RuleResults groups the four baseline categories returned by the rule
// engine. It is treated as a trusted input by the aggregator.
type RuleResults struct {
	Violations   []RuleResult `json:"violations"`
	Passes       []RuleResult `json:"passes"`
	Incomplete   []RuleResult `json:"incomplete"`
	Inapplicable []RuleResult `json:"inapplicable"`
}

// Scores holds the composite scores computed by the aggregator, each 0-100.
type Scores struct {
	Overall   float64 `json:"overall"`
	WCAGA     float64 `json:"wcag_a"`
	WCAGAA    float64 `json:"wcag_aa"`
	WCAGAAA   float64 `json:"wcag_aaa"`
	Semantic  float64 `json:"semantic"`
	Cognitive float64 `json:"cognitive"`
}

// Compliance holds the compliance verdict derived from the scores and the
// critical-issue count.
type Compliance struct {
	Level          ComplianceLevel `json:"level"`
	PassRate       float64         `json:"pass_rate"`
	CriticalIssues int             `json:"critical_issues"`
	TotalTests     int             `json:"total_tests"`
}

// ScanReport is the aggregate root produced by a single scan. It is
// immutable after construction; only the history container mutates.
type ScanReport struct {
	Address      string            `json:"address"`
	Timestamp    time.Time         `json:"timestamp"`
	Violations   []RuleResult      `json:"violations"`
	Passes       []RuleResult      `json:"passes"`
	Incomplete   []RuleResult      `json:"incomplete"`
	Inapplicable []RuleResult      `json:"inapplicable"`
	Structural   []Finding         `json:"structural"`
	Semantic     []SemanticFinding `json:"semantic"`
	Scores       Scores            `json:"scores"`
	Compliance   Compliance        `json:"compliance"`
	Duration     time.Duration     `json:"duration"`
	ElementCount int               `json:"element_count"`
	Insight      string            `json:"insight,omitempty"`
}

// ScoreDelta captures the movement of a single score between two scans.
type ScoreDelta struct {
	Name   string  `json:"name"`
	Base   float64 `json:"base"`
	Target float64 `json:"target"`
	Delta  float64 `json:"delta"`
}

// ComparisonResult captures score and finding-count movement between a
// base and a target scan of two documents (or two revisions of one).
type ComparisonResult struct {
	BaseAddress      string          `json:"base_address"`
	TargetAddress    string          `json:"target_address"`
	ScoreDeltas      []ScoreDelta    `json:"score_deltas"`
	BaseFindings     int             `json:"base_findings"`
	TargetFindings   int             `json:"target_findings"`
	BaseCompliance   ComplianceLevel `json:"base_compliance"`
	TargetCompliance ComplianceLevel `json:"target_compliance"`
}

// TotalFindings counts structural plus semantic findings plus baseline
// violations in a report.
func (r *ScanReport) TotalFindings() int {
	return len(r.Violations) + len(r.Structural) + len(r.Semantic)
}

// CriticalCount counts critical issues across all three finding sources.
func (r *ScanReport) CriticalCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Impact == SeverityCritical {
			n++
		}
	}
	for _, f := range r.Structural {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	for _, f := range r.Semantic {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}
