// Package schema has the data model, typed constants and scoring tables
// shared by all parts of pagelens.
package schema

// StyleSnapshot captures the resolved style properties that led to a
// finding, so remediation tooling can reproduce the failing computation.
type StyleSnapshot struct {
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	FontSize        string `json:"font_size,omitempty"`
	FontWeight      string `json:"font_weight,omitempty"`
}

// ElementRef points at a single offending element within a structural finding.
type ElementRef struct {
	Selector   string         `json:"selector"`
	Snapshot   string         `json:"snapshot"`
	IssueText  string         `json:"issue_text"`
	Suggestion string         `json:"suggestion"`
	Style      *StyleSnapshot `json:"style,omitempty"`
}

// Finding represents a single structural accessibility issue detected by
// one of the structural analyzer algorithms. Elements is non-empty except
// for aggregate-only findings, which carry a single synthetic element.
// Score is the algorithm's own confidence (0-100) that the assigned
// severity is not exaggerated; lower is worse.
type Finding struct {
	TestID        string          `json:"test_id"`
	WCAGLevel     WCAGLevel       `json:"wcag_level"`
	Category      FindingCategory `json:"category"`
	Severity      Severity        `json:"severity"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	WCAGCriterion string          `json:"wcag_criterion"`
	Elements      []ElementRef    `json:"elements"`
	Score         float64         `json:"score"`
	Algorithm     string          `json:"algorithm"`
	AutoFixable   bool            `json:"auto_fixable"`
}

// SemanticElement points at a single offending element within a semantic
// finding. CognitiveLoad estimates the mental effort (1-10) required to
// process the element's content.
type SemanticElement struct {
	Selector      string `json:"selector"`
	Context       string `json:"context"`
	IssueText     string `json:"issue_text"`
	CognitiveLoad int    `json:"cognitive_load"`
}

// SemanticFinding represents an issue detected by the semantic analyzer,
// operating over extracted text and interaction patterns rather than
// document structure.
type SemanticFinding struct {
	TestID         string            `json:"test_id"`
	Category       SemanticCategory  `json:"category"`
	Severity       Severity          `json:"severity"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Explanation    string            `json:"explanation,omitempty"`
	SuggestedFixes []string          `json:"suggested_fixes"`
	Elements       []SemanticElement `json:"elements"`
	Confidence     float64           `json:"confidence"`
}
