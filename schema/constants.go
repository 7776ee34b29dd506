package schema

// Custom string types for type safety.
type (
	// Severity represents the normalized severity of a finding.
	Severity string

	// WCAGLevel represents a WCAG conformance level.
	WCAGLevel string

	// ComplianceLevel represents the overall compliance verdict.
	ComplianceLevel string

	// FindingCategory represents the category of a structural finding.
	FindingCategory string

	// SemanticCategory represents the category of a semantic finding.
	SemanticCategory string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All severities supported, from most to least severe.
const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// All WCAG conformance levels.
const (
	LevelA   WCAGLevel = "A"
	LevelAA  WCAGLevel = "AA"
	LevelAAA WCAGLevel = "AAA"
)

// All compliance verdicts. Any critical issue forces NonCompliant
// regardless of numeric scores.
const (
	CompliantAAA ComplianceLevel = "AAA"
	CompliantAA  ComplianceLevel = "AA"
	CompliantA   ComplianceLevel = "A"
	NonCompliant ComplianceLevel = "Non-compliant"
)

// Structural finding categories, one per detection algorithm.
const (
	CategoryContrast  FindingCategory = "contrast"
	CategoryStructure FindingCategory = "structure"
	CategoryKeyboard  FindingCategory = "keyboard"
	CategoryImages    FindingCategory = "images"
	CategoryForms     FindingCategory = "forms"
	CategoryTouch     FindingCategory = "touch"
	CategoryLandmarks FindingCategory = "landmarks"
	CategoryMotion    FindingCategory = "motion"
)

// Semantic finding categories.
const (
	SemanticGeneral   SemanticCategory = "semantic"
	SemanticContext   SemanticCategory = "context"
	SemanticUX        SemanticCategory = "ux"
	SemanticCognitive SemanticCategory = "cognitive"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// WCAG rule tags used on baseline results to determine level membership.
const (
	TagWCAG2A   = "wcag2a"
	TagWCAG2AA  = "wcag2aa"
	TagWCAG2AAA = "wcag2aaa"
)

// AllSeverities lists severities from most to least severe.
var AllSeverities = []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidWCAGLevels lists all valid WCAG conformance levels.
var ValidWCAGLevels = map[WCAGLevel]struct{}{
	LevelA:   {},
	LevelAA:  {},
	LevelAAA: {},
}

// ValidSeverities lists all valid severities.
var ValidSeverities = map[Severity]struct{}{
	SeverityCritical: {},
	SeveritySerious:  {},
	SeverityModerate: {},
	SeverityMinor:    {},
}

// SeverityRank returns a sortable rank for a severity; lower is more severe.
// Unknown severities sort last.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeveritySerious:
		return 1
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 3
	default:
		return 4
	}
}

// LevelTags returns the baseline rule tag-set requested for a WCAG level.
// Each level includes the tags of the levels below it.
func LevelTags(level WCAGLevel) []string {
	switch level {
	case LevelAAA:
		return []string{TagWCAG2A, TagWCAG2AA, TagWCAG2AAA}
	case LevelAA:
		return []string{TagWCAG2A, TagWCAG2AA}
	default:
		return []string{TagWCAG2A}
	}
}
