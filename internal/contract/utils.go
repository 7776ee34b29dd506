package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pagelens/pagelens/schema"
)

// Color variables for console output, one per severity.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)
	SeriousColor  = color.New(color.FgMagenta, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	MinorColor    = color.New(color.FgCyan)

	ImprovementColor = color.New(color.FgGreen, color.Bold)
)

// GetPlainLabel returns the display label for a severity.
func GetPlainLabel(sev schema.Severity) string {
	if sev == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(sev[:1])) + string(sev[1:])
}

// GetColorLabel returns a colored severity label for console tables.
func GetColorLabel(sev schema.Severity) string {
	text := GetPlainLabel(sev)
	switch sev {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(text)
	case schema.SeveritySerious:
		return SeriousColor.Sprint(text)
	case schema.SeverityModerate:
		return ModerateColor.Sprint(text)
	default:
		return MinorColor.Sprint(text)
	}
}

// GetComplianceLabel colors the compliance verdict: green for any
// conformance level, red for non-compliant.
func GetComplianceLabel(level schema.ComplianceLevel, useColors bool) string {
	if !useColors {
		return string(level)
	}
	if level == schema.NonCompliant {
		return CriticalColor.Sprint(string(level))
	}
	return ImprovementColor.Sprint(string(level))
}

// SelectOutputFile returns the file handle for output: stdout when no
// path is configured.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(filePath)
	if err != nil {
		return os.Stdout, fmt.Errorf("cannot create output file %s: %w", filePath, err)
	}
	return f, nil
}
