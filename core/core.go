// Package core orchestrates document scans: it runs the baseline rule
// engine plus the structural and semantic analyzers, aggregates their
// results into scored reports, and compares reports across scans.
package core

import (
	"context"
	"fmt"

	"github.com/pagelens/pagelens/core/semantic"
	"github.com/pagelens/pagelens/core/structural"
	"github.com/pagelens/pagelens/internal/baseline"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// optionsFromConfig maps the validated runtime configuration onto scan
// options.
func optionsFromConfig(cfg *contract.Config) ScanOptions {
	return ScanOptions{
		Level:           cfg.Level,
		Tags:            cfg.Tags,
		IncludeAdvanced: cfg.IncludeAdvanced,
		IncludeSemantic: cfg.IncludeSemantic,
		IncludeInsight:  cfg.IncludeAI,
	}
}

// ExecuteScan parses a document from disk and runs a full scan over it.
func ExecuteScan(ctx context.Context, cfg *contract.Config, path string) (*schema.ScanReport, error) {
	doc, err := domdoc.ParseFile(path)
	if err != nil {
		return nil, err
	}
	scanner := NewScanner(baseline.NewBuiltinEngine(), cfg.Weights, cfg.HistoryLimit)
	return scanner.Scan(ctx, doc, path, optionsFromConfig(cfg))
}

// ExecuteCompare scans two documents with identical settings and
// computes the score movement between them.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, basePath, targetPath string) (*schema.ComparisonResult, error) {
	scanner := NewScanner(baseline.NewBuiltinEngine(), cfg.Weights, cfg.HistoryLimit)
	opts := optionsFromConfig(cfg)

	baseDoc, err := domdoc.ParseFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("base document: %w", err)
	}
	baseReport, err := scanner.Scan(ctx, baseDoc, basePath, opts)
	if err != nil {
		return nil, fmt.Errorf("base document: %w", err)
	}

	targetDoc, err := domdoc.ParseFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("target document: %w", err)
	}
	targetReport, err := scanner.Scan(ctx, targetDoc, targetPath, opts)
	if err != nil {
		return nil, fmt.Errorf("target document: %w", err)
	}

	return CompareReports(baseReport, targetReport), nil
}

// MetricsSummary is the static inventory of checks and scoring policy,
// independent of any document.
type MetricsSummary struct {
	BaselineRules       []baseline.RuleInfo
	StructuralDetectors []string
	SemanticDetectors   []string
	Weights             schema.ScoringWeights
}

// ExecuteMetrics reports the check inventory under the active scoring
// configuration.
func ExecuteMetrics(cfg *contract.Config) *MetricsSummary {
	var structuralNames []string
	for _, det := range structural.Detectors() {
		structuralNames = append(structuralNames, det.Name)
	}
	var semanticNames []string
	for _, det := range semantic.Detectors() {
		semanticNames = append(semanticNames, det.Name)
	}
	return &MetricsSummary{
		BaselineRules:       baseline.RuleInventory(),
		StructuralDetectors: structuralNames,
		SemanticDetectors:   semanticNames,
		Weights:             cfg.Weights,
	}
}
