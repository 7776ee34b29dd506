package core

import (
	"context"
	"time"

	"github.com/pagelens/pagelens/core/semantic"
	"github.com/pagelens/pagelens/core/structural"
	"github.com/pagelens/pagelens/internal/baseline"
	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// ScanOptions selects which passes run and at which conformance level.
type ScanOptions struct {
	Level           schema.WCAGLevel
	Tags            []string
	IncludeAdvanced bool
	IncludeSemantic bool
	IncludeInsight  bool
}

// DefaultScanOptions enables every pass at level AA.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Level:           schema.LevelAA,
		IncludeAdvanced: true,
		IncludeSemantic: true,
		IncludeInsight:  true,
	}
}

// Scanner orchestrates the analysis passes over a document and keeps a
// bounded history of completed scans. The baseline engine is the only
// fatal boundary; the structural and semantic passes degrade per
// detector instead of failing the scan.
type Scanner struct {
	engine  baseline.Engine
	weights schema.ScoringWeights
	history *History
}

// NewScanner wires a scanner from its policy inputs. A nil engine falls
// back to the builtin rule set; empty weights fall back to the defaults.
func NewScanner(engine baseline.Engine, weights schema.ScoringWeights, historyLimit int) *Scanner {
	if engine == nil {
		engine = baseline.NewBuiltinEngine()
	}
	if weights.Structural == nil || weights.Semantic == nil {
		weights = schema.DefaultScoringWeights()
	}
	return &Scanner{
		engine:  engine,
		weights: weights,
		history: NewHistory(historyLimit),
	}
}

// History exposes the scanner's bounded scan log.
func (s *Scanner) History() *History { return s.history }

// Scan runs the enabled passes over the document and aggregates their
// results into an immutable report, which is also appended to history.
func (s *Scanner) Scan(ctx context.Context, doc domdoc.Document, address string, opts ScanOptions) (*schema.ScanReport, error) {
	start := time.Now()

	results, err := s.engine.Run(ctx, doc, opts.Level, opts.Tags)
	if err != nil {
		return nil, err
	}

	var structuralFindings []schema.Finding
	if opts.IncludeAdvanced {
		structuralFindings = structural.Analyze(doc)
	}

	var semanticFindings []schema.SemanticFinding
	if opts.IncludeSemantic {
		semanticFindings = semantic.Analyze(doc)
	}

	report := &schema.ScanReport{
		Address:      address,
		Timestamp:    time.Now().UTC(),
		Violations:   results.Violations,
		Passes:       results.Passes,
		Incomplete:   results.Incomplete,
		Inapplicable: results.Inapplicable,
		Structural:   structuralFindings,
		Semantic:     semanticFindings,
		ElementCount: doc.ElementCount(),
	}
	report.Scores = computeScores(results, structuralFindings, semanticFindings, s.weights)
	report.Compliance = computeCompliance(report)
	if opts.IncludeInsight {
		report.Insight = buildInsight(report)
	}
	report.Duration = time.Since(start)

	s.history.Append(report)
	return report, nil
}
