// Package baseline supplies the baseline rule results consumed by the
// aggregator: categorized violation/pass/incomplete/inapplicable records
// with impact and WCAG tag metadata. The Engine interface keeps the rule
// source swappable; the builtin engine evaluates a fixed document-level
// rule set.
package baseline

import (
	"context"
	"fmt"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Engine produces baseline rule results for a document. Run is the single
// asynchronous boundary of a scan; a failure here is fatal to the scan
// and is surfaced as an *EngineError.
type Engine interface {
	Run(ctx context.Context, doc domdoc.Document, level schema.WCAGLevel, tags []string) (*schema.RuleResults, error)
}

// EngineError wraps a fatal baseline-engine failure. The caller uses it
// to distinguish "scan could not complete" from a zero-finding success.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("baseline rule engine failed: %v", e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ruleOutcome is the evaluation result of one rule against a document.
type ruleOutcome struct {
	violations []schema.RuleNode
	passes     []schema.RuleNode
	incomplete []schema.RuleNode
	applicable bool
}

// rule is one baseline check. Tags carry the WCAG level membership used
// for per-level scoring.
type rule struct {
	id          string
	impact      schema.Severity
	description string
	help        string
	helpURL     string
	tags        []string
	evaluate    func(doc domdoc.Document) ruleOutcome
}

// BuiltinEngine evaluates the builtin document-level rule set.
type BuiltinEngine struct{}

// NewBuiltinEngine returns the default baseline engine.
func NewBuiltinEngine() *BuiltinEngine { return &BuiltinEngine{} }

// Run evaluates every rule whose tags intersect the requested tag-set and
// sorts the outcomes into the four baseline categories.
func (e *BuiltinEngine) Run(ctx context.Context, doc domdoc.Document, level schema.WCAGLevel, extraTags []string) (*schema.RuleResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, &EngineError{Err: err}
	}
	if doc == nil {
		return nil, &EngineError{Err: fmt.Errorf("no document to evaluate")}
	}

	requested := map[string]struct{}{}
	for _, t := range schema.LevelTags(level) {
		requested[t] = struct{}{}
	}
	for _, t := range extraTags {
		requested[t] = struct{}{}
	}

	results := &schema.RuleResults{}
	for _, r := range rules() {
		if !tagsIntersect(r.tags, requested) {
			continue
		}
		outcome := r.evaluate(doc)
		record := schema.RuleResult{
			ID:          r.id,
			Impact:      r.impact,
			Description: r.description,
			Help:        r.help,
			HelpURL:     r.helpURL,
			Tags:        r.tags,
		}
		switch {
		case !outcome.applicable:
			results.Inapplicable = append(results.Inapplicable, record)
		case len(outcome.violations) > 0:
			record.Nodes = outcome.violations
			results.Violations = append(results.Violations, record)
		case len(outcome.incomplete) > 0:
			record.Nodes = outcome.incomplete
			results.Incomplete = append(results.Incomplete, record)
		default:
			record.Nodes = outcome.passes
			results.Passes = append(results.Passes, record)
		}
	}
	return results, nil
}

// RuleInfo describes one builtin rule for inventory listings.
type RuleInfo struct {
	ID          string
	Impact      schema.Severity
	Tags        []string
	Description string
}

// RuleInventory lists the builtin rules in evaluation order.
func RuleInventory() []RuleInfo {
	all := rules()
	out := make([]RuleInfo, len(all))
	for i, r := range all {
		out[i] = RuleInfo{ID: r.id, Impact: r.impact, Tags: r.tags, Description: r.description}
	}
	return out
}

func tagsIntersect(tags []string, requested map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := requested[t]; ok {
			return true
		}
	}
	return false
}
