package schema

// WeightTable maps a severity to its score penalty. Tables are explicit
// configuration passed into the aggregator so scoring policy stays
// testable and swappable.
type WeightTable map[Severity]float64

// ScoringWeights bundles the penalty tables for both analyzer families.
type ScoringWeights struct {
	Structural WeightTable
	Semantic   WeightTable
}

// Compliance thresholds per level. A verdict is only reachable when the
// critical-issue count across all sources is zero.
const (
	ThresholdAAA = 95.0
	ThresholdAA  = 90.0
	ThresholdA   = 85.0
)

// DefaultHistoryLimit caps the in-memory scan history; the oldest entry
// is evicted when exceeded.
const DefaultHistoryLimit = 50

// DefaultStructuralWeights returns the default penalty table for
// structural findings.
func DefaultStructuralWeights() WeightTable {
	return WeightTable{
		SeverityCritical: 25,
		SeveritySerious:  15,
		SeverityModerate: 8,
		SeverityMinor:    3,
	}
}

// DefaultSemanticWeights returns the default penalty table for semantic
// findings.
func DefaultSemanticWeights() WeightTable {
	return WeightTable{
		SeverityCritical: 20,
		SeveritySerious:  12,
		SeverityModerate: 6,
		SeverityMinor:    2,
	}
}

// DefaultScoringWeights returns both default tables.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Structural: DefaultStructuralWeights(),
		Semantic:   DefaultSemanticWeights(),
	}
}

// Merged returns a copy of the table with non-nil overrides applied.
func (t WeightTable) Merged(overrides map[Severity]*float64) WeightTable {
	merged := make(WeightTable, len(t))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		if v != nil {
			merged[k] = *v
		}
	}
	return merged
}

// Penalty sums the table weights over a severity multiset.
func (t WeightTable) Penalty(counts map[Severity]int) float64 {
	var total float64
	for sev, n := range counts {
		total += t[sev] * float64(n)
	}
	return total
}
