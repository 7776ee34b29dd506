package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeights(t *testing.T) {
	structural := DefaultStructuralWeights()
	semantic := DefaultSemanticWeights()

	for _, sev := range AllSeverities {
		assert.Greater(t, structural[sev], 0.0)
		assert.Greater(t, semantic[sev], 0.0)
		assert.Greater(t, structural[sev], semantic[sev],
			"structural findings should cost more than semantic ones at severity %s", sev)
	}

	assert.Greater(t, structural[SeverityCritical], structural[SeveritySerious])
	assert.Greater(t, structural[SeveritySerious], structural[SeverityModerate])
	assert.Greater(t, structural[SeverityModerate], structural[SeverityMinor])
}

func TestWeightTableMerged(t *testing.T) {
	base := DefaultStructuralWeights()

	t.Run("nil overrides copy the table", func(t *testing.T) {
		merged := base.Merged(nil)
		assert.Equal(t, base, merged)

		merged[SeverityCritical] = 99
		assert.Equal(t, 25.0, base[SeverityCritical])
	})

	t.Run("set pointers replace entries", func(t *testing.T) {
		v := 40.0
		merged := base.Merged(map[Severity]*float64{
			SeverityCritical: &v,
			SeveritySerious:  nil,
		})
		assert.Equal(t, 40.0, merged[SeverityCritical])
		assert.Equal(t, 15.0, merged[SeveritySerious])
	})
}

func TestWeightTablePenalty(t *testing.T) {
	table := DefaultStructuralWeights()

	tests := []struct {
		name   string
		counts map[Severity]int
		want   float64
	}{
		{"empty multiset", map[Severity]int{}, 0},
		{"single critical", map[Severity]int{SeverityCritical: 1}, 25},
		{"mixed severities", map[Severity]int{SeveritySerious: 2, SeverityMinor: 3}, 39},
		{"unknown severity costs nothing", map[Severity]int{"fatal": 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Penalty(tt.counts))
		})
	}
}
