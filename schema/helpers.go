package schema

import (
	"math"
	"strings"
)

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore limits v to the canonical 0-100 score range.
func ClampScore(v float64) float64 {
	return Clamp(v, 0, 100)
}

// ClampLoad limits a cognitive load estimate to the 1-10 range.
func ClampLoad(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// TruncateText shortens s to at most max runes, appending an ellipsis
// marker when truncation happened.
func TruncateText(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// NormalizeSpace collapses runs of whitespace into single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasTag reports whether a baseline rule result carries the given tag.
func (r *RuleResult) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
