package core

import (
	"sync"

	"github.com/pagelens/pagelens/schema"
)

// History is a bounded, concurrency-safe log of completed scans. When
// the limit is exceeded the oldest entry is evicted.
type History struct {
	mu      sync.Mutex
	limit   int
	reports []*schema.ScanReport
}

// NewHistory creates a history bounded at limit entries. Non-positive
// limits fall back to the default.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = schema.DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Append records a completed scan, evicting the oldest entry when full.
func (h *History) Append(report *schema.ScanReport) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append(h.reports, report)
	if len(h.reports) > h.limit {
		h.reports = h.reports[len(h.reports)-h.limit:]
	}
}

// Recent returns up to n reports, newest first. n < 1 returns all.
func (h *History) Recent(n int) []*schema.ScanReport {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n < 1 || n > len(h.reports) {
		n = len(h.reports)
	}
	out := make([]*schema.ScanReport, n)
	for i := 0; i < n; i++ {
		out[i] = h.reports[len(h.reports)-1-i]
	}
	return out
}

// Len reports the number of retained scans.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.reports)
}
