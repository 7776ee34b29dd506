package core

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFor(address string) *schema.ScanReport {
	return &schema.ScanReport{Address: address}
}

func TestHistoryBounds(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(reportFor(fmt.Sprintf("page-%d.html", i)))
	}
	assert.Equal(t, 3, h.Len())

	recent := h.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "page-4.html", recent[0].Address)
	assert.Equal(t, "page-3.html", recent[1].Address)
	assert.Equal(t, "page-2.html", recent[2].Address)
}

func TestHistoryRecent(t *testing.T) {
	h := NewHistory(10)
	h.Append(reportFor("a.html"))
	h.Append(reportFor("b.html"))
	h.Append(reportFor("c.html"))

	t.Run("newest first", func(t *testing.T) {
		recent := h.Recent(2)
		require.Len(t, recent, 2)
		assert.Equal(t, "c.html", recent[0].Address)
		assert.Equal(t, "b.html", recent[1].Address)
	})

	t.Run("n larger than the log returns everything", func(t *testing.T) {
		assert.Len(t, h.Recent(50), 3)
	})

	t.Run("non-positive n returns everything", func(t *testing.T) {
		assert.Len(t, h.Recent(-1), 3)
	})
}

func TestNewHistoryDefaultLimit(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, schema.DefaultHistoryLimit, h.limit)
}

func TestHistoryConcurrentAppend(t *testing.T) {
	h := NewHistory(100)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Append(reportFor(fmt.Sprintf("page-%d.html", i)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, h.Len())
}
