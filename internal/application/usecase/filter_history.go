package usecase

import (
	"strings"
	"sync"

	"github.com/bnema/pastor/internal/domain/entity"
)

// AsyncFilterThreshold is the history size from which filtering moves off
// the owner goroutine.
const AsyncFilterThreshold = 500

// FilterEntries returns the entries whose content contains query,
// ignoring case. An empty query returns all entries. Order is kept and
// entries is not modified.
func FilterEntries(entries []entity.ClipEntry, query string) []entity.ClipEntry {
	if query == "" {
		return append([]entity.ClipEntry(nil), entries...)
	}

	needle := strings.ToLower(query)
	matches := make([]entity.ClipEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Content), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// FilterResult is the outcome of one HistoryFilter submission.
type FilterResult struct {
	Generation uint64
	Query      string
	Entries    []entity.ClipEntry
}

// HistoryFilter filters history snapshots for presentation. Large snapshots
// are filtered on a separate goroutine; only the result of the latest
// submission is delivered.
type HistoryFilter struct {
	threshold int
	results   chan FilterResult

	mu         sync.Mutex
	generation uint64
}

// NewHistoryFilter creates a filter using AsyncFilterThreshold.
func NewHistoryFilter() *HistoryFilter {
	return &HistoryFilter{
		threshold: AsyncFilterThreshold,
		results:   make(chan FilterResult, 1),
	}
}

// Results delivers filter outcomes. The channel holds at most one result;
// an undelivered result is replaced by a newer one.
func (f *HistoryFilter) Results() <-chan FilterResult {
	return f.results
}

// Submit filters snapshot by query and returns the submission generation.
// The caller must not modify snapshot afterwards.
func (f *HistoryFilter) Submit(snapshot []entity.ClipEntry, query string) uint64 {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	if len(snapshot) < f.threshold {
		f.deliver(FilterResult{Generation: gen, Query: query, Entries: FilterEntries(snapshot, query)})
		return gen
	}

	go func() {
		f.deliver(FilterResult{Generation: gen, Query: query, Entries: FilterEntries(snapshot, query)})
	}()
	return gen
}

// Generation returns the generation of the latest submission.
func (f *HistoryFilter) Generation() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation
}

// deliver hands res to the consumer unless a newer submission exists.
func (f *HistoryFilter) deliver(res FilterResult) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if res.Generation != f.generation {
		return
	}

	// Drop a stale result nobody consumed yet.
	select {
	case <-f.results:
	default:
	}
	f.results <- res
}
