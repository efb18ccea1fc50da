package testutil

import "sync"

// FixedRunIDs returns predetermined run ids for deterministic report tests.
//
// Thread-safety: Next is safe for concurrent use via internal mutex.
type FixedRunIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedRunIDs creates a generator that returns ids in order.
//
// Example:
//
//	gen := NewFixedRunIDs("run-1", "run-2")
//	gen.Next() // "run-1"
//	gen.Next() // "run-2"
//	gen.Next() // panic: all run ids exhausted
func NewFixedRunIDs(ids ...string) *FixedRunIDs {
	return &FixedRunIDs{ids: ids}
}

// Next returns the next predetermined id. Panics when all ids have been
// consumed, so a test that generates more runs than it planned fails loudly.
func (g *FixedRunIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("testutil: all run ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
