package repolocation

import (
	"fmt"
	"sync"
)

// Registry deduplicates fallback-derived repository names. One registry
// is shared across all locations resolved in a single run and is never
// reset; the collision counters only grow.
type Registry struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Register returns a run-unique name for base. The first registration
// returns base unchanged; every later registration of the same base
// appends the incremented collision counter: base, base_1, base_2, …
func (r *Registry) Register(base string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	count, seen := r.counts[base]
	if !seen {
		r.counts[base] = 0
		return base
	}
	count++
	r.counts[base] = count
	return fmt.Sprintf("%s_%d", base, count)
}
