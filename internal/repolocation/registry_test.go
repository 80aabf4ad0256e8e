package repolocation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, "widgets", reg.Register("widgets"))
	assert.Equal(t, "widgets_1", reg.Register("widgets"))
	assert.Equal(t, "widgets_2", reg.Register("widgets"))
	assert.Equal(t, "widgets_3", reg.Register("widgets"))
}

func TestRegistry_IndependentBases(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, "widgets", reg.Register("widgets"))
	assert.Equal(t, "gadgets", reg.Register("gadgets"))
	assert.Equal(t, "widgets_1", reg.Register("widgets"))
	assert.Equal(t, "gadgets_1", reg.Register("gadgets"))
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	const workers = 32

	reg := NewRegistry()
	results := make([]string, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = reg.Register("widgets")
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for _, name := range results {
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}
