package counter

import (
	"sync"

	"github.com/neox5/sqwave/observer"
)

// Counter counts clock notification passes.
type Counter struct {
	mu    sync.RWMutex
	value int
}

func New() *Counter {
	return &Counter{}
}

// Entry returns a fresh observer entry whose action increments the counter.
// Each call returns a distinct entry, so one Counter can tally several
// clocks at once.
func (c *Counter) Entry() *observer.Observer {
	return observer.New(func(any) {
		c.mu.Lock()
		c.value++
		c.mu.Unlock()
	}, nil)
}

// Value returns the current counter value synchronously
func (c *Counter) Value() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}
