package counter

import (
	"math"
	"sync"
)

// SafeCounter is a Counter whose increment-and-read is atomic, so the Nth
// call returns N no matter which goroutine makes it.
type SafeCounter struct {
	mu    sync.Mutex
	count int
}

// NewSafe creates a new synchronized counter starting at zero
func NewSafe() *SafeCounter {
	return &SafeCounter{}
}

// Next adds one to the count and returns the new value
func (c *SafeCounter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count = increment(c.count)
	return c.count
}

// Saturated reports whether the count has reached math.MaxInt
func (c *SafeCounter) Saturated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count == math.MaxInt
}
