// Package counter holds a counter whose state can only be reached through
// the value handed out by its constructor.
//
// The state saturates at math.MaxInt: once the ceiling is reached every
// further call returns math.MaxInt instead of wrapping to a negative value.
package counter

import "math"

// Counter owns a private count. The zero value is ready to use.
// A Counter must not be used from more than one goroutine; see SafeCounter.
type Counter struct {
	count int
}

// New creates a new counter starting at zero
func New() *Counter {
	return &Counter{}
}

// CreateCounter returns a closure bound to a fresh counter.
// Each call of the closure adds one and returns the new count.
func CreateCounter() func() int {
	count := 0
	return func() int {
		count = increment(count)
		return count
	}
}

// Next adds one to the count and returns the new value
func (c *Counter) Next() int {
	c.count = increment(c.count)
	return c.count
}

// Saturated reports whether the count has reached math.MaxInt
func (c *Counter) Saturated() bool {
	return c.count == math.MaxInt
}

func increment(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}
