package counter

// Incrementer is anything that hands out successive counts, starting at 1
type Incrementer interface {
	Next() int
}

var (
	_ Incrementer = (*Counter)(nil)
	_ Incrementer = (*SafeCounter)(nil)
	_ Incrementer = Func(nil)
)

// Func adapts a closure counter to the Incrementer interface
type Func func() int

// Next calls f
func (f Func) Next() int {
	return f()
}
