package mathx

// Counter holds a single integer that only ever grows. The zero value is a
// counter at 0 and ready to use. A Counter belongs to whoever constructed
// it; it is not safe for concurrent use.
type Counter struct {
	value int
}

// NewCounter returns a counter starting at start.
func NewCounter(start int) *Counter {
	return &Counter{value: start}
}

// Inc adds 1 and returns the new value.
func (c *Counter) Inc() int {
	c.value++
	return c.value
}

// Value returns the current value.
func (c *Counter) Value() int {
	return c.value
}
