// Package mathx provides the small arithmetic helpers used by the demo:
// a named approximation of π, integer addition, and a Counter.
package mathx

// Pi is a fixed approximation of π, exposed for read-only use.
const Pi = 3.14159

// Add returns a + b. Overflow wraps (standard Go int semantics).
func Add(a, b int) int {
	return a + b
}
