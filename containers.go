package parsekit

// Pair holds the two outputs produced by SeparatedPair (and any other
// combinator that needs to return exactly two values without folding
// them together).
type Pair[L, R any] struct {
	First  L
	Second R
}

// NewPair constructs a Pair.
func NewPair[L, R any](first L, second R) Pair[L, R] {
	return Pair[L, R]{First: first, Second: second}
}
