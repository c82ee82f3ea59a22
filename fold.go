package parsekit

// FoldLib collects the small reducing, lifting and transforming
// callbacks combinators lean on most often, so callers rarely need to
// write their own closures for the common cases.

// ConcatStrings folds two strings by concatenation; used by Many/Many1
// over single-character primitives to build up a matched run as one
// string.
func ConcatStrings(acc, next string) string {
	return acc + next
}

// AppendTo folds a slice accumulator by appending the next element.
func AppendTo[T any](acc []T, next T) []T {
	return append(acc, next)
}

// First returns the left element of a fold, discarding the right.
func First[L, R any](l L, _ R) L {
	return l
}

// Second returns the right element of a fold, discarding the left.
func Second[L, R any](_ L, r R) R {
	return r
}

// ConstLift returns a lift callback that always produces v, regardless
// of how many times it is invoked.
func ConstLift[V any](v V) func() V {
	return func() V { return v }
}

// ZeroLift returns a lift callback producing V's zero value.
func ZeroLift[V any]() func() V {
	return func() V { var zero V; return zero }
}

// JoinStrings folds a string accumulator with sep inserted before each
// next piece, except while the accumulator is still empty — used by
// SeparatedList-style combinators whose payload type is string.
func JoinStrings(sep string) func(acc, next string) string {
	return func(acc, next string) string {
		if acc == "" {
			return next
		}
		return acc + sep + next
	}
}

// Collect folds by appending to a slice; equivalent to AppendTo but
// named for call sites building up a repetition's results as a slice
// starting from a nil lift.
func Collect[T any]() func(acc []T, next T) []T {
	return func(acc []T, next T) []T { return append(acc, next) }
}
