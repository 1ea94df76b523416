package coord

// Pair is an ordered tuple of two values.
type Pair[T comparable] struct {
	First, Second T
}

// Swap returns the pair with its members exchanged.
func (p Pair[T]) Swap() Pair[T] {
	return Pair[T]{First: p.Second, Second: p.First}
}

// Pairs returns every ordered pair of values taken from two different
// positions of values, deduplicated by tuple equality.
//
// Despite being used for "combinations", the result holds 2-permutations:
// both (a, b) and (b, a) are present, so n distinct values give n·(n-1)
// pairs.
//
// Values repeated at different positions pair with each other, so a
// duplicated value v contributes the pair (v, v).
//
// Complexity: O(n²) time and memory.
func Pairs[T comparable](values []T) map[Pair[T]]struct{} {
	out := make(map[Pair[T]]struct{}, len(values)*max(len(values)-1, 0))
	for i, a := range values {
		for j, b := range values {
			if i == j {
				continue
			}
			out[Pair[T]{First: a, Second: b}] = struct{}{}
		}
	}
	return out
}
