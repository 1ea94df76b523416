// SPDX-License-Identifier: MIT

package numrange

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidRange indicates a range whose minimum exceeds its maximum.
	ErrInvalidRange = errors.New("numrange: min must not exceed max")

	// ErrNonOverlapping indicates a union of ranges that share no point.
	ErrNonOverlapping = errors.New("numrange: ranges do not overlap")
)

// Number is the set of ordered numeric types a Range can span.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an inclusive interval [min, max] with min <= max.
// The zero value is the single-point range [0..0].
type Range[T Number] struct {
	min, max T
}

// New returns the range [min, max].
// It fails with ErrInvalidRange, carrying both endpoints, unless min <= max.
// A NaN endpoint is never ordered and is rejected too.
func New[T Number](min, max T) (Range[T], error) {
	if !(min <= max) {
		return Range[T]{}, fmt.Errorf("%w: [%v..%v]", ErrInvalidRange, min, max)
	}
	return Range[T]{min: min, max: max}, nil
}

// MustNew is like New but panics on an invalid range.
func MustNew[T Number](min, max T) Range[T] {
	r, err := New(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.max }

// Contains reports whether min <= v <= max.
func (r Range[T]) Contains(v T) bool {
	return v >= r.min && v <= r.max
}

// Overlaps reports whether r and o share at least one point.
// Touching endpoints count: [1..3] overlaps [3..5].
func (r Range[T]) Overlaps(o Range[T]) bool {
	return r.min <= o.max && o.min <= r.max
}

// Size returns max - min + 1 computed in float64.
// For integer ranges wider than 2^53 the result loses precision; use Count.
func (r Range[T]) Size() float64 {
	return float64(r.max) - float64(r.min) + 1
}

// String formats r as "[min..max]".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v..%v]", r.min, r.max)
}

// Union returns the smallest range covering both a and b.
// The operands must overlap; otherwise the error wraps ErrNonOverlapping
// and names both ranges.
func Union[T Number](a, b Range[T]) (Range[T], error) {
	if !a.Overlaps(b) {
		return Range[T]{}, fmt.Errorf("%w: %v and %v", ErrNonOverlapping, a, b)
	}
	return Range[T]{min: min(a.min, b.min), max: max(a.max, b.max)}, nil
}

// Count returns the exact number of integers in r.
// The full span of a 64-bit type has 2^64 members and wraps to 0.
func Count[T constraints.Integer](r Range[T]) uint64 {
	return uint64(r.max) - uint64(r.min) + 1
}
