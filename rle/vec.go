package rle

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Run is a value repeated Count consecutive times.
type Run[T comparable] struct {
	Value T
	Count int
}

// Vec is an immutable run-length encoded sequence of T.
//
// The zero value and a nil *Vec are valid empty sequences.
type Vec[T comparable] struct {
	runs []Run[T]
	// ends[i] is the exclusive logical end index of runs[i].
	ends []int
}

// FromSlice run-length encodes values, preserving order.
func FromSlice[T comparable](values []T) *Vec[T] {
	b := NewBuilder[T](0)
	for _, v := range values {
		b.Push(v)
	}

	return b.Build()
}

// Collect run-length encodes every value yielded by seq.
func Collect[T comparable](seq iter.Seq[T]) *Vec[T] {
	b := NewBuilder[T](0)
	for v := range seq {
		b.Push(v)
	}

	return b.Build()
}

// Len returns the number of logical elements.
func (v *Vec[T]) Len() int {
	if v == nil || len(v.ends) == 0 {
		return 0
	}

	return v.ends[len(v.ends)-1]
}

// RunsLen returns the number of runs.
func (v *Vec[T]) RunsLen() int {
	if v == nil {
		return 0
	}

	return len(v.runs)
}

// All returns an iterator over the logical elements in order, yielding each run's
// value Count times.
//
// Each call to the returned iterator starts from the first run.
func (v *Vec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v == nil {
			return
		}

		for _, r := range v.runs {
			for range r.Count {
				if !yield(r.Value) {
					return
				}
			}
		}
	}
}

// Runs returns an iterator over the runs in order.
func (v *Vec[T]) Runs() iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		if v == nil {
			return
		}

		for _, r := range v.runs {
			if !yield(r) {
				return
			}
		}
	}
}

// At returns the logical element at index.
//
// The lookup is a binary search over run boundaries, O(log RunsLen()).
// The second return value is false if index is out of range.
func (v *Vec[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= v.Len() {
		return zero, false
	}

	// first run whose exclusive end is past index
	pos, _ := slices.BinarySearch(v.ends, index+1)

	return v.runs[pos].Value, true
}

// Values returns the materialized logical sequence.
func (v *Vec[T]) Values() []T {
	out := make([]T, 0, v.Len())
	for x := range v.All() {
		out = append(out, x)
	}

	return out
}

// Equal reports whether v and other expand to the same logical sequence.
//
// Because runs are maximal, two sequences are equal exactly when their runs are equal.
func (v *Vec[T]) Equal(other *Vec[T]) bool {
	if v.Len() != other.Len() || v.RunsLen() != other.RunsLen() {
		return false
	}

	for i := range v.RunsLen() {
		if v.runs[i] != other.runs[i] {
			return false
		}
	}

	return true
}

// String returns the runs formatted as [{value×count} ...].
func (v *Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if v != nil {
		for i, r := range v.runs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "{%v×%d}", r.Value, r.Count)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
