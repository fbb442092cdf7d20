package sequence

import (
	"fmt"
	"iter"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/internal/hash"
	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/rle"
)

// DirectScaled is a run-length encoded sequence of raw values together with a
// denominator for recovering a normalized view.
//
// The denominator is stored verbatim and has no enforced relationship to the values.
// It is meaningful when T carries a fixed-point quantity, e.g. per-mille values with a
// denominator of 1000.
type DirectScaled[T numeric.Number] struct {
	runs        *rle.Vec[T]
	denominator T
}

// NewDirectScaled run-length encodes values, preserving order, and stores denominator.
//
// Runs are maximal groups of consecutive values equal under ==. Construction never
// fails: an empty input produces a sequence with zero runs and zero elements.
//
// Parameters:
//   - values: The raw values; the slice is not retained
//   - denominator: Scale factor for Normalized, stored as given
//
// Returns:
//   - *DirectScaled[T]: The encoded sequence
func NewDirectScaled[T numeric.Number](values []T, denominator T) *DirectScaled[T] {
	return &DirectScaled[T]{
		runs:        rle.FromSlice(values),
		denominator: denominator,
	}
}

// Encoding returns format.TypeDirect.
func (s *DirectScaled[T]) Encoding() format.EncodingType {
	return format.TypeDirect
}

// Runs returns the run-length encoded values.
func (s *DirectScaled[T]) Runs() *rle.Vec[T] {
	return s.runs
}

// Denominator returns the scale factor given at construction.
func (s *DirectScaled[T]) Denominator() T {
	return s.denominator
}

// Len returns the number of values.
func (s *DirectScaled[T]) Len() int {
	return s.runs.Len()
}

// RunsLen returns the number of runs.
func (s *DirectScaled[T]) RunsLen() int {
	return s.runs.RunsLen()
}

// At returns the raw value at index, or false if index is out of range.
func (s *DirectScaled[T]) At(index int) (T, bool) {
	return s.runs.At(index)
}

// All returns a lazy iterator over the raw values.
func (s *DirectScaled[T]) All() iter.Seq[T] {
	return s.runs.All()
}

// Values returns the raw values as a new slice.
func (s *DirectScaled[T]) Values() []T {
	return s.runs.Values()
}

// Normalized returns every raw value divided by the denominator, computed in float64.
//
// Each run is divided once, so the cost is one division per run rather than per value.
//
// Returns:
//   - []float64: The normalized values, Len() elements
//   - error: errs.ErrZeroDenominator if the denominator is zero
//
// Example:
//
//	s := sequence.NewDirectScaled([]int16{1000, 0, 881}, 1000)
//	norm, _ := s.Normalized() // [1 0 0.881]
func (s *DirectScaled[T]) Normalized() ([]float64, error) {
	if s.denominator == 0 {
		return nil, fmt.Errorf("%w: cannot normalize %d values", errs.ErrZeroDenominator, s.Len())
	}

	out := make([]float64, 0, s.Len())
	for r := range s.runs.Runs() {
		x := numeric.Ratio(r.Value, s.denominator)
		for range r.Count {
			out = append(out, x)
		}
	}

	return out, nil
}

// NormalizedAll returns a lazy iterator over the normalized values.
//
// Unlike Normalized it does not check the denominator: a zero denominator yields
// ±Inf or NaN following float64 division.
func (s *DirectScaled[T]) NormalizedAll() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for r := range s.runs.Runs() {
			x := numeric.Ratio(r.Value, s.denominator)
			for range r.Count {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Fingerprint returns the xxHash64 of the runs and the denominator.
//
// Sequences with equal values and equal denominators have equal fingerprints.
func (s *DirectScaled[T]) Fingerprint() uint64 {
	return hash.Runs(format.TypeDirect, s.runs.Runs(), s.denominator)
}

// String returns a debug representation of the sequence.
func (s *DirectScaled[T]) String() string {
	return fmt.Sprintf("DirectScaled{runs: %s, denominator: %v}", s.runs, s.denominator)
}
