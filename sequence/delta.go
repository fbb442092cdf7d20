package sequence

import (
	"fmt"
	"iter"

	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/internal/hash"
	"github.com/arloliu/runseq/internal/options"
	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/rle"
)

// Delta stores a sequence as its first value (the root) and the run-length encoded
// consecutive differences.
//
// For an input of n values, the difference runs hold n-1 logical elements and
// decoding yields n values.
type Delta[T numeric.Number] struct {
	root   T
	runs   *rle.Vec[T]
	policy numeric.OverflowPolicy
}

// NewDelta encodes values as a root plus run-length encoded differences.
//
// The differences d[i] = values[i+1] - values[i] are streamed straight into the
// run-length builder; no intermediate difference slice is allocated.
//
// Parameters:
//   - values: The sequence to encode; must not be empty. The slice is not retained
//   - opts: WithOverflowPolicy, WithWrapping, WithRoundTripCheck
//
// Returns:
//   - *Delta[T]: The encoded sequence, nil on error
//   - error: errs.ErrInvalidInput for an empty input, errs.ErrOverflow when a difference
//     overflows under numeric.Checked, errs.ErrLossyRoundTrip when the round-trip check
//     fails, errs.ErrInvalidOption for invalid options
//
// Example:
//
//	d, err := sequence.NewDelta([]int16{1, 2, 3, 4, 5, 6})
//	// d.Runs() is [{1×5}], d.Decode() is [1 2 3 4 5 6]
func NewDelta[T numeric.Number](values []T, opts ...DeltaOption) (*Delta[T], error) {
	cfg := defaultDeltaConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: delta sequence requires at least one value", errs.ErrInvalidInput)
	}

	b := rle.NewBuilder[T](0)
	for i := 1; i < len(values); i++ {
		diff, ok := numeric.Sub(values[i], values[i-1], cfg.policy)
		if !ok {
			return nil, fmt.Errorf("%w: difference %v - %v at index %d", errs.ErrOverflow, values[i], values[i-1], i-1)
		}
		b.Push(diff)
	}

	d := &Delta[T]{
		root:   values[0],
		runs:   b.Build(),
		policy: cfg.policy,
	}

	if cfg.roundTripCheck {
		if err := d.verify(values); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// verify decodes d and compares it with values element by element.
func (d *Delta[T]) verify(values []T) error {
	i := 0
	for got := range d.All() {
		if got != values[i] {
			return fmt.Errorf("%w: element %d decodes as %v, want %v", errs.ErrLossyRoundTrip, i, got, values[i])
		}
		i++
	}

	return nil
}

// Encoding returns format.TypeDelta.
func (d *Delta[T]) Encoding() format.EncodingType {
	return format.TypeDelta
}

// Root returns the first value of the original sequence.
func (d *Delta[T]) Root() T {
	return d.root
}

// Runs returns the run-length encoded differences.
func (d *Delta[T]) Runs() *rle.Vec[T] {
	return d.runs
}

// Policy returns the overflow policy the differences were computed with.
func (d *Delta[T]) Policy() numeric.OverflowPolicy {
	return d.policy
}

// Len returns the number of decoded values, which is one more than the number of
// differences.
func (d *Delta[T]) Len() int {
	return d.runs.Len() + 1
}

// RunsLen returns the number of difference runs.
func (d *Delta[T]) RunsLen() int {
	return d.runs.RunsLen()
}

// Decode reconstructs the original sequence.
//
// The result starts with the root, followed by the running sum of the differences
// seeded with the root. It is a new slice of Len() elements.
//
// Decode cannot fail. Under numeric.Checked every partial sum equals an input value,
// so none overflows; under numeric.Wrapping the native wrapping addition inverts the
// wrapping subtraction used during construction.
func (d *Delta[T]) Decode() []T {
	out := make([]T, 0, d.Len())
	acc := d.root
	out = append(out, acc)

	for r := range d.runs.Runs() {
		for range r.Count {
			acc += r.Value
			out = append(out, acc)
		}
	}

	return out
}

// Values is an alias of Decode.
func (d *Delta[T]) Values() []T {
	return d.Decode()
}

// All returns a lazy iterator over the decoded values.
//
// Each iteration restarts the prefix sum from the root.
func (d *Delta[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		acc := d.root
		if !yield(acc) {
			return
		}

		for x := range d.runs.All() {
			acc += x
			if !yield(acc) {
				return
			}
		}
	}
}

// Fingerprint returns the xxHash64 of the difference runs and the root.
//
// Two Delta sequences built from equal inputs have equal fingerprints.
func (d *Delta[T]) Fingerprint() uint64 {
	return hash.Runs(format.TypeDelta, d.runs.Runs(), d.root)
}

// String returns a debug representation of the sequence.
func (d *Delta[T]) String() string {
	return fmt.Sprintf("Delta{root: %v, runs: %s}", d.root, d.runs)
}
