// Package runseq provides compact in-memory encodings for numeric sequences that are
// piecewise constant or piecewise linear.
//
// A sequence with long runs of equal values is stored as run-length encoded values
// (direct encoding). A sequence with long runs of equal steps is stored as its first
// value plus the run-length encoded differences (delta encoding), and decoded with a
// prefix sum.
//
// # Core Features
//
//   - Generic over every Go integer and float type
//   - Lazy, restartable iterators over decoded values
//   - Checked arithmetic by default, wrapping on request
//   - Single-pass analysis recommending direct or delta encoding
//   - 64-bit xxHash64 fingerprints of encoded sequences
//
// # Basic Usage
//
//	import "github.com/arloliu/runseq"
//
//	// ramps compress well with delta encoding
//	d, err := runseq.NewDelta([]int16{1, 2, 3, 4, 5, 6, 9, 10, 11})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Runs())   // [{1×5} {3×1} {1×2}]
//	fmt.Println(d.Decode()) // [1 2 3 4 5 6 9 10 11]
//
//	// plateaus compress well with direct encoding
//	s := runseq.NewDirectScaled([]int16{1000, 1000, 0, 0, 0, 881, 882, 1000}, 1000)
//	norm, _ := s.Normalized() // [1 1 0 0 0 0.881 0.882 1]
//
//	// or let runseq choose
//	enc, err := runseq.Encode(values)
//
// # Package Structure
//
// This package wraps the sequence and analysis packages for the most common use cases.
// Use those packages directly for the full API, and the rle package for the
// underlying run-length container.
package runseq

import (
	"errors"

	"github.com/arloliu/runseq/analysis"
	"github.com/arloliu/runseq/errs"
	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/numeric"
	"github.com/arloliu/runseq/sequence"
)

// NewDirectScaled run-length encodes values and stores denominator for normalization.
//
// It never fails; an empty input yields an empty sequence. See sequence.NewDirectScaled.
func NewDirectScaled[T numeric.Number](values []T, denominator T) *sequence.DirectScaled[T] {
	return sequence.NewDirectScaled(values, denominator)
}

// NewDelta encodes values as a root plus run-length encoded differences.
//
// It fails with errs.ErrInvalidInput on an empty input and, under the default checked
// arithmetic, with errs.ErrOverflow when a difference overflows. See sequence.NewDelta.
func NewDelta[T numeric.Number](values []T, opts ...sequence.DeltaOption) (*sequence.Delta[T], error) {
	return sequence.NewDelta(values, opts...)
}

// Analyze counts the runs of both encodings of values and recommends one.
// See analysis.Analyze.
func Analyze[T numeric.Number](values []T, opts ...analysis.Option) (*analysis.Report, error) {
	return analysis.Analyze(values, opts...)
}

// Encode analyzes values and builds the recommended encoding.
//
// Direct encodings are built with a denominator of 1. Delta encodings use the overflow
// policy the analysis ran with, so a sequence whose differences overflow under checked
// arithmetic is always direct encoded. For float element types the delta encoding is
// verified by decoding it, and a sequence that does not decode exactly is direct
// encoded instead.
//
// Parameters:
//   - values: The sequence to encode; must not be empty
//   - opts: Analysis options (analysis.WithOverflowPolicy, analysis.WithDeltaBias)
//
// Returns:
//   - sequence.Encoded[T]: A *sequence.DirectScaled[T] or a *sequence.Delta[T]
//   - error: errs.ErrInvalidInput for an empty input, errs.ErrInvalidOption for invalid options
//
// Example:
//
//	enc, err := runseq.Encode([]int64{10, 20, 30, 40, 50})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(enc.Encoding()) // Delta
//	for v := range enc.All() {
//	    fmt.Println(v)
//	}
func Encode[T numeric.Number](values []T, opts ...analysis.Option) (sequence.Encoded[T], error) {
	report, err := analysis.Analyze(values, opts...)
	if err != nil {
		return nil, err
	}

	if report.Recommended == format.TypeDelta {
		deltaOpts := []sequence.DeltaOption{sequence.WithOverflowPolicy(report.Policy)}
		if numeric.IsFloat[T]() {
			deltaOpts = append(deltaOpts, sequence.WithRoundTripCheck())
		}

		d, err := sequence.NewDelta(values, deltaOpts...)
		switch {
		case errors.Is(err, errs.ErrLossyRoundTrip):
			// float rounding in the differences; direct encoding is exact
		case err != nil:
			return nil, err
		default:
			return d, nil
		}
	}

	return sequence.NewDirectScaled(values, 1), nil
}
