// Package sequence provides run-length based encodings for numeric sequences that are
// piecewise constant or piecewise linear.
//
// Two encodings are available:
//
//   - DirectScaled: the values themselves, run-length encoded, plus a denominator that
//     callers use to recover a normalized view (raw / denominator).
//   - Delta: the first value (the root) plus the run-length encoded sequence of
//     consecutive differences. Decoding is a prefix sum seeded with the root.
//
// Direct encoding suits long plateaus such as [1000 1000 0 0 0 ...]. Delta encoding
// suits ramps with a constant step such as [1 2 3 4 5 6], which have no repeated values
// but a single repeated difference.
//
// # Direct Encoding
//
//	s := sequence.NewDirectScaled([]int16{1000, 1000, 0, 0, 0, 881, 882, 1000}, 1000)
//	s.RunsLen()                // 5
//	x, _ := s.At(5)            // 881
//	norm, err := s.Normalized() // [1 1 0 0 0 0.881 0.882 1]
//
// The structure never divides by the denominator itself; Normalized and NormalizedAll
// are helpers implementing the caller-side convention decoded = raw / denominator in
// float64.
//
// # Delta Encoding
//
//	d, err := sequence.NewDelta([]int16{1, 2, 3, 4, 5, 6, 9, 10, 11})
//	if err != nil {
//	    return err
//	}
//	d.Runs()    // [{1×5} {3×1} {1×2}]
//	d.Decode()  // [1 2 3 4 5 6 9 10 11]
//
// NewDelta rejects an empty input with errs.ErrInvalidInput.
//
// # Overflow
//
// Differences are computed with numeric.Checked arithmetic by default: a difference
// that does not fit the element type (e.g. int8 values -128 then 127) fails with
// errs.ErrOverflow. WithOverflowPolicy(numeric.Wrapping) keeps the element type's
// native wraparound instead; wrapping addition on decode inverts wrapping subtraction,
// so integer sequences still round-trip exactly.
//
// For floating-point element types, (a - b) + b is not always a in IEEE 754 arithmetic,
// and NaN never compares equal to itself. WithRoundTripCheck decodes the result during
// construction and fails with errs.ErrLossyRoundTrip when it differs from the input.
//
// # Thread Safety
//
// Encoded sequences are immutable after construction and safe for concurrent readers.
// Every iterator returned by All or NormalizedAll is restartable.
package sequence
