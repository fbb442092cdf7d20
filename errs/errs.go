// Package errs defines the sentinel errors returned by runseq packages.
//
// Call sites wrap these values with context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is rather than comparing directly:
//
//	seq, err := sequence.NewDelta(values)
//	if errors.Is(err, errs.ErrInvalidInput) {
//	    // handle empty input
//	}
package errs

import "errors"

var (
	// ErrInvalidInput is returned when an input sequence does not satisfy a constructor's
	// precondition, e.g. building a delta sequence from an empty slice.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverflow is returned when checked arithmetic leaves the representable range of
	// the element type while computing differences.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrLossyRoundTrip is returned by the round-trip check when decoding an encoded
	// sequence does not reproduce the input exactly.
	ErrLossyRoundTrip = errors.New("lossy round trip")

	// ErrZeroDenominator is returned when normalizing a scaled sequence whose denominator is zero.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrInvalidOption is returned when a functional option receives an unsupported value.
	ErrInvalidOption = errors.New("invalid option")
)
