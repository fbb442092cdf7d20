// Package numeric provides the element constraint and the overflow-aware arithmetic
// used by runseq encodings.
//
// Every encoding in runseq is parametrized over Number, the set of Go integer and
// floating-point types. Differences and prefix sums go through Sub and Add so that
// the overflow behavior is chosen explicitly by an OverflowPolicy instead of being
// left to whatever the element type happens to do.
//
// # Overflow Detection
//
// Overflow is detected with comparisons only, which makes one code path valid for
// signed integers, unsigned integers and floats:
//
//   - x - y overflows when y > 0 but the result is greater than x, or y < 0 but the
//     result is less than x.
//   - x + y overflows when y > 0 but the result is less than x, or y < 0 but the
//     result is greater than x.
//   - For floats, a finite pair of operands producing ±Inf is also an overflow.
//
// NaN operands never report overflow; they propagate as NaN.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by runseq encodings.
type Number interface {
	constraints.Integer | constraints.Float
}

// OverflowPolicy selects how differences and sums behave when the result does not fit
// the element type.
type OverflowPolicy uint8

const (
	// Checked reports overflow to the caller. It is the zero value and the default.
	Checked OverflowPolicy = iota
	// Wrapping uses the element type's native arithmetic: two's-complement wraparound
	// for integers and IEEE 754 semantics (±Inf) for floats.
	Wrapping
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case Checked:
		return "Checked"
	case Wrapping:
		return "Wrapping"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is a known policy.
func (p OverflowPolicy) Valid() bool {
	return p == Checked || p == Wrapping
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// Sub returns x - y. The boolean is false when p is Checked and the subtraction overflowed.
//
// Under Wrapping the boolean is always true.
func Sub[T Number](x, y T, p OverflowPolicy) (T, bool) {
	d := x - y
	if p == Wrapping {
		return d, true
	}

	if (y > 0 && d > x) || (y < 0 && d < x) {
		return d, false
	}

	return d, !becameInf(d, x, y)
}

// Add returns x + y. The boolean is false when p is Checked and the addition overflowed.
//
// Under Wrapping the boolean is always true.
func Add[T Number](x, y T, p OverflowPolicy) (T, bool) {
	s := x + y
	if p == Wrapping {
		return s, true
	}

	if (y > 0 && s < x) || (y < 0 && s > x) {
		return s, false
	}

	return s, !becameInf(s, x, y)
}

// becameInf reports whether result is infinite while both operands are finite.
// Integer values always convert to finite float64 values.
func becameInf[T Number](result, x, y T) bool {
	return math.IsInf(float64(result), 0) && !math.IsInf(float64(x), 0) && !math.IsInf(float64(y), 0)
}

// Ratio returns num / den computed in float64.
//
// Integer element types are converted before dividing, so Ratio(881, 1000) is 0.881
// rather than zero. A zero den yields ±Inf or NaN following float64 division.
func Ratio[T Number](num, den T) float64 {
	return float64(num) / float64(den)
}

// BitsFunc returns a function mapping values of T to a 64-bit pattern that identifies
// the value exactly.
//
// Floats map to their IEEE 754 float64 bits; integers map to their two's-complement
// value widened to 64 bits. The type check happens once, when BitsFunc is called.
func BitsFunc[T Number]() func(T) uint64 {
	if IsFloat[T]() {
		return func(v T) uint64 { return math.Float64bits(float64(v)) }
	}

	return func(v T) uint64 { return uint64(v) }
}
