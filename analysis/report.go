package analysis

import (
	"fmt"

	"github.com/arloliu/runseq/format"
	"github.com/arloliu/runseq/numeric"
)

// runCountSize is the in-memory size of a run's repeat count.
const runCountSize = 8

// Report describes how well each encoding fits a sequence.
//
// Fields:
//   - Len: Number of values analyzed
//   - ElemSize: Size in bytes of one value
//   - DirectRuns: Runs of the direct encoding
//   - DeltaRuns: Runs of the difference sequence, or -1 if differences overflow
//   - Policy: The overflow policy differences were computed with
//   - Recommended: The encoding with fewer runs after the delta bias
type Report struct {
	Len         int
	ElemSize    int
	DirectRuns  int
	DeltaRuns   int
	Policy      numeric.OverflowPolicy
	Recommended format.EncodingType
}

// DeltaUsable reports whether the differences fit the element type.
func (r *Report) DeltaUsable() bool {
	return r.DeltaRuns >= 0
}

// DirectRatio returns direct runs per value. Lower is better.
func (r *Report) DirectRatio() float64 {
	return float64(r.DirectRuns) / float64(r.Len)
}

// DeltaRatio returns difference runs per value, or 1 when delta encoding is unusable.
func (r *Report) DeltaRatio() float64 {
	if !r.DeltaUsable() {
		return 1
	}

	return float64(r.DeltaRuns) / float64(r.Len)
}

// RawFootprint returns the size in bytes of the plain value slice.
func (r *Report) RawFootprint() int {
	return r.Len * r.ElemSize
}

// DirectFootprint returns the approximate size in bytes of the direct runs.
func (r *Report) DirectFootprint() int {
	return r.DirectRuns * (r.ElemSize + runCountSize)
}

// DeltaFootprint returns the approximate size in bytes of the root plus difference
// runs, or -1 when delta encoding is unusable.
func (r *Report) DeltaFootprint() int {
	if !r.DeltaUsable() {
		return -1
	}

	return r.ElemSize + r.DeltaRuns*(r.ElemSize+runCountSize)
}

// String returns a one-line summary of the report.
func (r *Report) String() string {
	return fmt.Sprintf("Report{Len: %d, DirectRuns: %d, DeltaRuns: %d, Recommended: %s}",
		r.Len, r.DirectRuns, r.DeltaRuns, r.Recommended)
}
